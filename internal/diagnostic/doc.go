// Package diagnostic provides structured findings reported by the template
// linter.
//
// Key capabilities:
//   - Errors, warnings and infos with stable codes
//   - Template offsets and placeholder paths for each finding
//   - "did you mean" suggestions for unknown names
package diagnostic
