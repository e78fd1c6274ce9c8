// Package lint checks templates ahead of expansion.
//
// The expander never validates templates and never fails on them; lint is
// the opt-in counterpart used by the CLI and by callers that want to catch
// mistakes before rendering. Structural checks (unclosed groups, stray
// close tags, nested groups, empty path segments) need only the template.
// Field and relation checks need the schema of the root provider and a
// SchemaLookup to follow relations into related types.
package lint
