// Package match provides identifier normalization and edit-distance ranking
// for placeholder names.
//
// Key functions:
//   - NormalizeIdent: folds "Client", "client" and "line_item" / "LineItem"
//     to one comparable form
//   - SameIdent: compares a path segment against a type name
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names closest to an unknown one
package match
