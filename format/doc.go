// Package format turns field values into the text that replaces a
// placeholder.
//
// Formatting context (locale, currency, date layout) travels in an explicit
// Config value; nothing is read from global or per-goroutine state.
//
//   - Plain stringifies values without locale rules: nil becomes "",
//     floats keep their shortest exact form (12.333 -> "12.333").
//   - Locale groups decimals and renders money fields with a currency
//     symbol using golang.org/x/text.
package format
