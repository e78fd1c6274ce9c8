// Package gen generates reflection-free providers for tagged structs.
//
// Generation uses text/template + go/format. For every struct found by
// package analyze one file is written to a separate output package,
// containing:
//   - the schema, built once with provider.NewSchema
//   - a constructor named after the Go type, e.g. Company(*billing.Company)
//   - an unexported adapter with switch-based Field/One/Many methods
//   - a FormatField method when *T formats its own fields
//
// Relations must point at other generated types or at interfaces holding a
// provider.Provider.
package gen
