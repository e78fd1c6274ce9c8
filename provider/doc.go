// Package provider defines the objects placeholders are resolved against.
//
// A Provider exposes a type name, an immutable Schema (the allow-list of
// fields and the single/collection relations), and accessors for field
// values and related providers. Schemas are fixed per type: they are built
// once, either by hand with NewSchema or from struct tags by a Registry.
//
// # Struct tags
//
//	type Client struct {
//		Number     int      `placeholder:"number"`
//		MoneyField float64  `placeholder:""`              // name: money_field
//		Company    *Company `placeholder:"company,one"`
//		Invoices   []Invoice `placeholder:"invoices,many"`
//		Secret     string                                 // not exposed
//	}
//
// Only tagged fields are exposed. An empty name defaults to the snake_case
// form of the Go field name. Types can rename themselves with
// PlaceholderTypeName and add computed fields with the Computed interface.
package provider
