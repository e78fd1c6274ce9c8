package provider

import "placeholder-expander/format"

// Provider is a domain object placeholders are resolved against.
type Provider interface {
	// TypeName names the type in diagnostics and self-prefixed paths.
	TypeName() string
	// Schema returns the type's immutable schema.
	Schema() *Schema
	// Field reads a declared field. ok is false when the field cannot be read.
	Field(name string) (value any, ok bool)
	// One returns a single related provider; ok is false when it is absent.
	One(name string) (Provider, bool)
	// Many returns the related collection in order; nil when absent.
	// Entries may be nil.
	Many(name string) []Provider
}

// FieldFormatter is implemented by providers that format their own fields.
// ok is false to fall back to the default formatter.
type FieldFormatter interface {
	FormatField(name string, cfg format.Config) (text string, ok bool)
}

// TypeNamer overrides the Go type name of a tagged struct.
type TypeNamer interface {
	PlaceholderTypeName() string
}

// Computed is implemented by tagged structs that expose values not stored in
// fields. ComputedFields must return the same names for every value of the
// type; it is called once, on the zero value, when the schema is built.
type Computed interface {
	ComputedFields() []string
	ComputedField(name string) (any, bool)
}
