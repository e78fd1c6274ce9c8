package analyze

import (
	"go/token"

	"placeholder-expander/provider"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "placeholder-expander/billing"
	Name    string // e.g., "Invoice"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// IsZero reports whether the id names no type.
func (t TypeID) IsZero() bool {
	return t.Name == ""
}

// SchemaInfo describes the placeholder surface of one struct type.
type SchemaInfo struct {
	ID       TypeID
	PkgName  string // package clause name of ID.PkgPath
	TypeName string         // placeholder type name, PlaceholderTypeName when it returns a literal
	Pos      token.Position // declaration of the type
	Fields   []FieldInfo
	// Relations in declaration order.
	Relations []RelationInfo
	// FormatsFields is set when *T has a FormatField method.
	FormatsFields bool
}

// FieldInfo describes an exposed field.
type FieldInfo struct {
	Name     string // placeholder name
	GoName   string // Go field name, empty for computed fields
	GoType   string // Go type, package-qualified by name
	Computed bool   // listed by ComputedFields
}

// ElemKind says how a relation field holds the related value: the field
// itself for one, the items for many.
type ElemKind int

const (
	ElemPointer   ElemKind = iota // *T
	ElemValue                     // T
	ElemInterface                 // an interface, asserted at read time
)

// RelationInfo describes a relation to other providers.
type RelationInfo struct {
	Name   string
	GoName string
	GoType string
	Kind   provider.RelationKind
	Target TypeID // zero for interface-typed relations
	Elem   ElemKind
	// Pointers counts the pointer indirections in front of the element.
	Pointers int
	// Slice is set for many relations held in a slice rather than an array.
	Slice bool
}

// FieldNames returns the placeholder names of all fields.
func (s *SchemaInfo) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}

	return names
}

// Relation returns the relation called name.
func (s *SchemaInfo) Relation(name string) (RelationInfo, bool) {
	for _, r := range s.Relations {
		if r.Name == name {
			return r, true
		}
	}

	return RelationInfo{}, false
}
