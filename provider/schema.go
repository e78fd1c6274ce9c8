package provider

import (
	"errors"
	"fmt"
	"slices"

	"placeholder-expander/internal/common"
)

// RelationKind tells how a name relates a provider to other providers.
type RelationKind int

const (
	RelationNone RelationKind = iota
	RelationOne
	RelationMany
)

// String returns a human-readable relation kind.
func (k RelationKind) String() string {
	switch k {
	case RelationNone:
		return "none"
	case RelationOne:
		return "one"
	case RelationMany:
		return "many"
	default:
		return common.UnknownStr
	}
}

// Relation describes a declared relation.
type Relation struct {
	Name   string
	Kind   RelationKind
	Target string // related type name, empty when not known statically
}

// Schema is the immutable placeholder surface of one provider type.
type Schema struct {
	typeName  string
	fields    []string
	fieldSet  map[string]struct{}
	relations []Relation
	byName    map[string]int
}

// TypeName returns the provider type name.
func (s *Schema) TypeName() string {
	return s.typeName
}

// HasField reports whether name is a declared field.
func (s *Schema) HasField(name string) bool {
	_, ok := s.fieldSet[name]
	return ok
}

// Fields returns declared field names in declaration order.
func (s *Schema) Fields() []string {
	return slices.Clone(s.fields)
}

// Relation returns the kind of the relation called name.
func (s *Schema) Relation(name string) RelationKind {
	if i, ok := s.byName[name]; ok {
		return s.relations[i].Kind
	}

	return RelationNone
}

// Target returns the related type name of a relation, if known.
func (s *Schema) Target(name string) string {
	if i, ok := s.byName[name]; ok {
		return s.relations[i].Target
	}

	return ""
}

// Relations returns declared relations in declaration order.
func (s *Schema) Relations() []Relation {
	return slices.Clone(s.relations)
}

// Names returns every declared field and relation name.
func (s *Schema) Names() []string {
	names := slices.Clone(s.fields)
	for _, r := range s.relations {
		if !slices.Contains(names, r.Name) {
			names = append(names, r.Name)
		}
	}

	return names
}

// SchemaBuilder collects declarations for NewSchema.
type SchemaBuilder struct {
	schema *Schema
	errs   []error
	built  bool
}

// NewSchema starts a schema for typeName.
func NewSchema(typeName string) *SchemaBuilder {
	b := &SchemaBuilder{
		schema: &Schema{
			typeName: typeName,
			fieldSet: make(map[string]struct{}),
			byName:   make(map[string]int),
		},
	}

	if typeName == "" {
		b.errs = append(b.errs, errors.New("empty type name"))
	}

	return b
}

// Field declares fields. Declaring a field twice is a no-op.
func (b *SchemaBuilder) Field(names ...string) *SchemaBuilder {
	for _, name := range names {
		if !b.validName(name) {
			continue
		}

		if _, dup := b.schema.fieldSet[name]; dup {
			continue
		}

		b.schema.fieldSet[name] = struct{}{}
		b.schema.fields = append(b.schema.fields, name)
	}

	return b
}

// One declares a single relation to target.
func (b *SchemaBuilder) One(name, target string) *SchemaBuilder {
	return b.relation(name, RelationOne, target)
}

// Many declares a collection relation to target.
func (b *SchemaBuilder) Many(name, target string) *SchemaBuilder {
	return b.relation(name, RelationMany, target)
}

func (b *SchemaBuilder) relation(name string, kind RelationKind, target string) *SchemaBuilder {
	if !b.validName(name) {
		return b
	}

	if i, dup := b.schema.byName[name]; dup {
		if prev := b.schema.relations[i]; prev.Kind != kind || prev.Target != target {
			b.errs = append(b.errs, fmt.Errorf("relation %q declared as %s and %s", name, prev.Kind, kind))
		}

		return b
	}

	b.schema.byName[name] = len(b.schema.relations)
	b.schema.relations = append(b.schema.relations, Relation{Name: name, Kind: kind, Target: target})

	return b
}

func (b *SchemaBuilder) validName(name string) bool {
	if !IsValidName(name) {
		b.errs = append(b.errs, fmt.Errorf("invalid placeholder name %q", name))
		return false
	}

	return true
}

// Build finishes the schema. The builder must not be used afterwards.
func (b *SchemaBuilder) Build() (*Schema, error) {
	if b.built {
		return nil, errors.New("schema already built")
	}

	b.built = true

	if len(b.errs) > 0 {
		return nil, fmt.Errorf("schema %s: %w", b.schema.typeName, errors.Join(b.errs...))
	}

	return b.schema, nil
}

// MustBuild is Build for static declarations; it panics on error.
func (b *SchemaBuilder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}

	return s
}

// IsValidName reports whether name can appear as a single path segment:
// one or more ASCII letters, digits or underscores.
func IsValidName(name string) bool {
	if name == "" {
		return false
	}

	for i := range len(name) {
		c := name[i]
		if !(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z') && !(c >= '0' && c <= '9') && c != '_' {
			return false
		}
	}

	return true
}
