package provider

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var (
	providerType  = reflect.TypeFor[Provider]()
	typeNamerType = reflect.TypeFor[TypeNamer]()
	computedType  = reflect.TypeFor[Computed]()
)

// ErrNotStruct is returned when a value cannot be adapted to a Provider.
var ErrNotStruct = errors.New("not a struct or pointer to struct")

// Registry derives schemas from struct tags, once per Go type.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byType map[reflect.Type]*entry
	byName map[string]*entry
}

// entry is the cached view of one struct type.
type entry struct {
	typ      reflect.Type
	schema   *Schema
	fields   map[string][]int // field name -> struct field index
	rels     map[string][]int // relation name -> struct field index
	computed bool
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byType: make(map[reflect.Type]*entry),
		byName: make(map[string]*entry),
	}
}

// Register builds schemas for the types of the given sample values and for
// every struct type reachable through their relations.
func (r *Registry) Register(samples ...any) error {
	for _, s := range samples {
		if _, err := r.Schema(reflect.TypeOf(s)); err != nil {
			return err
		}
	}

	return nil
}

// Schema returns the schema of t (a struct or pointer to struct).
func (r *Registry) Schema(t reflect.Type) (*Schema, error) {
	e, err := r.entryFor(t)
	if err != nil {
		return nil, err
	}

	return e.schema, nil
}

// Lookup returns the schema registered under typeName.
func (r *Registry) Lookup(typeName string) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byName[typeName]
	if !ok {
		return nil, false
	}

	return e.schema, true
}

// Wrap adapts v to a Provider. Values that already implement Provider are
// returned unchanged.
func (r *Registry) Wrap(v any) (Provider, error) {
	if p, ok := v.(Provider); ok {
		return p, nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("wrap %T: nil pointer", v)
		}

		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("wrap %T: %w", v, ErrNotStruct)
	}

	e, err := r.entryFor(rv.Type())
	if err != nil {
		return nil, err
	}

	return &structProvider{value: rv, entry: e, registry: r}, nil
}

// MustWrap is Wrap for values known to be tagged structs; it panics on error.
func (r *Registry) MustWrap(v any) Provider {
	p, err := r.Wrap(v)
	if err != nil {
		panic(err)
	}

	return p
}

func (r *Registry) entryFor(t reflect.Type) (*entry, error) {
	if t == nil {
		return nil, fmt.Errorf("schema: %w", ErrNotStruct)
	}

	t = baseType(t)
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema %s: %w", t, ErrNotStruct)
	}

	r.mu.RLock()
	e, ok := r.byType[t]
	r.mu.RUnlock()

	if ok {
		return e, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.build(t)
}

// build must be called with the write lock held. Related struct types are
// built too; an entry is stored before its relations are followed so that
// cyclic type graphs terminate.
func (r *Registry) build(t reflect.Type) (*entry, error) {
	if e, ok := r.byType[t]; ok {
		return e, nil
	}

	name := typeNameOf(t)
	if prev, dup := r.byName[name]; dup {
		return nil, fmt.Errorf("schema %s: type name %q already used by %s", t, name, prev.typ)
	}

	e := &entry{
		typ:    t,
		fields: make(map[string][]int),
		rels:   make(map[string][]int),
	}

	builder := NewSchema(name)

	var related []reflect.Type

	for _, sf := range reflect.VisibleFields(t) {
		raw, tagged := sf.Tag.Lookup(TagKey)
		if !tagged || sf.Anonymous {
			continue
		}

		if !sf.IsExported() {
			return nil, fmt.Errorf("schema %s: unexported field %s is tagged", t, sf.Name)
		}

		tag, ok, err := ParseTag(sf.Name, raw)
		if err != nil {
			return nil, fmt.Errorf("schema %s: %w", t, err)
		}

		if !ok {
			continue
		}

		switch tag.Kind {
		case RelationNone:
			if _, dup := e.fields[tag.Name]; dup {
				return nil, fmt.Errorf("schema %s: field %q declared twice", t, tag.Name)
			}

			builder.Field(tag.Name)
			e.fields[tag.Name] = sf.Index

		case RelationOne, RelationMany:
			if _, dup := e.rels[tag.Name]; dup {
				return nil, fmt.Errorf("schema %s: relation %q declared twice", t, tag.Name)
			}

			elem, err := relationElem(sf.Type, tag.Kind)
			if err != nil {
				return nil, fmt.Errorf("schema %s: field %s: %w", t, sf.Name, err)
			}

			target := ""
			if elem.Kind() == reflect.Struct {
				target = typeNameOf(elem)
				related = append(related, elem)
			}

			if tag.Kind == RelationOne {
				builder.One(tag.Name, target)
			} else {
				builder.Many(tag.Name, target)
			}

			e.rels[tag.Name] = sf.Index
		}
	}

	if reflect.PointerTo(t).Implements(computedType) {
		zero := reflect.New(t).Interface().(Computed)
		for _, name := range zero.ComputedFields() {
			if _, dup := e.fields[name]; dup {
				return nil, fmt.Errorf("schema %s: computed field %q shadows a tagged field", t, name)
			}

			builder.Field(name)
		}

		e.computed = true
	}

	schema, err := builder.Build()
	if err != nil {
		return nil, err
	}

	e.schema = schema
	r.byType[t] = e
	r.byName[name] = e

	for _, rt := range related {
		if _, err := r.build(rt); err != nil {
			delete(r.byType, t)
			delete(r.byName, name)

			return nil, err
		}
	}

	return e, nil
}

// relationElem returns the element type behind a relation field: the
// pointed-to struct for one, the item type for many. Interface element types
// are allowed and resolved at read time.
func relationElem(t reflect.Type, kind RelationKind) (reflect.Type, error) {
	if kind == RelationMany {
		if t.Kind() != reflect.Slice && t.Kind() != reflect.Array {
			return nil, fmt.Errorf("many relation needs a slice or array, got %s", t)
		}

		t = t.Elem()
	}

	elem := baseType(t)
	if elem.Kind() != reflect.Struct && elem.Kind() != reflect.Interface {
		return nil, fmt.Errorf("%s relation needs a struct, pointer or interface, got %s", kind, t)
	}

	return elem, nil
}

func typeNameOf(t reflect.Type) string {
	if reflect.PointerTo(t).Implements(typeNamerType) {
		if n := reflect.New(t).Interface().(TypeNamer).PlaceholderTypeName(); n != "" {
			return n
		}
	}

	return t.Name()
}

func baseType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}
