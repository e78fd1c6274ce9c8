package provider

import (
	"reflect"

	"placeholder-expander/format"
)

// structProvider adapts a tagged struct value.
type structProvider struct {
	value    reflect.Value // the struct itself
	entry    *entry
	registry *Registry
}

var (
	_ Provider       = (*structProvider)(nil)
	_ FieldFormatter = (*structProvider)(nil)
)

func (p *structProvider) TypeName() string {
	return p.entry.schema.TypeName()
}

func (p *structProvider) Schema() *Schema {
	return p.entry.schema
}

func (p *structProvider) Field(name string) (any, bool) {
	if idx, ok := p.entry.fields[name]; ok {
		fv, err := p.value.FieldByIndexErr(idx)
		if err != nil {
			// nil embedded pointer on the way to a promoted field
			return nil, true
		}

		return fv.Interface(), true
	}

	if p.entry.computed && p.entry.schema.HasField(name) {
		return p.pointer().(Computed).ComputedField(name)
	}

	return nil, false
}

func (p *structProvider) One(name string) (Provider, bool) {
	if p.entry.schema.Relation(name) != RelationOne {
		return nil, false
	}

	fv, ok := p.relationValue(name)
	if !ok {
		return nil, false
	}

	related := p.adapt(fv)

	return related, related != nil
}

func (p *structProvider) Many(name string) []Provider {
	if p.entry.schema.Relation(name) != RelationMany {
		return nil
	}

	fv, ok := p.relationValue(name)
	if !ok || (fv.Kind() == reflect.Slice && fv.IsNil()) {
		return nil
	}

	items := make([]Provider, fv.Len())
	for i := range items {
		items[i] = p.adapt(fv.Index(i))
	}

	return items
}

// FormatField delegates to the wrapped struct when it formats its own fields.
func (p *structProvider) FormatField(name string, cfg format.Config) (string, bool) {
	if ff, ok := p.pointer().(FieldFormatter); ok {
		return ff.FormatField(name, cfg)
	}

	return "", false
}

func (p *structProvider) relationValue(name string) (reflect.Value, bool) {
	idx, ok := p.entry.rels[name]
	if !ok {
		return reflect.Value{}, false
	}

	fv, err := p.value.FieldByIndexErr(idx)
	if err != nil {
		return reflect.Value{}, false
	}

	return fv, true
}

// pointer returns a pointer to the struct so that pointer-receiver methods
// are visible. Non-addressable values are copied.
func (p *structProvider) pointer() any {
	if p.value.CanAddr() {
		return p.value.Addr().Interface()
	}

	ptr := reflect.New(p.value.Type())
	ptr.Elem().Set(p.value)

	return ptr.Interface()
}

// adapt turns a relation value into a Provider; nil when absent or when the
// value is neither a Provider nor a tagged struct.
func (p *structProvider) adapt(v reflect.Value) Provider {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}

		if v.Type().Implements(providerType) {
			return v.Interface().(Provider)
		}

		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return nil
	}

	if v.CanAddr() && v.Addr().Type().Implements(providerType) {
		return v.Addr().Interface().(Provider)
	}

	if v.Type().Implements(providerType) {
		return v.Interface().(Provider)
	}

	e, err := p.registry.entryFor(v.Type())
	if err != nil {
		return nil
	}

	return &structProvider{value: v, entry: e, registry: p.registry}
}
