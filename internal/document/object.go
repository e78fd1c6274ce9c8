package document

import "placeholder-expander/provider"

// object is a document node seen as a provider.
type object struct {
	data Object
	set  *Set
}

var _ provider.Provider = (*object)(nil)

func (o *object) TypeName() string {
	return o.data.Type
}

func (o *object) Schema() *provider.Schema {
	return o.set.schemas[o.data.Type]
}

// Field returns nil for fields other objects of the type declare.
func (o *object) Field(name string) (any, bool) {
	if v, ok := o.data.Fields.Get(name); ok {
		return v, true
	}

	return nil, o.Schema().HasField(name)
}

func (o *object) One(name string) (provider.Provider, bool) {
	ref, ok := o.data.One.Get(name)
	if !ok || ref == "" {
		return nil, false
	}

	return o.set.Get(ref)
}

func (o *object) Many(name string) []provider.Provider {
	refs, ok := o.data.Many.Get(name)
	if !ok {
		return nil
	}

	items := make([]provider.Provider, 0, len(refs))
	for _, ref := range refs {
		if item, ok := o.set.Get(ref); ok {
			items = append(items, item)
		}
	}

	return items
}
