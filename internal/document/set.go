package document

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"placeholder-expander/provider"
)

// Set is a loaded, validated document.
type Set struct {
	root    string
	order   []string
	objects map[string]*object
	schemas map[string]*provider.Schema
}

// LoadFile loads and parses a YAML document from the given path.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Set.
func Parse(data []byte) (*Set, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse document YAML: %w", err)
	}

	return New(f)
}

// New validates f and builds its object graph.
func New(f File) (*Set, error) {
	s := &Set{
		root:    f.Root,
		objects: make(map[string]*object, len(f.Objects)),
		schemas: make(map[string]*provider.Schema),
	}

	var errs []error

	for i := range f.Objects {
		obj := &f.Objects[i]

		switch {
		case obj.ID == "":
			errs = append(errs, fmt.Errorf("object #%d: missing id", i+1))
			continue
		case obj.Type == "":
			errs = append(errs, fmt.Errorf("object %q: missing type", obj.ID))
			continue
		}

		if _, dup := s.objects[obj.ID]; dup {
			errs = append(errs, fmt.Errorf("object %q: duplicate id", obj.ID))
			continue
		}

		s.objects[obj.ID] = &object{data: *obj, set: s}
		s.order = append(s.order, obj.ID)
	}

	if s.root == "" && len(s.order) > 0 {
		s.root = s.order[0]
	}

	if s.root != "" {
		if _, ok := s.objects[s.root]; !ok {
			errs = append(errs, fmt.Errorf("root %q: no such object", s.root))
		}
	}

	errs = append(errs, s.checkRefs()...)
	errs = append(errs, s.buildSchemas()...)

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}

	return s, nil
}

func (s *Set) checkRefs() []error {
	var errs []error

	for _, id := range s.order {
		obj := s.objects[id]

		for _, name := range obj.data.One.Keys {
			if ref := obj.data.One.Values[name]; ref != "" && s.objects[ref] == nil {
				errs = append(errs, fmt.Errorf("object %q: one %s: unknown id %q", id, name, ref))
			}
		}

		for _, name := range obj.data.Many.Keys {
			for _, ref := range obj.data.Many.Values[name] {
				if s.objects[ref] == nil {
					errs = append(errs, fmt.Errorf("object %q: many %s: unknown id %q", id, name, ref))
				}
			}
		}
	}

	return errs
}

// usage is what the objects of one type declare under a name.
type usage struct {
	field  bool
	kind   provider.RelationKind
	target string
	mixed  bool // relation points at objects of more than one type
}

func (u *usage) String() string {
	if u.field {
		return "field"
	}

	return u.kind.String() + " relation"
}

// typeUsage collects the names of one type in order of first appearance.
type typeUsage struct {
	names  []string
	byName map[string]*usage
}

func (t *typeUsage) get(name string) *usage {
	u, ok := t.byName[name]
	if !ok {
		u = &usage{}
		t.byName[name] = u
		t.names = append(t.names, name)
	}

	return u
}

// buildSchemas derives one schema per type from all its objects.
func (s *Set) buildSchemas() []error {
	var (
		errs  []error
		types []string
		byTyp = make(map[string]*typeUsage)
	)

	for _, id := range s.order {
		obj := s.objects[id]

		tu, ok := byTyp[obj.data.Type]
		if !ok {
			tu = &typeUsage{byName: make(map[string]*usage)}
			byTyp[obj.data.Type] = tu
			types = append(types, obj.data.Type)
		}

		for _, name := range obj.data.Fields.Keys {
			u := tu.get(name)
			if u.kind != provider.RelationNone {
				errs = append(errs, conflict(obj, name, u, "field"))
				continue
			}

			u.field = true
		}

		relate := func(name string, kind provider.RelationKind, refs []string) {
			u := tu.get(name)
			if u.field || (u.kind != provider.RelationNone && u.kind != kind) {
				errs = append(errs, conflict(obj, name, u, kind.String()+" relation"))
				return
			}

			u.kind = kind

			for _, ref := range refs {
				target, ok := s.objects[ref]
				if !ok {
					continue
				}

				switch {
				case u.target == "":
					u.target = target.data.Type
				case u.target != target.data.Type:
					u.mixed = true
				}
			}
		}

		for _, name := range obj.data.One.Keys {
			relate(name, provider.RelationOne, []string{obj.data.One.Values[name]})
		}

		for _, name := range obj.data.Many.Keys {
			relate(name, provider.RelationMany, obj.data.Many.Values[name])
		}
	}

	for _, typeName := range types {
		tu := byTyp[typeName]
		b := provider.NewSchema(typeName)

		for _, name := range tu.names {
			u := tu.byName[name]

			target := u.target
			if u.mixed {
				target = ""
			}

			switch {
			case u.field:
				b.Field(name)
			case u.kind == provider.RelationOne:
				b.One(name, target)
			case u.kind == provider.RelationMany:
				b.Many(name, target)
			}
		}

		schema, err := b.Build()
		if err != nil {
			errs = append(errs, err)
			continue
		}

		s.schemas[typeName] = schema
	}

	return errs
}

func conflict(obj *object, name string, u *usage, as string) error {
	return fmt.Errorf("object %q: type %s uses %q as %s and as %s", obj.data.ID, obj.data.Type, name, u, as)
}

// Root returns the root object: the one named by root, or the first object.
func (s *Set) Root() (provider.Provider, error) {
	if s.root == "" {
		return nil, errors.New("document has no objects")
	}

	return s.objects[s.root], nil
}

// Get returns the object with the given id.
func (s *Set) Get(id string) (provider.Provider, bool) {
	obj, ok := s.objects[id]
	if !ok {
		return nil, false
	}

	return obj, true
}

// Schema returns the shared schema of a type.
func (s *Set) Schema(typeName string) (*provider.Schema, bool) {
	schema, ok := s.schemas[typeName]
	return schema, ok
}

// IDs returns all object ids in document order.
func (s *Set) IDs() []string {
	return slices.Clone(s.order)
}

// Types returns all type names in order of first appearance.
func (s *Set) Types() []string {
	var types []string
	for _, id := range s.order {
		if t := s.objects[id].data.Type; !slices.Contains(types, t) {
			types = append(types, t)
		}
	}

	return types
}
