package expand

import (
	"reflect"

	"github.com/go-logr/logr"

	"placeholder-expander/format"
	"placeholder-expander/provider"
)

// Expander expands templates. It is immutable once built and safe for
// concurrent use.
type Expander struct {
	override format.Formatter
	fallback format.Formatter
	cfg      format.Config
	hooks    []Lifecycle
	maxDepth int
	log      logr.Logger
}

// New builds an Expander.
func New(opts ...Option) *Expander {
	e := &Expander{
		fallback: format.Plain{},
		maxDepth: DefaultMaxDepth,
		log:      logr.Discard(),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.log = e.log.WithName("placeholder")

	return e
}

// Expand is New(opts...).Expand(p, content).
func Expand(p provider.Provider, content any, opts ...Option) (any, error) {
	return New(opts...).Expand(p, content)
}

// Expand substitutes placeholders in content and returns a value of the
// same shape: strings are expanded, slices and arrays element-wise, maps
// value-wise with the same keys. Other values, nil included, are returned
// unchanged. p must not be nil.
//
// The only error is a *DepthError; the result is nil then.
func (e *Expander) Expand(p provider.Provider, content any) (any, error) {
	defer e.begin()()

	out, err := e.walk(p, content)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// String expands a single template.
func (e *Expander) String(p provider.Provider, tmpl string) (string, error) {
	defer e.begin()()

	return e.run(p, tmpl, 0)
}

func (e *Expander) begin() func() {
	for _, h := range e.hooks {
		h.BeforeExpand()
	}

	return func() {
		for i := len(e.hooks) - 1; i >= 0; i-- {
			e.hooks[i].AfterExpand()
		}
	}
}

func (e *Expander) walk(p provider.Provider, content any) (any, error) {
	switch c := content.(type) {
	case nil:
		return nil, nil
	case string:
		return e.run(p, c, 0)
	case []string:
		if c == nil {
			return c, nil
		}

		out := make([]string, len(c))
		for i, s := range c {
			text, err := e.run(p, s, 0)
			if err != nil {
				return nil, err
			}

			out[i] = text
		}

		return out, nil
	case []any:
		if c == nil {
			return c, nil
		}

		out := make([]any, len(c))
		for i, v := range c {
			w, err := e.walk(p, v)
			if err != nil {
				return nil, err
			}

			out[i] = w
		}

		return out, nil
	case map[string]string:
		if c == nil {
			return c, nil
		}

		out := make(map[string]string, len(c))
		for k, s := range c {
			text, err := e.run(p, s, 0)
			if err != nil {
				return nil, err
			}

			out[k] = text
		}

		return out, nil
	case map[string]any:
		if c == nil {
			return c, nil
		}

		out := make(map[string]any, len(c))
		for k, v := range c {
			w, err := e.walk(p, v)
			if err != nil {
				return nil, err
			}

			out[k] = w
		}

		return out, nil
	}

	rv := reflect.ValueOf(content)
	if !holdsTemplates(rv.Type()) {
		return content, nil
	}

	out, err := e.walkValue(p, rv)
	if err != nil {
		return nil, err
	}

	return out.Interface(), nil
}

// walkValue is walk for types without a fast path. The result has the type
// of rv, or is invalid for a nil interface.
func (e *Expander) walkValue(p provider.Provider, rv reflect.Value) (reflect.Value, error) {
	switch rv.Kind() {
	case reflect.String:
		text, err := e.run(p, rv.String(), 0)
		if err != nil {
			return reflect.Value{}, err
		}

		out := reflect.New(rv.Type()).Elem()
		out.SetString(text)

		return out, nil

	case reflect.Interface:
		if rv.IsNil() {
			return rv, nil
		}

		w, err := e.walk(p, rv.Elem().Interface())
		if err != nil {
			return reflect.Value{}, err
		}

		return reflect.ValueOf(w), nil

	case reflect.Slice, reflect.Array:
		if !holdsTemplates(rv.Type().Elem()) || (rv.Kind() == reflect.Slice && rv.IsNil()) {
			return rv, nil
		}

		var out reflect.Value
		if rv.Kind() == reflect.Slice {
			out = reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		} else {
			out = reflect.New(rv.Type()).Elem()
		}

		for i := range rv.Len() {
			w, err := e.walkValue(p, rv.Index(i))
			if err != nil {
				return reflect.Value{}, err
			}

			out.Index(i).Set(orZero(w, rv.Type().Elem()))
		}

		return out, nil

	case reflect.Map:
		if !holdsTemplates(rv.Type().Elem()) || rv.IsNil() {
			return rv, nil
		}

		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			w, err := e.walkValue(p, iter.Value())
			if err != nil {
				return reflect.Value{}, err
			}

			out.SetMapIndex(iter.Key(), orZero(w, rv.Type().Elem()))
		}

		return out, nil

	default:
		return rv, nil
	}
}

// holdsTemplates reports whether values of t can contain strings to expand.
func holdsTemplates(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.String, reflect.Interface:
		return true
	case reflect.Slice, reflect.Array, reflect.Map:
		switch t.Elem().Kind() {
		case reflect.String, reflect.Interface, reflect.Slice, reflect.Array, reflect.Map:
			return true
		}
	}

	return false
}

func orZero(v reflect.Value, t reflect.Type) reflect.Value {
	if !v.IsValid() {
		return reflect.Zero(t)
	}

	return v
}
