package expand

import (
	"github.com/go-logr/logr"

	"placeholder-expander/format"
)

// DefaultMaxDepth bounds relation traversal when WithMaxDepth is not given.
const DefaultMaxDepth = 32

// Lifecycle is notified around every top-level Expand or String call.
// Relation delegation and group items do not notify it again.
type Lifecycle interface {
	BeforeExpand()
	AfterExpand()
}

// Hooks adapts two optional functions to Lifecycle.
type Hooks struct {
	Before func()
	After  func()
}

// BeforeExpand calls h.Before when set.
func (h Hooks) BeforeExpand() {
	if h.Before != nil {
		h.Before()
	}
}

// AfterExpand calls h.After when set.
func (h Hooks) AfterExpand() {
	if h.After != nil {
		h.After()
	}
}

// Option configures an Expander.
type Option func(*Expander)

// WithFormatter sets a formatter used for every field, ahead of the
// provider's own FieldFormatter.
func WithFormatter(f format.Formatter) Option {
	return func(e *Expander) {
		e.override = f
	}
}

// WithFallbackFormatter replaces format.Plain as the formatter used when
// neither WithFormatter nor the provider formatted a field.
func WithFallbackFormatter(f format.Formatter) Option {
	return func(e *Expander) {
		if f != nil {
			e.fallback = f
		}
	}
}

// WithConfig sets the formatting context handed to every formatter.
func WithConfig(cfg format.Config) Option {
	return func(e *Expander) {
		e.cfg = cfg
	}
}

// WithHooks adds a Lifecycle. Hooks run in the order added; AfterExpand in
// reverse order.
func WithHooks(l Lifecycle) Option {
	return func(e *Expander) {
		if l != nil {
			e.hooks = append(e.hooks, l)
		}
	}
}

// WithMaxDepth sets how deep relation delegation and group expansion may
// nest. Values below 1 keep DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(e *Expander) {
		if n > 0 {
			e.maxDepth = n
		}
	}
}

// WithLogger sets the logger. Unresolved placeholders and unclosed groups
// are logged at V(1).
func WithLogger(l logr.Logger) Option {
	return func(e *Expander) {
		e.log = l
	}
}
