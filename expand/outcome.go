package expand

import "placeholder-expander/provider"

//go:generate go tool stringer -type=OutcomeKind -trimprefix=Outcome -output=outcome_string.go

// OutcomeKind classifies how a placeholder path resolves.
type OutcomeKind int

const (
	OutcomeUnresolved OutcomeKind = iota
	OutcomeEmptyRelation
	OutcomeDelegate
	OutcomeCollectionBlock
	OutcomeValue
)

// Outcome is the result of resolving one token against a provider.
type Outcome struct {
	Kind OutcomeKind
	// Path is the token path after self-prefix elision. Diagnostics use it.
	Path string

	// Field and Value are set for OutcomeValue. An empty Field means the
	// replacement is the empty string with nothing to format.
	Field string
	Value any

	// Target and Rest are set for OutcomeDelegate.
	Target provider.Provider
	Rest   string

	// Items holds the collection for OutcomeCollectionBlock; Path is then
	// the group name.
	Items []provider.Provider
}
