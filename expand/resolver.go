package expand

import (
	"strconv"
	"strings"

	"placeholder-expander/internal/match"
	"placeholder-expander/internal/token"
	"placeholder-expander/provider"
)

// Resolve classifies the path of a token read from p.
//
// Resolution order:
//  1. A dotted path whose first segment names p's own type (compared
//     with match.NormalizeIdent) loses that segment, once.
//  2. A plain name is a collection group when p has a many relation of
//     that name, otherwise a value when it is a declared field.
//  3. A dotted path starting with a many relation needs an index segment
//     (1-based); it delegates the rest of the path to that item.
//  4. A dotted path starting with a single relation delegates the rest to
//     the related provider.
//
// Absent relations and indexes out of range yield OutcomeEmptyRelation.
// Anything else is OutcomeUnresolved.
func Resolve(p provider.Provider, path string) Outcome {
	path = elideSelf(p.TypeName(), path)
	schema := p.Schema()

	head, rest, dotted := strings.Cut(path, ".")
	if !dotted {
		switch {
		case schema.Relation(path) == provider.RelationMany:
			return Outcome{Kind: OutcomeCollectionBlock, Path: path, Items: p.Many(path)}
		case schema.HasField(path):
			v, _ := p.Field(path)
			return Outcome{Kind: OutcomeValue, Path: path, Field: path, Value: v}
		default:
			return Outcome{Kind: OutcomeUnresolved, Path: path}
		}
	}

	switch schema.Relation(head) {
	case provider.RelationMany:
		idx, after, more := strings.Cut(rest, ".")
		if !token.IsIndex(idx) {
			return Outcome{Kind: OutcomeUnresolved, Path: path}
		}

		item := itemAt(p.Many(head), idx)
		if item == nil {
			return Outcome{Kind: OutcomeEmptyRelation, Path: path}
		}

		if !more {
			return Outcome{Kind: OutcomeValue, Path: path}
		}

		return Outcome{Kind: OutcomeDelegate, Path: path, Target: item, Rest: after}

	case provider.RelationOne:
		target, ok := p.One(head)
		if !ok || target == nil {
			return Outcome{Kind: OutcomeEmptyRelation, Path: path}
		}

		return Outcome{Kind: OutcomeDelegate, Path: path, Target: target, Rest: rest}

	default:
		return Outcome{Kind: OutcomeUnresolved, Path: path}
	}
}

// elideSelf drops a leading segment naming typeName: inside a Client,
// "client.number" is "number".
func elideSelf(typeName, path string) string {
	head, rest, dotted := strings.Cut(path, ".")
	if !dotted || !match.SameIdent(head, typeName) {
		return path
	}

	return rest
}

// itemAt returns the 1-based idx-th item, nil when there is none.
func itemAt(items []provider.Provider, idx string) provider.Provider {
	n, err := strconv.Atoi(idx)
	if err != nil || n < 1 || n > len(items) {
		return nil
	}

	return items[n-1]
}
