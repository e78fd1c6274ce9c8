package expand

import (
	"strings"

	"placeholder-expander/internal/token"
	"placeholder-expander/provider"
)

// UnknownMarker is substituted for a path p cannot resolve.
func UnknownMarker(typeName, path string) string {
	return "UNKNOWN for " + typeName + ": " + path
}

// EndMissingMarker is substituted for a group opener without a close tag.
func EndMissingMarker(name string) string {
	return "END MISSING FOR " + name
}

// run expands tmpl against p in a single pass. Text written to the output
// is never scanned again.
func (e *Expander) run(p provider.Provider, tmpl string, depth int) (string, error) {
	var out strings.Builder

	pos := 0

	for {
		tok, ok := token.Next(tmpl, pos)
		if !ok {
			break
		}

		out.WriteString(tmpl[pos:tok.Start])
		pos = tok.End

		oc := Resolve(p, tok.Path)

		switch oc.Kind {
		case OutcomeValue:
			out.WriteString(e.format(p, oc))

		case OutcomeEmptyRelation:
			// absent relation

		case OutcomeDelegate:
			text, err := e.descend(p, oc.Target, token.Wrap(oc.Rest), depth, oc.Path)
			if err != nil {
				return "", err
			}

			out.WriteString(text)

		case OutcomeCollectionBlock:
			closeStart, closeEnd, found := token.FindClose(tmpl, oc.Path, tok.End)
			if !found {
				e.log.V(1).Info("group end missing", "type", p.TypeName(), "name", oc.Path, "offset", tok.Start)
				out.WriteString(EndMissingMarker(oc.Path))

				continue
			}

			body := tmpl[tok.End:closeStart]
			for _, item := range oc.Items {
				if item == nil {
					continue
				}

				text, err := e.descend(p, item, body, depth, oc.Path)
				if err != nil {
					return "", err
				}

				out.WriteString(text)
			}

			pos = closeEnd

		default:
			e.log.V(1).Info("unresolved placeholder", "type", p.TypeName(), "path", oc.Path, "offset", tok.Start)
			out.WriteString(UnknownMarker(p.TypeName(), oc.Path))
		}
	}

	out.WriteString(tmpl[pos:])

	return out.String(), nil
}

// descend expands tmpl against a provider related to from.
func (e *Expander) descend(from, to provider.Provider, tmpl string, depth int, path string) (string, error) {
	if depth+1 > e.maxDepth {
		return "", &DepthError{Limit: e.maxDepth, TypeName: from.TypeName(), Path: path}
	}

	return e.run(to, tmpl, depth+1)
}

// format renders a resolved value. Precedence: the WithFormatter override,
// the provider's FieldFormatter, the fallback formatter.
func (e *Expander) format(p provider.Provider, oc Outcome) string {
	if oc.Field == "" || oc.Value == nil {
		return ""
	}

	if e.override != nil {
		return e.override.Format(p.TypeName(), oc.Field, oc.Value, e.cfg)
	}

	if ff, ok := p.(provider.FieldFormatter); ok {
		if text, ok := ff.FormatField(oc.Field, e.cfg); ok {
			return text
		}
	}

	return e.fallback.Format(p.TypeName(), oc.Field, oc.Value, e.cfg)
}
