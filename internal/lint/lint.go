package lint

import (
	"fmt"
	"slices"
	"strings"

	"placeholder-expander/internal/diagnostic"
	"placeholder-expander/internal/match"
	"placeholder-expander/internal/token"
	"placeholder-expander/provider"
)

// Diagnostic codes.
const (
	CodeEndMissing    = "LINT_END_MISSING"
	CodeStrayClose    = "LINT_STRAY_CLOSE"
	CodeNestedGroup   = "LINT_NESTED_GROUP"
	CodeRepeatedGroup = "LINT_REPEATED_GROUP"
	CodeEmptySegment  = "LINT_EMPTY_SEGMENT"
	CodeUnknownField  = "LINT_UNKNOWN_FIELD"
	CodeIndexOnSingle = "LINT_INDEX_ON_SINGLE"
)

// MaxSuggestions bounds the "did you mean" list of unknown names.
const MaxSuggestions = 3

// SchemaLookup returns the schema of a related type by name.
type SchemaLookup func(typeName string) (*provider.Schema, bool)

// Check lints tmpl. root may be nil for structural checks only; lookup may
// be nil when relations should not be followed.
func Check(tmpl string, root *provider.Schema, lookup SchemaLookup) diagnostic.Diagnostics {
	c := &checker{lookup: lookup}
	c.scope(tmpl, 0, root)

	return c.diags
}

type checker struct {
	lookup SchemaLookup
	diags  diagnostic.Diagnostics
}

// scope checks buf, which starts at offset base of the template and is
// expanded against schema.
func (c *checker) scope(buf string, base int, schema *provider.Schema) {
	var groups []string

	pos := 0

	for {
		tok, ok := token.Next(buf, pos)
		if !ok {
			break
		}

		c.strays(buf[pos:tok.Start], base+pos, schema)
		pos = tok.End

		if !c.isGroup(buf, tok, schema) {
			c.token(tok, base, schema)
			continue
		}

		name := tok.Path
		offset := base + tok.Start

		closeStart, closeEnd, found := token.FindClose(buf, name, tok.End)
		if !found {
			c.diags.AddError(CodeEndMissing,
				fmt.Sprintf("group has no closing tag %s", token.CloseTag(name)),
				typeNameOf(schema), name, offset)

			continue
		}

		if slices.Contains(groups, name) {
			c.diags.AddInfo(CodeRepeatedGroup, "group is repeated in the same scope", typeNameOf(schema), name, offset)
		}

		groups = append(groups, name)

		body := buf[tok.End:closeStart]
		c.nested(body, base+tok.End, name, schema)
		c.scope(body, base+tok.End, c.target(schema, name))

		pos = closeEnd
	}

	c.strays(buf[pos:], base+pos, schema)
}

// isGroup mirrors the expander: a plain name opens a group when it is a
// collection. Without a schema any plain name with a matching close tag
// counts.
func (c *checker) isGroup(buf string, tok token.Token, schema *provider.Schema) bool {
	if tok.HasDot() {
		return false
	}

	if schema != nil {
		return schema.Relation(tok.Path) == provider.RelationMany
	}

	_, _, found := token.FindClose(buf, tok.Path, tok.End)

	return found
}

func (c *checker) token(tok token.Token, base int, schema *provider.Schema) {
	if slices.Contains(tok.Segments(), "") {
		c.diags.AddWarning(CodeEmptySegment, "path has an empty segment", typeNameOf(schema), tok.Path, base+tok.Start)
		return
	}

	if schema == nil {
		return
	}

	c.path(schema, tok.Path, tok.Path, base+tok.Start)
}

// path follows a path through schemas the way the expander resolves it,
// dropping a leading self-reference at every level.
func (c *checker) path(schema *provider.Schema, path, full string, offset int) {
	if head, rest, dotted := strings.Cut(path, "."); dotted && match.SameIdent(head, schema.TypeName()) {
		path = rest
	}

	head, rest, dotted := strings.Cut(path, ".")

	if !dotted {
		switch {
		case schema.HasField(path):
		case schema.Relation(path) == provider.RelationMany:
			c.diags.AddError(CodeEndMissing, fmt.Sprintf("collection %q cannot open a group inside a path", path),
				schema.TypeName(), full, offset)
		case schema.Relation(path) == provider.RelationOne:
			c.diags.AddError(CodeUnknownField, fmt.Sprintf("relation %q needs a field after it", path),
				schema.TypeName(), full, offset)
		default:
			c.unknown(schema, path, full, offset)
		}

		return
	}

	next, _, _ := strings.Cut(rest, ".")

	switch schema.Relation(head) {
	case provider.RelationMany:
		if !token.IsIndex(next) {
			c.diags.AddError(CodeUnknownField, fmt.Sprintf("collection %q needs a 1-based index", head),
				schema.TypeName(), full, offset)

			return
		}

		if strings.Trim(next, "0") == "" {
			c.diags.AddWarning(CodeIndexOnSingle, "index 0 never matches, indexes start at 1",
				schema.TypeName(), full, offset)

			return
		}

		_, after, more := strings.Cut(rest, ".")
		if more {
			c.descend(schema, head, after, full, offset)
		}

	case provider.RelationOne:
		if token.IsIndex(next) {
			c.diags.AddError(CodeIndexOnSingle, fmt.Sprintf("%q is a single relation and cannot be indexed", head),
				schema.TypeName(), full, offset)

			return
		}

		c.descend(schema, head, rest, full, offset)

	default:
		if !schema.HasField(head) {
			c.unknown(schema, head, full, offset)
			return
		}

		code, msg := CodeUnknownField, fmt.Sprintf("field %q has no fields", head)
		if token.IsIndex(next) {
			code, msg = CodeIndexOnSingle, fmt.Sprintf("field %q cannot be indexed", head)
		}

		c.diags.AddError(code, msg, schema.TypeName(), full, offset)
	}
}

func (c *checker) descend(schema *provider.Schema, relation, rest, full string, offset int) {
	if target := c.target(schema, relation); target != nil {
		c.path(target, rest, full, offset)
	}
}

func (c *checker) unknown(schema *provider.Schema, name, full string, offset int) {
	c.diags.Add(diagnostic.Diagnostic{
		Severity:    diagnostic.SeverityError,
		Code:        CodeUnknownField,
		Message:     fmt.Sprintf("unknown field or relation %q", name),
		TypeName:    schema.TypeName(),
		Path:        full,
		Offset:      offset,
		Suggestions: match.Suggest(name, schema.Names(), MaxSuggestions),
	})
}

// nested flags openers of the group inside its own body; the first close
// tag ends the outer group, so the inner one is never a group.
func (c *checker) nested(body string, base int, name string, schema *provider.Schema) {
	for _, tok := range token.All(body) {
		if tok.Path == name {
			c.diags.AddWarning(CodeNestedGroup, "group opened again inside itself", typeNameOf(schema), name, base+tok.Start)
		}
	}
}

func (c *checker) strays(text string, base int, schema *provider.Schema) {
	for pos := 0; ; {
		name, start, end, ok := token.NextClose(text, pos)
		if !ok {
			return
		}

		c.diags.AddWarning(CodeStrayClose, "closing tag without an open group", typeNameOf(schema), name, base+start)
		pos = end
	}
}

// target returns the schema a relation leads to, nil when unknown.
func (c *checker) target(schema *provider.Schema, relation string) *provider.Schema {
	if schema == nil || c.lookup == nil {
		return nil
	}

	name := schema.Target(relation)
	if name == "" {
		return nil
	}

	s, ok := c.lookup(name)
	if !ok {
		return nil
	}

	return s
}

func typeNameOf(schema *provider.Schema) string {
	if schema == nil {
		return ""
	}

	return schema.TypeName()
}
