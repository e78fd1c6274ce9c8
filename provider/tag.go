package provider

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// TagKey is the struct tag key read by the Registry.
const TagKey = "placeholder"

// Tag is a parsed placeholder struct tag.
type Tag struct {
	Name string
	Kind RelationKind // RelationNone for plain fields
}

// ParseTag parses the value of a placeholder tag on the Go field goName.
// ok is false for "-". An empty name defaults to the snake_case of goName.
func ParseTag(goName, raw string) (tag Tag, ok bool, err error) {
	if raw == "-" {
		return Tag{}, false, nil
	}

	name, opts, _ := strings.Cut(raw, ",")

	name = strings.TrimSpace(name)
	if name == "" {
		name = strcase.ToSnake(goName)
	}

	if !IsValidName(name) {
		return Tag{}, false, fmt.Errorf("field %s: invalid placeholder name %q", goName, name)
	}

	tag.Name = name

	switch strings.TrimSpace(opts) {
	case "":
		tag.Kind = RelationNone
	case "one":
		tag.Kind = RelationOne
	case "many":
		tag.Kind = RelationMany
	default:
		return Tag{}, false, fmt.Errorf("field %s: unknown placeholder option %q", goName, opts)
	}

	return tag, true, nil
}
