package document

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// File is the YAML layout of a document.
type File struct {
	Root    string   `yaml:"root,omitempty"`
	Objects []Object `yaml:"objects"`
}

// Object is one node of the graph.
type Object struct {
	ID     string          `yaml:"id"`
	Type   string          `yaml:"type"`
	Fields Ordered[any]    `yaml:"fields,omitempty"`
	One    Ordered[string] `yaml:"one,omitempty"`
	Many   Ordered[IDList] `yaml:"many,omitempty"`
}

// Ordered is a YAML mapping that remembers its key order.
type Ordered[V any] struct {
	Keys   []string
	Values map[string]V
}

// Get returns the value stored under key.
func (o Ordered[V]) Get(key string) (V, bool) {
	v, ok := o.Values[key]
	return v, ok
}

// Len returns the number of keys.
func (o Ordered[V]) Len() int {
	return len(o.Keys)
}

// UnmarshalYAML implements custom YAML unmarshaling for Ordered.
func (o *Ordered[V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping, got %s", node.Line, nodeKind(node))
	}

	o.Keys = make([]string, 0, len(node.Content)/2)
	o.Values = make(map[string]V, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return err
		}

		if _, dup := o.Values[key]; dup {
			return fmt.Errorf("line %d: duplicate key %q", keyNode.Line, key)
		}

		var value V
		if err := valueNode.Decode(&value); err != nil {
			return fmt.Errorf("line %d: %s: %w", valueNode.Line, key, err)
		}

		o.Keys = append(o.Keys, key)
		o.Values[key] = value
	}

	return nil
}

// MarshalYAML implements custom YAML marshaling for Ordered.
func (o Ordered[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, key := range o.Keys {
		var valueNode yaml.Node
		if err := valueNode.Encode(o.Values[key]); err != nil {
			return nil, err
		}

		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, &valueNode)
	}

	return node, nil
}

// IsZero lets omitempty drop empty mappings.
func (o Ordered[V]) IsZero() bool {
	return len(o.Keys) == 0
}

// IDList is a list of object ids. A single id may be written as a scalar.
type IDList []string

// UnmarshalYAML implements custom YAML unmarshaling for IDList.
// Accepts either a single string or an array of strings.
func (l *IDList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var id string
		if err := node.Decode(&id); err != nil {
			return err
		}

		if id != "" {
			*l = IDList{id}
		} else {
			*l = IDList{}
		}

		return nil

	case yaml.SequenceNode:
		var ids []string
		if err := node.Decode(&ids); err != nil {
			return err
		}

		*l = ids

		return nil

	default:
		return fmt.Errorf("expected id or list of ids, got %s", nodeKind(node))
	}
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
