package document

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/aretw0/objwatch/pkg/object"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedDocument is returned when the top level of a document is not a mapping.
	ErrUnsupportedDocument = errors.New("document root must be a mapping")
	// ErrPathNotFound is returned when a path does not resolve to an existing container.
	ErrPathNotFound = errors.New("path not found")
	// ErrInvalidPath is returned for malformed path expressions.
	ErrInvalidPath = errors.New("invalid path")
)

// LoadFile reads a YAML or JSON file into an object graph.
func LoadFile(path string) (*object.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// Decode parses YAML (or JSON, which YAML accepts) into an object graph,
// keeping mapping keys in document order. An empty input yields an empty object.
func Decode(data []byte) (*object.Object, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 {
		return object.New(), nil
	}

	v, err := fromNode(&root)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(*object.Object)
	if !ok {
		return nil, ErrUnsupportedDocument
	}
	return obj, nil
}

func fromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return object.New(), nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.MappingNode:
		obj := object.New()
		for i := 0; i+1 < len(n.Content); i += 2 {
			var name string
			if err := n.Content[i].Decode(&name); err != nil {
				return nil, fmt.Errorf("line %d: mapping key: %w", n.Content[i].Line, err)
			}
			v, err := fromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Set(name, v)
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := object.NewArray()
		for _, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return nil, err
			}
			arr.Push(v)
		}
		return arr, nil
	case yaml.ScalarNode:
		if n.ShortTag() == "!!timestamp" {
			var t time.Time
			if err := n.Decode(&t); err == nil {
				return t, nil
			}
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, nil
	}
	return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
}

// Encode renders an object graph as YAML, keeping property order.
// Values are read through any installed accessors.
func Encode(c object.Container) ([]byte, error) {
	n, err := toNode(c)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(n)
}

func toNode(v any) (*yaml.Node, error) {
	switch x := v.(type) {
	case *object.Object:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range x.Keys() {
			val, _ := x.Lookup(k)
			child, err := toNode(val)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k.Name()}, child)
		}
		return n, nil
	case *object.Array:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i := 0; i < x.Len(); i++ {
			child, err := toNode(x.At(i))
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, child)
		}
		return n, nil
	case time.Time:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!timestamp", Value: x.Format(time.RFC3339Nano)}, nil
	case *regexp.Regexp:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: x.String()}, nil
	case error:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: x.Error()}, nil
	}

	if object.KindOf(v) == object.KindFunction {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}

	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return n, nil
}
