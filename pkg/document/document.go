// Package document loads the mind-map source file into an order-preserving
// tree value.
//
// # Overview
//
// The input is a YAML document whose top level must be a mapping. Every value
// in the tree is one of three kinds: a mapping of string keys to values, a
// sequence of values, or a scalar. The walker in [pkg/mindmap] pattern-matches
// on these kinds instead of inspecting runtime types.
//
// Mapping iteration order follows the source document. Go maps do not keep
// insertion order, so decoding goes through the yaml.v3 node API rather than
// an Unmarshal into map[string]any.
package document

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingInput is returned by [Load] when the input file does not
	// exist. It is reported before any parsing or graph construction begins.
	ErrMissingInput = errors.New("input file not found")

	// ErrSchema is returned when the top-level document value is not a
	// mapping. Sequences and bare scalars have no top-level branches to
	// assign palette colors to.
	ErrSchema = errors.New("top-level document must be a mapping")
)

// Kind discriminates the three value shapes a document tree can hold.
type Kind int

const (
	// KindMapping is an ordered set of key/value pairs.
	KindMapping Kind = iota
	// KindSequence is an ordered list of values.
	KindSequence
	// KindScalar is a terminal leaf (string, number, bool, ...).
	KindScalar
)

// Pair is one key/value entry of a mapping, in source order.
type Pair struct {
	Key   string
	Value *Value
}

// Value is one node of the parsed document tree. Exactly the field matching
// Kind is meaningful: Pairs for mappings, Items for sequences, Scalar for
// leaves. Values are immutable once loaded.
type Value struct {
	Kind   Kind
	Pairs  []Pair   // KindMapping
	Items  []*Value // KindSequence
	Scalar string   // KindScalar, the literal YAML text of the scalar
}

// IsContainer reports whether the value is a mapping or a sequence.
func (v *Value) IsContainer() bool {
	return v.Kind == KindMapping || v.Kind == KindSequence
}

// Load reads and parses the document at path. It fails with [ErrMissingInput]
// if the file does not exist, and with [ErrSchema] if the parsed top level is
// not a mapping.
func Load(path string) (*Value, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML document and converts it into a Value tree.
// The top level must be a mapping.
func Parse(data []byte) (*Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ErrSchema
	}
	top, err := fromNode(root.Content[0])
	if err != nil {
		return nil, err
	}
	if top.Kind != KindMapping {
		return nil, ErrSchema
	}
	return top, nil
}

// fromNode converts a yaml node into a Value, resolving aliases.
func fromNode(n *yaml.Node) (*Value, error) {
	switch n.Kind {
	case yaml.MappingNode:
		v := &Value{Kind: KindMapping, Pairs: make([]Pair, 0, len(n.Content)/2)}
		for i := 0; i+1 < len(n.Content); i += 2 {
			child, err := fromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			v.Pairs = append(v.Pairs, Pair{Key: n.Content[i].Value, Value: child})
		}
		return v, nil
	case yaml.SequenceNode:
		v := &Value{Kind: KindSequence, Items: make([]*Value, 0, len(n.Content))}
		for _, c := range n.Content {
			child, err := fromNode(c)
			if err != nil {
				return nil, err
			}
			v.Items = append(v.Items, child)
		}
		return v, nil
	case yaml.ScalarNode:
		return &Value{Kind: KindScalar, Scalar: n.Value}, nil
	case yaml.AliasNode:
		return fromNode(n.Alias)
	default:
		return nil, fmt.Errorf("unsupported node kind %d at line %d", n.Kind, n.Line)
	}
}
