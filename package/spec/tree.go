package spec

import (
	"errors"

	"gopkg.in/yaml.v3"
)

var ErrInvalidShape = errors.New("invalid specification shape")

// Tree is the parsed, uninterpreted form of a specification. The root is
// always a mapping node; lookups through anything else read as absent.
type Tree struct {
	root *yaml.Node
}

// NewTree wraps a decoded node. A nil or empty document becomes an empty
// mapping, any other non-mapping top level is rejected.
func NewTree(node *yaml.Node) (*Tree, error) {
	// * unwrap document and aliases
	node = resolve(node)
	if node == nil || node.Kind == 0 || IsNull(node) {
		return &Tree{
			root: &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"},
		}, nil
	}

	if node.Kind != yaml.MappingNode {
		return nil, ErrInvalidShape
	}

	return &Tree{root: node}, nil
}

func (r *Tree) Root() *yaml.Node {
	return r.root
}

// Has reports whether the top level mapping carries key, regardless of its value.
func (r *Tree) Has(key string) bool {
	return Child(r.root, key) != nil
}

// Lookup walks nested mappings and returns the value node at path, or nil.
func (r *Tree) Lookup(path ...string) *yaml.Node {
	node := r.root
	for _, key := range path {
		node = Child(node, key)
		if node == nil {
			return nil
		}
	}
	return node
}

// Child returns the value stored under key in a mapping node. Keys merged in
// through `<<` are visible, but the mapping's own keys take precedence.
func Child(node *yaml.Node, key string) *yaml.Node {
	node = resolve(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}

	// * own keys
	merges := make([]*yaml.Node, 0)
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].ShortTag() == tagMerge {
			merges = append(merges, node.Content[i+1])
			continue
		}
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}

	// * merged keys, earlier sources first
	for _, merge := range merges {
		merge = resolve(merge)
		if merge == nil {
			continue
		}
		sources := []*yaml.Node{merge}
		if merge.Kind == yaml.SequenceNode {
			sources = merge.Content
		}
		for _, source := range sources {
			if value := Child(source, key); value != nil {
				return value
			}
		}
	}

	return nil
}

// Items returns the elements of a sequence node, or nil for anything else.
func Items(node *yaml.Node) []*yaml.Node {
	node = resolve(node)
	if node == nil || node.Kind != yaml.SequenceNode {
		return nil
	}
	return node.Content
}

func resolve(node *yaml.Node) *yaml.Node {
	for node != nil {
		switch node.Kind {
		case yaml.DocumentNode:
			if len(node.Content) == 0 {
				return nil
			}
			node = node.Content[0]
		case yaml.AliasNode:
			node = node.Alias
		default:
			return node
		}
	}
	return nil
}
