package spec

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	tagNull  = "!!null"
	tagBool  = "!!bool"
	tagInt   = "!!int"
	tagFloat = "!!float"
	tagStr   = "!!str"
	tagMerge = "!!merge"
)

// Present reports whether a node is semantically present: non-empty
// collections, non-empty text, non-zero numbers and true booleans.
func Present(node *yaml.Node) bool {
	node = resolve(node)
	if node == nil {
		return false
	}

	switch node.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		return len(node.Content) > 0
	case yaml.ScalarNode:
		return scalarPresent(node)
	default:
		return false
	}
}

func scalarPresent(node *yaml.Node) bool {
	switch node.ShortTag() {
	case tagNull:
		return false
	case tagBool:
		var value bool
		if err := node.Decode(&value); err != nil {
			return false
		}
		return value
	case tagInt:
		var value int64
		if err := node.Decode(&value); err != nil {
			// * out of int64 range is still non-zero
			return strings.Trim(node.Value, "+-0_") != ""
		}
		return value != 0
	case tagFloat:
		var value float64
		if err := node.Decode(&value); err != nil {
			return true
		}
		return value != 0
	default:
		return node.Value != ""
	}
}

// IsNull reports whether node is an explicit or implicit null scalar.
func IsNull(node *yaml.Node) bool {
	node = resolve(node)
	return node != nil && node.Kind == yaml.ScalarNode && node.ShortTag() == tagNull
}

// IsString reports whether node resolves to a string scalar.
func IsString(node *yaml.Node) bool {
	node = resolve(node)
	return node != nil && node.Kind == yaml.ScalarNode && node.ShortTag() == tagStr
}

// Text returns the literal text of a non-null scalar and whether there was one.
func Text(node *yaml.Node) (string, bool) {
	node = resolve(node)
	if node == nil || node.Kind != yaml.ScalarNode || node.ShortTag() == tagNull {
		return "", false
	}
	return node.Value, true
}
