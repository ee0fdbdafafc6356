package spec

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatYaml Format = "yaml"
	FormatJson Format = "json"
	FormatToml Format = "toml"
)

// ParseError carries the parser diagnostic verbatim.
type ParseError struct {
	Format Format
	Err    error
}

func (r *ParseError) Error() string {
	return r.Err.Error()
}

func (r *ParseError) Unwrap() error {
	return r.Err
}

// ParseFormat maps a user supplied format name, empty meaning yaml.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "yaml", "yml":
		return FormatYaml, nil
	case "json":
		return FormatJson, nil
	case "toml":
		return FormatToml, nil
	default:
		return "", fmt.Errorf("unsupported specification format %q", name)
	}
}

// FormatFromPath guesses the format from a file extension, defaulting to yaml.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJson
	case ".toml":
		return FormatToml
	default:
		return FormatYaml
	}
}

// Parse decodes specification text into a Tree.
func Parse(content []byte, format Format) (*Tree, error) {
	node := new(yaml.Node)

	switch format {
	case FormatToml:
		// * decode into generic values then re-encode as a node tree
		value := make(map[string]any)
		if err := toml.Unmarshal(content, &value); err != nil {
			return nil, &ParseError{Format: format, Err: err}
		}
		if err := node.Encode(value); err != nil {
			return nil, &ParseError{Format: format, Err: err}
		}
	default:
		// * json is a subset of yaml
		if err := yaml.Unmarshal(content, node); err != nil {
			return nil, &ParseError{Format: format, Err: err}
		}
	}

	return NewTree(node)
}
