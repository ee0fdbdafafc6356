package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.scnd.dev/open/forge/package/span"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath   = "forge.yml"
	PathVariable  = "FORGE_CONFIG_PATH"
	DefaultListen = "127.0.0.1:6060"
	DefaultOutput = "."
)

var templateRegex = regexp.MustCompile(`\{\{\s*([^}]+)\s*}}`)

// New reads a templated yaml configuration. A missing file yields the zero configuration.
func New[T any](path string) (*T, error) {
	// * create new config instance
	config := new(T)

	// * read config file
	bytes, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, span.NewError(nil, "unable to read configuration file", err)
	}

	// * process template replacements
	templated, err := Template(bytes)
	if err != nil {
		return nil, span.NewError(nil, "error processing templates", err)
	}

	// * parse config
	if err := yaml.Unmarshal(templated, config); err != nil {
		return nil, span.NewError(nil, "unable to parse configuration file", err)
	}

	// * validate config
	if err := validator.New().Struct(config); err != nil {
		return nil, span.NewError(nil, "invalid configuration", err)
	}

	return config, nil
}

func Template(bytes []byte) ([]byte, error) {
	processed := templateRegex.ReplaceAllFunc(bytes, func(match []byte) []byte {
		// * extract content inside braces
		content := strings.TrimSpace(string(match[2 : len(match)-2]))

		// * split by separator
		parts := strings.Split(content, "||")
		for i, part := range parts {
			parts[i] = strings.TrimSpace(part)
		}

		// * check each part
		for _, part := range parts {
			if strings.HasPrefix(part, "env.") {
				key := strings.TrimPrefix(part, "env.")
				value := os.Getenv(key)
				if value != "" {
					return []byte(value)
				}
			} else if part != "" {
				value, err := Nested(part)
				if err != nil {
					return []byte(part)
				}
				return []byte(value)
			}
		}

		// * no valid value found, return empty
		return []byte("")
	})

	return processed, nil
}

func Nested(value string) (string, error) {
	// * try to parse as json
	var result any
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		return "", err
	}

	// * convert back to yaml
	bytes, err := yaml.Marshal(result)
	if err != nil {
		return "", err
	}

	// * remove trailing newline
	return strings.TrimSuffix(string(bytes), "\n"), nil
}

// Path picks the configuration path from the flag, then the environment, then the default.
func Path(flag string) string {
	if flag != "" {
		return flag
	}
	if path := os.Getenv(PathVariable); path != "" {
		return path
	}
	return DefaultPath
}
