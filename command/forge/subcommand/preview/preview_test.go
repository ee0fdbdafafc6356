package preview

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.scnd.dev/open/forge/command/forge/app"
)

const content = `
module: Billing
architecture:
  layers:
    - name: Domain Core
    - name: Infrastructure
`

func run(t *testing.T, command *Command) string {
	t.Helper()
	buffer := new(bytes.Buffer)
	err := Run(&app.App{
		ConfigPath: filepath.Join(t.TempDir(), "forge.yml"),
		Stdin:      strings.NewReader(content),
		Stdout:     buffer,
	}, command)
	require.NoError(t, err)
	return buffer.String()
}

func TestRunTree(t *testing.T) {
	output := run(t, &Command{Source: "-"})

	assert.True(t, strings.HasPrefix(output, "Billing\n"))
	assert.Contains(t, output, "DomainCore")
	assert.Contains(t, output, "Infrastructure")
	assert.Contains(t, output, "Architecture.md")
}

func TestRunJson(t *testing.T) {
	output := run(t, &Command{Source: "-", Json: true})

	assert.JSONEq(t, `{
		"module_name": "Billing",
		"folders": ["docs", "src", "src/DomainCore", "src/Infrastructure", "tests"],
		"files": ["Billing.yaml", "README.md", "docs/Architecture.md"]
	}`, output)
}
