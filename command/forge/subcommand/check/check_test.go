package check

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.scnd.dev/open/forge/command/forge/app"
	"go.scnd.dev/open/forge/command/forge/subcommand/generate"
)

const content = "module: Billing\nmonitoring: true\n"

func newApp(t *testing.T, buffer *bytes.Buffer) *app.App {
	return &app.App{
		ConfigPath: filepath.Join(t.TempDir(), "forge.yml"),
		Stdin:      strings.NewReader(content),
		Stdout:     buffer,
	}
}

func TestRunComplete(t *testing.T) {
	output := t.TempDir()
	require.NoError(t, generate.Run(newApp(t, new(bytes.Buffer)), &generate.Command{Source: "-", Output: output}))

	buffer := new(bytes.Buffer)
	require.NoError(t, Run(newApp(t, buffer), &Command{Source: "-", Output: output}))
	assert.Contains(t, buffer.String(), "OK")
}

func TestRunDrift(t *testing.T) {
	output := t.TempDir()
	require.NoError(t, generate.Run(newApp(t, new(bytes.Buffer)), &generate.Command{Source: "-", Output: output}))
	require.NoError(t, os.Remove(filepath.Join(output, "Billing", "src", "Monitoring")))

	buffer := new(bytes.Buffer)
	err := Run(newApp(t, buffer), &Command{Source: "-", Output: output})
	assert.ErrorIs(t, err, ErrDrift)
	assert.Contains(t, buffer.String(), "Billing/src/Monitoring")
}
