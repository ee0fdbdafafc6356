package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate(t *testing.T) {
	t.Setenv("FORGE_TEST_LISTEN", "0.0.0.0:7070")

	templated, err := Template([]byte(`listen: {{ env.FORGE_TEST_LISTEN || 127.0.0.1:6060 }}
output: {{ env.FORGE_TEST_UNSET || generated }}
tags: {{ env.FORGE_TEST_UNSET || ["a","b"] }}
empty: {{ env.FORGE_TEST_UNSET }}`))
	require.NoError(t, err)

	assert.Equal(t, `listen: 0.0.0.0:7070
output: generated
tags: - a
- b
empty: `, string(templated))
}

func TestNested(t *testing.T) {
	value, err := Nested(`{"level":"debug"}`)
	require.NoError(t, err)
	assert.Equal(t, "level: debug", value)

	_, err = Nested("plain")
	assert.Error(t, err)
}

func TestNewMissingFile(t *testing.T) {
	config, err := New[Config](filepath.Join(t.TempDir(), "forge.yml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultListen, *config.GetWebListen())
	assert.Equal(t, DefaultOutput, config.GetOutput())
	assert.Empty(t, config.GetApiSecret())
	assert.Empty(t, config.GetGenerateRoot())
	assert.Nil(t, config.GetMinioEndpoint())
}

func TestNewFile(t *testing.T) {
	t.Setenv("FORGE_TEST_SECRET", "s3cr3t")
	path := filepath.Join(t.TempDir(), "forge.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen: 0.0.0.0:8080
output: build
log:
  level: debug
  json: true
api:
  secret: {{ env.FORGE_TEST_SECRET || fallback }}
generate:
  root: /srv/modules
telemetry:
  name: forge-api
  url: {{ env.FORGE_TEST_UNSET }}
minio:
  endpoint: https://storage.example.com
  access_key: access
  secret_key: secret
`), 0o644))

	config, err := New[Config](path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", *config.GetWebListen())
	assert.Equal(t, "build", config.GetOutput())
	assert.Equal(t, "s3cr3t", config.GetApiSecret())
	assert.Equal(t, "/srv/modules", config.GetGenerateRoot())
	assert.Equal(t, "https://storage.example.com", *config.GetMinioEndpoint())

	instance := config.Forge(true)
	assert.Equal(t, "forge-api", *instance.AppName)
	assert.Equal(t, "debug", *instance.LogLevel)
	assert.True(t, *instance.LogJson)
	assert.True(t, *instance.Verbose)
	assert.Nil(t, instance.TelemetryUrl)
}

func TestNewInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forge.yml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o644))

	_, err := New[Config](path)
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	t.Setenv(PathVariable, "")
	assert.Equal(t, DefaultPath, Path(""))

	t.Setenv(PathVariable, "/etc/forge.yml")
	assert.Equal(t, "/etc/forge.yml", Path(""))
	assert.Equal(t, "custom.yml", Path("custom.yml"))
}
