package serve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.scnd.dev/open/forge"
	"go.scnd.dev/open/forge/command/forge/common/config"
	"go.scnd.dev/open/forge/core"
	"go.uber.org/fx"
)

func TestOptions(t *testing.T) {
	instance, err := core.New(&forge.Config{})
	require.NoError(t, err)
	defer func() {
		_ = instance.Shutdown(context.Background())
	}()

	assert.NoError(t, fx.ValidateApp(Options(&config.Config{}, instance)))
}
