package tree

import (
	"context"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.scnd.dev/open/forge/package/materialize"
	"go.scnd.dev/open/forge/package/structure"
)

func billing() *structure.Structure {
	return &structure.Structure{
		ModuleName: "Billing",
		Folders:    []string{"docs", "src", "src/Events", "tests"},
		Files:      []string{"Billing.yaml", "README.md", "docs/Architecture.md"},
	}
}

func TestInspectMissingModule(t *testing.T) {
	report, err := Inspect(memfs.New(), billing())
	require.NoError(t, err)

	assert.False(t, report.Complete())
	assert.Len(t, report.Drift(), 8)
	assert.Equal(t, &Entry{Path: "", Kind: KindFolder, Status: StatusMissing}, report.Entries[0])
}

func TestInspectMaterialized(t *testing.T) {
	fs := memfs.New()
	_, err := materialize.New(fs).Materialize(context.Background(), billing())
	require.NoError(t, err)

	report, err := Inspect(fs, billing())
	require.NoError(t, err)
	assert.True(t, report.Complete())
	assert.Empty(t, report.Drift())
}

func TestInspectDrift(t *testing.T) {
	fs := memfs.New()
	_, err := materialize.New(fs).Materialize(context.Background(), billing())
	require.NoError(t, err)

	require.NoError(t, fs.Remove(fs.Join("Billing", "README.md")))
	require.NoError(t, fs.Remove(fs.Join("Billing", "src", "Events")))
	require.NoError(t, util.WriteFile(fs, fs.Join("Billing", "src", "Events"), []byte("x"), 0o644))

	report, err := Inspect(fs, billing())
	require.NoError(t, err)
	assert.Equal(t, []*Entry{
		{Path: "src/Events", Kind: KindFolder, Status: StatusConflict},
		{Path: "README.md", Kind: KindFile, Status: StatusMissing},
	}, report.Drift())
}
