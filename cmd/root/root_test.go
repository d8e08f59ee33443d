package root_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dragonstonehafiz/budgeting-analysis/cmd/root"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/categories"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "budgeting-analysis", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "analyze")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestInitRegistersPersistentFlags(t *testing.T) {
	root.Init()

	for _, name := range []string{"input", "output", "period", "search", "format"} {
		assert.NotNil(t, root.Cmd.PersistentFlags().Lookup(name), "missing persistent flag %s", name)
	}
}

func TestRegistryDefaultsToBuiltin(t *testing.T) {
	reg := root.Registry()
	assert.True(t, reg.Contains(categories.Fallback))
	assert.Len(t, reg.Names(), 11)
}

func TestRollingWindowResolution(t *testing.T) {
	assert.Equal(t, 6, root.RollingWindow(6), "flag value wins")
	assert.Equal(t, 3, root.RollingWindow(0), "falls back to the default")
}

func TestTopNResolution(t *testing.T) {
	assert.Equal(t, 5, root.TopN(5))
	assert.Equal(t, 10, root.TopN(0))
}
