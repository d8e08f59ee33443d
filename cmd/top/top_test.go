package top_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dragonstonehafiz/budgeting-analysis/cmd/top"
)

func TestTopCommand_Metadata(t *testing.T) {
	assert.Equal(t, "top", top.Cmd.Use)
	assert.Contains(t, top.Cmd.Short, "Rank")
	assert.Contains(t, top.Cmd.Long, "Other")
	assert.NotNil(t, top.Cmd.Run)
}

func TestTopCommand_Flags(t *testing.T) {
	viewFlag := top.Cmd.Flags().Lookup("view")
	assert.NotNil(t, viewFlag)
	assert.Equal(t, top.ViewItems, viewFlag.DefValue)

	assert.NotNil(t, top.Cmd.Flags().Lookup("top"))
}
