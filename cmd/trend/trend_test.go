package trend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dragonstonehafiz/budgeting-analysis/cmd/trend"
)

func TestTrendCommand_Metadata(t *testing.T) {
	assert.Equal(t, "trend", trend.Cmd.Use)
	assert.Contains(t, trend.Cmd.Short, "over time")
	assert.NotNil(t, trend.Cmd.Run)
}

func TestTrendCommand_Flags(t *testing.T) {
	seriesFlag := trend.Cmd.Flags().Lookup("series")
	assert.NotNil(t, seriesFlag)
	assert.Equal(t, trend.SeriesMonthly, seriesFlag.DefValue)

	assert.NotNil(t, trend.Cmd.Flags().Lookup("window"))
}
