package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragonstonehafiz/budgeting-analysis/internal/models"
)

func TestTopItemsOrderingIsDeterministic(t *testing.T) {
	rs := models.RecordSet{
		record("Banana", "Food & Beverages", "10", day(2024, time.January, 1)),
		record("Apple", "Food & Beverages", "10", day(2024, time.January, 2)),
		record("Cherry", "Food & Beverages", "25", day(2024, time.January, 3)),
	}

	top := TopItems(rs, 10)
	require.Len(t, top, 3)
	assert.Equal(t, "Cherry", top[0].Item)
	assert.Equal(t, "Apple", top[1].Item, "equal totals break ties by name ascending")
	assert.Equal(t, "Banana", top[2].Item)
}

func TestTopItemsAggregatesByName(t *testing.T) {
	rs := models.RecordSet{
		record("Game Pass", "Gaming", "10", day(2024, time.January, 1)),
		record("Game Pass", "Gaming", "10", day(2024, time.February, 1)),
	}

	top := TopItems(rs, 10)
	require.Len(t, top, 1)
	assert.True(t, top[0].Total.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, 2, top[0].Count)
}

func TestTopItemsCategoryFromMostRecentTransaction(t *testing.T) {
	rs := models.RecordSet{
		record("Artbook", "Books & Literature", "30", day(2024, time.March, 1)),
		record("Artbook", "Collectibles", "10", day(2024, time.January, 1)),
	}

	top := TopItems(rs, 10)
	require.Len(t, top, 1)
	assert.Equal(t, "Books & Literature", top[0].Category)
}

func TestTopItemsSameDateTieUsesLoadOrder(t *testing.T) {
	rs := models.RecordSet{
		record("Artbook", "Books & Literature", "10", day(2024, time.January, 1)),
		record("Artbook", "Collectibles", "10", day(2024, time.January, 1)),
	}

	top := TopItems(rs, 10)
	require.Len(t, top, 1)
	assert.Equal(t, "Collectibles", top[0].Category, "later row wins on equal dates")
}

func TestTopItemsTruncation(t *testing.T) {
	rs := models.RecordSet{
		record("a", "Gaming", "1", day(2024, time.January, 1)),
		record("b", "Gaming", "2", day(2024, time.January, 1)),
		record("c", "Gaming", "3", day(2024, time.January, 1)),
	}

	assert.Len(t, TopItems(rs, 2), 2)
	assert.Empty(t, TopItems(models.RecordSet{}, 5))
}

func TestCategoryBreakdownFoldsRemainderIntoOther(t *testing.T) {
	rs := models.RecordSet{
		record("a", "Gaming", "100", day(2024, time.January, 1)),
		record("b", "Collectibles", "50", day(2024, time.January, 1)),
		record("c", "Food & Beverages", "20", day(2024, time.January, 1)),
		record("d", "Music & Audio", "10", day(2024, time.January, 1)),
	}

	breakdown := CategoryBreakdown(rs, 2)
	require.Len(t, breakdown, 3)
	assert.Equal(t, "Gaming", breakdown[0].Category)
	assert.Equal(t, "Collectibles", breakdown[1].Category)
	assert.Equal(t, OtherBucket, breakdown[2].Category)
	assert.True(t, breakdown[2].Total.Equal(decimal.NewFromInt(30)), "remainder is aggregated, never dropped")
	assert.Equal(t, 2, breakdown[2].Count)
}

func TestCategoryBreakdownNoOtherWhenWithinTopN(t *testing.T) {
	rs := models.RecordSet{
		record("a", "Gaming", "100", day(2024, time.January, 1)),
		record("b", "Collectibles", "50", day(2024, time.January, 1)),
	}

	breakdown := CategoryBreakdown(rs, 5)
	require.Len(t, breakdown, 2)
	for _, ct := range breakdown {
		assert.NotEqual(t, OtherBucket, ct.Category)
	}
}

func TestCategoryAveragesSortedAscending(t *testing.T) {
	rs := models.RecordSet{
		record("a", "Gaming", "100", day(2024, time.January, 1)),
		record("b", "Gaming", "50", day(2024, time.January, 1)),
		record("c", "Food & Beverages", "5", day(2024, time.January, 1)),
	}

	averages := CategoryAverages(rs)
	require.Len(t, averages, 2)
	assert.Equal(t, "Food & Beverages", averages[0].Category)
	assert.True(t, averages[0].Average.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, "Gaming", averages[1].Category)
	assert.True(t, averages[1].Average.Equal(decimal.NewFromInt(75)))
}

func TestAnnualCategoryTotals(t *testing.T) {
	rs := models.RecordSet{
		record("a", "Gaming", "10", day(2025, time.January, 1)),
		record("b", "Gaming", "20", day(2024, time.June, 1)),
		record("c", "Collectibles", "5", day(2024, time.March, 1)),
	}

	totals := AnnualCategoryTotals(rs)
	require.Len(t, totals, 3)
	assert.Equal(t, "2024", totals[0].Year)
	assert.Equal(t, "Collectibles", totals[0].Category)
	assert.True(t, totals[0].Total.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, "Gaming", totals[1].Category)
	assert.Equal(t, "2024", totals[1].Year)
	assert.Equal(t, "2025", totals[2].Year)
}

func TestAmountDistributionQuartileBins(t *testing.T) {
	rs := models.RecordSet{
		record("a", "Gaming", "1", day(2024, time.January, 1)),
		record("b", "Gaming", "2", day(2024, time.January, 1)),
		record("c", "Gaming", "3", day(2024, time.January, 1)),
		record("d", "Gaming", "4", day(2024, time.January, 1)),
	}

	bins := AmountDistribution(rs)
	require.Len(t, bins, 4)
	for _, bin := range bins {
		assert.Equal(t, 1, bin.Count)
	}
	assert.True(t, bins[0].Total.Equal(decimal.NewFromInt(1)))
	assert.True(t, bins[3].Total.Equal(decimal.NewFromInt(4)))
}

func TestAmountDistributionEmpty(t *testing.T) {
	assert.Empty(t, AmountDistribution(models.RecordSet{}))
}
