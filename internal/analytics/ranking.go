package analytics

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dragonstonehafiz/budgeting-analysis/internal/models"
)

// OtherBucket is the label aggregating categories beyond the top N in the
// category breakdown. Remainders are never silently dropped.
const OtherBucket = "Other"

// TopItems groups records by item name, sums cost and returns the n
// largest, sorted by total descending with ties broken by item name
// ascending so chart ordering is reproducible. When an item spans
// categories, the category of its most recent transaction wins; ties on
// the same date resolve to the later row in load order.
func TopItems(records models.RecordSet, n int) []models.ItemTotal {
	type itemAgg struct {
		total    decimal.Decimal
		count    int
		category string
		lastDate int64
		lastIdx  int
	}

	byItem := make(map[string]*itemAgg)
	for i, r := range records {
		agg, ok := byItem[r.Item]
		if !ok {
			agg = &itemAgg{lastDate: -1, lastIdx: -1}
			byItem[r.Item] = agg
		}
		agg.total = agg.total.Add(r.Cost)
		agg.count++

		when := r.Date.Unix()
		if when > agg.lastDate || (when == agg.lastDate && i > agg.lastIdx) {
			agg.lastDate = when
			agg.lastIdx = i
			agg.category = r.Category
		}
	}

	out := make([]models.ItemTotal, 0, len(byItem))
	for item, agg := range byItem {
		out = append(out, models.ItemTotal{
			Item:     item,
			Category: agg.category,
			Total:    agg.total,
			Count:    agg.count,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Item < out[j].Item
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// CategoryBreakdown groups by category, keeps the topN largest and folds
// the remainder into a single "Other" bucket.
func CategoryBreakdown(records models.RecordSet, topN int) []models.CategoryTotal {
	totals := categoryTotals(records)
	if topN <= 0 || len(totals) <= topN {
		return totals
	}

	kept := totals[:topN]
	other := models.CategoryTotal{Category: OtherBucket}
	for _, ct := range totals[topN:] {
		other.Total = other.Total.Add(ct.Total)
		other.Count += ct.Count
	}
	return append(kept, other)
}

func categoryTotals(records models.RecordSet) []models.CategoryTotal {
	byCategory := make(map[string]*models.CategoryTotal)
	for _, r := range records {
		ct, ok := byCategory[r.Category]
		if !ok {
			ct = &models.CategoryTotal{Category: r.Category}
			byCategory[r.Category] = ct
		}
		ct.Total = ct.Total.Add(r.Cost)
		ct.Count++
	}

	out := make([]models.CategoryTotal, 0, len(byCategory))
	for _, ct := range byCategory {
		out = append(out, *ct)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// CategoryAverages reports per-category total, count and average cost per
// transaction, sorted by average ascending.
func CategoryAverages(records models.RecordSet) []models.CategoryAverage {
	totals := categoryTotals(records)

	out := make([]models.CategoryAverage, 0, len(totals))
	for _, ct := range totals {
		avg := decimal.Zero
		if ct.Count > 0 {
			avg = ct.Total.Div(decimal.NewFromInt(int64(ct.Count))).Round(2)
		}
		out = append(out, models.CategoryAverage{
			Category: ct.Category,
			Total:    ct.Total,
			Count:    ct.Count,
			Average:  avg,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Average.Cmp(out[j].Average); c != 0 {
			return c < 0
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// AnnualCategoryTotals groups spend by (year, category), sorted by year
// then category ascending.
func AnnualCategoryTotals(records models.RecordSet) []models.YearCategoryTotal {
	type key struct{ year, category string }

	totals := make(map[key]decimal.Decimal)
	for _, r := range records {
		k := key{r.Year, r.Category}
		totals[k] = totals[k].Add(r.Cost)
	}

	out := make([]models.YearCategoryTotal, 0, len(totals))
	for k, total := range totals {
		out = append(out, models.YearCategoryTotal{
			Year:     k.year,
			Category: k.category,
			Total:    total,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// AmountDistribution buckets transactions into four quartile bins by
// individual cost and reports per-bin count and total.
func AmountDistribution(records models.RecordSet) []models.DistributionBin {
	if len(records) == 0 {
		return []models.DistributionBin{}
	}

	costs := records.Costs()
	q1, q2, q3 := Quartiles(costs)

	bins := []models.DistributionBin{
		{Label: fmt.Sprintf("Bottom 25%% (≤ $%.2f)", q1)},
		{Label: fmt.Sprintf("25–50%% ($%.2f–$%.2f)", q1, q2)},
		{Label: fmt.Sprintf("50–75%% ($%.2f–$%.2f)", q2, q3)},
		{Label: fmt.Sprintf("Top 25%% (> $%.2f)", q3)},
	}

	for _, r := range records {
		c := r.Cost.InexactFloat64()
		idx := 3
		switch {
		case c <= q1:
			idx = 0
		case c <= q2:
			idx = 1
		case c <= q3:
			idx = 2
		}
		bins[idx].Count++
		bins[idx].Total = bins[idx].Total.Add(r.Cost)
	}
	return bins
}
