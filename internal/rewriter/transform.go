package rewriter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/dragonstonehafiz/budgeting-analysis/internal/categories"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/currencyutils"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/dateutils"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/models"
)

const (
	fillWhite        = "FFFFFF"
	fillGrey         = "D9D9D9"
	moneyNumFmt      = `"$"* #,##0.00`
	dateNumFmt       = `dd/mm/yyyy`
	formattingMargin = 150
)

// columnSpec fixes the A-H layout the workbook is normalized to.
type columnSpec struct {
	name   string
	letter string
	width  float64
}

var columnSpecs = []columnSpec{
	{models.ColumnItem, "A", 15},
	{models.ColumnCategory, "B", 15},
	{models.ColumnCost, "C", 10},
	{models.ColumnDate, "D", 12},
	{models.ColumnNotes, "E", 15},
	{models.ColumnMonth, "F", 12},
	{models.ColumnMonthNum, "G", 5},
	{models.ColumnYear, "H", 10},
}

// dataRow is one purchase row lifted out of the sheet for sorting. The raw
// cell text is preserved so unparseable values survive the rewrite intact.
type dataRow struct {
	item     string
	category string
	rawCost  string
	rawDate  string
	notes    string

	cost   float64
	costOK bool
	date   time.Time
	dateOK bool
}

// normalizeColumns writes the canonical header row and column widths.
func (rw *Rewriter) normalizeColumns(f *excelize.File, sheet string) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Style: 1, Color: "000000"},
			{Type: "right", Style: 1, Color: "000000"},
			{Type: "top", Style: 1, Color: "000000"},
			{Type: "bottom", Style: 1, Color: "000000"},
		},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for _, col := range columnSpecs {
		cell := col.letter + "1"
		if err := f.SetCellValue(sheet, cell, col.name); err != nil {
			return fmt.Errorf("writing header %s: %w", col.name, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("styling header %s: %w", col.name, err)
		}
		if err := f.SetColWidth(sheet, col.letter, col.letter, col.width); err != nil {
			return fmt.Errorf("setting width of column %s: %w", col.letter, err)
		}
	}

	if err := f.AutoFilter(sheet, "A1:H1", nil); err != nil {
		return fmt.Errorf("adding autofilter: %w", err)
	}
	return nil
}

// sortRows orders the data rows by date ascending and writes them back.
// Rows whose date cannot be parsed keep their relative order and sink to
// the bottom. Parsed dates are written back as genuine date values.
func (rw *Rewriter) sortRows(f *excelize.File, sheet string, rows [][]string) ([]dataRow, error) {
	var data []dataRow
	for i, row := range rows {
		if i == 0 {
			continue
		}
		dr := parseDataRow(row)
		if dr.item == "" {
			continue
		}
		data = append(data, dr)
	}

	sort.SliceStable(data, func(i, j int) bool {
		a, b := data[i], data[j]
		if a.dateOK != b.dateOK {
			return a.dateOK
		}
		if !a.dateOK {
			return false
		}
		return a.date.Before(b.date)
	})

	// Clear the old data region first so rows beyond the rewritten block
	// (blank-item leftovers) do not linger.
	for r := 2; r <= len(rows); r++ {
		for _, col := range columnSpecs {
			if err := f.SetCellValue(sheet, fmt.Sprintf("%s%d", col.letter, r), nil); err != nil {
				return nil, fmt.Errorf("clearing row %d: %w", r, err)
			}
		}
	}

	for i, dr := range data {
		r := i + 2
		if err := writeDataRow(f, sheet, r, dr); err != nil {
			return nil, err
		}
	}

	log.WithField("rows", len(data)).Debug("Rewrote data rows in date order")

	return data, nil
}

func parseDataRow(row []string) dataRow {
	dr := dataRow{
		item:     strings.TrimSpace(cellAt(row, 0)),
		category: strings.TrimSpace(cellAt(row, 1)),
		rawCost:  strings.TrimSpace(cellAt(row, 2)),
		rawDate:  strings.TrimSpace(cellAt(row, 3)),
		notes:    cellAt(row, 4),
	}

	if amount, err := currencyutils.ParseAmount(dr.rawCost); err == nil {
		dr.cost, _ = amount.Float64()
		dr.costOK = true
	}
	if date, err := dateutils.ParseDate(dr.rawDate); err == nil {
		dr.date = date
		dr.dateOK = true
	}
	return dr
}

func writeDataRow(f *excelize.File, sheet string, r int, dr dataRow) error {
	set := func(letter string, value interface{}) error {
		if err := f.SetCellValue(sheet, fmt.Sprintf("%s%d", letter, r), value); err != nil {
			return fmt.Errorf("writing row %d column %s: %w", r, letter, err)
		}
		return nil
	}

	if err := set("A", dr.item); err != nil {
		return err
	}
	if err := set("B", dr.category); err != nil {
		return err
	}

	// Numeric where possible so the number format can take effect; the raw
	// text is preserved otherwise.
	if dr.costOK {
		if err := set("C", dr.cost); err != nil {
			return err
		}
	} else if err := set("C", dr.rawCost); err != nil {
		return err
	}

	if dr.dateOK {
		if err := set("D", dr.date); err != nil {
			return err
		}
	} else if err := set("D", dr.rawDate); err != nil {
		return err
	}

	if err := set("E", dr.notes); err != nil {
		return err
	}

	// Derived calendar columns are backfilled from the parsed date and left
	// blank when the date is unusable.
	if dr.dateOK {
		if err := set("F", dr.date.Month().String()); err != nil {
			return err
		}
		if err := set("G", int(dr.date.Month())); err != nil {
			return err
		}
		if err := set("H", dr.date.Year()); err != nil {
			return err
		}
	}
	return nil
}

func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// applyValidation constrains the Category column to the registry names via
// a dropdown list.
func (rw *Rewriter) applyValidation(f *excelize.File, sheet string, limit int) error {
	dv := excelize.NewDataValidation(true)
	dv.Sqref = fmt.Sprintf("B2:B%d", limit)
	if err := dv.SetDropList(rw.reg.Names()); err != nil {
		return fmt.Errorf("building category drop list: %w", err)
	}
	if err := f.AddDataValidation(sheet, dv); err != nil {
		return fmt.Errorf("adding category validation: %w", err)
	}
	return nil
}

// applyConditionalFormatting adds one highlight rule per category so rows
// recolor themselves when the Category cell changes.
func (rw *Rewriter) applyConditionalFormatting(f *excelize.File, sheet string, limit int) error {
	ref := fmt.Sprintf("A2:H%d", limit)
	for _, entry := range rw.reg.Entries() {
		styleID, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{rw.reg.FillColor(entry.Name)}, Pattern: 1},
		})
		if err != nil {
			return fmt.Errorf("creating fill style for %s: %w", entry.Name, err)
		}
		criteria := fmt.Sprintf("$B2=%s", strconv.Quote(entry.Name))
		err = f.SetConditionalFormat(sheet, ref, []excelize.ConditionalFormatOptions{{
			Type:       "formula",
			Criteria:   criteria,
			Format:     styleID,
			StopIfTrue: true,
		}})
		if err != nil {
			return fmt.Errorf("adding conditional format for %s: %w", entry.Name, err)
		}
	}
	return nil
}

// styleCache deduplicates cell styles; excelize allocates a slot per
// NewStyle call and workbooks have a hard style limit.
type styleCache struct {
	f      *excelize.File
	styles map[string]int
}

func newStyleCache(f *excelize.File) *styleCache {
	return &styleCache{f: f, styles: make(map[string]int)}
}

func (sc *styleCache) get(fill, kind string) (int, error) {
	key := fill + "|" + kind
	if id, ok := sc.styles[key]; ok {
		return id, nil
	}

	style := &excelize.Style{
		Border: []excelize.Border{
			{Type: "left", Style: 1, Color: "000000"},
			{Type: "right", Style: 1, Color: "000000"},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{fill}, Pattern: 1},
	}
	switch kind {
	case "left":
		style.Alignment.Horizontal = "left"
	case "money":
		style.CustomNumFmt = ptr(moneyNumFmt)
	case "date":
		style.CustomNumFmt = ptr(dateNumFmt)
	}

	id, err := sc.f.NewStyle(style)
	if err != nil {
		return 0, fmt.Errorf("creating %s style: %w", kind, err)
	}
	sc.styles[key] = id
	return id, nil
}

func ptr(s string) *string { return &s }

// formatRows paints the static row styling: alternating month-parity fills
// with a fixed highlight for subscription rows, money and date number
// formats, and column borders. Formatting continues past the data block so
// hand-added rows inherit it.
func (rw *Rewriter) formatRows(f *excelize.File, sheet string, data []dataRow) error {
	sc := newStyleCache(f)

	kinds := map[string]string{
		"A": "left",
		"B": "center",
		"C": "money",
		"D": "date",
		"E": "left",
		"F": "center",
		"G": "center",
		"H": "center",
	}

	last := len(data) + formattingMargin
	for i := 0; i < last; i++ {
		r := i + 2

		fill := fillWhite
		if i < len(data) {
			dr := data[i]
			switch {
			case dr.category == categories.Subscription:
				fill = rw.reg.FillColor(categories.Subscription)
			case dr.dateOK && int(dr.date.Month())%2 != 0:
				fill = fillGrey
			}
		}

		for _, col := range columnSpecs {
			styleID, err := sc.get(fill, kinds[col.letter])
			if err != nil {
				return err
			}
			cell := fmt.Sprintf("%s%d", col.letter, r)
			if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
				return fmt.Errorf("styling cell %s: %w", cell, err)
			}
		}
	}
	return nil
}
