// Package report renders analytics results for the CLI: machine-readable
// JSON or YAML, or plain text tables for terminal use.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/dragonstonehafiz/budgeting-analysis/internal/currencyutils"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/dateutils"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/models"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/rewriter"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Supported output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// Generator renders analytics results in the supported output formats.
type Generator struct{}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders v in the requested format. Text rendering is supported
// for the analytics result types; other values fall back with an error.
func (g *Generator) Generate(v interface{}, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			log.WithError(err).Error("Failed to marshal JSON report")
			return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
		}
		return out, nil
	case FormatYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			log.WithError(err).Error("Failed to marshal YAML report")
			return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
		}
		return out, nil
	case FormatText:
		return g.generateText(v)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateText(v interface{}) ([]byte, error) {
	switch r := v.(type) {
	case models.KPIResult:
		rows := make([][]string, len(r))
		for i, k := range r {
			rows[i] = []string{k.Name, k.Value}
		}
		return table([]string{"Metric", "Value"}, rows), nil

	case models.TimeSeries:
		rows := make([][]string, len(r))
		for i, p := range r {
			rows[i] = []string{dateutils.ToISODate(p.Period), currencyutils.FormatUSD(p.Total)}
		}
		return table([]string{"Period", "Total"}, rows), nil

	case []models.RollingPoint:
		rows := make([][]string, len(r))
		for i, p := range r {
			rows[i] = []string{
				dateutils.ToISODate(p.Period),
				currencyutils.FormatUSDFloat(p.Mean),
				currencyutils.FormatUSDFloat(p.Std),
			}
		}
		return table([]string{"Period", "Mean", "Std"}, rows), nil

	case []models.ItemTotal:
		rows := make([][]string, len(r))
		for i, it := range r {
			rows[i] = []string{it.Item, it.Category, currencyutils.FormatUSD(it.Total), fmt.Sprintf("%d", it.Count)}
		}
		return table([]string{"Item", "Category", "Total", "Count"}, rows), nil

	case []models.CategoryTotal:
		rows := make([][]string, len(r))
		for i, ct := range r {
			rows[i] = []string{ct.Category, currencyutils.FormatUSD(ct.Total), fmt.Sprintf("%d", ct.Count)}
		}
		return table([]string{"Category", "Total", "Count"}, rows), nil

	case []models.CategoryAverage:
		rows := make([][]string, len(r))
		for i, ca := range r {
			rows[i] = []string{
				ca.Category,
				currencyutils.FormatUSD(ca.Average),
				currencyutils.FormatUSD(ca.Total),
				fmt.Sprintf("%d", ca.Count),
			}
		}
		return table([]string{"Category", "Average", "Total", "Count"}, rows), nil

	case []models.YearCategoryTotal:
		rows := make([][]string, len(r))
		for i, yt := range r {
			rows[i] = []string{yt.Year, yt.Category, currencyutils.FormatUSD(yt.Total)}
		}
		return table([]string{"Year", "Category", "Total"}, rows), nil

	case []models.DistributionBin:
		rows := make([][]string, len(r))
		for i, b := range r {
			rows[i] = []string{b.Label, fmt.Sprintf("%d", b.Count), currencyutils.FormatUSD(b.Total)}
		}
		return table([]string{"Bin", "Count", "Total"}, rows), nil

	case *rewriter.Report:
		rows := [][]string{
			{"Run ID", r.ID},
			{"Backup", r.BackupPath},
			{"Data rows", fmt.Sprintf("%d", r.DataRows)},
			{"Unparsed dates", fmt.Sprintf("%d", r.UnparsedDates)},
			{"Duration", r.Duration.String()},
		}
		return table([]string{"Field", "Value"}, rows), nil

	default:
		return nil, fmt.Errorf("no text rendering for %T", v)
	}
}

// table renders a plain left-aligned text table with a header separator.
func table(headers []string, rows [][]string) []byte {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			if i < len(cells)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers)
	sep := make([]string, len(headers))
	for i := range headers {
		sep[i] = strings.Repeat("-", widths[i])
	}
	writeRow(sep)
	for _, row := range rows {
		writeRow(row)
	}
	return []byte(b.String())
}
