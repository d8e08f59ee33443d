package models

// Spreadsheet column layout. The header row defines these eight columns in
// fixed order A-H; both the loader and the rewriter depend on the names.
const (
	ColumnItem     = "Item"
	ColumnCategory = "Category"
	ColumnCost     = "Cost"
	ColumnDate     = "Date"
	ColumnNotes    = "Notes"
	ColumnMonth    = "Month"
	ColumnMonthNum = "MonthNum"
	ColumnYear     = "Year"
)

// RequiredColumns lists every column the loader expects, in sheet order.
var RequiredColumns = []string{
	ColumnItem,
	ColumnCategory,
	ColumnCost,
	ColumnDate,
	ColumnNotes,
	ColumnMonth,
	ColumnMonthNum,
	ColumnYear,
}

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionReportFile = 0644
	PermissionDirectory  = 0750
)
