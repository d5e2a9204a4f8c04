package report

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Alignment positions cell content within a column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Row is one document in the summary table.
type Row struct {
	Document  string
	Title     string
	Items     int
	LiveItems int
	Status    string
	Duration  string
}

// SummaryTable renders rows as a rounded table.
func SummaryTable(rows []Row) string {
	headers := []string{"Document", "Title", "Items", "Live", "Status", "Time"}
	aligns := []Alignment{AlignLeft, AlignLeft, AlignRight, AlignRight, AlignLeft, AlignRight}
	body := make([][]string, 0, len(rows))
	for _, row := range rows {
		body = append(body, []string{
			row.Document,
			row.Title,
			strconv.Itoa(row.Items),
			strconv.Itoa(row.LiveItems),
			row.Status,
			row.Duration,
		})
	}
	return RenderTable(headers, body, aligns...)
}

// RenderTable renders a generic table; missing cells are left blank.
func RenderTable(headers []string, rows [][]string, aligns ...Alignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == AlignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
