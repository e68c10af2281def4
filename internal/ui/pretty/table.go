package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/docpatch/docpatch/pkg/docops"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 4 // #, OPERATION, RANGE, DETAIL
	minNumWidth      = 3
	minKindWidth     = 12
	minRangeWidth    = 10
	minDetailWidth   = 30
	heavySeparator   = "="
	defaultTermWidth = 100
	snippetLimit     = 40
)

// TableRow represents a single operation row in the preview table.
type TableRow struct {
	Num    string
	Kind   string
	Range  string
	Detail string
}

// TableFormatter formats generated operations as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// FormatTable formats a request list as a styled table with a trailing
// count line.
func (t *TableFormatter) FormatTable(requests []docops.Request) string {
	if len(requests) == 0 {
		return ""
	}

	rows := make([]TableRow, 0, len(requests))
	for i, req := range requests {
		rows = append(rows, RequestToTableRow(i+1, req))
	}

	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")
	builder.WriteString(t.styles.TableLegend.Render(
		fmt.Sprintf(" %d operations", len(requests))))
	builder.WriteString("\n")

	return builder.String()
}

type columnWidths struct {
	num    int
	kind   int
	rng    int
	detail int
}

// calculateColumnWidths determines column widths based on content.
func (t *TableFormatter) calculateColumnWidths(rows []TableRow) columnWidths {
	widths := columnWidths{
		num:    minNumWidth,
		kind:   minKindWidth,
		rng:    minRangeWidth,
		detail: minDetailWidth,
	}

	for _, row := range rows {
		if len(row.Num) > widths.num {
			widths.num = len(row.Num)
		}
		if len(row.Kind) > widths.kind {
			widths.kind = len(row.Kind)
		}
		if len(row.Range) > widths.rng {
			widths.rng = len(row.Range)
		}
		if len(row.Detail) > widths.detail {
			widths.detail = len(row.Detail)
		}
	}

	// Constrain to terminal width by shrinking the detail column.
	totalWidth := t.calculateTotalWidth(widths)
	if totalWidth > t.termWidth {
		excess := totalWidth - t.termWidth
		widths.detail = max(minDetailWidth, widths.detail-excess)
	}

	return widths
}

// calculateTotalWidth calculates the total table width from column widths.
func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	return widths.num + widths.kind + widths.rng + widths.detail +
		(tablePadding * tableColumnCount)
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s",
		widths.num, "#",
		widths.kind, "OPERATION",
		widths.rng, "RANGE",
		widths.detail, "DETAIL",
	)
	return t.styles.TableHeader.Render(header)
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(widths columnWidths) string {
	sep := strings.Repeat(heavySeparator, t.calculateTotalWidth(widths))
	return t.styles.TableSeparator.Render(sep)
}

// formatRow formats a single table row with kind-based styling.
func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	detail := truncateString(row.Detail, widths.detail)

	content := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s",
		widths.num, row.Num,
		widths.kind, row.Kind,
		widths.rng, row.Range,
		widths.detail, detail,
	)

	return t.kindStyle(row.Kind).Render(content)
}

// kindStyle returns the style for an operation kind.
func (t *TableFormatter) kindStyle(kind string) lipgloss.Style {
	switch kind {
	case "insertText", "insertInlineImage", "insertTable":
		return t.styles.Insert
	case "deleteContentRange":
		return t.styles.Delete
	case "updateTextStyle", "updateParagraphStyle", "createParagraphBullets":
		return t.styles.Style
	default:
		return lipgloss.NewStyle()
	}
}

// RequestToTableRow converts one operation to a preview table row.
func RequestToTableRow(num int, req docops.Request) TableRow {
	row := TableRow{
		Num:  strconv.Itoa(num),
		Kind: req.Kind(),
	}

	switch {
	case req.InsertText != nil:
		row.Range = fmt.Sprintf("@%d", req.InsertText.Location.Index)
		row.Detail = snippet(req.InsertText.Text)
	case req.DeleteContentRange != nil:
		row.Range = formatRange(req.DeleteContentRange.Range)
		row.Detail = fmt.Sprintf("%d characters", req.DeleteContentRange.Range.Len())
	case req.UpdateTextStyle != nil:
		row.Range = formatRange(req.UpdateTextStyle.Range)
		row.Detail = req.UpdateTextStyle.Fields
	case req.UpdateParagraphStyle != nil:
		row.Range = formatRange(req.UpdateParagraphStyle.Range)
		row.Detail = string(req.UpdateParagraphStyle.ParagraphStyle.NamedStyleType)
		if row.Detail == "" {
			row.Detail = req.UpdateParagraphStyle.Fields
		}
	case req.CreateParagraphBullets != nil:
		row.Range = formatRange(req.CreateParagraphBullets.Range)
		row.Detail = string(req.CreateParagraphBullets.BulletPreset)
	case req.InsertInlineImage != nil:
		row.Range = fmt.Sprintf("@%d", req.InsertInlineImage.Location.Index)
		row.Detail = req.InsertInlineImage.URI
	case req.InsertTable != nil:
		row.Range = fmt.Sprintf("@%d", req.InsertTable.Location.Index)
		row.Detail = fmt.Sprintf("%dx%d", req.InsertTable.Rows, req.InsertTable.Columns)
	}

	return row
}

// formatRange renders a half-open range as "[start,end)".
func formatRange(r docops.Range) string {
	return fmt.Sprintf("[%d,%d)", r.StartIndex, r.EndIndex)
}

// snippet renders inserted text as a quoted one-line excerpt. Quoting
// escapes newlines, so the excerpt always fits on one row.
func snippet(text string) string {
	quoted := strconv.Quote(text)
	if len(quoted) > snippetLimit {
		quoted = quoted[:snippetLimit-3] + `..."`
	}
	return quoted
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
