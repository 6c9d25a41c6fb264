package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// --- Styles ---

var (
	bold       = lipgloss.NewStyle().Bold(true)
	dim        = lipgloss.NewStyle().Faint(true)
	headerCell = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	borderGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// listPayload is the common shape of DailyMed list responses.
type listPayload struct {
	Metadata listMetadata     `json:"metadata"`
	Data     []map[string]any `json:"data"`
}

type listMetadata struct {
	TotalElements   int `json:"total_elements"`
	TotalPages      int `json:"total_pages"`
	CurrentPage     int `json:"current_page"`
	ElementsPerPage int `json:"elements_per_page"`
}

// formatHuman renders a list payload as a table. It reports false when the
// payload does not have the metadata/data shape, so the caller can fall back
// to indented JSON.
func formatHuman(w io.Writer, raw json.RawMessage, columns []string) (bool, error) {
	payload, ok := parseListPayload(raw)
	if !ok {
		return false, nil
	}

	if len(payload.Data) == 0 {
		fmt.Fprintln(w, "No results found.")
		return true, nil
	}

	cols := columns
	if len(cols) == 0 {
		cols = unionKeys(payload.Data)
	}

	var rows [][]string
	for _, item := range payload.Data {
		row := make([]string, len(cols))
		for i, col := range cols {
			row[i] = cellString(item[col])
		}
		rows = append(rows, row)
	}

	header := fmt.Sprintf("Found %d results", payload.Metadata.TotalElements)
	if payload.Metadata.TotalElements == 0 {
		header = fmt.Sprintf("Found %d results", len(payload.Data))
	}
	fmt.Fprintln(w, bold.Render(header))

	t := table.New().
		Headers(cols...).
		Rows(rows...).
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderGray).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCell
			}
			return lipgloss.NewStyle()
		})
	fmt.Fprintln(w, t.Render())

	if payload.Metadata.TotalPages > 0 {
		fmt.Fprintln(w, dim.Render(fmt.Sprintf("Page %d of %d", payload.Metadata.CurrentPage, payload.Metadata.TotalPages)))
	}

	return true, nil
}

func parseListPayload(raw json.RawMessage) (*listPayload, bool) {
	var payload listPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false
	}
	if payload.Data == nil {
		return nil, false
	}
	return &payload, true
}

// unionKeys returns the sorted union of keys across all rows.
func unionKeys(rows []map[string]any) []string {
	seen := make(map[string]bool)
	for _, row := range rows {
		for k := range row {
			seen[k] = true
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// cellString renders a decoded JSON scalar for a table or CSV cell.
func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
