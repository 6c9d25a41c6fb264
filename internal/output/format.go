// Package output renders DailyMed CLI results.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/henrybloomingdale/dailymed-cli/internal/nlm"
)

// Config controls which output mode(s) are active.
type Config struct {
	JSON    bool     // compact raw JSON, exactly as the service sent it
	Human   bool     // lipgloss table for list payloads
	CSVFile string   // export list rows to this CSV path
	Columns []string // preferred columns for table/CSV rendering
}

// FormatResponse writes a response to w according to cfg.
//
// XML results are printed verbatim. A no-content result prints a notice and
// nothing else. JSON results default to indented text; --json emits the raw
// body, --human renders a table when the payload has the standard
// metadata/data list shape (and falls back to indented JSON otherwise).
func FormatResponse(w io.Writer, resp *nlm.Response, cfg Config) error {
	switch resp.Kind {
	case nlm.KindXML:
		if cfg.CSVFile != "" {
			return fmt.Errorf("CSV export requires a JSON list result")
		}
		fmt.Fprintln(w, resp.XML)
		return nil

	case nlm.KindNoContent:
		fmt.Fprintln(w, "Request successful, but no content returned.")
		return nil
	}

	if cfg.CSVFile != "" {
		if err := writeCSV(cfg.CSVFile, resp.JSON, cfg.Columns); err != nil {
			return fmt.Errorf("CSV export failed: %w", err)
		}
	}

	if cfg.JSON {
		if _, err := w.Write(resp.JSON); err != nil {
			return err
		}
		fmt.Fprintln(w)
		return nil
	}

	if cfg.Human {
		if ok, err := formatHuman(w, resp.JSON, cfg.Columns); ok || err != nil {
			return err
		}
		// Not a recognizable list payload; fall through to indented JSON.
	}

	return writeIndented(w, resp.JSON)
}

func writeIndented(w io.Writer, raw json.RawMessage) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(raw)
}
