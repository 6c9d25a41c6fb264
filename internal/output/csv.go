package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
)

// writeCSV exports the rows of a list payload to path, one record per data
// element. Column order follows the resource's preferred columns when set,
// otherwise the sorted union of keys.
func writeCSV(path string, raw json.RawMessage, columns []string) error {
	payload, ok := parseListPayload(raw)
	if !ok {
		return fmt.Errorf("response is not a list payload")
	}

	cols := columns
	if len(cols) == 0 {
		cols = unionKeys(payload.Data)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(cols); err != nil {
		return err
	}
	for _, item := range payload.Data {
		row := make([]string, len(cols))
		for i, col := range cols {
			row[i] = cellString(item[col])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
