package export

import (
	"bytes"
	"encoding/csv"
)

// utf8BOM makes Excel open the file with the right encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSV renders a header row plus data rows as BOM-prefixed UTF-8 CSV.
func CSV(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
