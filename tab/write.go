package tab

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"
)

// WriteTSV writes the table as tab-separated text, creating parent
// directories as needed. No row index is emitted, just the header and data.
func WriteTSV(t *Table, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return pfx.Err(err)
	}

	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write(t.header); err != nil {
		f.Close()
		return pfx.Err(err)
	}
	for _, row := range t.rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return pfx.Err(err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return pfx.Err(err)
	}

	if err := f.Close(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
