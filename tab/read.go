package tab

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"github.com/extrame/xls"
	"github.com/regbench/regbench"
	"github.com/xuri/excelize/v2"
)

// Format names the on-disk layout of a table, declared by dataset
// configuration rather than guessed from the filename.
type Format string

const (
	// FormatAuto sniffs the delimiter from the file contents.
	FormatAuto Format = ""
	FormatTSV  Format = "tsv"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
)

// UnsupportedFormatError indicates a declared file format that no reader
// handles.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %q", e.Format)
}

// ReadFile parses the file at path according to the declared format.
// Delimited files may be compressed; compression is sniffed from the stream.
func ReadFile(path string, format Format) (*Table, error) {
	switch format {
	case FormatTSV:
		return readDelimitedFile(path, '\t')
	case FormatCSV:
		return readDelimitedFile(path, ',')
	case FormatAuto:
		return readSniffedFile(path)
	case FormatXLSX:
		return readXLSXFile(path)
	case FormatXLS:
		return readXLSFile(path)
	}

	return nil, &UnsupportedFormatError{Format: string(format)}
}

func readDelimitedFile(path string, delim rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	r, err := regbench.MaybeDecompressReadCloserFromFile(f)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer r.Close()

	return readDelimited(r, delim)
}

func readSniffedFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	r, err := regbench.MaybeDecompressReadCloserFromFile(f)
	if err != nil {
		return nil, pfx.Err(err)
	}

	delim := regbench.DetermineDelimiter(r)

	// Uncompressed input hands back the file itself; closing that here
	// would break the rewind below.
	if r != io.ReadCloser(f) {
		r.Close()
	}

	// The decompressed reader cannot seek, so rewind the file and decompress
	// a second time.
	if _, err := f.Seek(0, 0); err != nil {
		return nil, pfx.Err(err)
	}
	r, err = regbench.MaybeDecompressReadCloserFromFile(f)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer r.Close()

	return readDelimited(r, delim)
}

func readDelimited(r io.Reader, delim rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("no header row found")
	} else if err != nil {
		return nil, pfx.Err(err)
	}

	var rows [][]string
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, pfx.Err(err)
		}
		rows = append(rows, row)
	}

	return New(header, rows)
}

func readXLSXFile(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) < 1 {
		return nil, fmt.Errorf("%s contains no sheets", path)
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, pfx.Err(err)
	}

	return fromSheet(raw)
}

func readXLSFile(path string) (*Table, error) {
	spreadsheet, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, pfx.Err(err)
	}

	sheet := spreadsheet.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("%s contains no sheets", path)
	}

	raw := make([][]string, 0, int(sheet.MaxRow)+1)
	for rowID := 0; rowID <= int(sheet.MaxRow); rowID++ {
		row := sheet.Row(rowID)
		if row == nil {
			raw = append(raw, nil)
			continue
		}

		cells := make([]string, 0, row.LastCol()+1)
		for colID := 0; colID <= row.LastCol(); colID++ {
			cells = append(cells, row.Col(colID))
		}
		raw = append(raw, cells)
	}

	return fromSheet(raw)
}

// fromSheet turns ragged spreadsheet rows into a rectangular table. Short
// rows are padded with empty cells; rows wider than the header are an error.
func fromSheet(raw [][]string) (*Table, error) {
	if len(raw) < 1 {
		return nil, fmt.Errorf("no header row found")
	}

	header := raw[0]
	rows := make([][]string, 0, len(raw)-1)
	for i, row := range raw[1:] {
		if len(row) > len(header) {
			return nil, fmt.Errorf("row %d has %d cells, header has %d", i+2, len(row), len(header))
		}
		for len(row) < len(header) {
			row = append(row, "")
		}
		rows = append(rows, row)
	}

	return New(header, rows)
}
