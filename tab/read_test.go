package tab

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestReadTSV(t *testing.T) {
	path := writeTempFile(t, "pairs.tsv", "chrom\tchromStart\tSignificant\nchr1\t100\tTRUE\nchr2\t\tFALSE\n")

	table, err := ReadFile(path, FormatTSV)
	if err != nil {
		t.Fatal(err)
	}

	if table.NumRows() != 2 || table.NumCols() != 3 {
		t.Fatalf("unexpected shape: %d x %d", table.NumRows(), table.NumCols())
	}
	if cell, _ := table.Cell(1, "chromStart"); cell != "" {
		t.Errorf("expected empty cell, got %q", cell)
	}
	if cell, _ := table.Cell(0, "Significant"); cell != "TRUE" {
		t.Errorf("expected TRUE, got %q", cell)
	}
}

func TestReadGzippedTSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.tsv.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte("chr\tstart\nchr1\t5\n")); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	table, err := ReadFile(path, FormatTSV)
	if err != nil {
		t.Fatal(err)
	}
	if cell, _ := table.Cell(0, "start"); cell != "5" {
		t.Errorf("expected 5, got %q", cell)
	}
}

func TestReadCSVAndSniffed(t *testing.T) {
	contents := "chr,start,end\nchr1,100,200\nchr1,300,400\n"
	path := writeTempFile(t, "pairs.csv", contents)

	table, err := ReadFile(path, FormatCSV)
	if err != nil {
		t.Fatal(err)
	}
	if table.NumRows() != 2 {
		t.Errorf("expected 2 rows, got %d", table.NumRows())
	}

	sniffed, err := ReadFile(path, FormatAuto)
	if err != nil {
		t.Fatal(err)
	}
	if sniffed.NumCols() != 3 {
		t.Errorf("sniffed reader found %d columns", sniffed.NumCols())
	}
}

func TestReadSniffedGzipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.txt.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte("chr;start;end\nchr1;100;200\n")); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	table, err := ReadFile(path, FormatAuto)
	if err != nil {
		t.Fatal(err)
	}
	if table.NumCols() != 3 || table.NumRows() != 1 {
		t.Fatalf("unexpected shape: %d x %d", table.NumRows(), table.NumCols())
	}
	if cell, _ := table.Cell(0, "end"); cell != "200" {
		t.Errorf("expected 200, got %q", cell)
	}
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.xlsx")

	book := excelize.NewFile()
	if err := book.SetSheetRow("Sheet1", "A1", &[]interface{}{"chr", "start", "Gene"}); err != nil {
		t.Fatal(err)
	}
	if err := book.SetSheetRow("Sheet1", "A2", &[]interface{}{"chr1", 100, "GATA4"}); err != nil {
		t.Fatal(err)
	}
	if err := book.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	table, err := ReadFile(path, FormatXLSX)
	if err != nil {
		t.Fatal(err)
	}
	if table.NumRows() != 1 {
		t.Fatalf("expected 1 row, got %d", table.NumRows())
	}
	if cell, _ := table.Cell(0, "start"); cell != "100" {
		t.Errorf("expected 100, got %q", cell)
	}
	if cell, _ := table.Cell(0, "Gene"); cell != "GATA4" {
		t.Errorf("expected GATA4, got %q", cell)
	}
}

func TestReadUnsupportedFormat(t *testing.T) {
	path := writeTempFile(t, "pairs.parquet", "not really parquet")

	_, err := ReadFile(path, Format("parquet"))
	if err == nil {
		t.Fatal("expected unsupported format error")
	}

	var unsupported *UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Errorf("expected UnsupportedFormatError, got %v", err)
	}
	if unsupported.Format != "parquet" {
		t.Errorf("expected parquet, got %q", unsupported.Format)
	}
}

func TestWriteTSVRoundTrip(t *testing.T) {
	table, err := New([]string{"chr", "start", "labels"}, [][]string{
		{"chr1", "100", "1"},
		{"chr2", "", "0"},
	})
	if err != nil {
		t.Fatal(err)
	}

	// The parent directory does not exist yet and must be created.
	path := filepath.Join(t.TempDir(), "out", "enhancer", "processed.tsv")
	if err := WriteTSV(table, path); err != nil {
		t.Fatal(err)
	}

	read, err := ReadFile(path, FormatTSV)
	if err != nil {
		t.Fatal(err)
	}

	if read.NumRows() != 2 || read.NumCols() != 3 {
		t.Fatalf("unexpected shape after round trip: %d x %d", read.NumRows(), read.NumCols())
	}
	if cell, _ := read.Cell(1, "start"); cell != "" {
		t.Errorf("expected empty cell to survive, got %q", cell)
	}
	if cell, _ := read.Cell(0, "labels"); cell != "1" {
		t.Errorf("expected 1, got %q", cell)
	}
}
