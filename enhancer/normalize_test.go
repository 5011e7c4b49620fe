package enhancer

import (
	"errors"
	"reflect"
	"testing"

	"github.com/regbench/regbench/datasets"
	"github.com/regbench/regbench/tab"
)

// testDescriptor is a small enhancer dataset with the same shape as the
// registered ones.
func testDescriptor() datasets.Descriptor {
	return datasets.Descriptor{
		Task:          "enhancer",
		Name:          "testset",
		Title:         "Test Enhancer Dataset",
		GenomeVersion: "hg38",
		LabelColumn:   "Significant",
		PositiveLabel: "1",
		ColumnMapping: map[string]string{
			"chr":         "chr",
			"start":       "start",
			"end":         "end",
			"gene_name":   "Gene",
			"gene_tss":    "Gene TSS",
			"ABC Score":   "ABC Score",
			"Significant": "Significant",
		},
		RequiredColumns: map[string][]string{
			"enhancer_loc": {"chr", "start", "end"},
			"gene_info":    {"gene_name", "gene_tss"},
			"label":        {"Significant"},
		},
		DistanceThreshold: 1000,
		OutputColumns: []string{
			"chr", "start", "end",
			"gene_name", "gene_tss",
			"distance",
			"ABC Score",
			"labels",
		},
	}
}

func rawTable(t *testing.T) *tab.Table {
	t.Helper()

	table, err := tab.New(
		[]string{"chr", "start", "end", "Gene", "Gene TSS", "ABC Score", "Significant", "notes"},
		[][]string{
			{"chr1", "100", "200", "GENEA", "140", "0.9", "1", "keep me"},
		},
	)
	if err != nil {
		t.Fatal(err)
	}

	return table
}

func TestNormalizeRenamesMappedColumns(t *testing.T) {
	normalized, err := Normalize(rawTable(t), testDescriptor())
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"chr", "start", "end", "gene_name", "gene_tss", "ABC Score", "Significant", "notes"}
	if !reflect.DeepEqual(normalized.Header(), expected) {
		t.Errorf("Header %v, expected %v", normalized.Header(), expected)
	}

	if v, _ := normalized.Cell(0, "gene_name"); v != "GENEA" {
		t.Errorf("gene_name = %q, expected GENEA", v)
	}

	// Columns outside the mapping survive untouched.
	if v, _ := normalized.Cell(0, "notes"); v != "keep me" {
		t.Errorf("notes = %q, expected to pass through", v)
	}
}

func TestNormalizeCollectsAllMissingColumns(t *testing.T) {
	d := testDescriptor()
	d.RequiredColumns["context"] = []string{"celltype"}

	table, err := tab.New(
		[]string{"chr", "start", "end", "Gene", "ABC Score", "Significant"},
		[][]string{
			{"chr1", "100", "200", "GENEA", "0.9", "1"},
		},
	)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Normalize(table, d)
	if err == nil {
		t.Fatal("expected an error for missing columns")
	}

	var mismatch *SchemaMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error %T, expected SchemaMismatchError", err)
	}

	// celltype has no mapping entry and the source of gene_tss is absent.
	expected := []string{"celltype", "gene_tss"}
	if !reflect.DeepEqual(mismatch.Missing, expected) {
		t.Errorf("Missing %v, expected %v", mismatch.Missing, expected)
	}
}

func TestNormalizeRejectsUnmappedRequiredColumn(t *testing.T) {
	d := testDescriptor()
	delete(d.ColumnMapping, "gene_name")

	_, err := Normalize(rawTable(t), d)

	var mismatch *SchemaMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error %v, expected SchemaMismatchError", err)
	}
	if !reflect.DeepEqual(mismatch.Missing, []string{"gene_name"}) {
		t.Errorf("Missing %v, expected [gene_name]", mismatch.Missing)
	}
}
