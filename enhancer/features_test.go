package enhancer

import (
	"strings"
	"testing"

	"github.com/regbench/regbench/tab"
)

func featureTable(t *testing.T, rows [][]string) *tab.Table {
	t.Helper()

	table, err := tab.New(
		[]string{"chr", "start", "end", "gene_name", "gene_tss", "ABC Score", "Significant"},
		rows,
	)
	if err != nil {
		t.Fatal(err)
	}

	return table
}

func TestComputeFeaturesDistanceAndLabels(t *testing.T) {
	table := featureTable(t, [][]string{
		{"chr1", "100", "200", "GENEA", "140", "0.9", "1"},
		{"chr1", "99", "200", "GENEA", "140", "0.8", "0"},
		{"chr1", "5000", "5100", "GENEB", "1000000", "0.1", "TRUE"},
		{"chr1", "100", "200", "GENEA", "", "0.2", "1.0"},
		{"chr1", "", "200", "GENEA", "140", "0.3", "FALSE"},
		{"chr1", "100", "200", "GENEA", "140", "0.4", ""},
		{"chr1", "100", "200", "GENEA", "140", "0.5", "banana"},
	})

	out, err := ComputeFeatures(table, testDescriptor())
	if err != nil {
		t.Fatal(err)
	}

	// The enhancer center rounds down, so rows 0 and 1 pin both sides of
	// the halfway point.
	distances := []string{"10", "9", "994950", "", "", "10", "10"}
	labels := []string{"1", "0", "1", "1", "0", "", "0"}

	for row := range distances {
		if v, _ := out.Cell(row, "distance"); v != distances[row] {
			t.Errorf("row %d: distance = %q, expected %q", row, v, distances[row])
		}
		if v, _ := out.Cell(row, "labels"); v != labels[row] {
			t.Errorf("row %d: labels = %q, expected %q", row, v, labels[row])
		}
	}
}

func TestComputeFeaturesDistanceIgnoresCoordinateOrder(t *testing.T) {
	forward := featureTable(t, [][]string{
		{"chr1", "100", "201", "GENEA", "140", "0.9", "1"},
	})
	backward := featureTable(t, [][]string{
		{"chr1", "201", "100", "GENEA", "140", "0.9", "1"},
	})

	a, err := ComputeFeatures(forward, testDescriptor())
	if err != nil {
		t.Fatal(err)
	}
	b, err := ComputeFeatures(backward, testDescriptor())
	if err != nil {
		t.Fatal(err)
	}

	// The distance is measured from the interval midpoint, so the interval
	// ends can arrive in either order.
	want, _ := a.Cell(0, "distance")
	got, _ := b.Cell(0, "distance")
	if want != got || want != "10" {
		t.Errorf("distance %q vs %q, expected both to be 10", want, got)
	}
}

func TestComputeFeaturesRequiresCoordinates(t *testing.T) {
	table, err := tab.New(
		[]string{"chr", "end", "gene_name", "gene_tss", "Significant"},
		[][]string{{"chr1", "200", "GENEA", "140", "1"}},
	)
	if err != nil {
		t.Fatal(err)
	}

	_, err = ComputeFeatures(table, testDescriptor())
	if err == nil || !strings.Contains(err.Error(), "start column") {
		t.Errorf("error %v, expected a missing start column error", err)
	}
}

func TestComputeFeaturesRequiresLabelColumn(t *testing.T) {
	table, err := tab.New(
		[]string{"chr", "start", "end", "gene_name", "gene_tss"},
		[][]string{{"chr1", "100", "200", "GENEA", "140"}},
	)
	if err != nil {
		t.Fatal(err)
	}

	_, err = ComputeFeatures(table, testDescriptor())
	if err == nil || !strings.Contains(err.Error(), "Significant") {
		t.Errorf("error %v, expected a missing label column error", err)
	}

	d := testDescriptor()
	d.LabelColumn = ""
	_, err = ComputeFeatures(featureTable(t, nil), d)
	if err == nil || !strings.Contains(err.Error(), "label column") {
		t.Errorf("error %v, expected an unconfigured label column error", err)
	}
}
