package enhancer

import (
	"fmt"
	"log"

	"github.com/regbench/regbench/tab"
)

// AddStrand left-joins gene strand annotation onto the table by gene name,
// appending a strand column. Genes absent from the lookup get a missing
// strand; the number of such rows is returned alongside the table.
func AddStrand(t *tab.Table, strands map[string]string) (*tab.Table, int, error) {
	geneIdx, ok := t.ColumnIndex("gene_name")
	if !ok {
		return nil, 0, fmt.Errorf("gene_name column not found in data")
	}

	values := make([]string, t.NumRows())
	var missing int
	for row := 0; row < t.NumRows(); row++ {
		strand, exists := strands[t.CellAt(row, geneIdx)]
		if !exists {
			missing++
			continue
		}
		values[row] = strand
	}

	if missing > 0 {
		log.Printf("Warning: %d genes have missing strand information\n", missing)
	}

	out, err := t.WithColumn("strand", values)
	if err != nil {
		return nil, 0, err
	}

	return out, missing, nil
}
