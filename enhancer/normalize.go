package enhancer

import (
	"github.com/regbench/regbench/datasets"
	"github.com/regbench/regbench/tab"
)

// Normalize renames a raw table's columns into the canonical schema of the
// dataset's task. Every required canonical column must be reachable through
// the dataset's column mapping, and all missing columns are reported
// together. Columns outside the mapping pass through under their original
// names.
func Normalize(t *tab.Table, d datasets.Descriptor) (*tab.Table, error) {
	var missing []string
	for _, canonical := range d.RequiredCanonical() {
		source, mapped := d.ColumnMapping[canonical]
		if !mapped || !t.HasColumn(source) {
			missing = append(missing, canonical)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaMismatchError{Missing: missing}
	}

	return t.Rename(d.ReverseMapping())
}
