package enhancer

import (
	"fmt"

	"github.com/regbench/regbench/datasets"
	"github.com/regbench/regbench/tab"
)

// FilterByDistance drops pairs beyond the distance threshold. Rows with a
// missing distance are dropped whenever a threshold is active, since they
// cannot be shown to satisfy it.
func FilterByDistance(t *tab.Table, th Threshold, d datasets.Descriptor) (*tab.Table, error) {
	limit, active := th.limit(d)
	if !active {
		return t, nil
	}

	distIdx, ok := t.ColumnIndex("distance")
	if !ok {
		return nil, fmt.Errorf("distance column not found in data")
	}

	cutoff := float64(limit)

	return t.Filter(func(row int) bool {
		v, ok := tab.ParseFloat(t.CellAt(row, distIdx))

		return ok && v <= cutoff
	}), nil
}

// Project reduces the table to the dataset's declared output columns, in
// declared order. Any declared column absent from the table is an error.
func Project(t *tab.Table, d datasets.Descriptor) (*tab.Table, error) {
	projected := d.ProjectedColumns()
	if missing := t.MissingColumns(projected); len(missing) > 0 {
		return nil, &MissingOutputColumnError{Columns: missing}
	}

	return t.Select(projected)
}

// FilterProject applies the distance threshold and then the output
// projection.
func FilterProject(t *tab.Table, th Threshold, d datasets.Descriptor) (*tab.Table, error) {
	filtered, err := FilterByDistance(t, th, d)
	if err != nil {
		return nil, err
	}

	return Project(filtered, d)
}

// ProjectBestEffort reduces the table to the declared output columns,
// silently skipping the ones the table does not contain. The skipped names
// are returned so the caller can surface a warning.
func ProjectBestEffort(t *tab.Table, d datasets.Descriptor) (*tab.Table, []string, error) {
	projected := d.ProjectedColumns()
	missing := t.MissingColumns(projected)

	if len(missing) > 0 {
		skip := make(map[string]bool, len(missing))
		for _, name := range missing {
			skip[name] = true
		}

		present := make([]string, 0, len(projected)-len(missing))
		for _, name := range projected {
			if !skip[name] {
				present = append(present, name)
			}
		}
		projected = present
	}

	out, err := t.Select(projected)
	if err != nil {
		return nil, nil, err
	}

	return out, missing, nil
}
