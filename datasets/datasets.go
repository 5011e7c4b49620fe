// Package datasets describes the benchmark datasets that the processing
// pipeline knows how to fetch and normalize. Each dataset belongs to a task
// and is registered with the column mapping, label convention, and output
// schema of its upstream table.
package datasets

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/regbench/regbench/tab"
)

// ErrConfigNotFound indicates an unregistered task or dataset name.
var ErrConfigNotFound = errors.New("no registered configuration")

// AmbiguousMappingError indicates a column mapping in which two canonical
// names claim the same source column, which would make renaming lossy.
type AmbiguousMappingError struct {
	Source    string
	Canonical []string
}

func (e *AmbiguousMappingError) Error() string {
	return fmt.Sprintf("source column %q is claimed by multiple canonical columns: %s", e.Source, strings.Join(e.Canonical, ", "))
}

// Descriptor is the merged task- and dataset-level configuration for one
// dataset. Map and slice fields are private copies, safe for the caller to
// modify.
type Descriptor struct {
	Task  string
	Name  string
	Title string

	Description   string
	GenomeVersion string
	DataURL       string
	FileFormat    tab.Format

	// LabelColumn is the raw column holding the regulatory outcome, and
	// PositiveLabel the value of that column denoting a positive pair.
	LabelColumn   string
	PositiveLabel string

	// ColumnMapping maps canonical column names to source column names.
	ColumnMapping map[string]string

	// RequiredColumns groups the canonical columns that must be present
	// after renaming, keyed by a human-readable group name.
	RequiredColumns map[string][]string

	// DistanceThreshold is the default enhancer-gene distance cutoff in
	// base pairs. Zero means the task defines no cutoff.
	DistanceThreshold int64

	OutputColumns     []string
	AdditionalColumns []string
}

// RequiredCanonical flattens the required column groups into a sorted list of
// canonical column names.
func (d Descriptor) RequiredCanonical() []string {
	var out []string
	for _, group := range d.RequiredColumns {
		out = append(out, group...)
	}
	sort.Strings(out)

	return out
}

// ProjectedColumns returns the column set a processed table is reduced to:
// the task output columns followed by any dataset-specific extras.
func (d Descriptor) ProjectedColumns() []string {
	out := make([]string, 0, len(d.OutputColumns)+len(d.AdditionalColumns))
	out = append(out, d.OutputColumns...)
	out = append(out, d.AdditionalColumns...)

	return out
}

// ReverseMapping inverts ColumnMapping into a source-to-canonical rename
// table.
func (d Descriptor) ReverseMapping() map[string]string {
	out := make(map[string]string, len(d.ColumnMapping))
	for canonical, source := range d.ColumnMapping {
		out[source] = canonical
	}

	return out
}

// Tasks lists the registered task names in sorted order.
func Tasks() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Datasets lists the registered dataset names for a task in sorted order.
func Datasets(taskName string) ([]string, error) {
	t, exists := registry[taskName]
	if !exists {
		return nil, fmt.Errorf("%w: unknown task name %q", ErrConfigNotFound, taskName)
	}

	out := make([]string, 0, len(t.entries))
	for name := range t.entries {
		out = append(out, name)
	}
	sort.Strings(out)

	return out, nil
}

// Resolve merges the task-level defaults with the named dataset's entry. The
// dataset wins wherever it sets a field. The merged column mapping is checked
// for ambiguity so that renaming can never silently drop a column.
func Resolve(taskName, datasetName string) (Descriptor, error) {
	t, exists := registry[taskName]
	if !exists {
		return Descriptor{}, fmt.Errorf("%w: unknown task name %q", ErrConfigNotFound, taskName)
	}

	entry, exists := t.entries[datasetName]
	if !exists {
		return Descriptor{}, fmt.Errorf("%w: unknown dataset name %q for task %q", ErrConfigNotFound, datasetName, taskName)
	}

	merged := overlay(t.defaults, entry)
	merged.Task = taskName
	merged.Name = datasetName

	if err := checkMapping(merged.ColumnMapping); err != nil {
		return Descriptor{}, err
	}

	return merged, nil
}

// overlay copies base and applies every field the entry sets on top of it.
// Maps and slices are replaced wholesale, never merged element-wise, and the
// result shares no memory with the registry.
func overlay(base, entry Descriptor) Descriptor {
	out := base

	if entry.Title != "" {
		out.Title = entry.Title
	}
	if entry.Description != "" {
		out.Description = entry.Description
	}
	if entry.GenomeVersion != "" {
		out.GenomeVersion = entry.GenomeVersion
	}
	if entry.DataURL != "" {
		out.DataURL = entry.DataURL
	}
	if entry.FileFormat != "" {
		out.FileFormat = entry.FileFormat
	}
	if entry.LabelColumn != "" {
		out.LabelColumn = entry.LabelColumn
	}
	if entry.PositiveLabel != "" {
		out.PositiveLabel = entry.PositiveLabel
	}
	if entry.ColumnMapping != nil {
		out.ColumnMapping = entry.ColumnMapping
	}
	if entry.RequiredColumns != nil {
		out.RequiredColumns = entry.RequiredColumns
	}
	if entry.DistanceThreshold != 0 {
		out.DistanceThreshold = entry.DistanceThreshold
	}
	if entry.OutputColumns != nil {
		out.OutputColumns = entry.OutputColumns
	}
	if entry.AdditionalColumns != nil {
		out.AdditionalColumns = entry.AdditionalColumns
	}

	out.ColumnMapping = copyMap(out.ColumnMapping)
	out.RequiredColumns = copyGroups(out.RequiredColumns)
	out.OutputColumns = copySlice(out.OutputColumns)
	out.AdditionalColumns = copySlice(out.AdditionalColumns)

	return out
}

func checkMapping(mapping map[string]string) error {
	bySource := make(map[string][]string, len(mapping))
	for canonical, source := range mapping {
		bySource[source] = append(bySource[source], canonical)
	}

	for source, canonical := range bySource {
		if len(canonical) > 1 {
			sort.Strings(canonical)
			return &AmbiguousMappingError{Source: source, Canonical: canonical}
		}
	}

	return nil
}

func copyMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}

	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}

	return out
}

func copyGroups(in map[string][]string) map[string][]string {
	if in == nil {
		return nil
	}

	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[k] = copySlice(v)
	}

	return out
}

func copySlice(in []string) []string {
	if in == nil {
		return nil
	}

	return append([]string{}, in...)
}
