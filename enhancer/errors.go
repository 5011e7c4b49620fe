package enhancer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLabelsNotFound indicates a table without the derived labels column.
var ErrLabelsNotFound = errors.New("labels column not found in data")

// ErrStrandUnavailable indicates that strand annotation was requested but no
// usable GTF file could be provided.
var ErrStrandUnavailable = errors.New("cannot add strand information")

// SchemaMismatchError reports the canonical columns that cannot be satisfied
// by a raw table, either because the mapping does not name them or because
// the mapped source column is absent.
type SchemaMismatchError struct {
	Missing []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// MissingOutputColumnError reports declared output columns that the processed
// table does not contain.
type MissingOutputColumnError struct {
	Columns []string
}

func (e *MissingOutputColumnError) Error() string {
	return fmt.Sprintf("missing output columns: %s", strings.Join(e.Columns, ", "))
}

// ColumnNotFoundError reports a score column that the processed table does
// not contain.
type ColumnNotFoundError struct {
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column not found in data: %s", e.Column)
}
