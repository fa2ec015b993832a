package loader

import (
	"fmt"
	"strings"
)

// SchemaError reports required CSV columns missing from a header row.
type SchemaError struct {
	File    string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing columns: %s", e.File, strings.Join(e.Missing, ", "))
}

// DuplicateSlugError reports a slug that appears on more than one keyword row.
type DuplicateSlugError struct {
	File     string
	Slug     string
	FirstRow int
	Row      int
}

func (e *DuplicateSlugError) Error() string {
	return fmt.Sprintf("%s: row %d: duplicate slug %q (first seen on row %d)", e.File, e.Row, e.Slug, e.FirstRow)
}

// MalformedRowError reports a cell that does not parse as its expected type.
// Row is the 1-based line number in the file; the header is row 1.
type MalformedRowError struct {
	File   string
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *MalformedRowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s: row %d: %v", e.File, e.Row, e.Err)
	}
	return fmt.Sprintf("%s: row %d, column %q: invalid value %q: %v", e.File, e.Row, e.Column, e.Value, e.Err)
}

func (e *MalformedRowError) Unwrap() error {
	return e.Err
}

// IOError reports a filesystem failure reading inputs or writing outputs.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
