package loader

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"
)

const utf8BOM = "\ufeff"

var errInvalidUTF8 = errors.New("not valid UTF-8")

// cellFunc returns the trimmed cell for a column, or "" when the row is
// shorter than the header.
type cellFunc func(column string) string

// scanCSV reads a headed CSV file, checks that every required column is
// present and calls fn for each data row with its line number.
func scanCSV(path string, required []string, fn func(row int, cell cellFunc) error) error {
	f, err := os.Open(path)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return &SchemaError{File: path, Missing: sortedCopy(required)}
	}
	if err != nil {
		return readError(path, err)
	}

	names := make([]string, len(header))
	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.TrimSpace(name)
		names[i] = name
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range required {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &SchemaError{File: path, Missing: missing}
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return readError(path, err)
		}
		row, _ := r.FieldPos(0)
		for i, value := range record {
			if utf8.ValidString(value) {
				continue
			}
			var column string
			if i < len(names) {
				column = names[i]
			}
			return &MalformedRowError{File: path, Row: row, Column: column, Value: value, Err: errInvalidUTF8}
		}
		cell := func(column string) string {
			i, ok := index[column]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}
		if err := fn(row, cell); err != nil {
			return err
		}
	}
}

func readError(path string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &MalformedRowError{File: path, Row: pe.Line, Err: pe.Err}
	}
	return &IOError{Op: "read", Path: path, Err: err}
}

func sortedCopy(values []string) []string {
	out := append([]string(nil), values...)
	sort.Strings(out)
	return out
}
