// Package rows reads opening-hours rows from the ";" delimited input and
// appends result rows to the comma delimited output.
package rows

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// OpeningHoursField is the index of the opening-hours column in input rows.
const OpeningHoursField = 3

// Row is one data row of the input, numbered from zero after the header.
type Row struct {
	Index  int
	Fields []string
}

// OpeningHours returns the opening-hours column, or false when the row is too
// short to have one.
func (r Row) OpeningHours() (string, bool) {
	if len(r.Fields) <= OpeningHoursField {
		return "", false
	}
	return r.Fields[OpeningHoursField], true
}

type Reader struct {
	csv    *csv.Reader
	header []string
	next   int
}

// NewReader reads and discards the header row. An empty input is not an
// error; Next reports io.EOF right away.
func NewReader(r io.Reader) (*Reader, error) {
	c := csv.NewReader(r)
	c.Comma = ';'
	c.FieldsPerRecord = -1
	c.LazyQuotes = true

	header, err := c.Read()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	return &Reader{csv: c, header: header}, nil
}

// Header returns the header row, which is nil for an empty input.
func (r *Reader) Header() []string {
	return r.header
}

// Next returns the next row, or io.EOF after the last one.
func (r *Reader) Next() (Row, error) {
	if r.header == nil {
		return Row{}, io.EOF
	}
	fields, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Row{}, io.EOF
		}
		return Row{}, fmt.Errorf("failed to read row %d: %w", r.next, err)
	}
	row := Row{Index: r.next, Fields: fields}
	r.next++
	return row, nil
}
