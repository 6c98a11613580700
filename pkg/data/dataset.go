package data

import (
	"fmt"

	"edakit/pkg/core"
)

// Dataset is an immutable set of named, typed columns loaded from a CSV file.
// It is safe for concurrent readers.
type Dataset struct {
	path       string
	headers    []string
	header2col map[string]int
	columns    []*Column
	rows       int
}

// Path returns the source the dataset was loaded from.
func (d *Dataset) Path() string { return d.path }

// Headers returns the column names in file order.
func (d *Dataset) Headers() []string {
	out := make([]string, len(d.headers))
	copy(out, d.headers)
	return out
}

// NumericHeaders returns the names of the numeric and date columns in file order.
func (d *Dataset) NumericHeaders() []string {
	var out []string
	for _, c := range d.columns {
		if c.IsNumeric() {
			out = append(out, c.Name)
		}
	}
	return out
}

// Schema returns the name and kind of every column.
func (d *Dataset) Schema() Schema {
	s := make(Schema, len(d.columns))
	for i, c := range d.columns {
		s[i] = Field{Name: c.Name, Kind: c.Kind}
	}
	return s
}

// Mappings returns a copy of the header to column index map.
func (d *Dataset) Mappings() map[string]int {
	out := make(map[string]int, len(d.header2col))
	for k, v := range d.header2col {
		out[k] = v
	}
	return out
}

// HeaderIndices returns the column index of each header.
func (d *Dataset) HeaderIndices(headers []string) ([]int, error) {
	out := make([]int, len(headers))
	for i, h := range headers {
		j, ok := d.header2col[h]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownHeader, h)
		}
		out[i] = j
	}
	return out, nil
}

// NumRows returns the number of data rows.
func (d *Dataset) NumRows() int { return d.rows }

// NumSamples is a synonym for NumRows.
func (d *Dataset) NumSamples() int { return d.rows }

// NumDims returns the number of columns.
func (d *Dataset) NumDims() int { return len(d.columns) }

// Column returns the column named header.
func (d *Dataset) Column(header string) (*Column, error) {
	j, ok := d.header2col[header]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeader, header)
	}
	return d.columns[j], nil
}

// Columns returns the columns in file order. Callers must not modify them.
func (d *Dataset) Columns() []*Column {
	out := make([]*Column, len(d.columns))
	copy(out, d.columns)
	return out
}

// Select returns a row-aligned numeric matrix of the requested headers, in
// the requested order. With no rows every row is returned.
func (d *Dataset) Select(headers []string, rows ...int) (*core.Matrix, error) {
	cols := make([]*Column, len(headers))
	for i, h := range headers {
		c, err := d.Column(h)
		if err != nil {
			return nil, err
		}
		if !c.IsNumeric() {
			return nil, fmt.Errorf("%w: %q is %s", ErrNotNumeric, h, c.Kind)
		}
		cols[i] = c
	}
	for _, r := range rows {
		if r < 0 || r >= d.rows {
			return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrRowIndex, r, d.rows)
		}
	}

	n := len(rows)
	if n == 0 {
		n = d.rows
	}
	m := core.NewMatrix(n, len(cols))
	for i := 0; i < n; i++ {
		r := i
		if len(rows) > 0 {
			r = rows[i]
		}
		for j, c := range cols {
			m.Set(i, j, c.Floats[r])
		}
	}
	return m, nil
}

// Sample returns the numeric columns of row i.
func (d *Dataset) Sample(i int) ([]float64, error) {
	m, err := d.Select(d.NumericHeaders(), i)
	if err != nil {
		return nil, err
	}
	return m.Row(0), nil
}

// Head returns the first n rows of the numeric columns.
func (d *Dataset) Head(n int) *core.Matrix {
	n = max(0, min(n, d.rows))
	return d.mustSelect(seq(0, n))
}

// Tail returns the last n rows of the numeric columns.
func (d *Dataset) Tail(n int) *core.Matrix {
	n = max(0, min(n, d.rows))
	return d.mustSelect(seq(d.rows-n, d.rows))
}

func (d *Dataset) mustSelect(rows []int) *core.Matrix {
	headers := d.NumericHeaders()
	if len(rows) == 0 {
		return core.NewMatrix(0, len(headers))
	}
	m, err := d.Select(headers, rows...)
	if err != nil {
		// headers and rows are derived from d
		panic(err)
	}
	return m
}

// Slice returns a new Dataset holding rows [start, end).
func (d *Dataset) Slice(start, end int) (*Dataset, error) {
	if start < 0 || end > d.rows || start > end {
		return nil, fmt.Errorf("%w: [%d, %d) not within [0, %d)", ErrRowIndex, start, end, d.rows)
	}
	cols := make([]*Column, len(d.columns))
	for i, c := range d.columns {
		nc := &Column{Name: c.Name, Index: c.Index, Kind: c.Kind}
		if c.Floats != nil {
			nc.Floats = append([]float64(nil), c.Floats[start:end]...)
		}
		if c.Strings != nil {
			nc.Strings = append([]string(nil), c.Strings[start:end]...)
		}
		if c.Times != nil {
			nc.Times = append(nc.Times, c.Times[start:end]...)
		}
		cols[i] = nc
	}
	return &Dataset{
		path:       d.path,
		headers:    d.Headers(),
		header2col: d.Mappings(),
		columns:    cols,
		rows:       end - start,
	}, nil
}

func seq(start, end int) []int {
	out := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return out
}
