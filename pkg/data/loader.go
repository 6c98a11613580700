package data

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strings"
	"time"
)

// Load reads the CSV file at path into a Dataset.
func Load(path string, opts ...Option) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
		}
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	return Read(bufio.NewReader(f), path, opts...)
}

// Read parses CSV text from r. name identifies the source in errors and in
// the returned Dataset.
func Read(r io.Reader, name string, opts ...Option) (*Dataset, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	reader := csv.NewReader(r)
	if o.Delimiter != 0 {
		reader.Comma = o.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = 0

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s: no header row", ErrFormat, name)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrFormat, name, err)
	}
	headers, index, err := parseHeader(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFormat, name, err)
	}
	for _, rec := range records {
		for j := range rec {
			rec[j] = strings.TrimSpace(rec[j])
		}
	}

	// Line number of the first data record, for error messages.
	firstLine := 2
	var declared []Kind
	if o.TypeRow && len(records) > 0 {
		if kinds, ok := parseTypeRow(records[0]); ok {
			declared = kinds
			records = records[1:]
			firstLine++
		}
	}

	missing := o.missingSet()
	columns := make([]*Column, len(headers))
	for j, h := range headers {
		cells := make([]string, len(records))
		for i, rec := range records {
			cells[i] = rec[j]
		}
		kind := inferKind(cells, missing, o.DateLayouts, o.SampleSize)
		if declared != nil {
			kind = declared[j]
		}
		col, coerced, err := buildColumn(h, j, kind, cells, missing, o)
		if err != nil {
			var ce *cellError
			if errors.As(err, &ce) {
				return nil, fmt.Errorf("%w: %s: line %d, column %q: cannot parse %q as %s",
					ErrFormat, name, firstLine+ce.row, h, ce.value, kind)
			}
			return nil, err
		}
		if coerced > 0 {
			o.Logger.Debug("coerced unparseable cells to missing", "column", h, "kind", kind, "cells", coerced)
		}
		o.Logger.Debug("column loaded", "column", h, "kind", kind, "missing", col.Missing())
		columns[j] = col
	}

	o.Logger.Debug("dataset loaded", "source", name, "rows", len(records), "columns", len(headers))
	return &Dataset{
		path:       name,
		headers:    headers,
		header2col: index,
		columns:    columns,
		rows:       len(records),
	}, nil
}

func parseHeader(header []string) ([]string, map[string]int, error) {
	headers := make([]string, len(header))
	index := make(map[string]int, len(header))
	for j, h := range header {
		h = strings.TrimSpace(h)
		if j == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		if h == "" {
			return nil, nil, fmt.Errorf("%w: blank header at column %d", ErrSchema, j+1)
		}
		if prev, dup := index[h]; dup {
			return nil, nil, fmt.Errorf("%w: duplicate header %q at columns %d and %d", ErrSchema, h, prev+1, j+1)
		}
		index[h] = j
		headers[j] = h
	}
	return headers, index, nil
}

func parseTypeRow(rec []string) ([]Kind, bool) {
	kinds := make([]Kind, len(rec))
	for j, s := range rec {
		k, ok := declaredKinds[strings.ToLower(s)]
		if !ok {
			return nil, false
		}
		kinds[j] = k
	}
	return kinds, true
}

type cellError struct {
	row   int
	value string
}

func (e *cellError) Error() string { return fmt.Sprintf("row %d: bad value %q", e.row, e.value) }

// buildColumn converts raw cells to the column's kind. It returns the number
// of present cells that could not be parsed and were coerced to missing.
func buildColumn(name string, idx int, kind Kind, cells []string, missing map[string]struct{}, o Options) (*Column, int, error) {
	col := &Column{Name: name, Index: idx, Kind: kind}
	coerced := 0
	switch kind {
	case Categorical:
		col.Strings = make([]string, len(cells))
		for i, s := range cells {
			if _, ok := missing[s]; ok {
				continue
			}
			col.Strings[i] = s
		}
	case Numeric:
		col.Floats = make([]float64, len(cells))
		for i, s := range cells {
			col.Floats[i] = math.NaN()
			if _, ok := missing[s]; ok {
				continue
			}
			v, ok := parseNumber(s)
			if !ok {
				if o.Strict {
					return nil, 0, &cellError{row: i, value: s}
				}
				coerced++
				continue
			}
			col.Floats[i] = v
		}
	case Date:
		col.Floats = make([]float64, len(cells))
		col.Times = make([]time.Time, len(cells))
		for i, s := range cells {
			col.Floats[i] = math.NaN()
			if _, ok := missing[s]; ok {
				continue
			}
			t, ok := parseDate(s, o.DateLayouts)
			if !ok {
				if o.Strict {
					return nil, 0, &cellError{row: i, value: s}
				}
				coerced++
				continue
			}
			col.Times[i] = t
			col.Floats[i] = float64(t.Unix())
		}
	}
	return col, coerced, nil
}
