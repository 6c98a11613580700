package data

import "errors"

var (
	// ErrFileNotFound is returned when the input path does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrFormat is returned when the input is not parseable as delimited text with a header row.
	ErrFormat = errors.New("malformed csv")
	// ErrSchema is returned for duplicate or blank header names.
	ErrSchema = errors.New("invalid schema")
	// ErrUnknownHeader is returned when a requested header is not in the dataset.
	ErrUnknownHeader = errors.New("unknown header")
	// ErrNotNumeric is returned when a categorical column is used where numbers are required.
	ErrNotNumeric = errors.New("column is not numeric")
	// ErrRowIndex is returned for a row index outside the dataset.
	ErrRowIndex = errors.New("row index out of range")
)
