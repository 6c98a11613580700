package data

import (
	"math"
	"time"
)

// Kind is the inferred type of a column.
type Kind int

const (
	Numeric Kind = iota
	Categorical
	Date
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	case Date:
		return "date"
	}
	return "unknown"
}

// declaredKinds maps the tokens of an optional type row to column kinds.
var declaredKinds = map[string]Kind{
	"numeric": Numeric,
	"enum":    Categorical,
	"string":  Categorical,
	"date":    Date,
}

// Column is a named, positionally indexed sequence of values of a single kind.
//
// Numeric columns populate Floats. Date columns populate Times and mirror them
// in Floats as Unix seconds. Categorical columns populate Strings. Missing
// values are NaN in Floats, the zero time in Times and "" in Strings.
type Column struct {
	Name    string
	Index   int
	Kind    Kind
	Floats  []float64
	Strings []string
	Times   []time.Time
}

// Len returns the number of values in the column.
func (c *Column) Len() int {
	if c.Kind == Categorical {
		return len(c.Strings)
	}
	return len(c.Floats)
}

// IsNumeric reports whether the column can be used as numbers.
func (c *Column) IsNumeric() bool { return c.Kind != Categorical }

// IsMissing reports whether row i holds the missing sentinel.
func (c *Column) IsMissing(i int) bool {
	if c.Kind == Categorical {
		return c.Strings[i] == ""
	}
	return math.IsNaN(c.Floats[i])
}

// Missing counts missing values.
func (c *Column) Missing() int {
	n := 0
	for i := 0; i < c.Len(); i++ {
		if c.IsMissing(i) {
			n++
		}
	}
	return n
}

// Values returns a copy of the numeric view of the column.
func (c *Column) Values() ([]float64, error) {
	if !c.IsNumeric() {
		return nil, ErrNotNumeric
	}
	out := make([]float64, len(c.Floats))
	copy(out, c.Floats)
	return out, nil
}

// Field describes one column of a Schema.
type Field struct {
	Name string
	Kind Kind
}

// Schema describes the structure of a dataset.
type Schema []Field

// Names returns the field names in order.
func (s Schema) Names() []string {
	out := make([]string, len(s))
	for i, f := range s {
		out[i] = f.Name
	}
	return out
}
