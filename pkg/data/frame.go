package data

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// previewRows is the number of rows rendered by String.
const previewRows = 5

// Frame exports the dataset as a gota DataFrame. Numeric columns become Float
// series; categorical and date columns become String series.
func (d *Dataset) Frame() dataframe.DataFrame {
	ss := make([]series.Series, 0, len(d.columns))
	for _, c := range d.columns {
		switch c.Kind {
		case Numeric:
			ss = append(ss, series.New(c.Floats, series.Float, c.Name))
		case Date:
			vals := make([]string, len(c.Times))
			for i, t := range c.Times {
				if c.IsMissing(i) {
					vals[i] = "NaN"
					continue
				}
				vals[i] = t.Format(time.RFC3339)
			}
			ss = append(ss, series.New(vals, series.String, c.Name))
		default:
			vals := make([]string, len(c.Strings))
			for i, s := range c.Strings {
				if s == "" {
					s = "NaN"
				}
				vals[i] = s
			}
			ss = append(ss, series.New(vals, series.String, c.Name))
		}
	}
	return dataframe.New(ss...)
}

// String renders the source, the dimensions, the headers and the first rows.
func (d *Dataset) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%dx%d)\n", d.path, d.rows, len(d.columns))
	fmt.Fprintf(&b, "Headers:\n  %s\n", strings.Join(d.headers, "    "))
	n := min(previewRows, d.rows)
	fmt.Fprintf(&b, "Showing first %d/%d rows.\n", n, d.rows)
	if n > 0 && len(d.columns) > 0 {
		b.WriteString(d.Frame().Subset(seq(0, n)).String())
	}
	return b.String()
}
