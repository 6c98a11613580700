package data

import (
	"bytes"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestLoadInfersKinds(t *testing.T) {
	path := writeCSV(t,
		"ash, slag ,mix,poured",
		"10.0,5.0,A,2023-01-05",
		"4,  , B,2023-02-10",
		"NA,7.5,A,",
	)
	ds, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"ash", "slag", "mix", "poured"}, ds.Headers())
	assert.Equal(t, 3, ds.NumRows())
	assert.Equal(t, 3, ds.NumSamples())
	assert.Equal(t, 4, ds.NumDims())
	assert.Equal(t, path, ds.Path())
	assert.Equal(t, Schema{
		{Name: "ash", Kind: Numeric},
		{Name: "slag", Kind: Numeric},
		{Name: "mix", Kind: Categorical},
		{Name: "poured", Kind: Date},
	}, ds.Schema())
	assert.Equal(t, map[string]int{"ash": 0, "slag": 1, "mix": 2, "poured": 3}, ds.Mappings())

	ash, err := ds.Column("ash")
	require.NoError(t, err)
	assert.Equal(t, 10.0, ash.Floats[0])
	assert.True(t, math.IsNaN(ash.Floats[2]))
	assert.Equal(t, 1, ash.Missing())

	mix, err := ds.Column("mix")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "A"}, mix.Strings)
	_, err = mix.Values()
	assert.ErrorIs(t, err, ErrNotNumeric)

	poured, err := ds.Column("poured")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC), poured.Times[1])
	assert.Equal(t, float64(poured.Times[0].Unix()), poured.Floats[0])
	assert.True(t, poured.IsMissing(2))
}

func TestLoadCoercesBadCells(t *testing.T) {
	path := writeCSV(t,
		"a,b",
		"1,x",
		"oops,2",
		"3,4",
	)
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ds, err := Load(path, WithLogger(logger))
	require.NoError(t, err)

	a, _ := ds.Column("a")
	assert.Equal(t, Numeric, a.Kind)
	assert.True(t, math.IsNaN(a.Floats[1]))
	assert.Equal(t, 3.0, a.Floats[2])

	b, _ := ds.Column("b")
	assert.Equal(t, Numeric, b.Kind)
	assert.True(t, math.IsNaN(b.Floats[0]))
	assert.Contains(t, logs.String(), "coerced unparseable cells")

	_, err = Load(path, WithStrict(true))
	assert.ErrorIs(t, err, ErrFormat)
	assert.ErrorContains(t, err, `line 3, column "a"`)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)

	tests := []struct {
		name  string
		lines []string
		want  error
	}{
		{"duplicate header", []string{"a,b,a", "1,2,3"}, ErrSchema},
		{"blank header", []string{"a,,c", "1,2,3"}, ErrSchema},
		{"ragged row", []string{"a,b", "1,2", "3"}, ErrFormat},
		{"bad quoting", []string{"a,b", "1,\"2"}, ErrFormat},
		{"empty file", nil, ErrFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var path string
			if tt.lines == nil {
				path = filepath.Join(t.TempDir(), "empty.csv")
				require.NoError(t, os.WriteFile(path, nil, 0o644))
			} else {
				path = writeCSV(t, tt.lines...)
			}
			_, err := Load(path)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadDeclaredTypeRow(t *testing.T) {
	path := writeCSV(t,
		"id,species,length,seen",
		"numeric,enum,numeric,date",
		"1,setosa,5.1,2024-03-01",
		"2,virginica,bad,2024-03-02",
	)
	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.NumRows())
	assert.Equal(t, []string{"id", "length", "seen"}, ds.NumericHeaders())

	length, _ := ds.Column("length")
	assert.True(t, math.IsNaN(length.Floats[1]))

	ds, err = Load(path, WithTypeRow(false))
	require.NoError(t, err)
	assert.Equal(t, 3, ds.NumRows())
	id, _ := ds.Column("id")
	assert.Equal(t, Numeric, id.Kind)
}

func TestReadOptions(t *testing.T) {
	src := "x;when\n1,5;01/02/2024\n-;03/04/2024\n"
	ds, err := Read(strings.NewReader(src), "inline",
		WithDelimiter(';'),
		WithMissingTokens("-"),
		WithDateLayouts("01/02/2006"),
		WithSampleSize(1),
	)
	require.NoError(t, err)
	x, _ := ds.Column("x")
	// "1,5" is not a Go float, so the single sampled cell makes x categorical.
	assert.Equal(t, Categorical, x.Kind)
	assert.Equal(t, []string{"1,5", ""}, x.Strings)

	when, _ := ds.Column("when")
	assert.Equal(t, Date, when.Kind)
	assert.Equal(t, time.March, when.Times[1].Month())
}

func TestInferKind(t *testing.T) {
	missing := DefaultOptions().missingSet()
	layouts := DefaultDateLayouts

	assert.Equal(t, Numeric, inferKind([]string{"1", "2", "x"}, missing, layouts, 0))
	assert.Equal(t, Categorical, inferKind([]string{"1", "x", "y"}, missing, layouts, 0))
	assert.Equal(t, Date, inferKind([]string{"2020-01-01", "2020-01-02", "x"}, missing, layouts, 0))
	assert.Equal(t, Numeric, inferKind([]string{"", "NA"}, missing, layouts, 0))
	assert.Equal(t, Categorical, inferKind([]string{"x", "1", "2"}, missing, layouts, 1))
}
