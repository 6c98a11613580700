package data

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) *Dataset {
	t.Helper()
	ds, err := Load(writeCSV(t,
		"ash,slag,mix,strength",
		"10,5,A,30",
		",6,B,31",
		"2,7,A,32",
		"4,8,C,33",
		"6,9,B,34",
		"8,10,A,35",
	))
	require.NoError(t, err)
	return ds
}

func TestSelectShapeAndOrder(t *testing.T) {
	ds := loadFixture(t)

	m, err := ds.Select([]string{"strength", "ash"})
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Equal(t, ds.NumRows(), r)
	assert.Equal(t, 2, c)
	assert.Equal(t, []float64{30, 10}, m.Row(0))
	assert.True(t, math.IsNaN(m.At(1, 1)))

	m, err = ds.Select([]string{"slag"}, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{8, 5}, m.Col(0))

	m, err = ds.Select(nil)
	require.NoError(t, err)
	r, c = m.Shape()
	assert.Equal(t, ds.NumRows(), r)
	assert.Zero(t, c)
}

func TestSelectErrors(t *testing.T) {
	ds := loadFixture(t)

	_, err := ds.Select([]string{"ash", "nope"})
	assert.ErrorIs(t, err, ErrUnknownHeader)

	_, err = ds.Select([]string{"mix"})
	assert.ErrorIs(t, err, ErrNotNumeric)

	_, err = ds.Select([]string{"ash"}, 6)
	assert.ErrorIs(t, err, ErrRowIndex)

	_, err = ds.HeaderIndices([]string{"slag", "x"})
	assert.ErrorIs(t, err, ErrUnknownHeader)
}

func TestHeadTailSample(t *testing.T) {
	ds := loadFixture(t)

	head := ds.Head(2)
	r, c := head.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, []float64{10, 5, 30}, head.Row(0))

	tail := ds.Tail(10)
	r, _ = tail.Shape()
	assert.Equal(t, 6, r)
	assert.Equal(t, []float64{8, 10, 35}, tail.Row(5))

	empty := ds.Head(0)
	r, c = empty.Shape()
	assert.Zero(t, r)
	assert.Equal(t, 3, c)

	s, err := ds.Sample(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 8, 33}, s)
	_, err = ds.Sample(-1)
	assert.ErrorIs(t, err, ErrRowIndex)
}

func TestSliceDoesNotMutate(t *testing.T) {
	ds := loadFixture(t)

	sub, err := ds.Slice(2, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, sub.NumRows())
	assert.Equal(t, 6, ds.NumRows())

	mix, _ := sub.Column("mix")
	assert.Equal(t, []string{"A", "C"}, mix.Strings)
	ash, _ := sub.Column("ash")
	assert.Equal(t, []float64{2, 4}, ash.Floats)

	_, err = ds.Slice(4, 2)
	assert.ErrorIs(t, err, ErrRowIndex)
	_, err = ds.Slice(0, 7)
	assert.ErrorIs(t, err, ErrRowIndex)
}

func TestFrameAndString(t *testing.T) {
	ds := loadFixture(t)

	df := ds.Frame()
	rows, cols := df.Dims()
	assert.Equal(t, 6, rows)
	assert.Equal(t, 4, cols)
	assert.Equal(t, []string{"ash", "slag", "mix", "strength"}, df.Names())
	assert.Equal(t, 32.0, df.Col("strength").Elem(2).Float())

	s := ds.String()
	assert.Contains(t, s, "(6x4)")
	assert.Contains(t, s, "Showing first 5/6 rows.")
	assert.Contains(t, s, "strength")
}
