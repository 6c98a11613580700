package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	m, err := FromSlice([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6.0, m.At(1, 2))
	assert.Equal(t, []float64{2, 5}, m.Col(1))
	assert.Equal(t, []float64{4, 5, 6}, m.Row(1))

	_, err = FromSlice([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrShape)

	empty, err := FromSlice(nil)
	require.NoError(t, err)
	r, c = empty.Shape()
	assert.Zero(t, r)
	assert.Zero(t, c)
}

func TestSetCloneTranspose(t *testing.T) {
	m := NewMatrix(2, 2)
	m.Set(0, 1, 7)
	cp := m.Clone()
	m.Set(0, 1, 9)

	assert.Equal(t, 7.0, cp.At(0, 1))
	assert.Equal(t, 9.0, m.At(0, 1))

	tr := m.Transpose()
	assert.Equal(t, 9.0, tr.At(1, 0))
	assert.Equal(t, [][]float64{{0, 9}, {0, 0}}, m.Rows())
}
