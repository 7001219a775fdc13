package heightfield_test

import (
	"errors"
	"fmt"
	"math/bits"
	"testing"

	"github.com/z21kamon/Diamond-Square-Islands/heightfield"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidSize(t *testing.T) {
	tests := []struct {
		size int
		want bool
	}{
		{-3, false},
		{0, false},
		{1, true},
		{2, true},
		{3, true},
		{4, false},
		{5, true},
		{6, false},
		{9, true},
		{16, false},
		{17, true},
		{129, true},
		{257, true},
		{1024, false},
		{1025, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt), func(t *testing.T) {
			assert.Equal(t, tt.want, heightfield.ValidSize(tt.size))

			field, err := heightfield.New(tt.size)
			if tt.want {
				require.NoError(t, err)
				assert.Equal(t, tt.size, field.Size())
				assert.Len(t, field.Cells(), tt.size*tt.size)
			} else {
				assert.Nil(t, field)
				assert.True(t, errors.Is(err, heightfield.ErrInvalidSize))
				var sizeErr *heightfield.InvalidSizeError
				require.True(t, errors.As(err, &sizeErr))
				assert.Equal(t, tt.size, sizeErr.Size)
			}
		})
	}
}

func TestValidSizeOverflow(t *testing.T) {
	half := bits.UintSize / 2

	// (2^(half-1)+1)^2 still fits an int; allocating it is another matter.
	assert.True(t, heightfield.ValidSize(1<<(half-1)+1))

	for _, size := range []int{1<<half + 1, 1<<(bits.UintSize-2) + 1} {
		t.Run(fmt.Sprintf("%v", size), func(t *testing.T) {
			assert.False(t, heightfield.ValidSize(size))
			field, err := heightfield.New(size)
			assert.Nil(t, field)
			var sizeErr *heightfield.InvalidSizeError
			require.True(t, errors.As(err, &sizeErr), "got %v", err)
			assert.Equal(t, size, sizeErr.Size)
		})
	}
}

func TestNewIsZero(t *testing.T) {
	for _, size := range []int{1, 2, 3, 5, 9, 33} {
		field, err := heightfield.New(size)
		require.NoError(t, err)
		for _, z := range field.Cells() {
			require.Equal(t, 0.0, z)
		}
	}
}

func TestAtSet(t *testing.T) {
	field, err := heightfield.New(5)
	require.NoError(t, err)

	field.Set(3, 1, 2.5)
	assert.Equal(t, 2.5, field.At(3, 1))
	assert.Equal(t, 0.0, field.At(1, 3))
	assert.Equal(t, 2.5, field.Cells()[1*5+3], "cells are stored row by row")
}

func TestWrap(t *testing.T) {
	field, err := heightfield.New(5)
	require.NoError(t, err)

	assert.Equal(t, 2, field.Wrap(-2))
	assert.Equal(t, 0, field.Wrap(4), "the last index coincides with the first")
	assert.Equal(t, 2, field.Wrap(6))

	field.Set(2, 3, 7)
	assert.Equal(t, 7.0, field.WrappedAt(-2, -1))
	assert.Equal(t, 7.0, field.WrappedAt(6, 7))
}

func TestMirrorEdges(t *testing.T) {
	field, err := heightfield.New(5)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		field.Set(0, i, float64(i+1))
		field.Set(i, 0, float64(10*(i+1)))
	}
	field.MirrorEdges()

	for i := 0; i < 5; i++ {
		assert.Equal(t, field.At(0, i), field.At(4, i), "column %d", i)
		assert.Equal(t, field.At(i, 0), field.At(i, 4), "row %d", i)
	}

	single, err := heightfield.New(1)
	require.NoError(t, err)
	single.MirrorEdges()
	assert.Equal(t, 0.0, single.At(0, 0))
}

func TestReset(t *testing.T) {
	field, err := heightfield.New(3)
	require.NoError(t, err)
	field.Set(1, 1, 4)
	field.Reset()
	assert.Equal(t, make([]float64, 9), field.Cells())
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		give      []float64
		wantShift float64
		want      []float64
	}{
		{
			name: "negative minimum",
			give: []float64{
				0, -1, 0,
				2, -3, 1,
				0, 0.5, 0,
			},
			wantShift: 3,
			want: []float64{
				3, 2, 3,
				5, 0, 4,
				3, 3.5, 3,
			},
		},
		{
			name: "already non-negative",
			give: []float64{
				1, 2, 3,
				4, 5, 6,
				7, 8, 9,
			},
			wantShift: 0,
			want: []float64{
				1, 2, 3,
				4, 5, 6,
				7, 8, 9,
			},
		},
		{
			name:      "flat",
			give:      make([]float64, 9),
			wantShift: 0,
			want:      make([]float64, 9),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, err := heightfield.New(3)
			require.NoError(t, err)
			copy(field.Cells(), tt.give)

			shift := field.Normalize()
			assert.Equal(t, tt.wantShift, shift)
			assert.Equal(t, tt.want, field.Cells())
			assert.True(t, field.Stats().Min >= 0)
		})
	}
}

func TestStats(t *testing.T) {
	field, err := heightfield.New(3)
	require.NoError(t, err)
	copy(field.Cells(), []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	stats := field.Stats()
	assert.Equal(t, 1.0, stats.Min)
	assert.Equal(t, 9.0, stats.Max)
	assert.Equal(t, 5.0, stats.Mean())
	assert.Equal(t, 9, stats.Num)
}

func TestClone(t *testing.T) {
	field, err := heightfield.New(3)
	require.NoError(t, err)
	field.Set(1, 1, 1)

	clone := field.Clone()
	clone.Set(1, 1, 2)
	assert.Equal(t, 1.0, field.At(1, 1))
	assert.Equal(t, 2.0, clone.At(1, 1))
	assert.Equal(t, field.Size(), clone.Size())
}

func TestEval2(t *testing.T) {
	field, err := heightfield.New(3)
	require.NoError(t, err)
	copy(field.Cells(), []float64{
		0, 2, 4,
		2, 4, 6,
		4, 6, 8,
	})

	tests := []struct {
		x, y float64
		want float64
	}{
		{0, 0, 0},
		{2, 2, 8},
		{1, 0, 2},
		{0.5, 0, 1},
		{0.5, 0.5, 2},
		{1.5, 1.5, 6},
		{-1, -1, 0},
		{3, 3, 8},
		{2, 0.5, 5},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt), func(t *testing.T) {
			assert.InDelta(t, tt.want, field.Eval2(tt.x, tt.y), 1e-12)
		})
	}
}
