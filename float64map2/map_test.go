package float64map2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScale(t *testing.T) {
	plane := Func(func(x, y float64) float64 { return x + 10*y })
	assert.Equal(t, 12.0, plane.Eval2(2, 1))

	half := NewScale(plane, 0.5)
	assert.Equal(t, 6.0, half.Eval2(2, 1))
}

func TestResample(t *testing.T) {
	plane := Func(func(x, y float64) float64 { return x + 10*y })

	// Nine samples stretched over three: the ends line up.
	up := NewResample(plane, 3, 9)
	assert.Equal(t, 0.0, up.Eval2(0, 0))
	assert.Equal(t, 2.0, up.Eval2(8, 0))
	assert.Equal(t, 22.0, up.Eval2(8, 8))
	assert.Equal(t, 0.5, up.Eval2(2, 0))

	down := NewResample(plane, 9, 3)
	assert.Equal(t, 88.0, down.Eval2(2, 2))

	single := NewResample(plane, 9, 1)
	assert.Equal(t, 0.0, single.Eval2(5, 5))
}
