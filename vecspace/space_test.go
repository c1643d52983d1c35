package vecspace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vq3go/gngt/vecspace"
)

func TestPointAddScale(t *testing.T) {
	p := vecspace.Point{X: 1, Y: 2}
	q := vecspace.Point{X: 3, Y: -1}

	assert.Equal(t, vecspace.Point{X: 4, Y: 1}, p.Add(q))
	assert.Equal(t, vecspace.Point{X: 2, Y: 4}, p.Scale(2))
}

func TestDist2(t *testing.T) {
	assert.Equal(t, 25.0, vecspace.Dist2(vecspace.Point{X: 0, Y: 0}, vecspace.Point{X: 3, Y: 4}))
	assert.Equal(t, 5.0, vecspace.Dist(vecspace.Point{X: 0, Y: 0}, vecspace.Point{X: 3, Y: 4}))
}

func TestPointNAddScale(t *testing.T) {
	p := vecspace.PointN{1, 2, 3}
	q := vecspace.PointN{1, 1, 1}

	assert.Equal(t, vecspace.PointN{2, 3, 4}, p.Add(q))
	assert.Equal(t, vecspace.PointN{2, 4, 6}, p.Scale(2))
}

func TestPointNDimensionMismatchPanics(t *testing.T) {
	p := vecspace.PointN{1, 2}
	q := vecspace.PointN{1, 2, 3}

	assert.Panics(t, func() { p.Add(q) })
}
