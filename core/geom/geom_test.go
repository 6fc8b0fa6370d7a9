package geom

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDist(t *testing.T) {
	assert.Equal(t, 5.0, Dist(Point{0, 0}, Point{3, 4}))
	assert.Equal(t, 0.0, Dist(Point{1, 1}, Point{1, 1}))
}

func TestRotateQuarter(t *testing.T) {
	p := Point{1, 0}.Rotate(math.Pi / 2)
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 1, p.Y, 1e-9)
}

func TestLongSideAngle(t *testing.T) {
	q := Quad{{0, 0}, {50, 0}, {50, 10}, {0, 10}}
	assert.InDelta(t, 0, q.LongSideAngle(), 1e-9)
	// taller than wide: the right edge is the long side
	tall := Quad{{0, 0}, {10, 0}, {10, 50}, {0, 50}}
	assert.InDelta(t, math.Pi/2, tall.LongSideAngle(), 1e-9)
}

func TestQuadBounds(t *testing.T) {
	q := Quad{{0, 0}, {50, 0}, {50, 10}, {0, 10}}.Rotate(math.Pi / 2)
	r := q.Bounds()
	assert.InDelta(t, -10, r.X0, 1e-9)
	assert.InDelta(t, 0, r.Y0, 1e-9)
	assert.InDelta(t, 0, r.X1, 1e-9)
	assert.InDelta(t, 50, r.Y1, 1e-9)
}

func TestRectUnion(t *testing.T) {
	r := Rect{0, 0, 10, 10}.Union(Rect{5, -5, 20, 8})
	assert.Equal(t, Rect{0, -5, 20, 10}, r)
}

func TestQuadJSON(t *testing.T) {
	q := Quad{{0, 0}, {50, 0}, {50, 10}, {0, 10}}
	b, err := json.Marshal(q)
	assert.NoError(t, err)
	assert.JSONEq(t, `[[0,0],[50,0],[50,10],[0,10]]`, string(b))
	var back Quad
	assert.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, q, back)
}

func TestPointJSONArity(t *testing.T) {
	var p Point
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &p))
	assert.Error(t, json.Unmarshal([]byte(`[1,2,3]`), &p))
}
