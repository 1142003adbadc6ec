package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromPolarRoundTrip(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 15 {
		p := FromPolar(3.5, deg)
		assert.InDelta(t, 3.5, p.Radius(), 1e-12, "angle %g", deg)
	}
}

func TestFromPolarOrientation(t *testing.T) {
	// Zero degrees on the positive x-axis, counter-clockwise from there.
	east := FromPolar(1, 0)
	assert.InDelta(t, 1, east.X, 1e-12)
	assert.InDelta(t, 0, east.Y, 1e-12)

	north := FromPolar(1, 90)
	assert.InDelta(t, 0, north.X, 1e-12)
	assert.InDelta(t, 1, north.Y, 1e-12)
}

func TestAngleDeg(t *testing.T) {
	assert.InDelta(t, 45, NewPoint2D(1, 1).AngleDeg(), 1e-12)
	assert.InDelta(t, -90, NewPoint2D(0, -2).AngleDeg(), 1e-12)
}

func TestDegRadConversions(t *testing.T) {
	assert.InDelta(t, math.Pi, DegToRad(180), 1e-12)
	assert.InDelta(t, 180, RadToDeg(math.Pi), 1e-12)
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 2, 1)
	assert.True(t, r.Contains(NewPoint2D(1, 0.5)))
	assert.True(t, r.Contains(NewPoint2D(2, 1)), "edges are inside")
	assert.False(t, r.Contains(NewPoint2D(2.1, 0.5)))
}

func TestRectCenterAndEmpty(t *testing.T) {
	r := NewRect(1, 2, 4, 6)
	assert.Equal(t, NewPoint2D(3, 5), r.Center())
	assert.False(t, r.IsEmpty())
	assert.True(t, NewRect(0, 0, 0, 1).IsEmpty())
}

func TestBoundingBox(t *testing.T) {
	pts := []Point2D{{X: -1, Y: 2}, {X: 3, Y: -4}, {X: 0, Y: 0}}
	box := BoundingBox(pts)
	assert.Equal(t, NewRect(-1, -4, 4, 6), box)

	assert.Equal(t, Rect{}, BoundingBox(nil))
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5, NewPoint2D(0, 0).Distance(NewPoint2D(3, 4)), 1e-12)
}
