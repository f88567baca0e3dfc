package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// apply multiplies the column-major projection with (x, y, 0, 1) and returns
// the clip-space x and y.
func apply(m [16]float32, x, y float32) (float32, float32) {
	cx := m[0]*x + m[4]*y + m[12]
	cy := m[1]*x + m[5]*y + m[13]
	return cx, cy
}

func TestProjectionMapsCorners(t *testing.T) {
	cam := NewUICamera(800, 600)
	m := cam.Projection()

	// Top-left pixel lands in the top-left of clip space (-1, +1).
	x, y := apply(m, 0, 0)
	assert.InDelta(t, -1, x, 1e-6)
	assert.InDelta(t, 1, y, 1e-6)

	// Bottom-right pixel lands at (+1, -1): Y runs down the screen.
	x, y = apply(m, 800, 600)
	assert.InDelta(t, 1, x, 1e-6)
	assert.InDelta(t, -1, y, 1e-6)

	// Center maps to the origin.
	x, y = apply(m, 400, 300)
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 0, y, 1e-6)
}

func TestSetViewportRecalculates(t *testing.T) {
	cam := NewUICamera(100, 100)
	cam.SetViewport(200, 100)
	assert.Equal(t, float32(200), cam.Width())

	x, _ := apply(cam.Projection(), 200, 0)
	assert.InDelta(t, 1, x, 1e-6)
}
