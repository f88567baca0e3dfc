package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputEdgeTriggers(t *testing.T) {
	in := NewInput()

	in.Handle(EventMouseButton{Button: MouseButtonLeft, Down: true})
	assert.True(t, in.IsMouseDown(MouseButtonLeft))
	assert.True(t, in.WasMousePressed(MouseButtonLeft))
	assert.False(t, in.WasMouseReleased(MouseButtonLeft))

	// Held across the frame boundary: down stays, the edge clears.
	in.BeginFrame()
	assert.True(t, in.IsMouseDown(MouseButtonLeft))
	assert.False(t, in.WasMousePressed(MouseButtonLeft))

	in.Handle(EventMouseButton{Button: MouseButtonLeft, Down: false})
	assert.False(t, in.IsMouseDown(MouseButtonLeft))
	assert.True(t, in.WasMouseReleased(MouseButtonLeft))
}

func TestInputKeysAndMouse(t *testing.T) {
	in := NewInput()

	in.Handle(EventKey{Key: KeyW, Down: true})
	assert.True(t, in.IsKeyDown(KeyW))
	in.Handle(EventKey{Key: KeyW, Down: false})
	assert.False(t, in.IsKeyDown(KeyW))

	in.Handle(EventMouseMove{X: 12, Y: 34})
	x, y := in.Mouse()
	assert.Equal(t, 12.0, x)
	assert.Equal(t, 34.0, y)
}
