//go:build sdl2

package sdl2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/kestrelcore/gbcore/internal/joypad"
)

func TestKeyFromScancodeMapsArrowsAndButtons(t *testing.T) {
	cases := []struct {
		code sdl.Scancode
		want joypad.Key
	}{
		{sdl.SCANCODE_RIGHT, joypad.Right},
		{sdl.SCANCODE_LEFT, joypad.Left},
		{sdl.SCANCODE_UP, joypad.Up},
		{sdl.SCANCODE_DOWN, joypad.Down},
		{sdl.SCANCODE_Z, joypad.A},
		{sdl.SCANCODE_X, joypad.B},
		{sdl.SCANCODE_LSHIFT, joypad.Select},
		{sdl.SCANCODE_RETURN, joypad.Start},
	}

	for _, tc := range cases {
		key, ok := keyFromScancode(tc.code)
		assert.True(t, ok)
		assert.Equal(t, tc.want, key)
	}
}

func TestKeyFromScancodeRejectsUnmapped(t *testing.T) {
	_, ok := keyFromScancode(sdl.SCANCODE_ESCAPE)
	assert.False(t, ok)
}
