package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/kestrelcore/gbcore/internal/joypad"
)

func TestKeyFromEventMapsArrowsAndButtons(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want joypad.Key
	}{
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), joypad.Right},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), joypad.Left},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), joypad.Up},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), joypad.Down},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), joypad.Start},
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), joypad.A},
		{tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), joypad.B},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), joypad.Select},
	}

	for _, tc := range cases {
		key, ok := keyFromEvent(tc.ev)
		assert.True(t, ok)
		assert.Equal(t, tc.want, key)
	}
}

func TestKeyFromEventRejectsUnmappedKeys(t *testing.T) {
	_, ok := keyFromEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	assert.False(t, ok)

	_, ok = keyFromEvent(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))
	assert.False(t, ok)
}
