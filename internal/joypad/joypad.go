// Package joypad implements the P1 register's button matrix. Adapted from
// jeebie/memory/joypad.go, unchanged in substance.
package joypad

// Key identifies one of the eight physical buttons.
type Key uint8

const (
	Right Key = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
)

// Joypad tracks button/dpad state and the P1 selection line.
type Joypad struct {
	buttons uint8
	dpad    uint8
	line    uint8
}

func New() *Joypad {
	return &Joypad{buttons: 0x0F, dpad: 0x0F}
}

// Read returns P1's value given the currently selected line(s).
func (j *Joypad) Read() uint8 {
	switch j.line {
	case 0x10:
		return j.dpad
	case 0x20:
		return j.buttons
	default:
		return 0x0F
	}
}

// Write latches the P1 selection bits (4 and 5); the low nibble is
// read-only from the CPU's perspective.
func (j *Joypad) Write(value uint8) {
	j.line = value & 0x30
}

func setBit(n uint, v uint8) uint8   { return v &^ (1 << n) }
func clearBit(n uint, v uint8) uint8 { return v | (1 << n) }

// Press clears the key's bit (active-low), returning whether this is a
// falling edge worth raising the Joypad interrupt for.
func (j *Joypad) Press(key Key) (edge bool) {
	before := j.selected()
	switch key {
	case Right:
		j.dpad = setBit(0, j.dpad)
	case Left:
		j.dpad = setBit(1, j.dpad)
	case Up:
		j.dpad = setBit(2, j.dpad)
	case Down:
		j.dpad = setBit(3, j.dpad)
	case A:
		j.buttons = setBit(0, j.buttons)
	case B:
		j.buttons = setBit(1, j.buttons)
	case Select:
		j.buttons = setBit(2, j.buttons)
	case Start:
		j.buttons = setBit(3, j.buttons)
	}
	return before == 0x0F && j.selected() != 0x0F
}

func (j *Joypad) Release(key Key) {
	switch key {
	case Right:
		j.dpad = clearBit(0, j.dpad)
	case Left:
		j.dpad = clearBit(1, j.dpad)
	case Up:
		j.dpad = clearBit(2, j.dpad)
	case Down:
		j.dpad = clearBit(3, j.dpad)
	case A:
		j.buttons = clearBit(0, j.buttons)
	case B:
		j.buttons = clearBit(1, j.buttons)
	case Select:
		j.buttons = clearBit(2, j.buttons)
	case Start:
		j.buttons = clearBit(3, j.buttons)
	}
}

func (j *Joypad) selected() uint8 {
	switch j.line {
	case 0x10:
		return j.dpad
	case 0x20:
		return j.buttons
	default:
		return 0x0F
	}
}
