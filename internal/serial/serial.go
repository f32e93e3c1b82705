// Package serial implements the SB/SC link cable registers. Adapted from
// jeebie/serial/logsink.go, generalized per
// original_source/crates/gb-core/src/serial.rs to distinguish an
// internal-clock transfer (this device is master, completes after a fixed
// cycle count) from an external-clock transfer (a peer would drive the
// clock; with no peer connected it never completes, matching the
// disconnected-link-cable case on real hardware without ever hanging the
// CPU).
package serial

// internalTransferCycles is the fixed per-byte duration for an
// internal-clock (bit0 of SC set) transfer on DMG, matching
// original_source's SERIAL_INTERNAL_TRANSFER_CYCLES.
const internalTransferCycles = 4096

// Serial holds SB/SC state and the captured output stream, useful for
// test-ROM harnesses that print results over the link cable.
type Serial struct {
	sb, sc     uint8
	inProgress bool
	internal   bool
	remaining  int
	output     []byte
}

func New() *Serial {
	return &Serial{}
}

func (s *Serial) ReadSB() uint8 { return s.sb }
func (s *Serial) ReadSC() uint8 { return s.sc | 0x7E }

func (s *Serial) WriteSB(v uint8) { s.sb = v }

// WriteSC starts a transfer when bit 7 (start) is set. Bit 0 selects the
// clock source: 1 means this side drives the clock (internal, completes
// after internalTransferCycles); 0 means an external peer would drive it,
// which never happens here, so the transfer stays pending forever without
// blocking anything else.
func (s *Serial) WriteSC(v uint8) {
	s.sc = v & 0x83
	if s.sc&0x80 == 0 {
		s.inProgress = false
		return
	}

	s.inProgress = true
	s.internal = s.sc&0x01 != 0
	if s.internal {
		s.remaining = internalTransferCycles
	}
}

// Tick advances an in-progress internal-clock transfer and reports whether
// the Serial interrupt should fire this tick.
func (s *Serial) Tick(cycles int) (interrupt bool) {
	if !s.inProgress || !s.internal {
		return false
	}

	s.remaining -= cycles
	if s.remaining > 0 {
		return false
	}

	s.output = append(s.output, s.sb)
	s.sb = 0xFF
	s.sc &^= 0x80
	s.inProgress = false
	return true
}

// Output drains and returns bytes completed over an internal-clock
// transfer, in order.
func (s *Serial) Output() []byte {
	out := s.output
	s.output = nil
	return out
}
