package apu

// noiseDivisors is NR43's divisor-code table for the LFSR clock period.
var noiseDivisors = [8]uint16{8, 16, 32, 48, 64, 80, 96, 112}

// noise models CH4, the pseudo-random LFSR noise channel. Grounded on
// original_source/crates/gb-core/src/apu/channels/noise.rs.
type noise struct {
	enabled    bool
	dacEnabled bool

	nr41, nr42, nr43, nr44 uint8

	lengthCounter uint16
	lengthFrozen  bool
	timer         uint16
	volume        uint8
	envTimer      uint8
	lfsr          uint16
}

func newNoise() *noise { return &noise{timer: 1, lfsr: 0x7FFF} }

func (n *noise) poweredRegisterClear() {
	*n = noise{timer: 1, lfsr: 0x7FFF}
}

func (n *noise) writeNR41(v uint8) {
	n.nr41 = v
	length := 64 - uint16(v&0x3F)
	if length == 0 {
		length = 64
	}
	n.lengthCounter = length
}

func (n *noise) writeNR42(v uint8) {
	n.nr42 = v
	n.dacEnabled = v&0xF8 != 0
	if !n.dacEnabled {
		n.enabled = false
	}
}

func (n *noise) writeNR43(v uint8) { n.nr43 = v }

// writeNR44 handles the trigger bit, length-enable, and the odd-step extra
// length clock, matching the square/wave channels' NRx4 behavior. On CGB,
// if that extra clock reaches zero, a trigger in the same write reloads
// and re-clocks the length counter once.
func (n *noise) writeNR44(v uint8, frameSeqStep uint8, cgbMode bool) {
	oldLenEn := n.nr44&0x40 != 0
	newLenEn := v&0x40 != 0
	trigger := v&0x80 != 0
	oldFrozen := n.lengthFrozen

	n.nr44 = v & 0xC0

	extraFroze := false
	if frameSeqStep%2 != 0 && !oldLenEn && newLenEn {
		n.clockLengthInternal(true, cgbMode)
		extraFroze = cgbMode && n.lengthFrozen
	}
	if trigger {
		n.trigger()
	}

	if frameSeqStep%2 != 0 && trigger && newLenEn && cgbMode && (oldFrozen || extraFroze) {
		n.clockLengthInternal(false, cgbMode)
	}
}

func (n *noise) trigger() {
	if n.lengthCounter == 0 {
		n.lengthCounter = 64
	}
	n.lengthFrozen = false
	n.timer = n.period()
	n.envTimer = n.envelopePeriod()
	n.volume = (n.nr42 >> 4) & 0x0F
	n.lfsr = 0x7FFF
	n.enabled = n.dacEnabled
}

func (n *noise) tickTimer() {
	if n.timer > 1 {
		n.timer--
		return
	}
	n.timer = n.period()

	xor := (n.lfsr & 0x01) ^ ((n.lfsr >> 1) & 0x01)
	n.lfsr >>= 1
	n.lfsr |= xor << 14
	if n.nr43&0x08 != 0 {
		n.lfsr &^= 1 << 6
		n.lfsr |= xor << 6
	}
}

func (n *noise) clockLengthInternal(isExtraClock, cgbMode bool) {
	if n.nr44&0x40 == 0 {
		return
	}
	if n.lengthCounter > 0 {
		n.lengthCounter--
		if n.lengthCounter == 0 {
			n.enabled = false
			if isExtraClock && cgbMode {
				n.lengthFrozen = true
			}
		}
	}
}

func (n *noise) clockEnvelope() {
	period := n.nr42 & 0x07
	if period == 0 {
		return
	}
	if n.envTimer > 1 {
		n.envTimer--
		return
	}
	n.envTimer = n.envelopePeriod()
	if n.nr42&0x08 != 0 {
		if n.volume < 15 {
			n.volume++
		}
	} else if n.volume > 0 {
		n.volume--
	}
}

func (n *noise) envelopePeriod() uint8 {
	p := n.nr42 & 0x07
	if p == 0 {
		return 8
	}
	return p
}

func (n *noise) period() uint16 {
	divisor := noiseDivisors[n.nr43&0x07]
	shift := (n.nr43 >> 4) & 0x0F
	return divisor << shift
}

func (n *noise) output() float32 {
	if !n.enabled || !n.dacEnabled {
		return 0
	}
	if n.lfsr&0x01 == 0 {
		return float32(n.volume) / 15
	}
	return -(float32(n.volume) / 15)
}

func (n *noise) lengthCounterValue() uint16 { return n.lengthCounter }
