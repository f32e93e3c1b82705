package apu

// wave models CH3, the programmable wave channel with its 32-nibble wave
// RAM. Grounded directly on
// original_source/crates/gb-core/src/apu/channels/wave.rs, including the
// CGB-only wave-RAM read/write redirection quirks (the currently-playing
// byte is the only one visible/writable while the channel is on, and the
// redirect index updates a couple of cycles after the sample advances) and
// the length-freeze-on-extra-clock subtlety.
type wave struct {
	enabled    bool
	dacEnabled bool

	nr30, nr31, nr32, nr33, nr34 uint8

	lengthCounter uint16
	lengthFrozen  bool
	timer         uint16
	sampleIndex   uint8
	sampleBuffer  uint8

	latchIndex        uint8
	latchPendingIndex uint8
	latchDelay        uint8

	ram [16]uint8
}

func newWave() *wave { return &wave{timer: 1} }

// poweredRegisterClear resets CH3 on an APU power-off. nr31 and the length
// counter survive a DMG/MGB power cycle but are cleared on CGB.
func (w *wave) poweredRegisterClear(cgbMode bool) {
	w.nr30, w.nr32, w.nr33, w.nr34 = 0, 0, 0, 0
	if cgbMode {
		w.nr31 = 0
		w.lengthCounter = 0
	}
	w.enabled = false
	w.dacEnabled = false
	w.lengthFrozen = false
	w.timer = 1
	w.sampleIndex = 0
	w.sampleBuffer = 0
	w.latchIndex = 0
	w.latchPendingIndex = 0
	w.latchDelay = 0
}

func (w *wave) trigger(cgbMode bool) {
	if w.lengthCounter == 0 {
		w.lengthCounter = 256
	}
	w.lengthFrozen = false

	period := w.period()
	if cgbMode {
		phase := w.timer & 0x0003
		t := (period &^ 0x0003) | phase
		if t == 0 {
			w.timer = period
		} else {
			w.timer = t
		}
	} else {
		w.timer = period
	}

	w.sampleIndex = 0
	w.latchIndex = 0
	w.latchPendingIndex = 0
	w.latchDelay = 0
	w.enabled = w.dacEnabled
}

func (w *wave) tickTimer() {
	if w.latchDelay != 0 {
		w.latchDelay--
		if w.latchDelay == 0 {
			w.latchIndex = w.latchPendingIndex & 0x0F
		}
	}

	if w.timer > 1 {
		w.timer--
		return
	}
	w.timer = w.period()
	w.sampleIndex = (w.sampleIndex + 1) & 31
	w.sampleBuffer = w.ram[w.sampleIndex/2]

	w.latchPendingIndex = (w.sampleIndex / 2) & 0x0F
	w.latchDelay = 2
}

func (w *wave) readWaveRAM(index int, cgbMode bool) uint8 {
	if w.enabled {
		if cgbMode {
			return w.ram[w.latchIndex]
		}
		return 0xFF
	}
	return w.ram[index]
}

func (w *wave) writeWaveRAM(index int, v uint8, cgbMode bool) {
	if w.enabled {
		if cgbMode {
			idx := int(w.latchIndex)
			w.ram[idx] = v
			if idx == int(w.sampleIndex/2) {
				w.sampleBuffer = v
			}
		}
		return
	}
	w.ram[index] = v
}

func (w *wave) writeNR30(v uint8) {
	w.nr30 = v
	w.dacEnabled = v&0x80 != 0
	if !w.dacEnabled {
		w.enabled = false
	}
}

func (w *wave) writeNR31(v uint8) {
	w.nr31 = v
	length := 256 - uint16(v)
	if length == 0 {
		length = 256
	}
	w.lengthCounter = length
}

func (w *wave) writeNR32(v uint8) { w.nr32 = v }
func (w *wave) writeNR33(v uint8) { w.nr33 = v }

func (w *wave) writeNR34(v uint8, frameSeqStep uint8, cgbMode bool) {
	oldLenEn := w.nr34&0x40 != 0
	newLenEn := v&0x40 != 0
	trigger := v&0x80 != 0
	oldFrozen := w.lengthFrozen

	w.nr34 = v & 0xC7

	extraFroze := false
	if frameSeqStep%2 != 0 && !oldLenEn && newLenEn {
		w.clockLengthInternal(true, cgbMode)
		extraFroze = cgbMode && w.lengthFrozen
	}

	if trigger {
		w.trigger(cgbMode)
	}

	if frameSeqStep%2 != 0 && trigger && newLenEn && cgbMode && (oldFrozen || extraFroze) {
		w.clockLengthInternal(false, cgbMode)
	}
}

func (w *wave) clockLengthInternal(isExtraClock, cgbMode bool) {
	if w.nr34&0x40 == 0 {
		return
	}
	if w.lengthCounter > 0 {
		w.lengthCounter--
		if w.lengthCounter == 0 {
			w.enabled = false
			if isExtraClock && cgbMode {
				w.lengthFrozen = true
			}
		}
	}
}

func (w *wave) frequency() uint16 { return (uint16(w.nr34)&0x07)<<8 | uint16(w.nr33) }
func (w *wave) period() uint16    { return (2048 - w.frequency()) * 2 }

// volumeShift returns the right-shift applied to each 4-bit sample, or
// false for volume code 0 (muted).
func (w *wave) volumeShift() (uint8, bool) {
	switch (w.nr32 >> 5) & 0x03 {
	case 1:
		return 0, true
	case 2:
		return 1, true
	case 3:
		return 2, true
	default:
		return 0, false
	}
}

func (w *wave) output() float32 {
	if !w.enabled || !w.dacEnabled {
		return 0
	}
	var nibble uint8
	if w.sampleIndex&1 == 0 {
		nibble = w.sampleBuffer >> 4
	} else {
		nibble = w.sampleBuffer & 0x0F
	}
	shift, ok := w.volumeShift()
	if !ok {
		return 0
	}
	sample := nibble >> shift
	return float32(sample)/7.5 - 1
}

func (w *wave) lengthCounterValue() uint16 { return w.lengthCounter }
