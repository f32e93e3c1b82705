// Package ppu implements the dot-based scanline PPU: the mode timing state
// machine (LCDC/STAT/LY/LYC and the VBlank/STAT interrupt conditions) and the
// background/window/sprite scanline compositor. The timing state machine is
// grounded on original_source/crates/gb-core/src/ppu/ppu.rs; the pixel
// compositor in render.go is grounded on
// original_source/crates/gb-core/src/ppu/render.rs. CGB VRAM banking, BG
// palette RAM and tile attributes (palette/bank/flip/BG-to-OAM priority) are
// not present in original_source and are added directly from the
// specification.
package ppu

const (
	Width  = 160
	Height = 144

	dotsPerLine  = 456
	lineOAMEnd   = 80
	lineDrawEnd  = 252
	lastVisible  = 143
	lastLine     = 153
)

// Mode is the PPU's current scanline phase, matching STAT bits 0-1.
type Mode uint8

const (
	ModeHBlank Mode = 0
	ModeVBlank Mode = 1
	ModeOAM    Mode = 2
	ModeDraw   Mode = 3
)

// Register offsets within io, relative to 0xFF00.
const (
	regLCDC = 0x40
	regSTAT = 0x41
	regSCY  = 0x42
	regSCX  = 0x43
	regLY   = 0x44
	regLYC  = 0x45
	regBGP  = 0x47
	regOBP0 = 0x48
	regOBP1 = 0x49
	regWY   = 0x4A
	regWX   = 0x4B
	regVBK  = 0x4F
	regBCPS = 0x68
	regBCPD = 0x69
	regOCPS = 0x6A
	regOCPD = 0x6B
)

// PPU holds video RAM, OAM, the LCD register file and the dot-timing state
// machine.
type PPU struct {
	cgb bool

	vram [2][0x2000]uint8
	oam  [0xA0]uint8
	io   [0x80]uint8

	bgPalette  [64]uint8
	objPalette [64]uint8

	dots       int
	mode       Mode
	lcdEnabled bool

	prevCoincidence bool

	framebuffer [Width * Height]uint32
	frameReady  bool
}

// New returns a PPU with the post-boot-ROM register defaults. cgb selects
// whether tile attributes and palette RAM are consulted when compositing.
func New(cgb bool) *PPU {
	p := &PPU{cgb: cgb, lcdEnabled: true, mode: ModeOAM, dots: 4}
	p.io[regLCDC] = 0x91
	p.io[regBGP] = 0xFC
	p.io[regOBP0] = 0xFF
	p.io[regOBP1] = 0xFF
	p.syncSTAT()
	return p
}

func (p *PPU) vramBank() int { return int(p.io[regVBK] & 0x01) }

// ReadCPU services CPU access to VRAM, OAM and the LCD registers, applying
// the mode-dependent access gating of spec.md's Access gating section: OAM
// is hidden in modes 2 and 3, VRAM in mode 3, both only while the LCD is on.
// DMA engines bypass this through Read, which they call directly.
func (p *PPU) ReadCPU(addr uint16) uint8 {
	if addr >= 0xFE00 && addr <= 0xFE9F && p.oamBugActive() {
		p.oamBugRead()
	}
	if p.lcdEnabled {
		switch {
		case addr >= 0x8000 && addr <= 0x9FFF && p.mode == ModeDraw:
			return 0xFF
		case addr >= 0xFE00 && addr <= 0xFE9F && (p.mode == ModeOAM || p.mode == ModeDraw):
			return 0xFF
		}
	}
	return p.Read(addr)
}

// WriteCPU services CPU writes to VRAM, OAM and the LCD registers, applying
// the same mode-dependent access gating as ReadCPU: blocked writes are
// dropped rather than reaching the backing array.
func (p *PPU) WriteCPU(addr uint16, v uint8) {
	if addr >= 0xFE00 && addr <= 0xFE9F && p.oamBugActive() {
		p.oamBugWrite()
	}
	if p.lcdEnabled {
		switch {
		case addr >= 0x8000 && addr <= 0x9FFF && p.mode == ModeDraw:
			return
		case addr >= 0xFE00 && addr <= 0xFE9F && (p.mode == ModeOAM || p.mode == ModeDraw):
			return
		}
	}
	p.Write(addr, v)
}

// Read services VRAM, OAM and LCD register access that bypasses CPU mode
// gating: DMA engines (OAM DMA, HDMA/GDMA) and PPU-debugger tooling.
func (p *PPU) Read(addr uint16) uint8 {
	switch {
	case addr >= 0x8000 && addr <= 0x9FFF:
		return p.vram[p.vramBank()][addr-0x8000]
	case addr >= 0xFE00 && addr <= 0xFE9F:
		return p.oam[addr-0xFE00]
	case addr == 0xFF41:
		return p.io[regSTAT] | 0x80
	case addr == 0xFF4F:
		if !p.cgb {
			return 0xFF
		}
		return p.io[regVBK] | 0xFE
	case addr == 0xFF69:
		return p.bgPalette[p.io[regBCPS]&0x3F]
	case addr == 0xFF6B:
		return p.objPalette[p.io[regOCPS]&0x3F]
	case addr >= 0xFF40 && addr <= 0xFF4B:
		return p.io[addr-0xFF00]
	case addr == 0xFF68:
		return p.io[regBCPS] | 0x40
	case addr == 0xFF6A:
		return p.io[regOCPS] | 0x40
	default:
		return 0xFF
	}
}

// Write services VRAM, OAM and LCD register writes that bypass CPU mode
// gating: DMA engines (OAM DMA, HDMA/GDMA) and PPU-debugger tooling.
func (p *PPU) Write(addr uint16, v uint8) {
	switch {
	case addr >= 0x8000 && addr <= 0x9FFF:
		p.vram[p.vramBank()][addr-0x8000] = v
	case addr >= 0xFE00 && addr <= 0xFE9F:
		p.oam[addr-0xFE00] = v
	case addr == 0xFF40:
		p.writeLCDC(v)
	case addr == 0xFF41:
		p.io[regSTAT] = (p.io[regSTAT] & 0x07) | (v & 0x78)
	case addr == 0xFF44:
		// LY is read-only.
	case addr == 0xFF4F:
		if p.cgb {
			p.io[regVBK] = v & 0x01
		}
	case addr == 0xFF68:
		p.io[regBCPS] = v & 0xBF
	case addr == 0xFF69:
		p.writePaletteByte(&p.bgPalette, regBCPS, v)
	case addr == 0xFF6A:
		p.io[regOCPS] = v & 0xBF
	case addr == 0xFF6B:
		p.writePaletteByte(&p.objPalette, regOCPS, v)
	case addr >= 0xFF40 && addr <= 0xFF4B:
		p.io[addr-0xFF00] = v
	}
}

func (p *PPU) writePaletteByte(table *[64]uint8, selReg int, v uint8) {
	idx := p.io[selReg] & 0x3F
	table[idx] = v
	if p.io[selReg]&0x80 != 0 {
		p.io[selReg] = (p.io[selReg] & 0xC0) | ((idx + 1) & 0x3F)
	}
}

func (p *PPU) writeLCDC(v uint8) {
	wasEnabled := p.io[regLCDC]&0x80 != 0
	nowEnabled := v&0x80 != 0
	p.io[regLCDC] = v

	if wasEnabled && !nowEnabled {
		p.lcdEnabled = false
		p.dots = 0
		p.io[regLY] = 0
		p.mode = ModeHBlank
		for i := range p.framebuffer {
			p.framebuffer[i] = 0xFFFFFFFF
		}
		p.syncSTAT()
	} else if !wasEnabled && nowEnabled {
		p.lcdEnabled = true
		p.dots = 4
		p.io[regLY] = 0
		p.mode = ModeOAM
		p.syncSTAT()
	}
}

// syncSTAT composes STAT bits 0-2 from the current mode and coincidence
// flag, preserving the interrupt-enable bits (3-6) the CPU last wrote.
func (p *PPU) syncSTAT() {
	coincidence := p.io[regLY] == p.io[regLYC]
	stat := p.io[regSTAT] & 0x78
	stat |= uint8(p.mode)
	if coincidence {
		stat |= 0x04
	}
	p.io[regSTAT] = stat
}

// statEnabled reports whether STAT's enable bit for the given source
// (mode 0/1/2, or bit 6 for coincidence) is set.
func (p *PPU) statEnabled(bit uint8) bool { return p.io[regSTAT]&bit != 0 }

func (p *PPU) setMode(m Mode) (statIRQ bool) {
	p.mode = m
	p.syncSTAT()
	switch m {
	case ModeHBlank:
		statIRQ = p.statEnabled(0x08)
	case ModeVBlank:
		statIRQ = p.statEnabled(0x10)
	case ModeOAM:
		statIRQ = p.statEnabled(0x20)
	}
	return statIRQ
}

func (p *PPU) checkCoincidence() (statIRQ bool) {
	coincidence := p.io[regLY] == p.io[regLYC]
	if coincidence {
		p.io[regSTAT] |= 0x04
	} else {
		p.io[regSTAT] &^= 0x04
	}
	rising := coincidence && !p.prevCoincidence
	p.prevCoincidence = coincidence
	return rising && p.statEnabled(0x40)
}

// cyclesToNextEvent returns how many dots remain until the current mode's
// boundary, so Tick can advance in a single jump instead of dot by dot.
func (p *PPU) cyclesToNextEvent() int {
	switch p.mode {
	case ModeOAM:
		return lineOAMEnd - p.dots
	case ModeDraw:
		return lineDrawEnd - p.dots
	default:
		return dotsPerLine - p.dots
	}
}

// Tick advances the PPU by cycles CPU T-cycles (1 dot each), returning
// whether the VBlank interrupt or a STAT interrupt condition fired, and
// whether an HBlank period was just entered (the HDMA controller copies one
// 16-byte block on that edge).
func (p *PPU) Tick(cycles int) (vblankIRQ, statIRQ, enteredHBlank bool) {
	if !p.lcdEnabled {
		return false, false, false
	}

	remaining := cycles
	for remaining > 0 {
		step := p.cyclesToNextEvent()
		if step <= 0 {
			step = 1
		}
		if step > remaining {
			step = remaining
		}
		p.dots += step
		remaining -= step

		v, s, h := p.handleBoundary()
		vblankIRQ = vblankIRQ || v
		statIRQ = statIRQ || s
		enteredHBlank = enteredHBlank || h
	}
	return vblankIRQ, statIRQ, enteredHBlank
}

func (p *PPU) handleBoundary() (vblankIRQ, statIRQ, enteredHBlank bool) {
	ly := p.io[regLY]

	switch {
	case p.mode == ModeOAM && p.dots >= lineOAMEnd:
		p.mode = ModeDraw
		p.syncSTAT()
		if int(ly) < Height {
			renderScanline(p, ly)
		}

	case p.mode == ModeDraw && p.dots >= lineDrawEnd:
		statIRQ = p.setMode(ModeHBlank)
		enteredHBlank = true

	case p.dots >= dotsPerLine:
		p.dots -= dotsPerLine
		if p.mode == ModeVBlank {
			ly++
			if ly > lastLine {
				ly = 0
				p.io[regLY] = ly
				statIRQ = p.setMode(ModeOAM)
			} else {
				p.io[regLY] = ly
				p.syncSTAT()
			}
		} else {
			ly++
			p.io[regLY] = ly
			if int(ly) > lastVisible {
				statIRQ = p.setMode(ModeVBlank)
				vblankIRQ = true
				p.frameReady = true
			} else {
				statIRQ = p.setMode(ModeOAM)
			}
		}
		if c := p.checkCoincidence(); c {
			statIRQ = true
		}
	}

	return vblankIRQ, statIRQ, enteredHBlank
}

// FrameReady reports whether a full frame has been composited since the
// last ConsumeFrame call.
func (p *PPU) FrameReady() bool { return p.frameReady }

// ConsumeFrame clears the frame-ready flag and returns a copy of the current
// framebuffer (ARGB8888, row-major, Width*Height pixels).
func (p *PPU) ConsumeFrame() [Width * Height]uint32 {
	p.frameReady = false
	return p.framebuffer
}

// LCDEnabled reports whether LCDC bit 7 is set.
func (p *PPU) LCDEnabled() bool { return p.lcdEnabled }
