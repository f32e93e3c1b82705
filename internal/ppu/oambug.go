package ppu

// The DMG OAM corruption bug: during mode 2 (OAM scan), the sprite-search
// logic walks OAM one row (8 bytes, 2 sprites) at a time. A CPU access to
// OAM in the same window collides with that walk and corrupts the row
// before the one currently being scanned, using bitwise combinations of the
// two rows before it. Not present on CGB, which exposes OAM to the CPU
// through a separate bus path during the search.
//
// The oamWord/setOAMWord helpers treat OAM as 20 eight-byte rows of four 16-bit words
// each, per spec.md's "implementers should index through word-level
// helpers" guidance. No file in the example pack or original_source models
// this bug (original_source's PPU is DMG-only but never implements OAM
// access-timing quirks at all); the three corruption forms below follow the
// commonly published hardware write-up of the bug, not a pack source.

func (p *PPU) oamWord(row, word int) uint16 {
	base := row*8 + word*2
	return uint16(p.oam[base]) | uint16(p.oam[base+1])<<8
}

func (p *PPU) setOAMWord(row, word int, v uint16) {
	base := row*8 + word*2
	p.oam[base] = uint8(v)
	p.oam[base+1] = uint8(v >> 8)
}

// currentOAMRow returns the OAM row (0..19) the sprite search is reading
// this M-cycle: one row of two sprites is examined every 4 dots of mode 2.
func (p *PPU) currentOAMRow() int {
	row := p.dots / 4
	if row > 19 {
		row = 19
	}
	return row
}

// oamBugActive reports whether a CPU OAM access right now would trigger the
// corruption: DMG only, LCD on, and the PPU mid OAM-scan.
func (p *PPU) oamBugActive() bool {
	return !p.cgb && p.lcdEnabled && p.mode == ModeOAM
}

// oamBugWrite corrupts OAM for a plain CPU write to OAM during mode 2. Word
// 0 of the row before the one being scanned takes the scanned row's word 0
// outright; the remaining three words take on the OR of themselves with the
// AND of the corresponding words two rows back and the scanned row.
func (p *PPU) oamBugWrite() {
	row := p.currentOAMRow()
	if row < 1 {
		return
	}
	target := row - 1
	p.setOAMWord(target, 0, p.oamWord(row, 0))
	if row < 2 {
		return
	}
	back := row - 2
	for w := 1; w <= 3; w++ {
		p.setOAMWord(target, w, p.oamWord(target, w)|(p.oamWord(back, w)&p.oamWord(row, w)))
	}
}

// oamBugRead corrupts OAM for a plain CPU read of OAM during mode 2: every
// word of the row before the scanned one becomes the OR of the scanned
// row's word with the AND of itself and the row two back (or itself alone
// when there is no row two back).
func (p *PPU) oamBugRead() {
	row := p.currentOAMRow()
	if row < 1 {
		return
	}
	target := row - 1
	back := target
	if row >= 2 {
		back = row - 2
	}
	for w := 0; w <= 3; w++ {
		p.setOAMWord(target, w, p.oamWord(row, w)|(p.oamWord(back, w)&p.oamWord(target, w)))
	}
}

// oamBugIncDec corrupts OAM for the 16-bit INC/DEC opcodes (INC BC/DE/HL/SP
// and their DEC forms): these never touch the data bus, but briefly drive
// the resulting address onto it, which collapses the row before the
// scanned one and the row two back into the scanned row's own contents.
func (p *PPU) oamBugIncDec() {
	row := p.currentOAMRow()
	if row < 2 {
		return
	}
	for w := 0; w <= 3; w++ {
		v := p.oamWord(row, w)
		p.setOAMWord(row-1, w, v)
		p.setOAMWord(row-2, w, v)
	}
}

// TriggerOAMBugIncDec applies the read-combined-with-increment/decrement
// corruption form when addr (a 16-bit register's new value after INC/DEC)
// falls inside OAM during mode 2 on DMG.
func (p *PPU) TriggerOAMBugIncDec(addr uint16) {
	if !p.oamBugActive() || addr < 0xFE00 || addr > 0xFE9F {
		return
	}
	p.oamBugIncDec()
}
