package ppu

import "testing"

func writeTile(p *PPU, bank, tile int, rows [8][2]uint8) {
	base := tile * 16
	for r, rowBytes := range rows {
		p.vram[bank][base+r*2] = rowBytes[0]
		p.vram[bank][base+r*2+1] = rowBytes[1]
	}
}

func newDMGPPU() *PPU {
	p := New(false)
	p.io[regLCDC] = 0x93
	p.io[regBGP] = 0xE4
	p.io[regOBP0] = 0xE4
	return p
}

func TestSpriteRendersOverBackgroundAndRespectsTransparency(t *testing.T) {
	p := newDMGPPU()
	writeTile(p, 0, 1, [8][2]uint8{{0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}})
	p.oam[0], p.oam[1], p.oam[2], p.oam[3] = 16, 8, 1, 0

	renderScanline(p, 0)
	if p.framebuffer[0] != dmgShades[1] {
		t.Fatalf("pixel 0 = 0x%08X, want shade 1", p.framebuffer[0])
	}
}

func TestSpritePriorityBitHidesBehindNonzeroBackground(t *testing.T) {
	p := newDMGPPU()
	writeTile(p, 0, 2, [8][2]uint8{{0xFF, 0xFF}, {0xFF, 0xFF}, {0xFF, 0xFF}, {0xFF, 0xFF}, {0xFF, 0xFF}, {0xFF, 0xFF}, {0xFF, 0xFF}, {0xFF, 0xFF}})
	p.vram[0][0x1800] = 2 // BG tilemap top-left tile -> tile 2 (color 3)
	writeTile(p, 0, 1, [8][2]uint8{{0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}})
	p.oam[0], p.oam[1], p.oam[2], p.oam[3] = 16, 8, 1, 0x80

	renderScanline(p, 0)
	if p.framebuffer[0] != dmgShades[3] {
		t.Fatalf("pixel 0 = 0x%08X, want shade 3 (sprite hidden behind opaque BG)", p.framebuffer[0])
	}

	p.vram[0][0x1800] = 0 // BG color 0: sprite should show even with priority bit set
	renderScanline(p, 0)
	if p.framebuffer[0] != dmgShades[1] {
		t.Fatalf("pixel 0 = 0x%08X, want shade 1 (sprite visible over BG color 0)", p.framebuffer[0])
	}
}

func TestCGBLCDCBit0ClearDemotesBGPriorityButBGStillDraws(t *testing.T) {
	p := New(true)
	p.io[regLCDC] = 0x80 | 0x10 | 0x02 // LCD on, unsigned tile addressing, OBJ enable; bit0 and bit5 clear

	writeTile(p, 0, 1, [8][2]uint8{{0xFF, 0xFF}, {0xFF, 0xFF}, {0xFF, 0xFF}, {0xFF, 0xFF}, {0xFF, 0xFF}, {0xFF, 0xFF}, {0xFF, 0xFF}, {0xFF, 0xFF}})
	p.vram[0][0x1800] = 1 // BG tilemap top-left tile -> tile 1 (color 3)
	p.bgPalette[6], p.bgPalette[7] = 0x1F, 0x00 // palette 0, color 3: red

	writeTile(p, 0, 2, [8][2]uint8{{0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}})
	p.objPalette[2], p.objPalette[3] = 0x00, 0x7C // palette 0, color 1: blue
	p.oam[0], p.oam[1], p.oam[2], p.oam[3] = 16, 8, 2, 0x80 // priority bit set

	renderScanline(p, 0)
	want := rgb555(p.objPalette[2], p.objPalette[3])
	if p.framebuffer[0] != want {
		t.Fatalf("pixel 0 = 0x%08X, want 0x%08X (sprite wins, LCDC bit0 demotes BG priority on CGB)", p.framebuffer[0], want)
	}
}

func TestSpriteXAndYFlip(t *testing.T) {
	p := newDMGPPU()
	writeTile(p, 0, 3, [8][2]uint8{{0x80, 0x01}, {0x80, 0x01}, {0x80, 0x01}, {0x80, 0x01}, {0x80, 0x01}, {0x80, 0x01}, {0x80, 0x01}, {0x80, 0x01}})
	p.oam[0], p.oam[1], p.oam[2] = 16, 8, 3

	p.oam[3] = 0x00
	renderScanline(p, 0)
	if p.framebuffer[0] != dmgShades[1] || p.framebuffer[7] != dmgShades[2] {
		t.Fatalf("unflipped row mismatch: px0=0x%08X px7=0x%08X", p.framebuffer[0], p.framebuffer[7])
	}

	p.oam[3] = 0x20 // X flip
	renderScanline(p, 0)
	if p.framebuffer[0] != dmgShades[2] || p.framebuffer[7] != dmgShades[1] {
		t.Fatalf("X-flipped row mismatch: px0=0x%08X px7=0x%08X", p.framebuffer[0], p.framebuffer[7])
	}

	var rows [8][2]uint8
	for i := range rows {
		rows[i] = [2]uint8{0xFF, 0x00}
	}
	rows[7] = [2]uint8{0x00, 0xFF}
	writeTile(p, 0, 4, rows)
	p.oam[2] = 4

	p.oam[3] = 0x00
	renderScanline(p, 0)
	if p.framebuffer[0] != dmgShades[1] {
		t.Fatalf("top row = 0x%08X, want shade 1", p.framebuffer[0])
	}

	p.oam[3] = 0x40 // Y flip
	renderScanline(p, 0)
	if p.framebuffer[0] != dmgShades[2] {
		t.Fatalf("Y-flipped row = 0x%08X, want shade 2", p.framebuffer[0])
	}
}

func TestSprite8x16UsesTwoTiles(t *testing.T) {
	p := newDMGPPU()
	p.io[regLCDC] = 0x97 // 8x16 sprites
	writeTile(p, 0, 6, [8][2]uint8{{0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}})
	writeTile(p, 0, 7, [8][2]uint8{{0x00, 0xFF}, {0x00, 0xFF}, {0x00, 0xFF}, {0x00, 0xFF}, {0x00, 0xFF}, {0x00, 0xFF}, {0x00, 0xFF}, {0x00, 0xFF}})
	p.oam[0], p.oam[1], p.oam[2], p.oam[3] = 16, 8, 6, 0

	renderScanline(p, 0)
	if p.framebuffer[0] != dmgShades[1] {
		t.Fatalf("top-tile pixel = 0x%08X, want shade 1", p.framebuffer[0])
	}

	renderScanline(p, 8)
	if p.framebuffer[8*Width] != dmgShades[2] {
		t.Fatalf("bottom-tile pixel = 0x%08X, want shade 2", p.framebuffer[8*Width])
	}
}

func TestSpritePerLineLimitIsEnforced(t *testing.T) {
	p := newDMGPPU()
	writeTile(p, 0, 1, [8][2]uint8{{0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}, {0xFF, 0x00}})

	for i := 0; i < 10; i++ {
		base := i * 4
		p.oam[base], p.oam[base+1], p.oam[base+2], p.oam[base+3] = 16, 8, 0, 0
	}
	base := 10 * 4
	p.oam[base], p.oam[base+1], p.oam[base+2], p.oam[base+3] = 16, 8, 1, 0

	renderScanline(p, 0)
	if p.framebuffer[0] != dmgShades[0] {
		t.Fatalf("pixel 0 = 0x%08X, want shade 0 (11th sprite dropped)", p.framebuffer[0])
	}
}

func TestModeAdvancesOAMToDrawToHBlankWithinOneLine(t *testing.T) {
	p := New(false)
	if p.mode != ModeOAM {
		t.Fatalf("initial mode = %d, want OAM", p.mode)
	}

	p.Tick(lineOAMEnd - p.dots)
	if p.mode != ModeDraw {
		t.Fatalf("mode after reaching dot 80 = %d, want Draw", p.mode)
	}

	p.Tick(lineDrawEnd - p.dots)
	if p.mode != ModeHBlank {
		t.Fatalf("mode after reaching dot 252 = %d, want HBlank", p.mode)
	}
}

func TestVBlankEntryFiresVBlankInterruptAtLine144(t *testing.T) {
	p := New(false)
	var vblank bool
	for i := 0; i < dotsPerLine*145 && p.io[regLY] < 144; i += 4 {
		v, _, _ := p.Tick(4)
		if v {
			vblank = true
		}
	}
	if p.io[regLY] != 144 {
		t.Fatalf("LY = %d, want 144", p.io[regLY])
	}
	if !vblank {
		t.Fatal("VBlank interrupt never fired on entering line 144")
	}
	if p.mode != ModeVBlank {
		t.Fatalf("mode = %d, want VBlank", p.mode)
	}
	if !p.FrameReady() {
		t.Fatal("frame not marked ready on VBlank entry")
	}
}

func TestLYLYCCoincidenceFiresStatInterruptOnRisingEdge(t *testing.T) {
	p := New(false)
	p.io[regLYC] = 1
	p.Write(0xFF41, 0x40) // enable LYC=LY STAT interrupt

	var stat bool
	for i := 0; i < dotsPerLine*3 && p.io[regLY] < 1; i += 4 {
		_, s, _ := p.Tick(4)
		if s {
			stat = true
		}
	}
	if p.io[regLY] != 1 {
		t.Fatalf("LY = %d, want 1", p.io[regLY])
	}
	if !stat {
		t.Fatal("STAT interrupt did not fire on LY==LYC rising edge")
	}
}

func TestLCDDisableResetsStateAndClearsFramebuffer(t *testing.T) {
	p := New(false)
	p.framebuffer[0] = 0x11223344

	p.Write(0xFF40, p.io[regLCDC]&^0x80)
	if p.lcdEnabled {
		t.Fatal("LCD still enabled after clearing LCDC bit 7")
	}
	if p.io[regLY] != 0 || p.dots != 0 || p.mode != ModeHBlank {
		t.Fatalf("disable did not reset ly/dots/mode: ly=%d dots=%d mode=%d", p.io[regLY], p.dots, p.mode)
	}
	if p.framebuffer[0] != 0xFFFFFFFF {
		t.Fatalf("framebuffer not cleared on LCD disable: 0x%08X", p.framebuffer[0])
	}

	p.Write(0xFF40, p.io[regLCDC]|0x80)
	if !p.lcdEnabled || p.dots != 4 || p.mode != ModeOAM {
		t.Fatalf("enable did not set dots=4/mode=OAM: dots=%d mode=%d", p.dots, p.mode)
	}
}

func TestOAMInaccessibleInModes2And3(t *testing.T) {
	p := New(false)
	p.oam[0] = 0x42

	p.mode = ModeOAM
	p.dots = 0 // row 0: the DMG OAM bug has no earlier row to corrupt
	if v := p.ReadCPU(0xFE00); v != 0xFF {
		t.Fatalf("mode 2 OAM read = 0x%02X, want 0xFF", v)
	}
	p.WriteCPU(0xFE00, 0x99)
	if p.oam[0] != 0x42 {
		t.Fatalf("mode 2 OAM write landed: oam[0] = 0x%02X", p.oam[0])
	}

	p.mode = ModeDraw
	if v := p.ReadCPU(0xFE00); v != 0xFF {
		t.Fatalf("mode 3 OAM read = 0x%02X, want 0xFF", v)
	}

	p.mode = ModeHBlank
	if v := p.ReadCPU(0xFE00); v != 0x42 {
		t.Fatalf("mode 0 OAM read = 0x%02X, want 0x42", v)
	}
}

func TestVRAMInaccessibleInMode3Only(t *testing.T) {
	p := New(false)
	p.vram[0][0] = 0x7E

	p.mode = ModeDraw
	if v := p.ReadCPU(0x8000); v != 0xFF {
		t.Fatalf("mode 3 VRAM read = 0x%02X, want 0xFF", v)
	}
	p.WriteCPU(0x8000, 0x11)
	if p.vram[0][0] != 0x7E {
		t.Fatalf("mode 3 VRAM write landed: vram[0] = 0x%02X", p.vram[0][0])
	}

	p.mode = ModeOAM
	if v := p.ReadCPU(0x8000); v != 0x7E {
		t.Fatalf("mode 2 VRAM read = 0x%02X, want 0x7E (VRAM only gated in mode 3)", v)
	}
}

func TestLCDOffLiftsAccessGating(t *testing.T) {
	p := New(false)
	p.lcdEnabled = false
	p.mode = ModeDraw
	p.oam[0] = 0x33
	p.vram[0][0] = 0x44

	if v := p.ReadCPU(0xFE00); v != 0x33 {
		t.Fatalf("LCD-off OAM read = 0x%02X, want 0x33", v)
	}
	if v := p.ReadCPU(0x8000); v != 0x44 {
		t.Fatalf("LCD-off VRAM read = 0x%02X, want 0x44", v)
	}
}

func TestOAMBugNeverAppliesOnCGB(t *testing.T) {
	p := New(true)
	p.mode = ModeOAM
	p.dots = 4 * 5 // row 5
	p.setOAMWord(4, 0, 0x1234)
	p.setOAMWord(5, 0, 0x5678)

	p.WriteCPU(0xFE00, 0)
	if p.oamWord(4, 0) != 0x1234 {
		t.Fatalf("CGB OAM bug fired: row4 word0 = 0x%04X", p.oamWord(4, 0))
	}
}

func TestOAMBugRowsZeroAndTwentyPlusUnaffected(t *testing.T) {
	p := New(false)
	p.mode = ModeOAM

	p.dots = 0 // row 0: no row before it to corrupt
	for w := 0; w < 4; w++ {
		p.setOAMWord(0, w, 0xAAAA)
	}
	snapshot := p.oam
	p.WriteCPU(0xFE00, 0)
	if p.oam != snapshot {
		t.Fatal("row 0 access corrupted OAM, want no-op")
	}
}

func TestOAMBugWritePureForm(t *testing.T) {
	p := New(false)
	p.mode = ModeOAM
	p.dots = 4 * 5 // current row = 5

	p.setOAMWord(3, 0, 0x0001)
	p.setOAMWord(3, 1, 0x00F0)
	p.setOAMWord(3, 2, 0x0000)
	p.setOAMWord(3, 3, 0x0000)
	p.setOAMWord(4, 0, 0x1234)
	p.setOAMWord(4, 1, 0x0F0F)
	p.setOAMWord(4, 2, 0x0000)
	p.setOAMWord(4, 3, 0xFFFF)
	p.setOAMWord(5, 0, 0xBEEF)
	p.setOAMWord(5, 1, 0x00FF)
	p.setOAMWord(5, 2, 0x0000)
	p.setOAMWord(5, 3, 0x0000)

	p.WriteCPU(0xFE00, 0)

	if got := p.oamWord(4, 0); got != 0xBEEF {
		t.Fatalf("row4 word0 = 0x%04X, want 0xBEEF (overwritten by current row)", got)
	}
	if got, want := p.oamWord(4, 1), uint16(0x0F0F|(0x00F0&0x00FF)); got != want {
		t.Fatalf("row4 word1 = 0x%04X, want 0x%04X", got, want)
	}
}

func TestOAMBugIncDecPropagatesAcrossThreeRows(t *testing.T) {
	p := New(false)
	p.mode = ModeOAM
	p.dots = 4 * 6 // current row = 6

	for w := 0; w < 4; w++ {
		p.setOAMWord(6, w, 0xCAFE)
		p.setOAMWord(5, w, 0x0000)
		p.setOAMWord(4, w, 0x0000)
	}

	p.TriggerOAMBugIncDec(0xFE00)

	for w := 0; w < 4; w++ {
		if got := p.oamWord(5, w); got != 0xCAFE {
			t.Fatalf("row5 word%d = 0x%04X, want 0xCAFE", w, got)
		}
		if got := p.oamWord(4, w); got != 0xCAFE {
			t.Fatalf("row4 word%d = 0x%04X, want 0xCAFE", w, got)
		}
	}
}
