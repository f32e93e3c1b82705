package ppu

// dmgShades is the 4-level greyscale palette the DMG applies to a 2-bit
// color index via BGP/OBP0/OBP1. Matches original_source's DMG_SHADES.
var dmgShades = [4]uint32{0xFFFFFFFF, 0xFFAAAAAA, 0xFF555555, 0xFF000000}

// bgAttr is the CGB tile-map attribute byte stored in VRAM bank 1 at the
// same address as the tile id in bank 0.
type bgAttr uint8

func (a bgAttr) palette() uint8 { return uint8(a) & 0x07 }
func (a bgAttr) bank() int      { return int((a >> 3) & 0x01) }
func (a bgAttr) xFlip() bool    { return a&0x20 != 0 }
func (a bgAttr) yFlip() bool    { return a&0x40 != 0 }
func (a bgAttr) priority() bool { return a&0x80 != 0 }

// rgb555 unpacks a little-endian CGB palette color (5 bits per channel) into
// ARGB8888, matching the common 8-bit channel expansion (v*8 + v/4).
func rgb555(lo, hi uint8) uint32 {
	word := uint16(hi)<<8 | uint16(lo)
	r := uint8(word & 0x1F)
	g := uint8((word >> 5) & 0x1F)
	b := uint8((word >> 10) & 0x1F)
	expand := func(c uint8) uint32 { return uint32(c)*8 + uint32(c)/4 }
	return 0xFF000000 | expand(r)<<16 | expand(g)<<8 | expand(b)
}

func (p *PPU) bgColor(paletteNum, colorNum uint8) uint32 {
	if !p.cgb {
		shade := (p.io[regBGP] >> (colorNum * 2)) & 0x03
		return dmgShades[shade]
	}
	idx := int(paletteNum)*8 + int(colorNum)*2
	return rgb555(p.bgPalette[idx], p.bgPalette[idx+1])
}

func (p *PPU) objColor(paletteNum, colorNum uint8, useOBP1 bool) uint32 {
	if !p.cgb {
		pal := p.io[regOBP0]
		if useOBP1 {
			pal = p.io[regOBP1]
		}
		shade := (pal >> (colorNum * 2)) & 0x03
		return dmgShades[shade]
	}
	idx := int(paletteNum)*8 + int(colorNum)*2
	return rgb555(p.objPalette[idx], p.objPalette[idx+1])
}

// renderScanline composites the background, window and sprite layers for
// line ly into the framebuffer. Latched at the mode 2 -> 3 transition, as
// real hardware samples its scanline state once per line rather than per
// dot.
func renderScanline(p *PPU, ly uint8) {
	var colorNums [Width]uint8
	var bgPriority [Width]bool
	renderBackgroundWindow(p, ly, &colorNums, &bgPriority)
	renderSprites(p, ly, &colorNums, &bgPriority)
}

func renderBackgroundWindow(p *PPU, ly uint8, colorNums *[Width]uint8, bgPriority *[Width]bool) {
	lcdc := p.io[regLCDC]
	bgEnabled := lcdc&0x01 != 0 || p.cgb
	windowEnabled := (lcdc&0x01 != 0 || p.cgb) && lcdc&0x20 != 0

	scy, scx := p.io[regSCY], p.io[regSCX]
	bgTilemapBase := uint16(0x9800)
	if lcdc&0x08 != 0 {
		bgTilemapBase = 0x9C00
	}
	windowTilemapBase := uint16(0x9800)
	if lcdc&0x40 != 0 {
		windowTilemapBase = 0x9C00
	}
	unsignedTiles := lcdc&0x10 != 0

	y := ly + scy
	bgTileRow, bgPixelRow := uint16(y)/8, uint16(y)%8

	wy, wx := p.io[regWY], p.io[regWX]
	windowActive := windowEnabled && ly >= wy
	windowY := uint16(ly - wy)
	winTileRow, winPixelRow := windowY/8, windowY%8
	winXStart := int(wx) - 7

	for x := 0; x < Width; x++ {
		var colorNum uint8
		var attr bgAttr

		if bgEnabled {
			bx := uint8(x) + scx
			bgTileCol, bgPixelCol := uint16(bx)/8, uint16(bx)%8
			tileAddr := bgTilemapBase + bgTileRow*32 + bgTileCol
			tileID := p.vram[0][tileAddr-0x8000]
			if p.cgb {
				attr = bgAttr(p.vram[1][tileAddr-0x8000])
			}
			colorNum = p.sampleTile(tileID, bgPixelRow, bgPixelCol, unsignedTiles, attr)
		}

		if windowActive && x >= winXStart {
			winX := uint16(x - winXStart)
			winTileCol, winPixelCol := winX/8, winX%8
			tileAddr := windowTilemapBase + winTileRow*32 + winTileCol
			tileID := p.vram[0][tileAddr-0x8000]
			if p.cgb {
				attr = bgAttr(p.vram[1][tileAddr-0x8000])
			}
			colorNum = p.sampleTile(tileID, winPixelRow, winPixelCol, unsignedTiles, attr)
		}

		colorNums[x] = colorNum
		bgPriority[x] = p.cgb && attr.priority()
		p.framebuffer[int(ly)*Width+x] = p.bgColor(attr.palette(), colorNum)
	}
}

// sampleTile resolves one 2-bit color index from tile data, honoring the
// CGB attribute's VRAM bank and X/Y flip.
func (p *PPU) sampleTile(tileID uint8, pixelRow, pixelCol uint16, unsignedTiles bool, attr bgAttr) uint8 {
	if attr.yFlip() {
		pixelRow = 7 - pixelRow
	}
	if attr.xFlip() {
		pixelCol = 7 - pixelCol
	}

	var tileAddr uint16
	if unsignedTiles {
		tileAddr = 0x8000 + uint16(tileID)*16
	} else {
		id := int16(int8(tileID))
		tileAddr = uint16(int32(0x9000) + int32(id)*16)
	}

	bank := 0
	if p.cgb {
		bank = attr.bank()
	}
	rowAddr := tileAddr + pixelRow*2
	lo := p.vram[bank][rowAddr-0x8000]
	hi := p.vram[bank][rowAddr-0x8000+1]
	bit := 7 - uint8(pixelCol)
	lsb := (lo >> bit) & 1
	msb := (hi >> bit) & 1
	return (msb << 1) | lsb
}

type spriteLine struct {
	oamIndex      uint8
	x             int16
	attrs         uint8
	rowLo, rowHi  uint8
	cgbVRAMBank   int
}

// renderSprites scans OAM for up to 10 sprites touching line ly, then
// composites them over the background/window layer, honoring x-priority
// (DMG: smaller X wins ties; CGB: OAM index wins ties), the BG-to-OAM
// priority bit, and 8x16 tall-sprite tile pairing.
func renderSprites(p *PPU, ly uint8, bgColorNums *[Width]uint8, bgPriority *[Width]bool) {
	lcdc := p.io[regLCDC]
	if lcdc&0x02 == 0 {
		return
	}

	spriteHeight := int16(8)
	if lcdc&0x04 != 0 {
		spriteHeight = 16
	}
	lyI := int16(ly)

	var line [10]spriteLine
	count := 0

	for i := uint8(0); i < 40; i++ {
		base := int(i) * 4
		y := int16(p.oam[base]) - 16
		x := int16(p.oam[base+1]) - 8
		tile := p.oam[base+2]
		attrs := p.oam[base+3]

		if lyI < y || lyI >= y+spriteHeight {
			continue
		}

		row := lyI - y
		if attrs&0x40 != 0 {
			row = spriteHeight - 1 - row
		}
		if spriteHeight == 16 {
			tile &= 0xFE
			if row >= 8 {
				tile++
				row -= 8
			}
		}

		bank := 0
		if p.cgb && attrs&0x08 != 0 {
			bank = 1
		}
		tileAddr := uint16(0x8000) + uint16(tile)*16
		rowAddr := tileAddr + uint16(row)*2
		line[count] = spriteLine{
			oamIndex:    i,
			x:           x,
			attrs:       attrs,
			rowLo:       p.vram[bank][rowAddr-0x8000],
			rowHi:       p.vram[bank][rowAddr-0x8000+1],
			cgbVRAMBank: bank,
		}
		count++
		if count == 10 {
			break
		}
	}

	bgEnabled := lcdc&0x01 != 0 || p.cgb

	for x := 0; x < Width; x++ {
		screenX := int16(x)

		var bestIdx = -1
		var bestX, bestOAM int16 = 0, 0
		var bestColor uint8

		for i := 0; i < count; i++ {
			s := &line[i]
			if screenX < s.x || screenX >= s.x+8 {
				continue
			}
			col := uint8(screenX - s.x)
			if s.attrs&0x20 != 0 {
				col = 7 - col
			}
			bit := 7 - col
			lsb := (s.rowLo >> bit) & 1
			msb := (s.rowHi >> bit) & 1
			colorNum := (msb << 1) | lsb
			if colorNum == 0 {
				continue
			}

			if bestIdx == -1 {
				bestIdx, bestX, bestOAM, bestColor = i, s.x, int16(s.oamIndex), colorNum
				continue
			}
			if p.cgb {
				// CGB sprite priority: earlier OAM index wins regardless of X
				// (unless OPRI selects DMG-style ordering, not modeled).
				if int16(s.oamIndex) < bestOAM {
					bestIdx, bestX, bestOAM, bestColor = i, s.x, int16(s.oamIndex), colorNum
				}
			} else if s.x < bestX || (s.x == bestX && int16(s.oamIndex) < bestOAM) {
				bestIdx, bestX, bestOAM, bestColor = i, s.x, int16(s.oamIndex), colorNum
			}
		}

		if bestIdx == -1 {
			continue
		}
		s := &line[bestIdx]

		// LCDC bit 0 on CGB demotes BG priority entirely: the sprite always
		// wins even when its own or the BG attribute's priority bit is set.
		// BG pixels still draw underneath; only DMG treats that bit as a
		// BG/window master disable.
		cgbBGPriorityDemoted := p.cgb && lcdc&0x01 == 0
		behindBG := !cgbBGPriorityDemoted && (s.attrs&0x80 != 0 || bgPriority[x])
		if behindBG && bgEnabled && bgColorNums[x] != 0 {
			continue
		}

		var color uint32
		if p.cgb {
			color = p.objColor(s.attrs&0x07, bestColor, false)
		} else {
			color = p.objColor(0, bestColor, s.attrs&0x10 != 0)
		}
		p.framebuffer[int(ly)*Width+x] = color
	}
}
