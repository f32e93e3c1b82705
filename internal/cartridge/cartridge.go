// Package cartridge parses Game Boy ROM headers and implements the memory
// bank controllers (mappers) that decode the 0x0000-0x7FFF and 0xA000-0xBFFF
// windows. Adapted from jeebie/memory/mbc.go and jeebie/memory/cartridge.go,
// generalized with full MBC2/MBC3/MBC5 semantics and MBC3 RTC grounded on
// original_source/crates/gb-core/src/cartridge/mbc3.rs.
package cartridge

import (
	"encoding/binary"

	"github.com/kestrelcore/gbcore/internal/gberr"
)

// saveMagic trails a save blob that also carries MBC3 RTC state, following
// the common "GBSV1" convention used by several open-source cores so saves
// remain portable.
var saveMagic = [5]byte{'G', 'B', 'S', 'V', '1'}

// Cartridge owns the parsed header and the selected mapper.
type Cartridge struct {
	Header Header
	mapper Mapper
}

// Load parses rom and constructs the matching mapper.
func Load(rom []byte) (*Cartridge, error) {
	hdr, err := ParseHeader(rom)
	if err != nil {
		return nil, err
	}

	var m Mapper
	switch hdr.Mapper {
	case MapperNone:
		m = NewNoMBC(rom, hdr.RAMBankCnt)
	case MapperMBC1:
		m = NewMBC1(rom, hdr.RAMBankCnt)
	case MapperMBC2:
		m = NewMBC2(rom)
	case MapperMBC3:
		m = NewMBC3(rom, hdr.RAMBankCnt, hdr.HasRTC)
	case MapperMBC5:
		m = NewMBC5(rom, hdr.RAMBankCnt, hdr.HasRumble)
	default:
		return nil, gberr.New(gberr.UnsupportedMapper, "mapper kind has no implementation")
	}

	return &Cartridge{Header: hdr, mapper: m}, nil
}

func (c *Cartridge) Read(addr uint16) uint8        { return c.mapper.Read(addr) }
func (c *Cartridge) Write(addr uint16, value uint8) { c.mapper.Write(addr, value) }
func (c *Cartridge) Tick(cycles int)                { c.mapper.Tick(cycles) }

// HasBatterySave reports whether this cartridge persists RAM/RTC state.
func (c *Cartridge) HasBatterySave() bool {
	return c.Header.HasBattery
}

// SaveData serializes battery-backed RAM, and MBC3 RTC state when present,
// into a single blob. Cartridges without extra state emit plain RAM bytes;
// cartridges with extra state (RTC) append the "GBSV1" trailer so loaders
// can distinguish the two formats.
func (c *Cartridge) SaveData() []byte {
	ram := c.mapper.SaveRAM()
	extra := c.mapper.SaveExtra()
	if extra == nil {
		out := make([]byte, len(ram))
		copy(out, ram)
		return out
	}

	out := make([]byte, 0, len(ram)+len(extra)+4+len(saveMagic))
	out = append(out, ram...)
	out = append(out, extra...)
	lenBuf := make([]byte, 4)
	binary.LittleEndian.PutUint32(lenBuf, uint32(len(extra)))
	out = append(out, lenBuf...)
	out = append(out, saveMagic[:]...)
	return out
}

// LoadSaveData restores RAM (and RTC state, if the trailer is present) from
// a blob previously produced by SaveData. An empty blob is accepted as "no
// prior save".
func (c *Cartridge) LoadSaveData(data []byte) error {
	if len(data) == 0 {
		return nil
	}

	trailerLen := 4 + len(saveMagic)
	if len(data) >= trailerLen {
		tail := data[len(data)-len(saveMagic):]
		if string(tail) == string(saveMagic[:]) {
			extraLenBuf := data[len(data)-trailerLen : len(data)-len(saveMagic)]
			extraLen := int(binary.LittleEndian.Uint32(extraLenBuf))
			if extraLen < 0 || extraLen+trailerLen > len(data) {
				return gberr.New(gberr.SaveFormat, "extra-state length exceeds blob size")
			}
			ramEnd := len(data) - trailerLen - extraLen
			c.mapper.LoadRAM(data[:ramEnd])
			c.mapper.LoadExtra(data[ramEnd : ramEnd+extraLen])
			return nil
		}
	}

	c.mapper.LoadRAM(data)
	return nil
}
