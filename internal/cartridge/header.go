package cartridge

import (
	"strings"
	"unicode"

	"github.com/kestrelcore/gbcore/internal/gberr"
)

const (
	titleAddress          = 0x134
	titleLength           = 16
	cgbFlagAddress        = 0x143
	newLicenseCodeAddress = 0x144
	cartridgeTypeAddress  = 0x147
	romSizeAddress        = 0x148
	ramSizeAddress        = 0x149
	headerChecksumAddress = 0x14D
	globalChecksumAddress = 0x14E

	// headerEnd is the minimum ROM length a header read requires.
	headerEnd = 0x150
)

// CGBSupport classifies the header's 0x143 flag byte.
type CGBSupport int

const (
	// CGBUnsupported means the cartridge predates Color and uses DMG
	// compatibility mode only.
	CGBUnsupported CGBSupport = iota
	// CGBEnhanced means the cartridge runs on DMG or CGB, with extra
	// features unlocked on CGB (value 0x80).
	CGBEnhanced
	// CGBOnly means the cartridge refuses to run outside CGB (value 0xC0).
	CGBOnly
)

// MapperKind names the memory bank controller a header selects.
type MapperKind int

const (
	MapperNone MapperKind = iota
	MapperMBC1
	MapperMBC2
	MapperMBC3
	MapperMBC5
)

// Header is the decoded, validated content of the cartridge's 0x100-0x14F
// region.
type Header struct {
	Title       string
	CGB         CGBSupport
	Mapper      MapperKind
	HasRAM      bool
	HasBattery  bool
	HasRTC      bool
	HasRumble   bool
	ROMBankCnt  int
	RAMBankCnt  int
	HeaderCksum uint8
}

// romSizeBankCount maps the 0x148 byte to a bank count (16KiB each).
func romSizeBankCount(b uint8) (int, bool) {
	if b > 0x08 {
		return 0, false
	}
	return 2 << b, true
}

// ramSizeBankCount maps the 0x149 byte to a count of 8KiB banks.
func ramSizeBankCount(b uint8) (int, bool) {
	switch b {
	case 0x00:
		return 0, true
	case 0x02:
		return 1, true
	case 0x03:
		return 4, true
	case 0x04:
		return 16, true
	case 0x05:
		return 8, true
	default:
		return 0, false
	}
}

// cartridgeTypeInfo describes what a 0x147 byte implies.
type cartridgeTypeInfo struct {
	mapper     MapperKind
	ram        bool
	battery    bool
	rtc        bool
	rumble     bool
	ramIgnored bool // type encodes no RAM size byte use (e.g. MBC2 built-in RAM)
}

var cartridgeTypes = map[uint8]cartridgeTypeInfo{
	0x00: {mapper: MapperNone},
	0x01: {mapper: MapperMBC1},
	0x02: {mapper: MapperMBC1, ram: true},
	0x03: {mapper: MapperMBC1, ram: true, battery: true},
	0x05: {mapper: MapperMBC2, ram: true, ramIgnored: true},
	0x06: {mapper: MapperMBC2, ram: true, battery: true, ramIgnored: true},
	0x08: {mapper: MapperNone, ram: true},
	0x09: {mapper: MapperNone, ram: true, battery: true},
	0x0F: {mapper: MapperMBC3, rtc: true, battery: true},
	0x10: {mapper: MapperMBC3, ram: true, rtc: true, battery: true},
	0x11: {mapper: MapperMBC3},
	0x12: {mapper: MapperMBC3, ram: true},
	0x13: {mapper: MapperMBC3, ram: true, battery: true},
	0x19: {mapper: MapperMBC5},
	0x1A: {mapper: MapperMBC5, ram: true},
	0x1B: {mapper: MapperMBC5, ram: true, battery: true},
	0x1C: {mapper: MapperMBC5, rumble: true},
	0x1D: {mapper: MapperMBC5, ram: true, rumble: true},
	0x1E: {mapper: MapperMBC5, ram: true, battery: true, rumble: true},
}

// ParseHeader validates and decodes a ROM's header. Load calls it and fails
// with its error; LoadSaveData is the package's other fallible entry point.
func ParseHeader(rom []byte) (Header, error) {
	if len(rom) < headerEnd {
		return Header{}, gberr.New(gberr.InvalidHeader, "rom shorter than header region")
	}

	typeByte := rom[cartridgeTypeAddress]
	info, ok := cartridgeTypes[typeByte]
	if !ok {
		return Header{}, gberr.New(gberr.UnsupportedMapper, "unrecognized cartridge type byte")
	}

	romBanks, ok := romSizeBankCount(rom[romSizeAddress])
	if !ok {
		return Header{}, gberr.New(gberr.InvalidHeader, "unrecognized rom size byte")
	}

	ramBanks := 0
	if info.ram && !info.ramIgnored {
		ramBanks, ok = ramSizeBankCount(rom[ramSizeAddress])
		if !ok {
			return Header{}, gberr.New(gberr.InvalidHeader, "unrecognized ram size byte")
		}
	}

	cgb := CGBUnsupported
	switch rom[cgbFlagAddress] {
	case 0x80:
		cgb = CGBEnhanced
	case 0xC0:
		cgb = CGBOnly
	}

	return Header{
		Title:       cleanTitle(rom[titleAddress : titleAddress+titleLength]),
		CGB:         cgb,
		Mapper:      info.mapper,
		HasRAM:      info.ram,
		HasBattery:  info.battery,
		HasRTC:      info.rtc,
		HasRumble:   info.rumble,
		ROMBankCnt:  romBanks,
		RAMBankCnt:  ramBanks,
		HeaderCksum: rom[headerChecksumAddress],
	}, nil
}

func cleanTitle(raw []byte) string {
	runes := make([]rune, 0, len(raw))
	for _, b := range raw {
		r := rune(b)
		switch {
		case r == 0:
			continue
		case !unicode.IsPrint(r):
			r = '?'
		}
		runes = append(runes, r)
	}
	title := strings.TrimSpace(string(runes))
	if title == "" {
		return "(untitled)"
	}
	return title
}
