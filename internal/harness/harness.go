// Package harness drives a Machine against a test ROM and decides a
// PASS/FAIL/TIMEOUT outcome, the way an automated test-ROM runner would.
// Grounded on the shape of a per-case frame budget (one case per ROM, a
// maximum frame count) but not on pixel-hash/PNG golden-snapshot
// comparison, which solves a different problem (regression-detecting a
// known-good emulator against frame snapshots) than scraping PASS/FAIL/
// TIMEOUT from a ROM's own reported result, with no prior golden image.
package harness

import (
	"bytes"
	"strings"

	"github.com/kestrelcore/gbcore/internal/machine"
)

// Outcome is the result of driving a test ROM to completion or to its
// budget.
type Outcome int

const (
	Timeout Outcome = iota
	Pass
	Fail
)

func (o Outcome) String() string {
	switch o {
	case Pass:
		return "PASS"
	case Fail:
		return "FAIL"
	default:
		return "TIMEOUT"
	}
}

// Config controls how a Run scrapes for a result. PassSubstring and
// FailSubstring are matched against both the accumulated serial output and,
// when TilemapCharset is set, the text scraped from the current background
// tilemap after every frame. At least one of PassSubstring/FailSubstring
// should be set or Run can only ever time out.
type Config struct {
	PassSubstring string
	FailSubstring string

	// MaxFrames bounds how many frames Run drives before giving up with
	// Timeout. Zero means no bound, which is only sensible when the caller
	// has some other way to stop (e.g. a context deadline wrapping Run).
	MaxFrames uint64

	// TilemapCharset, when non-nil, maps a background tilemap tile index to
	// the ASCII byte it represents, enabling the BG-tilemap scrape alongside
	// the serial scrape. Many test ROMs render their result as text on
	// screen instead of (or in addition to) writing it over serial, and the
	// tile-index-to-character mapping is font-specific, so callers supply
	// it rather than this package guessing one.
	TilemapCharset func(tile uint8) byte
}

// Result reports how Run concluded.
type Result struct {
	Outcome      Outcome
	Frames       uint64
	SerialOutput []byte
}

// Run drives m one frame at a time, scraping for PassSubstring/
// FailSubstring after each frame, until one is found or MaxFrames is
// exhausted.
func Run(m *machine.Machine, cfg Config) Result {
	var serial []byte

	for frame := uint64(0); cfg.MaxFrames == 0 || frame < cfg.MaxFrames; frame++ {
		m.RunFrame()
		serial = append(serial, m.TakeSerialOutput()...)

		if outcome, ok := match(cfg, serial, scrapeTilemap(m, cfg.TilemapCharset)); ok {
			return Result{Outcome: outcome, Frames: frame + 1, SerialOutput: serial}
		}
	}

	return Result{Outcome: Timeout, Frames: cfg.MaxFrames, SerialOutput: serial}
}

func match(cfg Config, serial []byte, tilemapText string) (Outcome, bool) {
	if cfg.FailSubstring != "" {
		if bytes.Contains(serial, []byte(cfg.FailSubstring)) || strings.Contains(tilemapText, cfg.FailSubstring) {
			return Fail, true
		}
	}
	if cfg.PassSubstring != "" {
		if bytes.Contains(serial, []byte(cfg.PassSubstring)) || strings.Contains(tilemapText, cfg.PassSubstring) {
			return Pass, true
		}
	}
	return Timeout, false
}

const (
	lcdcAddr      = 0xFF40
	bgMap0        = 0x9800
	bgMap1        = 0x9C00
	tilemapWidth  = 32
	tilemapHeight = 32
)

// scrapeTilemap reads the currently selected 32x32 background tilemap and
// maps each tile index through charset into a byte string, row-major. It
// returns "" when charset is nil.
func scrapeTilemap(m *machine.Machine, charset func(tile uint8) byte) string {
	if charset == nil {
		return ""
	}

	base := uint16(bgMap0)
	if m.Read(lcdcAddr)&0x08 != 0 {
		base = bgMap1
	}

	buf := make([]byte, 0, tilemapWidth*tilemapHeight)
	for i := 0; i < tilemapWidth*tilemapHeight; i++ {
		tile := m.Read(base + uint16(i))
		buf = append(buf, charset(tile))
	}
	return string(buf)
}
