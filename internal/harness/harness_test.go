package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelcore/gbcore/internal/machine"
)

// newTestMachine builds an all-NOP, ROM-only cartridge so Step/RunFrame are
// deterministic: PC just walks NOPs forever.
func newTestMachine(t *testing.T) *machine.Machine {
	t.Helper()
	rom := make([]byte, 0x8000)
	rom[0x147] = 0x00 // ROM only
	rom[0x148] = 0x00
	m, err := machine.New(rom, false)
	require.NoError(t, err)
	return m
}

// seedSerialByte requests an internal-clock transfer of one byte, matching
// the real SB/SC handshake a test ROM would perform itself.
func seedSerialByte(m *machine.Machine, b byte) {
	m.Write(0xFF01, b)
	m.Write(0xFF02, 0x81)
}

func TestRunDetectsPassViaSerialOutput(t *testing.T) {
	m := newTestMachine(t)
	seedSerialByte(m, 'P')

	result := Run(m, Config{PassSubstring: "P", MaxFrames: 5})

	assert.Equal(t, Pass, result.Outcome)
	assert.Equal(t, uint64(1), result.Frames)
	assert.Contains(t, string(result.SerialOutput), "P")
}

func TestRunDetectsFailViaSerialOutput(t *testing.T) {
	m := newTestMachine(t)
	seedSerialByte(m, 'F')

	result := Run(m, Config{FailSubstring: "F", MaxFrames: 5})

	assert.Equal(t, Fail, result.Outcome)
	assert.Equal(t, uint64(1), result.Frames)
}

func TestRunTimesOutWithoutMatch(t *testing.T) {
	m := newTestMachine(t)

	result := Run(m, Config{PassSubstring: "unreachable", MaxFrames: 2})

	assert.Equal(t, Timeout, result.Outcome)
	assert.Equal(t, uint64(2), result.Frames)
}

func TestMatchPrefersFailOverPassWhenBothPresent(t *testing.T) {
	cfg := Config{PassSubstring: "OK", FailSubstring: "ERR"}
	outcome, ok := match(cfg, []byte("OK then ERR"), "")

	require.True(t, ok)
	assert.Equal(t, Fail, outcome)
}

func identityCharset(tile uint8) byte { return tile }

func TestScrapeTilemapReadsMap9800WhenLCDCBit3Clear(t *testing.T) {
	m := newTestMachine(t)
	m.Write(0xFF40, 0x91) // LCDC: LCD+BG on, bit 3 clear -> map at 0x9800
	word := []byte("PASSED")
	for i, c := range word {
		m.Write(0x9800+uint16(i), c)
	}

	text := scrapeTilemap(m, identityCharset)

	assert.Equal(t, "PASSED", text[:len(word)])
}

func TestScrapeTilemapReadsMap9C00WhenLCDCBit3Set(t *testing.T) {
	m := newTestMachine(t)
	m.Write(0xFF40, 0x99) // LCDC bit 3 set -> map at 0x9C00
	word := []byte("FAILED")
	for i, c := range word {
		m.Write(0x9C00+uint16(i), c)
	}

	text := scrapeTilemap(m, identityCharset)

	assert.Equal(t, "FAILED", text[:len(word)])
}

func TestScrapeTilemapReturnsEmptyWithoutCharset(t *testing.T) {
	m := newTestMachine(t)
	assert.Equal(t, "", scrapeTilemap(m, nil))
}

func TestRunDetectsPassViaTilemapScrape(t *testing.T) {
	m := newTestMachine(t)
	m.Write(0xFF40, 0x91)
	for i, c := range []byte("PASSED") {
		m.Write(0x9800+uint16(i), c)
	}

	result := Run(m, Config{
		PassSubstring:  "PASSED",
		MaxFrames:      3,
		TilemapCharset: identityCharset,
	})

	assert.Equal(t, Pass, result.Outcome)
	assert.Equal(t, uint64(1), result.Frames)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "PASS", Pass.String())
	assert.Equal(t, "FAIL", Fail.String())
	assert.Equal(t, "TIMEOUT", Timeout.String())
}
