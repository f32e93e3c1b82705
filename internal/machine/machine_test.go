package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestROM builds a minimal valid, all-NOP, battery-backed MBC1 cartridge
// image: two 16KB banks, 8KB RAM. An all-zero body means the CPU just
// executes NOPs forever, which keeps RunFrame/Step tests deterministic
// regardless of how the opcode table behaves on arbitrary bytes.
func newTestROM(cgbFlag uint8) []byte {
	rom := make([]byte, 0x8000)
	rom[0x143] = cgbFlag
	rom[0x147] = 0x03 // MBC1+RAM+BATTERY
	rom[0x148] = 0x00 // 2 ROM banks
	rom[0x149] = 0x02 // 1 RAM bank (8KB)
	return rom
}

func TestNewAppliesDMGPostBootPreset(t *testing.T) {
	m, err := New(newTestROM(0x00), false)
	require.NoError(t, err)

	assert.False(t, m.CGB())
	assert.Equal(t, uint16(0x0100), m.bus.CPU.PC())
	assert.Equal(t, uint16(0xFFFE), m.bus.CPU.SP())
	assert.Equal(t, uint8(0x01), m.bus.CPU.A())
}

func TestNewAppliesCGBPostBootPresetForCGBOnlyCartridge(t *testing.T) {
	m, err := New(newTestROM(0xC0), false) // CGBOnly, cgbPreferred=false
	require.NoError(t, err)

	assert.True(t, m.CGB(), "a CGBOnly cartridge must run in CGB mode regardless of cgbPreferred")
	assert.Equal(t, uint8(0x11), m.bus.CPU.A())
}

func TestNewHonorsCGBPreferredForEnhancedCartridges(t *testing.T) {
	rom := newTestROM(0x80) // CGBEnhanced

	dmg, err := New(rom, false)
	require.NoError(t, err)
	assert.False(t, dmg.CGB())

	cgb, err := New(rom, true)
	require.NoError(t, err)
	assert.True(t, cgb.CGB())
}

func TestStepAdvancesPCAndInstructionCount(t *testing.T) {
	m, err := New(newTestROM(0x00), false)
	require.NoError(t, err)

	startPC := m.bus.CPU.PC()
	cycles := m.Step()

	assert.Greater(t, cycles, 0)
	assert.Equal(t, uint64(1), m.InstructionCount())
	assert.NotEqual(t, startPC, m.bus.CPU.PC())
}

func TestRunFrameProducesAFrameAndClearsReadyFlag(t *testing.T) {
	m, err := New(newTestROM(0x00), false)
	require.NoError(t, err)

	m.RunFrame()

	assert.Equal(t, uint64(1), m.FrameCount())
	assert.False(t, m.bus.PPU().FrameReady(), "RunFrame must clear frame_ready after draining it")

	frame := m.CurrentFrame()
	assert.Len(t, frame, 160*144)
}

func TestSaveDataRoundTripsThroughLoadSaveData(t *testing.T) {
	m, err := New(newTestROM(0x00), false)
	require.NoError(t, err)

	m.Press(0) // exercise Press/Release without asserting on joypad state here

	data := m.SaveData()
	assert.NotNil(t, data, "battery-backed cartridge must produce a save blob")

	m2, err := New(newTestROM(0x00), false)
	require.NoError(t, err)
	require.NoError(t, m2.LoadSaveData(data))
}

func TestSaveDataIsNilWithoutBattery(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x147] = 0x00 // ROM only, no battery
	rom[0x148] = 0x00

	m, err := New(rom, false)
	require.NoError(t, err)
	assert.Nil(t, m.SaveData())
}

func TestTakeSerialOutputDrainsCompletedBytes(t *testing.T) {
	m, err := New(newTestROM(0x00), false)
	require.NoError(t, err)

	// Request an internal-clock transfer of one byte via SB/SC.
	m.bus.Write(0xFF01, 'P')
	m.bus.Write(0xFF02, 0x81)

	for i := 0; i < 2000; i++ {
		m.bus.Tick(4)
	}

	out := m.TakeSerialOutput()
	require.Len(t, out, 1)
	assert.Equal(t, byte('P'), out[0])
}
