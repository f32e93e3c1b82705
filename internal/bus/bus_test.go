package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelcore/gbcore/internal/cartridge"
	"github.com/kestrelcore/gbcore/internal/joypad"
)

// newTestCartridge builds a minimal valid ROM-only (MapperNone) cartridge:
// two 16KB banks, no RAM, no CGB flag.
func newTestCartridge(t *testing.T) *cartridge.Cartridge {
	t.Helper()
	rom := make([]byte, 0x8000)
	for i := range rom {
		rom[i] = uint8(i)
	}
	// cartridge type 0x00 (ROM only), ROM size byte 0x00 (2 banks, 32KB).
	rom[0x147] = 0x00
	rom[0x148] = 0x00
	c, err := cartridge.Load(rom)
	require.NoError(t, err)
	return c
}

func newTestBus(t *testing.T, cgb bool) *Bus {
	return New(newTestCartridge(t), cgb)
}

func TestReadWriteRoutesROMToCartridge(t *testing.T) {
	b := newTestBus(t, false)
	assert.Equal(t, uint8(0x10), b.Read(0x0010))
}

func TestReadWriteRoutesWRAMAndEchoesBack(t *testing.T) {
	b := newTestBus(t, false)
	b.Write(0xC010, 0x42)
	assert.Equal(t, uint8(0x42), b.Read(0xC010))
	// Echo RAM at 0xE000-0xFDFF mirrors 0xC000-0xDDFF.
	assert.Equal(t, uint8(0x42), b.Read(0xE010))

	b.Write(0xE020, 0x99)
	assert.Equal(t, uint8(0x99), b.Read(0xC020))
}

func TestUnusableOAMTailReadsFF(t *testing.T) {
	b := newTestBus(t, false)
	assert.Equal(t, uint8(0xFF), b.Read(0xFEA0))
	assert.Equal(t, uint8(0xFF), b.Read(0xFEFF))
}

func TestHRAMReadWrite(t *testing.T) {
	b := newTestBus(t, false)
	b.Write(0xFF90, 0x7A)
	assert.Equal(t, uint8(0x7A), b.Read(0xFF90))
}

func TestInterruptFlagReadIsOredWithUpperBits(t *testing.T) {
	b := newTestBus(t, false)
	b.Write(0xFF0F, 0x01)
	assert.Equal(t, uint8(0xE1), b.Read(0xFF0F))
}

func TestInterruptEnableRoundTrips(t *testing.T) {
	b := newTestBus(t, false)
	b.Write(0xFFFF, 0x1F)
	assert.Equal(t, uint8(0x1F), b.Read(0xFFFF))
	assert.Equal(t, uint8(0x1F), b.InterruptEnable())
}

func TestDMGWRAMIsNotBankSwitched(t *testing.T) {
	b := newTestBus(t, false)
	b.Write(0xD000, 0x11)
	b.Write(0xFF70, 0x02) // SVBK ignored on DMG
	assert.Equal(t, uint8(0x11), b.Read(0xD000))
	assert.Equal(t, uint8(0xFF), b.Read(0xFF70))
}

func TestCGBWRAMBankSwitching(t *testing.T) {
	b := newTestBus(t, true)

	b.Write(0xFF70, 0x01)
	b.Write(0xD000, 0xAA)

	b.Write(0xFF70, 0x02)
	b.Write(0xD000, 0xBB)
	assert.Equal(t, uint8(0xBB), b.Read(0xD000))

	b.Write(0xFF70, 0x01)
	assert.Equal(t, uint8(0xAA), b.Read(0xD000))

	// Bank 0 selected behaves as bank 1.
	b.Write(0xFF70, 0x00)
	assert.Equal(t, uint8(0xAA), b.Read(0xD000))

	// Fixed bank 0xC000-0xCFFF is never affected by SVBK.
	b.Write(0xC500, 0xCC)
	b.Write(0xFF70, 0x07)
	assert.Equal(t, uint8(0xCC), b.Read(0xC500))
}

func TestOAMDMALocksOutNonHRAMCPUAccess(t *testing.T) {
	b := newTestBus(t, false)
	b.Write(0xC000, 0x55)

	b.Write(0xFF46, 0xC0) // source page 0xC000, triggers OAM DMA
	require.True(t, b.oam.Active())

	assert.Equal(t, uint8(0xFF), b.Read(0xC000), "non-HRAM CPU reads must return 0xFF while OAM DMA is active")
	b.Write(0xC000, 0x66)
	assert.Equal(t, uint8(0xFF), b.Read(0xC000), "non-HRAM CPU writes must be dropped while OAM DMA is active")

	b.Write(0xFF90, 0x77)
	assert.Equal(t, uint8(0x77), b.Read(0xFF90), "HRAM stays reachable during OAM DMA")

	// Run the DMA to completion: one M-cycle startup delay, then 160 bytes
	// at one per M-cycle.
	for i := 0; i < 161; i++ {
		b.Tick(4)
	}
	require.False(t, b.oam.Active())
	assert.Equal(t, uint8(0x55), b.Read(0xC000))
}

func TestTimerOverflowRequestsTimerInterrupt(t *testing.T) {
	b := newTestBus(t, false)
	b.Write(0xFF06, 0x00) // TMA
	b.Write(0xFF05, 0xFF) // TIMA one tick from overflow
	b.Write(0xFF07, 0x05) // enable, fastest clock select

	var gotInterrupt bool
	for i := 0; i < 2000 && !gotInterrupt; i++ {
		b.Tick(4)
		if b.InterruptFlag()&intTimer != 0 {
			gotInterrupt = true
		}
	}
	assert.True(t, gotInterrupt, "TIMA overflow should request the timer interrupt")
}

func TestVBlankInterruptAggregatesFromPPU(t *testing.T) {
	b := newTestBus(t, false)
	var gotVBlank bool
	for i := 0; i < 200000 && !gotVBlank; i++ {
		b.Tick(4)
		if b.InterruptFlag()&intVBlank != 0 {
			gotVBlank = true
		}
	}
	assert.True(t, gotVBlank, "entering VBlank should request the VBlank interrupt")
}

func TestClearInterruptFlagClearsOnlyRequestedBits(t *testing.T) {
	b := newTestBus(t, false)
	b.requestInterrupt(intTimer)
	b.requestInterrupt(intSerial)

	b.ClearInterruptFlag(intTimer)
	assert.Equal(t, uint8(intSerial), b.InterruptFlag())
}

func TestJoypadPressRequestsInterruptOnEdge(t *testing.T) {
	b := newTestBus(t, false)
	b.Write(0xFF00, 0xEF) // select the button-keys line

	b.Press(joypad.A)
	assert.NotEqual(t, uint8(0), b.InterruptFlag()&intJoypad)
}

func TestKEY1SpeedSwitchOnlyOnCGB(t *testing.T) {
	dmg := newTestBus(t, false)
	dmg.Write(0xFF4D, 0x01)
	assert.False(t, dmg.TryCGBSpeedSwitch())
	assert.Equal(t, uint8(0xFF), dmg.Read(0xFF4D))

	cgb := newTestBus(t, true)
	cgb.Write(0xFF4D, 0x01)
	assert.Equal(t, uint8(0x7F), cgb.Read(0xFF4D))

	assert.True(t, cgb.TryCGBSpeedSwitch())
	assert.True(t, cgb.doubleSpeed)
	assert.Equal(t, uint8(0xFE), cgb.Read(0xFF4D))

	// Switch isn't armed again until KEY1 bit 0 is rewritten.
	assert.False(t, cgb.TryCGBSpeedSwitch())
}

func TestHDMAIsCGBOnly(t *testing.T) {
	dmg := newTestBus(t, false)
	dmg.Write(0xFF55, 0x00)
	assert.Equal(t, uint8(0xFF), dmg.Read(0xFF55))
}

func TestGeneralPurposeHDMACopiesImmediately(t *testing.T) {
	b := newTestBus(t, true)

	for i := 0; i < 16; i++ {
		b.Write(0xC000+uint16(i), uint8(0x20+i))
	}

	b.Write(0xFF51, 0xC0) // source high
	b.Write(0xFF52, 0x00) // source low
	b.Write(0xFF53, 0x00) // dest high (within VRAM, 0x8000 | ...)
	b.Write(0xFF54, 0x00) // dest low
	b.Write(0xFF55, 0x00) // general-purpose, length = (0+1)*16 = 16 bytes

	assert.Equal(t, uint8(0xFF), b.Read(0xFF55), "general-purpose HDMA completes immediately")
	for i := 0; i < 16; i++ {
		assert.Equal(t, uint8(0x20+i), b.ppu.Read(0x8000+uint16(i)))
	}
}
