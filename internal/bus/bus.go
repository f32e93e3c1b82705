// Package bus wires the CPU to every peripheral: address decoding, the
// interrupt flag register, OAM-DMA CPU lockout, and per-peripheral cycle
// ticking. The top-byte region lookup table and the general read/write
// shape are grounded on jeebie/bus.go and jeebie/memory/mem.go; CGB WRAM
// banking, HDMA and the KEY1 speed switch are additions jeebie/memory/mem.go
// has no equivalent for.
package bus

import (
	"github.com/kestrelcore/gbcore/internal/apu"
	"github.com/kestrelcore/gbcore/internal/cartridge"
	"github.com/kestrelcore/gbcore/internal/cpu"
	"github.com/kestrelcore/gbcore/internal/dma"
	"github.com/kestrelcore/gbcore/internal/joypad"
	"github.com/kestrelcore/gbcore/internal/ppu"
	"github.com/kestrelcore/gbcore/internal/serial"
	"github.com/kestrelcore/gbcore/internal/timer"
)

type region uint8

const (
	regionROM region = iota
	regionVRAMOrOAM
	regionExtRAM
	regionWRAM
	regionEcho
	regionUnusable
	regionIO
	regionHRAM
)

var regionMap [256]region

func init() {
	for i := 0x00; i <= 0x7F; i++ {
		regionMap[i] = regionROM
	}
	for i := 0x80; i <= 0x9F; i++ {
		regionMap[i] = regionVRAMOrOAM
	}
	for i := 0xA0; i <= 0xBF; i++ {
		regionMap[i] = regionExtRAM
	}
	for i := 0xC0; i <= 0xDF; i++ {
		regionMap[i] = regionWRAM
	}
	for i := 0xE0; i <= 0xFD; i++ {
		regionMap[i] = regionEcho
	}
	regionMap[0xFE] = regionVRAMOrOAM // OAM lives here too; unused tail handled inline
	regionMap[0xFF] = regionIO
}

// IO register addresses not already owned by a peripheral package.
const (
	regP1   = 0xFF00
	regSB   = 0xFF01
	regSC   = 0xFF02
	regDIV  = 0xFF04
	regTIMA = 0xFF05
	regTMA  = 0xFF06
	regTAC  = 0xFF07
	regIF   = 0xFF0F
	regDMA  = 0xFF46
	regKEY1 = 0xFF4D
	regHDMA1 = 0xFF51
	regHDMA2 = 0xFF52
	regHDMA3 = 0xFF53
	regHDMA4 = 0xFF54
	regHDMA5 = 0xFF55
	regSVBK  = 0xFF70
	regIE    = 0xFFFF
)

// Bus owns every peripheral and routes CPU reads/writes to the right one.
type Bus struct {
	CPU *cpu.CPU

	cart   *cartridge.Cartridge
	ppu    *ppu.PPU
	apu    *apu.APU
	timer  *timer.Timer
	serial *serial.Serial
	joypad *joypad.Joypad
	oam    *dma.OAM
	hdma   *dma.HDMA

	wram    [8][0x1000]uint8
	wramBank uint8 // SVBK low 3 bits, CGB only; 0 behaves as bank 1
	hram    [0x7F]uint8

	ie, ifReg uint8

	cgb         bool
	doubleSpeed bool
	speedArmed  bool
}

// New wires a fresh Bus around a loaded cartridge. cgb selects CGB-only
// features (WRAM/VRAM banking, HDMA, double speed, palette RAM).
func New(cart *cartridge.Cartridge, cgb bool) *Bus {
	b := &Bus{
		cart:   cart,
		ppu:    ppu.New(cgb),
		apu:    apu.New(cgb),
		timer:  timer.New(0),
		serial: serial.New(),
		joypad: joypad.New(),
		oam:    &dma.OAM{},
		hdma:   &dma.HDMA{},
		cgb:    cgb,
	}
	b.CPU = cpu.New(b)
	return b
}

// PPU, APU, Joypad, Cartridge expose the peripherals for the machine layer
// (frame/sample pull, save I/O, button edges) without widening Bus's CPU
// facing surface.
func (b *Bus) PPU() *ppu.PPU               { return b.ppu }
func (b *Bus) APU() *apu.APU               { return b.apu }
func (b *Bus) Joypad() *joypad.Joypad      { return b.joypad }
func (b *Bus) Cartridge() *cartridge.Cartridge { return b.cart }
func (b *Bus) Serial() *serial.Serial      { return b.serial }

func (b *Bus) wramBankIndex() int {
	n := b.wramBank & 0x07
	if n == 0 {
		n = 1
	}
	return int(n)
}

func (b *Bus) readWRAM(addr uint16) uint8 {
	if addr < 0xD000 {
		return b.wram[0][addr-0xC000]
	}
	return b.wram[b.wramBankIndex()][addr-0xD000]
}

func (b *Bus) writeWRAM(addr uint16, v uint8) {
	if addr < 0xD000 {
		b.wram[0][addr-0xC000] = v
		return
	}
	b.wram[b.wramBankIndex()][addr-0xD000] = v
}

// Read implements cpu.Bus.
func (b *Bus) Read(addr uint16) uint8 {
	if b.oam.Active() && !(addr >= 0xFF80 && addr <= 0xFFFE) {
		return 0xFF
	}

	switch regionMap[addr>>8] {
	case regionROM, regionExtRAM:
		return b.cart.Read(addr)
	case regionVRAMOrOAM:
		if addr >= 0xFEA0 && addr <= 0xFEFF {
			return 0xFF // unusable
		}
		return b.ppu.ReadCPU(addr)
	case regionWRAM:
		return b.readWRAM(addr)
	case regionEcho:
		return b.readWRAM(addr - 0x2000)
	case regionIO:
		return b.readIO(addr)
	default:
		return 0xFF
	}
}

// Write implements cpu.Bus.
func (b *Bus) Write(addr uint16, v uint8) {
	if b.oam.Active() && !(addr >= 0xFF80 && addr <= 0xFFFE) {
		return
	}

	switch regionMap[addr>>8] {
	case regionROM, regionExtRAM:
		b.cart.Write(addr, v)
	case regionVRAMOrOAM:
		if addr >= 0xFEA0 && addr <= 0xFEFF {
			return
		}
		b.ppu.WriteCPU(addr, v)
	case regionWRAM:
		b.writeWRAM(addr, v)
	case regionEcho:
		b.writeWRAM(addr-0x2000, v)
	case regionIO:
		b.writeIO(addr, v)
	}
}

func (b *Bus) readIO(addr uint16) uint8 {
	switch {
	case addr == regP1:
		return b.joypad.Read() | 0xC0
	case addr == regSB:
		return b.serial.ReadSB()
	case addr == regSC:
		return b.serial.ReadSC()
	case addr == regDIV:
		return b.timer.DIV()
	case addr == regTIMA:
		return b.timer.TIMA()
	case addr == regTMA:
		return b.timer.TMA()
	case addr == regTAC:
		return b.timer.TAC() | 0xF8
	case addr == regIF:
		return b.ifReg | 0xE0
	case addr >= 0xFF10 && addr <= 0xFF3F:
		return b.apu.Read(addr)
	case addr == regKEY1:
		return b.readKEY1()
	case addr == regHDMA5:
		return b.hdma.ReadHDMA5()
	case addr == regSVBK:
		if !b.cgb {
			return 0xFF
		}
		return b.wramBank | 0xF8
	case addr == regIE:
		return b.ie
	case addr >= 0xFF80 && addr <= 0xFFFE:
		return b.hram[addr-0xFF80]
	case addr >= 0xFF40 && addr <= 0xFF4B, addr == 0xFF4F, addr == 0xFF68, addr == 0xFF69, addr == 0xFF6A, addr == 0xFF6B:
		return b.ppu.Read(addr)
	default:
		return 0xFF
	}
}

func (b *Bus) readKEY1() uint8 {
	if !b.cgb {
		return 0xFF
	}
	var v uint8
	if b.doubleSpeed {
		v |= 0x80
	}
	if b.speedArmed {
		v |= 0x01
	}
	return v | 0x7E
}

func (b *Bus) writeIO(addr uint16, v uint8) {
	switch {
	case addr == regP1:
		b.joypad.Write(v)
	case addr == regSB:
		b.serial.WriteSB(v)
	case addr == regSC:
		b.serial.WriteSC(v)
	case addr == regDIV:
		b.timer.WriteDIV()
	case addr == regTIMA:
		b.timer.WriteTIMA(v)
	case addr == regTMA:
		b.timer.WriteTMA(v)
	case addr == regTAC:
		b.timer.WriteTAC(v)
	case addr == regIF:
		b.ifReg = v & 0x1F
	case addr >= 0xFF10 && addr <= 0xFF3F:
		// The timer free-runs independently of this write and always ticks
		// another 4 T-cycles once the CPU's access M-cycle finishes, so the
		// counter the APU should see is the post-tick value, not the one
		// sampled here mid-access.
		b.apu.Write(addr, v, b.timer.InternalCounter()+4)
	case addr == regDMA:
		b.oam.Start(v)
	case addr == regKEY1:
		if b.cgb {
			b.speedArmed = v&0x01 != 0
		}
	case addr == regHDMA1:
		if b.cgb {
			b.hdma.WriteSrcHi(v)
		}
	case addr == regHDMA2:
		if b.cgb {
			b.hdma.WriteSrcLo(v)
		}
	case addr == regHDMA3:
		if b.cgb {
			b.hdma.WriteDstHi(v)
		}
	case addr == regHDMA4:
		if b.cgb {
			b.hdma.WriteDstLo(v)
		}
	case addr == regHDMA5:
		if b.cgb {
			b.hdma.WriteHDMA5(v, b)
		}
	case addr == regSVBK:
		if b.cgb {
			b.wramBank = v & 0x07
		}
	case addr == regIE:
		b.ie = v
	case addr >= 0xFF80 && addr <= 0xFFFE:
		b.hram[addr-0xFF80] = v
	case addr >= 0xFF40 && addr <= 0xFF4B, addr == 0xFF4F, addr == 0xFF68, addr == 0xFF69, addr == 0xFF6A, addr == 0xFF6B:
		b.ppu.Write(addr, v)
	}
}

// DMARead/DMAWrite implement dma.Bus: raw access bypassing the OAM-DMA CPU
// lockout, used by the OAM and HDMA units themselves.
func (b *Bus) DMARead(addr uint16) uint8 {
	switch regionMap[addr>>8] {
	case regionROM, regionExtRAM:
		return b.cart.Read(addr)
	case regionVRAMOrOAM:
		return b.ppu.Read(addr)
	case regionWRAM:
		return b.readWRAM(addr)
	case regionEcho:
		return b.readWRAM(addr - 0x2000)
	case regionIO:
		return b.readIO(addr)
	default:
		return 0xFF
	}
}

func (b *Bus) DMAWrite(addr uint16, v uint8) {
	switch regionMap[addr>>8] {
	case regionROM, regionExtRAM:
		b.cart.Write(addr, v)
	case regionVRAMOrOAM:
		b.ppu.Write(addr, v)
	case regionWRAM:
		b.writeWRAM(addr, v)
	case regionEcho:
		b.writeWRAM(addr-0x2000, v)
	case regionIO:
		b.writeIO(addr, v)
	}
}

// InterruptEnable/InterruptFlag/ClearInterruptFlag implement cpu.Bus.
func (b *Bus) InterruptEnable() uint8         { return b.ie }
func (b *Bus) InterruptFlag() uint8           { return b.ifReg }
func (b *Bus) ClearInterruptFlag(mask uint8)  { b.ifReg &^= mask }

func (b *Bus) requestInterrupt(bit uint8) { b.ifReg |= bit }

const (
	intVBlank = 1 << 0
	intSTAT   = 1 << 1
	intTimer  = 1 << 2
	intSerial = 1 << 3
	intJoypad = 1 << 4
)

// TryCGBSpeedSwitch implements cpu.Bus, servicing the STOP opcode's CGB
// double-speed handshake.
func (b *Bus) TryCGBSpeedSwitch() bool {
	if !b.cgb || !b.speedArmed {
		return false
	}
	b.doubleSpeed = !b.doubleSpeed
	b.speedArmed = false
	return true
}

// OAMBugIncDec implements cpu.Bus, forwarding a 16-bit INC/DEC opcode's
// resulting address to the PPU's OAM corruption bug.
func (b *Bus) OAMBugIncDec(addr uint16) {
	b.ppu.TriggerOAMBugIncDec(addr)
}

// Press/Release forward joypad edge detection into the Joypad interrupt.
func (b *Bus) Press(key joypad.Key) {
	if b.joypad.Press(key) {
		b.requestInterrupt(intJoypad)
	}
}

func (b *Bus) Release(key joypad.Key) { b.joypad.Release(key) }

// Tick implements cpu.Bus: advances every peripheral by cycles CPU
// T-cycles, in the fixed order cartridge, timer, OAM-DMA, PPU, HDMA (CGB),
// APU, serial, translating each peripheral's own interrupt condition into
// the shared IF register. In CGB double-speed mode, OAM DMA runs at the
// full (doubled) CPU rate, while the timer/serial/PPU/APU run at half that
// -- real hardware keeps those tied to real time rather than to CPU clock
// ticks.
func (b *Bus) Tick(cycles int) {
	peripheralCycles := cycles
	if b.doubleSpeed {
		peripheralCycles = cycles / 2
	}

	b.cart.Tick(peripheralCycles)

	if b.timer.Tick(peripheralCycles) {
		b.requestInterrupt(intTimer)
	}

	for i := 0; i < cycles/4; i++ {
		b.oam.Tick(b)
	}

	vblank, stat, enteredHBlank := b.ppu.Tick(peripheralCycles)
	if vblank {
		b.requestInterrupt(intVBlank)
	}
	if stat {
		b.requestInterrupt(intSTAT)
	}
	if enteredHBlank && b.cgb {
		b.hdma.OnHBlank(b)
	}

	b.apu.Tick(peripheralCycles)

	if b.serial.Tick(peripheralCycles) {
		b.requestInterrupt(intSerial)
	}
}
