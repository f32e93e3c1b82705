// Package machine is the top-level composition root: it owns the Bus (and
// through it, every peripheral), exposes Step/RunFrame, and applies the
// post-boot register preset and battery-save load/save external code is
// expected to drive. Grounded on jeebie/core.go's Emulator for the
// step/run-frame/debugger-state shape, generalized since internal/bus.Tick
// (not a separate per-peripheral Tick call from this package) now owns
// peripheral sequencing.
package machine

import (
	"github.com/kestrelcore/gbcore/internal/bus"
	"github.com/kestrelcore/gbcore/internal/cartridge"
	"github.com/kestrelcore/gbcore/internal/cpu"
	"github.com/kestrelcore/gbcore/internal/joypad"
	"github.com/kestrelcore/gbcore/internal/ppu"
)

// RunMode mirrors jeebie/debug's runner states: normal execution or paused.
// Generalized here to drop single-step and DebuggerStepFrame since Step and
// RunFrame already give the caller that granularity directly.
type RunMode int

const (
	ModeRunning RunMode = iota
	ModePaused
)

// Machine is a fully wired Game Boy: a cartridge and every peripheral behind
// a Bus, driven one CPU instruction (Step) or one frame (RunFrame) at a
// time.
type Machine struct {
	bus  *bus.Bus
	cart *cartridge.Cartridge
	cgb  bool

	mode             RunMode
	instructionCount uint64
	frameCount       uint64
}

// New constructs a Machine from a ROM image. cgbPreferred requests CGB mode
// for cartridges that support but don't require it (Header.CGBEnhanced);
// a CGBOnly cartridge always runs in CGB mode, and a CGBUnsupported one
// always runs in DMG mode, regardless of cgbPreferred.
func New(rom []byte, cgbPreferred bool) (*Machine, error) {
	cart, err := cartridge.Load(rom)
	if err != nil {
		return nil, err
	}

	cgb := cgbPreferred
	switch cart.Header.CGB {
	case cartridge.CGBOnly:
		cgb = true
	case cartridge.CGBUnsupported:
		cgb = false
	}

	m := &Machine{
		bus:  bus.New(cart, cgb),
		cart: cart,
		cgb:  cgb,
	}
	m.ApplyPostBootPreset()
	return m, nil
}

// ApplyPostBootPreset writes the well-known post-boot-ROM register and I/O
// state directly, standing in for the boot ROM this core does not execute.
// Values are the commonly documented DMG/CGB post-boot register contents;
// no example in the pack hardcodes these directly (jeebie's MMU/GPU
// seed individual registers at construction instead), so the CPU-register
// half is applied here explicitly rather than scattered across peripheral
// constructors.
func (m *Machine) ApplyPostBootPreset() {
	if m.cgb {
		m.bus.CPU.SetState(0x11, 0x80, 0x00, 0x00, 0xFF, 0x56, 0x00, 0x0D, 0xFFFE, 0x0100)
	} else {
		m.bus.CPU.SetState(0x01, 0xB0, 0x00, 0x13, 0x00, 0xD8, 0x01, 0x4D, 0xFFFE, 0x0100)
	}
}

// Step executes exactly one CPU instruction (ticking every peripheral
// through it) and returns the number of CPU cycles it took.
func (m *Machine) Step() int {
	cycles := m.bus.CPU.Step()
	m.instructionCount++
	return cycles
}

// RunFrame steps until the PPU signals a completed frame, then clears the
// flag. Matches spec's run_frame = step in a loop until PPU signals
// frame_ready.
func (m *Machine) RunFrame() {
	for !m.bus.PPU().FrameReady() {
		m.Step()
	}
	m.bus.PPU().ConsumeFrame()
	m.frameCount++
}

// CGB reports whether this Machine is running in Color mode.
func (m *Machine) CGB() bool { return m.cgb }

// Cartridge exposes the loaded cartridge, for header inspection and
// battery-save I/O.
func (m *Machine) Cartridge() *cartridge.Cartridge { return m.cart }

// CPU exposes the CPU directly, for frontends and debuggers that display
// register state.
func (m *Machine) CPU() *cpu.CPU { return m.bus.CPU }

// CurrentFrame drains the PPU's completed 160x144 ARGB8888 framebuffer.
func (m *Machine) CurrentFrame() [ppu.Width * ppu.Height]uint32 {
	return m.bus.PPU().ConsumeFrame()
}

// TakeSamples drains interleaved stereo float32 audio samples accumulated
// since the last call.
func (m *Machine) TakeSamples() []float32 {
	return m.bus.APU().TakeSamples()
}

// TakeSerialOutput drains bytes completed over an internal-clock serial
// transfer, in order. Test-ROM harnesses scrape this for pass/fail text.
func (m *Machine) TakeSerialOutput() []byte {
	return m.bus.Serial().Output()
}

// Press/Release forward a button edge into the Joypad interrupt machinery.
func (m *Machine) Press(key joypad.Key)   { m.bus.Press(key) }
func (m *Machine) Release(key joypad.Key) { m.bus.Release(key) }

// Read and Write expose the full memory-mapped address space directly,
// for tooling built on top of a Machine (debuggers, test harnesses) that
// needs to inspect or poke registers and memory without going through the
// CPU. Tick advances every peripheral the given number of T-cycles with no
// CPU instruction attached, for the same callers.
func (m *Machine) Read(addr uint16) uint8     { return m.bus.Read(addr) }
func (m *Machine) Write(addr uint16, v uint8) { m.bus.Write(addr, v) }
func (m *Machine) Tick(cycles int)            { m.bus.Tick(cycles) }

// SaveData returns a battery-backed save blob suitable for persisting to
// external storage, or nil if the cartridge has no battery.
func (m *Machine) SaveData() []byte {
	if !m.cart.HasBatterySave() {
		return nil
	}
	return m.cart.SaveData()
}

// LoadSaveData restores a previously captured save blob. A nil/empty blob
// is accepted as "no prior save".
func (m *Machine) LoadSaveData(data []byte) error {
	return m.cart.LoadSaveData(data)
}

// InstructionCount and FrameCount expose simple run counters, useful for
// harnesses enforcing a cycle/frame budget.
func (m *Machine) InstructionCount() uint64 { return m.instructionCount }
func (m *Machine) FrameCount() uint64       { return m.frameCount }

// SetMode switches between normal execution and paused; RunFrame/Step keep
// working regardless (callers decide whether to invoke them), this just
// tracks caller-facing state the way jeebie/debug's runner state did.
func (m *Machine) SetMode(mode RunMode) { m.mode = mode }
func (m *Machine) Mode() RunMode        { return m.mode }
