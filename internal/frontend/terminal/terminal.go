// Package terminal renders a Machine's framebuffer to a character terminal
// via tcell. Grounded on main.go's TerminalRenderer and the richer
// jeebie/render.TerminalRenderer (split game/registers/log panels), adapted
// to draw a Machine's ARGB8888 pixels directly instead of mapping through
// four fixed DMG shade characters, so CGB palette colors render too.
package terminal

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/kestrelcore/gbcore/internal/joypad"
	"github.com/kestrelcore/gbcore/internal/machine"
	"github.com/kestrelcore/gbcore/internal/ppu"
)

const (
	scaleX = 2 // terminal characters are taller than wide; double the columns
	scaleY = 1

	frameTime = time.Second / 60

	gameAreaWidth = ppu.Width * scaleX

	registerPanelWidth = 24
	registerHeight     = 8
)

// Renderer drives a Machine at 60Hz and draws its framebuffer plus a small
// CPU register/status panel into a terminal, reading keyboard input into
// the Machine's joypad.
type Renderer struct {
	screen  tcell.Screen
	machine *machine.Machine
	running bool
}

func New(m *machine.Machine) (*Renderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}

	return &Renderer{
		screen:  screen,
		machine: m,
		running: true,
	}, nil
}

// Run drives the Machine one frame per tick until Escape/Ctrl-C or a
// SIGINT/SIGTERM is received.
func (r *Renderer) Run() error {
	defer func() {
		slog.Info("terminal renderer stopping")
		r.screen.Fini()
	}()

	r.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	r.screen.Clear()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go r.handleInput()

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	for r.running {
		select {
		case <-ticker.C:
			r.machine.RunFrame()
			r.render()
			r.screen.Show()
		case <-signals:
			r.running = false
			slog.Info("received signal to stop")
			return nil
		}
	}

	return nil
}

func (r *Renderer) handleInput() {
	for r.running {
		ev := r.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if key, ok := keyFromEvent(ev); ok {
				r.machine.Press(key)
				go func() {
					time.Sleep(50 * time.Millisecond)
					r.machine.Release(key)
				}()
				continue
			}
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				r.running = false
				return
			}
		case *tcell.EventResize:
			r.screen.Sync()
		}
	}
}

func keyFromEvent(ev *tcell.EventKey) (joypad.Key, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return joypad.Start, true
	case tcell.KeyRight:
		return joypad.Right, true
	case tcell.KeyLeft:
		return joypad.Left, true
	case tcell.KeyUp:
		return joypad.Up, true
	case tcell.KeyDown:
		return joypad.Down, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a':
			return joypad.A, true
		case 's':
			return joypad.B, true
		case 'q':
			return joypad.Select, true
		}
	}
	return 0, false
}

func (r *Renderer) render() {
	r.screen.Clear()
	r.drawGame()
	r.drawRegisters()
}

func (r *Renderer) drawGame() {
	frame := r.machine.CurrentFrame()

	for y := 0; y < ppu.Height; y++ {
		for x := 0; x < ppu.Width; x++ {
			pixel := frame[y*ppu.Width+x]
			col := tcell.NewRGBColor(int32(pixel>>16&0xFF), int32(pixel>>8&0xFF), int32(pixel&0xFF))
			style := tcell.StyleDefault.Foreground(col)

			screenY := y * scaleY
			screenX := x * scaleX
			for sx := 0; sx < scaleX; sx++ {
				r.screen.SetContent(screenX+sx, screenY, '█', nil, style)
			}
		}
	}
}

func (r *Renderer) drawRegisters() {
	cpu := r.machine.CPU()
	startX := gameAreaWidth + 2
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)

	lines := []string{
		fmt.Sprintf("A:  0x%02X F: 0x%02X", cpu.A(), cpu.F()),
		fmt.Sprintf("B:  0x%02X C: 0x%02X", cpu.B(), cpu.C()),
		fmt.Sprintf("D:  0x%02X E: 0x%02X", cpu.D(), cpu.E()),
		fmt.Sprintf("H:  0x%02X L: 0x%02X", cpu.H(), cpu.L()),
		fmt.Sprintf("SP: 0x%04X", cpu.SP()),
		fmt.Sprintf("PC: 0x%04X", cpu.PC()),
		fmt.Sprintf("IME: %v", cpu.IME()),
		fmt.Sprintf("Frame: %d", r.machine.FrameCount()),
	}

	for i, line := range lines {
		if i >= registerHeight {
			break
		}
		for x, ch := range line {
			r.screen.SetContent(startX+x, i, ch, nil, style)
		}
	}
}
