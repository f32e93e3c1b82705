//go:build sdl2

// Package sdl2 is an optional SDL2 video+audio frontend, built only with
// -tags sdl2 (SDL2 development libraries must be installed). Grounded on
// jeebie/backend/sdl2/sdl2.go: a streaming RGBA texture for the framebuffer
// and a queued SDL2 audio device for samples, adapted to a Machine's
// ARGB8888 framebuffer and float32 interleaved-stereo sample queue instead
// of the RGBA8888 framebuffer and mono int16 samples that file streamed.
package sdl2

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/kestrelcore/gbcore/internal/joypad"
	"github.com/kestrelcore/gbcore/internal/machine"
	"github.com/kestrelcore/gbcore/internal/ppu"
)

const (
	pixelScale  = 3
	sampleRate  = 48000
	audioTarget = 4096 // bytes of queued audio to keep buffered
)

// Backend drives a Machine's display and audio through SDL2 until the
// window is closed or Escape is pressed.
type Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	audioDevice sdl.AudioDeviceID

	pixelBuffer []byte
	running     bool
}

func New() *Backend {
	return &Backend{}
}

// Init creates the window, renderer, streaming texture, and (best-effort)
// the audio device.
func (b *Backend) Init(title string) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_AUDIO); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %w", err)
	}

	window, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		ppu.Width*pixelScale, ppu.Height*pixelScale,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to create window: %w", err)
	}
	b.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	b.renderer = renderer

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING,
		ppu.Width, ppu.Height,
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create texture: %w", err)
	}
	b.texture = texture

	b.pixelBuffer = make([]byte, ppu.Width*ppu.Height*4)

	if err := b.initAudio(); err != nil {
		slog.Warn("SDL2 audio init failed, continuing without sound", "error", err)
	}

	b.running = true
	return nil
}

func (b *Backend) initAudio() error {
	spec := &sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_F32SYS,
		Channels: 2,
		Samples:  1024,
	}
	obtained := &sdl.AudioSpec{}
	device, err := sdl.OpenAudioDevice("", false, spec, obtained, 0)
	if err != nil {
		return err
	}
	b.audioDevice = device
	sdl.PauseAudioDevice(b.audioDevice, false)
	return nil
}

// Run drives m at the display's pace: one frame per Update, draining audio
// samples and input events each iteration, until the window is closed.
func (b *Backend) Run(m *machine.Machine) error {
	defer b.Close()

	for b.running {
		b.pollEvents(m)
		m.RunFrame()
		if err := b.present(m); err != nil {
			return err
		}
		b.queueAudio(m)
	}
	return nil
}

func (b *Backend) pollEvents(m *machine.Machine) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			b.running = false
		case *sdl.KeyboardEvent:
			key, ok := keyFromScancode(e.Keysym.Scancode)
			if !ok {
				if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE && e.State == sdl.PRESSED {
					b.running = false
				}
				continue
			}
			if e.State == sdl.PRESSED {
				m.Press(key)
			} else {
				m.Release(key)
			}
		}
	}
}

func keyFromScancode(code sdl.Scancode) (joypad.Key, bool) {
	switch code {
	case sdl.SCANCODE_RIGHT:
		return joypad.Right, true
	case sdl.SCANCODE_LEFT:
		return joypad.Left, true
	case sdl.SCANCODE_UP:
		return joypad.Up, true
	case sdl.SCANCODE_DOWN:
		return joypad.Down, true
	case sdl.SCANCODE_Z:
		return joypad.A, true
	case sdl.SCANCODE_X:
		return joypad.B, true
	case sdl.SCANCODE_RSHIFT, sdl.SCANCODE_LSHIFT:
		return joypad.Select, true
	case sdl.SCANCODE_RETURN:
		return joypad.Start, true
	}
	return 0, false
}

func (b *Backend) present(m *machine.Machine) error {
	frame := m.CurrentFrame()
	for i, pixel := range frame {
		b.pixelBuffer[i*4+0] = byte(pixel)
		b.pixelBuffer[i*4+1] = byte(pixel >> 8)
		b.pixelBuffer[i*4+2] = byte(pixel >> 16)
		b.pixelBuffer[i*4+3] = byte(pixel >> 24)
	}

	if err := b.texture.Update(nil, b.pixelBuffer, ppu.Width*4); err != nil {
		return fmt.Errorf("failed to update texture: %w", err)
	}

	b.renderer.Clear()
	b.renderer.Copy(b.texture, nil, nil)
	b.renderer.Present()
	return nil
}

func (b *Backend) queueAudio(m *machine.Machine) {
	if b.audioDevice == 0 {
		return
	}

	if sdl.GetQueuedAudioSize(b.audioDevice) >= audioTarget {
		return
	}

	samples := m.TakeSamples()
	if len(samples) == 0 {
		return
	}

	bytes := (*[1 << 30]byte)(unsafe.Pointer(&samples[0]))[: len(samples)*4 : len(samples)*4]
	sdl.QueueAudio(b.audioDevice, bytes)
}

func (b *Backend) Close() {
	if b.audioDevice != 0 {
		sdl.CloseAudioDevice(b.audioDevice)
	}
	if b.texture != nil {
		b.texture.Destroy()
	}
	if b.renderer != nil {
		b.renderer.Destroy()
	}
	if b.window != nil {
		b.window.Destroy()
	}
	sdl.Quit()
}
