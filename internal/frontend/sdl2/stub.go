//go:build !sdl2

// Package sdl2 stub for default builds: SDL2 requires its development
// libraries to be installed, so it is opt-in via `-tags sdl2`. Mirrors
// jeebie/backend/sdl2_stub.go's approach of a same-shaped no-op type rather
// than letting the import fail the default build.
package sdl2

import (
	"fmt"

	"github.com/kestrelcore/gbcore/internal/machine"
)

type Backend struct{}

func New() *Backend { return &Backend{} }

func (b *Backend) Init(title string) error {
	return fmt.Errorf("sdl2 backend not available: rebuild with -tags sdl2 and SDL2 development libraries installed")
}

func (b *Backend) Run(m *machine.Machine) error {
	return fmt.Errorf("sdl2 backend not available: rebuild with -tags sdl2 and SDL2 development libraries installed")
}

func (b *Backend) Close() {}
