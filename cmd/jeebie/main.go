package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/kestrelcore/gbcore/internal/frontend/sdl2"
	"github.com/kestrelcore/gbcore/internal/frontend/terminal"
	"github.com/kestrelcore/gbcore/internal/harness"
	"github.com/kestrelcore/gbcore/internal/machine"
)

func main() {
	app := cli.NewApp()
	app.Name = "jeebie"
	app.Description = "A cycle-approximate Game Boy / Game Boy Color emulator core"
	app.Usage = "jeebie [options] <ROM file>"
	app.Version = "2.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.BoolFlag{
			Name:  "cgb",
			Usage: "Prefer CGB mode for cartridges that support but don't require it",
		},
		cli.StringFlag{
			Name:  "save",
			Usage: "Path to a battery-save file, loaded on start and written back on exit",
		},
		cli.StringFlag{
			Name:  "backend",
			Usage: "Interactive display backend: terminal or sdl2",
			Value: "terminal",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run the emulator without a display, for a fixed number of frames",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode",
		},
		cli.StringFlag{
			Name:  "pass",
			Usage: "Enable harness mode: substring in serial/tilemap output that means PASS",
		},
		cli.StringFlag{
			Name:  "fail",
			Usage: "Harness mode: substring in serial/tilemap output that means FAIL",
		},
		cli.IntFlag{
			Name:  "max-frames",
			Usage: "Harness mode: frame budget before giving up with TIMEOUT",
			Value: 1000,
		},
	}
	app.Action = runEmulator

	if err := app.Run(os.Args); err != nil {
		slog.Error("jeebie exited with an error", "error", err)
		os.Exit(1)
	}
}

func runEmulator(c *cli.Context) (err error) {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
	}

	rom, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("failed to read ROM: %w", err)
	}

	m, err := machine.New(rom, c.Bool("cgb"))
	if err != nil {
		return fmt.Errorf("failed to load cartridge: %w", err)
	}

	savePath := c.String("save")
	if savePath != "" {
		if err := loadSave(m, savePath); err != nil {
			return err
		}
		defer func() {
			if saveErr := persistSave(m, savePath); saveErr != nil {
				slog.Error("failed to persist save data", "path", savePath, "error", saveErr)
				if err == nil {
					err = saveErr
				}
			}
		}()
	}

	slog.Info("cartridge loaded", "rom", romPath, "title", m.Cartridge().Header.Title, "cgb", m.CGB())

	switch {
	case c.String("pass") != "" || c.String("fail") != "":
		return runHarness(c, m)
	case c.Bool("headless"):
		return runHeadless(c, m)
	default:
		return runInteractive(c, m)
	}
}

func loadSave(m *machine.Machine, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read save file: %w", err)
	}
	if err := m.LoadSaveData(data); err != nil {
		return fmt.Errorf("failed to load save data: %w", err)
	}
	slog.Info("save data loaded", "path", path)
	return nil
}

func persistSave(m *machine.Machine, path string) error {
	data := m.SaveData()
	if data == nil {
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	slog.Info("save data written", "path", path)
	return nil
}

func runHarness(c *cli.Context, m *machine.Machine) error {
	cfg := harness.Config{
		PassSubstring: c.String("pass"),
		FailSubstring: c.String("fail"),
		MaxFrames:     uint64(c.Int("max-frames")),
	}

	result := harness.Run(m, cfg)
	slog.Info("harness finished", "outcome", result.Outcome, "frames", result.Frames)
	fmt.Println(result.Outcome)

	if result.Outcome != harness.Pass {
		return fmt.Errorf("test ROM result: %s", result.Outcome)
	}
	return nil
}

func runHeadless(c *cli.Context, m *machine.Machine) error {
	frames := c.Int("frames")
	if frames <= 0 {
		return errors.New("headless mode requires --frames with a positive value")
	}

	for i := 0; i < frames; i++ {
		m.RunFrame()
		if (i+1)%100 == 0 {
			slog.Info("frame progress", "completed", i+1, "total", frames)
		}
	}

	slog.Info("headless run complete", "frames", frames, "instructions", m.InstructionCount())
	return nil
}

func runInteractive(c *cli.Context, m *machine.Machine) error {
	switch c.String("backend") {
	case "sdl2":
		be := sdl2.New()
		if err := be.Init(fmt.Sprintf("jeebie - %s", m.Cartridge().Header.Title)); err != nil {
			return err
		}
		return be.Run(m)
	default:
		r, err := terminal.New(m)
		if err != nil {
			return err
		}
		return r.Run()
	}
}
