// Command mos6502 loads a 32KB ROM image at $8000 and runs it on the cpu
// package's core, driving a bubbletea dashboard that auto-advances one
// instruction per --delay until BRK or --max is reached.
package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/urfave/cli.v2"

	"mos6502/cpu"
	"mos6502/mem"
)

const (
	romStart = 0x8000
	romSize  = 0x8000 // 32KB, $8000-$FFFF

	defaultDelayMS = 150
	defaultMax     = 10000
)

func main() {
	app := &cli.App{
		Name:      "mos6502",
		Usage:     "run a 32KB 6502 ROM image under an instruction-level emulator",
		ArgsUsage: "<rom.bin>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "offset",
				Usage: "memory address the dashboard's page view starts at",
				Value: romStart,
			},
			&cli.IntFlag{
				Name:  "delay",
				Usage: "milliseconds between auto-advanced instructions; 0 steps only on keypress",
				Value: defaultDelayMS,
			},
			&cli.IntFlag{
				Name:  "max",
				Usage: "instruction budget before the dashboard stops itself; 0 is unbounded",
				Value: defaultMax,
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Args().Len() < 1 {
		cli.ShowAppHelp(c)
		return cli.Exit("a ROM path is required", 1)
	}
	romPath := c.Args().Get(0)

	data, err := os.ReadFile(romPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to read %q: %v", romPath, err), 1)
	}
	if len(data) != romSize {
		return cli.Exit(
			fmt.Sprintf("ROM must be exactly %d bytes (32KB), got %d bytes", romSize, len(data)),
			1,
		)
	}

	bus := mem.NewFlatBus()
	bus.Load(romStart, data)

	core := cpu.New(bus)
	core.Reset()

	// Consume the reset latency before handing control to the dashboard,
	// exactly as a real power-on sequence would.
	for core.Cycles > 0 {
		core.Step()
	}

	delay := time.Duration(c.Int("delay")) * time.Millisecond
	max := uint32(c.Int("max"))
	if err := cpu.Run(core, uint16(c.Int("offset")), delay, max); err != nil {
		return cli.Exit(fmt.Sprintf("dashboard exited: %v", err), 1)
	}
	return nil
}
