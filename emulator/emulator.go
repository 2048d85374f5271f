// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator hosts a nibble CPU, loading a program image into it
// and driving it to completion.
package emulator

import (
	"errors"
	"log"

	"github.com/ezrec/nibble/cpu"
)

// Emulator state. CPU + program image.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program image.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Reset clears the CPU and loads the program image into memory.
// Registers may be seeded after Reset, before the first Tick.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Reset()

	err = emu.Program.LoadInto(emu.Cpu)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %d segments", len(emu.Program.Segments))
	}

	return
}

// Ticks returns the total instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() int {
	return int(emu.Cpu.Pc)
}

// Code returns the memory word at the program counter.
func (emu *Emulator) Code() (code cpu.Code, err error) {
	return emu.Cpu.FetchCode()
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalt) {
		err = nil
		done = true
		return
	}

	return
}

// Run ticks the emulator until the program halts or faults.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		log.Printf("emulator: %d ticks\n%v", emu.Ticks(), emu.Cpu)
	}

	return
}
