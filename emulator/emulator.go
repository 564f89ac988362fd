// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator hosts the register machine for command line use.
package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/regmach/asm"
	"github.com/ezrec/regmach/godel"
	"github.com/ezrec/regmach/internal"
	"github.com/ezrec/regmach/machine"
)

var _emulator_defines = map[string]string{
	"WORD_HALT": fmt.Sprintf("%v", godel.EncodeInstruction(machine.MakeHalt())),
}

// Emulator state. Machine + program listing + step budget.
type Emulator struct {
	Verbose bool // If set, enables verbose logging.

	*machine.Machine              // Reference to the machine.
	Listing          *asm.Listing // Reference to the currently running program listing.

	StepLimit int // Maximum instructions per run, 0 for unlimited.
}

// NewEmulator creates a new emulator, with an empty program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Machine: machine.NewMachine(nil, machine.State{}),
		Listing: &asm.Listing{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		machine.Defines(),
	)
}

// Reset the emulator to run the listing from a copy of initial.
func (emu *Emulator) Reset(initial machine.State) {
	emu.Machine.Verbose = emu.Verbose
	emu.Machine.Program = emu.Listing.Program()
	emu.Machine.Reset(initial)
}

// LineNo returns the current line number for the executing instruction,
// or 0 if the machine is past the end of the listing.
func (emu *Emulator) LineNo() int {
	line := emu.Listing.Debug(emu.Machine.Label())
	if line == nil {
		return 0
	}

	return line.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set machine verbosity
	emu.Machine.Verbose = emu.Verbose

	lineno := emu.LineNo()

	if emu.StepLimit > 0 && emu.Machine.Ticks >= emu.StepLimit {
		if in, ok := emu.Machine.Program.Fetch(emu.Machine.Label()); ok && in.Op != machine.OP_HALT {
			err = &ErrRuntime{LineNo: lineno, Err: ErrStepLimit}
			return
		}
	}

	done = emu.Machine.Tick()

	return
}

// Run ticks the emulator until the program stops, or the step limit is reached.
func (emu *Emulator) Run() (state machine.State, err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			if emu.Verbose {
				log.Printf("emulator: %v", err)
			}
			return
		}
	}

	state = emu.Machine.State()

	if emu.Verbose {
		log.Printf("emulator: %v ticks, %v", emu.Machine.Ticks, state)
	}

	return
}
