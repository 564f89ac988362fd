package asm

import (
	"github.com/ezrec/regmach/machine"
)

// Line is an assembled source line, holding exactly one instruction.
type Line struct {
	LineNo      int                 // Source line number.
	Label       machine.Label       // Label of the instruction.
	Words       []string            // Source words, after expansion.
	Instruction machine.Instruction // Assembled instruction.

	links []string // Symbolic targets to link, in Next, Zero order.
}

// Listing is the result of assembly.
type Listing struct {
	Lines []Line
}

// Program returns the program of the listing.
func (listing *Listing) Program() (prog machine.Program) {
	prog = make(machine.Program, 0, len(listing.Lines))
	for _, line := range listing.Lines {
		prog = append(prog, line.Instruction)
	}

	return
}

// Debug returns the source line of a label, or nil if the label is past the
// end of the listing.
func (listing *Listing) Debug(label machine.Label) *Line {
	if label >= machine.Label(len(listing.Lines)) {
		return nil
	}

	return &listing.Lines[label]
}
