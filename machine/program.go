package machine

import (
	"iter"
)

// Program is an ordered sequence of instructions, indexed by Label.
type Program []Instruction

// Fetch returns the instruction at label, if the label is in range.
func (prog Program) Fetch(label Label) (in Instruction, ok bool) {
	if label >= Label(len(prog)) {
		return
	}

	return prog[label], true
}

// Instructions iterates over the labels and instructions of the program.
func (prog Program) Instructions() iter.Seq2[Label, Instruction] {
	return func(yield func(label Label, in Instruction) bool) {
		for n, in := range prog {
			if !yield(Label(n), in) {
				return
			}
		}
	}
}

// Registers iterates over every register named by the program, in program order.
// A register used by several instructions is yielded once.
func (prog Program) Registers() iter.Seq[Register] {
	return func(yield func(reg Register) bool) {
		seen := map[Register]bool{}
		for _, in := range prog {
			if in.Op == OP_HALT || seen[in.Register] {
				continue
			}
			seen[in.Register] = true
			if !yield(in.Register) {
				return
			}
		}
	}
}
