package machine

import (
	"fmt"
	"strconv"
	"strings"
)

// Register is a register identifier.
type Register uint64

// String returns the assembly name of the register.
func (r Register) String() string {
	return fmt.Sprintf("r%d", uint64(r))
}

// ParseRegister parses a register name, 'rN' or 'N'.
func ParseRegister(text string) (reg Register, err error) {
	value, err := strconv.ParseUint(strings.TrimPrefix(text, "r"), 0, 64)
	if err != nil {
		err = ErrParseRegister(text)
		return
	}

	reg = Register(value)

	return
}

// Label is an index into a Program, used as a jump target.
type Label uint64

// Op is the kind of an instruction.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_HALT = Op(0) // halt
	OP_INC  = Op(1) // inc
	OP_DEC  = Op(2) // dec
)

// Instruction is a single register machine instruction.
//
// For OP_INC, Next is the jump target. For OP_DEC, Next is taken when the
// register was nonzero and Zero when it was zero. OP_HALT uses no fields.
type Instruction struct {
	Op       Op
	Register Register
	Next     Label
	Zero     Label
}

// MakeIncrement creates an instruction that increments reg and jumps to next.
func MakeIncrement(reg Register, next Label) Instruction {
	return Instruction{Op: OP_INC, Register: reg, Next: next}
}

// MakeDecrement creates an instruction that decrements reg and jumps to next,
// or, if reg is zero, jumps to zero.
func MakeDecrement(reg Register, next, zero Label) Instruction {
	return Instruction{Op: OP_DEC, Register: reg, Next: next, Zero: zero}
}

// MakeHalt creates a halt instruction.
func MakeHalt() Instruction {
	return Instruction{Op: OP_HALT}
}

// String returns the assembly language representation of this instruction.
func (in Instruction) String() (out string) {
	switch in.Op {
	case OP_INC:
		out = fmt.Sprintf("%v %v %d", in.Op, in.Register, uint64(in.Next))
	case OP_DEC:
		out = fmt.Sprintf("%v %v %d %d", in.Op, in.Register, uint64(in.Next), uint64(in.Zero))
	default:
		out = in.Op.String()
	}

	return
}
