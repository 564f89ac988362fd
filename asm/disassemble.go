package asm

import (
	"fmt"
	"strings"

	"github.com/ezrec/regmach/machine"
)

// Disassemble renders a program as assembly text that assembles back to the
// same program. Jump targets inside the program are given 'LN' labels.
func Disassemble(prog machine.Program) string {
	targeted := map[machine.Label]bool{}
	for _, in := range prog {
		switch in.Op {
		case machine.OP_INC:
			targeted[in.Next] = true
		case machine.OP_DEC:
			targeted[in.Next] = true
			targeted[in.Zero] = true
		}
	}

	name := func(label machine.Label) string {
		if label < machine.Label(len(prog)) {
			return fmt.Sprintf("L%d", uint64(label))
		}
		return fmt.Sprintf("%d", uint64(label))
	}

	var out strings.Builder
	for label, in := range prog.Instructions() {
		if targeted[label] {
			out.WriteString(name(label) + ":")
		}
		out.WriteString("\t")

		switch in.Op {
		case machine.OP_INC:
			fmt.Fprintf(&out, "%v %v %v", in.Op, in.Register, name(in.Next))
		case machine.OP_DEC:
			fmt.Fprintf(&out, "%v %v %v %v", in.Op, in.Register, name(in.Next), name(in.Zero))
		default:
			out.WriteString(in.Op.String())
		}
		out.WriteString("\n")
	}

	return out.String()
}
