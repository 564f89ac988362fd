package machine

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"math/big"
)

var bigOne = big.NewInt(1)

var _machine_defines = map[string]string{
	"REGISTER_MAX": fmt.Sprintf("%v", uint64(^Register(0))),
	"LABEL_MAX":    fmt.Sprintf("%v", uint64(^Label(0))),
}

// Defines for the machine
func Defines() iter.Seq2[string, string] {
	return maps.All(_machine_defines)
}

// Machine is a steppable register machine.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Program Program // Program being executed.
	Ticks   int     // Instructions executed since reset.

	state State
}

// NewMachine creates a machine for a program, starting at a copy of initial.
func NewMachine(prog Program, initial State) (m *Machine) {
	m = &Machine{
		Program: prog,
	}

	m.Reset(initial)

	return
}

// Reset the machine to a copy of initial, and zero the tick counter.
func (m *Machine) Reset(initial State) {
	if m.Verbose {
		log.Printf("machine: reset %v", initial)
	}

	m.state = initial.Clone()
	m.Ticks = 0
}

// State returns a copy of the current machine state.
func (m *Machine) State() State {
	return m.state.Clone()
}

// Label returns the current label.
func (m *Machine) Label() Label {
	return m.state.Label
}

// register returns the register's value, materializing a zero if absent.
func (m *Machine) register(reg Register) *big.Int {
	value, ok := m.state.Registers[reg]
	if !ok {
		value = new(big.Int)
		m.state.Registers[reg] = value
	}

	return value
}

// Tick executes a single instruction.
// done is set when the machine is at a halt, or past the end of the program;
// the state is left unchanged in that case.
func (m *Machine) Tick() (done bool) {
	in, ok := m.Program.Fetch(m.state.Label)
	if !ok {
		if m.Verbose {
			log.Printf("machine: %d: end of program", m.state.Label)
		}
		return true
	}

	if m.Verbose {
		log.Printf("machine: %d: %v", m.state.Label, in)
	}

	switch in.Op {
	case OP_INC:
		value := m.register(in.Register)
		value.Add(value, bigOne)
		m.state.Label = in.Next
	case OP_DEC:
		value := m.register(in.Register)
		if value.Sign() == 0 {
			m.state.Label = in.Zero
		} else {
			value.Sub(value, bigOne)
			m.state.Label = in.Next
		}
	default:
		return true
	}

	m.Ticks++

	return false
}

// Run executes a program from a copy of initial until it halts or runs past
// the end of the program, and returns the final state.
// initial is never modified. Run does not return if the program never halts.
func Run(prog Program, initial State) State {
	m := NewMachine(prog, initial)

	for !m.Tick() {
	}

	return m.state
}
