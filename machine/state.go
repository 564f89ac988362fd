package machine

import (
	"fmt"
	"maps"
	"math/big"
	"slices"
	"strings"
)

// State is the label and register bank of a machine.
// Registers absent from the map read as zero.
type State struct {
	Label     Label
	Registers map[Register]*big.Int
}

// NewState creates a state at label with the given register values.
func NewState(label Label, values map[Register]uint64) (state State) {
	state = State{
		Label:     label,
		Registers: make(map[Register]*big.Int, len(values)),
	}

	for reg, value := range values {
		state.Registers[reg] = new(big.Int).SetUint64(value)
	}

	return
}

// Get returns a copy of the value of a register, zero if never set.
func (state State) Get(reg Register) *big.Int {
	value, ok := state.Registers[reg]
	if !ok {
		return new(big.Int)
	}

	return new(big.Int).Set(value)
}

// Set stores a copy of value in a register.
func (state *State) Set(reg Register, value *big.Int) {
	if state.Registers == nil {
		state.Registers = make(map[Register]*big.Int)
	}

	state.Registers[reg] = new(big.Int).Set(value)
}

// Clone returns a deep copy of the state.
func (state State) Clone() (clone State) {
	clone = State{
		Label:     state.Label,
		Registers: make(map[Register]*big.Int, len(state.Registers)),
	}

	for reg, value := range state.Registers {
		clone.Registers[reg] = new(big.Int).Set(value)
	}

	return
}

// Equal returns true if both states have the same label, the same set of
// materialized registers, and the same register values.
func (state State) Equal(other State) bool {
	if state.Label != other.Label || len(state.Registers) != len(other.Registers) {
		return false
	}

	for reg, value := range state.Registers {
		that, ok := other.Registers[reg]
		if !ok || value.Cmp(that) != 0 {
			return false
		}
	}

	return true
}

// String returns the state as 'label: registers', registers in ascending order.
func (state State) String() string {
	regs := slices.Sorted(maps.Keys(state.Registers))

	words := make([]string, 0, len(regs))
	for _, reg := range regs {
		words = append(words, fmt.Sprintf("%v=%v", reg, state.Registers[reg]))
	}

	return fmt.Sprintf("%d: %v", uint64(state.Label), strings.Join(words, " "))
}
