package machine

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstruction_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("inc r0 3", MakeIncrement(0, 3).String())
	assert.Equal("dec r12 2 1", MakeDecrement(12, 2, 1).String())
	assert.Equal("halt", MakeHalt().String())
	assert.Equal("Op(9)", Op(9).String())
}

func TestInstruction_Equal(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(MakeHalt(), Instruction{})
	assert.NotEqual(MakeIncrement(0, 0), MakeHalt())
	assert.NotEqual(MakeDecrement(0, 1, 2), MakeDecrement(0, 2, 1))
}

func TestProgram_Fetch(t *testing.T) {
	assert := assert.New(t)

	prog := Program{MakeIncrement(1, 1), MakeHalt()}

	in, ok := prog.Fetch(0)
	assert.True(ok)
	assert.Equal(MakeIncrement(1, 1), in)

	_, ok = prog.Fetch(2)
	assert.False(ok)

	_, ok = prog.Fetch(^Label(0))
	assert.False(ok)
}

func TestProgram_Instructions(t *testing.T) {
	assert := assert.New(t)

	prog := Program{MakeIncrement(1, 1), MakeHalt(), MakeDecrement(0, 0, 1)}

	var labels []Label
	for label, in := range prog.Instructions() {
		labels = append(labels, label)
		if in.Op == OP_HALT {
			break
		}
	}

	assert.Equal([]Label{0, 1}, labels)
}

func TestProgram_Registers(t *testing.T) {
	assert := assert.New(t)

	prog := Program{
		MakeDecrement(3, 1, 2),
		MakeHalt(),
		MakeIncrement(0, 0),
		MakeIncrement(3, 0),
	}

	assert.Equal([]Register{3, 0}, slices.Collect(prog.Registers()))
}

func TestParseRegister(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text string
		reg  Register
		ok   bool
	}){
		{"r0", 0, true},
		{"7", 7, true},
		{"r0x10", 16, true},
		{"r18446744073709551615", Register(^uint64(0)), true},
		{"r18446744073709551616", 0, false},
		{"rx", 0, false},
		{"", 0, false},
		{"r-1", 0, false},
	}

	for _, entry := range table {
		reg, err := ParseRegister(entry.text)
		if entry.ok {
			assert.NoError(err, entry.text)
			assert.Equal(entry.reg, reg, entry.text)
		} else {
			assert.Equal(ErrParseRegister(entry.text), err, entry.text)
		}
	}
}
