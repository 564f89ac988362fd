// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"maps"
	"math/big"
	"os"
	"slices"
	"strings"

	"github.com/ezrec/regmach/asm"
	"github.com/ezrec/regmach/emulator"
	"github.com/ezrec/regmach/godel"
	"github.com/ezrec/regmach/machine"
)

// registerFlags collects '-r REG=VALUE' initial register values.
type registerFlags map[machine.Register]*big.Int

func (rf registerFlags) String() string {
	var words []string
	for reg, value := range rf {
		words = append(words, fmt.Sprintf("%v=%v", reg, value))
	}
	return strings.Join(words, ",")
}

func (rf registerFlags) Set(text string) error {
	for _, item := range strings.Split(text, ",") {
		reg_text, value_text, ok := strings.Cut(item, "=")
		if !ok {
			return &ErrFlag{Value: item, Err: ErrNotPair}
		}
		reg, err := machine.ParseRegister(reg_text)
		if err != nil {
			return err
		}
		value, ok := new(big.Int).SetString(value_text, 0)
		if !ok || value.Sign() < 0 {
			return &ErrFlag{Value: value_text, Err: ErrNotNumber}
		}
		rf[reg] = value
	}

	return nil
}

// defineFlags collects '-D NAME=VALUE' assembler predefines.
type defineFlags map[string]string

func (df defineFlags) String() string {
	var words []string
	for key, value := range df {
		words = append(words, key+"="+value)
	}
	return strings.Join(words, ",")
}

func (df defineFlags) Set(text string) error {
	key, value, ok := strings.Cut(text, "=")
	if !ok {
		return &ErrFlag{Value: text, Err: ErrNotPair}
	}
	df[key] = value
	return nil
}

// report renders the final state, listing every register the program
// names, even those it never touched, along with any others set.
func report(prog machine.Program, state machine.State) string {
	regs := maps.Clone(state.Registers)
	if regs == nil {
		regs = map[machine.Register]*big.Int{}
	}
	for reg := range prog.Registers() {
		if _, ok := regs[reg]; !ok {
			regs[reg] = new(big.Int)
		}
	}

	var out strings.Builder
	fmt.Fprintf(&out, "label: %d\n", uint64(state.Label))
	for _, reg := range slices.Sorted(maps.Keys(regs)) {
		fmt.Fprintf(&out, "%v: %v\n", reg, regs[reg])
	}

	return out.String()
}

// run executes the command line in args, writing results to stdout.
func run(args []string, stdout io.Writer) (err error) {
	var compile string
	var number string
	var label uint64
	var steps int
	var encode bool
	var disassemble bool
	var verbose bool

	registers := registerFlags{}
	defines := defineFlags{}

	flags := flag.NewFlagSet("regmach", flag.ContinueOnError)
	flags.StringVar(&compile, "c", "", ".rm file to assemble")
	flags.StringVar(&number, "g", "", "Gödel number of the program")
	flags.Var(registers, "r", "Initial register values, REG=VALUE[,...]")
	flags.Var(defines, "D", "Assembler predefine, NAME=VALUE")
	flags.Uint64Var(&label, "l", 0, "Initial label")
	flags.IntVar(&steps, "n", 0, "Step limit, 0 for unlimited")
	flags.BoolVar(&encode, "e", false, "Print the Gödel list and number, do not execute")
	flags.BoolVar(&disassemble, "d", false, "Print the disassembled program, do not execute")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")

	err = flags.Parse(args)
	if err != nil {
		return
	}

	if flags.NArg() != 0 {
		err = &ErrFlag{Value: strings.Join(flags.Args(), " "), Err: ErrArguments}
		return
	}

	if len(compile) != 0 && len(number) != 0 {
		err = ErrExclusive
		return
	}

	if len(compile) == 0 && len(number) == 0 {
		err = ErrNotProgram
		return
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.StepLimit = steps

	// Assemble a new instruction stream.
	if len(compile) != 0 {
		var inf *os.File
		inf, err = os.Open(compile)
		if err != nil {
			return
		}
		defer inf.Close()

		assembler := &asm.Assembler{Verbose: verbose}
		for key, value := range emu.Defines() {
			assembler.Predefine(key, value)
		}
		for key, value := range defines {
			assembler.Predefine(key, value)
		}

		emu.Listing, err = assembler.Parse(inf)
		if err != nil {
			err = &ErrInput{Source: compile, Err: err}
			return
		}
	}

	// Decode a program from its number.
	if len(number) != 0 {
		n, ok := new(big.Int).SetString(number, 0)
		if !ok {
			err = &ErrFlag{Value: number, Err: ErrNotNumber}
			return
		}

		var prog machine.Program
		prog, err = godel.DecodeProgramNumber(n)
		if err != nil {
			err = &ErrInput{Source: number, Err: err}
			return
		}

		assembler := &asm.Assembler{Verbose: verbose}
		emu.Listing, err = assembler.Parse(strings.NewReader(asm.Disassemble(prog)))
		if err != nil {
			err = &ErrInput{Source: number, Err: err}
			return
		}
	}

	prog := emu.Listing.Program()

	if disassemble {
		fmt.Fprint(stdout, asm.Disassemble(prog))
	}

	if encode {
		list := godel.EncodeProgram(prog)
		words := make([]string, 0, len(list))
		for _, n := range list {
			words = append(words, n.String())
		}
		fmt.Fprintf(stdout, "[%v]\n", strings.Join(words, ", "))

		var n *big.Int
		n, err = godel.EncodeProgramNumber(prog)
		if err != nil {
			return
		}
		fmt.Fprintln(stdout, n)
	}

	if encode || disassemble {
		return
	}

	initial := machine.State{Label: machine.Label(label)}
	for reg, value := range registers {
		initial.Set(reg, value)
	}

	emu.Reset(initial)
	state, err := emu.Run()
	if err != nil {
		return
	}

	fmt.Fprint(stdout, report(prog, state))

	return
}

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == flag.ErrHelp {
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
