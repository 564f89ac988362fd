// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package asm implements the assembler for register machine programs.
//
// Each line holds at most one instruction, preceded by any number of
// 'name:' labels, and followed by an optional ';' comment.
//
//	inc REG [TARGET]        ; increment REG, jump to TARGET
//	dec REG [NEXT [ZERO]]   ; decrement REG and jump to NEXT, or ZERO if REG is 0
//	halt
//	.word N                 ; instruction of the Gödel list element N
//
// Registers are written as 'rN' or N. Targets are labels or numbers; an
// omitted target, or '-', is the following instruction.
//
// The directives '.equ NAME VALUE' and '.macro NAME ARGS...' / '.endm' are
// supported, and '$(...)' is evaluated at assembly time as a Starlark
// integer expression over the integer equates.
package asm

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"math/big"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/regmach/godel"
	"github.com/ezrec/regmach/machine"
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a single pass macro assembler for register machine programs.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Lines   []Line // List of assembled lines.

	predefine map[string]string        // Predefines
	Label     map[string]machine.Label // Map of jump labels to instruction labels.
	Equate    map[string]string        // Map of equates.
	Macro     map[string](*Macro)      // Map of macros.

	expansions int // Count of macro expansions, for local labels.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func valueOf(word string) (value uint64, err error) {
	value, err = strconv.ParseUint(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
	}

	return
}

// bigValueOf returns the arbitrary precision value of a simple word.
func bigValueOf(word string) (value *big.Int, err error) {
	value, ok := new(big.Int).SetString(word, 0)
	if !ok || value.Sign() < 0 {
		err = ErrParseNumber(word)
		value = nil
	}

	return
}

// registerOf returns the register of a word, 'rN' or 'N'.
func registerOf(word string) (reg machine.Register, err error) {
	reg, err = machine.ParseRegister(word)
	if err != nil {
		err = ErrRegisterInvalid
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value *big.Int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var equ *big.Int
		equ, err = bigValueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			err = nil
			continue
		}
		pred[key] = starlark.MakeBigInt(equ)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = st_int.BigInt()
	if value.Sign() < 0 {
		err = ErrParseExpression(expr)
		value = nil
		return
	}
	return
}

// expandParens replaces each $(...) of a line by its value.
func (asm *Assembler) expandParens(line string) (out string, err error) {
	for {
		start := strings.Index(line, "$(")
		if start < 0 {
			break
		}

		// Find the matching close paren.
		depth := 0
		end := -1
		for n := start + 1; n < len(line) && end < 0; n++ {
			switch line[n] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					end = n
				}
			}
		}
		if end < 0 {
			err = ErrParseExpression(line[start+2:])
			return
		}

		var value *big.Int
		value, err = asm.parenEval(line[start+2 : end])
		if err != nil {
			return
		}

		out += line[:start] + value.String()
		line = line[end+1:]
	}

	out += line

	return
}

// parseLine parses a single line as an instruction.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	line, err = asm.expandParens(line)
	if err != nil {
		return
	}

	words = strings.Fields(strings.ReplaceAll(line, ",", " "))

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		if len(label) == 0 {
			err = ErrLabelInvalid
			return
		}
		if _, num_err := valueOf(label); num_err == nil {
			err = ErrLabelInvalid
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]machine.Label, 16)
		}
		asm.Label[label] = asm.currentLabel()
		if asm.Verbose {
			log.Printf("asm: %v: %v", label, asm.currentLabel())
		}
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = args[n]
		}
		defer func() { asm.Equate = old_equate }()

		asm.expansions++
		local := fmt.Sprintf("%v_%v_", name, asm.expansions)

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			line = strings.ReplaceAll(line, "@", local)
			words, err = asm.parseLine(line, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}

			err = asm.parseWords(words, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}
		}

		words = nil
		return
	}

	return
}

// currentLabel gets the label of the next assembled instruction.
func (asm *Assembler) currentLabel() machine.Label {
	return machine.Label(len(asm.Lines))
}

// Parse parses an input stream into a Listing of instructions.
func (asm *Assembler) Parse(input io.Reader) (listing *Listing, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Lines = asm.Lines[:0]
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.expansions = 0
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		words := strings.Fields(line)

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	// Final linking of jump labels.
	for n := range asm.Lines {
		op := &asm.Lines[n]

		targets := [2](*machine.Label){&op.Instruction.Next, &op.Instruction.Zero}
		for index, label := range op.links {
			if len(label) == 0 {
				continue
			}
			target, ok := asm.Label[label]
			if !ok {
				lineno = op.LineNo
				line = strings.Join(op.Words, " ")
				err = ErrLabelMissing(label)
				return
			}
			*targets[index] = target
		}
		op.links = nil
	}

	listing = &Listing{
		Lines: make([]Line, len(asm.Lines)),
	}
	copy(listing.Lines, asm.Lines)

	return
}

// target resolves a jump target word.
// Numbers are used as-is, '-' is the following instruction, and anything
// else is a label to be linked.
func (asm *Assembler) target(word string) (label machine.Label, link string, err error) {
	if word == "-" {
		label = asm.currentLabel() + 1
		return
	}

	value, num_err := valueOf(word)
	if num_err == nil {
		label = machine.Label(value)
		return
	}

	if strings.ContainsAny(word, ":;$()") {
		err = ErrTargetInvalid
		return
	}

	link = word

	return
}

// targets resolves up to count jump target words, defaulting to the
// following instruction.
func (asm *Assembler) targets(words []string, count int) (labels []machine.Label, links []string, err error) {
	if len(words) > count {
		err = ErrOpcodeExtraArgs
		return
	}

	for n := range count {
		word := "-"
		if n < len(words) {
			word = words[n]
		}
		var label machine.Label
		var link string
		label, link, err = asm.target(word)
		if err != nil {
			return
		}
		labels = append(labels, label)
		links = append(links, link)
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	var in machine.Instruction
	var links []string

	switch words[0] {
	case "halt":
		if len(words) > 1 {
			err = ErrOpcodeExtraArgs
			return
		}
		in = machine.MakeHalt()
	case "inc", "dec":
		if len(words) < 2 {
			err = ErrOpcodeValueMissing
			return
		}
		var reg machine.Register
		reg, err = registerOf(words[1])
		if err != nil {
			return
		}
		var labels []machine.Label
		if words[0] == "inc" {
			labels, links, err = asm.targets(words[2:], 1)
			if err != nil {
				return
			}
			in = machine.MakeIncrement(reg, labels[0])
		} else {
			labels, links, err = asm.targets(words[2:], 2)
			if err != nil {
				return
			}
			in = machine.MakeDecrement(reg, labels[0], labels[1])
		}
	case ".word":
		if len(words) < 2 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(words) > 2 {
			err = ErrOpcodeExtraArgs
			return
		}
		var value *big.Int
		value, err = bigValueOf(words[1])
		if err != nil {
			return
		}
		in, err = godel.DecodeInstruction(value)
		if err != nil {
			return
		}
	default:
		err = ErrInstructionInvalid
		return
	}

	if asm.Verbose {
		log.Printf("asm: %v: %v", asm.currentLabel(), in)
	}

	asm.Lines = append(asm.Lines, Line{
		LineNo:      lineno,
		Label:       asm.currentLabel(),
		Words:       words,
		Instruction: in,
		links:       links,
	})

	return
}
