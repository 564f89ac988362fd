// Package machine implements the register machine of the regmach system.
//
// The machine has an unbounded bank of registers holding arbitrary precision
// non-negative integers, and a program of three instruction kinds: increment
// a register, decrement-or-branch on a register, and halt. Every label is an
// index into the program. A label past the end of the program stops
// execution, exactly as a halt does.
//
// Execution is not guaranteed to terminate. Hosts that require a bound must
// count steps themselves, either with a Machine or with the emulator package.
package machine
