package main

import (
	"errors"

	"github.com/ezrec/regmach/translate"
)

var f = translate.From

var (
	ErrArguments  = errors.New(f("unknown arguments"))
	ErrExclusive  = errors.New(f("-c and -g are exclusive"))
	ErrNotNumber  = errors.New(f("not a natural number"))
	ErrNotPair    = errors.New(f("not NAME=VALUE"))
	ErrNotProgram = errors.New(f("no program"))
)

// ErrFlag indicates a malformed flag value.
type ErrFlag struct {
	Value string
	Err   error
}

func (err *ErrFlag) Error() string {
	return f("'%v' %v", err.Value, err.Err)
}

func (err *ErrFlag) Unwrap() error {
	return err.Err
}

// ErrInput indicates which program source failed.
type ErrInput struct {
	Source string
	Err    error
}

func (err *ErrInput) Error() string {
	return f("%v: %v", err.Source, err.Err)
}

func (err *ErrInput) Unwrap() error {
	return err.Err
}
