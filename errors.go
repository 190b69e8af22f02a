package main

import (
	"errors"
	"fmt"

	"github.com/jcorbin/gobf/internal/fileinput"
	"github.com/jcorbin/gobf/internal/runeio"
)

var (
	ErrSourceUnavailable  = errors.New("source unavailable")
	ErrUnmatchedBracket   = errors.New("unmatched bracket")
	ErrUnimplementedInput = errors.New("input not implemented")
	ErrUnknownSymbol      = errors.New("unknown symbol")
	errNoProgram          = errors.New("no program loaded")
)

// SourceError is returned when program text cannot be opened or read.
type SourceError struct {
	Name string
	Err  error
}

func (se SourceError) Error() string {
	return fmt.Sprintf("%v: %v: %v", ErrSourceUnavailable, se.Name, se.Err)
}

func (se SourceError) Unwrap() error        { return se.Err }
func (se SourceError) Is(target error) bool { return target == ErrSourceUnavailable }

// UnmatchedBracketError is returned when building jump tables for a program
// that has a [ without a matching ], or vice versa.
type UnmatchedBracketError struct {
	Index uint
	Op    Op
}

func (ue UnmatchedBracketError) Error() string {
	return fmt.Sprintf("unmatched %v at pc=%v", ue.Op, ue.Index)
}

func (ue UnmatchedBracketError) Is(target error) bool { return target == ErrUnmatchedBracket }

// InputError is returned when running a program reaches an input instruction.
type InputError struct {
	Index uint
}

func (ie InputError) Error() string {
	return fmt.Sprintf("%v at pc=%v", ErrUnimplementedInput, ie.Index)
}

func (ie InputError) Unwrap() error { return ErrUnimplementedInput }

// UnknownSymbolError is returned by strict lexing on the first character that
// is neither an instruction nor whitespace.
type UnknownSymbolError struct {
	fileinput.Location
	Rune rune
}

func (ue UnknownSymbolError) Error() string {
	if name := runeio.Name(ue.Rune); name != "" {
		return fmt.Sprintf("%v: %v %v", ue.Location, ErrUnknownSymbol, name)
	}
	return fmt.Sprintf("%v: %v %q", ue.Location, ErrUnknownSymbol, ue.Rune)
}

func (ue UnknownSymbolError) Unwrap() error { return ErrUnknownSymbol }
