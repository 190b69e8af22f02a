package main

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/jcorbin/gobf/internal/fileinput"
)

// Op is one machine instruction; it has no operand.
type Op byte

const (
	opNone Op = iota // not an instruction; zero value in opTable

	OpRight  // >   move the data pointer right
	OpLeft   // <   move the data pointer left
	OpInc    // +   increment the current cell
	OpDec    // -   decrement the current cell
	OpOutput // .   output the current cell
	OpInput  // ,   input into the current cell
	OpLoop   // [   jump past the matching ] if the current cell is zero
	OpEnd    // ]   jump back to the matching [ if the current cell is non-zero

	opMax
)

var opSymbols = [opMax]byte{0, '>', '<', '+', '-', '.', ',', '[', ']'}

var opNames = [opMax]string{
	"none",
	"right",
	"left",
	"inc",
	"dec",
	"output",
	"input",
	"loop",
	"end",
}

var opTable [256]Op

func init() {
	for op := opNone + 1; op < opMax; op++ {
		opTable[opSymbols[op]] = op
	}
}

// OpOf returns the instruction denoted by the given character, and true, or
// false if it is not an instruction character.
func OpOf(r rune) (Op, bool) {
	if r < 0 || r > 0xff {
		return opNone, false
	}
	op := opTable[r]
	return op, op != opNone
}

// Symbol returns the source character for op.
func (op Op) Symbol() byte {
	if op < opMax {
		return opSymbols[op]
	}
	return 0
}

// Name returns a mnemonic for op, as used in traces and dumps.
func (op Op) Name() string {
	if op < opMax {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", byte(op))
}

func (op Op) String() string {
	if sym := op.Symbol(); sym != 0 {
		return string(rune(sym))
	}
	return op.Name()
}

// Program is a parsed sequence of instructions.
type Program []Op

// String renders the program back into canonical source text.
func (prog Program) String() string {
	var sb strings.Builder
	sb.Grow(len(prog))
	for _, op := range prog {
		sb.WriteByte(op.Symbol())
	}
	return sb.String()
}

// Lex returns the instructions found in src, in order, silently dropping
// every other character.
func Lex(src string) Program {
	prog := make(Program, 0, len(src))
	for i := 0; i < len(src); i++ {
		// instruction characters are all ASCII, so never part of a multi-byte
		// utf8 sequence
		if op := opTable[src[i]]; op != opNone {
			prog = append(prog, op)
		}
	}
	return prog
}

// LexMode selects how Parse treats characters that are not instructions.
type LexMode int

const (
	// Lenient lexing drops any non-instruction character.
	Lenient LexMode = iota

	// Strict lexing only allows whitespace between instructions; any other
	// character fails with an UnknownSymbolError.
	Strict
)

func (mode LexMode) String() string {
	switch mode {
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	}
	return fmt.Sprintf("LexMode(%d)", int(mode))
}

// Parse reads a program from r until EOF. Any read error is returned as a
// SourceError; under Strict mode, the first non-instruction, non-whitespace
// character is returned as an UnknownSymbolError.
func Parse(r io.Reader, mode LexMode) (Program, error) {
	var prog Program
	in := fileinput.Input{Queue: []io.Reader{r}}
	for {
		c, _, err := in.ReadRune()
		if err == io.EOF {
			return prog, nil
		} else if err != nil {
			return nil, SourceError{fileinput.NameOf(r), err}
		}
		if op, ok := OpOf(c); ok {
			prog = append(prog, op)
		} else if mode == Strict && !unicode.IsSpace(c) {
			return nil, UnknownSymbolError{in.Loc(), c}
		}
	}
}
