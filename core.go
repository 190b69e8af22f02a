package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/gobf/internal/flushio"
	"github.com/jcorbin/gobf/internal/panicerr"
	"github.com/jcorbin/gobf/internal/runeio"
)

type ioCore struct {
	logging
	out     flushio.WriteFlusher
	outMode OutputMode
	closers []io.Closer
}

func (ioc *ioCore) Close() (err error) {
	if ioc.out != nil {
		err = ioc.out.Flush()
	}
	for i := len(ioc.closers) - 1; i >= 0; i-- {
		if cerr := ioc.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	ioc.closers = nil
	return err
}

// halt flushes output, then unwinds to Run, which returns err.
func (ioc *ioCore) halt(err error) {
	// ignore any panics while trying to flush output
	func() {
		defer func() { recover() }()
		if ioc.out != nil {
			if ferr := ioc.out.Flush(); err == nil {
				err = ferr
			}
		}
	}()

	// ignore any panics while logging
	func() {
		defer func() { recover() }()
		if err == nil {
			ioc.logf("#", "halt")
		} else {
			ioc.logf("#", "halt error: %v", err)
		}
	}()

	panicerr.Halt(err)
}

func (ioc *ioCore) writeCell(b byte) {
	var err error
	switch ioc.outMode {
	case OutputANSI:
		err = runeio.WriteLatin1(ioc.out, b)
	default:
		err = ioc.out.WriteByte(b)
	}
	if err != nil {
		ioc.halt(err)
	}
}

// OutputMode selects how cell values are written out.
type OutputMode int

const (
	// OutputBytes writes each cell value as a raw byte.
	OutputBytes OutputMode = iota

	// OutputANSI writes each cell value as an ISO-8859-1 code point: ASCII as
	// is, C1 controls in their 7-bit escape form, and the rest in utf8.
	OutputANSI
)

var outputModeNames = [...]string{"byte", "ansi"}

func (mode OutputMode) String() string {
	if int(mode) < len(outputModeNames) && mode >= 0 {
		return outputModeNames[mode]
	}
	return fmt.Sprintf("OutputMode(%d)", int(mode))
}

// Set parses an output mode name, so that *OutputMode is a flag.Value.
func (mode *OutputMode) Set(s string) error {
	for i, name := range outputModeNames {
		if strings.EqualFold(s, name) {
			*mode = OutputMode(i)
			return nil
		}
	}
	return fmt.Errorf("invalid output mode %q, must be one of %v", s, outputModeNames)
}

type codeError struct {
	pc uint
	op Op
}

func (ce codeError) Error() string { return fmt.Sprintf("invalid code %v at pc=%v", ce.op, ce.pc) }

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark += strings.Repeat(" ", n)
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
