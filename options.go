package main

import (
	"io"

	"github.com/jcorbin/gobf/internal/flushio"
	"github.com/jcorbin/gobf/internal/mem"
)

// VMOption configures a VM; options are applied in order.
type VMOption interface{ apply(vm *VM) }

// VMOptions combines any number of options into one, skipping nils.
func VMOptions(opts ...VMOption) VMOption {
	var all options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			all = append(all, impl...)
		default:
			all = append(all, impl)
		}
	}
	if len(all) == 1 {
		return all[0]
	}
	return all
}

type options []VMOption

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

var defaultOptions = VMOptions(
	withOutput(io.Discard),
	withMemSize(mem.DefaultTapeSize),
	withLexMode(Lenient),
	withOutputMode(OutputBytes),
)

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type lineFlushOption bool
type memSizeOption uint
type lexModeOption LexMode
type outputModeOption OutputMode

func withOutput(w io.Writer) outputOption             { return outputOption{w} }
func withTee(w io.Writer) teeOption                   { return teeOption{w} }
func withLineFlush(enabled bool) lineFlushOption      { return lineFlushOption(enabled) }
func withMemSize(size uint) memSizeOption             { return memSizeOption(size) }
func withLexMode(mode LexMode) lexModeOption          { return lexModeOption(mode) }
func withOutputMode(mode OutputMode) outputModeOption { return outputModeOption(mode) }

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.WriteFlushers(vm.out, flushio.NewWriteFlusher(o.Writer))
	if cl, ok := o.Writer.(io.Closer); ok {
		vm.closers = append(vm.closers, cl)
	}
}

func (lf lineFlushOption) apply(vm *VM) {
	if lf {
		vm.out = flushio.LineFlusher(vm.out)
	}
}

func (size memSizeOption) apply(vm *VM) {
	vm.memSize = uint(size)
}

func (mode lexModeOption) apply(vm *VM) {
	vm.lexMode = LexMode(mode)
}

func (mode outputModeOption) apply(vm *VM) {
	vm.outMode = OutputMode(mode)
}
