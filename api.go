package main

import (
	"context"
	"io"

	"github.com/jcorbin/gobf/internal/panicerr"
)

// New creates a VM with the given options applied over defaults: output is
// discarded, and the tape has mem.DefaultTapeSize cells.
func New(opts ...VMOption) *VM {
	var vm VM
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	return &vm
}

// Compile parses program source from r, as configured by WithStrict, and loads
// it; see Parse and Load.
func (vm *VM) Compile(r io.Reader) error {
	prog, err := Parse(r, vm.lexMode)
	if err != nil {
		return err
	}
	return vm.Load(prog)
}

// Run executes the loaded program until its instruction pointer runs past the
// end, returning nil, or until it halts with an error. Any output written is
// flushed before returning, even after an error.
// The context is checked periodically; since a program may loop forever,
// only ctx can bound its runtime.
func (vm *VM) Run(ctx context.Context) error {
	return panicerr.Recover("VM", func() error {
		vm.run(ctx)
		return nil
	})
}

// Steps returns how many instructions the last Run executed.
func (vm *VM) Steps() uint64 { return vm.steps }

// Interpret compiles a program from src into a new VM and runs it; the VM is
// closed before returning.
func Interpret(ctx context.Context, src io.Reader, opts ...VMOption) (rerr error) {
	vm := New(opts...)
	defer func() {
		if cerr := vm.Close(); rerr == nil {
			rerr = cerr
		}
	}()
	if err := vm.Compile(src); err != nil {
		return err
	}
	return vm.Run(ctx)
}

func WithOutput(w io.Writer) VMOption         { return withOutput(w) }
func WithTee(w io.Writer) VMOption            { return withTee(w) }
func WithLineFlush(enabled bool) VMOption     { return withLineFlush(enabled) }
func WithMemSize(size uint) VMOption          { return withMemSize(size) }
func WithOutputMode(mode OutputMode) VMOption { return withOutputMode(mode) }

// WithStrict selects Strict lexing when enabled, and Lenient otherwise.
func WithStrict(enabled bool) VMOption {
	if enabled {
		return withLexMode(Strict)
	}
	return withLexMode(Lenient)
}

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
