package main

import (
	"context"

	"github.com/jcorbin/gobf/internal/mem"
)

// VM runs one loaded Program against a fixed size tape.
type VM struct {
	ioCore

	lexMode LexMode
	memSize uint

	loaded bool

	code  Program   // instructions
	jumps JumpTable // bracket pairing for code
	pc    uint      // instruction pointer
	steps uint64    // instructions executed so far

	// The tape is allocated when a program is loaded, and zeroed every time
	// one is; its cursor is the data pointer.
	tape *mem.Tape
}

// how many steps to run between checks for context cancellation; must be a
// power of 2 minus 1
const ctxCheckMask = 1<<12 - 1

// Load readies the VM to run prog from the start, against a zeroed tape.
// Any bracket mismatch is returned as an UnmatchedBracketError, leaving the VM
// without a program.
func (vm *VM) Load(prog Program) error {
	vm.code, vm.jumps, vm.loaded = nil, nil, false
	jumps, err := BuildJumps(prog)
	if err != nil {
		return err
	}
	if vm.tape == nil || vm.tape.Size() != vm.memSize {
		if vm.tape, err = mem.NewTape(vm.memSize); err != nil {
			return err
		}
	} else {
		vm.tape.Reset()
	}
	vm.code, vm.jumps, vm.loaded = prog, jumps, true
	vm.pc, vm.steps = 0, 0
	vm.logf("#", "load %v instructions, %v cells", len(prog), vm.tape.Size())
	return nil
}

func (vm *VM) run(ctx context.Context) {
	if !vm.loaded {
		vm.halt(errNoProgram)
	}

	if vm.logfn != nil {
		defer vm.withLogPrefix("	")()
	}

	done := ctx.Done()
	for vm.pc < uint(len(vm.code)) {
		if done != nil && vm.steps&ctxCheckMask == 0 {
			select {
			case <-done:
				vm.halt(ctx.Err())
			default:
			}
		}
		vm.step()
	}
	vm.halt(nil)
}

func (vm *VM) step() {
	op := vm.code[vm.pc]
	if vm.logfn != nil {
		vm.logf("@", "%v %v -- d:%v c:%v", vm.pc, op.Name(), vm.tape.Addr(), vm.tape.Load())
	}
	switch op {
	case OpRight:
		vm.tape.Right()
	case OpLeft:
		vm.tape.Left()
	case OpInc:
		vm.tape.Inc()
	case OpDec:
		vm.tape.Dec()
	case OpOutput:
		vm.writeCell(vm.tape.Load())
	case OpInput:
		vm.halt(InputError{vm.pc})
	case OpLoop:
		// land on the matching ], so that the increment below leaves the loop
		if vm.tape.Load() == 0 {
			vm.pc = vm.jumps[vm.pc]
		}
	case OpEnd:
		// land on the matching [, so that the increment below re-enters the body
		if vm.tape.Load() != 0 {
			vm.pc = vm.jumps[vm.pc]
		}
	default:
		vm.halt(codeError{vm.pc, op})
	}
	vm.pc++
	vm.steps++
}
