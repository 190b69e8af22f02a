package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vmTestCases []vmTestCase

func (vmts vmTestCases) run(t *testing.T) {
	{
		var exclusive []vmTestCase
		for _, vmt := range vmts {
			if vmt.exclusive {
				exclusive = append(exclusive, vmt)
			}
		}
		if len(exclusive) > 0 {
			vmts = exclusive
		}
	}
	for _, vmt := range vmts {
		t.Run(vmt.name, vmt.run)
	}
}

func vmTest(name string) (vmt vmTestCase) {
	vmt.name = name
	return vmt
}

type vmTestCase struct {
	name    string
	source  string
	compile bool
	prog    Program
	opts    []interface{}
	setup   []func(vm *VM)
	expect  []func(t *testing.T, vm *VM)
	timeout time.Duration
	wantErr error

	exclusive bool
}

func (vmt vmTestCase) exclusiveTest() vmTestCase {
	vmt.exclusive = true
	return vmt
}

func (vmt vmTestCase) withSource(source string) vmTestCase {
	vmt.source = source
	vmt.compile = true
	return vmt
}

func (vmt vmTestCase) withProgram(ops ...Op) vmTestCase {
	vmt.prog = Program(ops)
	return vmt
}

func (vmt vmTestCase) withOptions(opts ...VMOption) vmTestCase {
	for _, opt := range opts {
		vmt.opts = append(vmt.opts, opt)
	}
	return vmt
}

func (vmt vmTestCase) withMemSize(size uint) vmTestCase {
	return vmt.withOptions(WithMemSize(size))
}

func (vmt vmTestCase) withCells(addr uint, values ...byte) vmTestCase {
	vmt.setup = append(vmt.setup, func(vm *VM) {
		vm.tape.Stor(addr, values...)
	})
	return vmt
}

func (vmt vmTestCase) withData(addr uint) vmTestCase {
	vmt.setup = append(vmt.setup, func(vm *VM) {
		vm.tape.Seek(addr)
	})
	return vmt
}

func (vmt vmTestCase) withTimeout(timeout time.Duration) vmTestCase {
	vmt.timeout = timeout
	return vmt
}

func (vmt vmTestCase) expectError(err error) vmTestCase {
	vmt.wantErr = err
	return vmt
}

func (vmt vmTestCase) expectPC(pc uint) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, pc, vm.pc, "expected instruction pointer")
	})
	return vmt
}

func (vmt vmTestCase) expectSteps(steps uint64) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, steps, vm.Steps(), "expected step count")
	})
	return vmt
}

func (vmt vmTestCase) expectData(addr uint) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		require.NotNil(t, vm.tape, "must have a tape")
		assert.Equal(t, addr, vm.tape.Addr(), "expected data pointer")
	})
	return vmt
}

func (vmt vmTestCase) expectCells(addr uint, values ...byte) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		require.NotNil(t, vm.tape, "must have a tape")
		got := make([]byte, len(values))
		for i := range got {
			got[i] = vm.tape.LoadAt(addr + uint(i))
		}
		assert.Equal(t, values, got, "expected cell values @%v", addr)
	})
	return vmt
}

func (vmt vmTestCase) expectNoTape() vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		assert.Nil(t, vm.tape, "expected no tape allocated")
		assert.Nil(t, vm.code, "expected no program loaded")
	})
	return vmt
}

func (vmt vmTestCase) expectOutput(output string) vmTestCase {
	var out strings.Builder
	vmt.opts = append(vmt.opts, func(t *testing.T) VMOption {
		out.Reset()
		return WithOutput(&out)
	})
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, output, out.String(), "expected output")
	})
	return vmt
}

func (vmt vmTestCase) expectBytes(output ...byte) vmTestCase {
	if output == nil {
		output = []byte{}
	}
	return vmt.expectOutput(string(output))
}

func (vmt vmTestCase) expectDump(dump string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		var out strings.Builder
		vmDumper{vm: vm, out: &out}.dump()
		assert.Equal(t, dump, out.String(), "expected dump")
	})
	return vmt
}

func (vmt vmTestCase) run(t *testing.T) {
	var trace traceTail
	vm := vmt.buildVM(t)
	WithLogf(trace.logf).apply(vm)

	defer func() {
		if t.Failed() {
			trace.dumpToTest(t)
			vmt.dumpToTest(t, vm)
		}
	}()

	vmt.runVMTest(context.Background(), t, vm)
}

func (vmt vmTestCase) runVMTest(ctx context.Context, t *testing.T, vm *VM) {
	const defaultTimeout = time.Second
	timeout := vmt.timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := vmt.runVM(ctx, vm); vmt.wantErr != nil {
		assert.True(t, errors.Is(err, vmt.wantErr), "expected error: %v\ngot: %+v", vmt.wantErr, err)
	} else {
		assert.NoError(t, err, "unexpected VM run error")
	}

	for _, expect := range vmt.expect {
		expect(t, vm)
	}
}

func (vmt vmTestCase) runVM(ctx context.Context, vm *VM) (rerr error) {
	defer func() {
		if err := vm.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("vm.Close failed: %w", err)
		}
	}()

	if vmt.prog != nil {
		if err := vm.Load(vmt.prog); err != nil {
			return err
		}
	} else if vmt.compile {
		if err := vm.Compile(strings.NewReader(vmt.source)); err != nil {
			return err
		}
	}

	for _, setup := range vmt.setup {
		setup(vm)
	}
	return vm.Run(ctx)
}

func (vmt vmTestCase) buildVM(t *testing.T) *VM {
	var opts []VMOption
	for _, o := range vmt.opts {
		switch impl := o.(type) {
		case func(t *testing.T) VMOption:
			opts = append(opts, impl(t))
		case VMOption:
			opts = append(opts, impl)
		default:
			t.Logf("unsupported vmTestCase opt type %T", o)
			t.FailNow()
		}
	}
	return New(opts...)
}

func (vmt vmTestCase) dumpToTest(t *testing.T, vm *VM) {
	var out strings.Builder
	vmDumper{vm: vm, out: &out}.dump()
	t.Logf("%s", out.String())
}

// traceTail retains the last few trace log lines of a VM run.
type traceTail struct {
	lines []string
	next  int
	total int
}

const traceTailSize = 64

func (tt *traceTail) logf(mess string, args ...interface{}) {
	line := fmt.Sprintf(mess, args...)
	if len(tt.lines) < traceTailSize {
		tt.lines = append(tt.lines, line)
	} else {
		tt.lines[tt.next] = line
	}
	tt.next = (tt.next + 1) % traceTailSize
	tt.total++
}

func (tt *traceTail) dumpToTest(t *testing.T) {
	if skipped := tt.total - len(tt.lines); skipped > 0 {
		t.Logf("trace: ... %v lines skipped", skipped)
	}
	if len(tt.lines) < traceTailSize {
		tt.next = 0
	}
	for i := range tt.lines {
		t.Logf("trace: %v", tt.lines[(tt.next+i)%len(tt.lines)])
	}
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}
