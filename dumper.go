package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jcorbin/gobf/internal/mem"
	"github.com/jcorbin/gobf/internal/runeio"
)

type vmDumper struct {
	vm  *VM
	out io.Writer

	addrWidth int
	codeWidth int  // instructions per program row
	cellWidth int  // cells per tape row
	zeroGap   uint // zero runs longer than this split tape rows
}

func (dump vmDumper) dump() {
	if dump.codeWidth == 0 {
		dump.codeWidth = 64
	}
	if dump.cellWidth == 0 {
		dump.cellWidth = 16
	}
	if dump.zeroGap == 0 {
		dump.zeroGap = 4
	}
	if dump.addrWidth == 0 {
		size := uint(len(dump.vm.code))
		if tape := dump.vm.tape; tape != nil && tape.Size() > size {
			size = tape.Size()
		}
		dump.addrWidth = len(strconv.FormatUint(uint64(size), 10))
	}

	vm := dump.vm
	fmt.Fprintf(dump.out, "# VM Dump\n")
	if vm.pc < uint(len(vm.code)) {
		fmt.Fprintf(dump.out, "  pc: %v %v\n", vm.pc, vm.code[vm.pc].Name())
	} else {
		fmt.Fprintf(dump.out, "  pc: %v end\n", vm.pc)
	}
	fmt.Fprintf(dump.out, "  steps: %v\n", vm.steps)
	if vm.tape != nil {
		fmt.Fprintf(dump.out, "  data: @%v %v\n", vm.tape.Addr(), runeio.Display(vm.tape.Load()))
	}

	dump.dumpProgram()
	dump.dumpTape()
}

func (dump vmDumper) dumpProgram() {
	text := dump.vm.code.String()
	fmt.Fprintf(dump.out, "# Program (%v instructions)\n", len(text))
	pc := int(dump.vm.pc)
	for base := 0; base < len(text); base += dump.codeWidth {
		end := base + dump.codeWidth
		if end > len(text) {
			end = len(text)
		}
		fmt.Fprintf(dump.out, "  @%*d %s\n", dump.addrWidth, base, text[base:end])
		if base <= pc && pc < end {
			fmt.Fprintf(dump.out, "%s^\n", strings.Repeat(" ", dump.addrWidth+4+pc-base))
		}
	}
}

func (dump vmDumper) dumpTape() {
	tape := dump.vm.tape
	if tape == nil {
		return
	}
	fmt.Fprintf(dump.out, "# Tape (%v cells)\n", tape.Size())

	cursor := tape.Addr()
	var buf bytes.Buffer
	for _, win := range withCursor(tape.Windows(dump.zeroGap), cursor) {
		for i := 0; i < len(win.Values); i += dump.cellWidth {
			end := i + dump.cellWidth
			if end > len(win.Values) {
				end = len(win.Values)
			}
			fmt.Fprintf(&buf, "  @%*d", dump.addrWidth, win.Base+uint(i))
			for j, val := range win.Values[i:end] {
				if win.Base+uint(i+j) == cursor {
					fmt.Fprintf(&buf, " [%v]", val)
				} else {
					fmt.Fprintf(&buf, " %v", val)
				}
			}
			buf.WriteByte('\n')
			buf.WriteTo(dump.out)
		}
	}
}

// withCursor adds a zero window for addr, unless one of ws already covers it.
func withCursor(ws []mem.Window, addr uint) []mem.Window {
	i := 0
	for ; i < len(ws); i++ {
		if win := ws[i]; addr < win.Base {
			break
		} else if addr < win.Base+uint(len(win.Values)) {
			return ws
		}
	}
	ws = append(ws, mem.Window{})
	copy(ws[i+1:], ws[i:])
	ws[i] = mem.Window{Base: addr, Values: []byte{0}}
	return ws
}
