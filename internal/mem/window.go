package mem

// Window is a run of cells, starting at Base, that contains at least one
// non-zero value.
type Window struct {
	Base   uint
	Values []byte
}

// Windows scans the tape for non-zero cells, grouping them into windows;
// runs of zero shorter than gap do not split a window.
// The returned values alias a copy, not the tape itself.
func (t *Tape) Windows(gap uint) (ws []Window) {
	if gap == 0 {
		gap = 1
	}
	var (
		open  bool
		base  uint
		last  uint
		size  = t.Size()
		flush = func() {
			vals := make([]byte, last-base+1)
			copy(vals, t.cells[base:last+1])
			ws = append(ws, Window{base, vals})
		}
	)
	for addr := uint(0); addr < size; addr++ {
		if t.cells[addr] == 0 {
			continue
		}
		if open && addr-last > gap {
			flush()
			open = false
		}
		if !open {
			base, open = addr, true
		}
		last = addr
	}
	if open {
		flush()
	}
	return ws
}
