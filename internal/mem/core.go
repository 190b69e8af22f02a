package mem

import "fmt"

// DefaultTapeSize is the canonical number of cells in a Tape.
const DefaultTapeSize = 30000

// Tape implements a fixed-length byte-cell memory with a single wrapping
// cursor. Cell arithmetic wraps modulo 256, and cursor movement wraps modulo
// the tape length; neither ever results in an error.
type Tape struct {
	cells []byte
	addr  uint
}

// SizeError indicates that a Tape was asked to have an unusable size.
type SizeError struct {
	Size uint
}

func (se SizeError) Error() string {
	return fmt.Sprintf("invalid tape size %v", se.Size)
}

// NewTape allocates a zeroed tape of the given size.
func NewTape(size uint) (*Tape, error) {
	if size == 0 {
		return nil, SizeError{size}
	}
	return &Tape{cells: make([]byte, size)}, nil
}

// Size returns the number of cells in the tape.
func (t *Tape) Size() uint { return uint(len(t.cells)) }

// Addr returns the current cursor address.
func (t *Tape) Addr() uint { return t.addr }

// Seek moves the cursor to addr, reduced modulo the tape size.
func (t *Tape) Seek(addr uint) { t.addr = addr % t.Size() }

// Right moves the cursor one cell higher, wrapping to 0 past the end.
func (t *Tape) Right() {
	if t.addr++; t.addr >= uint(len(t.cells)) {
		t.addr = 0
	}
}

// Left moves the cursor one cell lower, wrapping to the last cell below 0.
func (t *Tape) Left() {
	if t.addr == 0 {
		t.addr = uint(len(t.cells))
	}
	t.addr--
}

// Inc adds one to the cell under the cursor.
func (t *Tape) Inc() { t.cells[t.addr]++ }

// Dec subtracts one from the cell under the cursor.
func (t *Tape) Dec() { t.cells[t.addr]-- }

// Load returns the value of the cell under the cursor.
func (t *Tape) Load() byte { return t.cells[t.addr] }

// LoadAt returns the value of the cell at addr, reduced modulo the tape size.
func (t *Tape) LoadAt(addr uint) byte { return t.cells[addr%t.Size()] }

// Stor sets values into the tape starting at addr, wrapping around the end
// if necessary; the cursor is not moved.
func (t *Tape) Stor(addr uint, values ...byte) {
	size := t.Size()
	for _, val := range values {
		addr %= size
		t.cells[addr] = val
		addr++
	}
}

// Reset zeroes every cell and returns the cursor to 0.
func (t *Tape) Reset() {
	for i := range t.cells {
		t.cells[i] = 0
	}
	t.addr = 0
}
