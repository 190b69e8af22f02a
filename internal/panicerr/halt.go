package panicerr

import "fmt"

// Halt unwinds the calling goroutine back to the nearest Recover, which then
// returns err. A nil err halts normally, so Recover returns nil.
func Halt(err error) {
	panic(haltError{err})
}

type haltError struct{ error }

func (he haltError) Error() string {
	if he.error != nil {
		return fmt.Sprintf("halted: %v", he.error)
	}
	return "halted"
}

func (he haltError) Unwrap() error { return he.error }
