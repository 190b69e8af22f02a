package panicerr

// Recover runs f in a new goroutine, turning any Halt, panic, or
// runtime.Goexit into a non-nil error return. A Halt(err) comes back as err
// itself, with no stack attached.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer recoverExitError(name, errch)
		defer recoverPanicError(name, errch)
		errch <- f()
	}()
	return <-errch
}
