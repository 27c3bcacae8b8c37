package errkit

import (
	"fmt"
	"os"
)

// Run invokes fn as the outermost frame. A ThrownError that propagates
// past every Block (or that fn panics with directly) is reported to
// stderr in the same shape errorInternalPropagate's no-try-left path
// writes, and Run returns 1; any other panic is re-raised unchanged so
// it surfaces as a normal Go crash. A nil-error, non-panicking return
// yields exit code 0.
func Run(fn func() error) (code int) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		te, ok := r.(*ThrownError)
		if !ok {
			panic(r)
		}
		reportUncaught(te)
		code = 1
	}()

	if err := fn(); err != nil {
		te := TypeOf(err)
		fmt.Fprintf(os.Stderr, "\nERROR: [%03d]: %s\n", te.Code, err.Error())
		return 1
	}
	return 0
}

func reportUncaught(te *ThrownError) {
	fmt.Fprintf(os.Stderr, "\nUncaught %s: %s\n    thrown at %s\n\n", te.Type.Name, te.Message, te.Site.String())
}
