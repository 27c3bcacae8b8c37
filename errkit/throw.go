package errkit

import (
	"errors"
	"fmt"
)

// messageBufferSize bounds a thrown message the way error.c's static
// messageBuffer does, trading unbounded allocation for a hard cap.
const messageBufferSize = 8192

// ThrownError is the value every Throw variant panics with. It implements
// error so it composes with errors.Is/errors.As and ordinary Go error
// handling outside a Block.
type ThrownError struct {
	Type    *Type
	Site    CallSite
	Message string
}

func newThrown(t *Type, site CallSite, message string) *ThrownError {
	if len(message) > messageBufferSize {
		message = message[:messageBufferSize]
	}
	e := &ThrownError{Type: t, Site: site, Message: message}
	last = e
	return e
}

func (e *ThrownError) Error() string {
	return e.Type.Name + ": " + e.Message
}

// Throw raises an error of the given type with a literal message.
func Throw(t *Type, message string) {
	panic(newThrown(t, Here(1), message))
}

// Throwf raises an error of the given type with a formatted message.
func Throwf(t *Type, format string, args ...any) {
	panic(newThrown(t, Here(1), fmt.Sprintf(format, args...)))
}

// ThrowSys raises an error that wraps an underlying system error, with
// the message "<message>: <cause>". No errno code is added, so the
// message format is not tied to a specific platform's errno/strerror
// pair.
func ThrowSys(t *Type, cause error, message string) {
	panic(newThrown(t, Here(1), fmt.Sprintf("%s: %s", message, cause)))
}

// TypeOf returns the Type a thrown error carries, or UnknownError if err
// did not originate from Throw/Throwf/ThrowSys.
func TypeOf(err error) *Type {
	var te *ThrownError
	if errors.As(err, &te) {
		return te.Type
	}
	return UnknownError
}

// IsA reports whether err is a ThrownError whose type IsA t.
func IsA(err error, t *Type) bool {
	var te *ThrownError
	if !errors.As(err, &te) {
		return false
	}
	return te.Type.IsA(t)
}

// Clause is one handler passed to Block: either a catch (match non-nil)
// or a finally (match nil, final non-nil).
type Clause struct {
	match func(*ThrownError) bool
	catch func(*ThrownError) error
	final func()
}

// Catch runs handle when the tried function throws a non-fatal error
// whose type IsA t. Fatal errors never match an ordinary Catch, even
// when t is their own type or an ancestor of it; only CatchFatal can
// intercept them.
func Catch(t *Type, handle func(err *ThrownError) error) Clause {
	return Clause{
		match: func(e *ThrownError) bool { return !e.Type.Fatal && e.Type.IsA(t) },
		catch: handle,
	}
}

// CatchFatal runs handle for any thrown error marked Fatal, regardless of
// its specific type. Matching a CatchFatal clause is the only way a
// fatal error is caught at all: see Block's propagation rule.
func CatchFatal(handle func(err *ThrownError) error) Clause {
	return Clause{
		match: func(e *ThrownError) bool { return e.Type.Fatal },
		catch: handle,
	}
}

// Finally runs fn when the Block exits, whether the tried function
// returned normally, threw an error handled by a Catch clause, or the
// error propagated past this Block uncaught. Fatal errors that propagate
// past this Block (no matching Catch/CatchFatal clause here) skip this
// Finally, matching the fail-fast intent of a fatal error: see Block.
func Finally(fn func()) Clause {
	return Clause{final: fn}
}

// Block runs try, dispatching any thrown error to the first matching
// Catch/CatchFatal clause and running Finally clauses in
// last-registered-first order (except as noted below), mirroring pgBackRest's TRY/CATCH/FINALLY
// macros but built on Go's native panic/recover instead of setjmp/
// longjmp, per the unwinding direction in this project's design notes.
//
// A fatal error that finds no matching clause in this Block propagates
// without running this Block's Finally clauses, so that cleanup code does
// not run over state a fatal error may have left inconsistent; a
// non-fatal error that finds no matching clause still runs them.
func Block(try func() error, clauses ...Clause) (result error) {
	saved := enterFrame()
	defer exitFrame(saved)

	var finals []func()
	for _, c := range clauses {
		if c.final != nil {
			finals = append(finals, c.final)
		}
	}
	runFinals := func() {
		for i := len(finals) - 1; i >= 0; i-- {
			finals[i]()
		}
	}

	func() {
		defer func() {
			r := recover()
			if r == nil {
				runFinals()
				return
			}

			// Reinstate the state saved at frame entry before any clause
			// runs, so catch and finally code see the enclosing context.
			if hooks != nil {
				hooks.restore(saved)
			}

			te, ok := r.(*ThrownError)
			if !ok {
				runFinals()
				panic(r)
			}

			for _, c := range clauses {
				if c.match != nil && c.match(te) {
					result = c.catch(te)
					runFinals()
					return
				}
			}

			if te.Type.Fatal {
				panic(r)
			}
			runFinals()
			panic(r)
		}()
		result = try()
	}()

	return result
}
