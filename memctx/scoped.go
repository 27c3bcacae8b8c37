package memctx

// ScopedNew allocates a child context, makes it current, and runs fn.
// On normal return (nil or non-nil error) it restores the prior context
// and keeps the child alive. If fn panics - in practice, with an
// *errkit.ThrownError as the propagated error flows out through it - the
// deferred cleanup still restores the prior context and frees the child,
// since an unwound Go defer runs regardless of how the frame exits.
func ScopedNew(name string, fn func() error) error {
	child := New(name)
	prev := Switch(child)
	ok := false
	defer func() {
		Switch(prev)
		if !ok {
			child.Free()
		}
	}()

	err := fn()
	ok = true
	return err
}

// ScopedTemp allocates a disposable child context, makes it current,
// runs fn, then always restores the prior context and frees the child -
// whether fn returns normally, returns an error, or its goroutine
// unwinds through a panic.
func ScopedTemp(name string, fn func() error) error {
	child := New(name)
	prev := Switch(child)
	defer func() {
		Switch(prev)
		child.Free()
	}()

	return fn()
}
