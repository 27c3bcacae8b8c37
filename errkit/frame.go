package errkit

// maxDepth bounds nested Block calls, mirroring ERROR_TRY_MAX in
// error.c. A program nesting try blocks this deep is almost certainly
// looping rather than structuring control flow, so it is treated as a
// programming defect.
const maxDepth = 32

// contextHooks lets memctx observe frame entry/exit without errkit
// importing memctx, preserving the E -> A -> B dependency order: B
// registers itself with A in its own init(), A never references B's
// types.
type contextHooks struct {
	save    func() any
	restore func(any)
}

var hooks *contextHooks

// RegisterContextHooks wires save/restore callbacks that run around every
// Block invocation. save captures whatever state the caller needs to
// reinstate on unwind (the current memory context, for memctx); restore
// is handed that value back when the frame exits, whether by normal
// return or by an error propagating through it. When an error is thrown
// inside the Block, restore also runs before any Catch or Finally clause.
func RegisterContextHooks(save func() any, restore func(any)) {
	if save == nil && restore == nil {
		hooks = nil
		return
	}
	hooks = &contextHooks{save: save, restore: restore}
}

var depth int

// enterFrame records entry into a new Block, enforcing maxDepth and
// invoking the registered save hook. It returns the saved state (nil if
// no hooks are registered) to be handed back to exitFrame.
func enterFrame() any {
	if depth >= maxDepth {
		panic(newThrown(AssertError, Here(2), "too many nested try blocks"))
	}
	depth++
	if hooks != nil {
		return hooks.save()
	}
	return nil
}

// exitFrame restores state saved by enterFrame and pops the frame.
func exitFrame(saved any) {
	if hooks != nil {
		hooks.restore(saved)
	}
	depth--
}
