package memctx

import "github.com/pgbackrest/corert/errkit"

// Addr is an opaque handle to a raw allocation inside a context. It
// stands in for a pointer the way wzprof's ptr/vmem pair stands in for a
// guest address: callers index through the handle instead of holding a
// Go pointer, keeping the context able to account for and release the
// backing bytes deterministically.
type Addr struct {
	ctx *Context
	idx int
}

// Valid reports whether a still refers to a live allocation.
func (a Addr) Valid() bool {
	return a.ctx != nil && a.idx < len(a.ctx.allocs) && a.ctx.allocs[a.idx].live
}

// Bytes returns the allocation's backing slice. Calling it on a freed or
// zero-value Addr is a programming defect.
func (a Addr) Bytes() []byte {
	if !a.Valid() {
		errkit.Throw(errkit.AssertError, "use of freed or invalid allocation")
	}
	return a.ctx.allocs[a.idx].data
}

// Alloc charges size bytes to the current context and returns a handle
// to the backing slice (zero-filled, since Go's make always zero-fills).
func Alloc(size int) Addr {
	return current.alloc(make([]byte, size))
}

// AllocZero is Alloc with the backing slice explicitly zeroed; Go's
// make already zero-fills, so it is identical to Alloc, kept distinct to
// mirror the two-entry-point shape callers expect.
func AllocZero(size int) Addr {
	return Alloc(size)
}

func (c *Context) alloc(data []byte) Addr {
	if c.state != active {
		errkit.Throw(errkit.AssertError, "allocation in a freeing or freed context")
	}
	a := &allocation{data: data, size: len(data), live: true}
	c.allocs = append(c.allocs, a)
	return Addr{ctx: c, idx: len(c.allocs) - 1}
}

// Grow resizes the allocation at addr to newSize, preserving its
// existing contents up to the smaller of the two sizes, and returns a
// handle to the resized allocation (the index is unchanged; the handle
// is returned for symmetry with the other operations).
func Grow(addr Addr, newSize int) Addr {
	if !addr.Valid() {
		errkit.Throw(errkit.AssertError, "grow of freed or invalid allocation")
	}
	a := addr.ctx.allocs[addr.idx]
	resized := make([]byte, newSize)
	copy(resized, a.data)
	a.data = resized
	a.size = newSize
	return addr
}

// FreeAlloc releases a single allocation without freeing its owning
// context.
func FreeAlloc(addr Addr) {
	if !addr.Valid() {
		errkit.Throw(errkit.AssertError, "double free of allocation")
	}
	a := addr.ctx.allocs[addr.idx]
	a.live = false
	a.data = nil
}

// Track implements corevalue.Allocator: it charges size bytes to the
// context as a bookkeeping-only allocation with no backing bytes of its
// own, for values (like corevalue.List) that keep their own Go slice but
// still want their growth charged to an owning context.
func (c *Context) Track(size int) {
	if c.state != active {
		return
	}
	c.allocs = append(c.allocs, &allocation{size: size, live: true})
}
