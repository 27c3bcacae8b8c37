package memctx

import "github.com/pgbackrest/corert/errkit"

// init wires this package's save/restore pair into errkit's hook slot,
// so every errkit.Block entry and exit saves and restores the current
// context. errkit has no import of memctx; only this direction exists.
func init() {
	errkit.RegisterContextHooks(
		func() any { return current },
		func(v any) { current = v.(*Context) },
	)
}
