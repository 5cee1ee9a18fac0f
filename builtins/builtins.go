// Package builtins registers the native function library spec.md §5
// describes: list construction and traversal, predicates, search,
// mapping, arithmetic, regex matching, hashing, streams, and the eval
// intrinsic. Install wires every one of them into a kernel's top-level
// function table, the way the host's eval_init() populates top_fb.
package builtins

import (
	"github.com/leinonen/txr-kernel/kernel"
	"github.com/leinonen/txr-kernel/value"
)

// Install registers the entire native library into k.
func Install(k *kernel.Kernel) {
	installListOps(k)
	installPredicates(k)
	installSearchOps(k)
	installMapOps(k)
	installArithOps(k)
	installRegexOps(k)
	installHashOps(k)
	installStreamOps(k)
	installEvalOp(k)
}

// def registers a fixed-arity native taking exactly minArgs arguments.
func def(k *kernel.Kernel, name string, minArgs int, fn value.NativeFn) {
	sym := value.Intern(name)
	k.Globals.DefFun(sym, &value.Function{
		Name:   name,
		Native: &value.Native{MinArgs: minArgs, Fn: fn},
	})
}

// defVariadic registers a native that takes at least minArgs arguments,
// collecting the remainder into the rest parameter fn receives.
func defVariadic(k *kernel.Kernel, name string, minArgs int, fn value.NativeFn) {
	sym := value.Intern(name)
	k.Globals.DefFun(sym, &value.Function{
		Name:   name,
		Native: &value.Native{MinArgs: minArgs, Variadic: true, Fn: fn},
	})
}

func boolVal(b bool) value.Value {
	if b {
		return value.T
	}
	return value.Nil{}
}
