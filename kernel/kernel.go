package kernel

import (
	"github.com/leinonen/txr-kernel/env"
	"github.com/leinonen/txr-kernel/value"
)

// Frame is an alias for env.Frame so the rest of this package (which is
// all about what happens inside a frame) doesn't have to qualify every
// signature with the env package name.
type Frame = env.Frame

// Kernel bundles the top-level bindings and the operator table: the one
// evaluator-context value spec.md §9 asks for in place of ad hoc globals.
// New wires it up the way the host's eval_init does: intern the operator
// symbols (package-level vars in symbols.go, evaluated at package init),
// seed the operator table, and leave function/variable registration to
// package builtins.
type Kernel struct {
	Globals  *env.Globals
	Registry *Registry
}

// New creates an empty kernel: no builtins registered yet, just the
// top-level maps and the operator table, seeded with the two canonical
// self-evaluating bindings spec.md §4.2/§6 assume exist — nil and t —
// the way the teacher's NewEnvironment seeds env.bindings["nil"] up front.
// The reader yields Nil{} for nil and Bindable rejects t, so Eval never
// consults these cells for source read through package reader; the nil
// cell is what a symbol built by name (value.Intern("nil")), which is
// bindable, resolves to through an ordinary variable lookup.
func New() *Kernel {
	g := env.NewGlobals()
	g.DefVar(value.Intern("nil"), value.Nil{})
	g.DefVar(value.T, value.T)
	return &Kernel{
		Globals:  g,
		Registry: NewRegistry(),
	}
}

// RootEnv returns the top-level lexical frame for this kernel.
func (k *Kernel) RootEnv() *Frame {
	return env.Root(k.Globals)
}
