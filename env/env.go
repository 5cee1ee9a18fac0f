// Package env implements the lexical environment chain (spec.md §4.1): a
// frame carries two ordered association lists — variables and functions —
// and a parent link; the top level is a pair of process-wide symbol maps
// consulted once the chain is exhausted.
package env

import "github.com/leinonen/txr-kernel/value"

// Globals holds the two process-wide top-level bindings tables and is
// threaded explicitly through every frame rather than hidden behind
// package-level variables, so a program can run more than one kernel
// instance (spec.md §9's "single evaluator-context value" guidance).
type Globals struct {
	TopVB map[*value.Symbol]*value.Cons
	TopFB map[*value.Symbol]*value.Cons
}

func NewGlobals() *Globals {
	return &Globals{
		TopVB: make(map[*value.Symbol]*value.Cons),
		TopFB: make(map[*value.Symbol]*value.Cons),
	}
}

// Frame is one lexical scope. VBindings/FBindings are proper lists of
// binding cells (symbol . value), most-recently-bound cell first, matching
// the host's acons-based association list exactly; Parent is nil only for
// the synthetic root frame, which represents "no enclosing lexical scope"
// (spec.md's "up_env is nil" sentinel).
type Frame struct {
	VBindings value.Value
	FBindings value.Value
	Parent    *Frame
	G         *Globals
}

// Root returns the frame representing the top level: no local bindings,
// no parent, falling through to g on every lookup.
func Root(g *Globals) *Frame {
	return &Frame{VBindings: value.Nil{}, FBindings: value.Nil{}, G: g}
}

// MakeEnv creates a new frame over parent, inheriting its Globals.
func MakeEnv(vbindings, fbindings value.Value, parent *Frame) *Frame {
	return &Frame{VBindings: vbindings, FBindings: fbindings, Parent: parent, G: parent.G}
}

// EnvVBind prepends (sym . val) to frame's variable list, shadowing any
// earlier binding of sym in the same frame.
func EnvVBind(f *Frame, sym *value.Symbol, val value.Value) {
	f.VBindings = value.NewCons(value.NewCons(sym, val), f.VBindings)
}

// EnvFBind prepends (sym . fn) to frame's function list.
func EnvFBind(f *Frame, sym *value.Symbol, fn value.Value) {
	f.FBindings = value.NewCons(value.NewCons(sym, fn), f.FBindings)
}

func assoc(bindings value.Value, sym *value.Symbol) *value.Cons {
	for {
		c, ok := bindings.(*value.Cons)
		if !ok {
			return nil
		}
		pair := c.Car.(*value.Cons)
		if pair.Car == value.Value(sym) {
			return pair
		}
		bindings = c.Cdr
	}
}

// LookupVar walks the frame chain looking for sym in each frame's
// variable list; when the chain is exhausted it returns the cell stored
// in the top-level variable table, or nil if none exists.
func (f *Frame) LookupVar(sym *value.Symbol) *value.Cons {
	for cur := f; cur != nil; cur = cur.Parent {
		if c := assoc(cur.VBindings, sym); c != nil {
			return c
		}
	}
	return f.G.TopVB[sym]
}

// LookupFun is LookupVar's analogue against function bindings.
func (f *Frame) LookupFun(sym *value.Symbol) *value.Cons {
	for cur := f; cur != nil; cur = cur.Parent {
		if c := assoc(cur.FBindings, sym); c != nil {
			return c
		}
	}
	return f.G.TopFB[sym]
}

// DefVar installs or overwrites a top-level variable binding: if a cell
// already exists its cdr is overwritten (so existing closures over it see
// the new value), otherwise a fresh cell is inserted.
func (g *Globals) DefVar(sym *value.Symbol, val value.Value) {
	if c, ok := g.TopVB[sym]; ok {
		c.Cdr = val
		return
	}
	g.TopVB[sym] = value.NewCons(sym, val)
}

// DefFun installs a top-level function binding, always replacing any
// previous one (redefining a function rebinds the name, it does not
// mutate the old closure in place).
func (g *Globals) DefFun(sym *value.Symbol, fn value.Value) {
	g.TopFB[sym] = value.NewCons(sym, fn)
}
