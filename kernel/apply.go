package kernel

import (
	"github.com/leinonen/txr-kernel/kernelerr"
	"github.com/leinonen/txr-kernel/value"
)

// maxNativeArgs bounds the fixed-argument buffer the application engine
// collects before dispatching a native call (spec.md §4.5 step 4).
const maxNativeArgs = 32

// Apply implements spec.md §4.5: resolve a symbol to its top-level
// function binding, dispatch fixed- or variadic-arity natives across their
// arity classes, or re-enter the evaluator for an interpreted function's
// body.
func (k *Kernel) Apply(fun value.Value, args value.Value, ctx value.Value) (value.Value, error) {
	if sym, ok := fun.(*value.Symbol); ok {
		cell := k.Globals.TopFB[sym]
		if cell == nil {
			return nil, errAt(kernelerr.UnboundFunctionOrOp, ctx, "no such function %s", sym.Name)
		}
		fun = cell.Cdr
	}

	fn, ok := fun.(*value.Function)
	if !ok {
		return nil, errAt(kernelerr.NotCallable, ctx, "%s is not a function", printOperator(fun))
	}

	if !value.ProperListp(args) {
		return nil, errAt(kernelerr.SyntaxError, ctx, "apply arglist %s is not a list", printOperator(args))
	}

	if fn.Interpreted {
		return k.interpFun(fn, args, ctx)
	}

	native := fn.Native
	if native == nil {
		return nil, kernelerr.Internal("native function has no Native descriptor")
	}

	var capturedEnv value.Env
	if native.EnvReceiving {
		capturedEnv = fn.CapturedEnv
	}

	if !native.Variadic {
		total := value.Length(args)
		if total > maxNativeArgs || total != native.MinArgs {
			return nil, errAt(kernelerr.ArityMismatch, ctx, "%s: wrong number of arguments", opNameOrDefault(fn))
		}
		return native.Fn(capturedEnv, value.ListToSlice(args), value.Nil{})
	}

	buf := make([]value.Value, 0, native.MinArgs)
	rest := args
	for len(buf) < native.MinArgs {
		c, ok := rest.(*value.Cons)
		if !ok {
			break
		}
		buf = append(buf, c.Car)
		rest = c.Cdr
	}
	if len(buf) < native.MinArgs {
		return nil, errAt(kernelerr.ArityMismatch, ctx, "%s: too few arguments", opNameOrDefault(fn))
	}
	return native.Fn(capturedEnv, buf, rest)
}

// ApplyIntrinsic is the (apply fun args) native: apply with a synthetic
// context, the way the host's apply_intrinsic wraps apply with cons(apply_s, nil).
func (k *Kernel) ApplyIntrinsic(fun, args value.Value) (value.Value, error) {
	return k.Apply(fun, args, value.NewCons(ApplySym, value.Nil{}))
}
