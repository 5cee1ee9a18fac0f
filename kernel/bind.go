package kernel

import (
	"github.com/leinonen/txr-kernel/env"
	"github.com/leinonen/txr-kernel/kernelerr"
	"github.com/leinonen/txr-kernel/value"
)

// bindArgs implements spec.md §4.5.1: walk (param, arg) pairs in lockstep,
// binding each into a fresh frame over capturedEnv; handle a trailing
// rest-parameter, or raise too-few/too-many-arguments.
func bindArgs(capturedEnv *Frame, params, args value.Value, ctxForm value.Value, opName string) (*Frame, error) {
	fnEnv := env.MakeEnv(value.Nil{}, value.Nil{}, capturedEnv)

	p, a := params, args
	for {
		pc, pok := p.(*value.Cons)
		ac, aok := a.(*value.Cons)
		if !pok || !aok {
			break
		}
		param := pc.Car
		sym, ok := param.(*value.Symbol)
		if !ok || !value.Bindable(sym) {
			return nil, errAt(kernelerr.NotBindable, ctxForm, "%s: %s is not a bindable symbol", opName, param.String())
		}
		env.EnvVBind(fnEnv, sym, ac.Car)
		p, a = pc.Cdr, ac.Cdr
	}

	switch {
	case value.Bindable(p):
		env.EnvVBind(fnEnv, p.(*value.Symbol), a)
	case value.Consp(p):
		return nil, errAt(kernelerr.ArityMismatch, ctxForm, "%s: too few arguments", opName)
	case !value.Nullp(a):
		return nil, errAt(kernelerr.ArityMismatch, ctxForm, "%s: too many arguments", opName)
	}

	return fnEnv, nil
}

// interpFun binds fn's parameters to args over its captured environment
// and evaluates its body in sequence.
func (k *Kernel) interpFun(fn *value.Function, args value.Value, ctxForm value.Value) (value.Value, error) {
	capturedFrame, ok := fn.CapturedEnv.(*Frame)
	if !ok {
		return nil, kernelerr.Internal("function's captured environment is not a *kernel.Frame")
	}
	fnEnv, err := bindArgs(capturedFrame, fn.Params, args, ctxForm, opNameOrDefault(fn))
	if err != nil {
		return nil, err
	}
	return k.EvalProgn(fn.Body, fnEnv, fn.Body)
}

func opNameOrDefault(fn *value.Function) string {
	if fn.Name != "" {
		return fn.Name
	}
	return "lambda"
}
