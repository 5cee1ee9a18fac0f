package kernel

import (
	"github.com/leinonen/txr-kernel/env"
	"github.com/leinonen/txr-kernel/kernelerr"
	"github.com/leinonen/txr-kernel/value"
)

// opQuote implements spec.md §4.3's quote: return the second element
// unevaluated.
func opQuote(k *Kernel, form value.Value, e *Frame) (value.Value, error) {
	return value.Second(form), nil
}

// opLet implements parallel-binding let: every init is evaluated in the
// outer environment, a bare symbol binds to nil, and the body runs in one
// fresh frame over the outer env.
func opLet(k *Kernel, form value.Value, e *Frame) (value.Value, error) {
	args := value.Cdr(form)
	vars := value.Car(args)
	body := value.Cdr(args)

	type pending struct {
		sym *value.Symbol
		val value.Value
	}
	var bound []pending

	for cur := vars; value.Consp(cur); cur = value.Cdr(cur) {
		item := value.Car(cur)
		var target value.Value
		var val value.Value = value.Nil{}

		if value.Consp(item) {
			if !value.Consp(value.Cdr(item)) {
				return nil, errAt(kernelerr.SyntaxError, form, "let: invalid syntax: %s", item.String())
			}
			target = value.Car(item)
			v, err := k.Eval(value.Second(item), e, form)
			if err != nil {
				return nil, err
			}
			val = v
		} else {
			target = item
		}

		sym, ok := target.(*value.Symbol)
		if !ok || !value.Bindable(sym) {
			return nil, errAt(kernelerr.NotBindable, form, "let: %s is not a bindable symbol", target.String())
		}
		bound = append(bound, pending{sym, val})
	}

	newFrame := env.MakeEnv(value.Nil{}, value.Nil{}, e)
	for _, b := range bound {
		env.EnvVBind(newFrame, b.sym, b.val)
	}
	return k.EvalProgn(body, newFrame, form)
}

// opLambda returns an interpreted function capturing the current
// environment.
func opLambda(k *Kernel, form value.Value, e *Frame) (value.Value, error) {
	return &value.Function{
		Interpreted: true,
		CapturedEnv: e,
		Params:      value.Second(form),
		Body:        value.Cdr(value.Cdr(form)),
	}, nil
}

// opCall evaluates its first subform to obtain a function, evaluates the
// rest as arguments, and applies.
func opCall(k *Kernel, form value.Value, e *Frame) (value.Value, error) {
	args := value.Cdr(form)
	funcForm := value.Car(args)
	fn, err := k.Eval(funcForm, e, form)
	if err != nil {
		return nil, err
	}
	argVals, err := k.evalArgs(value.Cdr(args), e, form)
	if err != nil {
		return nil, err
	}
	return k.Apply(fn, argVals, form)
}

// opFun returns the function value bound to the given symbol.
func opFun(k *Kernel, form value.Value, e *Frame) (value.Value, error) {
	name, ok := value.Second(form).(*value.Symbol)
	if !ok {
		return nil, errAt(kernelerr.NotBindable, form, "fun: %s is not a symbol", value.Second(form).String())
	}
	fbinding := e.LookupFun(name)
	if fbinding == nil {
		return nil, errAt(kernelerr.UnboundFunctionOrOp, form, "no function exists named %s", name.Name)
	}
	return fbinding.Cdr, nil
}

// opCond evaluates each clause's test in order, running and returning the
// first truthy clause's body, or nil if none match.
func opCond(k *Kernel, form value.Value, e *Frame) (value.Value, error) {
	for iter := value.Cdr(form); value.Consp(iter); iter = value.Cdr(iter) {
		pair := value.Car(iter)
		test, err := k.Eval(value.Car(pair), e, form)
		if err != nil {
			return nil, err
		}
		if value.Truthy(test) {
			return k.EvalProgn(value.Cdr(pair), e, pair)
		}
	}
	return value.Nil{}, nil
}

// opIf is the standard three-way conditional; a missing else yields nil.
func opIf(k *Kernel, form value.Value, e *Frame) (value.Value, error) {
	args := value.Cdr(form)
	cond, err := k.Eval(value.Car(args), e, form)
	if err != nil {
		return nil, err
	}
	if value.Truthy(cond) {
		return k.Eval(value.Second(args), e, form)
	}
	if value.Consp(value.Cdr(value.Cdr(args))) {
		return k.Eval(value.Third(args), e, form)
	}
	return value.Nil{}, nil
}

// opAnd short-circuits on the first falsy subform; with no subforms it
// returns t.
func opAnd(k *Kernel, form value.Value, e *Frame) (value.Value, error) {
	var result value.Value = value.T
	for args := value.Cdr(form); value.Consp(args); args = value.Cdr(args) {
		v, err := k.Eval(value.Car(args), e, form)
		if err != nil {
			return nil, err
		}
		if !value.Truthy(v) {
			return value.Nil{}, nil
		}
		result = v
	}
	return result, nil
}

// opOr returns the first truthy subform without evaluating the rest, or
// nil if none are truthy.
func opOr(k *Kernel, form value.Value, e *Frame) (value.Value, error) {
	for args := value.Cdr(form); value.Consp(args); args = value.Cdr(args) {
		v, err := k.Eval(value.Car(args), e, form)
		if err != nil {
			return nil, err
		}
		if value.Truthy(v) {
			return v, nil
		}
	}
	return value.Nil{}, nil
}

// opDefvar installs or overwrites a top-level variable binding.
func opDefvar(k *Kernel, form value.Value, e *Frame) (value.Value, error) {
	args := value.Cdr(form)
	sym, ok := value.Car(args).(*value.Symbol)
	if !ok || !value.Bindable(sym) {
		return nil, errAt(kernelerr.NotBindable, form, "defvar: %s is not a bindable symbol", value.Car(args).String())
	}
	val, err := k.Eval(value.Second(args), e, form)
	if err != nil {
		return nil, err
	}
	k.Globals.DefVar(sym, val)
	return sym, nil
}

// opDefun stores a new interpreted function into the top-level function
// table, capturing the lexical environment at the point of definition.
func opDefun(k *Kernel, form value.Value, e *Frame) (value.Value, error) {
	args := value.Cdr(form)
	name, ok := value.Car(args).(*value.Symbol)
	if !ok || !value.Bindable(name) {
		return nil, errAt(kernelerr.NotBindable, form, "defun: %s is not a bindable symbol", value.Car(args).String())
	}
	params := value.Second(args)
	if err := checkBindableParams(params, form, "defun"); err != nil {
		return nil, err
	}
	body := value.Cdr(value.Cdr(args))
	fn := &value.Function{
		Name:        name.Name,
		Interpreted: true,
		CapturedEnv: e,
		Params:      params,
		Body:        body,
	}
	k.Globals.DefFun(name, fn)
	return name, nil
}

func checkBindableParams(params value.Value, ctx value.Value, opName string) error {
	cur := params
	for value.Consp(cur) {
		if !value.Bindable(value.Car(cur)) {
			return errAt(kernelerr.NotBindable, ctx, "%s: parameter %s is not a bindable symbol", opName, value.Car(cur).String())
		}
		cur = value.Cdr(cur)
	}
	if !value.Nullp(cur) && !value.Bindable(cur) {
		return errAt(kernelerr.NotBindable, ctx, "%s: rest parameter %s is not a bindable symbol", opName, cur.String())
	}
	return nil
}
