package kernel

import (
	"github.com/leinonen/txr-kernel/kernelerr"
	"github.com/leinonen/txr-kernel/value"
)

func posOf(ctx value.Value) (string, int) {
	sl, ok := ctx.(value.SourceLocated)
	if !ok {
		return "", 0
	}
	p := sl.GetPosition()
	return p.File, p.Line
}

func errAt(kind kernelerr.Kind, ctx value.Value, format string, args ...any) error {
	file, line := posOf(ctx)
	return kernelerr.NewAt(kind, file, line, format, args...)
}

// Eval implements spec.md §4.2's four dispatch rules. ctx is the
// containing form, used only to locate errors.
func (k *Kernel) Eval(form value.Value, e *Frame, ctx value.Value) (value.Value, error) {
	switch f := form.(type) {
	case value.Nil:
		return value.Nil{}, nil

	case *value.Symbol:
		if !value.Bindable(f) {
			return f, nil
		}
		binding := e.LookupVar(f)
		if binding == nil {
			return nil, errAt(kernelerr.UnboundVariable, ctx, "unbound variable %s", f.Name)
		}
		return binding.Cdr, nil

	case *value.Cons:
		op := f.Car
		if _, isRegex := op.(*value.Regex); isRegex {
			return op, nil
		}

		opSym, opIsSym := op.(*value.Symbol)
		if opIsSym {
			if fbinding := e.LookupFun(opSym); fbinding != nil {
				args, err := k.evalArgs(f.Cdr, e, f)
				if err != nil {
					return nil, err
				}
				return k.Apply(fbinding.Cdr, args, f)
			}
			if handler, ok := k.Registry.Lookup(opSym); ok {
				return handler(k, f, e)
			}
		}
		return nil, errAt(kernelerr.UnboundFunctionOrOp, f, "no such function or operator: %s", printOperator(op))

	default:
		return form, nil
	}
}

func printOperator(op value.Value) string {
	if op == nil {
		return "nil"
	}
	return op.String()
}

func (k *Kernel) evalArgs(forms value.Value, e *Frame, ctx value.Value) (value.Value, error) {
	var collected []value.Value
	for {
		c, ok := forms.(*value.Cons)
		if !ok {
			break
		}
		v, err := k.Eval(c.Car, e, ctx)
		if err != nil {
			return nil, err
		}
		collected = append(collected, v)
		forms = c.Cdr
	}
	return value.NewList(collected...), nil
}

// EvalProgn evaluates each form in order, returning the value of the last
// one (or nil if forms is empty).
func (k *Kernel) EvalProgn(forms value.Value, e *Frame, ctx value.Value) (value.Value, error) {
	var result value.Value = value.Nil{}
	for {
		c, ok := forms.(*value.Cons)
		if !ok {
			return result, nil
		}
		v, err := k.Eval(c.Car, e, ctx)
		if err != nil {
			return nil, err
		}
		result = v
		forms = c.Cdr
	}
}
