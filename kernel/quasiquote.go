package kernel

import (
	"github.com/leinonen/txr-kernel/kernelerr"
	"github.com/leinonen/txr-kernel/value"
)

// expandQuasiquote implements spec.md §4.4's expand-qquote, rewriting a
// quasiquoted template into list/append/quote calls that reconstruct it at
// eval time.
//
//   nil                     -> nil
//   atom a                  -> (quote a)
//   (splice x)   at the top -> error: splice only valid inside a list
//   (unquote x)             -> expand(x)   (unquote escapes the template)
//   (f . r)                 -> merge f' and r', computed as below
//
// f' (the rewrite of one list element f) is:
//   (splice x)     -> expand(x)                      contributes elements directly
//   (unquote x)    -> (list (expand x))
//   (quote x)      -> (quote (x))                     preserved as literal data
//   (quasiquote x) -> (list <x rewritten twice>)       nested template
//   anything else  -> (list <f rewritten>)
//
// r' is expand-qquote(r); when r' is itself an (append ...) call its
// arguments are folded into the outer append rather than nesting one
// append inside another.
func expandQuasiquote(form value.Value) (value.Value, error) {
	if value.Nullp(form) {
		return value.Nil{}, nil
	}

	c, isCons := form.(*value.Cons)
	if !isCons {
		return value.NewList(QuoteSym, form), nil
	}

	if head, ok := c.Car.(*value.Symbol); ok {
		switch head {
		case SpliceSym:
			return nil, kernelerr.New(kernelerr.SyntaxError, "splice is not valid outside of a list position")
		case UnquoteSym:
			return Expand(value.Second(form))
		}
	}

	fPrime, err := qqElement(c.Car)
	if err != nil {
		return nil, err
	}
	rPrime, err := expandQuasiquote(c.Cdr)
	if err != nil {
		return nil, err
	}

	var result value.Value
	if rc, ok := rPrime.(*value.Cons); ok && rc.Car == AppendSym {
		result = value.NewCons(AppendSym, value.NewCons(fPrime, rc.Cdr))
	} else {
		result = value.NewList(AppendSym, fPrime, rPrime)
	}
	return value.Rlcp(result, c), nil
}

// qqElement computes f' for one list element of a quasiquote template.
func qqElement(f value.Value) (value.Value, error) {
	if c, ok := f.(*value.Cons); ok {
		if head, ok2 := c.Car.(*value.Symbol); ok2 {
			switch head {
			case SpliceSym:
				return Expand(value.Second(f))
			case UnquoteSym:
				inner, err := Expand(value.Second(f))
				if err != nil {
					return nil, err
				}
				return value.NewList(ListSym, inner), nil
			case QuoteSym:
				return value.NewList(QuoteSym, value.NewList(value.Second(f))), nil
			case QuasiquoteSym:
				once, err := expandQuasiquote(value.Second(f))
				if err != nil {
					return nil, err
				}
				twice, err := expandQuasiquote(once)
				if err != nil {
					return nil, err
				}
				return value.NewList(ListSym, twice), nil
			}
		}
	}
	rewritten, err := expandQuasiquote(f)
	if err != nil {
		return nil, err
	}
	return value.NewList(ListSym, rewritten), nil
}
