package kernel

import (
	"github.com/leinonen/txr-kernel/kernelerr"
	"github.com/leinonen/txr-kernel/value"
)

// opModplace implements spec.md §4.6 for set/inc/dec/push/pop: resolve a
// location, evaluate the increment (defaulting to 1), then apply the
// operator to the location in place.
func opModplace(k *Kernel, form value.Value, e *Frame) (value.Value, error) {
	op := value.Car(form).(*value.Symbol)
	place := value.Second(form)

	loc, err := resolvePlace(k, place, form, e, op.Name)
	if err != nil {
		return nil, err
	}

	incForm := value.Third(form)
	incVal, err := k.Eval(incForm, e, form)
	if err != nil {
		return nil, err
	}
	if value.Nullp(incVal) {
		incVal = value.NewInt(1)
	}

	switch op {
	case SetSym:
		loc.Cdr = incVal
		return incVal, nil
	case IncSym, DecSym:
		cur, ok := loc.Cdr.(value.Number)
		if !ok {
			return nil, errAt(kernelerr.BadPlace, form, "%s: place does not hold a number", op.Name)
		}
		incNum, ok := incVal.(value.Number)
		if !ok {
			return nil, errAt(kernelerr.BadPlace, form, "%s: increment is not a number", op.Name)
		}
		loc.Cdr = value.Plus(cur, incNum)
		return loc.Cdr, nil
	case PushSym:
		loc.Cdr = value.NewCons(incVal, loc.Cdr)
		return loc.Cdr, nil
	case PopSym:
		x := value.Car(loc.Cdr)
		loc.Cdr = value.Cdr(loc.Cdr)
		return x, nil
	}

	return nil, kernelerr.Internal("unrecognized place operator %s", op.Name)
}

// resolvePlace returns the mutable binding cell a place form designates:
// a bindable symbol's variable binding, or a (gethash h k d) cell.
func resolvePlace(k *Kernel, place value.Value, form value.Value, e *Frame, opName string) (*value.Cons, error) {
	if sym, ok := place.(*value.Symbol); ok {
		if !value.Bindable(sym) {
			return nil, errAt(kernelerr.NotBindable, form, "%s: %s is not a bindable symbol", opName, sym.Name)
		}
		binding := e.LookupVar(sym)
		if binding == nil {
			return nil, errAt(kernelerr.UnboundVariable, form, "unbound variable %s", sym.Name)
		}
		return binding, nil
	}

	if value.Consp(place) {
		if head, ok := value.Car(place).(*value.Symbol); ok && head == GethashSym {
			hv, err := k.Eval(value.Second(place), e, form)
			if err != nil {
				return nil, err
			}
			kv, err := k.Eval(value.Third(place), e, form)
			if err != nil {
				return nil, err
			}
			h, ok := hv.(*value.Hash)
			if !ok {
				return nil, errAt(kernelerr.BadPlace, form, "%s: %s is not a hash", opName, hv.String())
			}
			cell, inserted := h.GethashCell(kv, value.Nil{})
			if inserted {
				def, err := k.Eval(value.Fourth(place), e, form)
				if err != nil {
					return nil, err
				}
				cell.Cdr = def
			}
			return cell, nil
		}
		return nil, errAt(kernelerr.BadPlace, form, "%s: %s is not a recognized place form", opName, place.String())
	}

	return nil, errAt(kernelerr.BadPlace, form, "%s: %s is not a place", opName, place.String())
}
