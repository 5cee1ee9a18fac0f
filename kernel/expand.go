package kernel

import (
	"github.com/leinonen/txr-kernel/kernelerr"
	"github.com/leinonen/txr-kernel/value"
)

// Expand implements spec.md §4.4's macro expansion pass. It walks a form
// once, rewriting quasiquote into list/append/quote calls and recursing
// into each operator's expandable subforms; it is purely syntactic and
// needs no environment. Unchanged subtrees are returned by the same
// pointer (expand_forms' structural-sharing optimization), so re-expanding
// an already-expanded form is a cheap no-op and the testable fixed-point
// property holds.
func Expand(form value.Value) (value.Value, error) {
	c, ok := form.(*value.Cons)
	if !ok {
		return form, nil
	}

	op, opIsSym := c.Car.(*value.Symbol)
	if !opIsSym {
		return expandArgsOnly(c)
	}

	switch op {
	case QuoteSym, FunSym:
		return form, nil
	case LetSym, LambdaSym:
		return expandBodyOnly(c)
	case DefunSym:
		return expandDefunForm(c)
	case DefvarSym:
		return expandDefvarForm(c)
	case CondSym:
		return expandCondForm(c)
	case IncSym, DecSym, SetSym, PushSym, PopSym:
		return expandModplaceForm(c)
	case QuasiquoteSym:
		return expandQuasiquote(value.Second(form))
	default:
		return expandArgsOnly(c)
	}
}

// expandEach expands every element along a list spine, leaving a non-cons
// tail (nil or a dotted atom) untouched. It returns the original cons
// unchanged, by pointer, when nothing below it changed.
func expandEach(list value.Value) (value.Value, error) {
	c, ok := list.(*value.Cons)
	if !ok {
		return list, nil
	}
	carE, err := Expand(c.Car)
	if err != nil {
		return nil, err
	}
	cdrE, err := expandEach(c.Cdr)
	if err != nil {
		return nil, err
	}
	if carE == c.Car && cdrE == c.Cdr {
		return c, nil
	}
	return value.Rlcp(value.NewCons(carE, cdrE), c), nil
}

// expandArgsOnly expands every argument of a form while leaving its
// operator/head position untouched: the behavior for call, if, and, or,
// ordinary function calls, and any operator this module does not special-
// case.
func expandArgsOnly(c *value.Cons) (value.Value, error) {
	newCdr, err := expandEach(c.Cdr)
	if err != nil {
		return nil, err
	}
	if newCdr == c.Cdr {
		return c, nil
	}
	return value.Rlcp(value.NewCons(c.Car, newCdr), c), nil
}

// expandBodyOnly handles the shared (op bindings-or-params body...) shape
// of let and lambda: the binding/parameter list is left untouched and only
// the body forms are expanded.
func expandBodyOnly(c *value.Cons) (value.Value, error) {
	rest, ok := c.Cdr.(*value.Cons)
	if !ok {
		return c, nil
	}
	newBody, err := expandEach(rest.Cdr)
	if err != nil {
		return nil, err
	}
	if newBody == rest.Cdr {
		return c, nil
	}
	newRest := value.Rlcp(value.NewCons(rest.Car, newBody), rest)
	return value.Rlcp(value.NewCons(c.Car, newRest), c), nil
}

// expandDefunForm expands only (defun name params BODY...): the name and
// parameter list are left untouched.
func expandDefunForm(c *value.Cons) (value.Value, error) {
	nameRest, ok := c.Cdr.(*value.Cons)
	if !ok {
		return c, nil
	}
	paramsRest, ok := nameRest.Cdr.(*value.Cons)
	if !ok {
		return c, nil
	}
	newBody, err := expandEach(paramsRest.Cdr)
	if err != nil {
		return nil, err
	}
	if newBody == paramsRest.Cdr {
		return c, nil
	}
	newParamsRest := value.Rlcp(value.NewCons(paramsRest.Car, newBody), paramsRest)
	newNameRest := value.Rlcp(value.NewCons(nameRest.Car, newParamsRest), nameRest)
	return value.Rlcp(value.NewCons(c.Car, newNameRest), c), nil
}

// expandDefvarForm expands only (defvar name INIT): the name is left
// untouched, the initializer is expanded.
func expandDefvarForm(c *value.Cons) (value.Value, error) {
	nameRest, ok := c.Cdr.(*value.Cons)
	if !ok {
		return c, nil
	}
	initRest, ok := nameRest.Cdr.(*value.Cons)
	if !ok {
		return c, nil
	}
	newInit, err := Expand(initRest.Car)
	if err != nil {
		return nil, err
	}
	if newInit == initRest.Car {
		return c, nil
	}
	newInitRest := value.Rlcp(value.NewCons(newInit, initRest.Cdr), initRest)
	newNameRest := value.Rlcp(value.NewCons(nameRest.Car, newInitRest), nameRest)
	return value.Rlcp(value.NewCons(c.Car, newNameRest), c), nil
}

// expandCondForm expands every test and body form inside every clause.
func expandCondForm(c *value.Cons) (value.Value, error) {
	newClauses, err := expandCondClauses(c.Cdr)
	if err != nil {
		return nil, err
	}
	if newClauses == c.Cdr {
		return c, nil
	}
	return value.Rlcp(value.NewCons(c.Car, newClauses), c), nil
}

func expandCondClauses(list value.Value) (value.Value, error) {
	c, ok := list.(*value.Cons)
	if !ok {
		return list, nil
	}
	clauseE, err := expandEach(c.Car)
	if err != nil {
		return nil, err
	}
	restE, err := expandCondClauses(c.Cdr)
	if err != nil {
		return nil, err
	}
	if clauseE == c.Car && restE == c.Cdr {
		return c, nil
	}
	return value.Rlcp(value.NewCons(clauseE, restE), c), nil
}

// expandModplaceForm expands (op PLACE INCREMENT...): the place goes
// through expandPlace, the increment (if present) through the ordinary
// expander.
func expandModplaceForm(c *value.Cons) (value.Value, error) {
	rest, ok := c.Cdr.(*value.Cons)
	if !ok {
		return c, nil
	}
	newPlace, err := expandPlace(rest.Car, c)
	if err != nil {
		return nil, err
	}
	newIncr, err := expandEach(rest.Cdr)
	if err != nil {
		return nil, err
	}
	if newPlace == rest.Car && newIncr == rest.Cdr {
		return c, nil
	}
	newRest := value.Rlcp(value.NewCons(newPlace, newIncr), rest)
	return value.Rlcp(value.NewCons(c.Car, newRest), c), nil
}

// expandPlace implements spec.md §4.6's expand-place: only a bindable
// symbol or a (gethash h k d) form is a recognized place.
func expandPlace(place value.Value, ctx value.Value) (value.Value, error) {
	if sym, ok := place.(*value.Symbol); ok {
		if !value.Bindable(sym) {
			return nil, errAt(kernelerr.BadPlace, ctx, "%s is not a bindable symbol", sym.Name)
		}
		return place, nil
	}

	if c, ok := place.(*value.Cons); ok {
		if head, ok2 := c.Car.(*value.Symbol); ok2 && head == GethashSym {
			newArgs, err := expandEach(c.Cdr)
			if err != nil {
				return nil, err
			}
			if newArgs == c.Cdr {
				return place, nil
			}
			return value.Rlcp(value.NewCons(c.Car, newArgs), c), nil
		}
	}

	return nil, errAt(kernelerr.BadPlace, ctx, "%s is not a recognized place form", printOperator(place))
}
