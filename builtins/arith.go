package builtins

import (
	"strconv"

	"github.com/leinonen/txr-kernel/kernel"
	"github.com/leinonen/txr-kernel/kernelerr"
	"github.com/leinonen/txr-kernel/value"
)

func asNumber(v value.Value, opName string) (value.Number, error) {
	n, ok := v.(value.Number)
	if !ok {
		return value.Number{}, kernelerr.New(kernelerr.SyntaxError, "%s: %s is not a number", opName, v.String())
	}
	return n, nil
}

func installArithOps(k *kernel.Kernel) {
	defVariadic(k, "+", 0, func(_ value.Env, _ []value.Value, rest value.Value) (value.Value, error) {
		acc := value.NewInt(0)
		for cur := rest; value.Consp(cur); cur = value.Cdr(cur) {
			n, err := asNumber(value.Car(cur), "+")
			if err != nil {
				return nil, err
			}
			acc = value.Plus(acc, n)
		}
		return acc, nil
	})

	defVariadic(k, "-", 1, func(_ value.Env, a []value.Value, rest value.Value) (value.Value, error) {
		first, err := asNumber(a[0], "-")
		if err != nil {
			return nil, err
		}
		elems := value.ListToSlice(rest)
		if len(elems) == 0 {
			return negate(first), nil
		}
		acc := first
		for _, v := range elems {
			n, err := asNumber(v, "-")
			if err != nil {
				return nil, err
			}
			acc = value.Plus(acc, negate(n))
		}
		return acc, nil
	})

	defVariadic(k, "*", 0, func(_ value.Env, _ []value.Value, rest value.Value) (value.Value, error) {
		intAcc := int64(1)
		floatAcc := 1.0
		isFloat := false
		for cur := rest; value.Consp(cur); cur = value.Cdr(cur) {
			n, err := asNumber(value.Car(cur), "*")
			if err != nil {
				return nil, err
			}
			if n.IsFloat() {
				isFloat = true
			}
			intAcc *= n.ToInt()
			floatAcc *= n.ToFloat()
		}
		if isFloat {
			return value.NewFloat(floatAcc), nil
		}
		return value.NewInt(intAcc), nil
	})

	def(k, "trunc", 2, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		x, err := asNumber(a[0], "trunc")
		if err != nil {
			return nil, err
		}
		y, err := asNumber(a[1], "trunc")
		if err != nil {
			return nil, err
		}
		if y.ToInt() == 0 {
			return nil, kernelerr.New(kernelerr.SyntaxError, "trunc: division by zero")
		}
		return value.NewInt(x.ToInt() / y.ToInt()), nil
	})

	def(k, "mod", 2, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		x, err := asNumber(a[0], "mod")
		if err != nil {
			return nil, err
		}
		y, err := asNumber(a[1], "mod")
		if err != nil {
			return nil, err
		}
		if y.ToInt() == 0 {
			return nil, kernelerr.New(kernelerr.SyntaxError, "mod: division by zero")
		}
		return value.NewInt(x.ToInt() % y.ToInt()), nil
	})

	def(k, ">", 2, cmpOp(">", func(a, b float64) bool { return a > b }))
	def(k, "<", 2, cmpOp("<", func(a, b float64) bool { return a < b }))
	def(k, ">=", 2, cmpOp(">=", func(a, b float64) bool { return a >= b }))
	def(k, "<=", 2, cmpOp("<=", func(a, b float64) bool { return a <= b }))

	defVariadic(k, "max", 1, func(_ value.Env, a []value.Value, rest value.Value) (value.Value, error) {
		best, err := asNumber(a[0], "max")
		if err != nil {
			return nil, err
		}
		for _, v := range value.ListToSlice(rest) {
			n, err := asNumber(v, "max")
			if err != nil {
				return nil, err
			}
			if n.ToFloat() > best.ToFloat() {
				best = n
			}
		}
		return best, nil
	})

	defVariadic(k, "min", 1, func(_ value.Env, a []value.Value, rest value.Value) (value.Value, error) {
		best, err := asNumber(a[0], "min")
		if err != nil {
			return nil, err
		}
		for _, v := range value.ListToSlice(rest) {
			n, err := asNumber(v, "min")
			if err != nil {
				return nil, err
			}
			if n.ToFloat() < best.ToFloat() {
				best = n
			}
		}
		return best, nil
	})

	def(k, "int-str", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		s, ok := a[0].(value.String)
		if !ok {
			return nil, kernelerr.New(kernelerr.SyntaxError, "int-str: %s is not a string", a[0].String())
		}
		n, err := strconv.ParseInt(string(s), 10, 64)
		if err != nil {
			return value.Nil{}, nil
		}
		return value.NewInt(n), nil
	})
}

func negate(n value.Number) value.Number {
	if n.IsFloat() {
		return value.NewFloat(-n.ToFloat())
	}
	return value.NewInt(-n.ToInt())
}

func cmpOp(name string, cmp func(a, b float64) bool) value.NativeFn {
	return func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		x, err := asNumber(a[0], name)
		if err != nil {
			return nil, err
		}
		y, err := asNumber(a[1], name)
		if err != nil {
			return nil, err
		}
		return boolVal(cmp(x.ToFloat(), y.ToFloat())), nil
	}
}
