package builtins

import (
	"github.com/leinonen/txr-kernel/kernel"
	"github.com/leinonen/txr-kernel/kernelerr"
	"github.com/leinonen/txr-kernel/value"
)

func installListOps(k *kernel.Kernel) {
	def(k, "cons", 2, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return value.NewCons(a[0], a[1]), nil
	})
	def(k, "car", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return value.Car(a[0]), nil
	})
	def(k, "cdr", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return value.Cdr(a[0]), nil
	})
	def(k, "first", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return value.Car(a[0]), nil
	})
	def(k, "rest", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return value.Cdr(a[0]), nil
	})
	def(k, "second", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return value.Second(a[0]), nil
	})
	def(k, "third", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return value.Third(a[0]), nil
	})
	def(k, "fourth", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return value.Fourth(a[0]), nil
	})
	def(k, "fifth", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return value.Fifth(a[0]), nil
	})
	def(k, "sixth", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return value.Sixth(a[0]), nil
	})

	defVariadic(k, "list", 0, func(_ value.Env, _ []value.Value, rest value.Value) (value.Value, error) {
		return rest, nil
	})

	defVariadic(k, "append", 0, func(_ value.Env, _ []value.Value, rest value.Value) (value.Value, error) {
		return value.Append(value.ListToSlice(rest)...), nil
	})

	def(k, "copy-list", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return value.NewList(value.ListToSlice(a[0])...), nil
	})

	def(k, "length", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		if !value.ProperListp(a[0]) {
			return nil, kernelerr.New(kernelerr.SyntaxError, "length: %s is not a proper list", a[0].String())
		}
		return value.NewInt(int64(value.Length(a[0]))), nil
	})

	def(k, "reverse", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		elems := value.ListToSlice(a[0])
		out := make([]value.Value, len(elems))
		for i, v := range elems {
			out[len(elems)-1-i] = v
		}
		return value.NewList(out...), nil
	})

	def(k, "nreverse", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		var prev value.Value = value.Nil{}
		cur := a[0]
		for {
			c, ok := cur.(*value.Cons)
			if !ok {
				break
			}
			next := c.Cdr
			c.Cdr = prev
			prev = c
			cur = next
		}
		return prev, nil
	})

	def(k, "ldiff", 2, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		var out []value.Value
		cur := a[0]
		for cur != value.Value(a[1]) {
			c, ok := cur.(*value.Cons)
			if !ok {
				break
			}
			out = append(out, c.Car)
			cur = c.Cdr
		}
		return value.NewList(out...), nil
	})

	def(k, "flatten", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return value.NewList(flattenInto(nil, a[0])...), nil
	})
}

func flattenInto(acc []value.Value, v value.Value) []value.Value {
	if value.Nullp(v) {
		return acc
	}
	if c, ok := v.(*value.Cons); ok {
		acc = flattenInto(acc, c.Car)
		acc = flattenInto(acc, c.Cdr)
		return acc
	}
	return append(acc, v)
}
