package builtins

import (
	"github.com/leinonen/txr-kernel/kernel"
	"github.com/leinonen/txr-kernel/value"
)

func installMapOps(k *kernel.Kernel) {
	defVariadic(k, "mapcar", 1, func(_ value.Env, a []value.Value, rest value.Value) (value.Value, error) {
		fn := a[0]
		lists := append([]value.Value{}, value.ListToSlice(rest)...)
		var results []value.Value
		for {
			args := make([]value.Value, len(lists))
			done := false
			for i, l := range lists {
				c, ok := l.(*value.Cons)
				if !ok {
					done = true
					break
				}
				args[i] = c.Car
				lists[i] = c.Cdr
			}
			if done {
				break
			}
			r, err := k.Apply(fn, value.NewList(args...), rest)
			if err != nil {
				return nil, err
			}
			results = append(results, r)
		}
		return value.NewList(results...), nil
	})

	defVariadic(k, "mappend", 1, func(_ value.Env, a []value.Value, rest value.Value) (value.Value, error) {
		fn := a[0]
		lists := append([]value.Value{}, value.ListToSlice(rest)...)
		var pieces []value.Value
		for {
			args := make([]value.Value, len(lists))
			done := false
			for i, l := range lists {
				c, ok := l.(*value.Cons)
				if !ok {
					done = true
					break
				}
				args[i] = c.Car
				lists[i] = c.Cdr
			}
			if done {
				break
			}
			r, err := k.Apply(fn, value.NewList(args...), rest)
			if err != nil {
				return nil, err
			}
			pieces = append(pieces, r)
		}
		return value.Append(pieces...), nil
	})
}
