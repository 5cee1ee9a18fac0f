package builtins

import (
	"github.com/leinonen/txr-kernel/kernel"
	"github.com/leinonen/txr-kernel/value"
)

func installSearchOps(k *kernel.Kernel) {
	def(k, "memq", 2, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		for cur := a[1]; value.Consp(cur); cur = value.Cdr(cur) {
			if value.Eq(value.Car(cur), a[0]) {
				return cur, nil
			}
		}
		return value.Nil{}, nil
	})

	def(k, "memqual", 2, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		for cur := a[1]; value.Consp(cur); cur = value.Cdr(cur) {
			if value.Equal(value.Car(cur), a[0]) {
				return cur, nil
			}
		}
		return value.Nil{}, nil
	})

	def(k, "tree-find", 2, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return treeFind(a[0], a[1]), nil
	})

	def(k, "some", 2, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		for cur := a[1]; value.Consp(cur); cur = value.Cdr(cur) {
			r, err := k.Apply(a[0], value.NewList(value.Car(cur)), cur)
			if err != nil {
				return nil, err
			}
			if value.Truthy(r) {
				return r, nil
			}
		}
		return value.Nil{}, nil
	})

	def(k, "all", 2, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		var last value.Value = value.T
		for cur := a[1]; value.Consp(cur); cur = value.Cdr(cur) {
			r, err := k.Apply(a[0], value.NewList(value.Car(cur)), cur)
			if err != nil {
				return nil, err
			}
			if !value.Truthy(r) {
				return value.Nil{}, nil
			}
			last = r
		}
		return last, nil
	})

	def(k, "none", 2, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		for cur := a[1]; value.Consp(cur); cur = value.Cdr(cur) {
			r, err := k.Apply(a[0], value.NewList(value.Car(cur)), cur)
			if err != nil {
				return nil, err
			}
			if value.Truthy(r) {
				return value.Nil{}, nil
			}
		}
		return value.T, nil
	})
}

// treeFind walks a cons tree depth-first, returning the first subtree equal
// (structurally) to needle.
func treeFind(needle, tree value.Value) value.Value {
	if value.Equal(needle, tree) {
		return tree
	}
	if c, ok := tree.(*value.Cons); ok {
		if r := treeFind(needle, c.Car); !value.Nullp(r) {
			return r
		}
		return treeFind(needle, c.Cdr)
	}
	return value.Nil{}
}
