package builtins

import (
	"github.com/leinonen/txr-kernel/kernel"
	"github.com/leinonen/txr-kernel/kernelerr"
	"github.com/leinonen/txr-kernel/value"
)

func asHash(v value.Value, opName string) (*value.Hash, error) {
	h, ok := v.(*value.Hash)
	if !ok {
		return nil, kernelerr.New(kernelerr.SyntaxError, "%s: %s is not a hash", opName, v.String())
	}
	return h, nil
}

func installHashOps(k *kernel.Kernel) {
	defVariadic(k, "make-hash", 0, func(_ value.Env, _ []value.Value, _ value.Value) (value.Value, error) {
		return value.NewHash(), nil
	})

	defVariadic(k, "gethash", 2, func(_ value.Env, a []value.Value, rest value.Value) (value.Value, error) {
		h, err := asHash(a[0], "gethash")
		if err != nil {
			return nil, err
		}
		if v, ok := h.Get(a[1]); ok {
			return v, nil
		}
		if def := value.Car(rest); !value.Nullp(def) || value.Consp(rest) {
			return def, nil
		}
		return value.Nil{}, nil
	})

	def(k, "sethash", 3, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		h, err := asHash(a[0], "sethash")
		if err != nil {
			return nil, err
		}
		h.Set(a[1], a[2])
		return a[2], nil
	})

	def(k, "pushhash", 3, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		h, err := asHash(a[0], "pushhash")
		if err != nil {
			return nil, err
		}
		cell, _ := h.GethashCell(a[1], value.Nil{})
		cell.Cdr = value.NewCons(a[2], cell.Cdr)
		return cell.Cdr, nil
	})

	def(k, "remhash", 2, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		h, err := asHash(a[0], "remhash")
		if err != nil {
			return nil, err
		}
		h.Remove(a[1])
		return value.T, nil
	})

	def(k, "hash-count", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		h, err := asHash(a[0], "hash-count")
		if err != nil {
			return nil, err
		}
		return value.NewInt(int64(h.Count())), nil
	})

	def(k, "hash-keys", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		h, err := asHash(a[0], "hash-keys")
		if err != nil {
			return nil, err
		}
		return value.NewList(h.Keys()...), nil
	})

	def(k, "get-hash-userdata", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		h, err := asHash(a[0], "get-hash-userdata")
		if err != nil {
			return nil, err
		}
		return h.Userdata(), nil
	})

	def(k, "set-hash-userdata", 2, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		h, err := asHash(a[0], "set-hash-userdata")
		if err != nil {
			return nil, err
		}
		h.SetUserdata(a[1])
		return a[1], nil
	})
}
