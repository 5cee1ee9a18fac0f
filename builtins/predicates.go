package builtins

import (
	"github.com/leinonen/txr-kernel/kernel"
	"github.com/leinonen/txr-kernel/value"
)

func installPredicates(k *kernel.Kernel) {
	def(k, "atom", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return boolVal(value.Atom(a[0])), nil
	})
	def(k, "null", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return boolVal(value.Nullp(a[0])), nil
	})
	def(k, "consp", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return boolVal(value.Consp(a[0])), nil
	})
	def(k, "listp", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return boolVal(value.Listp(a[0])), nil
	})
	def(k, "proper-listp", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return boolVal(value.ProperListp(a[0])), nil
	})
	def(k, "numberp", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return boolVal(value.Numberp(a[0])), nil
	})
	def(k, "symbolp", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return boolVal(value.Symbolp(a[0])), nil
	})
	def(k, "keywordp", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return boolVal(value.Keywordp(a[0])), nil
	})
	def(k, "stringp", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		_, ok := a[0].(value.String)
		return boolVal(ok), nil
	})
	def(k, "functionp", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		_, ok := a[0].(*value.Function)
		return boolVal(ok), nil
	})
	def(k, "hashp", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		_, ok := a[0].(*value.Hash)
		return boolVal(ok), nil
	})

	def(k, "eq", 2, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return boolVal(value.Eq(a[0], a[1])), nil
	})
	def(k, "eql", 2, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return boolVal(value.Eql(a[0], a[1])), nil
	})
	def(k, "equal", 2, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return boolVal(value.Equal(a[0], a[1])), nil
	})
	def(k, "not", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return boolVal(!value.Truthy(a[0])), nil
	})
}
