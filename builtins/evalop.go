package builtins

import (
	"github.com/leinonen/txr-kernel/kernel"
	"github.com/leinonen/txr-kernel/value"
)

// installEvalOp registers the eval intrinsic (re-expand then evaluate a
// form against the top-level environment, the way a native call has no
// access to its caller's lexical scope) and apply (the (apply fun args)
// native wired directly onto Kernel.ApplyIntrinsic).
func installEvalOp(k *kernel.Kernel) {
	def(k, "eval", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		expanded, err := kernel.Expand(a[0])
		if err != nil {
			return nil, err
		}
		return k.Eval(expanded, k.RootEnv(), a[0])
	})

	def(k, "apply", 2, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		return k.ApplyIntrinsic(a[0], a[1])
	})
}
