// Package kernel is the tree-walking interpreter core: the macro expander,
// the evaluator, the function-application engine and the place-update
// engine described by spec.md §4, built directly on packages value and env.
package kernel

import "github.com/leinonen/txr-kernel/value"

// The fixed operator symbols, interned once and compared by identity
// everywhere below — exactly the set spec.md §3 names.
var (
	QuoteSym      = value.Intern("quote")
	LetSym        = value.Intern("let")
	LambdaSym     = value.Intern("lambda")
	CallSym       = value.Intern("call")
	FunSym        = value.Intern("fun")
	CondSym       = value.Intern("cond")
	IfSym         = value.Intern("if")
	AndSym        = value.Intern("and")
	OrSym         = value.Intern("or")
	DefvarSym     = value.Intern("defvar")
	DefunSym      = value.Intern("defun")
	IncSym        = value.Intern("inc")
	DecSym        = value.Intern("dec")
	SetSym        = value.Intern("set")
	PushSym       = value.Intern("push")
	PopSym        = value.Intern("pop")
	GethashSym    = value.Intern("gethash")
	ListSym       = value.Intern("list")
	AppendSym     = value.Intern("append")
	ApplySym      = value.Intern("apply")
	QuasiquoteSym = value.Intern("quasiquote")
	UnquoteSym    = value.Intern("unquote")
	SpliceSym     = value.Intern("splice")
)

// OpHandler is a special-form handler: it receives the whole unevaluated
// form (including its own operator symbol in the car) and the current
// environment. k gives it back into Eval/Apply for the forms it must
// evaluate itself.
type OpHandler func(k *Kernel, form value.Value, e *Frame) (value.Value, error)

// Registry is the symbol -> special-form-handler mapping (spec.md §3's
// "Operator table"). It is a plain value rather than a package-level
// singleton so a program can run independent kernel instances.
type Registry struct {
	ops map[*value.Symbol]OpHandler
}

// NewRegistry builds and populates the operator table.
func NewRegistry() *Registry {
	r := &Registry{ops: make(map[*value.Symbol]OpHandler)}
	r.ops[QuoteSym] = opQuote
	r.ops[LetSym] = opLet
	r.ops[LambdaSym] = opLambda
	r.ops[CallSym] = opCall
	r.ops[FunSym] = opFun
	r.ops[CondSym] = opCond
	r.ops[IfSym] = opIf
	r.ops[AndSym] = opAnd
	r.ops[OrSym] = opOr
	r.ops[DefvarSym] = opDefvar
	r.ops[DefunSym] = opDefun
	r.ops[IncSym] = opModplace
	r.ops[DecSym] = opModplace
	r.ops[SetSym] = opModplace
	r.ops[PushSym] = opModplace
	r.ops[PopSym] = opModplace
	return r
}

func (r *Registry) Lookup(sym *value.Symbol) (OpHandler, bool) {
	h, ok := r.ops[sym]
	return h, ok
}
