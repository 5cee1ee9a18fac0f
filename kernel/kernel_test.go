package kernel_test

import (
	"testing"

	"github.com/leinonen/txr-kernel/builtins"
	"github.com/leinonen/txr-kernel/kernel"
	"github.com/leinonen/txr-kernel/reader"
	"github.com/leinonen/txr-kernel/value"
)

// evalSource parses, expands, and evaluates every top-level form in src
// against a shared environment, returning the value of the last one.
func evalSource(t *testing.T, k *kernel.Kernel, e *kernel.Frame, src string) value.Value {
	t.Helper()
	forms, err := reader.ReadAll("<test>", src)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	var result value.Value = value.Nil{}
	for _, form := range forms {
		expanded, err := kernel.Expand(form)
		if err != nil {
			t.Fatalf("expand error: %v", err)
		}
		result, err = k.Eval(expanded, e, form)
		if err != nil {
			t.Fatalf("eval error on %s: %v", form.String(), err)
		}
	}
	return result
}

func freshKernel() (*kernel.Kernel, *kernel.Frame) {
	k := kernel.New()
	builtins.Install(k)
	return k, k.RootEnv()
}

func TestSelfEvaluatingLiterals(t *testing.T) {
	k, e := freshKernel()
	cases := []string{"1", "2.5", `"hi"`, "nil"}
	for _, src := range cases {
		v := evalSource(t, k, e, src)
		if v == nil {
			t.Fatalf("eval(%s) returned nil Value", src)
		}
	}
}

func TestQuoteRoundtrip(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, "(quote (a b c))")
	if v.String() != "(a b c)" {
		t.Fatalf("quote roundtrip failed, got %s", v.String())
	}
}

func TestLetIsParallelNotSequential(t *testing.T) {
	k, e := freshKernel()
	// y's init refers to x: a parallel let evaluates it in the outer env,
	// where x is 10; a sequential let would see the inner x and yield 1.
	v := evalSource(t, k, e, "(let ((x 10)) (let ((x 1) (y x)) y))")
	if v.(value.Number).ToInt() != 10 {
		t.Fatalf("expected 10 (y's init sees the outer x), got %s", v.String())
	}
}

func TestLetBareSymbolBindsNil(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, "(let (x) x)")
	if !value.Nullp(v) {
		t.Fatalf("bare symbol in let should bind to nil, got %s", v.String())
	}
}

func TestAndShortCircuits(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, "(and 1 nil boom)")
	if !value.Nullp(v) {
		t.Fatalf("and should short-circuit to nil, got %s", v.String())
	}
	v2 := evalSource(t, k, e, "(and)")
	if v2 != value.T {
		t.Fatalf("(and) with no args should be t, got %s", v2.String())
	}
}

func TestOrShortCircuits(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, "(or nil 5 boom)")
	if v.(value.Number).ToInt() != 5 {
		t.Fatalf("or should return the first truthy value, got %s", v.String())
	}
}

func TestIfMissingElseIsNil(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, "(if nil 1)")
	if !value.Nullp(v) {
		t.Fatalf("if with no else and false test should be nil, got %s", v.String())
	}
}

func TestClosureCaptureSharesMutableCell(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, `
		(let ((counter 0))
		  (let ((bump (lambda () (inc counter 1))))
		    (call bump)
		    (call bump)
		    counter))`)
	if v.(value.Number).ToInt() != 2 {
		t.Fatalf("expected counter == 2 after two closure calls, got %s", v.String())
	}
}

func TestIncAndDecAreIdentical(t *testing.T) {
	// Per the recorded Open Question decision, dec behaves exactly like
	// inc (adds its increment) rather than subtracting.
	k, e := freshKernel()
	vInc := evalSource(t, k, e, "(let ((x 1)) (inc x 5) x)")
	vDec := evalSource(t, k, e, "(let ((x 1)) (dec x 5) x)")
	if vInc.(value.Number).ToInt() != 6 {
		t.Fatalf("inc should add, got %s", vInc.String())
	}
	if vDec.(value.Number).ToInt() != 6 {
		t.Fatalf("dec should behave identically to inc per the recorded decision, got %s", vDec.String())
	}
}

func TestPushPopDuality(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, `
		(let ((lst (quote (2 3))))
		  (push 1 lst)
		  (let ((popped (pop lst)))
		    (list popped lst)))`)
	if v.String() != "(1 (2 3))" {
		t.Fatalf("push then pop should round-trip, got %s", v.String())
	}
}

func TestSetOnPlace(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, "(let ((x 1)) (set x 99) x)")
	if v.(value.Number).ToInt() != 99 {
		t.Fatalf("set should overwrite the place, got %s", v.String())
	}
}

func TestQuasiquoteUnquote(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, "(let ((x 5)) `,x)")
	if v.(value.Number).ToInt() != 5 {
		t.Fatalf("`,x should evaluate as x, got %s", v.String())
	}
}

func TestQuasiquoteListConstruction(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, "(let ((b 2)) `(a ,b c))")
	if v.String() != "(a 2 c)" {
		t.Fatalf("expected (a 2 c), got %s", v.String())
	}
}

func TestQuasiquoteSplice(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, "(let ((xs (quote (2 3)))) `(1 ,@xs 4))")
	if v.String() != "(1 2 3 4)" {
		t.Fatalf("expected (1 2 3 4), got %s", v.String())
	}
}

func TestSpliceAtTopLevelErrors(t *testing.T) {
	_, err := kernel.Expand(value.NewList(kernel.QuasiquoteSym, value.NewList(kernel.SpliceSym, value.Intern("x"))))
	if err == nil {
		t.Fatalf("splice directly under quasiquote should error")
	}
}

func TestExpandIsIdempotentByPointer(t *testing.T) {
	form := value.NewList(kernel.IfSym, value.T, value.NewInt(1), value.NewInt(2))
	once, err := kernel.Expand(form)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := kernel.Expand(once)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if once != twice {
		t.Fatalf("re-expanding an already-expanded form should return the identical pointer")
	}
}

func TestCondReturnsNilWithNoMatch(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, "(cond (nil 1) (nil 2))")
	if !value.Nullp(v) {
		t.Fatalf("cond with no matching clause should be nil, got %s", v.String())
	}
}

func TestCondReturnsFirstMatch(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, "(cond (nil 1) (t 2) (t 3))")
	if v.(value.Number).ToInt() != 2 {
		t.Fatalf("cond should return the first matching clause's value, got %s", v.String())
	}
}

func TestDefunBindsNameInTopLevelFunctionTable(t *testing.T) {
	k, e := freshKernel()
	evalSource(t, k, e, "(defun identity (x) x)")
	sym := value.Intern("identity")
	if k.Globals.TopFB[sym] == nil {
		t.Fatalf("defun should install a top-level function binding")
	}
	v := evalSource(t, k, e, "(call (fun identity) 7)")
	if v.(value.Number).ToInt() != 7 {
		t.Fatalf("calling the defined function should return its argument, got %s", v.String())
	}
}

func TestLeftToRightArgumentEvaluationOrder(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, `
		(let ((log (quote ())))
		  (defun tap (tag)
		    (push tag log)
		    tag)
		  (list (call (fun tap) 1) (call (fun tap) 2) (call (fun tap) 3))
		  log)`)
	if v.String() != "(3 2 1)" {
		t.Fatalf("left-to-right evaluation should push 1 then 2 then 3, leaving (3 2 1) after pushing onto the front, got %s", v.String())
	}
}
