package builtins_test

import (
	"testing"

	"github.com/leinonen/txr-kernel/builtins"
	"github.com/leinonen/txr-kernel/kernel"
	"github.com/leinonen/txr-kernel/reader"
	"github.com/leinonen/txr-kernel/value"
)

// evalSource parses, expands, and evaluates every top-level form in src
// against a shared environment with the native library installed,
// returning the value of the last one.
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

func TestFactorialViaRecursiveDefun(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, `
		(defun fact (n)
		  (if (<= n 1)
		      1
		      (* n (call (fun fact) (- n 1)))))
		(call (fun fact) 6)`)
	if v.(value.Number).ToInt() != 720 {
		t.Fatalf("expected 720, got %s", v.String())
	}
}

func TestClosureMutationViaIncAndSet(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, `
		(let ((total 0))
		  (let ((add (lambda (n) (inc total n))))
		    (call add 3)
		    (call add 4)
		    (set total (+ total 100))
		    total))`)
	if v.(value.Number).ToInt() != 107 {
		t.Fatalf("expected 107, got %s", v.String())
	}
}

func TestQuasiquoteSpliceWithListAppend(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, "(let ((xs (list 2 3))) `(1 ,@xs ,@(list 4 5) 6))")
	if v.String() != "(1 2 3 4 5 6)" {
		t.Fatalf("expected (1 2 3 4 5 6), got %s", v.String())
	}
}

func TestHashIncOnGethashPlace(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, `
		(let ((h (make-hash)))
		  (inc (gethash h (quote count) 0) 1)
		  (inc (gethash h (quote count) 0) 1)
		  (inc (gethash h (quote count) 0) 1)
		  (gethash h (quote count) 0))`)
	if v.(value.Number).ToInt() != 3 {
		t.Fatalf("expected 3, got %s", v.String())
	}
	if sethashVal := evalSource(t, k, e, `
		(let ((h (make-hash)))
		  (sethash h (quote a) 1)
		  (hash-count h))`); sethashVal.(value.Number).ToInt() != 1 {
		t.Fatalf("expected hash-count 1, got %s", sethashVal.String())
	}
}

func TestCondDispatchesOnFirstTruthyClause(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, `
		(defun classify (n)
		  (cond
		    ((< n 0) (quote negative))
		    ((eq n 0) (quote zero))
		    (t (quote positive))))
		(list (call (fun classify) -5) (call (fun classify) 0) (call (fun classify) 5))`)
	if v.String() != "(negative zero positive)" {
		t.Fatalf("expected (negative zero positive), got %s", v.String())
	}
}

func TestMapcarOverMultipleLists(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, "(mapcar (fun +) (list 1 2 3) (list 10 20 30))")
	if v.String() != "(11 22 33)" {
		t.Fatalf("expected (11 22 33), got %s", v.String())
	}
}

func TestMappendConcatenatesResults(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, "(mappend (lambda (x) (list x x)) (list 1 2 3))")
	if v.String() != "(1 1 2 2 3 3)" {
		t.Fatalf("expected (1 1 2 2 3 3), got %s", v.String())
	}
}

func TestSomeAllNone(t *testing.T) {
	k, e := freshKernel()
	isEven := "(lambda (x) (eq (mod x 2) 0))"
	v := evalSource(t, k, e, "(some "+isEven+" (list 1 3 4 5))")
	if !value.Truthy(v) {
		t.Fatalf("some should find the even 4")
	}
	v2 := evalSource(t, k, e, "(all "+isEven+" (list 2 4 6))")
	if !value.Truthy(v2) {
		t.Fatalf("all should be true when every element is even")
	}
	v3 := evalSource(t, k, e, "(none "+isEven+" (list 1 3 5))")
	if !value.Truthy(v3) {
		t.Fatalf("none should be true when no element is even")
	}
	v4 := evalSource(t, k, e, "(all "+isEven+" (list 2 3 4))")
	if value.Truthy(v4) {
		t.Fatalf("all should be false when one element is odd")
	}
}

func TestTreeFindLocatesNestedElement(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, "(tree-find 3 (list 1 (list 2 3) 4))")
	if v.String() != "3" {
		t.Fatalf("expected to find 3, got %s", v.String())
	}
	v2 := evalSource(t, k, e, "(tree-find 99 (list 1 (list 2 3) 4))")
	if !value.Nullp(v2) {
		t.Fatalf("expected nil when the element is absent, got %s", v2.String())
	}
}

func TestMemqAndMemqual(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, `(memq (quote b) (list (quote a) (quote b) (quote c)))`)
	if v.String() != "(b c)" {
		t.Fatalf("expected (b c), got %s", v.String())
	}
	v2 := evalSource(t, k, e, `(memqual "b" (list "a" "b" "c"))`)
	if v2.String() != `("b" "c")` {
		t.Fatalf(`expected ("b" "c"), got %s`, v2.String())
	}
}

func TestRegexMatchAndSearch(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, `(match-regex "hello world" #/hel+o/)`)
	if v.(value.Number).ToInt() != 5 {
		t.Fatalf("expected match length 5, got %s", v.String())
	}
	v2 := evalSource(t, k, e, `(match-regex "xhello" #/hel+o/)`)
	if !value.Nullp(v2) {
		t.Fatalf("match-regex should require the match to begin at index 0, got %s", v2.String())
	}
	v3 := evalSource(t, k, e, `(search-regex "xhello" #/hel+o/)`)
	if v3.(*value.Cons).Car.(value.Number).ToInt() != 1 {
		t.Fatalf("search-regex should locate the match at index 1, got %s", v3.String())
	}
}

func TestFormatDirectives(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, `(format "~a plus ~a is ~a~%" 1 2 3)`)
	if v.String() != `"1 plus 2 is 3\n"` {
		t.Fatalf("unexpected format output: %s", v.String())
	}
}

func TestListAndAppendVariadic(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, "(list 1 2 3)")
	if v.String() != "(1 2 3)" {
		t.Fatalf("expected (1 2 3), got %s", v.String())
	}
	v2 := evalSource(t, k, e, "(append (list 1 2) (list 3 4) (list 5))")
	if v2.String() != "(1 2 3 4 5)" {
		t.Fatalf("expected (1 2 3 4 5), got %s", v2.String())
	}
	v3 := evalSource(t, k, e, "(append)")
	if !value.Nullp(v3) {
		t.Fatalf("append with no arguments should be nil, got %s", v3.String())
	}
}

func TestEvalIntrinsicReEvaluatesAgainstRootEnv(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, "(eval (list (quote +) 1 2 3))")
	if v.(value.Number).ToInt() != 6 {
		t.Fatalf("expected 6, got %s", v.String())
	}
}

func TestApplyIntrinsic(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, "(apply (fun +) (list 1 2 3 4))")
	if v.(value.Number).ToInt() != 10 {
		t.Fatalf("expected 10, got %s", v.String())
	}
}

func TestFlattenAndReverse(t *testing.T) {
	k, e := freshKernel()
	v := evalSource(t, k, e, "(flatten (list 1 (list 2 (list 3 4)) 5))")
	if v.String() != "(1 2 3 4 5)" {
		t.Fatalf("expected (1 2 3 4 5), got %s", v.String())
	}
	v2 := evalSource(t, k, e, "(reverse (list 1 2 3))")
	if v2.String() != "(3 2 1)" {
		t.Fatalf("expected (3 2 1), got %s", v2.String())
	}
}
