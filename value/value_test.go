package value

import "testing"

func TestInternIdentity(t *testing.T) {
	a := Intern("foo")
	b := Intern("foo")
	if a != b {
		t.Fatalf("Intern(%q) returned distinct pointers", "foo")
	}
	if Intern("bar") == a {
		t.Fatalf("distinct names interned to the same symbol")
	}
}

func TestEqIdentity(t *testing.T) {
	s := Intern("x")
	if !Eq(s, s) {
		t.Fatalf("a symbol is not eq to itself")
	}
	if Eq(NewCons(s, Nil{}), NewCons(s, Nil{})) {
		t.Fatalf("two distinct conses compared eq")
	}
}

func TestEqlExactness(t *testing.T) {
	if Eql(NewInt(1), NewFloat(1.0)) {
		t.Fatalf("1 and 1.0 should not be eql")
	}
	if !Equal(NewInt(1), NewFloat(1.0)) {
		t.Fatalf("1 and 1.0 should be equal")
	}
}

func TestEqualStructural(t *testing.T) {
	a := NewList(NewInt(1), NewInt(2), Intern("x"))
	b := NewList(NewInt(1), NewInt(2), Intern("x"))
	if Eq(a, b) {
		t.Fatalf("distinct list allocations should not be eq")
	}
	if !Equal(a, b) {
		t.Fatalf("structurally identical lists should be equal")
	}
}

func TestPlusPromotesToFloat(t *testing.T) {
	r := Plus(NewInt(1), NewInt(2))
	if r.IsFloat() || r.ToInt() != 3 {
		t.Fatalf("int+int should stay integer, got %v", r)
	}
	r2 := Plus(NewInt(1), NewFloat(2.5))
	if !r2.IsFloat() || r2.ToFloat() != 3.5 {
		t.Fatalf("int+float should promote to float, got %v", r2)
	}
}

func TestBindableRejectsKeywordNilAndT(t *testing.T) {
	if Bindable(Nil{}) {
		t.Fatalf("nil should not be bindable")
	}
	if Bindable(T) {
		t.Fatalf("t should not be bindable")
	}
	if Bindable(InternKeyword("foo")) {
		t.Fatalf("a keyword should not be bindable")
	}
	if !Bindable(Intern("x")) {
		t.Fatalf("an ordinary symbol should be bindable")
	}
}

func TestProperListpDetectsCycle(t *testing.T) {
	c := NewCons(NewInt(1), Nil{})
	c.Cdr = c
	if ProperListp(c) {
		t.Fatalf("a self-referential cons should not be a proper list")
	}
}

func TestHashGethashCellInsertsOnce(t *testing.T) {
	h := NewHash()
	k := Intern("key")
	cell1, inserted1 := h.GethashCell(k, NewInt(0))
	if !inserted1 {
		t.Fatalf("first GethashCell call should report inserted")
	}
	cell1.Cdr = NewInt(5)
	cell2, inserted2 := h.GethashCell(k, NewInt(99))
	if inserted2 {
		t.Fatalf("second GethashCell call should not report inserted")
	}
	if cell2.Cdr.(Number).ToInt() != 5 {
		t.Fatalf("GethashCell should return the same mutable cell, got %v", cell2.Cdr)
	}
}

func TestConsStringDottedPair(t *testing.T) {
	c := NewCons(NewInt(1), NewInt(2))
	if c.String() != "(1 . 2)" {
		t.Fatalf("dotted pair printed as %q", c.String())
	}
	proper := NewList(NewInt(1), NewInt(2))
	if proper.String() != "(1 2)" {
		t.Fatalf("proper list printed as %q", proper.String())
	}
}
