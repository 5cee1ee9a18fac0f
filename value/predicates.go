package value

// Atom reports whether v is anything other than a cons pair.
func Atom(v Value) bool {
	_, ok := v.(*Cons)
	return !ok
}

// Consp reports whether v is a cons pair.
func Consp(v Value) bool {
	_, ok := v.(*Cons)
	return ok
}

// Symbolp reports whether v is an interned symbol (Nil and Keyword are
// distinct variants and are not symbols).
func Symbolp(v Value) bool {
	_, ok := v.(*Symbol)
	return ok
}

// Keywordp reports whether v is an interned keyword.
func Keywordp(v Value) bool {
	_, ok := v.(*Keyword)
	return ok
}

// Nullp reports whether v is the empty list / nil value.
func Nullp(v Value) bool {
	_, ok := v.(Nil)
	return ok
}

// Numberp reports whether v is a number.
func Numberp(v Value) bool {
	_, ok := v.(Number)
	return ok
}

// Listp reports whether v is nil or a cons pair.
func Listp(v Value) bool {
	return Nullp(v) || Consp(v)
}

// ProperListp reports whether v is a chain of cons cells terminated by nil
// (no dotted tail, no cycle).
func ProperListp(v Value) bool {
	slow, fast := v, v
	for {
		if Nullp(fast) {
			return true
		}
		fc, ok := fast.(*Cons)
		if !ok {
			return false
		}
		fast = fc.Cdr
		if Nullp(fast) {
			return true
		}
		fc2, ok := fast.(*Cons)
		if !ok {
			return false
		}
		fast = fc2.Cdr
		slow = slow.(*Cons).Cdr
		if fast == Value(slow) {
			return false // cycle
		}
	}
}

// Bindable reports whether v is eligible to name a variable, parameter or
// function: a symbol that is not nil, not the canonical true, and not a
// keyword. Nil and Keyword are separate Go types from *Symbol, so only the
// canonical-true check needs to be explicit.
func Bindable(v Value) bool {
	sym, ok := v.(*Symbol)
	return ok && sym != T
}

// Truthy reports whether v counts as true for if/and/or/cond — everything
// except nil.
func Truthy(v Value) bool {
	return !Nullp(v)
}
