package value

// Car returns the car of v, or Nil{} if v is nil — the permissive
// behaviour the kernel relies on throughout (car/cdr of nil is nil).
func Car(v Value) Value {
	if c, ok := v.(*Cons); ok {
		return c.Car
	}
	return Nil{}
}

// Cdr returns the cdr of v, or Nil{} if v is nil.
func Cdr(v Value) Value {
	if c, ok := v.(*Cons); ok {
		return c.Cdr
	}
	return Nil{}
}

// SetCar mutates the car of a cons in place.
func SetCar(v Value, newCar Value) {
	if c, ok := v.(*Cons); ok {
		c.Car = newCar
	}
}

// SetCdr mutates the cdr of a cons in place.
func SetCdr(v Value, newCdr Value) {
	if c, ok := v.(*Cons); ok {
		c.Cdr = newCdr
	}
}

func Second(v Value) Value { return Car(Cdr(v)) }
func Third(v Value) Value  { return Car(Cdr(Cdr(v))) }
func Fourth(v Value) Value { return Car(Cdr(Cdr(Cdr(v)))) }
func Fifth(v Value) Value  { return Car(Cdr(Cdr(Cdr(Cdr(v))))) }
func Sixth(v Value) Value  { return Car(Cdr(Cdr(Cdr(Cdr(Cdr(v)))))) }

// NewList builds a proper list out of elements.
func NewList(elements ...Value) Value {
	var result Value = Nil{}
	for i := len(elements) - 1; i >= 0; i-- {
		result = NewCons(elements[i], result)
	}
	return result
}

// ListToSlice flattens a proper list into a Go slice. Stops at the first
// non-cons cdr (treats a dotted tail as the end of the proper portion).
func ListToSlice(v Value) []Value {
	var out []Value
	for {
		c, ok := v.(*Cons)
		if !ok {
			return out
		}
		out = append(out, c.Car)
		v = c.Cdr
	}
}

// Length returns the number of elements in a proper list.
func Length(v Value) int {
	n := 0
	for {
		c, ok := v.(*Cons)
		if !ok {
			return n
		}
		n++
		v = c.Cdr
	}
}

// Append concatenates zero or more lists; the final argument may be an
// improper (dotted) tail, matching Lisp's append.
func Append(lists ...Value) Value {
	if len(lists) == 0 {
		return Nil{}
	}
	if len(lists) == 1 {
		return lists[0]
	}
	head := ListToSlice(lists[0])
	rest := Append(lists[1:]...)
	result := rest
	for i := len(head) - 1; i >= 0; i-- {
		result = NewCons(head[i], result)
	}
	return result
}

// Rlcp ("relocate position") stamps newForm with sourceForm's source
// position, the way the expander and quasiquote rewriter propagate
// location metadata onto freshly-built forms.
func Rlcp(newForm, sourceForm Value) Value {
	sl, ok := sourceForm.(SourceLocated)
	if !ok {
		return newForm
	}
	if nl, ok2 := newForm.(SourceLocated); ok2 {
		nl.SetPosition(sl.GetPosition())
	}
	return newForm
}
