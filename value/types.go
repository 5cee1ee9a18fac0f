// Package value defines the tagged value union the kernel evaluates over:
// the set of variants and predicates spelled out by the host value-model
// contract, plus the constructors the reader and builtins need to build
// and inspect them.
package value

import (
	"fmt"

	"github.com/google/uuid"
)

// Value is the interface every kernel datum implements.
type Value interface {
	String() string
}

// Position records where a form came from, so errors can be reported as
// "(file:line) message" the way the host's source-location protocol does.
type Position struct {
	File string
	Line int
}

// SourceLocated is implemented by values that can carry a Position.
type SourceLocated interface {
	GetPosition() Position
	SetPosition(Position)
}

// Nil is the empty list / null value. It is its own variant, distinct from
// Symbol, per the value model contract.
type Nil struct{}

func (Nil) String() string { return "nil" }

// Symbol is an interned identifier. Two symbols are equal iff they are the
// same object — enforced here by always handing out the same *Symbol
// pointer for a given (package, name) pair.
type Symbol struct {
	Package string
	Name    string
}

func (s *Symbol) String() string { return s.Name }

// Keyword is an interned self-evaluating tag, distinct from Symbol so that
// Bindable can reject it without special-casing a shared representation.
type Keyword struct {
	Name string
}

func (k *Keyword) String() string { return ":" + k.Name }

// Character is a single Unicode code point.
type Character rune

func (c Character) String() string { return fmt.Sprintf("#\\%c", rune(c)) }

// String is a Lisp string value.
type String string

func (s String) String() string { return fmt.Sprintf("%q", string(s)) }

// Number folds integer and floating point values into one tagged union,
// the way the host's numeric tower is exposed to the core.
type Number struct {
	i       int64
	f       float64
	isFloat bool
}

func NewInt(i int64) Number     { return Number{i: i} }
func NewFloat(f float64) Number { return Number{f: f, isFloat: true} }

func (n Number) IsInteger() bool { return !n.isFloat }
func (n Number) IsFloat() bool   { return n.isFloat }

func (n Number) ToInt() int64 {
	if n.isFloat {
		return int64(n.f)
	}
	return n.i
}

func (n Number) ToFloat() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

func (n Number) String() string {
	if n.isFloat {
		return fmt.Sprintf("%g", n.f)
	}
	return fmt.Sprintf("%d", n.i)
}

// Cons is the mutable pair the environment chain, place engine and macro
// expander all depend on: lookups hand out the *Cons itself so that writing
// through Cdr is visible to every holder (spec's binding-cell contract).
type Cons struct {
	Car Value
	Cdr Value
	pos *Position
}

func NewCons(car, cdr Value) *Cons { return &Cons{Car: car, Cdr: cdr} }

func (c *Cons) String() string {
	if c == nil {
		return "()"
	}
	s := "("
	cur := c
	first := true
	for {
		if !first {
			s += " "
		}
		first = false
		s += printValue(cur.Car)
		switch tail := cur.Cdr.(type) {
		case Nil:
			s += ")"
			return s
		case *Cons:
			cur = tail
		default:
			s += " . " + printValue(cur.Cdr) + ")"
			return s
		}
	}
}

func printValue(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.String()
}

func (c *Cons) GetPosition() Position {
	if c.pos == nil {
		return Position{}
	}
	return *c.pos
}

func (c *Cons) SetPosition(p Position) { pp := p; c.pos = &pp }

// Env is the lexical-environment contract the value model depends on
// without importing package env (which in turn depends on value),
// avoiding an import cycle while still letting a Function capture its
// defining frame.
type Env interface {
	LookupVar(sym *Symbol) *Cons
	LookupFun(sym *Symbol) *Cons
}

// NativeFn is a single Go closure taking a slice of fixed arguments plus a
// rest list, the idiomatic collapse of the host's ten function-pointer
// variants (F0..F4, N0..N4) into one shape; Native.MinArgs takes the place
// of the host's arity class.
type NativeFn func(env Env, args []Value, rest Value) (Value, error)

// Native describes one of the fixed family of native-function shapes: a
// minimum argument count, whether it is variadic (collects a rest list),
// and whether it receives the function value's captured environment.
type Native struct {
	MinArgs      int
	Variadic     bool
	EnvReceiving bool
	Fn           NativeFn
}

// Function is a callable value: either an interpreted closure or one of
// the native shapes.
type Function struct {
	Name string

	Interpreted bool
	CapturedEnv Env
	Params      Value // cons list; tail is Nil (fixed) or a bindable Symbol (rest param)
	Body        Value // cons list of body forms

	Native *Native
}

func (f *Function) String() string {
	if f.Interpreted {
		if f.Name != "" {
			return fmt.Sprintf("#<function %s>", f.Name)
		}
		return "#<function>"
	}
	if f.Name != "" {
		return fmt.Sprintf("#<native %s>", f.Name)
	}
	return "#<native>"
}

// Hash is a key/value map with a mutable-cell lookup protocol
// (GethashCell) the place engine needs to support (inc (gethash h k d)).
type Hash struct {
	cells    map[string]*Cons // keyToString(key) -> (key . value) cell
	order    []Value
	userdata Value
}

func NewHash() *Hash {
	return &Hash{cells: make(map[string]*Cons), userdata: Nil{}}
}

func keyToString(v Value) string { return fmt.Sprintf("%T:%s", v, printValue(v)) }

// GethashCell returns the mutable binding cell for key, inserting one
// holding def if absent. inserted reports whether it was just created.
func (h *Hash) GethashCell(key, def Value) (cell *Cons, inserted bool) {
	k := keyToString(key)
	if c, ok := h.cells[k]; ok {
		return c, false
	}
	c := NewCons(key, def)
	h.cells[k] = c
	h.order = append(h.order, key)
	return c, true
}

func (h *Hash) Get(key Value) (Value, bool) {
	if c, ok := h.cells[keyToString(key)]; ok {
		return c.Cdr, true
	}
	return nil, false
}

func (h *Hash) Set(key, val Value) {
	c, _ := h.GethashCell(key, Nil{})
	c.Cdr = val
}

func (h *Hash) Remove(key Value) {
	k := keyToString(key)
	if _, ok := h.cells[k]; !ok {
		return
	}
	delete(h.cells, k)
	for i, ek := range h.order {
		if keyToString(ek) == k {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

func (h *Hash) Count() int { return len(h.order) }

func (h *Hash) Keys() []Value { return h.order }

func (h *Hash) Userdata() Value     { return h.userdata }
func (h *Hash) SetUserdata(v Value) { h.userdata = v }

func (h *Hash) String() string { return fmt.Sprintf("#<hash %d>", h.Count()) }

// Opaque is a host pointer value the core never dereferences, tagged with
// a uuid so it prints with a stable identity.
type Opaque struct {
	ID  string
	Tag string
	Ptr any
}

func NewOpaque(tag string, ptr any) *Opaque {
	return &Opaque{ID: uuid.NewString(), Tag: tag, Ptr: ptr}
}

func (o *Opaque) String() string { return fmt.Sprintf("#<%s %s>", o.Tag, o.ID) }

// T is the canonical true symbol. It is an ordinary interned Symbol that
// happens to be distinguished by identity in Bindable, exactly as
// upstream's `t` is a plain symbol; for truthiness it is simply non-nil.
var T = Intern("t")
