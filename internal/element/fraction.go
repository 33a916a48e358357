package element

import "fmt"

// Fraction is a deferred quotient Num/Den over an element type. It lets
// exact algorithms postpone the lossy division of T until the very end.
type Fraction[T any] struct {
	Num T
	Den T
}

// NewFraction wraps a bare value as v/1.
func NewFraction[T any, O Ops[T]](v T) Fraction[T] {
	var o O
	return Fraction[T]{Num: v, Den: o.One()}
}

// Collapse performs the single real division Num/Den.
func Collapse[T any, O Ops[T]](f Fraction[T]) (T, error) {
	var o O
	return o.Divide(f.Num, f.Den)
}

// FractionOps derives Ops for Fraction[T] from the Ops of T. Arithmetic is
// carried out by cross-multiplication only; Divide never calls O.Divide.
//
// When O implements Reducer, common factors are cancelled between operands
// before multiplying and every result goes through Forward, so the parts stay
// as small as the values they represent. Without a Reducer they grow with
// every operation.
type FractionOps[T any, O Ops[T]] struct{}

// cancel removes a common factor from x and y if O is a Reducer.
func cancel[T any, O Ops[T]](x, y T) (T, T) {
	var o O
	if r, ok := any(o).(Reducer[T]); ok {
		return r.Reduce(x, y)
	}
	return x, y
}

func (f FractionOps[T, O]) Add(a, b Fraction[T]) Fraction[T] {
	var o O
	ad, bd := cancel[T, O](a.Den, b.Den)
	return f.Forward(Fraction[T]{
		Num: o.Add(o.Multiply(a.Num, bd), o.Multiply(b.Num, ad)),
		Den: o.Multiply(a.Den, bd),
	})
}

func (f FractionOps[T, O]) Subtract(a, b Fraction[T]) Fraction[T] {
	var o O
	ad, bd := cancel[T, O](a.Den, b.Den)
	return f.Forward(Fraction[T]{
		Num: o.Subtract(o.Multiply(a.Num, bd), o.Multiply(b.Num, ad)),
		Den: o.Multiply(a.Den, bd),
	})
}

func (f FractionOps[T, O]) Multiply(a, b Fraction[T]) Fraction[T] {
	var o O
	an, bd := cancel[T, O](a.Num, b.Den)
	bn, ad := cancel[T, O](b.Num, a.Den)
	return f.Forward(Fraction[T]{Num: o.Multiply(an, bn), Den: o.Multiply(ad, bd)})
}

// Divide returns (a.Num*b.Den)/(a.Den*b.Num). A zero divisor is not detected
// here: it yields a zero denominator that surfaces in Collapse.
func (f FractionOps[T, O]) Divide(a, b Fraction[T]) (Fraction[T], error) {
	var o O
	an, bn := cancel[T, O](a.Num, b.Num)
	bd, ad := cancel[T, O](b.Den, a.Den)
	return f.Forward(Fraction[T]{Num: o.Multiply(an, bd), Den: o.Multiply(ad, bn)}), nil
}

func (FractionOps[T, O]) Negate(a Fraction[T]) Fraction[T] {
	var o O
	return Fraction[T]{Num: o.Negate(a.Num), Den: a.Den}
}

func (FractionOps[T, O]) One() Fraction[T] {
	var o O
	return NewFraction[T, O](o.One())
}

func (FractionOps[T, O]) Zero() Fraction[T] {
	var o O
	return NewFraction[T, O](o.Zero())
}

func (FractionOps[T, O]) Copy(a Fraction[T]) Fraction[T] {
	var o O
	return Fraction[T]{Num: o.Copy(a.Num), Den: o.Copy(a.Den)}
}

// Forward normalizes both parts with O.Forward and then reduces the quotient
// if O is a Reducer.
func (FractionOps[T, O]) Forward(a Fraction[T]) Fraction[T] {
	var o O
	num, den := cancel[T, O](o.Forward(a.Num), o.Forward(a.Den))
	return Fraction[T]{Num: num, Den: den}
}

// Equal compares by cross-multiplication, so 1/2 equals 2/4.
func (FractionOps[T, O]) Equal(a, b Fraction[T]) bool {
	var o O
	return o.Equal(o.Multiply(a.Num, b.Den), o.Multiply(b.Num, a.Den))
}

func (FractionOps[T, O]) IsZero(a Fraction[T]) bool {
	var o O
	return o.IsZero(a.Num)
}

func (FractionOps[T, O]) String(a Fraction[T]) string {
	var o O
	return o.String(a.Num) + " / " + o.String(a.Den)
}

// Serialize always fails: fractions never leave the process.
func (FractionOps[T, O]) Serialize(Fraction[T]) ([]byte, error) {
	return nil, fmt.Errorf("fraction serialize: %w", ErrNotImplemented)
}

func (FractionOps[T, O]) Deserialize([]byte) (Fraction[T], error) {
	return Fraction[T]{}, fmt.Errorf("fraction deserialize: %w", ErrNotImplemented)
}
