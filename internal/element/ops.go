// Package element defines the arithmetic capability that tensor element types
// plug into, along with the builtin implementations.
//
// An Ops value is a stateless, usually zero-size, struct. Generic code never
// stores one; it declares `var o O` and calls methods on it, so every
// instantiation is resolved at compile time:
//
//	func sum[T any, O element.Ops[T]](xs []T) T {
//	    var o O
//	    acc := o.Zero()
//	    for _, x := range xs {
//	        acc = o.Add(acc, x)
//	    }
//	    return acc
//	}
package element

// Ops is the capability set of an element type T.
//
// All methods must be pure functions of their arguments. Results must not
// alias mutable inputs (Copy exists for composite types such as *big.Rat).
type Ops[T any] interface {
	Add(a, b T) T
	Subtract(a, b T) T
	Multiply(a, b T) T
	// Divide returns a/b. Types without a division fail with
	// ErrUnsupportedOperation; exact types fail with ErrDivisionByZero
	// when IsZero(b).
	Divide(a, b T) (T, error)
	Negate(a T) T

	// One and Zero return fresh multiplicative and additive identities.
	One() T
	Zero() T

	Copy(a T) T
	// Forward normalizes a freshly computed value. Most types return a
	// unchanged; FractionOps reduces through the wrapped type's Reducer.
	Forward(a T) T

	Equal(a, b T) bool
	IsZero(a T) bool
	String(a T) string

	Serialize(a T) ([]byte, error)
	Deserialize(data []byte) (T, error)
}

// Reducer is an optional capability of an Ops implementation. Reduce returns
// num/g and den/g for a common non-zero factor g chosen to make the parts
// small, so the quotient is unchanged. A zero den is returned unchanged.
// FractionOps uses it to cancel factors between operands and results.
type Reducer[T any] interface {
	Reduce(num, den T) (T, T)
}

// Inverse returns One()/a using the capability of O.
func Inverse[T any, O Ops[T]](a T) (T, error) {
	var o O
	return o.Divide(o.One(), a)
}
