package element

import (
	"fmt"
	"math/big"
)

// Rational implements Ops for arbitrary-precision rationals. Every operation
// allocates a fresh *big.Rat, so tensors never share mutable elements.
type Rational struct{}

func (Rational) Add(a, b *big.Rat) *big.Rat      { return new(big.Rat).Add(a, b) }
func (Rational) Subtract(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (Rational) Multiply(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (Rational) Negate(a *big.Rat) *big.Rat      { return new(big.Rat).Neg(a) }
func (Rational) One() *big.Rat                   { return big.NewRat(1, 1) }
func (Rational) Zero() *big.Rat                  { return new(big.Rat) }
func (Rational) Copy(a *big.Rat) *big.Rat        { return new(big.Rat).Set(a) }

// Forward returns a unchanged; big.Rat keeps itself in lowest terms.
func (Rational) Forward(a *big.Rat) *big.Rat { return a }

// Reduce performs the exact division num/den, leaving den = 1.
func (Rational) Reduce(num, den *big.Rat) (*big.Rat, *big.Rat) {
	if den.Sign() == 0 {
		return num, den
	}
	return new(big.Rat).Quo(num, den), big.NewRat(1, 1)
}

func (Rational) Equal(a, b *big.Rat) bool { return a.Cmp(b) == 0 }
func (Rational) IsZero(a *big.Rat) bool   { return a.Sign() == 0 }
func (Rational) String(a *big.Rat) string { return a.RatString() }

func (Rational) Divide(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, fmt.Errorf("%s / 0: %w", a.RatString(), ErrDivisionByZero)
	}
	return new(big.Rat).Quo(a, b), nil
}

// Serialize encodes a in its "num/den" text form.
func (Rational) Serialize(a *big.Rat) ([]byte, error) {
	return a.MarshalText()
}

func (Rational) Deserialize(data []byte) (*big.Rat, error) {
	r := new(big.Rat)
	if err := r.UnmarshalText(data); err != nil {
		return nil, fmt.Errorf("rational: %v: %w", err, ErrMalformedData)
	}
	return r, nil
}

// NewRat is a shorthand for big.NewRat used by callers building rational
// tensors from integer literals.
func NewRat(num, den int64) *big.Rat {
	return big.NewRat(num, den)
}
