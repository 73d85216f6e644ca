package domain

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Rational is an exact fraction kept in lowest terms with the
// sign on the numerator. the zero value is 0.
//
// values are immutable: every operation allocates a new big.Rat,
// so a Rational can be shared freely between goroutines
type Rational struct {
	r *big.Rat
}

var Zero = Rational{}
var One = MustRational(1, 1)

func NewRational[T constraints.Signed](num, den T) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("zero denominator in %d/%d", num, den)
	}
	return Rational{r: big.NewRat(int64(num), int64(den))}, nil
}

// MustRational is for constants known to be valid
func MustRational[T constraints.Signed](num, den T) Rational {
	r, err := NewRational(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

func FromInt(n int64) Rational {
	return Rational{r: new(big.Rat).SetInt64(n)}
}

func FromBigInt(n *big.Int) Rational {
	return Rational{r: new(big.Rat).SetInt(n)}
}

func FromBigFrac(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, fmt.Errorf("zero denominator in %s/%s", num, den)
	}
	return Rational{r: new(big.Rat).SetFrac(num, den)}, nil
}

// FromBigRat copies r, callers keep ownership of their value
func FromBigRat(r *big.Rat) Rational {
	if r == nil {
		return Rational{}
	}
	return Rational{r: new(big.Rat).Set(r)}
}

func (q Rational) rat() *big.Rat {
	if q.r == nil {
		return new(big.Rat)
	}
	return q.r
}

// Rat returns a copy of the underlying value
func (q Rational) Rat() *big.Rat {
	return new(big.Rat).Set(q.rat())
}

func (q Rational) Num() *big.Int {
	return new(big.Int).Set(q.rat().Num())
}

func (q Rational) Denom() *big.Int {
	return new(big.Int).Set(q.rat().Denom())
}

func (q Rational) Sign() int {
	return q.rat().Sign()
}

func (q Rational) IsZero() bool {
	return q.Sign() == 0
}

func (q Rational) Cmp(o Rational) int {
	return q.rat().Cmp(o.rat())
}

func (q Rational) Equal(o Rational) bool {
	return q.Cmp(o) == 0
}

func (q Rational) Less(o Rational) bool {
	return q.Cmp(o) < 0
}

func (q Rational) Add(o Rational) Rational {
	return Rational{r: new(big.Rat).Add(q.rat(), o.rat())}
}

func (q Rational) Sub(o Rational) Rational {
	return Rational{r: new(big.Rat).Sub(q.rat(), o.rat())}
}

func (q Rational) Mul(o Rational) Rational {
	return Rational{r: new(big.Rat).Mul(q.rat(), o.rat())}
}

// Quo panics on a zero divisor, same as big.Rat
func (q Rational) Quo(o Rational) Rational {
	return Rational{r: new(big.Rat).Quo(q.rat(), o.rat())}
}

func (q Rational) Neg() Rational {
	return Rational{r: new(big.Rat).Neg(q.rat())}
}

func (q Rational) Abs() Rational {
	return Rational{r: new(big.Rat).Abs(q.rat())}
}

// Floor rounds toward negative infinity
func (q Rational) Floor() *big.Int {
	num, den := q.rat().Num(), q.rat().Denom()
	// big.Int.Div is euclidean, which floors for a positive divisor
	return new(big.Int).Div(num, den)
}

// Float64 is lossy and only meant for display or for hosts that
// need a float. arithmetic should stay on Rational
func (q Rational) Float64() float64 {
	f, _ := q.rat().Float64()
	return f
}

// String renders "n/d", or just "n" for integers
func (q Rational) String() string {
	return q.rat().RatString()
}
