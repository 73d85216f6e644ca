package convert

import (
	"fmt"
	"math/big"

	"decimal-converter/internal/domain"
)

// MaxDenominator bounds every nearest fraction search
const MaxDenominator = 64

// Grid is the set of denominators a nearest fraction may use,
// ascending. the search walks it in order and only replaces the
// current best on a strictly smaller error, so ties resolve to the
// smaller denominator, and within one denominator to the smaller
// value
type Grid struct {
	name         string
	denominators []int64
}

var (
	// BinaryGrid is what's printed on a tape measure: 1, 2, 4 ... 64
	BinaryGrid = Grid{name: "binary", denominators: []int64{1, 2, 4, 8, 16, 32, 64}}
	// BestGrid allows any denominator up to 64, the classic
	// best rational approximation
	BestGrid = newBestGrid()
)

func newBestGrid() Grid {
	dens := make([]int64, 0, MaxDenominator)
	for q := int64(1); q <= MaxDenominator; q++ {
		dens = append(dens, q)
	}
	return Grid{name: "best", denominators: dens}
}

func GridByName(name string) (Grid, error) {
	switch name {
	case "", BinaryGrid.name:
		return BinaryGrid, nil
	case BestGrid.name:
		return BestGrid, nil
	}
	return Grid{}, fmt.Errorf("unknown nearest fraction grid %q, expected %q or %q", name, BinaryGrid.name, BestGrid.name)
}

func (g Grid) Name() string {
	return g.name
}

// Nearest returns the fraction on the grid closest to x
func (g Grid) Nearest(x domain.Rational) domain.Rational {
	dens := g.denominators
	if len(dens) == 0 {
		dens = BinaryGrid.denominators
	}

	var best domain.Rational
	var bestDiff domain.Rational
	found := false
	for _, q := range dens {
		den := big.NewInt(q)
		lo := x.Mul(domain.FromInt(q)).Floor()
		hi := new(big.Int).Add(lo, big.NewInt(1))
		for _, p := range []*big.Int{lo, hi} {
			candidate, _ := domain.FromBigFrac(p, den)
			diff := x.Sub(candidate).Abs()
			if !found || diff.Less(bestDiff) {
				best, bestDiff, found = candidate, diff, true
			}
		}
	}
	return best
}
