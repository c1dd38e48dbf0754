// Package draw provides the primitive random draws the generators are built
// from: inclusive integer ranges and weighted categorical choices. All draws
// consume an explicit *rand.Rand so a run's draw order is reproducible.
package draw

import (
	"fmt"
	"math"
	"math/rand"
)

// weightSumTolerance bounds how far categorical weights may drift from 1.0.
const weightSumTolerance = 1e-9

// Range is an inclusive integer interval [Lo, Hi].
type Range struct {
	Lo int
	Hi int
}

// Valid reports whether the range is well-formed.
func (r Range) Valid() bool { return r.Lo <= r.Hi }

// Draw returns a uniform integer in [Lo, Hi].
func (r Range) Draw(rng *rand.Rand) int {
	return r.Lo + rng.Intn(r.Hi-r.Lo+1)
}

// Categorical is a weighted choice over a fixed set of string values.
// The zero value is not usable; build one with NewCategorical.
type Categorical struct {
	values []string
	cum    []float64
}

// NewCategorical builds a categorical distribution from parallel value and
// weight slices. Weights must be positive and sum to 1.
func NewCategorical(values []string, weights []float64) (Categorical, error) {
	if len(values) == 0 || len(values) != len(weights) {
		return Categorical{}, fmt.Errorf("%w: %d values, %d weights", ErrBadWeights, len(values), len(weights))
	}
	cum := make([]float64, len(weights))
	sum := 0.0
	for i, w := range weights {
		if w <= 0 {
			return Categorical{}, fmt.Errorf("%w: weight %f at index %d", ErrBadWeights, w, i)
		}
		sum += w
		cum[i] = sum
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return Categorical{}, fmt.Errorf("%w: weights sum to %f", ErrBadWeights, sum)
	}
	return Categorical{values: append([]string(nil), values...), cum: cum}, nil
}

// MustCategorical is NewCategorical for static tables; it panics on invalid
// input so malformed distributions fail at init time.
func MustCategorical(values []string, weights []float64) Categorical {
	c, err := NewCategorical(values, weights)
	if err != nil {
		panic(err)
	}
	return c
}

// Draw returns one value, chosen with the configured weights.
func (c Categorical) Draw(rng *rand.Rand) string {
	r := rng.Float64()
	for i, edge := range c.cum {
		if r < edge {
			return c.values[i]
		}
	}
	// Float rounding can leave r at or above the last edge.
	return c.values[len(c.values)-1]
}

// Values returns the value set in declaration order.
func (c Categorical) Values() []string {
	return append([]string(nil), c.values...)
}
