// Package lcg implements a linear congruential generator over
// arbitrary precision integers:
//
//	x(n+1) = (a*x(n) + c) mod m
//
// It is a teaching tool, not a source of secure randomness.
package lcg

import (
	"math/big"

	"github.com/25x8/checkdigit/internal/checkdigit/models"
)

// Generator steps an LCG from a seed.
// A Generator is not safe for concurrent use; create one per caller.
type Generator struct {
	a, c, m *big.Int
	x       *big.Int
}

// New returns a generator positioned at seed.
// The parameters are copied, the caller may reuse them. A nil parameter
// fails InvalidFormat, a zero modulus fails DivisionByZero.
func New(seed, a, c, m *big.Int) (*Generator, error) {
	params := []struct {
		field string
		v     *big.Int
	}{
		{models.FieldSeed, seed},
		{models.FieldMultiplier, a},
		{models.FieldIncrement, c},
		{models.FieldModulus, m},
	}
	for _, p := range params {
		if p.v == nil {
			return nil, models.InvalidFormat.New("%s is missing", p.field).
				WithProperty(models.PropertyField, p.field)
		}
	}
	if m.Sign() == 0 {
		return nil, models.DivisionByZero.New("modulus must not be zero")
	}
	return &Generator{
		a: new(big.Int).Set(a),
		c: new(big.Int).Set(c),
		m: new(big.Int).Set(m),
		x: new(big.Int).Set(seed),
	}, nil
}

// Next advances the state and returns the new value
func (g *Generator) Next() *big.Int {
	g.x.Mul(g.a, g.x)
	g.x.Add(g.x, g.c)
	floorMod(g.x, g.m)
	return new(big.Int).Set(g.x)
}

// Generate returns the count values following seed. The seed itself is
// not part of the output. A count of zero or less gives an empty sequence.
func Generate(seed, a, c, m *big.Int, count int) ([]*big.Int, error) {
	g, err := New(seed, a, c, m)
	if err != nil {
		return nil, err
	}
	if count < 0 {
		count = 0
	}
	out := make([]*big.Int, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, g.Next())
	}
	return out, nil
}

// GenerateParams is Generate for a parsed parameter set
func GenerateParams(p models.LCGParameters) ([]*big.Int, error) {
	return Generate(p.Seed, p.Multiplier, p.Increment, p.Modulus, p.Count)
}

// floorMod sets x to x mod m using floored division: the result has the
// sign of m, so it lies in [0, m) for positive m and (m, 0] for negative m.
func floorMod(x, m *big.Int) {
	// big.Int.Mod is Euclidean and always non-negative
	x.Mod(x, m)
	if m.Sign() < 0 && x.Sign() != 0 {
		x.Add(x, m)
	}
}
