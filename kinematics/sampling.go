package kinematics

import (
	"math/rand"
)

// PositionGenerator is implemented by joints and models.
type PositionGenerator interface {
	Dof() int
	DofPosition() int
	GeneratePositionUniform(rand, out []float64) error
	GeneratePositionGaussian(rand, mean, sigma, out []float64) error
}

// RandomPositionUniform draws a uniformly distributed position of g using rSeed. A nil rSeed is seeded with 1.
func RandomPositionUniform(g PositionGenerator, rSeed *rand.Rand) ([]float64, error) {
	if rSeed == nil {
		//nolint:gosec
		rSeed = rand.New(rand.NewSource(1))
	}
	draws := make([]float64, g.Dof())
	for i := range draws {
		draws[i] = rSeed.Float64()
	}
	out := make([]float64, g.DofPosition())
	if err := g.GeneratePositionUniform(draws, out); err != nil {
		return nil, err
	}
	return out, nil
}

// RandomPositionGaussian draws a position of g around mean with spread sigma using rSeed. A nil rSeed is seeded
// with 1.
func RandomPositionGaussian(g PositionGenerator, rSeed *rand.Rand, mean, sigma []float64) ([]float64, error) {
	if rSeed == nil {
		//nolint:gosec
		rSeed = rand.New(rand.NewSource(1))
	}
	draws := make([]float64, g.Dof())
	for i := range draws {
		draws[i] = rSeed.NormFloat64()
	}
	out := make([]float64, g.DofPosition())
	if err := g.GeneratePositionGaussian(draws, mean, sigma, out); err != nil {
		return nil, err
	}
	return out, nil
}
