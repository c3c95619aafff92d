// Package kinematics implements the joints of a kinematic chain and a flat model that concatenates them.
//
// Every joint works on plain float64 slices. A joint's position vector has DofPosition() coordinates while its
// velocity, acceleration and force vectors have Dof() coordinates; the two differ for joints whose configuration
// space is not Euclidean, such as the six-DOF joint whose orientation is stored as a quaternion.
//
// Joints keep mutable state (the last position set and the pose derived from it) and must not be mutated
// concurrently.
package kinematics

import (
	"encoding/json"
	"math"

	"gonum.org/v1/gonum/mat"

	"go.viam.com/spatialdyn/kinematics/kinmath"
)

// Limit represents the limits of motion of a single position coordinate.
type Limit struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies within the limit.
func (l Limit) Contains(v float64) bool {
	return v >= l.Min && v <= l.Max
}

// Clamp clips v into the limit.
func (l Limit) Clamp(v float64) float64 {
	return math.Max(l.Min, math.Min(l.Max, v))
}

// Joint is one kind of joint. Implementations are SixDof, Revolute and Prismatic.
type Joint interface {
	// Name returns the id of the joint within its model.
	Name() string

	// DofPosition is the length of position vectors.
	DofPosition() int
	// Dof is the length of velocity, acceleration and force vectors, and of the random and sigma vectors used to
	// generate positions.
	Dof() int
	// Limits returns one limit per position coordinate.
	Limits() []Limit

	// Clamp clips q into the joint's limits and restores any manifold constraint, in place.
	Clamp(q []float64) error
	// IsValid reports whether q is within limits and satisfies the manifold constraint. No mutation.
	IsValid(q []float64) bool
	// Normalize restores the manifold constraint of q in place without clipping.
	Normalize(q []float64) error

	// Distance is a metric on positions. Positions of the wrong length are infinitely far apart.
	Distance(q1, q2 []float64) float64
	// TransformedDistance is a monotone surrogate of Distance that is cheaper to compute.
	TransformedDistance(q1, q2 []float64) float64
	// Interpolate writes the position a fraction alpha of the way from q1 to q2 into out.
	Interpolate(q1, q2 []float64, alpha float64, out []float64) error

	// GeneratePositionUniform writes a position drawn uniformly within the limits into out. rand holds Dof() draws
	// from [0, 1).
	GeneratePositionUniform(rand, out []float64) error
	// GeneratePositionGaussian writes a position drawn around mean into out. rand holds Dof() standard normal draws
	// that are scaled by sigma.
	GeneratePositionGaussian(rand, mean, sigma, out []float64) error

	// SetPosition stores q and updates the pose.
	SetPosition(q []float64) error
	// Position returns a copy of the stored position.
	Position() []float64
	// Pose returns the transform of the joint at the stored position, including its fixed offset.
	Pose() kinmath.Transform
	// Step integrates the velocity qdot over one unit of time starting at q1 and writes the result into q2.
	Step(q1, qdot, q2 []float64) error

	// MotionSubspace maps a joint velocity onto the spatial velocity across the joint. It is 6 x Dof().
	MotionSubspace() *mat.Dense

	PositionUnits() []Unit
	VelocityUnits() []Unit
	AccelerationUnits() []Unit
	SpeedUnits() []Unit
	ForceUnits() []Unit

	json.Marshaler
}

func checkLength(v []float64, expected int) error {
	if len(v) != expected {
		return NewIncorrectDoFError(len(v), expected)
	}
	return nil
}

var (
	_ Joint = (*SixDof)(nil)
	_ Joint = (*Revolute)(nil)
	_ Joint = (*Prismatic)(nil)
)
