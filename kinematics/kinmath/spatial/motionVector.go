package spatial

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/spatialdyn/kinematics/kinmath"
)

// MotionVector is a spatial motion vector (twist): angular velocity followed by the linear velocity of the point at
// the frame origin.
type MotionVector struct {
	Angular mgl64.Vec3
	Linear  mgl64.Vec3
}

// NewMotionVector returns a motion vector with the given parts.
func NewMotionVector(angular, linear mgl64.Vec3) MotionVector {
	return MotionVector{angular, linear}
}

// MotionVectorFromVec reads a flat 6-vector, angular part first.
func MotionVectorFromVec(vec mat.Vector) (MotionVector, error) {
	if vec.Len() != Dim {
		return MotionVector{}, newDimensionError(vec.Len())
	}
	angular, linear := split6(vec)
	return MotionVector{angular, linear}, nil
}

// MotionVectorFromSlice reads a flat slice of length 6, angular part first.
func MotionVectorFromSlice(s []float64) (MotionVector, error) {
	if len(s) != Dim {
		return MotionVector{}, newDimensionError(len(s))
	}
	return MotionVector{mgl64.Vec3{s[0], s[1], s[2]}, mgl64.Vec3{s[3], s[4], s[5]}}, nil
}

// Vector returns the motion vector as a flat 6-vector, angular part first.
func (m MotionVector) Vector() *mat.VecDense {
	return vec6(m.Angular, m.Linear)
}

// Array returns the motion vector as a flat array, angular part first.
func (m MotionVector) Array() [Dim]float64 {
	return [Dim]float64{m.Angular[0], m.Angular[1], m.Angular[2], m.Linear[0], m.Linear[1], m.Linear[2]}
}

// Add returns m + other.
func (m MotionVector) Add(other MotionVector) MotionVector {
	return MotionVector{m.Angular.Add(other.Angular), m.Linear.Add(other.Linear)}
}

// Sub returns m - other.
func (m MotionVector) Sub(other MotionVector) MotionVector {
	return MotionVector{m.Angular.Sub(other.Angular), m.Linear.Sub(other.Linear)}
}

// Scale returns m * k.
func (m MotionVector) Scale(k float64) MotionVector {
	return MotionVector{m.Angular.Mul(k), m.Linear.Mul(k)}
}

// Div returns m / k.
func (m MotionVector) Div(k float64) MotionVector {
	return MotionVector{m.Angular.Mul(1 / k), m.Linear.Mul(1 / k)}
}

// Neg returns -m.
func (m MotionVector) Neg() MotionVector {
	return m.Scale(-1)
}

// Dot is the power pairing of a motion vector with a force vector.
func (m MotionVector) Dot(f ForceVector) float64 {
	return m.Angular.Dot(f.Moment) + m.Linear.Dot(f.Force)
}

// CrossMotion returns the spatial cross product m x other, the Lie bracket of two twists.
func (m MotionVector) CrossMotion(other MotionVector) MotionVector {
	return MotionVector{
		Angular: m.Angular.Cross(other.Angular),
		Linear:  m.Angular.Cross(other.Linear).Add(m.Linear.Cross(other.Angular)),
	}
}

// CrossForce returns the spatial cross product m x* f, the rate of change of a force vector carried along by m.
func (m MotionVector) CrossForce(f ForceVector) ForceVector {
	return ForceVector{
		Moment: m.Angular.Cross(f.Moment).Add(m.Linear.Cross(f.Force)),
		Force:  m.Angular.Cross(f.Force),
	}
}

// Cross66Motion returns the 6x6 matrix of the operator CrossMotion.
func (m MotionVector) Cross66Motion() *mat.Dense {
	wx := kinmath.Cross33(m.Angular)
	return blockMatrix(wx, mgl64.Mat3{}, kinmath.Cross33(m.Linear), wx)
}

// Cross66Force returns the 6x6 matrix of the operator CrossForce. It is the negated transpose of Cross66Motion.
func (m MotionVector) Cross66Force() *mat.Dense {
	wx := kinmath.Cross33(m.Angular)
	return blockMatrix(wx, kinmath.Cross33(m.Linear), mgl64.Mat3{}, wx)
}

// AlmostEqual compares two motion vectors element-wise.
func (m MotionVector) AlmostEqual(other MotionVector, epsilon float64) bool {
	return kinmath.Vec3AlmostEqual(m.Angular, other.Angular, epsilon) && kinmath.Vec3AlmostEqual(m.Linear, other.Linear, epsilon)
}

// SetZero zeroes both parts in place.
func (m *MotionVector) SetZero() {
	m.Angular = mgl64.Vec3{}
	m.Linear = mgl64.Vec3{}
}

func newDimensionError(got int) error {
	return errors.Errorf("spatial vectors have %d elements, got %d", Dim, got)
}
