package spatial

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/spatialdyn/kinematics/kinmath"
)

// ForceVector is a spatial force vector (wrench): the moment about the frame origin followed by the force.
type ForceVector struct {
	Moment mgl64.Vec3
	Force  mgl64.Vec3
}

// NewForceVector returns a force vector with the given parts.
func NewForceVector(moment, force mgl64.Vec3) ForceVector {
	return ForceVector{moment, force}
}

// ForceVectorFromVec reads a flat 6-vector, moment part first.
func ForceVectorFromVec(vec mat.Vector) (ForceVector, error) {
	if vec.Len() != Dim {
		return ForceVector{}, newDimensionError(vec.Len())
	}
	moment, force := split6(vec)
	return ForceVector{moment, force}, nil
}

// ForceVectorFromSlice reads a flat slice of length 6, moment part first.
func ForceVectorFromSlice(s []float64) (ForceVector, error) {
	if len(s) != Dim {
		return ForceVector{}, newDimensionError(len(s))
	}
	return ForceVector{mgl64.Vec3{s[0], s[1], s[2]}, mgl64.Vec3{s[3], s[4], s[5]}}, nil
}

// Vector returns the force vector as a flat 6-vector, moment part first.
func (f ForceVector) Vector() *mat.VecDense {
	return vec6(f.Moment, f.Force)
}

// Array returns the force vector as a flat array, moment part first.
func (f ForceVector) Array() [Dim]float64 {
	return [Dim]float64{f.Moment[0], f.Moment[1], f.Moment[2], f.Force[0], f.Force[1], f.Force[2]}
}

// Add returns f + other.
func (f ForceVector) Add(other ForceVector) ForceVector {
	return ForceVector{f.Moment.Add(other.Moment), f.Force.Add(other.Force)}
}

// Sub returns f - other.
func (f ForceVector) Sub(other ForceVector) ForceVector {
	return ForceVector{f.Moment.Sub(other.Moment), f.Force.Sub(other.Force)}
}

// Scale returns f * k.
func (f ForceVector) Scale(k float64) ForceVector {
	return ForceVector{f.Moment.Mul(k), f.Force.Mul(k)}
}

// Div returns f / k.
func (f ForceVector) Div(k float64) ForceVector {
	return ForceVector{f.Moment.Mul(1 / k), f.Force.Mul(1 / k)}
}

// Neg returns -f.
func (f ForceVector) Neg() ForceVector {
	return f.Scale(-1)
}

// Dot is the power pairing of a force vector with a motion vector.
func (f ForceVector) Dot(other MotionVector) float64 {
	return other.Dot(f)
}

// AlmostEqual compares two force vectors element-wise.
func (f ForceVector) AlmostEqual(other ForceVector, epsilon float64) bool {
	return kinmath.Vec3AlmostEqual(f.Moment, other.Moment, epsilon) && kinmath.Vec3AlmostEqual(f.Force, other.Force, epsilon)
}

// SetZero zeroes both parts in place.
func (f *ForceVector) SetZero() {
	f.Moment = mgl64.Vec3{}
	f.Force = mgl64.Vec3{}
}
