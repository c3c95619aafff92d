package spatial

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/spatialdyn/kinematics/kinmath"
)

// ArticulatedBodyInertia is a general spatial inertia as accumulated over a subtree of bodies. Its mass and cog
// blocks are full 3x3 matrices.
type ArticulatedBodyInertia struct {
	Mass    mgl64.Mat3
	Cog     mgl64.Mat3
	Inertia mgl64.Mat3
}

// ArticulatedFromRigid widens a rigid-body inertia.
func ArticulatedFromRigid(i RigidBodyInertia) ArticulatedBodyInertia {
	return ArticulatedBodyInertia{
		Mass:    mgl64.Ident3().Mul(i.Mass),
		Cog:     kinmath.Cross33(i.Cog),
		Inertia: i.Inertia,
	}
}

// Add returns a + other.
func (a ArticulatedBodyInertia) Add(other ArticulatedBodyInertia) ArticulatedBodyInertia {
	return ArticulatedBodyInertia{
		Mass:    a.Mass.Add(other.Mass),
		Cog:     a.Cog.Add(other.Cog),
		Inertia: a.Inertia.Add(other.Inertia),
	}
}

// AddRigid returns a plus a rigid-body inertia expressed in the same frame.
func (a ArticulatedBodyInertia) AddRigid(other RigidBodyInertia) ArticulatedBodyInertia {
	return a.Add(ArticulatedFromRigid(other))
}

// Sub returns a - other.
func (a ArticulatedBodyInertia) Sub(other ArticulatedBodyInertia) ArticulatedBodyInertia {
	return ArticulatedBodyInertia{
		Mass:    a.Mass.Sub(other.Mass),
		Cog:     a.Cog.Sub(other.Cog),
		Inertia: a.Inertia.Sub(other.Inertia),
	}
}

// Scale returns a * k.
func (a ArticulatedBodyInertia) Scale(k float64) ArticulatedBodyInertia {
	return ArticulatedBodyInertia{Mass: a.Mass.Mul(k), Cog: a.Cog.Mul(k), Inertia: a.Inertia.Mul(k)}
}

// Div returns a / k.
func (a ArticulatedBodyInertia) Div(k float64) ArticulatedBodyInertia {
	return a.Scale(1 / k)
}

// Matrix returns the 6x6 form [[Inertia, Cog], [Cogᵗ, Mass]].
func (a ArticulatedBodyInertia) Matrix() *mat.Dense {
	return blockMatrix(a.Inertia, a.Cog, a.Cog.Transpose(), a.Mass)
}

// ApplyMotion returns the force vector a*m.
func (a ArticulatedBodyInertia) ApplyMotion(m MotionVector) ForceVector {
	return ForceVector{
		Moment: a.Inertia.Mul3x1(m.Angular).Add(a.Cog.Mul3x1(m.Linear)),
		Force:  kinmath.RowMul(m.Angular, a.Cog).Add(a.Mass.Mul3x1(m.Linear)),
	}
}

// AlmostEqual compares the three blocks element-wise.
func (a ArticulatedBodyInertia) AlmostEqual(other ArticulatedBodyInertia, epsilon float64) bool {
	return kinmath.Mat3AlmostEqual(a.Mass, other.Mass, epsilon) &&
		kinmath.Mat3AlmostEqual(a.Cog, other.Cog, epsilon) &&
		kinmath.Mat3AlmostEqual(a.Inertia, other.Inertia, epsilon)
}

// SetZero zeroes all blocks in place.
func (a *ArticulatedBodyInertia) SetZero() {
	*a = ArticulatedBodyInertia{}
}
