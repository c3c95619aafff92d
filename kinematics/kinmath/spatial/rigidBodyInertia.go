package spatial

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/spatialdyn/kinematics/kinmath"
)

// RigidBodyInertia is the spatial inertia of a single rigid body about a frame origin.
type RigidBodyInertia struct {
	Mass float64
	// Cog is the first mass moment, the mass times the center of mass.
	Cog mgl64.Vec3
	// Inertia is the rotational inertia about the frame origin. It must be symmetric.
	Inertia mgl64.Mat3
}

// NewRigidBodyInertia builds the inertia of a body with the given mass, center of mass and rotational inertia about
// its center of mass.
func NewRigidBodyInertia(mass float64, centerOfMass mgl64.Vec3, inertiaAboutCoM mgl64.Mat3) RigidBodyInertia {
	cx := kinmath.Cross33(centerOfMass)
	return RigidBodyInertia{
		Mass:    mass,
		Cog:     centerOfMass.Mul(mass),
		Inertia: inertiaAboutCoM.Sub(cx.Mul3(cx).Mul(mass)),
	}
}

// CenterOfMass returns Cog divided by the mass. A massless body has its center at the origin.
func (i RigidBodyInertia) CenterOfMass() mgl64.Vec3 {
	if i.Mass == 0 {
		return mgl64.Vec3{}
	}
	return i.Cog.Mul(1 / i.Mass)
}

// Add merges two bodies described in the same frame.
func (i RigidBodyInertia) Add(other RigidBodyInertia) RigidBodyInertia {
	return RigidBodyInertia{
		Mass:    i.Mass + other.Mass,
		Cog:     i.Cog.Add(other.Cog),
		Inertia: i.Inertia.Add(other.Inertia),
	}
}

// Sub removes other from i.
func (i RigidBodyInertia) Sub(other RigidBodyInertia) RigidBodyInertia {
	return RigidBodyInertia{
		Mass:    i.Mass - other.Mass,
		Cog:     i.Cog.Sub(other.Cog),
		Inertia: i.Inertia.Sub(other.Inertia),
	}
}

// Scale returns i * k.
func (i RigidBodyInertia) Scale(k float64) RigidBodyInertia {
	return RigidBodyInertia{Mass: i.Mass * k, Cog: i.Cog.Mul(k), Inertia: i.Inertia.Mul(k)}
}

// Div returns i / k.
func (i RigidBodyInertia) Div(k float64) RigidBodyInertia {
	return i.Scale(1 / k)
}

// Matrix returns the symmetric 6x6 form [[Inertia, Cog×], [Cog×ᵗ, Mass*1]].
func (i RigidBodyInertia) Matrix() *mat.Dense {
	hx := kinmath.Cross33(i.Cog)
	return blockMatrix(i.Inertia, hx, hx.Transpose(), mgl64.Ident3().Mul(i.Mass))
}

// ApplyMotion returns the force vector I*m, e.g. the momentum of a body moving with velocity m.
func (i RigidBodyInertia) ApplyMotion(m MotionVector) ForceVector {
	return ForceVector{
		Moment: i.Inertia.Mul3x1(m.Angular).Add(i.Cog.Cross(m.Linear)),
		Force:  m.Linear.Mul(i.Mass).Sub(i.Cog.Cross(m.Angular)),
	}
}

// AlmostEqual compares the three blocks element-wise.
func (i RigidBodyInertia) AlmostEqual(other RigidBodyInertia, epsilon float64) bool {
	return kinmath.Float64AlmostEqual(i.Mass, other.Mass, epsilon) &&
		kinmath.Vec3AlmostEqual(i.Cog, other.Cog, epsilon) &&
		kinmath.Mat3AlmostEqual(i.Inertia, other.Inertia, epsilon)
}

// SetZero zeroes all blocks in place.
func (i *RigidBodyInertia) SetZero() {
	*i = RigidBodyInertia{}
}
