package spatial

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/spatialdyn/kinematics/kinmath"
)

// PlueckerTransform re-expresses spatial quantities given in a child frame in its parent frame. Rotation is the
// orientation of the child frame in the parent and Translation is the child origin in parent coordinates.
type PlueckerTransform struct {
	Rotation    mgl64.Mat3
	Translation mgl64.Vec3
}

// IdentityPlueckerTransform returns the transform between coincident frames.
func IdentityPlueckerTransform() PlueckerTransform {
	return PlueckerTransform{Rotation: mgl64.Ident3()}
}

// NewPlueckerTransform builds a transform from a rotation matrix and translation. The rotation must be orthonormal.
func NewPlueckerTransform(rotation mgl64.Mat3, translation mgl64.Vec3) PlueckerTransform {
	return PlueckerTransform{Rotation: rotation, Translation: translation}
}

// PlueckerTransformFromTransform converts a rigid transform.
func PlueckerTransformFromTransform(t kinmath.Transform) PlueckerTransform {
	return PlueckerTransform{Rotation: t.Rotation, Translation: t.Translation}
}

// Transform returns the rigid transform this operates by.
func (x PlueckerTransform) Transform() kinmath.Transform {
	return kinmath.Transform{Rotation: x.Rotation, Translation: x.Translation}
}

// Compose returns x*other, which applies other first.
func (x PlueckerTransform) Compose(other PlueckerTransform) PlueckerTransform {
	return PlueckerTransform{
		Rotation:    x.Rotation.Mul3(other.Rotation),
		Translation: x.Translation.Add(x.Rotation.Mul3x1(other.Translation)),
	}
}

// Inverse returns the transform from parent to child.
func (x PlueckerTransform) Inverse() PlueckerTransform {
	rt := x.Rotation.Transpose()
	return PlueckerTransform{Rotation: rt, Translation: rt.Mul3x1(x.Translation).Mul(-1)}
}

// MatrixMotion returns the 6x6 matrix acting on motion vectors.
func (x PlueckerTransform) MatrixMotion() *mat.Dense {
	return blockMatrix(x.Rotation, mgl64.Mat3{}, kinmath.Cross33(x.Translation).Mul3(x.Rotation), x.Rotation)
}

// MatrixForce returns the 6x6 matrix acting on force vectors. It equals the inverse transpose of MatrixMotion.
func (x PlueckerTransform) MatrixForce() *mat.Dense {
	return blockMatrix(x.Rotation, kinmath.Cross33(x.Translation).Mul3(x.Rotation), mgl64.Mat3{}, x.Rotation)
}

// InverseMotion returns the inverse of MatrixMotion.
func (x PlueckerTransform) InverseMotion() *mat.Dense {
	rt := x.Rotation.Transpose()
	return blockMatrix(rt, mgl64.Mat3{}, rt.Mul3(kinmath.Cross33(x.Translation)).Mul(-1), rt)
}

// InverseForce returns the inverse of MatrixForce.
func (x PlueckerTransform) InverseForce() *mat.Dense {
	rt := x.Rotation.Transpose()
	return blockMatrix(rt, rt.Mul3(kinmath.Cross33(x.Translation)).Mul(-1), mgl64.Mat3{}, rt)
}

// ApplyMotion maps a motion vector from child to parent coordinates.
func (x PlueckerTransform) ApplyMotion(m MotionVector) MotionVector {
	angular := x.Rotation.Mul3x1(m.Angular)
	return MotionVector{
		Angular: angular,
		Linear:  x.Rotation.Mul3x1(m.Linear).Add(x.Translation.Cross(angular)),
	}
}

// ApplyForce maps a force vector from child to parent coordinates.
func (x PlueckerTransform) ApplyForce(f ForceVector) ForceVector {
	force := x.Rotation.Mul3x1(f.Force)
	return ForceVector{
		Moment: x.Rotation.Mul3x1(f.Moment).Add(x.Translation.Cross(force)),
		Force:  force,
	}
}

// InverseApplyMotion maps a motion vector from parent to child coordinates.
func (x PlueckerTransform) InverseApplyMotion(m MotionVector) MotionVector {
	rt := x.Rotation.Transpose()
	return MotionVector{
		Angular: rt.Mul3x1(m.Angular),
		Linear:  rt.Mul3x1(m.Linear.Sub(x.Translation.Cross(m.Angular))),
	}
}

// InverseApplyForce maps a force vector from parent to child coordinates.
func (x PlueckerTransform) InverseApplyForce(f ForceVector) ForceVector {
	rt := x.Rotation.Transpose()
	return ForceVector{
		Moment: rt.Mul3x1(f.Moment.Sub(x.Translation.Cross(f.Force))),
		Force:  rt.Mul3x1(f.Force),
	}
}

// ApplyRigidBodyInertia re-expresses an inertia given about the child frame about the parent frame. As matrices the
// result is MatrixForce * I * InverseMotion.
func (x PlueckerTransform) ApplyRigidBodyInertia(i RigidBodyInertia) RigidBodyInertia {
	rh := x.Rotation.Mul3x1(i.Cog)
	cog := rh.Add(x.Translation.Mul(i.Mass))
	px := kinmath.Cross33(x.Translation)
	inertia := x.Rotation.Mul3(i.Inertia).Mul3(x.Rotation.Transpose()).
		Sub(px.Mul3(kinmath.Cross33(rh))).
		Sub(kinmath.Cross33(cog).Mul3(px))
	return RigidBodyInertia{Mass: i.Mass, Cog: cog, Inertia: inertia}
}

// InverseApplyRigidBodyInertia re-expresses an inertia given about the parent frame about the child frame.
func (x PlueckerTransform) InverseApplyRigidBodyInertia(i RigidBodyInertia) RigidBodyInertia {
	return x.Inverse().ApplyRigidBodyInertia(i)
}

// ApplyArticulatedBodyInertia re-expresses an articulated inertia given about the child frame about the parent frame.
func (x PlueckerTransform) ApplyArticulatedBodyInertia(i ArticulatedBodyInertia) ArticulatedBodyInertia {
	r := x.Rotation
	rt := r.Transpose()
	mass := r.Mul3(i.Mass).Mul3(rt)
	cog := r.Mul3(i.Cog).Mul3(rt)
	inertia := r.Mul3(i.Inertia).Mul3(rt)

	px := kinmath.Cross33(x.Translation)
	return ArticulatedBodyInertia{
		Mass: mass,
		Cog:  cog.Add(px.Mul3(mass)),
		Inertia: inertia.
			Add(px.Mul3(cog.Transpose())).
			Sub(cog.Mul3(px)).
			Sub(px.Mul3(mass).Mul3(px)),
	}
}

// InverseApplyArticulatedBodyInertia re-expresses an articulated inertia given about the parent frame about the
// child frame.
func (x PlueckerTransform) InverseApplyArticulatedBodyInertia(i ArticulatedBodyInertia) ArticulatedBodyInertia {
	return x.Inverse().ApplyArticulatedBodyInertia(i)
}

// AlmostEqual compares rotation and translation element-wise.
func (x PlueckerTransform) AlmostEqual(other PlueckerTransform, epsilon float64) bool {
	return kinmath.Mat3AlmostEqual(x.Rotation, other.Rotation, epsilon) &&
		kinmath.Vec3AlmostEqual(x.Translation, other.Translation, epsilon)
}
