package kinmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Transform is a rigid transformation in 3d: a rotation followed by a translation.
type Transform struct {
	Rotation    mgl64.Mat3
	Translation mgl64.Vec3
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{Rotation: mgl64.Ident3()}
}

// NewTransformFromQuat returns a transform whose rotation is given by a unit quaternion.
func NewTransformFromQuat(q quat.Number, translation mgl64.Vec3) Transform {
	return Transform{Rotation: QuatToMat3(q), Translation: translation}
}

// Quaternion returns the rotation as a unit quaternion.
func (t Transform) Quaternion() quat.Number {
	return Mat3ToQuat(t.Rotation)
}

// Mat4 returns the homogeneous 4x4 form of the transform.
func (t Transform) Mat4() mgl64.Mat4 {
	m := t.Rotation.Mat4()
	m.SetCol(3, t.Translation.Vec4(1))
	return m
}

// Compose returns t*other, the transform applying other first and then t.
func (t Transform) Compose(other Transform) Transform {
	return Transform{
		Rotation:    t.Rotation.Mul3(other.Rotation),
		Translation: t.Translation.Add(t.Rotation.Mul3x1(other.Translation)),
	}
}

// Inverse returns the transform undoing t.
func (t Transform) Inverse() Transform {
	rt := t.Rotation.Transpose()
	return Transform{Rotation: rt, Translation: rt.Mul3x1(t.Translation).Mul(-1)}
}

// Apply maps a point expressed in the child frame into the parent frame.
func (t Transform) Apply(p mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Mul3x1(p).Add(t.Translation)
}

// AlmostEqual compares rotation and translation element-wise.
func (t Transform) AlmostEqual(other Transform, epsilon float64) bool {
	return Mat3AlmostEqual(t.Rotation, other.Rotation, epsilon) && Vec3AlmostEqual(t.Translation, other.Translation, epsilon)
}

// R3ToVec3 converts a golang/geo vector into the fixed array form used by the math in this package.
func R3ToVec3(v r3.Vector) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// Vec3ToR3 converts back to a golang/geo vector.
func Vec3ToR3(v mgl64.Vec3) r3.Vector {
	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}
}
