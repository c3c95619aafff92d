// Package kinmath defines mathematical operations useful in kinematics.
package kinmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/quat"
)

// If the sine of the half angle between two quaternions is below this, slerp falls back to a linear blend.
const slerpEpsilon = 1e-9

// QuatIdent returns the identity rotation.
func QuatIdent() quat.Number {
	return quat.Number{Real: 1}
}

// QuatFromVec4 builds a quaternion from (x, y, z, w) coefficients, the order in which quaternions are stored in
// joint position vectors.
func QuatFromVec4(x, y, z, w float64) quat.Number {
	return quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z}
}

// QuatToVec4 returns the (x, y, z, w) coefficients of a quaternion.
func QuatToVec4(q quat.Number) (x, y, z, w float64) {
	return q.Imag, q.Jmag, q.Kmag, q.Real
}

// Norm returns the norm of the imaginary part of the quaternion, i.e. the sine of the half rotation angle for a
// unit quaternion.
func Norm(q quat.Number) float64 {
	return math.Sqrt(q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
}

// Flip will multiply a quaternion by -1, returning a quaternion representing the same orientation but in the opposing octant.
func Flip(q quat.Number) quat.Number {
	return quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}

// QuatDot returns the 4-dimensional inner product of two quaternions.
func QuatDot(q1, q2 quat.Number) float64 {
	return q1.Real*q2.Real + q1.Imag*q2.Imag + q1.Jmag*q2.Jmag + q1.Kmag*q2.Kmag
}

// NormalizeQuat scales q to unit length. The zero quaternion has no direction and must never be passed in.
func NormalizeQuat(q quat.Number) quat.Number {
	return quat.Scale(1/quat.Abs(q), q)
}

// QuatToRotationVector converts a quat to an R3 axis angle in the same way the C++ Eigen library does.
// The returned vector points along the rotation axis and its length is the rotation angle, in [0, pi] once the
// double cover is folded.
// https://eigen.tuxfamily.org/dox/AngleAxis_8h_source.html
func QuatToRotationVector(q quat.Number) mgl64.Vec3 {
	denom := Norm(q)

	angle := 2 * math.Atan2(denom, math.Abs(q.Real))
	if q.Real < 0 {
		angle *= -1
	}

	if denom < 1e-12 {
		return mgl64.Vec3{}
	}
	return mgl64.Vec3{angle * q.Imag / denom, angle * q.Jmag / denom, angle * q.Kmag / denom}
}

// RotationVectorToQuat is the exponential map from a rotation vector (axis scaled by angle) to a unit quaternion.
func RotationVectorToQuat(v mgl64.Vec3) quat.Number {
	return quat.Exp(quat.Number{Imag: v[0] / 2, Jmag: v[1] / 2, Kmag: v[2] / 2})
}

// AxisAngleToQuat returns the unit quaternion rotating by theta about axis. The axis does not need to be normalized.
// See: https://www.euclideanspace.com/maths/geometry/rotations/conversions/angleToQuaternion/index.htm
func AxisAngleToQuat(axis mgl64.Vec3, theta float64) quat.Number {
	return RotationVectorToQuat(axis.Normalize().Mul(theta))
}

// AngularDistance returns the angle of the shortest rotation taking q1 onto q2, in [0, pi]. q and -q are treated
// as the same orientation.
func AngularDistance(q1, q2 quat.Number) float64 {
	return QuatToRotationVector(quat.Mul(quat.Conj(q1), q2)).Len()
}

// Slerp spherically interpolates between two unit quaternions along the shortest great-circle arc.
// by = 0 returns q1, by = 1 returns q2 or its antipode, whichever lies on the short arc.
func Slerp(q1, q2 quat.Number, by float64) quat.Number {
	d := QuatDot(q1, q2)
	absD := math.Abs(d)

	var scale0, scale1 float64
	theta := math.Acos(math.Min(absD, 1))
	sinTheta := math.Sin(theta)
	if sinTheta < slerpEpsilon {
		scale0 = 1 - by
		scale1 = by
	} else {
		scale0 = math.Sin((1-by)*theta) / sinTheta
		scale1 = math.Sin(by*theta) / sinTheta
	}
	if d < 0 {
		scale1 = -scale1
	}
	return quat.Add(quat.Scale(scale0, q1), quat.Scale(scale1, q2))
}

// UniformRandomQuat maps three uniform draws in [0, 1) onto a quaternion uniformly distributed over the unit
// 3-sphere (Shoemake's subgroup algorithm).
func UniformRandomQuat(rand [3]float64) quat.Number {
	sigma1 := math.Sqrt(1 - rand[0])
	sigma2 := math.Sqrt(rand[0])
	s1, c1 := math.Sincos(2 * math.Pi * rand[1])
	s2, c2 := math.Sincos(2 * math.Pi * rand[2])
	return quat.Number{Real: c2 * sigma2, Imag: s1 * sigma1, Jmag: c1 * sigma1, Kmag: s2 * sigma2}
}

// GaussianRandomQuat perturbs mean by a rotation vector whose components are rand scaled by sigma. rand is expected
// to hold standard normal draws; the perturbation is applied in the body frame of mean.
func GaussianRandomQuat(rand [3]float64, mean quat.Number, sigma [3]float64) quat.Number {
	v := mgl64.Vec3{rand[0] * sigma[0], rand[1] * sigma[1], rand[2] * sigma[2]}
	return quat.Mul(mean, RotationVectorToQuat(v))
}

// IntegrateBodyRate advances q by the body-frame angular velocity omega held for one unit of time.
// The result has the norm of q; it is not renormalized.
func IntegrateBodyRate(q quat.Number, omega mgl64.Vec3) quat.Number {
	return quat.Mul(q, RotationVectorToQuat(omega))
}

// QuatToMat3 converts a quaternion to the equivalent rotation matrix. q is assumed to be of unit length.
func QuatToMat3(q quat.Number) mgl64.Mat3 {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return mgl64.Mat3FromRows(
		mgl64.Vec3{1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y)},
		mgl64.Vec3{2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x)},
		mgl64.Vec3{2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y)},
	)
}

// Mat3ToQuat converts a rotation matrix to a unit quaternion with a non-negative real part.
func Mat3ToQuat(m mgl64.Mat3) quat.Number {
	mq := mgl64.Mat4ToQuat(m.Mat4())
	q := quat.Number{Real: mq.W, Imag: mq.V[0], Jmag: mq.V[1], Kmag: mq.V[2]}
	if q.Real < 0 {
		q = Flip(q)
	}
	return NormalizeQuat(q)
}
