package kinmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/quat"
)

const (
	// DefaultEpsilon is the tolerance used by the approximate equality helpers when callers have no tighter or
	// looser requirement of their own.
	DefaultEpsilon = 1e-8

	// QuaternionUnitTolerance is how far the norm of a stored orientation may drift from one before the
	// configuration is reported as invalid.
	QuaternionUnitTolerance = 1e-3
)

// Float64AlmostEqual compares two floats with an absolute tolerance.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

// Float64ApproxEqual compares two floats with a tolerance that is absolute near zero and relative to the larger
// magnitude otherwise.
func Float64ApproxEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// Vec3AlmostEqual compares two vectors element-wise with Float64ApproxEqual.
func Vec3AlmostEqual(a, b mgl64.Vec3, epsilon float64) bool {
	for i := range a {
		if !Float64ApproxEqual(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

// Mat3AlmostEqual compares two matrices element-wise with Float64ApproxEqual.
func Mat3AlmostEqual(a, b mgl64.Mat3, epsilon float64) bool {
	for i := range a {
		if !Float64ApproxEqual(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

// QuaternionAlmostEqual compares two quaternions coefficient-wise. q and -q are NOT considered equal here; use
// OrientationAlmostEqual for that.
func QuaternionAlmostEqual(a, b quat.Number, epsilon float64) bool {
	return Float64AlmostEqual(a.Real, b.Real, epsilon) &&
		Float64AlmostEqual(a.Imag, b.Imag, epsilon) &&
		Float64AlmostEqual(a.Jmag, b.Jmag, epsilon) &&
		Float64AlmostEqual(a.Kmag, b.Kmag, epsilon)
}

// OrientationAlmostEqual reports whether two quaternions describe the same rotation within epsilon radians.
func OrientationAlmostEqual(a, b quat.Number, epsilon float64) bool {
	return AngularDistance(a, b) <= epsilon
}

// IsUnitQuaternion reports whether the norm of q is within epsilon of one.
func IsUnitQuaternion(q quat.Number, epsilon float64) bool {
	return Float64AlmostEqual(quat.Abs(q), 1, epsilon)
}
