package kinmath

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Cross33 returns the skew-symmetric matrix a× such that (a×)b = a × b for every b.
func Cross33(a mgl64.Vec3) mgl64.Mat3 {
	return mgl64.Mat3FromRows(
		mgl64.Vec3{0, -a[2], a[1]},
		mgl64.Vec3{a[2], 0, -a[0]},
		mgl64.Vec3{-a[1], a[0], 0},
	)
}

// Uncross33 recovers a from a×. Only the skew-symmetric part of m contributes.
func Uncross33(m mgl64.Mat3) mgl64.Vec3 {
	return mgl64.Vec3{
		(m.At(2, 1) - m.At(1, 2)) / 2,
		(m.At(0, 2) - m.At(2, 0)) / 2,
		(m.At(1, 0) - m.At(0, 1)) / 2,
	}
}

// RowMul returns the row vector vᵗm.
func RowMul(v mgl64.Vec3, m mgl64.Mat3) mgl64.Vec3 {
	return m.Transpose().Mul3x1(v)
}

// Symmetric reports whether m equals its transpose within epsilon.
func Symmetric(m mgl64.Mat3, epsilon float64) bool {
	return Mat3AlmostEqual(m, m.Transpose(), epsilon)
}
