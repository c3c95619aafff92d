// Package spatial implements six-dimensional spatial vector algebra: motion and force vectors, Pluecker transforms
// between coordinate frames and the rigid-body and articulated-body inertias that map motion onto force.
//
// All vectors list the angular (or moment) part first and the linear (or force) part second.
package spatial

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
)

// Dim is the dimension of spatial vectors.
const Dim = 6

// blockMatrix assembles a 6x6 matrix from four 3x3 blocks.
func blockMatrix(topLeft, topRight, bottomLeft, bottomRight mgl64.Mat3) *mat.Dense {
	m := mat.NewDense(Dim, Dim, nil)
	setBlock(m, 0, 0, topLeft)
	setBlock(m, 0, 3, topRight)
	setBlock(m, 3, 0, bottomLeft)
	setBlock(m, 3, 3, bottomRight)
	return m
}

func setBlock(m *mat.Dense, row, col int, b mgl64.Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(row+i, col+j, b.At(i, j))
		}
	}
}

func vec6(top, bottom mgl64.Vec3) *mat.VecDense {
	return mat.NewVecDense(Dim, []float64{top[0], top[1], top[2], bottom[0], bottom[1], bottom[2]})
}

func split6(v mat.Vector) (top, bottom mgl64.Vec3) {
	return mgl64.Vec3{v.AtVec(0), v.AtVec(1), v.AtVec(2)}, mgl64.Vec3{v.AtVec(3), v.AtVec(4), v.AtVec(5)}
}
