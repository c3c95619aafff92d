package spatial

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/spatialdyn/kinematics/kinmath"
)

const inertiaTol = 1e-8

func TestRigidBodyInertiaArithmetic(t *testing.T) {
	//nolint:gosec
	rSeed := rand.New(rand.NewSource(8))
	for i := 0; i < 20; i++ {
		a := randomRigid(rSeed)
		b := randomRigid(rSeed)
		k := rSeed.Float64()*3 + 0.1

		test.That(t, a.Add(b).Sub(b).AlmostEqual(a, inertiaTol), test.ShouldBeTrue)
		test.That(t, a.Scale(2).AlmostEqual(a.Add(a), inertiaTol), test.ShouldBeTrue)
		test.That(t, a.Scale(2).Scale(0.5).AlmostEqual(a, inertiaTol), test.ShouldBeTrue)
		test.That(t, a.Scale(k).Div(k).AlmostEqual(a, inertiaTol), test.ShouldBeTrue)

		var sum mat.Dense
		sum.Add(a.Matrix(), b.Matrix())
		test.That(t, mat.EqualApprox(a.Add(b).Matrix(), &sum, matTol), test.ShouldBeTrue)
		test.That(t, mat.EqualApprox(a.Matrix(), a.Matrix().T(), 0), test.ShouldBeTrue)
	}

	a := randomRigid(rSeed)
	a.SetZero()
	test.That(t, a, test.ShouldResemble, RigidBodyInertia{})
}

func TestArticulatedBodyInertiaArithmetic(t *testing.T) {
	//nolint:gosec
	rSeed := rand.New(rand.NewSource(9))
	for i := 0; i < 20; i++ {
		a := randomArticulated(rSeed)
		b := randomArticulated(rSeed)

		test.That(t, a.Add(b).Sub(b).AlmostEqual(a, inertiaTol), test.ShouldBeTrue)
		test.That(t, a.Scale(2).AlmostEqual(a.Add(a), inertiaTol), test.ShouldBeTrue)
		test.That(t, a.Scale(2).Scale(0.5).AlmostEqual(a, inertiaTol), test.ShouldBeTrue)
		test.That(t, a.Div(3).Scale(3).AlmostEqual(a, inertiaTol), test.ShouldBeTrue)
		test.That(t, mat.EqualApprox(a.Matrix(), a.Matrix().T(), 0), test.ShouldBeTrue)
	}
}

func TestInertiaApplyMotion(t *testing.T) {
	//nolint:gosec
	rSeed := rand.New(rand.NewSource(10))
	for i := 0; i < 20; i++ {
		rbi := randomRigid(rSeed)
		abi := randomArticulated(rSeed)
		mv := randomMotion(rSeed)

		test.That(t, mat.EqualApprox(rbi.ApplyMotion(mv).Vector(), mulVec(rbi.Matrix(), mv.Vector()), matTol),
			test.ShouldBeTrue)
		test.That(t, mat.EqualApprox(abi.ApplyMotion(mv).Vector(), mulVec(abi.Matrix(), mv.Vector()), matTol),
			test.ShouldBeTrue)
		test.That(t, ArticulatedFromRigid(rbi).ApplyMotion(mv).AlmostEqual(rbi.ApplyMotion(mv), inertiaTol),
			test.ShouldBeTrue)
	}
}

func TestNewRigidBodyInertia(t *testing.T) {
	// a point mass of 2 kg at (1, 0, 0)
	rbi := NewRigidBodyInertia(2, mgl64.Vec3{1, 0, 0}, mgl64.Mat3{})
	test.That(t, rbi.Cog, test.ShouldResemble, mgl64.Vec3{2, 0, 0})
	test.That(t, rbi.CenterOfMass(), test.ShouldResemble, mgl64.Vec3{1, 0, 0})
	expected := mgl64.Diag3(mgl64.Vec3{0, 2, 2})
	test.That(t, kinmath.Mat3AlmostEqual(rbi.Inertia, expected, kinmath.DefaultEpsilon), test.ShouldBeTrue)

	// spinning about z at the origin, the point mass moves along y
	momentum := rbi.ApplyMotion(NewMotionVector(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{}))
	test.That(t, kinmath.Vec3AlmostEqual(momentum.Force, mgl64.Vec3{0, 2, 0}, kinmath.DefaultEpsilon), test.ShouldBeTrue)
	test.That(t, kinmath.Vec3AlmostEqual(momentum.Moment, mgl64.Vec3{0, 0, 2}, kinmath.DefaultEpsilon), test.ShouldBeTrue)

	// moving a body's inertia about its center of mass out to the center of mass gives the same inertia
	ic := mgl64.Diag3(mgl64.Vec3{0.1, 0.2, 0.3})
	x := NewPlueckerTransform(mgl64.Ident3(), mgl64.Vec3{1, 2, 3})
	moved := x.ApplyRigidBodyInertia(NewRigidBodyInertia(4, mgl64.Vec3{}, ic))
	test.That(t, moved.AlmostEqual(NewRigidBodyInertia(4, mgl64.Vec3{1, 2, 3}, ic), inertiaTol), test.ShouldBeTrue)

	test.That(t, RigidBodyInertia{}.CenterOfMass(), test.ShouldResemble, mgl64.Vec3{})
}

func TestInertiaTransform(t *testing.T) {
	//nolint:gosec
	rSeed := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		x := randomTransform(rSeed)
		rbi := randomRigid(rSeed)
		abi := randomArticulated(rSeed)

		xr := x.ApplyRigidBodyInertia(rbi)
		xa := x.ApplyArticulatedBodyInertia(abi)

		// congruence through the force map and the inverse motion map
		test.That(t, mat.EqualApprox(xr.Matrix(), product(x.MatrixForce(), rbi.Matrix(), x.InverseMotion()), matTol),
			test.ShouldBeTrue)
		test.That(t, mat.EqualApprox(xa.Matrix(), product(x.MatrixForce(), abi.Matrix(), x.InverseMotion()), matTol),
			test.ShouldBeTrue)

		// and back through the transpose of the motion map
		test.That(t, mat.EqualApprox(product(x.MatrixMotion().T(), xr.Matrix(), x.MatrixMotion()), rbi.Matrix(), matTol),
			test.ShouldBeTrue)
		test.That(t, mat.EqualApprox(product(x.MatrixMotion().T(), xa.Matrix(), x.MatrixMotion()), abi.Matrix(), matTol),
			test.ShouldBeTrue)

		test.That(t, x.InverseApplyRigidBodyInertia(xr).AlmostEqual(rbi, inertiaTol), test.ShouldBeTrue)
		test.That(t, x.InverseApplyArticulatedBodyInertia(xa).AlmostEqual(abi, inertiaTol), test.ShouldBeTrue)
		test.That(t, kinmath.Symmetric(xr.Inertia, inertiaTol), test.ShouldBeTrue)
		test.That(t, kinmath.Symmetric(xa.Mass, inertiaTol), test.ShouldBeTrue)
		test.That(t, kinmath.Symmetric(xa.Inertia, inertiaTol), test.ShouldBeTrue)

		// the transform commutes with the vector space operations
		other := randomRigid(rSeed)
		test.That(t, x.ApplyRigidBodyInertia(rbi.Add(other)).AlmostEqual(xr.Add(x.ApplyRigidBodyInertia(other)), inertiaTol),
			test.ShouldBeTrue)
		test.That(t, x.ApplyArticulatedBodyInertia(abi.Scale(2)).AlmostEqual(xa.Scale(2), inertiaTol), test.ShouldBeTrue)

		// widening commutes with the transform
		test.That(t, ArticulatedFromRigid(xr).AlmostEqual(x.ApplyArticulatedBodyInertia(ArticulatedFromRigid(rbi)), inertiaTol),
			test.ShouldBeTrue)
		test.That(t, abi.AddRigid(rbi).AlmostEqual(abi.Add(ArticulatedFromRigid(rbi)), 0), test.ShouldBeTrue)

		// momentum transforms as a force vector
		mv := randomMotion(rSeed)
		test.That(t, xr.ApplyMotion(x.ApplyMotion(mv)).AlmostEqual(x.ApplyForce(rbi.ApplyMotion(mv)), inertiaTol),
			test.ShouldBeTrue)
	}
}
