package kinmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestTransformIdentity(t *testing.T) {
	tf := NewTransform()
	test.That(t, tf.Rotation, test.ShouldResemble, mgl64.Ident3())
	test.That(t, tf.Translation, test.ShouldResemble, mgl64.Vec3{})
	test.That(t, tf.Mat4(), test.ShouldResemble, mgl64.Ident4())
	test.That(t, QuaternionAlmostEqual(tf.Quaternion(), QuatIdent(), DefaultEpsilon), test.ShouldBeTrue)
}

func TestTransformCompose(t *testing.T) {
	tf1 := NewTransformFromQuat(q90z, mgl64.Vec3{1, 0, 0})
	tf2 := NewTransformFromQuat(QuatIdent(), mgl64.Vec3{1, 0, 0})

	p := tf1.Compose(tf2).Apply(mgl64.Vec3{})
	test.That(t, Vec3AlmostEqual(p, mgl64.Vec3{1, 1, 0}, DefaultEpsilon), test.ShouldBeTrue)
	test.That(t, Vec3AlmostEqual(tf1.Apply(tf2.Apply(mgl64.Vec3{})), p, DefaultEpsilon), test.ShouldBeTrue)

	m := tf1.Mat4()
	test.That(t, m.At(0, 3), test.ShouldEqual, 1.)
	test.That(t, m.At(3, 3), test.ShouldEqual, 1.)
	test.That(t, m.At(1, 0), test.ShouldAlmostEqual, 1)
}

func TestTransformInverse(t *testing.T) {
	//nolint:gosec
	rSeed := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		tf := Transform{Rotation: randomRotation(rSeed), Translation: randomVec3(rSeed).Mul(100)}
		id := tf.Inverse().Compose(tf)
		test.That(t, id.AlmostEqual(NewTransform(), 1e-9), test.ShouldBeTrue)
		id = tf.Compose(tf.Inverse())
		test.That(t, id.AlmostEqual(NewTransform(), 1e-9), test.ShouldBeTrue)
	}
}

func TestTransformQuaternion(t *testing.T) {
	tf := NewTransformFromQuat(AxisAngleToQuat(mgl64.Vec3{1, 1, 0}, math.Pi/3), mgl64.Vec3{})
	test.That(t, AngularDistance(tf.Quaternion(), QuatIdent()), test.ShouldAlmostEqual, math.Pi/3)
}

func TestR3Conversion(t *testing.T) {
	v := r3.Vector{X: 1, Y: -2, Z: 3}
	test.That(t, R3ToVec3(v), test.ShouldResemble, mgl64.Vec3{1, -2, 3})
	test.That(t, Vec3ToR3(R3ToVec3(v)), test.ShouldResemble, v)
}
