package kinematics

import (
	"encoding/json"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/spatialdyn/kinematics/kinmath"
)

const (
	sixDofPositions  = 7
	sixDofVelocities = 6
	sixDofQuatStart  = 3
)

// orientationLimit is reported for each quaternion coefficient. It is not enforced.
var orientationLimit = Limit{Min: -1, Max: 1}

// SixDof is an unconstrained floating joint, e.g. between the world and a free-flying base. Its position is
// (tx, ty, tz, qx, qy, qz, qw) and its velocity is (vx, vy, vz, ωx, ωy, ωz) with the angular rate in the body frame.
// Only the translation is bounded.
type SixDof struct {
	name          string
	limits        [3]Limit
	offset        mgl64.Vec3
	unitTolerance float64

	position []float64
	pose     kinmath.Transform
}

// NewSixDof creates a six-DOF joint with the given translation limits and fixed translation offset. It starts at the
// origin with identity orientation.
func NewSixDof(name string, limits [3]Limit, offset mgl64.Vec3) *SixDof {
	j := &SixDof{
		name:          name,
		limits:        limits,
		offset:        offset,
		unitTolerance: kinmath.QuaternionUnitTolerance,
		position:      []float64{0, 0, 0, 0, 0, 0, 1},
	}
	j.pose = kinmath.Transform{Rotation: mgl64.Ident3(), Translation: offset}
	return j
}

// SetUnitQuaternionTolerance changes how far a quaternion's norm may be from one for IsValid to accept it.
func (j *SixDof) SetUnitQuaternionTolerance(tol float64) {
	j.unitTolerance = tol
}

// Name returns the id of the joint.
func (j *SixDof) Name() string {
	return j.name
}

// DofPosition is 7.
func (j *SixDof) DofPosition() int {
	return sixDofPositions
}

// Dof is 6.
func (j *SixDof) Dof() int {
	return sixDofVelocities
}

// Limits returns the translation limits followed by a placeholder [-1, 1] for each quaternion coefficient.
func (j *SixDof) Limits() []Limit {
	return []Limit{j.limits[0], j.limits[1], j.limits[2], orientationLimit, orientationLimit, orientationLimit, orientationLimit}
}

// Offset returns the fixed translation added to the pose.
func (j *SixDof) Offset() mgl64.Vec3 {
	return j.offset
}

// QuaternionFromPosition reads the orientation out of a six-DOF position.
func QuaternionFromPosition(q []float64) quat.Number {
	return kinmath.QuatFromVec4(q[3], q[4], q[5], q[6])
}

// SetQuaternionInPosition writes an orientation into a six-DOF position.
func SetQuaternionInPosition(q []float64, orientation quat.Number) {
	q[3], q[4], q[5], q[6] = kinmath.QuatToVec4(orientation)
}

func translationFromPosition(q []float64) mgl64.Vec3 {
	return mgl64.Vec3{q[0], q[1], q[2]}
}

// Clamp clips the translation into the limits and normalizes the quaternion.
func (j *SixDof) Clamp(q []float64) error {
	if err := checkLength(q, sixDofPositions); err != nil {
		return err
	}
	for i, lim := range j.limits {
		q[i] = lim.Clamp(q[i])
	}
	SetQuaternionInPosition(q, kinmath.NormalizeQuat(QuaternionFromPosition(q)))
	return nil
}

// IsValid reports whether the translation is within the limits and the quaternion has unit norm.
func (j *SixDof) IsValid(q []float64) bool {
	if len(q) != sixDofPositions {
		return false
	}
	for i, lim := range j.limits {
		if !lim.Contains(q[i]) {
			return false
		}
	}
	return kinmath.IsUnitQuaternion(QuaternionFromPosition(q), j.unitTolerance)
}

// Normalize normalizes the quaternion and leaves the translation alone.
func (j *SixDof) Normalize(q []float64) error {
	if err := checkLength(q, sixDofPositions); err != nil {
		return err
	}
	SetQuaternionInPosition(q, kinmath.NormalizeQuat(QuaternionFromPosition(q)))
	return nil
}

// Distance combines the euclidean distance between the translations with the angle between the orientations.
func (j *SixDof) Distance(q1, q2 []float64) float64 {
	return math.Sqrt(j.TransformedDistance(q1, q2))
}

// TransformedDistance is the square of Distance.
func (j *SixDof) TransformedDistance(q1, q2 []float64) float64 {
	if len(q1) != sixDofPositions || len(q2) != sixDofPositions {
		return math.Inf(1)
	}
	dt := translationFromPosition(q2).Sub(translationFromPosition(q1))
	angle := kinmath.AngularDistance(QuaternionFromPosition(q1), QuaternionFromPosition(q2))
	return dt.Dot(dt) + angle*angle
}

// Interpolate moves linearly in translation and along the shortest arc in orientation.
func (j *SixDof) Interpolate(q1, q2 []float64, alpha float64, out []float64) error {
	for _, v := range [][]float64{q1, q2, out} {
		if err := checkLength(v, sixDofPositions); err != nil {
			return err
		}
	}
	for i := 0; i < sixDofQuatStart; i++ {
		out[i] = (1-alpha)*q1[i] + alpha*q2[i]
	}
	SetQuaternionInPosition(out, kinmath.Slerp(QuaternionFromPosition(q1), QuaternionFromPosition(q2), alpha))
	return nil
}

// GeneratePositionUniform spreads the first three draws over the translation limits and turns the last three into
// a uniformly distributed orientation.
func (j *SixDof) GeneratePositionUniform(rand, out []float64) error {
	if err := checkLength(rand, sixDofVelocities); err != nil {
		return err
	}
	if err := checkLength(out, sixDofPositions); err != nil {
		return err
	}
	for i, lim := range j.limits {
		out[i] = lim.Min + rand[i]*(lim.Max-lim.Min)
	}
	SetQuaternionInPosition(out, kinmath.UniformRandomQuat([3]float64{rand[3], rand[4], rand[5]}))
	return nil
}

// GeneratePositionGaussian offsets the translation of mean by rand*sigma, clipped into the limits, and perturbs the
// orientation of mean by the rotation vector rand*sigma taken in mean's body frame.
func (j *SixDof) GeneratePositionGaussian(rand, mean, sigma, out []float64) error {
	if err := checkLength(rand, sixDofVelocities); err != nil {
		return err
	}
	if err := checkLength(sigma, sixDofVelocities); err != nil {
		return err
	}
	if err := checkLength(mean, sixDofPositions); err != nil {
		return err
	}
	if err := checkLength(out, sixDofPositions); err != nil {
		return err
	}
	for i, lim := range j.limits {
		out[i] = lim.Clamp(mean[i] + rand[i]*sigma[i])
	}
	SetQuaternionInPosition(out, kinmath.GaussianRandomQuat(
		[3]float64{rand[3], rand[4], rand[5]},
		QuaternionFromPosition(mean),
		[3]float64{sigma[3], sigma[4], sigma[5]},
	))
	return nil
}

// SetPosition stores q. The pose translation is q's translation plus the offset and the pose rotation is that of q's
// quaternion.
func (j *SixDof) SetPosition(q []float64) error {
	if err := checkLength(q, sixDofPositions); err != nil {
		return err
	}
	copy(j.position, q)
	j.pose = kinmath.NewTransformFromQuat(
		kinmath.NormalizeQuat(QuaternionFromPosition(q)),
		translationFromPosition(q).Add(j.offset),
	)
	return nil
}

// Position returns a copy of the stored position.
func (j *SixDof) Position() []float64 {
	return append([]float64(nil), j.position...)
}

// Pose returns the transform at the stored position.
func (j *SixDof) Pose() kinmath.Transform {
	return j.pose
}

// Step adds the linear velocity to the translation, clipped into the limits, and rotates the orientation by the body
// rate through the exponential map. The quaternion keeps the norm it had in q1 and is not renormalized; call
// Normalize when drift matters.
func (j *SixDof) Step(q1, qdot, q2 []float64) error {
	if err := checkLength(q1, sixDofPositions); err != nil {
		return err
	}
	if err := checkLength(qdot, sixDofVelocities); err != nil {
		return err
	}
	if err := checkLength(q2, sixDofPositions); err != nil {
		return err
	}
	for i, lim := range j.limits {
		q2[i] = lim.Clamp(q1[i] + qdot[i])
	}
	SetQuaternionInPosition(q2, kinmath.IntegrateBodyRate(QuaternionFromPosition(q1), mgl64.Vec3{qdot[3], qdot[4], qdot[5]}))
	return nil
}

// MotionSubspace swaps the linear and angular halves of the joint velocity.
func (j *SixDof) MotionSubspace() *mat.Dense {
	s := mat.NewDense(6, sixDofVelocities, nil)
	for i := 0; i < 3; i++ {
		s.Set(i, i+3, 1)
		s.Set(i+3, i, 1)
	}
	return s
}

// PositionUnits are meters for the translation. Quaternion coefficients are unitless.
func (j *SixDof) PositionUnits() []Unit {
	return []Unit{UnitMeter, UnitMeter, UnitMeter, UnitNone, UnitNone, UnitNone, UnitNone}
}

// VelocityUnits returns the units of the joint velocity.
func (j *SixDof) VelocityUnits() []Unit {
	return []Unit{UnitMeterPerSecond, UnitMeterPerSecond, UnitMeterPerSecond, UnitRadianPerSecond, UnitRadianPerSecond, UnitRadianPerSecond}
}

// AccelerationUnits returns the units of the joint acceleration.
func (j *SixDof) AccelerationUnits() []Unit {
	return []Unit{
		UnitMeterPerSecondSquared, UnitMeterPerSecondSquared, UnitMeterPerSecondSquared,
		UnitRadianPerSecondSquared, UnitRadianPerSecondSquared, UnitRadianPerSecondSquared,
	}
}

// SpeedUnits returns the units of the joint speed limits.
func (j *SixDof) SpeedUnits() []Unit {
	return j.VelocityUnits()
}

// ForceUnits returns the units of the generalized force.
func (j *SixDof) ForceUnits() []Unit {
	return []Unit{UnitNewton, UnitNewton, UnitNewton, UnitNewtonMeter, UnitNewtonMeter, UnitNewtonMeter}
}

// MarshalJSON writes the joint in the same form JointConfig reads.
func (j *SixDof) MarshalJSON() ([]byte, error) {
	cfg := JointConfig{
		ID:                      j.name,
		Type:                    SixDofJoint,
		Min:                     []float64{j.limits[0].Min, j.limits[1].Min, j.limits[2].Min},
		Max:                     []float64{j.limits[0].Max, j.limits[1].Max, j.limits[2].Max},
		Offset:                  kinmath.Vec3ToR3(j.offset),
		UnitQuaternionTolerance: j.unitTolerance,
	}
	return json.Marshal(cfg)
}
