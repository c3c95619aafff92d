package kinematics

import (
	"encoding/json"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/spatialdyn/kinematics/kinmath"
)

// Revolute is a joint rotating about a fixed axis. Its position is an angle in radians.
type Revolute struct {
	scalarJoint
	pose kinmath.Transform
}

// NewRevolute creates a revolute joint. With wraparound set, angles are taken modulo 2π into [Min, Min+2π), and when
// the limits span the whole circle distances and interpolation follow the shorter way around. Wraparound limits may
// span at most 2π.
func NewRevolute(name string, axis mgl64.Vec3, limit Limit, offset mgl64.Vec3, wraparound bool) (*Revolute, error) {
	base, err := newScalarJoint(name, axis, limit, offset)
	if err != nil {
		return nil, err
	}
	if wraparound && limit.Max-limit.Min > 2*math.Pi+kinmath.DefaultEpsilon {
		return nil, newWraparoundRangeError(name, limit)
	}
	base.wraparound = wraparound
	j := &Revolute{scalarJoint: base}
	j.updatePose()
	return j, nil
}

// SetPosition stores the angle and rotates the pose about the axis.
func (j *Revolute) SetPosition(q []float64) error {
	if err := checkLength(q, 1); err != nil {
		return err
	}
	j.position = q[0]
	j.updatePose()
	return nil
}

func (j *Revolute) updatePose() {
	j.pose = kinmath.NewTransformFromQuat(kinmath.AxisAngleToQuat(j.axis, j.position), j.offset)
}

// Pose returns the transform at the stored angle.
func (j *Revolute) Pose() kinmath.Transform {
	return j.pose
}

// MotionSubspace is the axis in the angular half.
func (j *Revolute) MotionSubspace() *mat.Dense {
	return mat.NewDense(6, 1, []float64{j.axis[0], j.axis[1], j.axis[2], 0, 0, 0})
}

// PositionUnits returns the units of the joint position.
func (j *Revolute) PositionUnits() []Unit {
	return []Unit{UnitRadian}
}

// VelocityUnits returns the units of the joint velocity.
func (j *Revolute) VelocityUnits() []Unit {
	return []Unit{UnitRadianPerSecond}
}

// AccelerationUnits returns the units of the joint acceleration.
func (j *Revolute) AccelerationUnits() []Unit {
	return []Unit{UnitRadianPerSecondSquared}
}

// SpeedUnits returns the units of the joint speed limit.
func (j *Revolute) SpeedUnits() []Unit {
	return []Unit{UnitRadianPerSecond}
}

// ForceUnits returns the units of the joint torque.
func (j *Revolute) ForceUnits() []Unit {
	return []Unit{UnitNewtonMeter}
}

// MarshalJSON writes the joint in the same form JointConfig reads.
func (j *Revolute) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.config(RevoluteJoint))
}

func (j *scalarJoint) config(jointType string) JointConfig {
	return JointConfig{
		ID:         j.name,
		Type:       jointType,
		Axis:       kinmath.Vec3ToR3(j.axis),
		Min:        []float64{j.limit.Min},
		Max:        []float64{j.limit.Max},
		Offset:     kinmath.Vec3ToR3(j.offset),
		Wraparound: j.wraparound,
	}
}
