package kinematics

import (
	"encoding/json"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/spatialdyn/kinematics/kinmath"
)

// Prismatic is a joint translating along a fixed axis. Its position is in meters.
type Prismatic struct {
	scalarJoint
	pose kinmath.Transform
}

// NewPrismatic creates a prismatic joint.
func NewPrismatic(name string, axis mgl64.Vec3, limit Limit, offset mgl64.Vec3) (*Prismatic, error) {
	base, err := newScalarJoint(name, axis, limit, offset)
	if err != nil {
		return nil, err
	}
	j := &Prismatic{scalarJoint: base}
	j.updatePose()
	return j, nil
}

// SetPosition stores the displacement and moves the pose along the axis.
func (j *Prismatic) SetPosition(q []float64) error {
	if err := checkLength(q, 1); err != nil {
		return err
	}
	j.position = q[0]
	j.updatePose()
	return nil
}

func (j *Prismatic) updatePose() {
	j.pose = kinmath.Transform{Rotation: mgl64.Ident3(), Translation: j.offset.Add(j.axis.Mul(j.position))}
}

// Pose returns the transform at the stored displacement.
func (j *Prismatic) Pose() kinmath.Transform {
	return j.pose
}

// MotionSubspace is the axis in the linear half.
func (j *Prismatic) MotionSubspace() *mat.Dense {
	return mat.NewDense(6, 1, []float64{0, 0, 0, j.axis[0], j.axis[1], j.axis[2]})
}

// PositionUnits returns the units of the joint position.
func (j *Prismatic) PositionUnits() []Unit {
	return []Unit{UnitMeter}
}

// VelocityUnits returns the units of the joint velocity.
func (j *Prismatic) VelocityUnits() []Unit {
	return []Unit{UnitMeterPerSecond}
}

// AccelerationUnits returns the units of the joint acceleration.
func (j *Prismatic) AccelerationUnits() []Unit {
	return []Unit{UnitMeterPerSecondSquared}
}

// SpeedUnits returns the units of the joint speed limit.
func (j *Prismatic) SpeedUnits() []Unit {
	return []Unit{UnitMeterPerSecond}
}

// ForceUnits returns the units of the joint force.
func (j *Prismatic) ForceUnits() []Unit {
	return []Unit{UnitNewton}
}

// MarshalJSON writes the joint in the same form JointConfig reads.
func (j *Prismatic) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.config(PrismaticJoint))
}
