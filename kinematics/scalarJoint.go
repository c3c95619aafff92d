package kinematics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"go.viam.com/spatialdyn/kinematics/kinmath"
)

// scalarJoint holds what revolute and prismatic joints share: a single coordinate moving along or about an axis.
type scalarJoint struct {
	name       string
	axis       mgl64.Vec3
	limit      Limit
	offset     mgl64.Vec3
	wraparound bool

	position float64
}

func newScalarJoint(name string, axis mgl64.Vec3, limit Limit, offset mgl64.Vec3) (scalarJoint, error) {
	if axis.Len() < kinmath.DefaultEpsilon {
		return scalarJoint{}, errors.Errorf("joint %q cannot use the zero vector as axis", name)
	}
	if limit.Min > limit.Max {
		return scalarJoint{}, errors.Errorf("joint %q has min %.5f greater than max %.5f", name, limit.Min, limit.Max)
	}
	return scalarJoint{name: name, axis: axis.Normalize(), limit: limit, offset: offset}, nil
}

func (j *scalarJoint) Name() string {
	return j.name
}

func (j *scalarJoint) DofPosition() int {
	return 1
}

func (j *scalarJoint) Dof() int {
	return 1
}

func (j *scalarJoint) Limits() []Limit {
	return []Limit{j.limit}
}

// Axis returns the unit axis of the joint.
func (j *scalarJoint) Axis() mgl64.Vec3 {
	return j.axis
}

// Offset returns the fixed translation added to the pose.
func (j *scalarJoint) Offset() mgl64.Vec3 {
	return j.offset
}

func (j *scalarJoint) Clamp(q []float64) error {
	if err := checkLength(q, 1); err != nil {
		return err
	}
	q[0] = j.limit.Clamp(j.wrap(q[0]))
	return nil
}

func (j *scalarJoint) IsValid(q []float64) bool {
	return len(q) == 1 && j.limit.Contains(q[0])
}

// Normalize has nothing to restore on a scalar coordinate.
func (j *scalarJoint) Normalize(q []float64) error {
	return checkLength(q, 1)
}

// wrap maps an angle into the joint's window [Min, Min+2π) so that equivalent angles inside the limits are kept.
func (j *scalarJoint) wrap(v float64) float64 {
	if !j.wraparound {
		return v
	}
	wrapped := math.Mod(v-j.limit.Min, 2*math.Pi)
	if wrapped < 0 {
		wrapped += 2 * math.Pi
	}
	return j.limit.Min + wrapped
}

// fullCircle reports whether the limits cover every angle, so that motion may cross the seam.
func (j *scalarJoint) fullCircle() bool {
	return j.wraparound && j.limit.Max-j.limit.Min >= 2*math.Pi-kinmath.DefaultEpsilon
}

func (j *scalarJoint) difference(q1, q2 float64) float64 {
	if j.fullCircle() {
		return wrapAngle(q2 - q1)
	}
	return q2 - q1
}

func (j *scalarJoint) Distance(q1, q2 []float64) float64 {
	if len(q1) != 1 || len(q2) != 1 {
		return math.Inf(1)
	}
	return math.Abs(j.difference(q1[0], q2[0]))
}

func (j *scalarJoint) TransformedDistance(q1, q2 []float64) float64 {
	d := j.Distance(q1, q2)
	return d * d
}

func (j *scalarJoint) Interpolate(q1, q2 []float64, alpha float64, out []float64) error {
	for _, v := range [][]float64{q1, q2, out} {
		if err := checkLength(v, 1); err != nil {
			return err
		}
	}
	out[0] = j.limit.Clamp(j.wrap(q1[0] + alpha*j.difference(q1[0], q2[0])))
	return nil
}

func (j *scalarJoint) GeneratePositionUniform(rand, out []float64) error {
	if err := checkLength(rand, 1); err != nil {
		return err
	}
	if err := checkLength(out, 1); err != nil {
		return err
	}
	out[0] = j.limit.Min + rand[0]*(j.limit.Max-j.limit.Min)
	return nil
}

func (j *scalarJoint) GeneratePositionGaussian(rand, mean, sigma, out []float64) error {
	for _, v := range [][]float64{rand, mean, sigma, out} {
		if err := checkLength(v, 1); err != nil {
			return err
		}
	}
	out[0] = j.limit.Clamp(mean[0] + rand[0]*sigma[0])
	return nil
}

func (j *scalarJoint) Position() []float64 {
	return []float64{j.position}
}

func (j *scalarJoint) Step(q1, qdot, q2 []float64) error {
	for _, v := range [][]float64{q1, qdot, q2} {
		if err := checkLength(v, 1); err != nil {
			return err
		}
	}
	q2[0] = j.limit.Clamp(j.wrap(q1[0] + qdot[0]))
	return nil
}

// wrapAngle maps an angle into [-π, π).
func wrapAngle(theta float64) float64 {
	wrapped := math.Mod(theta+math.Pi, 2*math.Pi)
	if wrapped < 0 {
		wrapped += 2 * math.Pi
	}
	return wrapped - math.Pi
}
