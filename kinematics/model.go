package kinematics

import (
	"encoding/json"
	"math"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"

	"go.viam.com/spatialdyn/kinematics/kinmath"
	"go.viam.com/spatialdyn/logging"
)

// Model is an ordered set of joints whose vectors are concatenated into whole-model vectors, in joint order.
// It does not know how the joints are connected.
type Model struct {
	name   string
	joints []Joint
	logger logging.Logger
}

// NewModel creates a model from joints with distinct names. A nil logger means the global logger.
func NewModel(name string, logger logging.Logger, joints ...Joint) (*Model, error) {
	if logger == nil {
		logger = logging.Global()
	}
	seen := map[string]bool{}
	for _, j := range joints {
		if seen[j.Name()] {
			return nil, NewDuplicateJointError(j.Name())
		}
		seen[j.Name()] = true
	}
	m := &Model{name: name, joints: joints, logger: logger}
	logger.Debugw("model created", "name", name, "joints", len(joints), "dof", m.Dof(), "dof_position", m.DofPosition())
	return m, nil
}

// Name returns the name of the model.
func (m *Model) Name() string {
	return m.name
}

// Joints returns the joints in order.
func (m *Model) Joints() []Joint {
	return m.joints
}

// Joint returns the joint with the given name.
func (m *Model) Joint(name string) (Joint, bool) {
	return lo.Find(m.joints, func(j Joint) bool { return j.Name() == name })
}

// Dof returns the sum of Dof from all joints.
func (m *Model) Dof() int {
	return lo.SumBy(m.joints, func(j Joint) int { return j.Dof() })
}

// DofPosition returns the sum of DofPosition from all joints.
func (m *Model) DofPosition() int {
	return lo.SumBy(m.joints, func(j Joint) int { return j.DofPosition() })
}

func jointDof(j Joint) int         { return j.Dof() }
func jointDofPosition(j Joint) int { return j.DofPosition() }

// segments splits v into one subslice per joint. The subslices alias v.
func (m *Model) segments(v []float64, size func(Joint) int) ([][]float64, error) {
	total := lo.SumBy(m.joints, size)
	if len(v) != total {
		return nil, NewIncorrectDoFError(len(v), total)
	}
	out := make([][]float64, 0, len(m.joints))
	idx := 0
	for _, j := range m.joints {
		n := size(j)
		out = append(out, v[idx:idx+n:idx+n])
		idx += n
	}
	return out, nil
}

// SetPosition sets every joint's position from the model position.
func (m *Model) SetPosition(q []float64) error {
	parts, err := m.segments(q, jointDofPosition)
	if err != nil {
		return err
	}
	for i, j := range m.joints {
		if err := j.SetPosition(parts[i]); err != nil {
			return err
		}
	}
	return nil
}

// Position returns the concatenated stored positions of all joints.
func (m *Model) Position() []float64 {
	return lo.FlatMap(m.joints, func(j Joint, _ int) []float64 { return j.Position() })
}

// Poses returns the pose of each joint at its stored position.
func (m *Model) Poses() []kinmath.Transform {
	return lo.Map(m.joints, func(j Joint, _ int) kinmath.Transform { return j.Pose() })
}

// Clamp clamps every joint's part of q in place.
func (m *Model) Clamp(q []float64) error {
	parts, err := m.segments(q, jointDofPosition)
	if err != nil {
		return err
	}
	for i, j := range m.joints {
		if err := j.Clamp(parts[i]); err != nil {
			return err
		}
	}
	return nil
}

// Normalize normalizes every joint's part of q in place.
func (m *Model) Normalize(q []float64) error {
	parts, err := m.segments(q, jointDofPosition)
	if err != nil {
		return err
	}
	for i, j := range m.joints {
		if err := j.Normalize(parts[i]); err != nil {
			return err
		}
	}
	return nil
}

// IsValid reports whether every joint accepts its part of q.
func (m *Model) IsValid(q []float64) bool {
	if floats.HasNaN(q) {
		return false
	}
	parts, err := m.segments(q, jointDofPosition)
	if err != nil {
		return false
	}
	for i, j := range m.joints {
		if !j.IsValid(parts[i]) {
			return false
		}
	}
	return true
}

// TransformedDistance sums the transformed distances of the joints.
func (m *Model) TransformedDistance(q1, q2 []float64) float64 {
	parts1, err := m.segments(q1, jointDofPosition)
	if err != nil {
		return math.Inf(1)
	}
	parts2, err := m.segments(q2, jointDofPosition)
	if err != nil {
		return math.Inf(1)
	}
	distances := make([]float64, len(m.joints))
	for i, j := range m.joints {
		distances[i] = j.TransformedDistance(parts1[i], parts2[i])
	}
	return floats.Sum(distances)
}

// Distance is the square root of TransformedDistance.
func (m *Model) Distance(q1, q2 []float64) float64 {
	return math.Sqrt(m.TransformedDistance(q1, q2))
}

// Interpolate interpolates every joint's part of q1 and q2 into out.
func (m *Model) Interpolate(q1, q2 []float64, alpha float64, out []float64) error {
	parts1, err := m.segments(q1, jointDofPosition)
	if err != nil {
		return err
	}
	parts2, err := m.segments(q2, jointDofPosition)
	if err != nil {
		return err
	}
	partsOut, err := m.segments(out, jointDofPosition)
	if err != nil {
		return err
	}
	for i, j := range m.joints {
		if err := j.Interpolate(parts1[i], parts2[i], alpha, partsOut[i]); err != nil {
			return err
		}
	}
	return nil
}

// Step integrates qdot over one unit of time from q1 into q2, joint by joint.
func (m *Model) Step(q1, qdot, q2 []float64) error {
	parts1, err := m.segments(q1, jointDofPosition)
	if err != nil {
		return err
	}
	partsDot, err := m.segments(qdot, jointDof)
	if err != nil {
		return err
	}
	parts2, err := m.segments(q2, jointDofPosition)
	if err != nil {
		return err
	}
	for i, j := range m.joints {
		if err := j.Step(parts1[i], partsDot[i], parts2[i]); err != nil {
			return err
		}
	}
	return nil
}

// GeneratePositionUniform generates a uniform position for every joint. rand holds Dof() draws from [0, 1).
func (m *Model) GeneratePositionUniform(rand, out []float64) error {
	partsRand, err := m.segments(rand, jointDof)
	if err != nil {
		return err
	}
	partsOut, err := m.segments(out, jointDofPosition)
	if err != nil {
		return err
	}
	for i, j := range m.joints {
		if err := j.GeneratePositionUniform(partsRand[i], partsOut[i]); err != nil {
			return err
		}
	}
	return nil
}

// GeneratePositionGaussian generates a position around mean for every joint. rand and sigma hold Dof() values.
func (m *Model) GeneratePositionGaussian(rand, mean, sigma, out []float64) error {
	partsRand, err := m.segments(rand, jointDof)
	if err != nil {
		return err
	}
	partsMean, err := m.segments(mean, jointDofPosition)
	if err != nil {
		return err
	}
	partsSigma, err := m.segments(sigma, jointDof)
	if err != nil {
		return err
	}
	partsOut, err := m.segments(out, jointDofPosition)
	if err != nil {
		return err
	}
	for i, j := range m.joints {
		if err := j.GeneratePositionGaussian(partsRand[i], partsMean[i], partsSigma[i], partsOut[i]); err != nil {
			return err
		}
	}
	return nil
}

// PositionUnits concatenates the position units of all joints.
func (m *Model) PositionUnits() []Unit {
	return lo.FlatMap(m.joints, func(j Joint, _ int) []Unit { return j.PositionUnits() })
}

// VelocityUnits concatenates the velocity units of all joints.
func (m *Model) VelocityUnits() []Unit {
	return lo.FlatMap(m.joints, func(j Joint, _ int) []Unit { return j.VelocityUnits() })
}

// AccelerationUnits concatenates the acceleration units of all joints.
func (m *Model) AccelerationUnits() []Unit {
	return lo.FlatMap(m.joints, func(j Joint, _ int) []Unit { return j.AccelerationUnits() })
}

// SpeedUnits concatenates the speed units of all joints.
func (m *Model) SpeedUnits() []Unit {
	return lo.FlatMap(m.joints, func(j Joint, _ int) []Unit { return j.SpeedUnits() })
}

// ForceUnits concatenates the force units of all joints.
func (m *Model) ForceUnits() []Unit {
	return lo.FlatMap(m.joints, func(j Joint, _ int) []Unit { return j.ForceUnits() })
}

// MarshalJSON writes the model in the form ParseModelJSON reads.
func (m *Model) MarshalJSON() ([]byte, error) {
	joints := make([]json.RawMessage, 0, len(m.joints))
	for _, j := range m.joints {
		b, err := j.MarshalJSON()
		if err != nil {
			return nil, err
		}
		joints = append(joints, b)
	}
	return json.Marshal(struct {
		Name   string            `json:"name"`
		Joints []json.RawMessage `json:"joints"`
	}{m.name, joints})
}

// L2Distance is the euclidean distance between two vectors. Vectors of different lengths are infinitely far apart.
func L2Distance(from, to []float64) float64 {
	if len(from) != len(to) {
		return math.Inf(1)
	}
	return floats.Distance(from, to, 2)
}
