package kinematics

import (
	"encoding/json"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"go.uber.org/multierr"
	"go.viam.com/test"

	"go.viam.com/spatialdyn/logging"
)

const floatingBaseJSON = `{
	"name": "floating_arm",
	"joints": [
		{"id": "base", "type": "six_dof", "min": [-10, -10, 0], "max": [10, 10, 2], "offset": {"X": 0, "Y": 0, "Z": 0.5}},
		{"id": "shoulder", "type": "revolute", "axis": {"X": 0, "Y": 0, "Z": 1}, "min": [-3.14], "max": [3.14], "wraparound": true},
		{"id": "slide", "type": "prismatic", "axis": {"X": 1, "Y": 0, "Z": 0}, "min": [0], "max": [0.3]}
	]
}`

func TestParseModelJSON(t *testing.T) {
	logger, observed := logging.NewObservedTestLogger(t)
	m, err := ParseModelJSON([]byte(floatingBaseJSON), logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m.Name(), test.ShouldEqual, "floating_arm")
	test.That(t, m.Joints(), test.ShouldHaveLength, 3)
	test.That(t, m.Dof(), test.ShouldEqual, 8)
	test.That(t, m.DofPosition(), test.ShouldEqual, 9)

	j, ok := m.Joint("base")
	test.That(t, ok, test.ShouldBeTrue)
	base, ok := j.(*SixDof)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, base.Offset(), test.ShouldResemble, mgl64.Vec3{0, 0, 0.5})
	test.That(t, base.Limits()[2], test.ShouldResemble, Limit{0, 2})

	j, ok = m.Joint("shoulder")
	test.That(t, ok, test.ShouldBeTrue)
	shoulder, ok := j.(*Revolute)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, shoulder.wraparound, test.ShouldBeTrue)

	_, ok = m.Joint("elbow")
	test.That(t, ok, test.ShouldBeFalse)

	test.That(t, observed.FilterMessage("using default unit quaternion tolerance").Len(), test.ShouldEqual, 1)
	test.That(t, observed.FilterMessage("model created").Len(), test.ShouldEqual, 1)
}

func TestParseModelJSONErrors(t *testing.T) {
	logger := logging.NewTestLogger(t)

	_, err := ParseModelJSON(nil, logger)
	test.That(t, err, test.ShouldBeError, ErrNoModelInformation)

	_, err = ParseModelJSON([]byte(`{"name": `), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to unmarshal json file")

	_, err = ParseModelJSON([]byte(`{"name": "m", "joints": [
		{"id": "a", "type": "ball"},
		{"id": "b", "type": "prismatic", "min": [0], "max": [1]}
	]}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, multierr.Errors(err), test.ShouldHaveLength, 2)
	test.That(t, err.Error(), test.ShouldContainSubstring, `unsupported joint type detected: "ball"`)
	test.That(t, err.Error(), test.ShouldContainSubstring, "zero vector")

	_, err = ParseModelJSON([]byte(`{"name": "m", "joints": [
		{"id": "a", "type": "revolute", "axis": {"X": 1, "Y": 0, "Z": 0}, "min": [0], "max": [1]},
		{"id": "a", "type": "revolute", "axis": {"X": 1, "Y": 0, "Z": 0}, "min": [0], "max": [1]}
	]}`), logger)
	test.That(t, err, test.ShouldBeError, NewDuplicateJointError("a"))
}

func TestJointConfigValidate(t *testing.T) {
	valid := JointConfig{ID: "base", Type: SixDofJoint, Min: []float64{-1, -1, -1}, Max: []float64{1, 1, 1}}
	test.That(t, valid.Validate(), test.ShouldBeNil)

	for _, tc := range []struct {
		name   string
		cfg    JointConfig
		errs   int
		substr string
	}{
		{
			"missing id",
			JointConfig{Type: SixDofJoint, Min: []float64{-1, -1, -1}, Max: []float64{1, 1, 1}},
			1, "missing an id",
		},
		{
			"wrong bound count",
			JointConfig{ID: "base", Type: SixDofJoint, Min: []float64{-1}, Max: []float64{1}},
			1, "needs 3 min and max values, got 1 and 1",
		},
		{
			"min above max",
			JointConfig{ID: "base", Type: SixDofJoint, Min: []float64{-1, 2, -1}, Max: []float64{1, 1, 1}},
			1, "at index 1",
		},
		{
			"six-DOF wraparound",
			JointConfig{ID: "base", Type: SixDofJoint, Min: []float64{-1, -1, -1}, Max: []float64{1, 1, 1}, Wraparound: true},
			1, "only supported by revolute joints",
		},
		{
			"prismatic wraparound and zero axis",
			JointConfig{ID: "slide", Type: PrismaticJoint, Min: []float64{0}, Max: []float64{1}, Wraparound: true},
			2, "only supported by revolute joints",
		},
		{
			"negative tolerance",
			JointConfig{ID: "base", Type: SixDofJoint, Min: []float64{-1, -1, -1}, Max: []float64{1, 1, 1}, UnitQuaternionTolerance: -1},
			1, "must not be negative",
		},
		{
			"unsupported type without id",
			JointConfig{Type: "spherical"},
			2, "unsupported joint type",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			test.That(t, err, test.ShouldNotBeNil)
			test.That(t, multierr.Errors(err), test.ShouldHaveLength, tc.errs)
			test.That(t, err.Error(), test.ShouldContainSubstring, tc.substr)
		})
	}
}

func TestSixDofOrientationBounds(t *testing.T) {
	logger, observed := logging.NewObservedTestLogger(t)
	cfg := JointConfig{
		ID:                      "base",
		Type:                    SixDofJoint,
		Min:                     []float64{-1, -1, -1, -1, -1, -1, -1},
		Max:                     []float64{1, 1, 1, 1, 1, 1, 1},
		UnitQuaternionTolerance: 0.01,
	}
	j, err := cfg.ParseConfig(logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, j.DofPosition(), test.ShouldEqual, 7)
	test.That(t, j.IsValid([]float64{0, 0, 0, 0, 0, 0, 1.005}), test.ShouldBeTrue)

	warnings := observed.FilterMessage("orientation bounds of six-DOF joints are not enforced and will be ignored")
	test.That(t, warnings.Len(), test.ShouldEqual, 1)
	test.That(t, warnings.All()[0].ContextMap()["joint"], test.ShouldEqual, "base")
	test.That(t, observed.FilterMessage("using default unit quaternion tolerance").Len(), test.ShouldEqual, 0)

	// bounds on only some of the quaternion coefficients are not accepted
	cfg.Min = cfg.Min[:5]
	_, err = cfg.ParseConfig(logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `invalid config for joint "base"`)
}

func TestJointJSONRoundTrip(t *testing.T) {
	logger := logging.NewTestLogger(t)
	sixDof := NewSixDof("base", [3]Limit{{-1, 1}, {-2, 2}, {0, 3}}, mgl64.Vec3{0, 0, 0.25})
	sixDof.SetUnitQuaternionTolerance(0.01)
	revolute, err := NewRevolute("shoulder", mgl64.Vec3{0, 1, 0}, Limit{-1, 1}, mgl64.Vec3{0, 0, 1}, true)
	test.That(t, err, test.ShouldBeNil)
	prismatic, err := NewPrismatic("slide", mgl64.Vec3{1, 0, 0}, Limit{0, 0.5}, mgl64.Vec3{})
	test.That(t, err, test.ShouldBeNil)

	for _, j := range []Joint{sixDof, revolute, prismatic} {
		data, err := json.Marshal(j)
		test.That(t, err, test.ShouldBeNil)
		var cfg JointConfig
		test.That(t, json.Unmarshal(data, &cfg), test.ShouldBeNil)
		test.That(t, cfg.ID, test.ShouldEqual, j.Name())

		parsed, err := cfg.ParseConfig(logger)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, parsed, test.ShouldResemble, j)
	}

	var cfg JointConfig
	data, err := json.Marshal(revolute)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, json.Unmarshal(data, &cfg), test.ShouldBeNil)
	test.That(t, cfg.Axis, test.ShouldResemble, r3.Vector{X: 0, Y: 1, Z: 0})
	test.That(t, cfg.Type, test.ShouldEqual, RevoluteJoint)
	test.That(t, cfg.Wraparound, test.ShouldBeTrue)
}
