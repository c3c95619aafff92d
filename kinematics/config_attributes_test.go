package kinematics

import (
	"encoding/json"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"go.viam.com/test"

	"go.viam.com/spatialdyn/logging"
)

func TestJointConfigFromAttributes(t *testing.T) {
	cfg, err := JointConfigFromAttributes(map[string]interface{}{
		"id":         "shoulder",
		"type":       "revolute",
		"axis":       map[string]interface{}{"X": 0, "Y": 0, "Z": 1},
		"min":        []interface{}{-1.5},
		"max":        []interface{}{"1.5"},
		"wraparound": true,
	})
	test.That(t, err, test.ShouldBeNil)
	expected := &JointConfig{
		ID:         "shoulder",
		Type:       RevoluteJoint,
		Axis:       r3.Vector{Z: 1},
		Min:        []float64{-1.5},
		Max:        []float64{1.5},
		Wraparound: true,
	}
	test.That(t, cmp.Diff(expected, cfg), test.ShouldBeEmpty)

	j, err := cfg.ParseConfig(logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, j.Name(), test.ShouldEqual, "shoulder")

	_, err = JointConfigFromAttributes(map[string]interface{}{"id": "a", "kind": "revolute"})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to decode joint attributes")
}

func TestModelConfigFromAttributes(t *testing.T) {
	cfg, err := ModelConfigFromAttributes(map[string]interface{}{
		"name": "floating",
		"joints": []interface{}{
			map[string]interface{}{
				"id":                        "base",
				"type":                      "six_dof",
				"min":                       []float64{-1, -1, -1},
				"max":                       []float64{1, 1, 1},
				"unit_quaternion_tolerance": 0.01,
			},
		},
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.Joints, test.ShouldHaveLength, 1)

	m, err := cfg.ParseConfig(logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m.DofPosition(), test.ShouldEqual, 7)
}

func TestModelConfigSchema(t *testing.T) {
	data, err := json.Marshal(ModelConfigSchema)
	test.That(t, err, test.ShouldBeNil)
	for _, field := range []string{"joints", "unit_quaternion_tolerance", "wraparound", "offset"} {
		test.That(t, string(data), test.ShouldContainSubstring, field)
	}
}
