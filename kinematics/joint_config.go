package kinematics

import (
	"encoding/json"
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/spatialdyn/kinematics/kinmath"
	"go.viam.com/spatialdyn/logging"
)

// The joint types a JointConfig may name.
const (
	SixDofJoint    = "six_dof"
	RevoluteJoint  = "revolute"
	PrismaticJoint = "prismatic"
)

// ErrNoModelInformation is used when there is no model information.
var ErrNoModelInformation = errors.New("no model information")

// JointConfig is the json form of a joint. Min and Max hold one entry per bounded coordinate: one for revolute and
// prismatic joints and three, the translation, for six-DOF joints.
type JointConfig struct {
	ID     string    `json:"id"`
	Type   string    `json:"type"`
	Axis   r3.Vector `json:"axis"`
	Min    []float64 `json:"min"`
	Max    []float64 `json:"max"`
	Offset r3.Vector `json:"offset"`
	// UnitQuaternionTolerance overrides kinmath.QuaternionUnitTolerance for six-DOF joints.
	UnitQuaternionTolerance float64 `json:"unit_quaternion_tolerance,omitempty"`
	// Wraparound makes a revolute joint's angle periodic.
	Wraparound bool `json:"wraparound,omitempty"`
}

// Validate checks the config for errors and returns all of them.
func (cfg *JointConfig) Validate() error {
	var errAll error
	if cfg.ID == "" {
		multierr.AppendInto(&errAll, errors.New("joint config is missing an id"))
	}

	bounded := 1
	switch cfg.Type {
	case SixDofJoint:
		bounded = 3
		// Placeholder bounds for the four quaternion coefficients are accepted and ignored.
		if len(cfg.Min) == sixDofPositions && len(cfg.Max) == sixDofPositions {
			bounded = sixDofPositions
		}
		if cfg.Wraparound {
			multierr.AppendInto(&errAll, errors.Errorf("joint %q: wraparound is only supported by revolute joints", cfg.ID))
		}
	case RevoluteJoint, PrismaticJoint:
		if kinmath.R3ToVec3(cfg.Axis).Len() < kinmath.DefaultEpsilon {
			multierr.AppendInto(&errAll, errors.Errorf("joint %q cannot use the zero vector as axis", cfg.ID))
		}
		if cfg.Type == PrismaticJoint && cfg.Wraparound {
			multierr.AppendInto(&errAll, errors.Errorf("joint %q: wraparound is only supported by revolute joints", cfg.ID))
		}
	default:
		return multierr.Append(errAll, NewUnsupportedJointTypeError(cfg.Type))
	}

	if len(cfg.Min) != bounded || len(cfg.Max) != bounded {
		multierr.AppendInto(&errAll, errors.Errorf("joint %q of type %s needs %d min and max values, got %d and %d",
			cfg.ID, cfg.Type, bounded, len(cfg.Min), len(cfg.Max)))
	} else {
		for i := range cfg.Min {
			if cfg.Min[i] > cfg.Max[i] {
				multierr.AppendInto(&errAll, errors.Errorf("joint %q: min %.5f is greater than max %.5f at index %d",
					cfg.ID, cfg.Min[i], cfg.Max[i], i))
			}
		}
		if cfg.Type == RevoluteJoint && cfg.Wraparound && cfg.Max[0]-cfg.Min[0] > 2*math.Pi+kinmath.DefaultEpsilon {
			multierr.AppendInto(&errAll, newWraparoundRangeError(cfg.ID, Limit{cfg.Min[0], cfg.Max[0]}))
		}
	}
	if cfg.UnitQuaternionTolerance < 0 {
		multierr.AppendInto(&errAll, errors.Errorf("joint %q: unit_quaternion_tolerance must not be negative", cfg.ID))
	}
	return errAll
}

// ParseConfig converts the config into a Joint. A nil logger means the global logger.
func (cfg *JointConfig) ParseConfig(logger logging.Logger) (Joint, error) {
	if logger == nil {
		logger = logging.Global()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config for joint %q", cfg.ID)
	}
	offset := kinmath.R3ToVec3(cfg.Offset)

	switch cfg.Type {
	case SixDofJoint:
		if len(cfg.Min) == sixDofPositions {
			logger.Warnw("orientation bounds of six-DOF joints are not enforced and will be ignored",
				"joint", cfg.ID, "min", cfg.Min[3:], "max", cfg.Max[3:])
		}
		var limits [3]Limit
		for i := range limits {
			limits[i] = Limit{Min: cfg.Min[i], Max: cfg.Max[i]}
		}
		j := NewSixDof(cfg.ID, limits, offset)
		if cfg.UnitQuaternionTolerance > 0 {
			j.SetUnitQuaternionTolerance(cfg.UnitQuaternionTolerance)
		} else {
			logger.Debugw("using default unit quaternion tolerance", "joint", cfg.ID, "tolerance", kinmath.QuaternionUnitTolerance)
		}
		return j, nil
	case RevoluteJoint:
		j, err := NewRevolute(cfg.ID, kinmath.R3ToVec3(cfg.Axis), Limit{cfg.Min[0], cfg.Max[0]}, offset, cfg.Wraparound)
		if err != nil {
			return nil, err
		}
		return j, nil
	case PrismaticJoint:
		j, err := NewPrismatic(cfg.ID, kinmath.R3ToVec3(cfg.Axis), Limit{cfg.Min[0], cfg.Max[0]}, offset)
		if err != nil {
			return nil, err
		}
		return j, nil
	default:
		return nil, NewUnsupportedJointTypeError(cfg.Type)
	}
}

// ModelConfig is the json form of a Model.
type ModelConfig struct {
	Name   string        `json:"name"`
	Joints []JointConfig `json:"joints"`
	// LogLevel, when set, gives the model its own sublogger at this level, e.g. "debug" or "warn".
	LogLevel string `json:"log_level,omitempty"`
}

// ParseConfig converts the config into a Model. All joint errors are reported together. A nil logger means the global
// logger.
func (cfg *ModelConfig) ParseConfig(logger logging.Logger) (*Model, error) {
	if logger == nil {
		logger = logging.Global()
	}
	var errAll error
	if cfg.LogLevel != "" {
		level, err := logging.LevelFromString(cfg.LogLevel)
		if err != nil {
			multierr.AppendInto(&errAll, errors.Wrapf(err, "model %q", cfg.Name))
		} else {
			logger = logger.Sublogger(cfg.Name)
			logger.SetLevel(level)
		}
	}

	joints := make([]Joint, 0, len(cfg.Joints))
	for i := range cfg.Joints {
		j, err := cfg.Joints[i].ParseConfig(logger)
		if err != nil {
			multierr.AppendInto(&errAll, err)
			continue
		}
		joints = append(joints, j)
	}
	if errAll != nil {
		return nil, errAll
	}
	return NewModel(cfg.Name, logger, joints...)
}

// ParseModelJSON parses a model from its json form. A nil logger means the global logger.
func ParseModelJSON(jsonData []byte, logger logging.Logger) (*Model, error) {
	// empty data probably means that there is no model information
	if len(jsonData) == 0 {
		return nil, ErrNoModelInformation
	}

	cfg := &ModelConfig{}
	if err := json.Unmarshal(jsonData, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal json file")
	}
	return cfg.ParseConfig(logger)
}
