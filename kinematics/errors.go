package kinematics

import (
	"github.com/pkg/errors"
)

// NewIncorrectDoFError returns an error indicating that a vector handed to a joint or model has the wrong length.
func NewIncorrectDoFError(actual, expected int) error {
	return errors.Errorf("number of dof in input %d does not match the %d expected", actual, expected)
}

// NewUnsupportedJointTypeError returns an error indicating that a given joint type is not supported.
func NewUnsupportedJointTypeError(jointType string) error {
	return errors.Errorf("unsupported joint type detected: %q", jointType)
}

// NewDuplicateJointError returns an error indicating that two joints of a model share an id.
func NewDuplicateJointError(id string) error {
	return errors.Errorf("joint id %q used more than once", id)
}

func newWraparoundRangeError(id string, limit Limit) error {
	return errors.Errorf("joint %q: wraparound limits [%.5f, %.5f] span more than a full turn", id, limit.Min, limit.Max)
}
