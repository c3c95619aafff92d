package kinematics

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
)

// JointConfigFromAttributes decodes a joint config out of a generic attribute map, such as the attributes of a
// component in a larger robot config. Keys are the json names of JointConfig.
func JointConfigFromAttributes(attrs map[string]interface{}) (*JointConfig, error) {
	var cfg JointConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attrs); err != nil {
		return nil, errors.Wrap(err, "failed to decode joint attributes")
	}
	return &cfg, nil
}

// ModelConfigFromAttributes decodes a model config out of a generic attribute map.
func ModelConfigFromAttributes(attrs map[string]interface{}) (*ModelConfig, error) {
	var cfg ModelConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attrs); err != nil {
		return nil, errors.Wrap(err, "failed to decode model attributes")
	}
	return &cfg, nil
}

// ModelConfigSchema describes the json form of a ModelConfig.
var ModelConfigSchema = jsonschema.Reflect(&ModelConfig{})
