package utils

import (
	"fmt"

	"github.com/spf13/cast"
)

// Option carries loosely typed construction options keyed by dotted names,
// e.g. Option{"normalizer.language": "zh"}.
type Option map[string]interface{}

// Has reports whether key is present.
func (o Option) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// GetString returns the option as a string.
func (o Option) GetString(key string) (string, error) {
	raw, ok := o[key]
	if !ok {
		return "", fmt.Errorf("option %q is not set", key)
	}
	value, err := cast.ToStringE(raw)
	if err != nil {
		return "", fmt.Errorf("option %q is not a string: %w", key, err)
	}
	return value, nil
}

// GetBool returns the option as a bool.
func (o Option) GetBool(key string) (bool, error) {
	raw, ok := o[key]
	if !ok {
		return false, fmt.Errorf("option %q is not set", key)
	}
	value, err := cast.ToBoolE(raw)
	if err != nil {
		return false, fmt.Errorf("option %q is not a bool: %w", key, err)
	}
	return value, nil
}

// GetInt returns the option as an int.
func (o Option) GetInt(key string) (int, error) {
	raw, ok := o[key]
	if !ok {
		return 0, fmt.Errorf("option %q is not set", key)
	}
	value, err := cast.ToIntE(raw)
	if err != nil {
		return 0, fmt.Errorf("option %q is not an int: %w", key, err)
	}
	return value, nil
}

// GetUint64 returns the option as a uint64.
func (o Option) GetUint64(key string) (uint64, error) {
	raw, ok := o[key]
	if !ok {
		return 0, fmt.Errorf("option %q is not set", key)
	}
	value, err := cast.ToUint64E(raw)
	if err != nil {
		return 0, fmt.Errorf("option %q is not a uint64: %w", key, err)
	}
	return value, nil
}
