package utils

import (
	"errors"
	"fmt"
)

var ErrInvalidParameter = errors.New("invalid parameter")

// ConfigError reports a misconfigured call. It is raised with panic, the
// caller has a bug and retrying cannot help.
type ConfigError struct {
	Parameter string
	Value     interface{}
	Reason    string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s = %v, %s", ErrInvalidParameter, e.Parameter, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidParameter }

func configPanic(parameter string, value interface{}, reason string) {
	panic(&ConfigError{Parameter: parameter, Value: value, Reason: reason})
}
