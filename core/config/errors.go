package config

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNilConfig is returned when Load receives a nil configuration pointer.
var ErrNilConfig = errors.New("config: nil configuration pointer")

// MissingKeyError reports a required configuration key that was not set,
// carrying the key path and the configuration type that required it.
type MissingKeyError struct {
	Key  string
	Type reflect.Type
}

func (e MissingKeyError) Error() string {
	return fmt.Sprintf("config: required key %q is not set (wanted by %s)", e.Key, e.Type)
}

// Is makes all MissingKeyError values match each other under errors.Is,
// so callers can test for the class without knowing the key.
func (e MissingKeyError) Is(target error) bool {
	_, ok := target.(MissingKeyError)
	return ok
}
