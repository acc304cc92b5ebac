package container

import (
	"fmt"
	"reflect"
)

// UnregisteredError reports a Resolve for a type no factory is bound to.
// It carries the requested type so callers can report exactly which
// capability is missing.
type UnregisteredError struct {
	Type reflect.Type
}

func (e UnregisteredError) Error() string {
	return fmt.Sprintf("container: no factory registered for %s", e.Type)
}

// Is makes all UnregisteredError values match each other under errors.Is.
func (e UnregisteredError) Is(target error) bool {
	_, ok := target.(UnregisteredError)
	return ok
}
