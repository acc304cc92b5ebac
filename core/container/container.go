package container

import (
	"reflect"
	"sync"
)

// Container is a type-keyed registry of factories resolving to lazy
// singletons. A factory registered for type T runs at most once
// successfully; the produced instance is shared by every later Resolve
// for the container's lifetime. Failed construction is not memoized:
// the next Resolve re-invokes the factory.
type Container struct {
	mu    sync.RWMutex
	slots map[reflect.Type]*slot
}

type slot struct {
	mu       sync.Mutex
	factory  func() (any, error)
	instance any
	built    bool
}

// New creates an empty container.
func New() *Container {
	return &Container{slots: make(map[reflect.Type]*slot)}
}

// Register binds a factory to type T. Registering T again replaces the
// previous factory and discards any cached instance; this is intended
// for provider hooks overriding services before the first request, not
// for swapping live subsystems.
func Register[T any](c *Container, factory func() (T, error)) {
	key := typeOf[T]()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.slots[key] = &slot{factory: func() (any, error) { return factory() }}
}

// RegisterValue binds an already-constructed instance to type T.
func RegisterValue[T any](c *Container, value T) {
	Register(c, func() (T, error) { return value, nil })
}

// Resolve returns the singleton instance for type T, constructing it on
// first use. It fails with an UnregisteredError when no factory is bound
// to T, or with the factory's error when construction fails.
func Resolve[T any](c *Container) (T, error) {
	var zero T
	key := typeOf[T]()

	c.mu.RLock()
	s, ok := c.slots[key]
	c.mu.RUnlock()
	if !ok {
		return zero, UnregisteredError{Type: key}
	}

	// Per-slot lock: concurrent first resolution runs the factory once,
	// and all callers observe the one resulting instance.
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.built {
		return s.instance.(T), nil
	}

	instance, err := s.factory()
	if err != nil {
		return zero, err
	}
	s.instance = instance
	s.built = true
	return instance.(T), nil
}

// ResolveOrDefault returns the singleton for T, or def when T is
// unregistered or its construction fails.
func ResolveOrDefault[T any](c *Container, def T) T {
	v, err := Resolve[T](c)
	if err != nil {
		return def
	}
	return v
}

// Registered reports whether a factory is bound to type T.
func Registered[T any](c *Container) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.slots[typeOf[T]()]
	return ok
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
