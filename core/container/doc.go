// Package container implements a type-keyed service container with lazy
// singleton resolution.
//
//	c := container.New()
//
//	container.Register(c, func() (*redis.Client, error) {
//		return redis.Connect(ctx, cfg)
//	})
//
//	client, err := container.Resolve[*redis.Client](c)
//
// Factories run on first Resolve and the result is memoized for the
// container's lifetime. Construction errors are returned to the caller
// and not cached, so a later Resolve retries the factory. Concurrent
// first resolution of the same slot invokes the factory exactly once.
package container
