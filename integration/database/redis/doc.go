// Package redis provides Redis client initialization with connection
// verification and retry, backing the shared session store.
package redis
