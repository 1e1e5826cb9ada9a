// Package memo provides the get-or-populate cache used for parsed hold
// assets and hold type configurations.
package memo

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes values by string key. Concurrent populations of the same
// key run the populate function once; failed populations are not stored.
// The zero value is ready to use.
type Cache[V any] struct {
	values sync.Map // string -> V
	group  singleflight.Group
}

// Get returns the cached value for key, if any.
func (c *Cache[V]) Get(key string) (V, bool) {
	v, ok := c.values.Load(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// GetOrPopulate returns the value cached for key, calling populate to
// compute and store it on a miss.
func (c *Cache[V]) GetOrPopulate(key string, populate func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		v, err := populate()
		if err != nil {
			return nil, err
		}
		c.values.Store(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int {
	n := 0
	c.values.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}

// Clear drops every cached entry.
func (c *Cache[V]) Clear() {
	c.values.Range(func(k, _ interface{}) bool {
		c.values.Delete(k)
		return true
	})
}
