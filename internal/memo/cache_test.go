package memo

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrPopulate(t *testing.T) {
	var c Cache[int]
	calls := 0
	populate := func() (int, error) {
		calls++
		return 42, nil
	}
	v, err := c.GetOrPopulate("a", populate)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	v, err = c.GetOrPopulate("a", populate)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, c.Len())
}

func TestErrorsAreNotCached(t *testing.T) {
	var c Cache[string]
	boom := errors.New("boom")
	_, err := c.GetOrPopulate("k", func() (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)
	_, ok := c.Get("k")
	assert.False(t, ok)

	v, err := c.GetOrPopulate("k", func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestClear(t *testing.T) {
	var c Cache[int]
	for _, k := range []string{"a", "b", "c"} {
		_, err := c.GetOrPopulate(k, func() (int, error) { return 1, nil })
		require.NoError(t, err)
	}
	assert.Equal(t, 3, c.Len())
	c.Clear()
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestConcurrentPopulate(t *testing.T) {
	var (
		c     Cache[int]
		calls int32
		wg    sync.WaitGroup
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.GetOrPopulate("same", func() (int, error) {
				atomic.AddInt32(&calls, 1)
				return 7, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, 7, v)
		}()
	}
	wg.Wait()
	// idempotent population: every caller sees the same value,
	// whatever the number of populate calls
	assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(1))
	assert.Equal(t, 1, c.Len())
}
