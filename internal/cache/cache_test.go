package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLCache_LoadsOnceWithinTTL(t *testing.T) {
	loads := 0
	c := New(5*time.Minute, func() (int, error) {
		loads++
		return loads, nil
	})

	v, err := c.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = c.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, loads)
}

func TestTTLCache_ReloadsAfterTTL(t *testing.T) {
	now := time.Now()
	loads := 0
	c := New(5*time.Minute, func() (int, error) {
		loads++
		return loads, nil
	}).WithClock(func() time.Time { return now })

	v, err := c.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	now = now.Add(5*time.Minute + time.Second)

	v, err = c.Get()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, loads)
}

func TestTTLCache_LoaderError(t *testing.T) {
	fail := true
	c := New(time.Minute, func() (string, error) {
		if fail {
			return "", errors.New("load failed")
		}
		return "ok", nil
	})

	_, err := c.Get()
	assert.Error(t, err)

	fail = false
	v, err := c.Get()
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestTTLCache_Invalidate(t *testing.T) {
	loads := 0
	c := New(time.Hour, func() (int, error) {
		loads++
		return loads, nil
	})

	_, err := c.Get()
	require.NoError(t, err)

	c.Invalidate()

	v, err := c.Get()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}
