// file: internals/helpers/cachestore/cachestore_test.go
package cachestore

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRememberCachesValue(t *testing.T) {
	s := New()
	calls := 0
	produce := func() (any, error) {
		calls++
		return "hasil", nil
	}

	v, err := s.Remember("k", time.Minute, produce)
	require.NoError(t, err)
	assert.Equal(t, "hasil", v)

	v, err = s.Remember("k", time.Minute, produce)
	require.NoError(t, err)
	assert.Equal(t, "hasil", v)
	assert.Equal(t, 1, calls)
}

func TestRememberExpiry(t *testing.T) {
	s := New()
	calls := 0
	produce := func() (any, error) {
		calls++
		return calls, nil
	}

	_, err := s.Remember("k", time.Millisecond, produce)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	v, err := s.Remember("k", time.Minute, produce)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestRememberDoesNotCacheErrors(t *testing.T) {
	s := New()
	boom := errors.New("produce gagal")
	calls := 0

	_, err := s.Remember("k", time.Minute, func() (any, error) {
		calls++
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	// percobaan berikutnya memanggil produce lagi, bukan menyajikan error lama
	v, err := s.Remember("k", time.Minute, func() (any, error) {
		calls++
		return "pulih", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "pulih", v)
	assert.Equal(t, 2, calls)
}

func TestForgetAndFlush(t *testing.T) {
	s := New()
	fresh := func() (any, error) { return "baru", nil }

	_, err := s.Remember("a", time.Minute, func() (any, error) { return "lama", nil })
	require.NoError(t, err)
	s.Forget("a")

	v, err := s.Remember("a", time.Minute, fresh)
	require.NoError(t, err)
	assert.Equal(t, "baru", v)

	_, _ = s.Remember("b", time.Minute, func() (any, error) { return "lama", nil })
	s.Flush()
	v, err = s.Remember("b", time.Minute, fresh)
	require.NoError(t, err)
	assert.Equal(t, "baru", v)
}
