package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	offset int
	name   string
	calls  []string
}

var errNegative = errors.New("offset cannot be negative")

func withOffset(v int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if v < 0 {
			return errNegative
		}
		c.offset = v
		c.calls = append(c.calls, "offset")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withName("a"), withOffset(3), withName("b"))
		require.NoError(t, err)
		require.Equal(t, 3, cfg.offset)
		require.Equal(t, "b", cfg.name)
		require.Equal(t, []string{"name", "offset", "name"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withOffset(-1), withName("never"))
		require.ErrorIs(t, err, errNegative)
		require.Empty(t, cfg.name)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, nil, withName("x"))
		require.NoError(t, err)
		require.Equal(t, "x", cfg.name)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg))
		require.Empty(t, cfg.calls)
	})
}

func TestJoin(t *testing.T) {
	cfg := &testConfig{}
	defaults := Join(withOffset(1), withName("default"))

	err := Apply[*testConfig](cfg, defaults, withName("override"))
	require.NoError(t, err)
	require.Equal(t, 1, cfg.offset)
	require.Equal(t, "override", cfg.name)

	err = Apply[*testConfig](&testConfig{}, Join(withOffset(-5)))
	require.ErrorIs(t, err, errNegative)
}
