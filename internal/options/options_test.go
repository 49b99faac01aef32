package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	limit   int
	name    string
	applied []string
}

func withLimit(n int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if n < 0 {
			return errors.New("limit cannot be negative")
		}
		c.limit = n
		c.applied = append(c.applied, "limit")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.applied = append(c.applied, "name")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}

		err := Apply(cfg, withName("a"), withLimit(3), withName("b"))

		require.NoError(t, err)
		require.Equal(t, 3, cfg.limit)
		require.Equal(t, "b", cfg.name)
		require.Equal(t, []string{"name", "limit", "name"}, cfg.applied)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}

		err := Apply(cfg, withLimit(-1), withName("never"))

		require.Error(t, err)
		require.Contains(t, err.Error(), "cannot be negative")
		require.Empty(t, cfg.name)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &testConfig{limit: 7}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 7, cfg.limit)
	})

	t.Run("nil option is skipped", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, nil, withLimit(1)))
		require.Equal(t, 1, cfg.limit)
	})
}
