package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePaths(t *testing.T) {
	base := t.TempDir()

	t.Run("relative entries", func(t *testing.T) {
		cfg := Default()
		p, err := cfg.ResolvePaths(base)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(base, "data"), p.DataDir)
		assert.Equal(t, filepath.Join(base, "data", DefaultRoundsFile), p.RoundsFile)
		assert.Equal(t, filepath.Join(base, "data", DefaultMatchupsFile), p.MatchupsFile)
		assert.Equal(t, filepath.Join(base, "data", DefaultRatingsFile), p.RatingsFile)
		assert.Equal(t, filepath.Join(base, "logs", "app.log"), p.LogFile)
	})

	t.Run("absolute entries are kept", func(t *testing.T) {
		other := t.TempDir()
		cfg := Default()
		cfg.Data.Dir = other
		cfg.Data.RatingsFile = filepath.Join(other, "elo", "ratings.xlsx")

		p, err := cfg.ResolvePaths(base)
		require.NoError(t, err)
		assert.Equal(t, other, p.DataDir)
		assert.Equal(t, filepath.Join(other, "elo", "ratings.xlsx"), p.RatingsFile)
	})

	t.Run("empty data dir uses base", func(t *testing.T) {
		cfg := Default()
		cfg.Data.Dir = ""
		p, err := cfg.ResolvePaths(base)
		require.NoError(t, err)
		assert.Equal(t, base, p.DataDir)
	})
}
