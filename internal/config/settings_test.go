package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	var s *Settings
	require.NotPanics(t, func() { s = Default() })
	assert.Equal(t, DefaultLogLevel, s.LogLevel)
	assert.Equal(t, 10, s.Sim.MaxChests)
	assert.Equal(t, 10, s.Sim.MaxEnemies)
	assert.Equal(t, 100, s.Sim.SpawnEveryFrames)
	assert.Equal(t, 50, s.Sim.EnemyFireEveryFrames)
	assert.Equal(t, 7.0, s.Sim.CollisionThreshold)
	assert.Equal(t, 10, s.Sim.RamPenalty)
	assert.Equal(t, 5, s.Sim.ShotPenalty)
	assert.Equal(t, 2*time.Second, s.Sim.BulletLifetime)
	assert.Equal(t, 3000*time.Millisecond, s.Sim.MenuDelay)
	assert.Equal(t, -0.4, s.Sim.SpawnHeight)
	assert.Equal(t, 100, s.Sim.MaxHealth)
	assert.NoError(t, s.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("No file", func(t *testing.T) {
		s, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), s)
	})

	t.Run("YAML overrides", func(t *testing.T) {
		path := writeFile(t, "settings.yaml", `
logLevel: debug
seed: 42
sim:
  maxEnemies: 3
  bulletLifetime: 1500ms
  collisionThreshold: 4.5
`)
		s, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "debug", s.LogLevel)
		assert.Equal(t, int64(42), s.Seed)
		assert.Equal(t, 3, s.Sim.MaxEnemies)
		assert.Equal(t, 1500*time.Millisecond, s.Sim.BulletLifetime)
		assert.Equal(t, 4.5, s.Sim.CollisionThreshold)
		assert.Equal(t, 10, s.Sim.MaxChests, "unset keys keep defaults")
	})

	t.Run("JSON file", func(t *testing.T) {
		path := writeFile(t, "settings.json", `{"sim": {"ramPenalty": 20}}`)
		s, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 20, s.Sim.RamPenalty)
	})

	t.Run("Environment wins over file", func(t *testing.T) {
		path := writeFile(t, "settings.yaml", "sim:\n  maxEnemies: 3\n")
		t.Setenv("SEABATTLE_SIM_MAXENEMIES", "5")
		s, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 5, s.Sim.MaxEnemies)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("Invalid values", func(t *testing.T) {
		path := writeFile(t, "settings.yaml", "sim:\n  spawnEveryFrames: 0\n  maxHealth: -1\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cadences must be positive")
		assert.Contains(t, err.Error(), "maxHealth must be positive")
	})

	t.Run("Shipped settings file", func(t *testing.T) {
		s, err := Load(filepath.Join("..", "..", "assets", "data", "settings.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default().Sim, s.Sim)
	})
}

func TestDecode(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("sim.maxChests", "many")

	s, err := decode(v)
	assert.Nil(t, s)
	assert.ErrorContains(t, err, "failed to decode settings")
}
