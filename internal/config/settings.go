// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// SimSettings — настраиваемые параметры симуляции
type SimSettings struct {
	MaxChests            int           `mapstructure:"maxChests"`
	MaxEnemies           int           `mapstructure:"maxEnemies"`
	SpawnEveryFrames     int           `mapstructure:"spawnEveryFrames"`
	EnemyFireEveryFrames int           `mapstructure:"enemyFireEveryFrames"`
	CollisionThreshold   float64       `mapstructure:"collisionThreshold"`
	RamPenalty           int           `mapstructure:"ramPenalty"`
	ShotPenalty          int           `mapstructure:"shotPenalty"`
	VesselSpeed          float64       `mapstructure:"vesselSpeed"`
	TurnRate             float64       `mapstructure:"turnRate"`
	BulletSpeed          float64       `mapstructure:"bulletSpeed"`
	EnemyBulletSpeed     float64       `mapstructure:"enemyBulletSpeed"`
	BulletLifetime       time.Duration `mapstructure:"bulletLifetime"`
	EnemyStep            float64       `mapstructure:"enemyStep"`
	MenuDelay            time.Duration `mapstructure:"menuDelay"`
	SpawnHeight          float64       `mapstructure:"spawnHeight"`
	SpawnJitterX         float64       `mapstructure:"spawnJitterX"`
	SpawnJitterZ         float64       `mapstructure:"spawnJitterZ"`
	MaxHealth            int           `mapstructure:"maxHealth"`
}

// Settings — параметры запуска
type Settings struct {
	LogLevel     string      `mapstructure:"logLevel"`
	Seed         int64       `mapstructure:"seed"`
	DefsPath     string      `mapstructure:"defsPath"`
	SpectateAddr string      `mapstructure:"spectateAddr"`
	Audio        bool        `mapstructure:"audio"`
	Sim          SimSettings `mapstructure:"sim"`
}

// Default возвращает настройки по умолчанию
func Default() *Settings {
	v := viper.New()
	setDefaults(v)
	s, err := decode(v)
	if err != nil {
		panic(fmt.Sprintf("config: default settings do not decode: %v", err))
	}
	return s
}

func decode(v *viper.Viper) (*Settings, error) {
	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", DefaultLogLevel)
	v.SetDefault("seed", 0)
	v.SetDefault("defsPath", DefaultDefsPath)
	v.SetDefault("spectateAddr", "")
	v.SetDefault("audio", true)

	v.SetDefault("sim.maxChests", DefaultMaxChests)
	v.SetDefault("sim.maxEnemies", DefaultMaxEnemies)
	v.SetDefault("sim.spawnEveryFrames", DefaultSpawnEveryFrames)
	v.SetDefault("sim.enemyFireEveryFrames", DefaultEnemyFireEveryFrames)
	v.SetDefault("sim.collisionThreshold", DefaultCollisionThreshold)
	v.SetDefault("sim.ramPenalty", DefaultRamPenalty)
	v.SetDefault("sim.shotPenalty", DefaultShotPenalty)
	v.SetDefault("sim.vesselSpeed", DefaultVesselSpeed)
	v.SetDefault("sim.turnRate", DefaultTurnRate)
	v.SetDefault("sim.bulletSpeed", DefaultBulletSpeed)
	v.SetDefault("sim.enemyBulletSpeed", DefaultEnemyBulletSpeed)
	v.SetDefault("sim.bulletLifetime", DefaultBulletLifetime)
	v.SetDefault("sim.enemyStep", DefaultEnemyStep)
	v.SetDefault("sim.menuDelay", DefaultMenuDelay)
	v.SetDefault("sim.spawnHeight", DefaultSpawnHeight)
	v.SetDefault("sim.spawnJitterX", DefaultSpawnJitterX)
	v.SetDefault("sim.spawnJitterZ", DefaultSpawnJitterZ)
	v.SetDefault("sim.maxHealth", DefaultMaxHealth)
}

// Load читает настройки из файла path (YAML, JSON или TOML — по расширению).
// Пустой path означает "только значения по умолчанию и окружение".
// Переменные окружения с префиксом SEABATTLE_ имеют приоритет над файлом,
// например SEABATTLE_SIM_MAXENEMIES=5.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SEABATTLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading settings file %s: %w", path, err)
		}
	}

	s, err := decode(v)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// Validate проверяет, что параметры симуляции имеют смысл
func (s *Settings) Validate() error {
	sim := s.Sim
	var errs []error
	if sim.MaxChests < 0 || sim.MaxEnemies < 0 {
		errs = append(errs, errors.New("population caps must not be negative"))
	}
	if sim.SpawnEveryFrames <= 0 || sim.EnemyFireEveryFrames <= 0 {
		errs = append(errs, errors.New("cadences must be positive"))
	}
	if sim.CollisionThreshold <= 0 {
		errs = append(errs, errors.New("collisionThreshold must be positive"))
	}
	if sim.RamPenalty < 0 || sim.ShotPenalty < 0 {
		errs = append(errs, errors.New("penalties must not be negative"))
	}
	if sim.BulletLifetime <= 0 {
		errs = append(errs, errors.New("bulletLifetime must be positive"))
	}
	if sim.EnemyStep < 0 {
		errs = append(errs, errors.New("enemyStep must not be negative"))
	}
	if sim.MaxHealth <= 0 {
		errs = append(errs, errors.New("maxHealth must be positive"))
	}
	return errors.Join(errs...)
}
