// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	TargetFPS    = 60

	// Значения по умолчанию для симуляции. Переопределяются через Settings.
	DefaultMaxChests            = 10
	DefaultMaxEnemies           = 10
	DefaultSpawnEveryFrames     = 100
	DefaultEnemyFireEveryFrames = 50
	DefaultCollisionThreshold   = 7.0
	DefaultRamPenalty           = 10
	DefaultShotPenalty          = 5
	DefaultVesselSpeed          = 1.0  // единиц за тик
	DefaultTurnRate             = 0.01 // радиан за тик
	DefaultBulletSpeed          = 1.0
	DefaultEnemyBulletSpeed     = 1.0
	DefaultBulletLifetime       = 2 * time.Second
	DefaultEnemyStep            = 0.3
	DefaultMenuDelay            = 3000 * time.Millisecond
	DefaultSpawnHeight          = -0.4
	DefaultSpawnJitterX         = 100.0 // смещение по X в [0, JitterX)
	DefaultSpawnJitterZ         = 100.0 // смещение по Z в [-JitterZ, JitterZ)
	DefaultMaxHealth            = 100

	DefaultLogLevel = "info"
	DefaultDefsPath = "assets/data/models.yaml"
	PprofAddr       = "localhost:6060"

	// Стартовая позиция судна
	VesselStartX = 0.0
	VesselStartY = 4.0
	VesselStartZ = 0.0

	// Камера
	CameraFovy          = 55.0
	CameraChaseDistance = 60.0
	CameraChaseHeight   = 25.0
	CameraOverheadY     = 300.0
	CameraLerpSpeed     = 0.08

	// Радар
	RadarScale  = 2.5 // пикселей на единицу мира
	RadarBullet = 2.0 // радиус точки снаряда в пикселях
	WaterSize   = 10000.0
)

var (
	BackgroundColor     = color.RGBA{12, 24, 40, 255}
	WaterColor          = color.RGBA{0, 30, 15, 255}
	WaterHighlightColor = color.RGBA{0, 60, 45, 255}
	PlayerBulletColor   = color.RGBA{255, 230, 120, 255}
	EnemyBulletColor    = color.RGBA{255, 80, 60, 255}
	TextLightColor      = color.RGBA{240, 240, 240, 255}
	UIBorderColor       = color.RGBA{20, 20, 30, 255}

	// Цвета индикатора фаз
	MenuStateColor    = color.RGBA{70, 130, 180, 220}
	PlayingStateColor = color.RGBA{50, 205, 50, 220}
	OverStateColor    = color.RGBA{220, 60, 60, 220}

	HealthIndicatorFullColor     = color.RGBA{50, 205, 50, 255}
	HealthIndicatorWarningColor  = color.RGBA{255, 215, 0, 255}
	HealthIndicatorCriticalColor = color.RGBA{220, 60, 60, 255}
	HealthIndicatorEmptyColor    = color.RGBA{60, 60, 70, 255}
)
