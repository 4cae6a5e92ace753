// internal/ui/player_health_indicator.go
package ui

import (
	"go-sea-battle/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	HealthSegments   = 10
	HealthBarHeight  = 14.0
	HealthBarSpacing = 2.0
	HealthTotalWidth = 220.0
)

// PlayerHealthIndicator отображает здоровье судна в виде сегментированного бара.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw рисует индикатор здоровья.
func (i *PlayerHealthIndicator) Draw(health, maxHealth int) {
	activeSegments, activeColor := HealthState(health, maxHealth)
	segmentWidth := (HealthTotalWidth - float32(HealthSegments-1)*HealthBarSpacing) / float32(HealthSegments)
	currentX := i.X

	for j := 0; j < HealthSegments; j++ {
		rect := rl.NewRectangle(currentX, i.Y, segmentWidth, HealthBarHeight)
		fillColor := ToRL(config.HealthIndicatorEmptyColor)
		if j < activeSegments {
			fillColor = activeColor
		}
		rl.DrawRectangleRec(rect, fillColor)
		rl.DrawRectangleLinesEx(rect, 2, ToRL(config.UIBorderColor))
		currentX += segmentWidth + HealthBarSpacing
	}
}

// HealthState возвращает число заполненных сегментов (слева направо) и их цвет.
func HealthState(health, maxHealth int) (int, rl.Color) {
	if maxHealth <= 0 || health <= 0 {
		return 0, ToRL(config.HealthIndicatorEmptyColor)
	}
	percentage := float32(health) / float32(maxHealth)

	active := 0
	for k := 0; k < HealthSegments; k++ {
		if percentage > float32(k)/float32(HealthSegments) {
			active++
		}
	}

	switch {
	case percentage < 0.2:
		return active, ToRL(config.HealthIndicatorCriticalColor)
	case percentage < 0.5:
		return active, ToRL(config.HealthIndicatorWarningColor)
	default:
		return active, ToRL(config.HealthIndicatorFullColor)
	}
}

// GetWidth возвращает общую ширину индикатора.
func (i *PlayerHealthIndicator) GetWidth() float32 {
	return HealthTotalWidth
}
