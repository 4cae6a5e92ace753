// internal/ui/indicator.go
package ui

import (
	"go-sea-battle/internal/component"
	"go-sea-battle/internal/config"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const indicatorBorderWidth = 2.0

// StateIndicatorRL — круглый индикатор фазы. Пульсирует при смене фазы.
type StateIndicatorRL struct {
	X, Y          float32
	Radius        float32
	LastChangeAt  time.Time
	lastPhase     component.Phase
	phaseObserved bool
}

func NewStateIndicatorRL(x, y, radius float32) *StateIndicatorRL {
	return &StateIndicatorRL{X: x, Y: y, Radius: radius}
}

// Draw отрисовывает индикатор для фазы phase
func (i *StateIndicatorRL) Draw(phase component.Phase) {
	if !i.phaseObserved || phase != i.lastPhase {
		i.lastPhase = phase
		i.phaseObserved = true
		i.LastChangeAt = time.Now()
	}
	elapsed := time.Since(i.LastChangeAt).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	center := rl.NewVector2(i.X, i.Y)
	rl.DrawCircleV(center, currentRadius, PhaseColor(phase))
	rl.DrawRing(center, currentRadius, currentRadius+indicatorBorderWidth, 0, 360, 36, ToRL(config.UIBorderColor))
}

// PhaseColor возвращает цвет индикатора для фазы
func PhaseColor(phase component.Phase) rl.Color {
	switch phase {
	case component.PhasePlaying:
		return ToRL(config.PlayingStateColor)
	case component.PhaseOver:
		return ToRL(config.OverStateColor)
	default:
		return ToRL(config.MenuStateColor)
	}
}
