// internal/ui/hud.go
package ui

import (
	"fmt"
	"go-sea-battle/internal/component"
	"go-sea-battle/internal/config"
	"go-sea-battle/internal/interfaces"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudMargin   = 20
	hudFontSize = 20
	titleSize   = 48
)

// HUD рисует поверх 3D-сцены здоровье, фазу и счёт.
type HUD struct {
	health    *PlayerHealthIndicator
	indicator *StateIndicatorRL
}

func NewHUD() *HUD {
	return &HUD{
		health:    NewPlayerHealthIndicator(hudMargin, hudMargin),
		indicator: NewStateIndicatorRL(config.ScreenWidth-hudMargin*2, hudMargin*2, 14),
	}
}

// Draw вызывается после EndMode3D.
func (h *HUD) Draw(snapshot *interfaces.Snapshot) {
	if snapshot == nil {
		return
	}
	text := ToRL(config.TextLightColor)

	h.health.Draw(snapshot.Health, snapshot.MaxHealth)
	rl.DrawText(fmt.Sprintf("%d/%d", snapshot.Health, snapshot.MaxHealth),
		int32(hudMargin+h.health.GetWidth()+10), hudMargin-3, hudFontSize, text)
	rl.DrawText(fmt.Sprintf("Chests: %d  Enemies: %d", snapshot.Collected, snapshot.Destroyed),
		hudMargin, hudMargin+30, hudFontSize, text)
	rl.DrawText(fmt.Sprintf("Around: %d chests, %d enemies", snapshot.Chests, snapshot.Enemies),
		hudMargin, hudMargin+55, hudFontSize-4, text)

	h.indicator.Draw(snapshot.Phase)

	switch snapshot.Phase {
	case component.PhaseMenu:
		drawCentered("SEA BATTLE", config.ScreenHeight/2-60, titleSize, text)
		drawCentered("Press Enter to start", config.ScreenHeight/2, hudFontSize, text)
		if _, ok := snapshot.VesselSprite(); !ok {
			drawCentered("Loading...", config.ScreenHeight/2+30, hudFontSize, text)
		}
	case component.PhaseOver:
		drawCentered("GAME OVER", config.ScreenHeight/2-60, titleSize, ToRL(config.OverStateColor))
		drawCentered(fmt.Sprintf("Collected %d chests, sank %d enemies", snapshot.Collected, snapshot.Destroyed),
			config.ScreenHeight/2, hudFontSize, text)
	}
}

func drawCentered(s string, y int32, size int32, c rl.Color) {
	width := rl.MeasureText(s, size)
	rl.DrawText(s, (config.ScreenWidth-width)/2, y, size, c)
}
