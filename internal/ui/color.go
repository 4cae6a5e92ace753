// internal/ui/color.go
package ui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ToRL переводит цвет из конфигурации в цвет raylib
func ToRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
