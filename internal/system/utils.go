// internal/system/utils.go
package system

import (
	"go-sea-battle/internal/component"
	"math"
)

// Collide — проверка столкновения по осям X и Z (Y не учитывается).
// Симметрична: Collide(a, b, t) == Collide(b, a, t).
func Collide(a, b *component.Transform, threshold float64) bool {
	return math.Abs(a.Position.X()-b.Position.X()) < threshold &&
		math.Abs(a.Position.Z()-b.Position.Z()) < threshold
}
