// internal/utils/math.go
package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Forward возвращает единичный вектор "вперёд" для курса heading:
// локальная ось +Z, повёрнутая вокруг Y, то есть (sin h, 0, cos h).
func Forward(heading float64) mgl64.Vec3 {
	return mgl64.Rotate3DY(heading).Mul3x1(mgl64.Vec3{0, 0, 1})
}

// Planar возвращает единичный вектор в горизонтальной плоскости под углом angle к оси X.
func Planar(angle float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(angle), 0, math.Sin(angle)}
}
