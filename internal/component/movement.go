// internal/component/movement.go
package component

import "github.com/go-gl/mathgl/mgl64"

// Transform — положение и курс сущности в мире.
// Ось Y направлена вверх, курс — рыскание вокруг Y в радианах.
type Transform struct {
	Position mgl64.Vec3 `json:"position"`
	Heading  float64    `json:"heading"`
}

// Speed — скорости судна игрока за один тик
type Speed struct {
	Forward  float64 // единиц за тик вдоль курса
	Rotation float64 // радиан за тик
}

// Stop обнуляет обе скорости.
func (s *Speed) Stop() {
	s.Forward = 0
	s.Rotation = 0
}

// Velocity — линейная скорость снаряда за тик
type Velocity struct {
	Vec mgl64.Vec3
}
