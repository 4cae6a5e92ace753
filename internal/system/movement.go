// internal/system/movement.go
package system

import (
	"go-sea-battle/internal/entity"
	"go-sea-battle/internal/types"
	"go-sea-battle/internal/utils"
)

// MovementSystem обновляет позиции судна, врагов и снарядов. Все скорости заданы за тик.
type MovementSystem struct {
	ecs       *entity.ECS
	enemyStep float64
}

func NewMovementSystem(ecs *entity.ECS, enemyStep float64) *MovementSystem {
	return &MovementSystem{ecs: ecs, enemyStep: enemyStep}
}

func (s *MovementSystem) Update() {
	s.moveVessel()
	s.pursue()
	s.moveBullets(types.KindPlayerBullet)
	s.moveBullets(types.KindEnemyBullet)
}

// moveVessel сначала поворачивает судно, затем сдвигает вдоль нового курса.
func (s *MovementSystem) moveVessel() {
	id, transform, ok := s.ecs.Vessel()
	if !ok {
		return
	}
	speed := s.ecs.Speeds[id]
	transform.Heading = utils.NormalizeAngle(transform.Heading + speed.Rotation)
	transform.Position = transform.Position.Add(utils.Forward(transform.Heading).Mul(speed.Forward))
}

// pursue двигает врагов к судну только по оси Z, фиксированным шагом.
// Коррекции перелёта нет: у цели враг может колебаться на один шаг.
func (s *MovementSystem) pursue() {
	_, vessel, ok := s.ecs.Vessel()
	if !ok {
		return
	}
	targetZ := vessel.Position.Z()
	for id := range s.ecs.Live(types.KindEnemy) {
		pos := &s.ecs.Transforms[id].Position
		switch {
		case pos[2] < targetZ:
			pos[2] += s.enemyStep
		case pos[2] > targetZ:
			pos[2] -= s.enemyStep
		}
	}
}

func (s *MovementSystem) moveBullets(kind types.Kind) {
	for id := range s.ecs.Live(kind) {
		transform := s.ecs.Transforms[id]
		transform.Position = transform.Position.Add(s.ecs.Velocities[id].Vec)
	}
}
