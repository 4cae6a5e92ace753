// internal/system/weapon.go
package system

import (
	"go-sea-battle/internal/config"
	"go-sea-battle/internal/entity"
	"go-sea-battle/internal/event"
	"go-sea-battle/internal/types"
	"go-sea-battle/internal/utils"
	"time"
)

// WeaponSystem создаёт снаряды игрока и врагов
type WeaponSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	sim             config.SimSettings
}

func NewWeaponSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, sim config.SimSettings) *WeaponSystem {
	return &WeaponSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		sim:             sim,
	}
}

// FirePlayer выпускает снаряд из позиции судна вдоль его курса.
func (s *WeaponSystem) FirePlayer(now time.Time) types.EntityID {
	_, vessel, ok := s.ecs.Vessel()
	if !ok {
		return 0
	}
	velocity := utils.Forward(vessel.Heading).Mul(s.sim.BulletSpeed)
	id := s.ecs.InsertBullet(0, vessel.Position, velocity, now.Add(s.sim.BulletLifetime))
	s.fired(id)
	return id
}

// FireEnemies — залп: каждый живой враг стреляет в случайном горизонтальном направлении.
func (s *WeaponSystem) FireEnemies(now time.Time) int {
	fired := 0
	for id := range s.ecs.Live(types.KindEnemy) {
		pos := s.ecs.Transforms[id].Position
		velocity := utils.Planar(s.rng.Angle()).Mul(s.sim.EnemyBulletSpeed)
		if bullet := s.ecs.InsertBullet(id, pos, velocity, now.Add(s.sim.BulletLifetime)); bullet != 0 {
			s.fired(bullet)
			fired++
		}
	}
	return fired
}

func (s *WeaponSystem) fired(id types.EntityID) {
	if id == 0 {
		return
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.BulletFired, Data: id})
}
