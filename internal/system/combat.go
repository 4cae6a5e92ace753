// internal/system/combat.go
package system

import (
	"go-sea-battle/internal/config"
	"go-sea-battle/internal/entity"
	"go-sea-battle/internal/event"
	"go-sea-battle/internal/types"
	"time"

	"go.uber.org/zap"
)

// CombatSystem разрешает столкновения, залпы врагов и истечение снарядов.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	weapons         *WeaponSystem
	sim             config.SimSettings
	logger          *zap.Logger
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, weapons *WeaponSystem, sim config.SimSettings, logger *zap.Logger) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		weapons:         weapons,
		sim:             sim,
		logger:          logger,
	}
}

// Update выполняет один тик боя. Порядок шагов фиксирован:
// сундуки, таран, залп врагов, снаряды игрока, снаряды врагов, очистка.
func (s *CombatSystem) Update(frame uint64, now time.Time) {
	vesselID, vessel, ok := s.ecs.Vessel()
	if !ok {
		return
	}

	// 1. Сбор сундуков
	for id := range s.ecs.Live(types.KindChest) {
		if Collide(vessel, s.ecs.Transforms[id], s.sim.CollisionThreshold) {
			s.ecs.Remove(id)
			s.eventDispatcher.Dispatch(event.Event{Type: event.ChestCollected, Data: id})
		}
	}

	// 2. Таран
	for id := range s.ecs.Live(types.KindEnemy) {
		if Collide(vessel, s.ecs.Transforms[id], s.sim.CollisionThreshold) {
			s.ecs.Remove(id)
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyRammed, Data: id})
			s.damageVessel(vesselID, s.sim.RamPenalty)
		}
	}

	// 3. Залп
	if frame%uint64(s.sim.EnemyFireEveryFrames) == 0 {
		s.weapons.FireEnemies(now)
	}

	// 4. Снаряды игрока по врагам
	for bulletID := range s.ecs.Live(types.KindPlayerBullet) {
		if !s.ecs.Bullets[bulletID].LiveAt(now) {
			continue
		}
		bullet := s.ecs.Transforms[bulletID]
		for enemyID := range s.ecs.Live(types.KindEnemy) {
			if !Collide(bullet, s.ecs.Transforms[enemyID], s.sim.CollisionThreshold) {
				continue
			}
			s.ecs.Remove(enemyID)
			s.ecs.Remove(bulletID)
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: enemyID})
			break
		}
	}

	// 5. Снаряды врагов по судну
	for bulletID := range s.ecs.Live(types.KindEnemyBullet) {
		if !s.ecs.Bullets[bulletID].LiveAt(now) {
			continue
		}
		if Collide(vessel, s.ecs.Transforms[bulletID], s.sim.CollisionThreshold) {
			s.ecs.Remove(bulletID)
			s.damageVessel(vesselID, s.sim.ShotPenalty)
		}
	}

	s.Expire(now)
}

// Expire удаляет все снаряды, срок которых истёк к моменту now.
func (s *CombatSystem) Expire(now time.Time) {
	var expired []types.EntityID
	for id, bullet := range s.ecs.Bullets {
		if !now.Before(bullet.Deadline) {
			bullet.Alive = false
			expired = append(expired, id)
		}
	}
	for _, id := range expired {
		s.ecs.Remove(id)
	}
	if len(expired) > 0 {
		s.logger.Debug("bullets expired", zap.Int("count", len(expired)))
	}
}

func (s *CombatSystem) damageVessel(id types.EntityID, amount int) {
	health, ok := s.ecs.Healths[id]
	if !ok {
		return
	}
	left := health.Damage(amount)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.VesselHit,
		Data: event.VesselHitData{Damage: amount, Health: left},
	})
}
