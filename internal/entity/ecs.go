// internal/entity/ecs.go
package entity

import (
	"go-sea-battle/internal/component"
	"go-sea-battle/internal/interfaces"
	"go-sea-battle/internal/types"
	"iter"
	"slices"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// ECS владеет всеми живыми игровыми объектами.
// Все мутации выполняются из одного потока тика.
type ECS struct {
	NextID     types.EntityID
	Kinds      map[types.EntityID]types.Kind
	Transforms map[types.EntityID]*component.Transform
	Speeds     map[types.EntityID]*component.Speed
	Velocities map[types.EntityID]*component.Velocity
	Healths    map[types.EntityID]*component.Health
	Chests     map[types.EntityID]*component.Chest
	Enemies    map[types.EntityID]*component.Enemy
	Bullets    map[types.EntityID]*component.Bullet
	Visuals    map[types.EntityID]*component.Visual
	VesselID   types.EntityID
	Population component.Population
	Session    *component.Session

	scene interfaces.Scene
}

// NewECS создаёт пустое хранилище. scene получает Attach/Detach при создании и удалении сущностей.
func NewECS(scene interfaces.Scene) *ECS {
	if scene == nil {
		scene = interfaces.NopRenderer{}
	}
	return &ECS{
		NextID:     1,
		Kinds:      make(map[types.EntityID]types.Kind),
		Transforms: make(map[types.EntityID]*component.Transform),
		Speeds:     make(map[types.EntityID]*component.Speed),
		Velocities: make(map[types.EntityID]*component.Velocity),
		Healths:    make(map[types.EntityID]*component.Health),
		Chests:     make(map[types.EntityID]*component.Chest),
		Enemies:    make(map[types.EntityID]*component.Enemy),
		Bullets:    make(map[types.EntityID]*component.Bullet),
		Visuals:    make(map[types.EntityID]*component.Visual),
		Session:    &component.Session{},
		scene:      scene,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// CreateVessel регистрирует судно игрока в состоянии Pending.
// До прихода модели судно не видно ни одной системе.
func (ecs *ECS) CreateVessel(pos mgl64.Vec3, maxHealth int, request <-chan component.Model) types.EntityID {
	id := ecs.NewEntity()
	ecs.Kinds[id] = types.KindVessel
	ecs.Transforms[id] = &component.Transform{Position: pos}
	ecs.Speeds[id] = &component.Speed{}
	ecs.Healths[id] = component.NewHealth(maxHealth)
	ecs.Visuals[id] = component.NewPendingVisual(types.KindVessel, request)
	ecs.VesselID = id
	return id
}

// PollVessel завершает асинхронную загрузку судна, если модель уже пришла.
// Возвращает true в тик, когда судно стало готовым.
func (ecs *ECS) PollVessel() bool {
	visual, ok := ecs.Visuals[ecs.VesselID]
	if !ok || !visual.Poll() {
		return false
	}
	ecs.attach(ecs.VesselID)
	return true
}

// Vessel возвращает судно игрока, если оно загружено.
func (ecs *ECS) Vessel() (types.EntityID, *component.Transform, bool) {
	if !ecs.IsLive(ecs.VesselID) {
		return 0, nil, false
	}
	return ecs.VesselID, ecs.Transforms[ecs.VesselID], true
}

// InsertChest создаёт сундук с уже готовой моделью.
func (ecs *ECS) InsertChest(pos mgl64.Vec3, model component.Model) types.EntityID {
	id := ecs.NewEntity()
	ecs.Kinds[id] = types.KindChest
	ecs.Transforms[id] = &component.Transform{Position: pos}
	ecs.Chests[id] = &component.Chest{}
	ecs.Visuals[id] = component.NewReadyVisual(types.KindChest, model)
	ecs.Population.Chests++
	ecs.attach(id)
	return id
}

// InsertEnemy создаёт вражеский корабль с уже готовой моделью.
func (ecs *ECS) InsertEnemy(pos mgl64.Vec3, model component.Model) types.EntityID {
	id := ecs.NewEntity()
	ecs.Kinds[id] = types.KindEnemy
	ecs.Transforms[id] = &component.Transform{Position: pos}
	ecs.Enemies[id] = &component.Enemy{}
	ecs.Visuals[id] = component.NewReadyVisual(types.KindEnemy, model)
	ecs.Population.Enemies++
	ecs.attach(id)
	return id
}

// InsertBullet создаёт снаряд. owner == 0 — снаряд игрока,
// иначе снаряд добавляется в список выстрелов врага-владельца.
// Если владелец уже удалён, снаряд не создаётся и возвращается 0.
func (ecs *ECS) InsertBullet(owner types.EntityID, pos, velocity mgl64.Vec3, deadline time.Time) types.EntityID {
	kind := types.KindPlayerBullet
	var enemy *component.Enemy
	if owner != 0 {
		var ok bool
		if enemy, ok = ecs.Enemies[owner]; !ok {
			return 0
		}
		kind = types.KindEnemyBullet
	}

	id := ecs.NewEntity()
	ecs.Kinds[id] = kind
	ecs.Transforms[id] = &component.Transform{Position: pos}
	ecs.Velocities[id] = &component.Velocity{Vec: velocity}
	ecs.Bullets[id] = &component.Bullet{Owner: owner, Deadline: deadline, Alive: true}
	ecs.Visuals[id] = component.NewReadyVisual(kind, nil)
	if enemy != nil {
		enemy.Bullets = append(enemy.Bullets, id)
	}
	ecs.attach(id)
	return id
}

// Remove удаляет сущность. Повторное удаление — no-op, возвращает false.
// Враг удаляется вместе со всеми своими снарядами. Отключение визуального
// представления происходит в том же вызове.
func (ecs *ECS) Remove(id types.EntityID) bool {
	kind, ok := ecs.Kinds[id]
	if !ok {
		return false
	}

	switch kind {
	case types.KindChest:
		ecs.Population.Chests--
	case types.KindEnemy:
		enemy := ecs.Enemies[id]
		// Отсоединяем список заранее: Remove снаряда правит список владельца.
		owned := enemy.Bullets
		enemy.Bullets = nil
		for _, bulletID := range owned {
			ecs.Remove(bulletID)
		}
		ecs.Population.Enemies--
	case types.KindPlayerBullet, types.KindEnemyBullet:
		bullet := ecs.Bullets[id]
		bullet.Alive = false
		if owner, ok := ecs.Enemies[bullet.Owner]; ok {
			owner.DropBullet(id)
		}
	case types.KindVessel:
		ecs.VesselID = 0
	}

	if visual, ok := ecs.Visuals[id]; ok && visual.Ready() {
		ecs.scene.Detach(interfaces.Visual{ID: id, Kind: kind, Model: visual.Model})
	}

	delete(ecs.Kinds, id)
	delete(ecs.Transforms, id)
	delete(ecs.Speeds, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Chests, id)
	delete(ecs.Enemies, id)
	delete(ecs.Bullets, id)
	delete(ecs.Visuals, id)
	return true
}

// IsLive сообщает, участвует ли сущность в симуляции:
// она есть в хранилище, её модель загружена, а снаряд не помечен мёртвым.
func (ecs *ECS) IsLive(id types.EntityID) bool {
	kind, ok := ecs.Kinds[id]
	if !ok {
		return false
	}
	if visual, ok := ecs.Visuals[id]; !ok || !visual.Ready() {
		return false
	}
	if kind.IsBullet() && !ecs.Bullets[id].Alive {
		return false
	}
	return true
}

// Live возвращает живые сущности вида kind в порядке возрастания ID.
// Последовательность конечна и может запускаться заново каждый тик.
// Удаление сущностей во время обхода допустимо: удалённые пропускаются.
func (ecs *ECS) Live(kind types.Kind) iter.Seq[types.EntityID] {
	return func(yield func(types.EntityID) bool) {
		var ids []types.EntityID
		for id, k := range ecs.Kinds {
			if k == kind {
				ids = append(ids, id)
			}
		}
		slices.Sort(ids)
		for _, id := range ids {
			if !ecs.IsLive(id) {
				continue
			}
			if !yield(id) {
				return
			}
		}
	}
}

// Count возвращает число живых сущностей вида kind.
func (ecs *ECS) Count(kind types.Kind) int {
	n := 0
	for range ecs.Live(kind) {
		n++
	}
	return n
}

func (ecs *ECS) attach(id types.EntityID) {
	visual := ecs.Visuals[id]
	ecs.scene.Attach(interfaces.Visual{ID: id, Kind: visual.Kind, Model: visual.Model}, *ecs.Transforms[id])
}
