// internal/system/spawn.go
package system

import (
	"go-sea-battle/internal/config"
	"go-sea-battle/internal/entity"
	"go-sea-battle/internal/types"
	"go-sea-battle/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// SpawnSystem пополняет мир сундуками и врагами вокруг судна игрока,
// не превышая лимиты популяции.
type SpawnSystem struct {
	ecs       *entity.ECS
	templates *TemplateLibrary
	rng       *utils.PRNGService
	sim       config.SimSettings
	logger    *zap.Logger
}

func NewSpawnSystem(ecs *entity.ECS, templates *TemplateLibrary, rng *utils.PRNGService, sim config.SimSettings, logger *zap.Logger) *SpawnSystem {
	return &SpawnSystem{
		ecs:       ecs,
		templates: templates,
		rng:       rng,
		sim:       sim,
		logger:    logger,
	}
}

// Update пытается заспавнить по одному сундуку и врагу каждые SpawnEveryFrames кадров.
func (s *SpawnSystem) Update(frame uint64) {
	if frame%uint64(s.sim.SpawnEveryFrames) != 0 {
		return
	}
	s.TrySpawnChest()
	s.TrySpawnEnemy()
}

// TrySpawnChest создаёт сундук, если судно и шаблон готовы и лимит не достигнут.
func (s *SpawnSystem) TrySpawnChest() types.EntityID {
	if s.ecs.Population.Chests >= s.sim.MaxChests {
		return 0
	}
	pos, ok := s.spawnPoint()
	if !ok {
		return 0
	}
	model, ok := s.templates.Clone(types.KindChest)
	if !ok {
		return 0
	}
	id := s.ecs.InsertChest(pos, model)
	s.logger.Debug("chest spawned",
		zap.Uint32("id", uint32(id)),
		zap.Int("chests", s.ecs.Population.Chests))
	return id
}

// TrySpawnEnemy создаёт вражеский корабль при тех же условиях.
func (s *SpawnSystem) TrySpawnEnemy() types.EntityID {
	if s.ecs.Population.Enemies >= s.sim.MaxEnemies {
		return 0
	}
	pos, ok := s.spawnPoint()
	if !ok {
		return 0
	}
	model, ok := s.templates.Clone(types.KindEnemy)
	if !ok {
		return 0
	}
	id := s.ecs.InsertEnemy(pos, model)
	s.logger.Debug("enemy spawned",
		zap.Uint32("id", uint32(id)),
		zap.Int("enemies", s.ecs.Population.Enemies))
	return id
}

// spawnPoint выбирает точку перед судном: X в [vx, vx+JitterX), Z в [vz-JitterZ, vz+JitterZ).
func (s *SpawnSystem) spawnPoint() (mgl64.Vec3, bool) {
	_, vessel, ok := s.ecs.Vessel()
	if !ok {
		return mgl64.Vec3{}, false
	}
	return mgl64.Vec3{
		vessel.Position.X() + s.rng.Range(0, s.sim.SpawnJitterX),
		s.sim.SpawnHeight,
		vessel.Position.Z() + s.rng.Range(-s.sim.SpawnJitterZ, s.sim.SpawnJitterZ),
	}, true
}
