package system

import (
	"go-sea-battle/internal/component"
	"go-sea-battle/internal/config"
	"go-sea-battle/internal/defs"
	"go-sea-battle/internal/entity"
	"go-sea-battle/internal/event"
	"go-sea-battle/internal/testutil"
	"go-sea-battle/internal/types"
	"go-sea-battle/internal/utils"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// world — собранные системы поверх одного хранилища
type world struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	models     *testutil.FakeModels
	templates  *TemplateLibrary
	movement   *MovementSystem
	spawn      *SpawnSystem
	weapons    *WeaponSystem
	combat     *CombatSystem
	sim        config.SimSettings
	events     *recorder
}

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newWorld(t *testing.T, sim config.SimSettings) *world {
	t.Helper()
	w := &world{
		ecs:        entity.NewECS(testutil.NewRecordingScene()),
		dispatcher: event.NewDispatcher(),
		models:     testutil.NewFakeModels(true),
		sim:        sim,
		events:     &recorder{},
	}
	rng := utils.NewPRNGService(42)
	logger := zap.NewNop()

	w.templates = NewTemplateLibrary(w.models)
	w.templates.Request(types.KindChest, defs.ModelChest)
	w.templates.Request(types.KindEnemy, defs.ModelEnemy)
	require.Len(t, w.templates.Poll(), 2)

	w.ecs.CreateVessel(mgl64.Vec3{0, 4, 0}, sim.MaxHealth, w.models.LoadModel(defs.ModelVessel))
	require.True(t, w.ecs.PollVessel())

	w.movement = NewMovementSystem(w.ecs, sim.EnemyStep)
	w.spawn = NewSpawnSystem(w.ecs, w.templates, rng, sim, logger)
	w.weapons = NewWeaponSystem(w.ecs, w.dispatcher, rng, sim)
	w.combat = NewCombatSystem(w.ecs, w.dispatcher, w.weapons, sim, logger)
	NewScoreSystem(w.ecs, w.dispatcher)

	for _, et := range []event.EventType{event.ChestCollected, event.EnemyDestroyed, event.EnemyRammed, event.VesselHit, event.BulletFired} {
		w.dispatcher.Subscribe(et, w.events)
	}
	return w
}

func defaultSim() config.SimSettings {
	return config.Default().Sim
}

func (w *world) vessel(t *testing.T) *component.Transform {
	t.Helper()
	_, transform, ok := w.ecs.Vessel()
	require.True(t, ok)
	return transform
}

func (w *world) health() int {
	return w.ecs.Healths[w.ecs.VesselID].Value
}
