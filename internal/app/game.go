// internal/app/game.go
package app

import (
	"go-sea-battle/internal/component"
	"go-sea-battle/internal/config"
	"go-sea-battle/internal/defs"
	"go-sea-battle/internal/entity"
	"go-sea-battle/internal/event"
	"go-sea-battle/internal/interfaces"
	"go-sea-battle/internal/logging"
	"go-sea-battle/internal/state"
	"go-sea-battle/internal/system"
	"go-sea-battle/internal/types"
	"go-sea-battle/internal/utils"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	_ interfaces.GameContext = (*Game)(nil)
	_ interfaces.IntentSink  = (*Game)(nil)
)

// Options — зависимости игры от платформы
type Options struct {
	Settings *config.Settings
	Clock    interfaces.Clock
	Models   interfaces.ModelProvider
	Renderer interfaces.Renderer
	Sinks    []interfaces.SnapshotSink
	Logger   *zap.Logger
	// Dev пропускает меню и сразу запускает игру
	Dev bool
}

// Game holds the main game state and logic.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	StateMachine    *state.StateMachine
	MovementSystem  *system.MovementSystem
	SpawnSystem     *system.SpawnSystem
	WeaponSystem    *system.WeaponSystem
	CombatSystem    *system.CombatSystem
	ScoreSystem     *system.ScoreSystem
	Templates       *system.TemplateLibrary
	Rng             *utils.PRNGService

	settings *config.Settings
	clock    interfaces.Clock
	renderer interfaces.Renderer
	sinks    []interfaces.SnapshotSink
	logger   *zap.Logger
	intents  []interfaces.Intent
}

// NewGame создаёт сессию: запрашивает модели судна и шаблонов,
// регистрирует судно в состоянии Pending и переводит машину состояний в меню.
func NewGame(opts Options) *Game {
	settings := opts.Settings
	if settings == nil {
		settings = config.Default()
	}
	clock := opts.Clock
	if clock == nil {
		clock = utils.NewSystemClock()
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = interfaces.NopRenderer{}
	}

	sessionID := uuid.NewString()
	logger := logging.OrNop(opts.Logger).With(zap.String("session", sessionID))

	ecs := entity.NewECS(renderer)
	ecs.Session.ID = sessionID
	ecs.Session.StartedAt = clock.Now()

	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)
	sim := settings.Sim

	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		StateMachine:    state.NewStateMachine(eventDispatcher, logger),
		MovementSystem:  system.NewMovementSystem(ecs, sim.EnemyStep),
		Templates:       system.NewTemplateLibrary(opts.Models),
		Rng:             rng,
		settings:        settings,
		clock:           clock,
		renderer:        renderer,
		sinks:           opts.Sinks,
		logger:          logger,
	}
	g.SpawnSystem = system.NewSpawnSystem(ecs, g.Templates, rng, sim, logger)
	g.WeaponSystem = system.NewWeaponSystem(ecs, eventDispatcher, rng, sim)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher, g.WeaponSystem, sim, logger)
	g.ScoreSystem = system.NewScoreSystem(ecs, eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.VesselHit, listener)
	eventDispatcher.Subscribe(event.EnemyDestroyed, listener)

	vesselStart := mgl64.Vec3{config.VesselStartX, config.VesselStartY, config.VesselStartZ}
	ecs.CreateVessel(vesselStart, sim.MaxHealth, opts.Models.LoadModel(defs.ModelVessel))
	g.Templates.Request(types.KindChest, defs.ModelChest)
	g.Templates.Request(types.KindEnemy, defs.ModelEnemy)

	if opts.Dev {
		g.StateMachine.SetState(state.NewPlayingState(g.StateMachine, g))
	} else {
		g.StateMachine.SetState(state.NewMenuState(g.StateMachine, g, sim.MenuDelay))
	}
	logger.Info("session created", zap.Bool("dev", opts.Dev))
	return g
}

// HandleIntent ставит намерение в очередь. Оно применится в начале следующего тика.
func (g *Game) HandleIntent(intent interfaces.Intent) {
	g.intents = append(g.intents, intent)
}

// Update выполняет один тик игры.
func (g *Game) Update() {
	now := g.clock.Now()

	g.applyIntents(now)
	g.pollAssets()

	if g.Phase() == component.PhasePlaying {
		g.ECS.Session.Frame++
		frame := g.ECS.Session.Frame
		g.MovementSystem.Update()
		g.SpawnSystem.Update(frame)
		g.CombatSystem.Update(frame, now)
	} else {
		// Срок снарядов истекает и вне игры
		g.CombatSystem.Expire(now)
	}

	g.StateMachine.Update(now)

	snapshot := g.Snapshot()
	g.renderer.Render(snapshot)
	for _, sink := range g.sinks {
		sink.Publish(snapshot)
	}
}

// Phase возвращает текущую фазу сессии.
func (g *Game) Phase() component.Phase {
	return g.StateMachine.Phase()
}

func (g *Game) applyIntents(now time.Time) {
	intents := g.intents
	g.intents = nil

	sim := g.settings.Sim
	session := g.ECS.Session
	for _, intent := range intents {
		switch intent {
		case interfaces.IntentStartGame:
			session.StartRequested = true
		case interfaces.IntentToggleCamera:
			if session.Camera == component.CameraChase {
				session.Camera = component.CameraOverhead
			} else {
				session.Camera = component.CameraChase
			}
		case interfaces.IntentFire:
			if g.Phase() == component.PhasePlaying {
				g.WeaponSystem.FirePlayer(now)
			}
		default:
			// Пока модель судна не загружена, управления нет
			if !g.ECS.IsLive(g.ECS.VesselID) {
				continue
			}
			speed := g.ECS.Speeds[g.ECS.VesselID]
			switch intent {
			case interfaces.IntentForward:
				speed.Forward = sim.VesselSpeed
			case interfaces.IntentReverse:
				speed.Forward = -sim.VesselSpeed
			case interfaces.IntentYawLeft:
				speed.Rotation = sim.TurnRate
			case interfaces.IntentYawRight:
				speed.Rotation = -sim.TurnRate
			case interfaces.IntentStop:
				speed.Stop()
			}
		}
	}
}

func (g *Game) pollAssets() {
	if g.ECS.PollVessel() {
		g.logger.Info("vessel model ready")
	}
	for _, kind := range g.Templates.Poll() {
		g.logger.Info("template model ready", zap.Stringer("kind", kind))
	}
}

// Snapshot собирает неизменяемый снимок всех живых сущностей.
func (g *Game) Snapshot() *interfaces.Snapshot {
	ecs := g.ECS
	session := ecs.Session
	snapshot := &interfaces.Snapshot{
		Session:   session.ID,
		Frame:     session.Frame,
		Phase:     g.Phase(),
		Chests:    ecs.Population.Chests,
		Enemies:   ecs.Population.Enemies,
		Collected: session.Collected,
		Destroyed: session.Destroyed,
		Camera:    session.Camera,
		Vessel:    -1,
	}
	if health, ok := ecs.Healths[ecs.VesselID]; ok {
		snapshot.Health = health.Value
		snapshot.MaxHealth = health.Max
	}

	kinds := []types.Kind{types.KindVessel, types.KindChest, types.KindEnemy, types.KindPlayerBullet, types.KindEnemyBullet}
	for _, kind := range kinds {
		for id := range ecs.Live(kind) {
			if kind == types.KindVessel {
				snapshot.Vessel = len(snapshot.Sprites)
			}
			snapshot.Sprites = append(snapshot.Sprites, interfaces.Sprite{
				Visual:    interfaces.Visual{ID: id, Kind: kind, Model: ecs.Visuals[id].Model},
				Transform: *ecs.Transforms[id],
			})
		}
	}
	return snapshot
}

// StartedAt — момент создания сессии
func (g *Game) StartedAt() time.Time {
	return g.ECS.Session.StartedAt
}

// StartRequested сообщает, просил ли игрок начать игру
func (g *Game) StartRequested() bool {
	return g.ECS.Session.StartRequested
}

// VesselHealth возвращает здоровье судна игрока
func (g *Game) VesselHealth() (int, bool) {
	health, ok := g.ECS.Healths[g.ECS.VesselID]
	if !ok {
		return 0, false
	}
	return health.Value, true
}
