// internal/scene/scene.go
package scene

import (
	"go-sea-battle/internal/assets"
	"go-sea-battle/internal/component"
	"go-sea-battle/internal/config"
	"go-sea-battle/internal/interfaces"
	"go-sea-battle/internal/types"
	"go-sea-battle/internal/ui"
	"go-sea-battle/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

var _ interfaces.Renderer = (*Scene3D)(nil)

// Scene3D — raylib-сцена. Ядро подключает и отключает в ней модели,
// а после тика передаёт снимок, который рисуется в Draw.
type Scene3D struct {
	attached map[types.EntityID]interfaces.Visual
	snapshot *interfaces.Snapshot
	camera   rl.Camera3D
	// cameraT: 0 — камера за кормой, 1 — вид сверху
	cameraT float32
	hud     *ui.HUD
	logger  *zap.Logger
}

func NewScene3D(logger *zap.Logger) *Scene3D {
	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective
	camera.Fovy = config.CameraFovy
	return &Scene3D{
		attached: make(map[types.EntityID]interfaces.Visual),
		camera:   camera,
		hud:      ui.NewHUD(),
		logger:   logger,
	}
}

func (s *Scene3D) Attach(v interfaces.Visual, t component.Transform) {
	s.attached[v.ID] = v
	s.logger.Debug("visual attached", zap.Uint32("id", uint32(v.ID)), zap.Stringer("kind", v.Kind))
}

func (s *Scene3D) Detach(v interfaces.Visual) {
	delete(s.attached, v.ID)
	s.logger.Debug("visual detached", zap.Uint32("id", uint32(v.ID)), zap.Stringer("kind", v.Kind))
}

func (s *Scene3D) Render(snapshot *interfaces.Snapshot) {
	s.snapshot = snapshot
}

// Attached возвращает число подключённых моделей
func (s *Scene3D) Attached() int {
	return len(s.attached)
}

// Draw рисует последний снимок. Вызывается между BeginDrawing и EndDrawing.
func (s *Scene3D) Draw() {
	if s.snapshot == nil {
		return
	}
	s.updateCamera()

	rl.BeginMode3D(s.camera)
	center := rl.NewVector3(s.camera.Target.X, 0, s.camera.Target.Z)
	rl.DrawPlane(center, rl.NewVector2(config.WaterSize, config.WaterSize), ui.ToRL(config.WaterColor))
	for _, sprite := range s.snapshot.Sprites {
		if _, ok := s.attached[sprite.ID]; !ok {
			continue
		}
		s.drawSprite(sprite)
	}
	rl.EndMode3D()

	s.hud.Draw(s.snapshot)
}

func (s *Scene3D) drawSprite(sprite interfaces.Sprite) {
	pos := toRL(sprite.Transform)
	switch sprite.Kind {
	case types.KindPlayerBullet:
		rl.DrawSphere(pos, config.RadarBullet/2, ui.ToRL(config.PlayerBulletColor))
	case types.KindEnemyBullet:
		rl.DrawSphere(pos, config.RadarBullet/2, ui.ToRL(config.EnemyBulletColor))
	default:
		instance, ok := sprite.Model.(*assets.Instance)
		if !ok {
			return
		}
		scale := rl.NewVector3(instance.Def.Scale[0], instance.Def.Scale[1], instance.Def.Scale[2])
		rotation := float32(sprite.Transform.Heading) * rl.Rad2deg
		rl.DrawModelEx(instance.Model, pos, rl.NewVector3(0, 1, 0), rotation, scale, instance.Tint)
	}
}

// updateCamera плавно переводит камеру между позициями за кормой и сверху.
func (s *Scene3D) updateCamera() {
	vessel, ok := s.snapshot.VesselSprite()
	if !ok {
		s.camera.Position = rl.NewVector3(0, config.CameraChaseHeight, -config.CameraChaseDistance)
		s.camera.Target = rl.NewVector3(0, 0, 0)
		return
	}

	goal := float32(0)
	if s.snapshot.Camera == component.CameraOverhead {
		goal = 1
	}
	s.cameraT = utils.Lerp(s.cameraT, goal, config.CameraLerpSpeed)

	target := toRL(vessel.Transform)
	forward := utils.Forward(vessel.Transform.Heading)
	chasePos := rl.NewVector3(
		target.X-float32(forward.X())*config.CameraChaseDistance,
		target.Y+config.CameraChaseHeight,
		target.Z-float32(forward.Z())*config.CameraChaseDistance,
	)
	topDownPos := rl.NewVector3(target.X, config.CameraOverheadY, target.Z+0.1)

	s.camera.Position = Vector3Lerp(chasePos, topDownPos, s.cameraT)
	s.camera.Target = target
}

// Vector3Lerp выполняет линейную интерполяцию между двумя векторами
func Vector3Lerp(v1, v2 rl.Vector3, t float32) rl.Vector3 {
	return rl.Vector3Add(v1, rl.Vector3Scale(rl.Vector3Subtract(v2, v1), t))
}

func toRL(t component.Transform) rl.Vector3 {
	return rl.NewVector3(float32(t.Position.X()), float32(t.Position.Y()), float32(t.Position.Z()))
}
