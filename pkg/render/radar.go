// pkg/render/radar.go
package render

import (
	"fmt"
	"go-sea-battle/internal/component"
	"go-sea-battle/internal/interfaces"
	"go-sea-battle/internal/types"
	"go-sea-battle/internal/utils"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var _ interfaces.Renderer = (*Radar)(nil)

const (
	gridStep      = 50.0 // единиц мира между кольцами сетки
	headingLength = 12.0 // пикселей
)

// Radar рисует мир сверху: судно в центре, вокруг метки сундуков, врагов и снарядов.
type Radar struct {
	width, height int
	scale         float64 // пикселей на единицу мира
	bulletRadius  float32
	colors        RadarColors
	face          font.Face
	snapshot      *interfaces.Snapshot
	attached      int
}

func NewRadar(width, height int, scale float64, bulletRadius float32, colors RadarColors) *Radar {
	return &Radar{
		width:        width,
		height:       height,
		scale:        scale,
		bulletRadius: bulletRadius,
		colors:       colors,
		face:         basicfont.Face7x13,
	}
}

func (r *Radar) Attach(interfaces.Visual, component.Transform) { r.attached++ }
func (r *Radar) Detach(interfaces.Visual)                      { r.attached-- }

func (r *Radar) Render(snapshot *interfaces.Snapshot) {
	r.snapshot = snapshot
}

// ToScreen переводит мировые X/Z в пиксели относительно центра (cx, cz).
// Ось Z мира направлена вверх по экрану.
func (r *Radar) ToScreen(x, z, cx, cz float64) (float32, float32) {
	sx := float64(r.width)/2 + (x-cx)*r.scale
	sy := float64(r.height)/2 - (z-cz)*r.scale
	return float32(sx), float32(sy)
}

func (r *Radar) Draw(screen *ebiten.Image) {
	screen.Fill(r.colors.BackgroundColor)
	if r.snapshot == nil {
		return
	}

	var cx, cz float64
	if vessel, ok := r.snapshot.VesselSprite(); ok {
		cx, cz = vessel.Transform.Position.X(), vessel.Transform.Position.Z()
	}
	r.drawGrid(screen)

	for _, sprite := range r.snapshot.Sprites {
		x, y := r.ToScreen(sprite.Transform.Position.X(), sprite.Transform.Position.Z(), cx, cz)
		switch sprite.Kind {
		case types.KindPlayerBullet:
			vector.DrawFilledCircle(screen, x, y, r.bulletRadius, r.colors.PlayerBulletColor, true)
		case types.KindEnemyBullet:
			vector.DrawFilledCircle(screen, x, y, r.bulletRadius, r.colors.EnemyBulletColor, true)
		default:
			r.drawMarker(screen, sprite, x, y)
		}
	}

	r.drawStatus(screen)
}

func (r *Radar) drawMarker(screen *ebiten.Image, sprite interfaces.Sprite, x, y float32) {
	marker, ok := sprite.Model.(*Marker)
	if !ok {
		return
	}
	radius := marker.Radius * float32(r.scale)
	vector.DrawFilledCircle(screen, x, y, radius, marker.Color, true)
	vector.StrokeCircle(screen, x, y, radius, 1, DarkenColor(marker.Color), true)

	if sprite.Kind == types.KindVessel {
		forward := utils.Forward(sprite.Transform.Heading)
		hx := x + float32(forward.X()*headingLength)
		hy := y - float32(forward.Z()*headingLength)
		vector.StrokeLine(screen, x, y, hx, hy, 2, r.colors.TextColor, true)
	}
}

func (r *Radar) drawGrid(screen *ebiten.Image) {
	cx, cy := float32(r.width)/2, float32(r.height)/2
	maxRadius := math.Hypot(float64(r.width), float64(r.height)) / 2
	for d := gridStep * r.scale; d < maxRadius; d += gridStep * r.scale {
		vector.StrokeCircle(screen, cx, cy, float32(d), 1, r.colors.GridColor, true)
	}
}

func (r *Radar) drawStatus(screen *ebiten.Image) {
	s := r.snapshot
	lines := []string{
		fmt.Sprintf("phase: %s  frame: %d", s.Phase, s.Frame),
		fmt.Sprintf("health: %d/%d", s.Health, s.MaxHealth),
		fmt.Sprintf("chests: %d  enemies: %d", s.Chests, s.Enemies),
		fmt.Sprintf("collected: %d  destroyed: %d", s.Collected, s.Destroyed),
	}
	for i, line := range lines {
		text.Draw(screen, line, r.face, 10, 20+i*16, r.colors.TextColor)
	}

	var banner string
	switch s.Phase {
	case component.PhaseMenu:
		banner = "Press Enter to start"
	case component.PhaseOver:
		banner = "GAME OVER"
	}
	if banner != "" {
		bounds := text.BoundString(r.face, banner)
		text.Draw(screen, banner, r.face, (r.width-bounds.Dx())/2, r.height/2-40, r.colors.TextColor)
	}
}
