// internal/interfaces/platform.go
package interfaces

import (
	"go-sea-battle/internal/component"
	"go-sea-battle/internal/types"
	"time"
)

// ModelProvider загружает модели по идентификатору.
// Загрузка асинхронная: результат приходит в канал, закрытие канала без значения
// означает ошибку загрузки.
type ModelProvider interface {
	LoadModel(id string) <-chan component.Model
	Clone(model component.Model) component.Model
}

// Visual — то, что ядро передаёт сцене при создании и удалении сущности.
type Visual struct {
	ID    types.EntityID  `json:"id"`
	Kind  types.Kind      `json:"kind"`
	Model component.Model `json:"-"`
}

// Scene — подключение и отключение визуальных представлений.
type Scene interface {
	Attach(v Visual, t component.Transform)
	Detach(v Visual)
}

// Renderer получает снимок мира после каждого тика.
type Renderer interface {
	Scene
	Render(snapshot *Snapshot)
}

// SnapshotSink — дополнительный получатель снимков (например, трансляция зрителям).
type SnapshotSink interface {
	Publish(snapshot *Snapshot)
}

// Clock — источник времени. В тестах подменяется управляемыми часами.
type Clock interface {
	Now() time.Time
}

// Sprite — живая сущность в снимке
type Sprite struct {
	Visual
	Transform component.Transform `json:"transform"`
}

// Snapshot — неизменяемый снимок мира для отрисовки
type Snapshot struct {
	Session   string               `json:"session"`
	Frame     uint64               `json:"frame"`
	Phase     component.Phase      `json:"phase"`
	Health    int                  `json:"health"`
	MaxHealth int                  `json:"maxHealth"`
	Chests    int                  `json:"chests"`
	Enemies   int                  `json:"enemies"`
	Collected int                  `json:"collected"`
	Destroyed int                  `json:"destroyed"`
	Camera    component.CameraMode `json:"camera"`
	// Vessel — индекс судна в Sprites или -1, если судно ещё не загружено.
	Vessel  int      `json:"vessel"`
	Sprites []Sprite `json:"sprites"`
}

// VesselSprite возвращает спрайт судна игрока, если он есть.
func (s *Snapshot) VesselSprite() (Sprite, bool) {
	if s == nil || s.Vessel < 0 || s.Vessel >= len(s.Sprites) {
		return Sprite{}, false
	}
	return s.Sprites[s.Vessel], true
}

// NopRenderer ничего не рисует. Используется, когда рендерер не задан.
type NopRenderer struct{}

func (NopRenderer) Attach(Visual, component.Transform) {}
func (NopRenderer) Detach(Visual)                      {}
func (NopRenderer) Render(*Snapshot)                   {}
