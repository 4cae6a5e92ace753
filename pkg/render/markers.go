// pkg/render/markers.go
package render

import (
	"go-sea-battle/internal/component"
	"go-sea-battle/internal/defs"
	"go-sea-battle/internal/interfaces"
	"image/color"

	"go.uber.org/zap"
)

var _ interfaces.ModelProvider = (*MarkerProvider)(nil)

// Marker — "модель" сущности на радаре: цветная точка заданного радиуса
type Marker struct {
	ID     string
	Color  color.RGBA
	Radius float32
}

// MarkerProvider выдаёт маркеры по определениям моделей.
// Загрузка идёт в отдельной горутине, как у настоящих ассетов.
type MarkerProvider struct {
	library defs.Library
	logger  *zap.Logger
}

func NewMarkerProvider(library defs.Library, logger *zap.Logger) *MarkerProvider {
	return &MarkerProvider{library: library, logger: logger}
}

func (p *MarkerProvider) LoadModel(id string) <-chan component.Model {
	reply := make(chan component.Model, 1)
	go func() {
		defer close(reply)
		def, ok := p.library.Get(id)
		if !ok {
			p.logger.Error("model definition not found", zap.String("id", id))
			return
		}
		reply <- &Marker{ID: def.ID, Color: def.Visuals.RGBA(), Radius: def.Visuals.Radius}
	}()
	return reply
}

func (p *MarkerProvider) Clone(model component.Model) component.Model {
	marker, ok := model.(*Marker)
	if !ok {
		return model
	}
	clone := *marker
	return &clone
}
