// internal/system/templates.go
package system

import (
	"go-sea-battle/internal/component"
	"go-sea-battle/internal/interfaces"
	"go-sea-battle/internal/types"
)

// TemplateLibrary хранит шаблонные модели сундука и врага.
// Каждый заспавненный экземпляр получает клон шаблона.
type TemplateLibrary struct {
	provider  interfaces.ModelProvider
	templates map[types.Kind]*component.Visual
}

func NewTemplateLibrary(provider interfaces.ModelProvider) *TemplateLibrary {
	return &TemplateLibrary{
		provider:  provider,
		templates: make(map[types.Kind]*component.Visual),
	}
}

// Request запускает асинхронную загрузку шаблона для вида kind.
func (l *TemplateLibrary) Request(kind types.Kind, modelID string) {
	l.templates[kind] = component.NewPendingVisual(kind, l.provider.LoadModel(modelID))
}

// Poll проверяет незавершённые загрузки и возвращает виды, ставшие готовыми в этот тик.
func (l *TemplateLibrary) Poll() []types.Kind {
	var ready []types.Kind
	for kind, visual := range l.templates {
		if visual.Poll() {
			ready = append(ready, kind)
		}
	}
	return ready
}

// Clone возвращает копию готового шаблона; ok=false, пока шаблон не загружен.
func (l *TemplateLibrary) Clone(kind types.Kind) (component.Model, bool) {
	visual, ok := l.templates[kind]
	if !ok || !visual.Ready() {
		return nil, false
	}
	return l.provider.Clone(visual.Model), true
}
