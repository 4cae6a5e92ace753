// internal/defs/models.go
package defs

// ModelDefinition описывает 3D-модель и её отрисовку.
type ModelDefinition struct {
	ID      string     `json:"id" yaml:"id"`
	Path    string     `json:"path" yaml:"path"`
	Texture string     `json:"texture,omitempty" yaml:"texture,omitempty"`
	Scale   [3]float32 `json:"scale" yaml:"scale"`
	Shape   Shape      `json:"shape" yaml:"shape"` // используется, если Path не найден
	Size    [3]float32 `json:"size" yaml:"size"`   // размеры запасного меша
	Visuals Visuals    `json:"visuals" yaml:"visuals"`
}

// Library — определения моделей по ID
type Library map[string]ModelDefinition

// Get возвращает определение модели.
func (l Library) Get(id string) (ModelDefinition, bool) {
	def, ok := l[id]
	return def, ok
}
