package assets

import (
	"go-sea-battle/internal/component"
	"go-sea-battle/internal/defs"
	"go-sea-battle/internal/interfaces"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

var _ interfaces.ModelProvider = (*ModelManager)(nil)

// Instance — загруженная модель вместе с её определением.
type Instance struct {
	Model rl.Model
	Def   defs.ModelDefinition
	Tint  rl.Color // белый для настоящих моделей, цвет из определения для запасных мешей
}

type loadRequest struct {
	id    string
	reply chan component.Model
}

// ModelManager управляет загрузкой, кэшированием и выгрузкой 3D-моделей.
// Raylib работает только в главном потоке, поэтому LoadModel лишь ставит запрос
// в очередь, а сама загрузка выполняется в Poll из игрового цикла.
type ModelManager struct {
	library  defs.Library
	models   map[string]*Instance
	textures []rl.Texture2D
	pending  []loadRequest
	logger   *zap.Logger
}

// NewModelManager создает новый экземпляр ModelManager.
func NewModelManager(library defs.Library, logger *zap.Logger) *ModelManager {
	return &ModelManager{
		library: library,
		models:  make(map[string]*Instance),
		logger:  logger,
	}
}

// LoadModel ставит загрузку в очередь. Канал получит модель после ближайшего Poll
// или будет закрыт без значения, если загрузка не удалась.
func (m *ModelManager) LoadModel(id string) <-chan component.Model {
	reply := make(chan component.Model, 1)
	m.pending = append(m.pending, loadRequest{id: id, reply: reply})
	return reply
}

// Clone возвращает новый экземпляр с той же геометрией.
func (m *ModelManager) Clone(model component.Model) component.Model {
	instance, ok := model.(*Instance)
	if !ok {
		return model
	}
	clone := *instance
	return &clone
}

// Poll выполняет загрузки из очереди. Вызывается в главном потоке до Game.Update.
func (m *ModelManager) Poll() {
	pending := m.pending
	m.pending = nil
	for _, req := range pending {
		if instance, ok := m.load(req.id); ok {
			req.reply <- instance
		}
		close(req.reply)
	}
}

func (m *ModelManager) load(id string) (*Instance, bool) {
	if instance, ok := m.models[id]; ok {
		return instance, true
	}
	def, ok := m.library.Get(id)
	if !ok {
		m.logger.Error("model definition not found", zap.String("id", id))
		return nil, false
	}

	instance := &Instance{Def: def, Tint: rl.White}
	model, ok := m.loadSingleModel(def)
	if !ok {
		model = placeholder(def)
		c := def.Visuals.RGBA()
		instance.Tint = rl.NewColor(c.R, c.G, c.B, c.A)
		m.logger.Warn("using placeholder mesh", zap.String("id", id), zap.String("shape", string(def.Shape)))
	}
	instance.Model = model
	m.models[id] = instance
	return instance, true
}

// loadSingleModel безопасно загружает одну модель и ее текстуру.
func (m *ModelManager) loadSingleModel(def defs.ModelDefinition) (model rl.Model, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("raylib panicked while loading model, skipping",
				zap.String("id", def.ID), zap.Any("panic", r))
			ok = false
		}
	}()

	if def.Path == "" {
		return rl.Model{}, false
	}
	if _, err := os.Stat(def.Path); err != nil {
		m.logger.Warn("model file not found", zap.String("id", def.ID), zap.String("path", def.Path))
		return rl.Model{}, false
	}

	model = rl.LoadModel(def.Path)
	if model.MeshCount == 0 {
		m.logger.Warn("failed to load model, it might be invalid or empty",
			zap.String("id", def.ID), zap.String("path", def.Path))
		return rl.Model{}, false
	}

	if def.Texture != "" {
		if _, err := os.Stat(def.Texture); err == nil {
			texture := rl.LoadTexture(def.Texture)
			if texture.ID > 0 {
				rl.SetMaterialTexture(model.Materials, rl.MapDiffuse, texture)
				m.textures = append(m.textures, texture)
			} else {
				m.logger.Warn("failed to load texture", zap.String("id", def.ID), zap.String("path", def.Texture))
			}
		}
	}

	m.logger.Info("model loaded", zap.String("id", def.ID), zap.String("path", def.Path))
	return model, true
}

// placeholder строит запасной меш по форме из определения.
func placeholder(def defs.ModelDefinition) rl.Model {
	size := def.Size
	var mesh rl.Mesh
	switch def.Shape {
	case defs.ShapeSphere:
		mesh = rl.GenMeshSphere(size[0]/2, 12, 12)
	case defs.ShapeCylinder:
		mesh = rl.GenMeshCylinder(size[0]/2, size[1], 12)
	default:
		mesh = rl.GenMeshCube(size[0], size[1], size[2])
	}
	return rl.LoadModelFromMesh(mesh)
}

// Cleanup выгружает все загруженные модели.
func (m *ModelManager) Cleanup() {
	for id, instance := range m.models {
		rl.UnloadModel(instance.Model)
		delete(m.models, id)
	}
	for _, texture := range m.textures {
		rl.UnloadTexture(texture)
	}
	m.textures = nil
	m.logger.Info("all models unloaded")
}
