// internal/component/visual.go
package component

import "go-sea-battle/internal/types"

// Model — непрозрачный дескриптор визуального представления,
// выданный платформенным слоем. Ядро его не интерпретирует.
type Model interface{}

// ModelState — стадия жизненного цикла визуального представления
type ModelState int

const (
	ModelPending ModelState = iota // модель запрошена, но ещё не загружена
	ModelReady
)

// Visual связывает сущность с её моделью.
// Пока модель в состоянии Pending, сущность считается отсутствующей.
type Visual struct {
	Kind    types.Kind
	State   ModelState
	Model   Model
	request <-chan Model
}

// NewPendingVisual создаёт представление, ожидающее загрузки модели.
func NewPendingVisual(kind types.Kind, request <-chan Model) *Visual {
	return &Visual{Kind: kind, State: ModelPending, request: request}
}

// NewReadyVisual создаёт готовое представление. model может быть nil
// для примитивов, которые платформа рисует сама (снаряды).
func NewReadyVisual(kind types.Kind, model Model) *Visual {
	return &Visual{Kind: kind, State: ModelReady, Model: model}
}

// Ready сообщает, загружена ли модель.
func (v *Visual) Ready() bool {
	return v.State == ModelReady
}

// Poll без блокировки проверяет, завершилась ли загрузка.
// Возвращает true ровно один раз — в тик, когда модель стала готова.
// Закрытый канал означает неудачную загрузку: представление остаётся Pending.
func (v *Visual) Poll() bool {
	if v.State == ModelReady {
		return false
	}
	select {
	case m, ok := <-v.request:
		if !ok {
			v.request = nil
			return false
		}
		v.Model = m
		v.State = ModelReady
		v.request = nil
		return true
	default:
		return false
	}
}
