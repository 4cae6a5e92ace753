// internal/component/combat.go
package component

// Health — компонент здоровья. Значение всегда в диапазоне [0, Max].
type Health struct {
	Value int
	Max   int
}

// NewHealth создаёт полностью здоровый компонент.
func NewHealth(max int) *Health {
	return &Health{Value: max, Max: max}
}

// Damage уменьшает здоровье на amount и возвращает новое значение.
// Отрицательный урон игнорируется.
func (h *Health) Damage(amount int) int {
	if amount <= 0 {
		return h.Value
	}
	h.Value -= amount
	if h.Value < 0 {
		h.Value = 0
	}
	return h.Value
}

// Depleted сообщает, закончилось ли здоровье.
func (h *Health) Depleted() bool {
	return h.Value <= 0
}
