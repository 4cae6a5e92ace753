// internal/component/enemy.go
package component

import "go-sea-battle/internal/types"

// Enemy представляет вражеский корабль.
type Enemy struct {
	// Bullets — снаряды, выпущенные этим врагом. Уничтожаются вместе с ним.
	Bullets []types.EntityID
}

// DropBullet убирает снаряд из списка владельца.
func (e *Enemy) DropBullet(id types.EntityID) {
	kept := e.Bullets[:0]
	for _, b := range e.Bullets {
		if b != id {
			kept = append(kept, b)
		}
	}
	e.Bullets = kept
}

// Chest — сундук, который подбирает игрок.
type Chest struct{}
