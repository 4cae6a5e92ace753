// internal/component/projectile.go
package component

import (
	"go-sea-battle/internal/types"
	"time"
)

// Bullet представляет летящий снаряд игрока или врага.
type Bullet struct {
	Owner    types.EntityID // 0 — снаряд игрока, иначе ID врага-владельца
	Deadline time.Time      // абсолютный момент истечения
	Alive    bool
}

// LiveAt сообщает, участвует ли снаряд в симуляции в момент now.
// Снаряд с истёкшим сроком считается мёртвым, даже если проход очистки ещё не выполнен.
func (b *Bullet) LiveAt(now time.Time) bool {
	return b.Alive && now.Before(b.Deadline)
}

// FromPlayer сообщает, выпущен ли снаряд игроком.
func (b *Bullet) FromPlayer() bool {
	return b.Owner == 0
}
