// internal/types/types.go
package types

// EntityID — идентификатор сущности в ECS. Ноль зарезервирован как "нет сущности".
type EntityID uint32

// Kind — вид сущности
type Kind int

const (
	KindVessel Kind = iota
	KindChest
	KindEnemy
	KindPlayerBullet
	KindEnemyBullet
)

func (k Kind) String() string {
	switch k {
	case KindVessel:
		return "vessel"
	case KindChest:
		return "chest"
	case KindEnemy:
		return "enemy"
	case KindPlayerBullet:
		return "player_bullet"
	case KindEnemyBullet:
		return "enemy_bullet"
	}
	return "unknown"
}

// IsBullet сообщает, является ли вид снарядом.
func (k Kind) IsBullet() bool {
	return k == KindPlayerBullet || k == KindEnemyBullet
}
