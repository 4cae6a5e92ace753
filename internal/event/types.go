package event

const (
	ChestCollected EventType = "ChestCollected" // Сундук подобран, Data: types.EntityID
	EnemyDestroyed EventType = "EnemyDestroyed" // Враг уничтожен снарядом игрока, Data: types.EntityID
	EnemyRammed    EventType = "EnemyRammed"    // Враг протаранил судно, Data: types.EntityID
	VesselHit      EventType = "VesselHit"      // Судно получило урон, Data: VesselHitData
	BulletFired    EventType = "BulletFired"    // Выстрел, Data: types.EntityID снаряда
	PhaseChanged   EventType = "PhaseChanged"   // Смена фазы, Data: PhaseChangedData
)

// VesselHitData — подробности попадания по судну
type VesselHitData struct {
	Damage int
	Health int
}

// PhaseChangedData — подробности смены фазы
type PhaseChangedData struct {
	From, To string
}
