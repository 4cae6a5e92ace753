package system

import (
	"go-sea-battle/internal/component"
	"go-sea-battle/internal/event"
	"go-sea-battle/internal/types"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollide(t *testing.T) {
	at := func(x, y, z float64) *component.Transform {
		return &component.Transform{Position: mgl64.Vec3{x, y, z}}
	}
	cases := []struct {
		name string
		a, b *component.Transform
		want bool
	}{
		{"Same point", at(0, 0, 0), at(0, 0, 0), true},
		{"Inside on both axes", at(0, 4, 0), at(5, -0.4, 0), true},
		{"Height ignored", at(0, 100, 0), at(1, -100, 1), true},
		{"Boundary is exclusive on X", at(0, 0, 0), at(7, 0, 0), false},
		{"Boundary is exclusive on Z", at(0, 0, 0), at(0, 0, -7), false},
		{"Close on X only", at(0, 0, 0), at(1, 0, 20), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Collide(tc.a, tc.b, 7))
			assert.Equal(t, Collide(tc.a, tc.b, 7), Collide(tc.b, tc.a, 7))
		})
	}
}

func TestCombatSystem_ChestPickup(t *testing.T) {
	w := newWorld(t, defaultSim())
	near := w.ecs.InsertChest(mgl64.Vec3{5, -0.4, 0}, "chest")
	far := w.ecs.InsertChest(mgl64.Vec3{50, -0.4, 0}, "chest")

	w.combat.Update(1, epoch)

	assert.False(t, w.ecs.IsLive(near))
	assert.True(t, w.ecs.IsLive(far))
	assert.Equal(t, 1, w.ecs.Population.Chests)
	assert.Equal(t, 1, w.ecs.Session.Collected)
	assert.Equal(t, 1, w.events.count(event.ChestCollected))
}

func TestCombatSystem_Ram(t *testing.T) {
	w := newWorld(t, defaultSim())
	enemy := w.ecs.InsertEnemy(mgl64.Vec3{3, -0.4, -3}, "enemy")
	bullet := w.ecs.InsertBullet(enemy, mgl64.Vec3{100, 0, 100}, mgl64.Vec3{}, epoch.Add(time.Second))

	w.combat.Update(1, epoch)

	assert.False(t, w.ecs.IsLive(enemy))
	assert.False(t, w.ecs.IsLive(bullet))
	assert.Zero(t, w.ecs.Population.Enemies)
	assert.Equal(t, 90, w.health())
	assert.Zero(t, w.ecs.Session.Destroyed, "ramming does not count as a kill")
	assert.Equal(t, 1, w.events.count(event.EnemyRammed))

	hits := w.events.events[len(w.events.events)-1]
	require.Equal(t, event.VesselHit, hits.Type)
	assert.Equal(t, event.VesselHitData{Damage: 10, Health: 90}, hits.Data)
}

func TestCombatSystem_HealthClamp(t *testing.T) {
	w := newWorld(t, defaultSim())
	w.ecs.Healths[w.ecs.VesselID].Value = 5

	w.ecs.InsertEnemy(mgl64.Vec3{0, -0.4, 0}, "enemy")
	w.ecs.InsertEnemy(mgl64.Vec3{1, -0.4, 1}, "enemy")
	w.combat.Update(1, epoch)

	assert.Equal(t, 0, w.health())
	assert.True(t, w.ecs.Healths[w.ecs.VesselID].Depleted())
}

func TestCombatSystem_PlayerBullet(t *testing.T) {
	t.Run("Hit removes enemy with its bullets", func(t *testing.T) {
		w := newWorld(t, defaultSim())
		enemy := w.ecs.InsertEnemy(mgl64.Vec3{40, -0.4, 40}, "enemy")
		owned := w.ecs.InsertBullet(enemy, mgl64.Vec3{200, 0, 200}, mgl64.Vec3{}, epoch.Add(time.Second))
		bullet := w.ecs.InsertBullet(0, mgl64.Vec3{41, 4, 38}, mgl64.Vec3{}, epoch.Add(time.Second))

		w.combat.Update(1, epoch)

		assert.False(t, w.ecs.IsLive(enemy))
		assert.False(t, w.ecs.IsLive(owned))
		assert.False(t, w.ecs.IsLive(bullet))
		assert.Equal(t, 1, w.ecs.Session.Destroyed)
		assert.Equal(t, 100, w.health())
	})

	t.Run("One bullet destroys at most one enemy", func(t *testing.T) {
		w := newWorld(t, defaultSim())
		first := w.ecs.InsertEnemy(mgl64.Vec3{40, -0.4, 40}, "enemy")
		second := w.ecs.InsertEnemy(mgl64.Vec3{41, -0.4, 41}, "enemy")
		w.ecs.InsertBullet(0, mgl64.Vec3{40, 4, 40}, mgl64.Vec3{}, epoch.Add(time.Second))

		w.combat.Update(1, epoch)

		assert.False(t, w.ecs.IsLive(first))
		assert.True(t, w.ecs.IsLive(second))
		assert.Equal(t, 1, w.ecs.Session.Destroyed)
		assert.Equal(t, 1, w.ecs.Population.Enemies)
	})
}

func TestCombatSystem_EnemyBullet(t *testing.T) {
	w := newWorld(t, defaultSim())
	enemy := w.ecs.InsertEnemy(mgl64.Vec3{80, -0.4, 80}, "enemy")
	hit := w.ecs.InsertBullet(enemy, mgl64.Vec3{2, 0, 2}, mgl64.Vec3{}, epoch.Add(time.Second))
	miss := w.ecs.InsertBullet(enemy, mgl64.Vec3{20, 0, 2}, mgl64.Vec3{}, epoch.Add(time.Second))

	w.combat.Update(1, epoch)

	assert.False(t, w.ecs.IsLive(hit))
	assert.True(t, w.ecs.IsLive(miss))
	assert.Equal(t, []types.EntityID{miss}, w.ecs.Enemies[enemy].Bullets)
	assert.Equal(t, 95, w.health())
}

func TestCombatSystem_Expiry(t *testing.T) {
	w := newWorld(t, defaultSim())
	enemy := w.ecs.InsertEnemy(mgl64.Vec3{80, -0.4, 80}, "enemy")
	lifetime := w.sim.BulletLifetime

	player := w.ecs.InsertBullet(0, mgl64.Vec3{200, 0, 0}, mgl64.Vec3{}, epoch.Add(lifetime))
	hostile := w.ecs.InsertBullet(enemy, mgl64.Vec3{300, 0, 0}, mgl64.Vec3{}, epoch.Add(lifetime))

	w.combat.Update(1, epoch.Add(lifetime-time.Millisecond))
	assert.True(t, w.ecs.IsLive(player))
	assert.True(t, w.ecs.IsLive(hostile))

	w.combat.Update(2, epoch.Add(lifetime))
	assert.False(t, w.ecs.IsLive(player))
	assert.False(t, w.ecs.IsLive(hostile))
	assert.Empty(t, w.ecs.Enemies[enemy].Bullets)
	assert.Empty(t, w.ecs.Bullets)
}

func TestCombatSystem_ExpiredBulletsDoNotCollide(t *testing.T) {
	w := newWorld(t, defaultSim())
	target := w.ecs.InsertEnemy(mgl64.Vec3{40, -0.4, 40}, "enemy")
	shooter := w.ecs.InsertEnemy(mgl64.Vec3{80, -0.4, 80}, "enemy")
	w.ecs.InsertBullet(0, mgl64.Vec3{40, 4, 40}, mgl64.Vec3{}, epoch)
	w.ecs.InsertBullet(shooter, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{}, epoch)

	w.combat.Update(1, epoch)

	assert.True(t, w.ecs.IsLive(target))
	assert.Zero(t, w.ecs.Session.Destroyed)
	assert.Equal(t, 100, w.health())
	assert.Empty(t, w.ecs.Bullets)
}

func TestCombatSystem_EnemyFire(t *testing.T) {
	w := newWorld(t, defaultSim())
	a := w.ecs.InsertEnemy(mgl64.Vec3{100, -0.4, 100}, "enemy")
	b := w.ecs.InsertEnemy(mgl64.Vec3{-100, -0.4, 100}, "enemy")

	w.combat.Update(49, epoch)
	assert.Zero(t, w.ecs.Count(types.KindEnemyBullet))

	w.combat.Update(50, epoch)
	require.Len(t, w.ecs.Enemies[a].Bullets, 1)
	require.Len(t, w.ecs.Enemies[b].Bullets, 1)
	assert.Equal(t, 2, w.events.count(event.BulletFired))

	for _, owner := range []types.EntityID{a, b} {
		id := w.ecs.Enemies[owner].Bullets[0]
		assert.Equal(t, w.ecs.Transforms[owner].Position, w.ecs.Transforms[id].Position)

		velocity := w.ecs.Velocities[id].Vec
		assert.InDelta(t, w.sim.EnemyBulletSpeed, velocity.Len(), 1e-9)
		assert.Zero(t, velocity.Y())
		assert.Equal(t, epoch.Add(w.sim.BulletLifetime), w.ecs.Bullets[id].Deadline)
	}
}

func TestWeaponSystem_FirePlayer(t *testing.T) {
	w := newWorld(t, defaultSim())
	v := w.vessel(t)
	v.Heading = 0

	id := w.weapons.FirePlayer(epoch)
	require.NotZero(t, id)
	assert.Equal(t, types.KindPlayerBullet, w.ecs.Kinds[id])
	assert.Equal(t, v.Position, w.ecs.Transforms[id].Position)
	assert.InDelta(t, 0, w.ecs.Velocities[id].Vec.X(), 1e-9)
	assert.InDelta(t, 1, w.ecs.Velocities[id].Vec.Z(), 1e-9)
	assert.Equal(t, epoch.Add(2*time.Second), w.ecs.Bullets[id].Deadline)
}

// Пуля, выпущенная вдоль курса 0, через 5 тиков попадает во врага в (0, y, 5).
func TestCombat_BulletTravelsIntoEnemy(t *testing.T) {
	sim := defaultSim()
	sim.CollisionThreshold = 0.5
	sim.EnemyStep = 0
	w := newWorld(t, sim)

	enemy := w.ecs.InsertEnemy(mgl64.Vec3{0, -0.4, 5}, "enemy")
	owned := w.ecs.InsertBullet(enemy, mgl64.Vec3{0, -0.4, 5}, mgl64.Vec3{1, 0, 0}, epoch.Add(time.Hour))
	bullet := w.weapons.FirePlayer(epoch)

	for frame := uint64(1); frame <= 4; frame++ {
		w.movement.Update()
		w.combat.Update(frame, epoch)
		require.True(t, w.ecs.IsLive(enemy), "frame %d", frame)
	}

	w.movement.Update()
	assert.InDelta(t, 5, w.ecs.Transforms[bullet].Position.Z(), 1e-9)
	w.combat.Update(5, epoch)

	assert.False(t, w.ecs.IsLive(enemy))
	assert.False(t, w.ecs.IsLive(bullet))
	assert.False(t, w.ecs.IsLive(owned))
	assert.Equal(t, 1, w.ecs.Session.Destroyed)
	assert.Zero(t, w.ecs.Population.Enemies)
}
