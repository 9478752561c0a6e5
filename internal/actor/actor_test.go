package actor

import (
	"testing"

	"go-shmup/internal/camera"
	"go-shmup/internal/config"
	"go-shmup/internal/movement"
	"go-shmup/internal/utils"
	vec "go-shmup/pkg/utils"

	"go.uber.org/zap"
)

type fixedTier int

func (t fixedTier) DifficultyTier() int { return int(t) }

func newManager(t *testing.T, tiers TierSource) *PoolManager {
	t.Helper()
	cfg := config.Default()
	return NewPoolManager(cfg.Pools, DefaultFactories(cfg, tiers, utils.NewPRNGService(1)), zap.NewNop())
}

func TestEnemyHitPointsScaleWithTier(t *testing.T) {
	tier := fixedTier(1)
	cfg := config.Default().Enemy
	e := NewEnemy(cfg, &tier, utils.NewPRNGService(1))

	tests := []struct {
		tier int
		hp   int
	}{
		{1, cfg.BaseHP},
		{2, cfg.BaseHP + cfg.HPPerTier},
		{4, cfg.BaseHP + 3*cfg.HPPerTier},
	}
	for _, tt := range tests {
		tier = fixedTier(tt.tier)
		e.OnAcquire()
		if e.Health.Value != tt.hp || e.Tier() != tt.tier {
			t.Errorf("tier %d: hp=%d tier=%d, want hp=%d", tt.tier, e.Health.Value, e.Tier(), tt.hp)
		}
	}
}

func TestEnemyWithoutTierSourceUsesTierOne(t *testing.T) {
	cfg := config.Default().Enemy
	e := NewEnemy(cfg, nil, nil)
	e.OnAcquire()
	if e.Tier() != 1 || e.Health.Value != cfg.BaseHP {
		t.Errorf("tier=%d hp=%d", e.Tier(), e.Health.Value)
	}
}

func TestEnemyFiresWithinInterval(t *testing.T) {
	cfg := config.Default().Enemy
	e := NewEnemy(cfg, nil, utils.NewPRNGService(3))
	e.OnAcquire()

	elapsed, shots := 0.0, 0
	first := -1.0
	for elapsed < 30 {
		elapsed += 0.1
		if e.ReadyToFire(0.1) {
			shots++
			if first < 0 {
				first = elapsed
			}
		}
	}
	if first < cfg.MinShootInterval || first > cfg.MaxShootInterval+0.1 {
		t.Errorf("first shot at %.1fs, want within [%v, %v]", first, cfg.MinShootInterval, cfg.MaxShootInterval)
	}
	if shots < 2 || shots > 6 {
		t.Errorf("%d shots in 30s", shots)
	}
}

func TestEnemyReleaseClearsMover(t *testing.T) {
	m := newManager(t, nil)
	e, _ := m.AcquireEnemy(vec.V(0, 6))
	if err := e.Mover.Configure(movement.StraightDown{Speed: 2}, e.Position); err != nil {
		t.Fatal(err)
	}
	m.ReleaseEnemy(e)
	if e.Mover.Configured() {
		t.Error("mover kept its descriptor after release")
	}
}

func TestBossDefeatCallbackFiresOnce(t *testing.T) {
	cam := camera.NewOrtho(5, 0.5625)
	calls := 0
	cfg := config.Default().Boss
	b := NewBoss(cfg, 2, cam, utils.NewPRNGService(1), func(*Boss) { calls++ })

	if want := cfg.BaseHP + cfg.HPPerTier; b.Health.Value != want {
		t.Fatalf("tier 2 boss hp = %d, want %d", b.Health.Value, want)
	}
	b.TakeDamage(b.Health.Value - 1)
	if calls != 0 || !b.Active() {
		t.Fatal("boss defeated before its hp ran out")
	}
	b.TakeDamage(5)
	b.TakeDamage(5)
	if calls != 1 || b.Active() {
		t.Errorf("callback ran %d times, active=%v", calls, b.Active())
	}
}

func TestBossDeactivateIsSilent(t *testing.T) {
	cam := camera.NewOrtho(5, 0.5625)
	calls := 0
	b := NewBoss(config.Default().Boss, 1, cam, nil, func(*Boss) { calls++ })
	b.Deactivate()
	b.TakeDamage(1000)
	if calls != 0 {
		t.Errorf("deactivated boss reported a defeat")
	}
}

func TestBossEntersThenStaysInArena(t *testing.T) {
	cam := camera.NewOrtho(5, 0.5625)
	b := NewBoss(config.Default().Boss, 1, cam, utils.NewPRNGService(9), nil)
	if v := cam.WorldToViewport(b.Position); v.Y < 1.1 {
		t.Fatalf("boss spawned on screen at %v", v)
	}
	for i := 0; i < 600 && b.Phase() == BossEntrance; i++ {
		b.Update(1.0 / 60)
	}
	if b.Phase() != BossCombat {
		t.Fatal("boss never finished its entrance")
	}
	for i := 0; i < 60*30; i++ {
		b.Update(1.0 / 60)
		v := cam.WorldToViewport(b.Position)
		if v.Y < 0.3-1e-9 || v.Y > 0.9+1e-9 {
			t.Fatalf("boss left its band: %v", v)
		}
	}
}

func TestFoodSettlesAndFalls(t *testing.T) {
	cfg := config.Default().Pickups
	f := NewFood(cfg, utils.NewPRNGService(5))
	f.Position = vec.V(0, 0)
	f.OnAcquire()
	if f.Velocity.Y <= 0 {
		t.Fatalf("food ejected downward: %v", f.Velocity)
	}
	ground := -4.0
	for i := 0; i < 60*10 && f.State() == FoodBouncing; i++ {
		f.Advance(1.0/60, ground)
		if f.Position.Y < ground-1e-9 {
			t.Fatalf("food sank below the ground while bouncing: %v", f.Position)
		}
	}
	if f.State() != FoodFalling {
		t.Fatal("food never settled")
	}
	y := f.Position.Y
	f.Advance(0.5, ground)
	if got := y - f.Position.Y; got < cfg.FallSpeed*0.5-1e-9 || got > cfg.FallSpeed*0.5+1e-9 {
		t.Errorf("falling food moved %v in 0.5s", got)
	}
}

func TestBombDetonatesOnArrival(t *testing.T) {
	cfg := config.Default().Pickups
	m := newManager(t, nil)
	b, _ := m.AcquireBomb(vec.V(0, -4))
	b.Launch(vec.V(0, 0))

	detonations, ticks := 0, 0
	for ticks < 600 {
		ticks++
		det, done := b.Advance(1.0 / 60)
		if det {
			detonations++
			if b.Position != vec.V(0, 0) {
				t.Errorf("detonated at %v", b.Position)
			}
		}
		if done {
			break
		}
	}
	if detonations != 1 {
		t.Errorf("detonated %d times", detonations)
	}
	want := 4/cfg.BombSpeed + cfg.ExplosionTime
	if got := float64(ticks) / 60; got < want-0.05 || got > want+0.05 {
		t.Errorf("bomb finished after %.2fs, want about %.2fs", got, want)
	}
}

func TestPlayerShieldBlocksHits(t *testing.T) {
	p := NewPlayer(vec.V(0, -4))
	if !p.Hit(2) {
		t.Fatal("first hit should land")
	}
	if p.Hit(2) {
		t.Fatal("shielded player took a second hit")
	}
	for i := 0; i < 121; i++ {
		p.Update(1.0 / 60)
	}
	if !p.Hit(2) {
		t.Error("hit after the shield expired should land")
	}
}

func TestPoolManagerAccounting(t *testing.T) {
	m := newManager(t, fixedTier(1))
	sizes := config.Default().Pools
	if got := m.AvailableEnemyCount(); got != sizes.Enemy {
		t.Fatalf("available = %d, want %d", got, sizes.Enemy)
	}

	var enemies []*Enemy
	for i := 0; i < 7; i++ {
		e, ok := m.AcquireEnemy(vec.V(0, 6))
		if !ok {
			t.Fatal("acquire failed")
		}
		enemies = append(enemies, e)
	}
	bullet, _ := m.AcquireEnemyBullet(vec.V(0, 0))
	m.AcquireFood(vec.V(0, 0))

	if !m.HasEnoughEnemies(sizes.Enemy-7) || m.HasEnoughEnemies(sizes.Enemy-6) {
		t.Errorf("HasEnoughEnemies disagrees with available=%d", m.AvailableEnemyCount())
	}
	if !m.ReleaseEnemy(enemies[0]) || m.ReleaseEnemy(enemies[0]) {
		t.Error("second release of the same enemy should fail")
	}
	if m.ReleaseEnemy(nil) {
		t.Error("nil release should fail")
	}

	m.ResetAll()
	for _, s := range m.Stats() {
		if s.Active != 0 || s.Free != s.Created {
			t.Errorf("after ResetAll: %+v", s)
		}
	}
	if bullet.Active() {
		t.Error("enemy bullet still active after ResetAll")
	}
}

func TestPoolManagerMissingFactory(t *testing.T) {
	cfg := config.Default()
	f := DefaultFactories(cfg, nil, nil)
	f.Enemy = nil
	m := NewPoolManager(cfg.Pools, f, zap.NewNop())

	if e, ok := m.AcquireEnemy(vec.V(0, 0)); ok || e != nil {
		t.Fatal("acquire from a pool without factory should fail")
	}
	if m.AvailableEnemyCount() != 0 {
		t.Errorf("available = %d, want 0", m.AvailableEnemyCount())
	}
	if _, ok := m.AcquireFood(vec.V(0, 0)); !ok {
		t.Error("other pools should keep working")
	}
}
