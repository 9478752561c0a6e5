package app

import (
	"testing"

	"go-shmup/internal/component"
	"go-shmup/internal/config"
	"go-shmup/internal/defs"
	"go-shmup/internal/event"
	"go-shmup/internal/system"
	vec "go-shmup/pkg/utils"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const tick = 1.0 / 60.0

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Scheduler.Seed = 42
	return NewGame(cfg, defs.DefaultWaveTuning(), zap.NewNop())
}

func TestNewGameStartsInMenu(t *testing.T) {
	g := newTestGame(t)
	if g.State() != component.Menu {
		t.Fatalf("state %v, want Menu", g.State())
	}
	for i := 0; i < 120; i++ {
		g.Update(tick)
	}
	if g.Wave() != 0 || len(g.Pools.ActiveEnemies(nil)) != 0 {
		t.Fatal("waves ran in the menu")
	}
}

func TestStartNewGameRunsFirstWave(t *testing.T) {
	g := newTestGame(t)
	g.StartNewGame()
	if g.State() != component.Playing || g.Lives() != 3 || g.Bombs() != 2 || g.Score() != 0 {
		t.Fatalf("fresh game: state %v lives %d bombs %d score %d", g.State(), g.Lives(), g.Bombs(), g.Score())
	}

	g.Update(tick)
	if g.Wave() != 1 {
		t.Fatalf("wave %d, want 1", g.Wave())
	}
	if got := len(g.Pools.ActiveEnemies(nil)); got != 7 {
		t.Fatalf("enemies %d, want 7", got)
	}
	if got := len(g.Pools.ActiveHUDIcons(nil)); got != 5 {
		t.Fatalf("hud icons %d, want 5", got)
	}
}

func TestScoreThresholds(t *testing.T) {
	g := newTestGame(t)
	g.StartNewGame()

	g.AddScore(9999)
	if g.Bombs() != 2 {
		t.Fatalf("bombs %d before the threshold", g.Bombs())
	}
	g.AddScore(1)
	if g.Bombs() != 3 {
		t.Fatalf("bombs %d at 10000", g.Bombs())
	}
	g.AddScore(40000)
	if g.Score() != 50000 || g.Bombs() != 7 || g.Lives() != 4 {
		t.Fatalf("at 50000: bombs %d lives %d", g.Bombs(), g.Lives())
	}
	g.AddScore(100)
	if g.Bombs() != 7 || g.Lives() != 4 {
		t.Fatal("threshold granted twice")
	}
}

func TestKillsAndFoodScore(t *testing.T) {
	g := newTestGame(t)
	g.StartNewGame()

	g.Dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.Kill{Score: 100}})
	g.Dispatcher.Dispatch(event.Event{Type: event.FoodCollected, Data: event.Kill{Score: 50}})
	g.Dispatcher.Dispatch(event.Event{Type: event.BossDefeated, Data: event.Kill{Score: 5000}})
	if g.Score() != 5150 {
		t.Fatalf("score %d, want 5150", g.Score())
	}
}

func TestBombStock(t *testing.T) {
	g := newTestGame(t)
	if g.UseBomb() {
		t.Fatal("bomb used in the menu")
	}
	g.StartNewGame()
	if !g.UseBomb() || !g.UseBomb() || g.UseBomb() {
		t.Fatal("two bombs expected")
	}
	if g.Bombs() != 0 {
		t.Fatalf("bombs %d", g.Bombs())
	}
	g.RefundBomb()
	if g.Bombs() != 1 || !g.UseBomb() {
		t.Fatalf("refunded bomb not usable, bombs %d", g.Bombs())
	}
}

func TestLosingLastLifeEndsGame(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	g := NewGame(config.Default(), defs.DefaultWaveTuning(), zap.New(core))
	g.StartNewGame()
	g.Update(tick)

	g.DamagePlayer()
	g.DamagePlayer()
	if g.State() != component.Playing || g.Lives() != 1 {
		t.Fatalf("state %v lives %d", g.State(), g.Lives())
	}
	g.DamagePlayer()
	if g.State() != component.GameOver || g.Lives() != 0 {
		t.Fatalf("state %v lives %d, want GameOver 0", g.State(), g.Lives())
	}
	if g.Waves.Running() {
		t.Fatal("scheduler still running after game over")
	}
	if g.LastWave() != 1 {
		t.Fatalf("last wave %d, want 1", g.LastWave())
	}
	if g.Player.Alive() {
		t.Fatal("player alive after game over")
	}
	if logs.FilterMessage("game over").Len() != 1 {
		t.Fatal("game over not logged")
	}

	g.DamagePlayer()
	if g.Lives() != 0 {
		t.Fatal("damage applied outside Playing")
	}

	g.StartNewGame()
	g.Update(tick)
	if g.Wave() != 1 || g.Lives() != 3 || g.Score() != 0 || !g.Player.Alive() {
		t.Fatalf("restart: wave %d lives %d score %d", g.Wave(), g.Lives(), g.Score())
	}
}

func TestPauseStopsTheWorld(t *testing.T) {
	g := newTestGame(t)
	g.StartNewGame()
	g.Update(tick)
	before := g.Pools.ActiveEnemies(nil)[0].Position

	g.Pause()
	if !g.IsPaused() {
		t.Fatal("not paused")
	}
	for i := 0; i < 120; i++ {
		g.Update(tick)
	}
	if g.Pools.ActiveEnemies(nil)[0].Position != before {
		t.Fatal("enemies moved while paused")
	}

	g.Resume()
	g.Update(tick)
	if g.Pools.ActiveEnemies(nil)[0].Position == before {
		t.Fatal("enemies frozen after resume")
	}
	if g.Waves.State() == system.WaitingForPlayState || g.Wave() != 1 {
		t.Fatal("resume restarted the run")
	}
}

func TestReturnToMenuClearsField(t *testing.T) {
	g := newTestGame(t)
	g.StartNewGame()
	g.Update(tick)
	g.ReturnToMenu()
	if g.State() != component.Menu || g.Waves.Running() {
		t.Fatal("run survived the menu")
	}
	if n := len(g.Pools.ActiveEnemies(nil)); n != 0 {
		t.Fatalf("%d enemies left on the field", n)
	}
}

func TestRestartWhilePlaying(t *testing.T) {
	g := newTestGame(t)
	g.StartNewGame()
	g.Update(tick)
	g.AddScore(300)

	g.StartNewGame()
	if g.Score() != 0 || g.Wave() != 0 || !g.Waves.Running() {
		t.Fatalf("restart: score %d wave %d running %v", g.Score(), g.Wave(), g.Waves.Running())
	}
	g.Update(tick)
	if g.Wave() != 1 {
		t.Fatalf("wave %d after restart", g.Wave())
	}
}

func TestPlayerInputShoots(t *testing.T) {
	g := newTestGame(t)
	g.StartNewGame()
	g.SetInput(vec.V(0, 0), true, false)
	g.Update(tick)
	if len(g.Pools.ActivePlayerBullets(nil)) != 1 {
		t.Fatal("fire input ignored")
	}
}
