// internal/app/game.go
package app

import (
	"go-shmup/internal/actor"
	"go-shmup/internal/camera"
	"go-shmup/internal/component"
	"go-shmup/internal/config"
	"go-shmup/internal/defs"
	"go-shmup/internal/event"
	"go-shmup/internal/system"
	"go-shmup/internal/utils"
	vec "go-shmup/pkg/utils"

	"go.uber.org/zap"
)

// Game хранит состояние сессии и связывает все системы. Он же владелец
// игрового состояния, за которым следит планировщик волн.
type Game struct {
	Config     *config.Config
	Dispatcher *event.Dispatcher
	Viewport   *camera.Ortho
	Rng        *utils.PRNGService
	Pools      *actor.PoolManager
	Player     *actor.Player
	Runner     *system.Runner

	Waves            *system.WaveScheduler
	PlayerSystem     *system.PlayerSystem
	MovementSystem   *system.MovementSystem
	WeaponSystem     *system.WeaponSystem
	ProjectileSystem *system.ProjectileSystem
	PickupSystem     *system.PickupSystem
	BackgroundSystem *system.BackgroundSystem
	CombatSystem     *system.CombatSystem
	HUDSystem        *system.HUDSystem
	EffectSystem     *system.VisualEffectSystem

	logger   *zap.Logger
	state    component.GameState
	tier     int
	player   component.PlayerStateComponent
	gameTime float64
	lastWave int // волна, на которой закончился последний забег
}

// NewGame создаёт игру в состоянии Menu.
func NewGame(cfg *config.Config, tuning defs.WaveTuning, logger *zap.Logger) *Game {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	dispatcher := event.NewDispatcher()
	viewport := camera.NewOrtho(config.WorldHalfHeight, float64(config.ScreenWidth)/float64(config.ScreenHeight))
	rng := utils.NewPRNGService(cfg.Scheduler.Seed)

	g := &Game{
		Config:     cfg,
		Dispatcher: dispatcher,
		Viewport:   viewport,
		Rng:        rng,
		Runner:     system.NewRunner(),
		logger:     logger.Named("game"),
		state:      component.Menu,
		tier:       1,
	}
	g.Player = actor.NewPlayer(g.playerStart())
	g.Pools = actor.NewPoolManager(cfg.Pools, actor.DefaultFactories(cfg, g, rng), logger)

	g.Waves = system.NewWaveScheduler(system.SchedulerDeps{
		Owner:      g,
		Pools:      g.Pools,
		Viewport:   viewport,
		Player:     g.Player,
		Dispatcher: dispatcher,
		Tuning:     tuning,
		Config:     cfg.Scheduler,
		Boss:       cfg.Boss,
		Rng:        rng,
		Logger:     logger,
	})
	g.MovementSystem = system.NewMovementSystem(g.Pools, viewport)
	g.WeaponSystem = system.NewWeaponSystem(g.Pools, g.Player, g.Waves, cfg.Boss.SpreadShots)
	g.ProjectileSystem = system.NewProjectileSystem(g.Pools, viewport)
	g.CombatSystem = system.NewCombatSystem(g.Pools, g.Player, g, g.Waves, dispatcher, cfg.Player.InvulnerableFor, logger)
	g.PickupSystem = system.NewPickupSystem(system.PickupDeps{
		Pools:      g.Pools,
		Viewport:   viewport,
		Player:     g.Player,
		Dispatcher: dispatcher,
		Killer:     g.CombatSystem,
		Sweeper:    g.ProjectileSystem,
		Config:     cfg,
		Rng:        rng,
		Logger:     logger,
	})
	g.BackgroundSystem = system.NewBackgroundSystem(cfg.Background, dispatcher)
	g.PlayerSystem = system.NewPlayerSystem(g.Player, g.Pools, viewport, g, g.PickupSystem, cfg.Player)
	g.HUDSystem = system.NewHUDSystem(g.Pools, g)
	g.EffectSystem = system.NewVisualEffectSystem(g.Pools, g.Waves)

	for _, s := range []system.System{
		g.Waves,
		g.PlayerSystem,
		g.MovementSystem,
		g.WeaponSystem,
		g.ProjectileSystem,
		g.PickupSystem,
		g.BackgroundSystem,
		g.CombatSystem,
		g.HUDSystem,
		g.EffectSystem,
	} {
		g.Runner.Register(s)
	}

	listener := &GameEventListener{game: g}
	dispatcher.Subscribe(event.EnemyKilled, listener)
	dispatcher.Subscribe(event.BossDefeated, listener)
	dispatcher.Subscribe(event.FoodCollected, listener)

	g.resetPlayer()
	return g
}

// GameEventListener превращает убийства и подборы в очки.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled, event.BossDefeated, event.FoodCollected:
		if kill, ok := e.Data.(event.Kill); ok {
			l.game.AddScore(kill.Score)
		}
	}
}

func (g *Game) playerStart() vec.Vec2 {
	return g.Viewport.ViewportToWorld(vec.V(0.5, config.PlayerStartY))
}

func (g *Game) resetPlayer() {
	cfg := g.Config.Player
	g.player = component.PlayerStateComponent{
		Lives:    cfg.Lives,
		Bombs:    cfg.Bombs,
		NextBomb: cfg.BombEvery,
		NextLife: cfg.LifeEvery,
	}
	g.Player.Respawn(g.playerStart(), cfg.InvulnerableFor)
}

// Update продвигает один кадр. Игровой процесс идёт только в Playing,
// звёзды за меню продолжают лететь.
func (g *Game) Update(deltaTime float64) {
	switch g.state {
	case component.Playing:
		g.gameTime += deltaTime
		g.Runner.Tick(deltaTime)
	case component.Menu, component.GameOver:
		g.BackgroundSystem.Update(deltaTime)
	}
}

// SetInput передаёт намерения игрока на следующий тик.
func (g *Game) SetInput(move vec.Vec2, fire, bomb bool) {
	g.PlayerSystem.SetInput(move, fire, bomb)
}

// --- Состояние игры ---

func (g *Game) State() component.GameState { return g.state }

// SetGameState переключает состояние сессии и уведомляет подписчиков.
func (g *Game) SetGameState(to component.GameState) {
	from := g.state
	if from == to {
		return
	}
	g.state = to
	g.logger.Info("game state changed", zap.Stringer("from", from), zap.Stringer("to", to))
	g.Dispatcher.Dispatch(event.Event{Type: event.GameStateChanged, Data: event.StateChange{From: from, To: to}})
}

// StartNewGame очищает поле и начинает забег с первой волны.
func (g *Game) StartNewGame() {
	g.Waves.Cancel()
	g.Pools.ResetAll()
	g.resetPlayer()
	g.tier = 1
	g.gameTime = 0
	g.HUDSystem.Resync(g.player.Lives, g.player.Bombs)
	if g.state == component.Playing {
		g.Waves.Start()
		return
	}
	g.SetGameState(component.Playing)
}

func (g *Game) ReturnToMenu() {
	g.SetGameState(component.Menu)
	g.Pools.ResetAll()
	g.Pools.LogStats()
}

func (g *Game) Pause() {
	if g.state == component.Playing {
		g.SetGameState(component.Paused)
	}
}

func (g *Game) Resume() {
	if g.state == component.Paused {
		g.SetGameState(component.Playing)
	}
}

func (g *Game) IsPaused() bool { return g.state == component.Paused }

// --- Сложность ---

func (g *Game) SetDifficultyTier(tier int) {
	if tier == g.tier {
		return
	}
	g.logger.Info("difficulty tier changed", zap.Int("tier", tier))
	g.tier = tier
}

func (g *Game) DifficultyTier() int { return g.tier }

// --- Ресурсы игрока ---

func (g *Game) Score() int { return g.player.Score }

func (g *Game) Lives() int { return g.player.Lives }

func (g *Game) Bombs() int { return g.player.Bombs }

// Wave это текущая волна, 0 вне забега.
func (g *Game) Wave() int { return g.Waves.Wave() }

// LastWave это волна, на которой закончился предыдущий забег.
func (g *Game) LastWave() int { return g.lastWave }

func (g *Game) GameTime() float64 { return g.gameTime }

// AddScore начисляет очки и выдаёт бомбу или жизнь за каждый пройденный порог.
func (g *Game) AddScore(points int) {
	if points <= 0 {
		return
	}
	p := &g.player
	p.Score += points
	for g.Config.Player.BombEvery > 0 && p.Score >= p.NextBomb {
		p.Bombs++
		p.NextBomb += g.Config.Player.BombEvery
		g.logger.Debug("extra bomb", zap.Int("score", p.Score), zap.Int("bombs", p.Bombs))
	}
	for g.Config.Player.LifeEvery > 0 && p.Score >= p.NextLife {
		p.Lives++
		p.NextLife += g.Config.Player.LifeEvery
		g.logger.Info("extra life", zap.Int("score", p.Score), zap.Int("lives", p.Lives))
	}
}

// UseBomb тратит бомбу, если она есть.
func (g *Game) UseBomb() bool {
	if g.state != component.Playing || g.player.Bombs <= 0 {
		return false
	}
	g.player.Bombs--
	return true
}

// RefundBomb возвращает бомбу, которую не удалось запустить.
func (g *Game) RefundBomb() {
	g.player.Bombs++
}

// DamagePlayer отнимает жизнь; потеря последней заканчивает игру.
func (g *Game) DamagePlayer() {
	if g.state != component.Playing {
		return
	}
	g.player.Lives--
	g.Dispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: g.player.Lives})
	if g.player.Lives > 0 {
		return
	}
	g.player.Lives = 0
	g.lastWave = g.Waves.Wave()
	g.Player.SetAlive(false)
	g.logger.Info("game over", zap.Int("score", g.player.Score), zap.Int("wave", g.Waves.Wave()))
	g.SetGameState(component.GameOver)
}
