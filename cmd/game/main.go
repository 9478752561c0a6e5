// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go-shmup/internal/app"
	"go-shmup/internal/config"
	"go-shmup/internal/defs"
	"go-shmup/internal/logging"
	"go-shmup/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to the game TOML config (built-in defaults when empty)")
	tuningPath := flag.String("tuning", "", "path to the wave tuning YAML (overrides [tuning] waves)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if *tuningPath == "" {
		*tuningPath = cfg.Tuning.Waves
	}
	tuning := defs.DefaultWaveTuning()
	if *tuningPath != "" {
		if tuning, err = defs.LoadWaveTuning(*tuningPath); err != nil {
			return err
		}
		logger.Info("wave tuning loaded", zap.String("path", *tuningPath))
	}

	game := app.NewGame(cfg, tuning, logger)
	sm := state.NewStateMachine(game, state.NewView(game))
	sm.SetState(state.NewMenuState(sm))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Shmup")
	logger.Info("starting", zap.Int("width", config.ScreenWidth), zap.Int("height", config.ScreenHeight))
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, lastUpdateTime: time.Now()}); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	game.Pools.LogStats()
	return nil
}
