package system

import (
	"testing"

	"go-shmup/internal/actor"
	"go-shmup/internal/camera"
	"go-shmup/internal/component"
	"go-shmup/internal/config"
	"go-shmup/internal/defs"
	"go-shmup/internal/event"
	"go-shmup/internal/utils"
	vec "go-shmup/pkg/utils"

	"go.uber.org/zap"
)

const tick = 1.0 / 60.0

type fakeOwner struct {
	state   component.GameState
	tier    int
	reports []int
	damage  int
}

func (o *fakeOwner) State() component.GameState { return o.state }

func (o *fakeOwner) SetDifficultyTier(t int) {
	o.tier = t
	o.reports = append(o.reports, t)
}

func (o *fakeOwner) DifficultyTier() int { return o.tier }

func (o *fakeOwner) DamagePlayer() { o.damage++ }

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (l *eventLog) last(t event.EventType) (event.Event, bool) {
	for i := len(l.events) - 1; i >= 0; i-- {
		if l.events[i].Type == t {
			return l.events[i], true
		}
	}
	return event.Event{}, false
}

var loggedEvents = []event.EventType{
	event.WaveStarted, event.WaveCleared, event.WaveBanner, event.BossWaveStarted,
	event.BossDefeated, event.LightSpeedStarted, event.LightSpeedEnded,
	event.DifficultyChanged, event.PoolShortage, event.EnemyKilled, event.PowerUpDropped,
	event.FoodCollected, event.BombDetonated,
}

type harness struct {
	cfg    *config.Config
	owner  *fakeOwner
	disp   *event.Dispatcher
	events *eventLog
	cam    *camera.Ortho
	player *actor.Player
	pools  *actor.PoolManager
	sched  *WaveScheduler
}

func newHarness(t *testing.T, enemies int, logger *zap.Logger) *harness {
	t.Helper()
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := config.Default()
	cfg.Pools.Enemy = enemies

	h := &harness{
		cfg:    cfg,
		owner:  &fakeOwner{state: component.Menu},
		disp:   event.NewDispatcher(),
		events: &eventLog{},
		cam:    camera.NewOrtho(config.WorldHalfHeight, float64(config.ScreenWidth)/float64(config.ScreenHeight)),
	}
	for _, et := range loggedEvents {
		h.disp.Subscribe(et, h.events)
	}
	rng := utils.NewPRNGService(1)
	h.player = actor.NewPlayer(h.cam.ViewportToWorld(vec.V(0.5, 0.15)))
	h.pools = actor.NewPoolManager(cfg.Pools, actor.DefaultFactories(cfg, h.owner, rng), zap.NewNop())
	h.sched = NewWaveScheduler(SchedulerDeps{
		Owner:      h.owner,
		Pools:      h.pools,
		Viewport:   h.cam,
		Player:     h.player,
		Dispatcher: h.disp,
		Tuning:     defs.DefaultWaveTuning(),
		Config:     cfg.Scheduler,
		Boss:       cfg.Boss,
		Rng:        rng,
		Logger:     logger,
	})
	return h
}

func (h *harness) setState(to component.GameState) {
	from := h.owner.state
	h.owner.state = to
	h.disp.Dispatch(event.Event{Type: event.GameStateChanged, Data: event.StateChange{From: from, To: to}})
}

// run advances the scheduler by roughly seconds.
func (h *harness) run(seconds float64) {
	for n := int(seconds/tick + 0.5); n > 0; n-- {
		h.sched.Update(tick)
	}
}

// killAll releases every live enemy as if the player shot them.
func (h *harness) killAll() {
	for _, e := range h.pools.ActiveEnemies(nil) {
		h.pools.ReleaseEnemy(e)
	}
}

// finishWave waits for the current non-boss wave to finish spawning, clears it
// and waits out the delay so the next wave starts.
func (h *harness) finishWave(t *testing.T) {
	t.Helper()
	wave := h.sched.Wave()
	for i := 0; i < 600 && h.sched.State() == SpawningPattern; i++ {
		h.sched.Update(tick)
	}
	if h.sched.State() != AwaitingClear {
		t.Fatalf("wave %d: state %v, want AwaitingClear", wave, h.sched.State())
	}
	h.killAll()
	h.sched.Update(tick)
	if h.sched.State() != InterWaveDelay {
		t.Fatalf("wave %d: state %v after clear, want InterWaveDelay", wave, h.sched.State())
	}
	h.run(h.cfg.Scheduler.InterWaveDelay + 0.1)
	if h.sched.Wave() != wave+1 {
		t.Fatalf("wave %d: next wave is %d", wave, h.sched.Wave())
	}
}
