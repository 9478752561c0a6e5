// internal/system/wave.go
package system

import (
	"go-shmup/internal/actor"
	"go-shmup/internal/camera"
	"go-shmup/internal/component"
	"go-shmup/internal/config"
	"go-shmup/internal/defs"
	"go-shmup/internal/event"
	"go-shmup/internal/movement"
	"go-shmup/internal/utils"
	vec "go-shmup/pkg/utils"

	"go.uber.org/zap"
)

// SchedulerState: состояние планировщика волн
type SchedulerState int

const (
	WaitingForPlayState SchedulerState = iota
	SpawningPattern
	AwaitingClear
	InterWaveDelay
	BossSequence
	LightSpeedTransition
)

func (s SchedulerState) String() string {
	switch s {
	case WaitingForPlayState:
		return "WaitingForPlayState"
	case SpawningPattern:
		return "SpawningPattern"
	case AwaitingClear:
		return "AwaitingClear"
	case InterWaveDelay:
		return "InterWaveDelay"
	case BossSequence:
		return "BossSequence"
	case LightSpeedTransition:
		return "LightSpeedTransition"
	}
	return "Unknown"
}

// GameStateOwner это часть игры, за которой следит и которой отчитывается планировщик.
type GameStateOwner interface {
	State() component.GameState
	SetDifficultyTier(tier int)
}

// EnemyPool это источник врагов для планировщика.
type EnemyPool interface {
	AcquireEnemy(pos vec.Vec2) (*actor.Enemy, bool)
	ReleaseEnemy(e *actor.Enemy) bool
	AvailableEnemyCount() int
}

// SchedulerDeps это зависимости WaveScheduler. Отсутствующие логируются,
// шаги, которым они нужны, пропускаются.
type SchedulerDeps struct {
	Owner      GameStateOwner
	Pools      EnemyPool
	Viewport   camera.Viewport
	Player     movement.PlayerLocator
	Dispatcher *event.Dispatcher
	Tuning     defs.WaveTuning
	Config     config.SchedulerConfig
	Boss       config.BossConfig
	Rng        *utils.PRNGService
	Logger     *zap.Logger
}

// WaveScheduler запускает волны одну за другой, пока игра в Playing: выбирает
// паттерн, выпускает его группами, ждёт зачистки, ведёт босс-волны
// и паузы между волнами. Забег начинается при переходе в Playing
// и сбрасывается при переходе в Menu или GameOver.
type WaveScheduler struct {
	owner      GameStateOwner
	pools      EnemyPool
	viewport   camera.Viewport
	player     movement.PlayerLocator
	dispatcher *event.Dispatcher
	tuning     defs.WaveTuning
	cfg        config.SchedulerConfig
	bossCfg    config.BossConfig
	rng        *utils.PRNGService
	logger     *zap.Logger

	running      bool
	state        SchedulerState
	wave         int
	tier         int
	registry     Registry
	plan         Plan
	burst        int
	timer        float64
	clearElapsed float64
	formation    *movement.FormationCenter
	boss         *actor.Boss
	bossDefeated bool
}

func NewWaveScheduler(d SchedulerDeps) *WaveScheduler {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Rng == nil {
		d.Rng = utils.NewPRNGService(d.Config.Seed)
	}
	s := &WaveScheduler{
		owner:      d.Owner,
		pools:      d.Pools,
		viewport:   d.Viewport,
		player:     d.Player,
		dispatcher: d.Dispatcher,
		tuning:     d.Tuning,
		cfg:        d.Config,
		bossCfg:    d.Boss,
		rng:        d.Rng,
		logger:     d.Logger.Named("waves"),
	}
	if s.cfg.WavesPerTier < 1 {
		s.cfg.WavesPerTier = 5
	}

	if s.dispatcher != nil {
		s.dispatcher.Subscribe(event.GameStateChanged, s)
	} else {
		s.logger.Warn("no event dispatcher, scheduler will not follow game state and sends no notifications")
	}
	if s.owner == nil {
		s.logger.Warn("no game state owner, difficulty tier will not be reported")
	}
	if s.pools == nil {
		s.logger.Warn("no enemy pool, waves will spawn nothing")
	}
	if s.viewport == nil {
		s.logger.Warn("no viewport, waves will spawn nothing")
	}
	if s.player == nil {
		s.logger.Warn("no player locator, dive enemies will not aim")
	}
	return s
}

func (s *WaveScheduler) Phase() Phase { return PhaseSchedule }

// OnEvent следит за сменой состояния игры.
func (s *WaveScheduler) OnEvent(e event.Event) {
	if e.Type != event.GameStateChanged {
		return
	}
	change, ok := e.Data.(event.StateChange)
	if !ok {
		s.logger.Warn("game state event without payload")
		return
	}
	switch change.To {
	case component.Playing:
		if !s.running {
			s.Start()
		}
	case component.Menu, component.GameOver:
		s.Cancel()
	}
}

// Start начинает новый забег; первая волна появится на следующем тике Playing.
func (s *WaveScheduler) Start() {
	s.reset()
	s.running = true
	s.logger.Info("wave run started")
}

// Cancel немедленно сбрасывает состояние волны. Враги на экране
// остаются владельцу пулов.
func (s *WaveScheduler) Cancel() {
	if !s.running {
		return
	}
	if s.boss != nil {
		s.boss.Deactivate()
	}
	s.logger.Info("wave run cancelled", zap.Int("wave", s.wave), zap.Stringer("state", s.state))
	s.reset()
}

func (s *WaveScheduler) reset() {
	s.running = false
	s.state = WaitingForPlayState
	s.wave = 0
	s.tier = 0
	s.registry.Clear()
	s.plan = Plan{}
	s.burst = 0
	s.timer = 0
	s.clearElapsed = 0
	s.formation = nil
	s.boss = nil
	s.bossDefeated = false
}

func (s *WaveScheduler) Running() bool { return s.running }

func (s *WaveScheduler) State() SchedulerState { return s.state }

// Wave это номер текущей волны, 0 до первой.
func (s *WaveScheduler) Wave() int { return s.wave }

func (s *WaveScheduler) Tier() int { return s.tier }

// ActiveEnemies это число живых врагов в реестре.
func (s *WaveScheduler) ActiveEnemies() int { return s.registry.Len() }

// Boss это босс текущей босс-волны или nil.
func (s *WaveScheduler) Boss() *actor.Boss { return s.boss }

// Formation это центр текущего строя или nil.
func (s *WaveScheduler) Formation() *movement.FormationCenter { return s.formation }

// Update продвигает планировщик. Без Playing ничего не движется,
// поэтому пауза замораживает все ожидания на месте.
func (s *WaveScheduler) Update(dt float64) {
	if !s.running {
		return
	}
	if s.owner != nil && s.owner.State() != component.Playing {
		return
	}

	if s.formation != nil {
		s.formation.Advance(dt)
		s.releaseFormationStragglers()
	}
	s.registry.Prune()

	switch s.state {
	case WaitingForPlayState:
		s.beginWave(s.wave + 1)
	case SpawningPattern:
		s.advanceSpawning(dt)
	case AwaitingClear:
		s.awaitClear(dt)
	case BossSequence:
		if s.bossDefeated && s.registry.Len() == 0 {
			s.startLightSpeed()
		}
	case InterWaveDelay:
		s.timer -= dt
		if s.timer <= 0 {
			s.beginWave(s.wave + 1)
		}
	case LightSpeedTransition:
		s.timer -= dt
		if s.timer <= 0 {
			s.dispatch(event.LightSpeedEnded, nil)
			s.announce(s.wave + 1)
			s.beginWave(s.wave + 1)
		}
	}
}

func (s *WaveScheduler) info() event.WaveInfo {
	return event.WaveInfo{Wave: s.wave, Tier: s.tier, Boss: PatternFor(s.wave) == PatternBoss}
}

func (s *WaveScheduler) beginWave(n int) {
	if n == 1 {
		s.announce(1)
	}
	s.wave = n
	if tier := TierFor(n, s.cfg.WavesPerTier); tier != s.tier {
		s.tier = tier
		if s.owner != nil {
			s.owner.SetDifficultyTier(tier)
		}
		s.dispatch(event.DifficultyChanged, tier)
	}

	s.registry.Clear()
	s.formation = nil
	s.clearElapsed = 0
	s.burst = 0
	s.timer = 0

	pattern := PatternFor(n)
	s.logger.Info("wave started", zap.Int("wave", n), zap.Int("tier", s.tier), zap.Stringer("pattern", pattern))
	s.dispatch(event.WaveStarted, s.info())

	if pattern == PatternBoss {
		s.plan = Plan{Pattern: PatternBoss}
		s.state = BossSequence
		s.dispatch(event.BossWaveStarted, s.info())
		s.spawnBoss()
		return
	}

	s.plan = s.buildPlan(pattern)
	s.state = SpawningPattern
	if len(s.plan.Bursts) > 0 {
		s.timer = s.plan.Bursts[0].Delay
	}
	s.advanceSpawning(0)
}

func (s *WaveScheduler) buildPlan(pattern Pattern) Plan {
	if s.pools == nil || s.viewport == nil {
		s.logger.Warn("spawn skipped, collaborators missing", zap.Int("wave", s.wave))
		return Plan{Pattern: pattern}
	}
	available := s.pools.AvailableEnemyCount()
	plan := BuildPlan(pattern, PlanContext{
		Wave:      s.wave,
		Available: available,
		Viewport:  s.viewport,
		Player:    s.player,
		Tuning:    s.tuning,
		Rng:       s.rng,
	})
	if n := plan.Count(); n < plan.Requested {
		s.logger.Warn("not enough pooled enemies, pattern scaled down",
			zap.Int("wave", s.wave),
			zap.Stringer("pattern", pattern),
			zap.Int("requested", plan.Requested),
			zap.Int("available", available),
			zap.Int("planned", n))
		s.dispatch(event.PoolShortage, event.Shortage{Pool: actor.KindEnemy, Requested: plan.Requested, Available: available})
	}
	s.formation = plan.Formation
	return plan
}

func (s *WaveScheduler) advanceSpawning(dt float64) {
	s.timer -= dt
	for s.burst < len(s.plan.Bursts) && s.timer <= 0 {
		s.spawnBurst(s.plan.Bursts[s.burst])
		s.burst++
		if s.burst < len(s.plan.Bursts) {
			s.timer += s.plan.Bursts[s.burst].Delay
		}
	}
	if s.burst >= len(s.plan.Bursts) {
		s.state = AwaitingClear
	}
}

func (s *WaveScheduler) spawnBurst(b Burst) {
	for _, order := range b.Orders {
		e, ok := s.pools.AcquireEnemy(order.Position)
		if !ok {
			s.logger.Warn("enemy pool returned nothing, burst cut short", zap.Int("wave", s.wave))
			return
		}
		if err := e.Mover.Configure(order.Motion, e.Position); err != nil {
			s.logger.Error("malformed spawn order, enemy released", zap.Int("wave", s.wave), zap.Error(err))
			s.pools.ReleaseEnemy(e)
			continue
		}
		s.registry.Add(e)
	}
}

func (s *WaveScheduler) awaitClear(dt float64) {
	if s.cleared() {
		s.finishWave()
		return
	}
	if s.cfg.ClearTimeout <= 0 {
		return
	}
	s.clearElapsed += dt
	if s.clearElapsed >= s.cfg.ClearTimeout {
		s.logger.Warn("wave clear timed out, moving on",
			zap.Int("wave", s.wave), zap.Int("remaining", s.registry.Len()))
		s.disbandFormation()
		s.finishWave()
	}
}

func (s *WaveScheduler) cleared() bool {
	return s.registry.Len() == 0 && (s.boss == nil || !s.boss.Active())
}

func (s *WaveScheduler) finishWave() {
	s.logger.Info("wave cleared", zap.Int("wave", s.wave))
	s.dispatch(event.WaveCleared, s.info())
	s.registry.Clear()
	s.formation = nil
	s.state = InterWaveDelay
	s.timer = s.cfg.InterWaveDelay
	s.announce(s.wave + 1)
}

// announce просит UI показать баннер волны n.
func (s *WaveScheduler) announce(n int) {
	s.dispatch(event.WaveBanner, event.WaveInfo{
		Wave: n,
		Tier: TierFor(n, s.cfg.WavesPerTier),
		Boss: PatternFor(n) == PatternBoss,
	})
}

func (s *WaveScheduler) spawnBoss() {
	s.bossDefeated = false
	if s.viewport == nil {
		s.logger.Warn("boss skipped, no viewport", zap.Int("wave", s.wave))
		s.bossDefeated = true
		return
	}
	s.boss = actor.NewBoss(s.bossCfg, s.tier, s.viewport, s.rng, s.onBossDefeated)
	s.logger.Info("boss spawned", zap.Int("wave", s.wave), zap.Int("hp", s.boss.Health.Value))
}

// onBossDefeated это единственный способ закончить босс-волну.
func (s *WaveScheduler) onBossDefeated(b *actor.Boss) {
	if b != s.boss || s.state != BossSequence {
		return
	}
	s.bossDefeated = true
	s.logger.Info("boss defeated", zap.Int("wave", s.wave))
	s.dispatch(event.BossDefeated, event.Kill{Position: b.Position, Score: b.ScoreValue()})
}

func (s *WaveScheduler) startLightSpeed() {
	s.dispatch(event.WaveCleared, s.info())
	s.boss = nil
	s.state = LightSpeedTransition
	s.timer = s.cfg.LightSpeedDuration
	s.logger.Info("light speed", zap.Int("wave", s.wave), zap.Float64("seconds", s.timer))
	s.dispatch(event.LightSpeedStarted, nil)
}

// releaseFormationStragglers возвращает в пул участников строя, покинувших
// поле; их жизненным циклом владеет строй, а не система движения.
func (s *WaveScheduler) releaseFormationStragglers() {
	if s.pools == nil || s.viewport == nil {
		return
	}
	s.registry.Each(func(e *actor.Enemy) {
		if e.Mover.InFormation() && camera.OutOfPlayField(s.viewport, e.Position) {
			s.pools.ReleaseEnemy(e)
		}
	})
}

// disbandFormation переводит оставшихся членов строя на прямой спуск, чтобы их
// вернула в пул проверка границ. Неподвижный строй возвращается в пул сразу.
func (s *WaveScheduler) disbandFormation() {
	if s.formation == nil || s.pools == nil {
		return
	}
	speed := -s.formation.Velocity().Y
	s.registry.Each(func(e *actor.Enemy) {
		if !e.Mover.InFormation() {
			return
		}
		if speed <= 0 {
			s.pools.ReleaseEnemy(e)
			return
		}
		if err := e.Mover.Configure(movement.StraightDown{Speed: speed}, e.Position); err != nil {
			s.pools.ReleaseEnemy(e)
		}
	})
}

func (s *WaveScheduler) dispatch(t event.EventType, data interface{}) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Dispatch(event.Event{Type: t, Data: data})
}
