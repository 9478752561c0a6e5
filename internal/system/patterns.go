// internal/system/patterns.go
package system

import (
	"math"

	"go-shmup/internal/camera"
	"go-shmup/internal/defs"
	"go-shmup/internal/movement"
	"go-shmup/internal/utils"
	vec "go-shmup/pkg/utils"
)

// Pattern: паттерн появления врагов в волне
type Pattern int

const (
	PatternBoss Pattern = iota
	PatternLine
	PatternSineArc
	PatternDive
	PatternColumns
	PatternPincer
)

// PatternCycle это число волн, после которого последовательность паттернов
// повторяется; последняя волна каждого цикла отдана боссу.
const PatternCycle = 6

func (p Pattern) String() string {
	switch p {
	case PatternBoss:
		return "boss"
	case PatternLine:
		return "line"
	case PatternSineArc:
		return "sine_arc"
	case PatternDive:
		return "dive"
	case PatternColumns:
		return "columns"
	case PatternPincer:
		return "pincer"
	}
	return "unknown"
}

// PatternFor выбирает паттерн волны: 1 ряд, 2 синусоида, 3 пике,
// 4 колонны, 5 клещи, 6 босс, затем снова ряд.
func PatternFor(wave int) Pattern {
	if wave < 1 {
		wave = 1
	}
	return Pattern(wave % PatternCycle)
}

// TierFor переводит номер волны в уровень сложности.
func TierFor(wave, wavesPerTier int) int {
	if wave < 1 {
		wave = 1
	}
	if wavesPerTier < 1 {
		wavesPerTier = 1
	}
	return (wave-1)/wavesPerTier + 1
}

// SpawnOrder ставит одного врага и назначает ему движение.
type SpawnOrder struct {
	Position vec.Vec2
	Motion   movement.Descriptor
}

// Burst это группа врагов, появляющихся на одном тике через Delay секунд
// после предыдущей группы.
type Burst struct {
	Delay  float64
	Orders []SpawnOrder
}

// Plan это полное расписание появления врагов одной волны.
type Plan struct {
	Pattern   Pattern
	Requested int // сколько врагов хотел паттерн до подгонки под пул
	Bursts    []Burst
	Formation *movement.FormationCenter
}

// Count это сколько врагов план действительно выпустит.
func (p Plan) Count() int {
	n := 0
	for _, b := range p.Bursts {
		n += len(b.Orders)
	}
	return n
}

// PlanContext это то, на что может смотреть генератор паттерна.
type PlanContext struct {
	Wave      int
	Available int
	Viewport  camera.Viewport
	Player    movement.PlayerLocator
	Tuning    defs.WaveTuning
	Rng       *utils.PRNGService
}

type generator func(ctx PlanContext) Plan

var generators = map[Pattern]generator{
	PatternLine:    planLine,
	PatternSineArc: planSineArc,
	PatternDive:    planDive,
	PatternColumns: planColumns,
	PatternPincer:  planPincer,
}

// BuildPlan запускает генератор p. Босс-волны и неизвестные паттерны получают пустой план.
func BuildPlan(p Pattern, ctx PlanContext) Plan {
	gen, ok := generators[p]
	if !ok || ctx.Viewport == nil {
		return Plan{Pattern: p}
	}
	if ctx.Rng == nil {
		ctx.Rng = utils.NewPRNGService(0)
	}
	plan := gen(ctx)
	plan.Pattern = p
	return plan
}

// fitGrid сначала урезает ряды, затем колонны, пока сетка не влезет в available.
func fitGrid(rows, cols, available int) (int, int) {
	if rows*cols <= available {
		return rows, cols
	}
	if available <= 0 {
		return 0, 0
	}
	for rows > 1 && rows*cols > available {
		rows--
	}
	if rows*cols > available {
		cols = available / rows
	}
	return rows, cols
}

// spread возвращает i-ю из n равномерно расставленных по span позиций x.
func spread(i, n int, span float64) float64 {
	return 0.5 - span/2 + span*(float64(i)+0.5)/float64(n)
}

func planLine(ctx PlanContext) Plan {
	t := ctx.Tuning.Line
	want := t.Count.Count(ctx.Wave)
	n := min(want, ctx.Available)
	speed := t.Speed.At(ctx.Wave)

	burst := Burst{Orders: make([]SpawnOrder, 0, n)}
	for i := 0; i < n; i++ {
		pos := ctx.Viewport.ViewportToWorld(vec.V(spread(i, n, t.SpanX), t.SpawnY))
		burst.Orders = append(burst.Orders, SpawnOrder{Position: pos, Motion: movement.StraightDown{Speed: speed}})
	}
	return Plan{Requested: want, Bursts: []Burst{burst}}
}

func planSineArc(ctx PlanContext) Plan {
	t := ctx.Tuning.Arc
	perRow := t.PerRow.Count(ctx.Wave)
	want := t.Rows * perRow
	rows, perRow := fitGrid(t.Rows, perRow, ctx.Available)
	speed := t.Speed.At(ctx.Wave)

	plan := Plan{Requested: want}
	for r := 0; r < rows; r++ {
		burst := Burst{Orders: make([]SpawnOrder, 0, perRow)}
		if r > 0 {
			burst.Delay = t.RowDelay
		}
		amp := t.Amplitude + float64(r)*t.AmplitudeStep
		freq := t.Frequency + float64(r)*t.FrequencyStep
		for i := 0; i < perRow; i++ {
			pos := ctx.Viewport.ViewportToWorld(vec.V(spread(i, perRow, t.SpanX), t.SpawnY))
			burst.Orders = append(burst.Orders, SpawnOrder{
				Position: pos,
				Motion:   movement.Sine{Speed: speed, Amplitude: amp, Frequency: freq, Phase: ctx.Rng.Phase()},
			})
		}
		plan.Bursts = append(plan.Bursts, burst)
	}
	return plan
}

func planDive(ctx PlanContext) Plan {
	t := ctx.Tuning.Dive
	perBurst := t.PerBurst.Count(ctx.Wave)
	want := t.Bursts * perBurst
	bursts, perBurst := fitGrid(t.Bursts, perBurst, ctx.Available)
	entry := t.EntrySpeed.At(ctx.Wave)

	plan := Plan{Requested: want}
	for b := 0; b < bursts; b++ {
		burst := Burst{Orders: make([]SpawnOrder, 0, perBurst)}
		if b > 0 {
			burst.Delay = t.BurstDelay
		}
		for i := 0; i < perBurst; i++ {
			x := 0.5 + ctx.Rng.Range(-t.SpanX/2, t.SpanX/2)
			pos := ctx.Viewport.ViewportToWorld(vec.V(x, t.SpawnY))
			burst.Orders = append(burst.Orders, SpawnOrder{
				Position: pos,
				Motion: movement.Dive{
					ApproachSpeed: entry,
					DiveSpeed:     t.DiveSpeed + ctx.Rng.Range(-t.DiveJitter, t.DiveJitter),
					Delay:         ctx.Rng.Range(t.DelayMin, t.DelayMax),
					Target:        ctx.Player,
				},
			})
		}
		plan.Bursts = append(plan.Bursts, burst)
	}
	return plan
}

func planColumns(ctx PlanContext) Plan {
	t := ctx.Tuning.Columns
	cols := t.Columns.Count(ctx.Wave)
	rows := t.Rows.Count(ctx.Wave)
	want := cols * rows
	rows, cols = fitGrid(rows, cols, ctx.Available)
	if rows*cols == 0 {
		return Plan{Requested: want}
	}

	origin := ctx.Viewport.ViewportToWorld(vec.V(0.5, t.SpawnY))
	center := movement.NewFormationCenter(origin, vec.V(0, -t.Speed.At(ctx.Wave)), t.Sway, t.SwayFreq)

	burst := Burst{Orders: make([]SpawnOrder, 0, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			offset := vec.V((float64(c)-float64(cols-1)/2)*t.SpacingX, float64(r)*t.SpacingY)
			burst.Orders = append(burst.Orders, SpawnOrder{
				Position: origin.Add(offset),
				Motion:   movement.InFormation{Offset: offset, Center: center},
			})
		}
	}
	return Plan{Requested: want, Bursts: []Burst{burst}, Formation: center}
}

func planPincer(ctx PlanContext) Plan {
	t := ctx.Tuning.Pincer
	pairs := t.Pairs.Count(ctx.Wave)
	want := pairs * 2
	pairs = min(pairs, ctx.Available/2)
	speed := t.Speed.At(ctx.Wave)
	center := ctx.Viewport.ViewportToWorld(vec.V(0.5, t.CenterY))

	plan := Plan{Requested: want}
	for i := 0; i < pairs; i++ {
		radius := math.Max(t.MinRadius, t.Radius-float64(i)*t.RadiusStep)
		left := movement.Arc{Center: center, Radius: radius, StartAngle: math.Pi, LinearSpeed: speed}
		right := movement.Arc{Center: center, Radius: radius, Clockwise: true, StartAngle: 0, LinearSpeed: speed}
		burst := Burst{Orders: []SpawnOrder{
			{Position: center.Add(vec.V(-radius, 0)), Motion: left},
			{Position: center.Add(vec.V(radius, 0)), Motion: right},
		}}
		if i > 0 {
			burst.Delay = t.PairDelay
		}
		plan.Bursts = append(plan.Bursts, burst)
	}
	return plan
}
