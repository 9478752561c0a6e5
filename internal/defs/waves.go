package defs

import "go-shmup/pkg/utils"

// Curve описывает величину, растущую с номером волны: base + per_wave*wave,
// зажатую в [min, max].
type Curve struct {
	Base    float64 `yaml:"base"`
	PerWave float64 `yaml:"per_wave"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
}

// At возвращает значение кривой для волны.
func (c Curve) At(wave int) float64 {
	return utils.Clamp(c.Base+c.PerWave*float64(wave), c.Min, c.Max)
}

// Count возвращает целое значение кривой (с округлением вниз) для волны.
func (c Curve) Count(wave int) int {
	return utils.ClampInt(utils.FloorInt(c.Base+c.PerWave*float64(wave)), int(c.Min), int(c.Max))
}

// WaveTuning: параметры всех генераторов паттернов.
type WaveTuning struct {
	Line    LineTuning    `yaml:"line"`
	Arc     ArcTuning     `yaml:"arc"`
	Dive    DiveTuning    `yaml:"dive"`
	Columns ColumnsTuning `yaml:"columns"`
	Pincer  PincerTuning  `yaml:"pincer"`
}

// LineTuning: один ряд врагов, летящих прямо вниз.
type LineTuning struct {
	Count  Curve   `yaml:"count"`
	Speed  Curve   `yaml:"speed"`
	SpanX  float64 `yaml:"span_x"`  // Ширина ряда в долях экрана
	SpawnY float64 `yaml:"spawn_y"` // Высота появления в долях экрана
}

// ArcTuning: ряды врагов, летящих синусоидой.
type ArcTuning struct {
	Rows          int     `yaml:"rows"`
	PerRow        Curve   `yaml:"per_row"`
	Speed         Curve   `yaml:"speed"`
	Amplitude     float64 `yaml:"amplitude"`
	AmplitudeStep float64 `yaml:"amplitude_step"` // Прибавка на каждый следующий ряд
	Frequency     float64 `yaml:"frequency"`
	FrequencyStep float64 `yaml:"frequency_step"`
	RowDelay      float64 `yaml:"row_delay"`
	SpanX         float64 `yaml:"span_x"`
	SpawnY        float64 `yaml:"spawn_y"`
}

// DiveTuning: группы врагов, пикирующих на игрока.
type DiveTuning struct {
	Bursts     int     `yaml:"bursts"`
	PerBurst   Curve   `yaml:"per_burst"`
	EntrySpeed Curve   `yaml:"entry_speed"`
	DelayMin   float64 `yaml:"delay_min"`
	DelayMax   float64 `yaml:"delay_max"`
	DiveSpeed  float64 `yaml:"dive_speed"`
	DiveJitter float64 `yaml:"dive_jitter"`
	BurstDelay float64 `yaml:"burst_delay"`
	SpanX      float64 `yaml:"span_x"`
	SpawnY     float64 `yaml:"spawn_y"`
}

// ColumnsTuning: строй, который движется как единое целое.
type ColumnsTuning struct {
	Columns  Curve   `yaml:"columns"`
	Rows     Curve   `yaml:"rows"`
	Speed    Curve   `yaml:"speed"`
	SpacingX float64 `yaml:"spacing_x"` // Игровые единицы
	SpacingY float64 `yaml:"spacing_y"`
	Sway     float64 `yaml:"sway"`
	SwayFreq float64 `yaml:"sway_freq"`
	SpawnY   float64 `yaml:"spawn_y"`
}

// PincerTuning: пары врагов, идущих навстречу по полуокружностям.
type PincerTuning struct {
	Pairs      Curve   `yaml:"pairs"`
	Speed      Curve   `yaml:"speed"`
	Radius     float64 `yaml:"radius"`
	RadiusStep float64 `yaml:"radius_step"` // Уменьшение радиуса для каждой следующей пары
	MinRadius  float64 `yaml:"min_radius"`
	CenterY    float64 `yaml:"center_y"`
	PairDelay  float64 `yaml:"pair_delay"`
}

// DefaultWaveTuning возвращает встроенные параметры волн.
func DefaultWaveTuning() WaveTuning {
	return WaveTuning{
		Line: LineTuning{
			Count:  Curve{Base: 6, PerWave: 1, Min: 6, Max: 14},
			Speed:  Curve{Base: 2.5, PerWave: 0.15, Min: 2.5, Max: 6},
			SpanX:  0.8,
			SpawnY: 1.1,
		},
		Arc: ArcTuning{
			Rows:          2,
			PerRow:        Curve{Base: 4, PerWave: 0.5, Min: 4, Max: 10},
			Speed:         Curve{Base: 2.2, PerWave: 0.12, Min: 2.2, Max: 5.2},
			Amplitude:     1,
			AmplitudeStep: 0.4,
			Frequency:     2,
			FrequencyStep: 0.3,
			RowDelay:      0.4,
			SpanX:         0.7,
			SpawnY:        1.1,
		},
		Dive: DiveTuning{
			Bursts:     3,
			PerBurst:   Curve{Base: 3, PerWave: 1.0 / 3.0, Min: 3, Max: 8},
			EntrySpeed: Curve{Base: 2.8, PerWave: 0.01, Min: 2.8, Max: 6.5},
			DelayMin:   0.4,
			DelayMax:   0.9,
			DiveSpeed:  7,
			DiveJitter: 0.5,
			BurstDelay: 0.8,
			SpanX:      0.6,
			SpawnY:     1.1,
		},
		Columns: ColumnsTuning{
			Columns:  Curve{Base: 3, PerWave: 0.25, Min: 3, Max: 6},
			Rows:     Curve{Base: 2, PerWave: 1.0 / 6.0, Min: 2, Max: 4},
			Speed:    Curve{Base: 1.2, PerWave: 0.05, Min: 1.2, Max: 3},
			SpacingX: 0.9,
			SpacingY: 0.8,
			Sway:     0.6,
			SwayFreq: 1.2,
			SpawnY:   1.1,
		},
		Pincer: PincerTuning{
			Pairs:      Curve{Base: 2, PerWave: 0.2, Min: 2, Max: 5},
			Speed:      Curve{Base: 3.5, PerWave: 0.1, Min: 3.5, Max: 6.5},
			Radius:     2.4,
			RadiusStep: 0.3,
			MinRadius:  1,
			CenterY:    1.02,
			PairDelay:  0.6,
		},
	}
}
