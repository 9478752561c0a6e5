// internal/config/file.go
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the tunables that are read from a TOML file at start-up.
type Config struct {
	Pools      PoolsConfig      `toml:"pools"`
	Scheduler  SchedulerConfig  `toml:"scheduler"`
	Enemy      EnemyConfig      `toml:"enemy"`
	Boss       BossConfig       `toml:"boss"`
	Player     PlayerConfig     `toml:"player"`
	Pickups    PickupsConfig    `toml:"pickups"`
	Background BackgroundConfig `toml:"background"`
	Logging    LoggingConfig    `toml:"logging"`
	Tuning     TuningConfig     `toml:"tuning"`
}

// PoolsConfig is the number of instances created up front for each actor kind.
type PoolsConfig struct {
	Enemy        int `toml:"enemy"`
	PlayerBullet int `toml:"player_bullet"`
	EnemyBullet  int `toml:"enemy_bullet"`
	Food         int `toml:"food"`
	Bomb         int `toml:"bomb"`
	HUDIcon      int `toml:"hud_icon"`
}

type SchedulerConfig struct {
	InterWaveDelay     float64 `toml:"inter_wave_delay"`     // seconds
	LightSpeedDuration float64 `toml:"light_speed_duration"` // seconds, after a boss wave
	ClearTimeout       float64 `toml:"clear_timeout"`        // 0 waits for the clear forever
	WavesPerTier       int     `toml:"waves_per_tier"`
	Seed               int64   `toml:"seed"` // 0 seeds from the clock
}

type EnemyConfig struct {
	BaseHP           int     `toml:"base_hp"`
	HPPerTier        int     `toml:"hp_per_tier"`
	Score            int     `toml:"score"`
	FoodDropChance   float64 `toml:"food_drop_chance"`
	PowerUpChance    float64 `toml:"power_up_chance"`
	MinShootInterval float64 `toml:"min_shoot_interval"`
	MaxShootInterval float64 `toml:"max_shoot_interval"`
	BulletMinSpeed   float64 `toml:"bullet_min_speed"`
	BulletMaxSpeed   float64 `toml:"bullet_max_speed"`
	BulletLifetime   float64 `toml:"bullet_lifetime"`
}

type BossConfig struct {
	BaseHP            int     `toml:"base_hp"`
	HPPerTier         int     `toml:"hp_per_tier"`
	Score             int     `toml:"score"`
	MinFood           int     `toml:"min_food"`
	MaxFood           int     `toml:"max_food"`
	EntranceSpeed     float64 `toml:"entrance_speed"`
	CombatSpeed       float64 `toml:"combat_speed"`
	DirectionInterval float64 `toml:"direction_interval"`
	DirectionJitter   float64 `toml:"direction_jitter"`
	ScreenPadding     float64 `toml:"screen_padding"`
	FireInterval      float64 `toml:"fire_interval"`
	SpreadShots       int     `toml:"spread_shots"`
}

type PlayerConfig struct {
	Lives           int     `toml:"lives"`
	Bombs           int     `toml:"bombs"`
	Speed           float64 `toml:"speed"`
	FireInterval    float64 `toml:"fire_interval"`
	BulletSpeed     float64 `toml:"bullet_speed"`
	BulletLifetime  float64 `toml:"bullet_lifetime"`
	BulletDamage    int     `toml:"bullet_damage"`
	InvulnerableFor float64 `toml:"invulnerable_for"`
	BombEvery       int     `toml:"bomb_every"` // score between extra bombs
	LifeEvery       int     `toml:"life_every"` // score between extra lives
}

type PickupsConfig struct {
	FoodScore      int     `toml:"food_score"`
	EjectAngle     float64 `toml:"eject_angle"` // degrees either side of straight up
	EjectForceMin  float64 `toml:"eject_force_min"`
	EjectForceMax  float64 `toml:"eject_force_max"`
	Gravity        float64 `toml:"gravity"`
	Bounce         float64 `toml:"bounce"`
	GroundY        float64 `toml:"ground_y"` // viewport fraction
	SettleSpeed    float64 `toml:"settle_speed"`
	FallSpeed      float64 `toml:"fall_speed"`
	BombSpeed      float64 `toml:"bomb_speed"`
	BombDamage     int     `toml:"bomb_damage"`
	ExplosionTime  float64 `toml:"explosion_time"`
	PowerUpPerWave int     `toml:"power_up_per_wave"`
}

type BackgroundConfig struct {
	ScrollSpeed          float64 `toml:"scroll_speed"`
	LightSpeedMultiplier float64 `toml:"light_speed_multiplier"`
	TransitionTime       float64 `toml:"transition_time"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type TuningConfig struct {
	Waves string `toml:"waves"` // YAML wave tuning, empty uses built-in values
}

// Load reads a TOML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Pools: PoolsConfig{
			Enemy:        30,
			PlayerBullet: 60,
			EnemyBullet:  80,
			Food:         40,
			Bomb:         3,
			HUDIcon:      12,
		},
		Scheduler: SchedulerConfig{
			InterWaveDelay:     2.5,
			LightSpeedDuration: 4.0,
			WavesPerTier:       5,
		},
		Enemy: EnemyConfig{
			BaseHP:           3,
			HPPerTier:        1,
			Score:            100,
			FoodDropChance:   0.75,
			PowerUpChance:    0.1,
			MinShootInterval: 5,
			MaxShootInterval: 12,
			BulletMinSpeed:   2,
			BulletMaxSpeed:   4,
			BulletLifetime:   5,
		},
		Boss: BossConfig{
			BaseHP:            50,
			HPPerTier:         25,
			Score:             5000,
			MinFood:           10,
			MaxFood:           20,
			EntranceSpeed:     2,
			CombatSpeed:       1.5,
			DirectionInterval: 2,
			DirectionJitter:   0.5,
			ScreenPadding:     1,
			FireInterval:      1.5,
			SpreadShots:       5,
		},
		Player: PlayerConfig{
			Lives:           3,
			Bombs:           2,
			Speed:           6,
			FireInterval:    0.12,
			BulletSpeed:     18,
			BulletLifetime:  2,
			BulletDamage:    1,
			InvulnerableFor: 2,
			BombEvery:       10000,
			LifeEvery:       50000,
		},
		Pickups: PickupsConfig{
			FoodScore:      50,
			EjectAngle:     60,
			EjectForceMin:  2,
			EjectForceMax:  4,
			Gravity:        -9.8,
			Bounce:         0.6,
			GroundY:        0.1,
			SettleSpeed:    0.5,
			FallSpeed:      2,
			BombSpeed:      5,
			BombDamage:     999,
			ExplosionTime:  1.2,
			PowerUpPerWave: 1,
		},
		Background: BackgroundConfig{
			ScrollSpeed:          1,
			LightSpeedMultiplier: 12,
			TransitionTime:       1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate rejects values the game cannot run with.
func (c *Config) Validate() error {
	pools := []struct {
		name string
		size int
	}{
		{"enemy", c.Pools.Enemy},
		{"player_bullet", c.Pools.PlayerBullet},
		{"enemy_bullet", c.Pools.EnemyBullet},
		{"food", c.Pools.Food},
		{"bomb", c.Pools.Bomb},
		{"hud_icon", c.Pools.HUDIcon},
	}
	for _, p := range pools {
		if p.size <= 0 {
			return fmt.Errorf("pools.%s must be positive, got %d", p.name, p.size)
		}
	}
	if c.Scheduler.InterWaveDelay <= 0 {
		return fmt.Errorf("scheduler.inter_wave_delay must be positive, got %v", c.Scheduler.InterWaveDelay)
	}
	if c.Scheduler.LightSpeedDuration <= 0 {
		return fmt.Errorf("scheduler.light_speed_duration must be positive, got %v", c.Scheduler.LightSpeedDuration)
	}
	if c.Scheduler.ClearTimeout < 0 {
		return fmt.Errorf("scheduler.clear_timeout must not be negative, got %v", c.Scheduler.ClearTimeout)
	}
	if c.Scheduler.WavesPerTier <= 0 {
		return fmt.Errorf("scheduler.waves_per_tier must be positive, got %d", c.Scheduler.WavesPerTier)
	}
	if c.Enemy.BaseHP <= 0 || c.Boss.BaseHP <= 0 {
		return fmt.Errorf("base hp must be positive (enemy %d, boss %d)", c.Enemy.BaseHP, c.Boss.BaseHP)
	}
	if c.Enemy.MinShootInterval <= 0 || c.Enemy.MaxShootInterval < c.Enemy.MinShootInterval {
		return fmt.Errorf("enemy shoot interval [%v, %v] is invalid", c.Enemy.MinShootInterval, c.Enemy.MaxShootInterval)
	}
	if c.Boss.MaxFood < c.Boss.MinFood {
		return fmt.Errorf("boss food range [%d, %d] is invalid", c.Boss.MinFood, c.Boss.MaxFood)
	}
	if c.Player.Lives <= 0 {
		return fmt.Errorf("player.lives must be positive, got %d", c.Player.Lives)
	}
	return nil
}
