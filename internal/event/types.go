// internal/event/types.go
package event

const (
	GameStateChanged  EventType = "GameStateChanged"  // Смена состояния игры, StateChange
	WaveStarted       EventType = "WaveStarted"       // Волна началась, WaveInfo
	WaveCleared       EventType = "WaveCleared"       // Волна зачищена, WaveInfo
	WaveBanner        EventType = "WaveBanner"        // Показать баннер следующей волны, WaveInfo
	BossWaveStarted   EventType = "BossWaveStarted"   // Босс-волна началась, WaveInfo
	BossDefeated      EventType = "BossDefeated"      // Босс уничтожен, Kill
	LightSpeedStarted EventType = "LightSpeedStarted" // Переход на световую скорость
	LightSpeedEnded   EventType = "LightSpeedEnded"
	DifficultyChanged EventType = "DifficultyChanged" // Сменился уровень сложности, int
	PoolShortage      EventType = "PoolShortage"      // Пул не смог выдать нужное количество, Shortage
	EnemyKilled       EventType = "EnemyKilled"       // Враг уничтожен игроком, Kill
	PowerUpDropped    EventType = "PowerUpDropped"    // Выпало улучшение оружия, Kill
	FoodCollected     EventType = "FoodCollected"
	PlayerDamaged     EventType = "PlayerDamaged" // int, оставшиеся жизни
	BombDetonated     EventType = "BombDetonated"
)
