// internal/system/system.go
package system

// Phase задаёт порядок выполнения внутри одного тика.
type Phase int

const (
	PhaseSchedule Phase = iota // 0: планировщик волн, центры строя
	PhaseMove                  // 1: траектории, снаряды, подборы, босс
	PhaseCollide               // 2: попадания, сбор подборов
	PhaseCleanup               // 3: синхронизация HUD, отложенные возвраты
)

// System это интерфейс, который реализует каждая система тика.
type System interface {
	Phase() Phase
	Update(dt float64)
}
