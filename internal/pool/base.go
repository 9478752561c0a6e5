// internal/pool/base.go
package pool

import "go-shmup/pkg/utils"

// Base это служебные поля, которые несёт каждый актор из пула. Акторы встраивают
// его по значению; неэкспортируемые поля меняет только Pool.
type Base struct {
	Position    utils.Vec2
	Orientation float64

	active     bool
	generation uint64
	owner      any
	index      int // индекс в списке активных у владельца
}

// Active сообщает, выдан ли экземпляр сейчас.
func (b *Base) Active() bool { return b.active }

// Generation увеличивается при каждой выдаче. Сохранённая пара (указатель, поколение)
// устаревает, как только экземпляр вернули и выдали снова.
func (b *Base) Generation() uint64 { return b.generation }

func (b *Base) poolBase() *Base { return b }

// Poolable реализуют указательные типы, встраивающие Base.
type Poolable interface {
	// OnAcquire сбрасывает состояние после того, как применена позиция.
	OnAcquire()
	// OnRelease останавливает эффекты и отпускает ссылки перед возвратом в пул.
	OnRelease()

	poolBase() *Base
}
