// internal/pool/pool.go
package pool

import (
	"go-shmup/pkg/utils"

	"go.uber.org/zap"
)

// Factory создаёт новый неактивный экземпляр.
type Factory[T Poolable] func() T

// Pool переиспользует экземпляры одного типа акторов. Экземпляр либо лежит
// в списке свободных, либо выдан и учтён в списке активных, но не оба сразу.
// Пул растёт, когда свободные кончились, и никогда не сжимается.
//
// Pool не потокобезопасен; всё выполняется в горутине тика.
type Pool[T Poolable] struct {
	name    string
	factory Factory[T]
	free    []T
	active  []T
	created int
	logger  *zap.Logger
}

// New создаёт пул и прогревает его prewarm экземплярами.
func New[T Poolable](name string, factory Factory[T], prewarm int, logger *zap.Logger) *Pool[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Pool[T]{
		name:    name,
		factory: factory,
		logger:  logger.With(zap.String("pool", name)),
	}
	if factory == nil {
		p.logger.Error("pool has no factory, every acquire will fail")
		return p
	}
	p.free = make([]T, 0, prewarm)
	for i := 0; i < prewarm; i++ {
		p.free = append(p.free, p.create())
	}
	p.logger.Debug("pool pre-warmed", zap.Int("instances", prewarm))
	return p
}

func (p *Pool[T]) create() T {
	inst := p.factory()
	inst.poolBase().owner = p
	p.created++
	return inst
}

// Name это метка пула в логах.
func (p *Pool[T]) Name() string { return p.name }

// Acquire выдаёт экземпляр в position с заданной ориентацией.
// false возвращается только если пул создан без фабрики.
func (p *Pool[T]) Acquire(position utils.Vec2, orientation float64) (T, bool) {
	var zero T
	if p.factory == nil {
		return zero, false
	}

	var inst T
	if n := len(p.free); n > 0 {
		inst = p.free[n-1]
		p.free[n-1] = zero
		p.free = p.free[:n-1]
	} else {
		inst = p.create()
		p.logger.Debug("pool grew", zap.Int("total", p.created))
	}

	b := inst.poolBase()
	b.Position = position
	b.Orientation = orientation
	b.active = true
	b.generation++
	b.index = len(p.active)
	p.active = append(p.active, inst)

	inst.OnAcquire()
	return inst, true
}

// Release возвращает inst в список свободных. Возврат неактивного
// или чужого экземпляра логируется и игнорируется.
func (p *Pool[T]) Release(inst T) bool {
	b := inst.poolBase()
	if b.owner != any(p) {
		p.logger.Warn("release of an instance from another pool ignored")
		return false
	}
	if !b.active {
		p.logger.Warn("double release ignored", zap.Uint64("generation", b.generation))
		return false
	}

	inst.OnRelease()
	b.active = false
	p.removeActive(b.index)
	p.free = append(p.free, inst)
	return true
}

// удаление обменом с последним, индекс перенесённого обновляется
func (p *Pool[T]) removeActive(i int) {
	var zero T
	last := len(p.active) - 1
	if i != last {
		moved := p.active[last]
		p.active[i] = moved
		moved.poolBase().index = i
	}
	p.active[last] = zero
	p.active = p.active[:last]
}

// ReleaseAll принудительно возвращает все активные экземпляры и сообщает их число.
func (p *Pool[T]) ReleaseAll() int {
	n := 0
	for _, inst := range p.Snapshot(nil) {
		if p.Release(inst) {
			n++
		}
	}
	return n
}

// Snapshot дописывает активные экземпляры в dst. Вызывающий обходит копию,
// поэтому может возвращать экземпляры прямо во время обхода.
func (p *Pool[T]) Snapshot(dst []T) []T {
	return append(dst, p.active...)
}

func (p *Pool[T]) FreeCount() int { return len(p.free) }

func (p *Pool[T]) ActiveCount() int { return len(p.active) }

func (p *Pool[T]) TotalCreated() int { return p.created }

// Stats это снимок пула для отладочного лога.
type Stats struct {
	Name    string
	Free    int
	Active  int
	Created int
}

func (p *Pool[T]) Stats() Stats {
	return Stats{Name: p.name, Free: len(p.free), Active: len(p.active), Created: p.created}
}

// Field превращает статистику в структурированное поле лога.
func (s Stats) Field() zap.Field {
	return zap.Dict(s.Name, zap.Int("free", s.Free), zap.Int("active", s.Active), zap.Int("created", s.Created))
}
