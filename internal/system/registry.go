// internal/system/registry.go
package system

import "go-shmup/internal/actor"

// Handle ссылается на одну жизнь врага из пула. Он устаревает, как только
// врага вернули, даже если тот же экземпляр выдан снова.
type Handle struct {
	enemy      *actor.Enemy
	generation uint64
}

func HandleOf(e *actor.Enemy) Handle {
	return Handle{enemy: e, generation: e.Generation()}
}

// Alive сообщает, продолжается ли эта жизнь.
func (h Handle) Alive() bool {
	return h.enemy != nil && h.enemy.Active() && h.enemy.Generation() == h.generation
}

// Enemy возвращает экземпляр или nil, если дескриптор устарел.
func (h Handle) Enemy() *actor.Enemy {
	if !h.Alive() {
		return nil
	}
	return h.enemy
}

// Registry отслеживает живых врагов текущей волны.
type Registry struct {
	handles []Handle
}

func (r *Registry) Add(e *actor.Enemy) {
	r.handles = append(r.handles, HandleOf(e))
}

// Prune выбрасывает устаревшие дескрипторы и сообщает, сколько удалено.
func (r *Registry) Prune() int {
	kept := r.handles[:0]
	for _, h := range r.handles {
		if h.Alive() {
			kept = append(kept, h)
		}
	}
	removed := len(r.handles) - len(kept)
	for i := len(kept); i < len(r.handles); i++ {
		r.handles[i] = Handle{}
	}
	r.handles = kept
	return removed
}

func (r *Registry) Len() int { return len(r.handles) }

func (r *Registry) Clear() {
	clear(r.handles)
	r.handles = r.handles[:0]
}

// Each вызывает fn для каждого живого врага. fn может вернуть врага в пул.
func (r *Registry) Each(fn func(e *actor.Enemy)) {
	for _, h := range r.handles {
		if e := h.Enemy(); e != nil {
			fn(e)
		}
	}
}
