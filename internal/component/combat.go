package component

// Health — компонент здоровья
type Health struct {
	Value int
	Max   int
}

// Reset восстанавливает здоровье до нового максимума.
func (h *Health) Reset(max int) {
	if max < 1 {
		max = 1
	}
	h.Max = max
	h.Value = max
}

// Damage наносит урон и сообщает, опустилось ли здоровье до нуля.
func (h *Health) Damage(amount int) bool {
	if amount <= 0 || h.Value <= 0 {
		return false
	}
	h.Value -= amount
	if h.Value < 0 {
		h.Value = 0
	}
	return h.Value == 0
}

// Cooldown — таймер обратного отсчёта, например до следующего выстрела
type Cooldown struct {
	Remaining float64
}

// Tick уменьшает таймер и сообщает, истёк ли он на этом тике.
func (c *Cooldown) Tick(dt float64) bool {
	if c.Remaining <= 0 {
		return false
	}
	c.Remaining -= dt
	return c.Remaining <= 0
}
