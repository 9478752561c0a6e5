// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, см. payloads.go
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — синхронный диспетчер событий. Все вызовы происходят в потоке тика.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe — отписка от события. Подписчик должен быть сравнимым (указатель).
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			next := make([]Listener, 0, len(listeners)-1)
			next = append(next, listeners[:i]...)
			d.listeners[eventType] = append(next, listeners[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам.
// Подписки, изменённые внутри обработчика, вступают в силу со следующего события.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// HasListeners сообщает, подписан ли кто-нибудь на событие.
func (d *Dispatcher) HasListeners(eventType EventType) bool {
	return len(d.listeners[eventType]) > 0
}
