package service

import "sync"

type subscription[T any] struct {
	id int
	fn func(T)
}

// observable fans snapshots out to registered listeners in subscription
// order. Listeners run on the publishing goroutine after all locks of the
// owning service are released.
type observable[T any] struct {
	mu        sync.Mutex
	nextID    int
	listeners []subscription[T]
}

func (o *observable[T]) subscribe(fn func(T)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.nextID++
	id := o.nextID
	o.listeners = append(o.listeners, subscription[T]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { o.unsubscribe(id) })
	}
}

func (o *observable[T]) unsubscribe(id int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i, l := range o.listeners {
		if l.id == id {
			o.listeners = append(o.listeners[:i:i], o.listeners[i+1:]...)
			return
		}
	}
}

func (o *observable[T]) emit(v T) {
	o.mu.Lock()
	listeners := make([]subscription[T], len(o.listeners))
	copy(listeners, o.listeners)
	o.mu.Unlock()

	for _, l := range listeners {
		l.fn(v)
	}
}
