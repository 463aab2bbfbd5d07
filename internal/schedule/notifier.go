package schedule

import "sync"

// Listener receives a message each time a conflict is detected, before the
// failing operation returns its error.
//
// Listeners are compared by interface equality, so implementations must be
// comparable; pointer receivers are the usual choice. A listener must not
// panic.
type Listener interface {
	ConflictDetected(message string)
}

// FuncListener adapts a function to Listener. Each *FuncListener has its own
// identity, so the same pointer can be registered and removed.
type FuncListener struct {
	fn func(message string)
}

// NewListener wraps fn as a Listener.
func NewListener(fn func(message string)) *FuncListener {
	return &FuncListener{fn: fn}
}

// ConflictDetected calls the wrapped function.
func (l *FuncListener) ConflictDetected(message string) {
	l.fn(message)
}

// Notifier fans conflict messages out to listeners in registration order.
type Notifier struct {
	mu        sync.Mutex
	listeners []Listener
}

// NewNotifier returns a Notifier with no listeners.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Register adds l. Registering a listener that is already present is a no-op.
func (n *Notifier) Register(l Listener) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, existing := range n.listeners {
		if existing == l {
			return
		}
	}
	n.listeners = append(n.listeners, l)
}

// Remove drops l. Removing an unknown listener is a no-op.
func (n *Notifier) Remove(l Listener) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, existing := range n.listeners {
		if existing == l {
			n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered listeners.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners)
}

// Notify delivers message to every listener registered at the time of the
// call. Listeners may register or remove others while being notified.
func (n *Notifier) Notify(message string) {
	n.mu.Lock()
	snapshot := make([]Listener, len(n.listeners))
	copy(snapshot, n.listeners)
	n.mu.Unlock()

	for _, l := range snapshot {
		l.ConflictDetected(message)
	}
}
