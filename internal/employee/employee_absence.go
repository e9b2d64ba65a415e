package employee

import (
	"context"
	"errors"
	"sync"
	"time"
)

type AbsenceEvent struct {
	Employee   *InternalEmployee
	OccurredAt time.Time
}

type AbsenceHandler func(ctx context.Context, event AbsenceEvent) error

// Subscription identifies a registered AbsenceHandler.
type Subscription uint64

// AbsenceNotifier fans absence events out to its subscribers synchronously,
// in subscription order. Handlers may unsubscribe from inside Notify.
type AbsenceNotifier struct {
	mu       sync.RWMutex
	next     Subscription
	order    []Subscription
	handlers map[Subscription]AbsenceHandler
	now      func() time.Time
}

func NewAbsenceNotifier() *AbsenceNotifier {
	return &AbsenceNotifier{
		handlers: make(map[Subscription]AbsenceHandler),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (n *AbsenceNotifier) Subscribe(h AbsenceHandler) Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.next++
	n.handlers[n.next] = h
	n.order = append(n.order, n.next)
	return n.next
}

// Unsubscribe removes the handler. Unknown subscriptions are ignored.
func (n *AbsenceNotifier) Unsubscribe(s Subscription) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.handlers[s]; !ok {
		return
	}
	delete(n.handlers, s)
	for i, id := range n.order {
		if id == s {
			n.order = append(n.order[:i:i], n.order[i+1:]...)
			break
		}
	}
}

func (n *AbsenceNotifier) Subscribers() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.handlers)
}

// Notify delivers one event for e to every current subscriber and returns
// once all of them have run. A failing handler does not stop delivery to the
// rest; their errors are joined.
func (n *AbsenceNotifier) Notify(ctx context.Context, e *InternalEmployee) error {
	n.mu.RLock()
	handlers := make([]AbsenceHandler, 0, len(n.order))
	for _, id := range n.order {
		handlers = append(handlers, n.handlers[id])
	}
	n.mu.RUnlock()

	event := AbsenceEvent{Employee: e, OccurredAt: n.now()}
	var errs []error
	for _, h := range handlers {
		if err := h(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
