// Package toast keeps the console's single transient notification.
package toast

import (
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/sse"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

const (
	DefaultDismissAfter = 4 * time.Second

	// Topic is the SSE topic toast changes are published on.
	Topic = "toast"

	EventShow    = "toast.show"
	EventDismiss = "toast.dismiss"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Message struct {
	ID      string    `json:"id"`
	Text    string    `json:"message"`
	Kind    Kind      `json:"kind"`
	Visible bool      `json:"visible"`
	ShownAt time.Time `json:"shown_at"`
}

type Notifier interface {
	Show(text string, kind Kind) Message
	Success(text string) Message
	Error(text string) Message
	Dismiss()
	Current() (Message, bool)
}

// Publisher receives every toast change; the SSE hub satisfies it.
type Publisher interface {
	Publish(event sse.Event)
}

type notifierImpl struct {
	mu           sync.Mutex
	clock        clockwork.Clock
	dismissAfter time.Duration
	publisher    Publisher

	current Message
	timer   clockwork.Timer
}

// NewNotifier builds a notifier. A nil clock means the real clock and a nil
// publisher disables event fan-out.
func NewNotifier(clock clockwork.Clock, dismissAfter time.Duration, publisher Publisher) Notifier {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if dismissAfter <= 0 {
		dismissAfter = DefaultDismissAfter
	}
	return &notifierImpl{
		clock:        clock,
		dismissAfter: dismissAfter,
		publisher:    publisher,
	}
}

// Show replaces whatever is visible and arms a fresh auto-dismiss timer.
func (n *notifierImpl) Show(text string, kind Kind) Message {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopTimer()

	msg := Message{
		ID:      uuid.NewString(),
		Text:    text,
		Kind:    kind,
		Visible: true,
		ShownAt: n.clock.Now(),
	}
	n.current = msg

	id := msg.ID
	n.timer = n.clock.AfterFunc(n.dismissAfter, func() {
		n.expire(id)
	})

	metrics.ToastShown(string(kind))
	n.publish(EventShow, msg)
	return msg
}

func (n *notifierImpl) Success(text string) Message {
	return n.Show(text, KindSuccess)
}

func (n *notifierImpl) Error(text string) Message {
	return n.Show(text, KindError)
}

// Dismiss hides the visible toast and cancels its timer.
func (n *notifierImpl) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.current.Visible {
		return
	}
	n.stopTimer()
	n.hide()
}

func (n *notifierImpl) Current() (Message, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current, n.current.Visible
}

// expire runs on the timer goroutine. A timer belonging to a replaced toast is ignored.
func (n *notifierImpl) expire(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.current.Visible || n.current.ID != id {
		return
	}
	n.timer = nil
	n.hide()
}

func (n *notifierImpl) hide() {
	n.current.Visible = false
	n.publish(EventDismiss, n.current)
}

func (n *notifierImpl) stopTimer() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

func (n *notifierImpl) publish(name string, msg Message) {
	if n.publisher == nil {
		return
	}
	n.publisher.Publish(sse.Event{Topic: Topic, Name: name, Data: msg})
}
