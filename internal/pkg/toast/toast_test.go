package toast

import (
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/sse"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []sse.Event
}

func (p *recordingPublisher) Publish(event sse.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, e := range p.events {
		out = append(out, e.Name)
	}
	return out
}

func hidden(n Notifier) func() bool {
	return func() bool {
		_, visible := n.Current()
		return !visible
	}
}

func TestNotifier_AutoDismissAfterFourSeconds(t *testing.T) {
	clock := clockwork.NewFakeClock()
	n := NewNotifier(clock, 0, nil)

	n.Success("Designation created successfully")

	clock.Advance(3999 * time.Millisecond)
	msg, visible := n.Current()
	require.True(t, visible, "toast must stay visible before 4000ms")
	assert.Equal(t, "Designation created successfully", msg.Text)
	assert.Equal(t, KindSuccess, msg.Kind)

	clock.Advance(time.Millisecond)
	require.Eventually(t, hidden(n), time.Second, 5*time.Millisecond)
}

func TestNotifier_ReplaceRestartsTimer(t *testing.T) {
	clock := clockwork.NewFakeClock()
	n := NewNotifier(clock, 4*time.Second, nil)

	first := n.Error("Failed to load employees")
	clock.Advance(3 * time.Second)
	second := n.Success("Employees loaded")

	assert.NotEqual(t, first.ID, second.ID)

	// The first toast's deadline passes; the replacement must survive it.
	clock.Advance(2 * time.Second)
	time.Sleep(20 * time.Millisecond)
	msg, visible := n.Current()
	require.True(t, visible)
	assert.Equal(t, second.ID, msg.ID)

	clock.Advance(2 * time.Second)
	require.Eventually(t, hidden(n), time.Second, 5*time.Millisecond)
}

func TestNotifier_ManualDismissCancelsTimer(t *testing.T) {
	clock := clockwork.NewFakeClock()
	pub := &recordingPublisher{}
	n := NewNotifier(clock, 0, pub)

	n.Success("Saved")
	n.Dismiss()

	_, visible := n.Current()
	assert.False(t, visible)

	clock.Advance(10 * time.Second)
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, []string{EventShow, EventDismiss}, pub.names(), "dismiss fires once")
}

func TestNotifier_DismissWithoutToastIsNoop(t *testing.T) {
	pub := &recordingPublisher{}
	n := NewNotifier(clockwork.NewFakeClock(), 0, pub)

	n.Dismiss()

	assert.Empty(t, pub.names())
}

func TestNotifier_AtMostOneVisible(t *testing.T) {
	n := NewNotifier(clockwork.NewFakeClock(), 0, nil)

	n.Success("one")
	n.Error("two")

	msg, visible := n.Current()
	require.True(t, visible)
	assert.Equal(t, "two", msg.Text)
	assert.Equal(t, KindError, msg.Kind)
}
