package trigger

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testThreshold = 60 * time.Millisecond
	testTick      = 5 * time.Millisecond
)

type eventLog struct {
	mu     sync.Mutex
	events []Event
}

func (l *eventLog) add(e Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func (l *eventLog) kinds() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, e := range l.events {
		if e.Kind != EventProgress {
			out = append(out, e.Kind)
		}
	}
	return out
}

func TestHoldTrigger_ReleaseBeforeThresholdDoesNotSubmit(t *testing.T) {
	// Подготовка
	var submits int32
	log := &eventLog{}
	h := NewHoldTrigger(testThreshold, testTick, func() { atomic.AddInt32(&submits, 1) }, log.add)

	// Действие
	require.True(t, h.PressStart())
	time.Sleep(testThreshold / 2)
	require.True(t, h.PressEnd())
	time.Sleep(2 * testThreshold)

	// Проверки
	assert.Equal(t, int32(0), atomic.LoadInt32(&submits))
	assert.Equal(t, 0.0, h.Progress())
	assert.Equal(t, []string{EventCancelled}, log.kinds())
}

func TestHoldTrigger_HoldPastThresholdSubmitsOnce(t *testing.T) {
	var submits int32
	release := make(chan struct{})
	h := NewHoldTrigger(testThreshold, testTick, func() {
		atomic.AddInt32(&submits, 1)
		<-release
	}, nil)

	require.True(t, h.PressStart())
	require.Eventually(t, h.Triggering, time.Second, testTick)

	// Повторное нажатие во время отправки игнорируется
	assert.False(t, h.PressStart())
	time.Sleep(2 * testThreshold)
	assert.Equal(t, int32(1), atomic.LoadInt32(&submits))

	close(release)
	h.Wait()

	assert.False(t, h.Triggering())
	assert.Equal(t, int32(1), atomic.LoadInt32(&submits))
}

func TestHoldTrigger_PressAgainAfterSettle(t *testing.T) {
	var submits int32
	h := NewHoldTrigger(testThreshold, testTick, func() { atomic.AddInt32(&submits, 1) }, nil)

	require.True(t, h.PressStart())
	require.Eventually(t, func() bool { return atomic.LoadInt32(&submits) == 1 }, time.Second, testTick)
	h.Wait()
	require.Eventually(t, func() bool { return !h.Triggering() }, time.Second, testTick)

	require.True(t, h.PressStart())
	require.Eventually(t, func() bool { return atomic.LoadInt32(&submits) == 2 }, time.Second, testTick)
	h.Wait()
}

func TestHoldTrigger_ProgressGrows(t *testing.T) {
	log := &eventLog{}
	h := NewHoldTrigger(testThreshold*4, testTick, func() {}, log.add)

	require.True(t, h.PressStart())
	require.Eventually(t, func() bool { return h.Progress() > 0.2 }, time.Second, testTick)
	p := h.Progress()
	assert.Less(t, p, 1.0)

	h.PressEnd()
	assert.Equal(t, 0.0, h.Progress())
}

func TestHoldTrigger_DoublePressStartIgnored(t *testing.T) {
	h := NewHoldTrigger(testThreshold, testTick, func() {}, nil)
	defer h.Close()

	assert.True(t, h.PressStart())
	assert.False(t, h.PressStart())
	assert.True(t, h.PressEnd())
	assert.False(t, h.PressEnd())
}

func TestHoldTrigger_CloseCancelsPendingHold(t *testing.T) {
	var submits int32
	h := NewHoldTrigger(testThreshold, testTick, func() { atomic.AddInt32(&submits, 1) }, nil)

	require.True(t, h.PressStart())
	h.Close()
	time.Sleep(2 * testThreshold)

	assert.Equal(t, int32(0), atomic.LoadInt32(&submits))
	assert.False(t, h.PressStart())
}
