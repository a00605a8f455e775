package trigger

import (
	"sync"
	"time"
)

// Виды событий жеста удержания
const (
	EventProgress   = "progress"
	EventCancelled  = "cancelled"
	EventTriggering = "triggering"
	EventSettled    = "settled"
)

// Event - изменение состояния кнопки для отрисовки кольца прогресса
type Event struct {
	Kind     string  `json:"type"`
	Progress float64 `json:"progress"`
}

// HoldTrigger распознает удержание кнопки дольше порога.
// Таймер прогресса и таймер срабатывания независимы, отпускание отменяет оба.
type HoldTrigger struct {
	threshold time.Duration
	tick      time.Duration
	submit    func()
	listener  func(Event)

	mu         sync.Mutex
	gen        uint64
	pressed    bool
	triggering bool
	progress   float64
	timer      *time.Timer
	stopTicks  chan struct{}
	closed     bool
	inflight   sync.WaitGroup
}

// NewHoldTrigger создает детектор. submit вызывается ровно один раз на каждое завершенное удержание,
// listener (может быть nil) получает события прогресса.
func NewHoldTrigger(threshold, tick time.Duration, submit func(), listener func(Event)) *HoldTrigger {
	if listener == nil {
		listener = func(Event) {}
	}
	return &HoldTrigger{
		threshold: threshold,
		tick:      tick,
		submit:    submit,
		listener:  listener,
	}
}

// PressStart начинает удержание. Игнорируется, пока предыдущая отправка не завершилась.
func (h *HoldTrigger) PressStart() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed || h.triggering || h.pressed {
		return false
	}
	h.gen++
	gen := h.gen
	h.pressed = true
	h.progress = 0
	h.stopTicks = make(chan struct{})
	h.timer = time.AfterFunc(h.threshold, func() { h.complete(gen) })
	go h.runTicks(gen, time.Now(), h.stopTicks)
	return true
}

// PressEnd отпускает кнопку. До срабатывания сбрасывает прогресс в 0, ничего не отправляя.
func (h *HoldTrigger) PressEnd() bool {
	h.mu.Lock()
	if !h.pressed {
		h.mu.Unlock()
		return false
	}
	h.cancelLocked()
	h.mu.Unlock()
	h.listener(Event{Kind: EventCancelled})
	return true
}

// Progress - текущая доля удержания от 0 до 1
func (h *HoldTrigger) Progress() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.progress
}

// Triggering - идет ли отправка сигнала
func (h *HoldTrigger) Triggering() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.triggering
}

// Close останавливает таймеры. Уже начатая отправка доводится до конца.
func (h *HoldTrigger) Close() {
	h.mu.Lock()
	h.closed = true
	if h.pressed {
		h.cancelLocked()
	}
	h.mu.Unlock()
}

// Wait дожидается завершения отправки, если она идет
func (h *HoldTrigger) Wait() {
	h.inflight.Wait()
}

func (h *HoldTrigger) cancelLocked() {
	h.gen++
	h.pressed = false
	h.progress = 0
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
	if h.stopTicks != nil {
		close(h.stopTicks)
		h.stopTicks = nil
	}
}

func (h *HoldTrigger) runTicks(gen uint64, started time.Time, stop <-chan struct{}) {
	ticker := time.NewTicker(h.tick)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			h.mu.Lock()
			if h.gen != gen || !h.pressed {
				h.mu.Unlock()
				return
			}
			p := float64(time.Since(started)) / float64(h.threshold)
			if p > 1 {
				p = 1
			}
			h.progress = p
			h.mu.Unlock()
			h.listener(Event{Kind: EventProgress, Progress: p})
		}
	}
}

func (h *HoldTrigger) complete(gen uint64) {
	h.mu.Lock()
	// Таймер мог сработать одновременно с отпусканием
	if h.gen != gen || !h.pressed {
		h.mu.Unlock()
		return
	}
	h.pressed = false
	h.triggering = true
	h.progress = 1
	h.timer = nil
	if h.stopTicks != nil {
		close(h.stopTicks)
		h.stopTicks = nil
	}
	h.inflight.Add(1)
	h.mu.Unlock()

	h.listener(Event{Kind: EventTriggering, Progress: 1})

	go func() {
		defer h.inflight.Done()
		h.submit()

		h.mu.Lock()
		h.triggering = false
		h.progress = 0
		h.mu.Unlock()
		h.listener(Event{Kind: EventSettled})
	}()
}
