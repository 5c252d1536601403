package speech

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/text/language"
)

// MaxPending bounds the requests held while the engine is not ready.
const MaxPending = 32

type mode int

const (
	flush mode = iota
	appendMode
)

type utterance struct {
	text   string
	locale language.Tag
}

// Queue serializes speech through an Engine. Speak never blocks.
//
// Before the engine is ready, requests are held in issue order. When it
// becomes ready the first held request interrupts whatever is playing and
// the rest are appended behind it. After that every request interrupts.
type Queue struct {
	engine Engine

	mu      sync.Mutex
	ready   bool
	closed  bool
	pending []utterance
	work    []utterance
	cancel  context.CancelFunc

	wake chan struct{}
	done chan struct{}
}

// NewQueue creates a Queue. Call Start to bring the engine up.
func NewQueue(engine Engine) *Queue {
	return &Queue{
		engine: engine,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Start initializes the engine in the background. If Init fails the queue
// stays not ready; held requests are dropped at Close.
func (q *Queue) Start(ctx context.Context) {
	go func() {
		if err := q.engine.Init(ctx); err != nil {
			slog.Warn("speech engine unavailable", "error", err)
			return
		}
		q.markReady()
	}()
}

// Ready reports whether the engine has started.
func (q *Queue) Ready() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ready
}

// Pending is the number of requests held for a not-ready engine.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Speak requests text in locale.
func (q *Queue) Speak(_ context.Context, text string, locale language.Tag) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	u := utterance{text: text, locale: locale}
	if !q.ready {
		if len(q.pending) >= MaxPending {
			slog.Debug("speech queue full, dropping", "text", text)
			return
		}
		q.pending = append(q.pending, u)
		return
	}
	q.enqueueLocked(u, flush)
}

func (q *Queue) markReady() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed || q.ready {
		return
	}
	q.ready = true
	for i, u := range q.pending {
		m := appendMode
		if i == 0 {
			m = flush
		}
		q.enqueueLocked(u, m)
	}
	q.pending = nil
	go q.run()
}

func (q *Queue) enqueueLocked(u utterance, m mode) {
	if m == flush {
		if q.cancel != nil {
			q.cancel()
		}
		q.work = q.work[:0]
	}
	q.work = append(q.work, u)
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *Queue) run() {
	for {
		q.mu.Lock()
		for len(q.work) == 0 && !q.closed {
			q.mu.Unlock()
			select {
			case <-q.wake:
			case <-q.done:
				return
			}
			q.mu.Lock()
		}
		if q.closed {
			q.mu.Unlock()
			return
		}
		u := q.work[0]
		q.work = q.work[1:]
		ctx, cancel := context.WithCancel(context.Background())
		q.cancel = cancel
		q.mu.Unlock()

		err := q.engine.Say(ctx, u.text, u.locale)
		if err != nil && ctx.Err() == nil {
			slog.Warn("speak", "text", u.text, "error", err)
		}
		cancel()
	}
}

// Close stops playback, drops anything not yet spoken and shuts the engine
// down.
func (q *Queue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	if n := len(q.pending); n > 0 {
		slog.Debug("dropping queued speech", "count", n)
	}
	q.pending = nil
	q.work = nil
	if q.cancel != nil {
		q.cancel()
	}
	close(q.done)
	q.mu.Unlock()

	return q.engine.Close()
}
