package typewriter

import (
	"context"
	"fmt"
	"sync"
)

type options struct {
	cfg   Config
	clock Clock
	mode  Mode
}

// Option customizes Start.
type Option func(*options)

// WithConfig overrides the default timings.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithMode selects Loop (default) or OneShot.
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// Handle controls a running animation.
type Handle struct {
	onUpdate func(string)
	clock    Clock

	mu        sync.Mutex
	machine   *Machine
	timer     Timer
	cancelled bool

	done     chan struct{}
	doneOnce sync.Once
}

// Start begins animating phrases and reports every text change to onUpdate.
// The first tick fires after the delay of the initial state. Only one tick
// is pending at any time; onUpdate runs on the clock's callback goroutine
// and may call Cancel.
func Start(phrases []string, onUpdate func(text string), opts ...Option) (*Handle, error) {
	o := options{cfg: DefaultConfig(), clock: SystemClock, mode: Loop}
	for _, opt := range opts {
		opt(&o)
	}
	if onUpdate == nil {
		return nil, fmt.Errorf("%w: nil update callback", ErrInvalidInput)
	}

	m, err := NewMachine(phrases, o.cfg, o.mode)
	if err != nil {
		return nil, err
	}

	h := &Handle{
		onUpdate: onUpdate,
		clock:    o.clock,
		machine:  m,
		done:     make(chan struct{}),
	}

	h.mu.Lock()
	h.schedule()
	h.mu.Unlock()

	return h, nil
}

// schedule arms the next tick. Callers hold h.mu.
func (h *Handle) schedule() {
	h.timer = h.clock.AfterFunc(h.machine.Delay(), h.tick)
}

func (h *Handle) tick() {
	h.mu.Lock()
	if h.cancelled {
		h.mu.Unlock()
		return
	}
	h.timer = nil
	text, changed := h.machine.Step()
	h.mu.Unlock()

	if changed {
		h.onUpdate(text)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancelled {
		return
	}
	if h.machine.State() == Done {
		h.cancelled = true
		h.finish()
		return
	}
	h.schedule()
}

func (h *Handle) finish() {
	h.doneOnce.Do(func() { close(h.done) })
}

// Cancel stops the animation. No pending tick fires after Cancel returns.
// Cancel does not wait for an update already being delivered: if a tick has
// stepped and is inside onUpdate, that one update still completes, and no
// further update follows it. Calling Cancel more than once, or after a
// one-shot animation finished, does nothing.
func (h *Handle) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancelled {
		return
	}
	h.cancelled = true
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
	h.finish()
}

// Done is closed once the animation is cancelled or a one-shot animation
// reaches its terminal state.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// State returns a snapshot of the animator state.
func (h *Handle) State() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.machine.Snapshot()
}

// Stream runs an animation whose frames are delivered on the returned
// channel. The animation is cancelled when ctx ends; the channel is never
// closed, so readers select on Handle.Done and their own context. Frames
// are sent unbuffered, so every frame is received before Done closes.
func Stream(ctx context.Context, phrases []string, opts ...Option) (<-chan string, *Handle, error) {
	frames := make(chan string)
	h, err := Start(phrases, func(text string) {
		select {
		case frames <- text:
		case <-ctx.Done():
		}
	}, opts...)
	if err != nil {
		return nil, nil, err
	}

	go func() {
		select {
		case <-ctx.Done():
			h.Cancel()
		case <-h.Done():
		}
	}()

	return frames, h, nil
}
