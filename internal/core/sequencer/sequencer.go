// Package sequencer plays an ordered list of sample timestamps against a
// render target, one frame per timestamp at a fixed cadence, with
// cooperative cancellation checked at frame boundaries.
package sequencer

import (
	"context"
	"errors"
	"sync"
	"time"

	"tempodash/internal/core/model"
)

// ErrNoSamples indicates an empty timestamp list; no run starts.
var ErrNoSamples = errors.New("no sample timestamps")

// ErrUnresolvedTarget indicates a missing render target or an empty
// variable binding; no run starts.
var ErrUnresolvedTarget = errors.New("unresolvable animation target")

// Target accepts a time window for a variable binding. Acceptance is
// synchronous; the rendering effect may complete later.
type Target interface {
	ApplyTimeWindow(binding model.Binding, windowStart, windowEnd time.Time)
}

// Frame is one discrete time-window step of a run.
type Frame struct {
	WindowStart time.Time
	WindowEnd   time.Time
}

// Config contains sequencer timing values.
type Config struct {
	// FrameDelay is the cadence between successive frames.
	FrameDelay time.Duration
	// HalfWidth is applied on both sides of a sample timestamp to build
	// its frame window.
	HalfWidth time.Duration
}

// DefaultConfig returns the production cadence and window half-width.
func DefaultConfig() Config {
	return Config{
		FrameDelay: 200 * time.Millisecond,
		HalfWidth:  time.Minute,
	}
}

// Sequencer drives a render target through animation runs. At most one
// run is active at a time; starting a new one cancels the old run and
// waits for it to observe the cancellation first.
type Sequencer struct {
	mu     sync.Mutex
	config Config
	target Target
	cancel context.CancelFunc
	done   chan struct{}
	state  State
	events []chan Event
}

// New creates a sequencer for the given render target.
func New(target Target, config Config) *Sequencer {
	if config.FrameDelay <= 0 {
		config.FrameDelay = DefaultConfig().FrameDelay
	}
	if config.HalfWidth <= 0 {
		config.HalfWidth = DefaultConfig().HalfWidth
	}
	return &Sequencer{
		config: config,
		target: target,
		state:  StateIdle,
	}
}

// Subscribe registers a new observer channel.
func (sequencer *Sequencer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	sequencer.mu.Lock()
	sequencer.events = append(sequencer.events, ch)
	sequencer.mu.Unlock()
	return ch
}

// Close cancels any active run and closes all observer channels.
func (sequencer *Sequencer) Close() {
	sequencer.mu.Lock()
	if sequencer.cancel != nil {
		sequencer.cancel()
	}
	done := sequencer.done
	events := sequencer.events
	sequencer.events = nil
	sequencer.mu.Unlock()

	if done != nil {
		<-done
	}
	for _, ch := range events {
		close(ch)
	}
}

// State returns the current run state.
func (sequencer *Sequencer) State() State {
	sequencer.mu.Lock()
	defer sequencer.mu.Unlock()
	return sequencer.state
}

// Running reports whether a run is active.
func (sequencer *Sequencer) Running() bool {
	return sequencer.State() == StateRunning
}

// Start validates the preconditions and launches a run over the given
// timestamps. An active run is cancelled and drained before the new one
// begins, so two runs never race writes to the same target.
func (sequencer *Sequencer) Start(ctx context.Context, binding model.Binding, timestamps []time.Time) error {
	if sequencer.target == nil || binding.IsZero() {
		return ErrUnresolvedTarget
	}
	if len(timestamps) == 0 {
		return ErrNoSamples
	}

	sequencer.mu.Lock()
	for sequencer.cancel != nil {
		sequencer.cancel()
		done := sequencer.done
		sequencer.mu.Unlock()
		<-done
		sequencer.mu.Lock()
	}

	frames := sequencer.buildFramesLocked(timestamps)
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	sequencer.cancel = cancel
	sequencer.done = done
	sequencer.state = StateRunning
	sequencer.emitLocked(Event{Type: EventStateChange, State: StateRunning, FrameCount: len(frames)})
	sequencer.mu.Unlock()

	go sequencer.run(runCtx, cancel, done, binding, frames)
	return nil
}

// Stop requests cancellation of the active run. The run observes the
// flag at its next frame boundary; a request mid-delay takes effect one
// inter-frame delay later at most.
func (sequencer *Sequencer) Stop() {
	sequencer.mu.Lock()
	if sequencer.cancel != nil {
		sequencer.cancel()
	}
	sequencer.mu.Unlock()
}

// buildFramesLocked derives one frame per timestamp, in input order, each
// spanning the timestamp plus/minus the configured half-width. Equal or
// overlapping windows are kept as-is.
func (sequencer *Sequencer) buildFramesLocked(timestamps []time.Time) []Frame {
	frames := make([]Frame, 0, len(timestamps))
	for _, timestamp := range timestamps {
		frames = append(frames, Frame{
			WindowStart: timestamp.Add(-sequencer.config.HalfWidth),
			WindowEnd:   timestamp.Add(sequencer.config.HalfWidth),
		})
	}
	return frames
}

func (sequencer *Sequencer) run(ctx context.Context, cancel context.CancelFunc, done chan struct{}, binding model.Binding, frames []Frame) {
	defer close(done)
	defer cancel()

	for index, frame := range frames {
		if ctx.Err() != nil {
			sequencer.finish(done, StateCancelled)
			return
		}

		sequencer.target.ApplyTimeWindow(binding, frame.WindowStart, frame.WindowEnd)
		sequencer.emit(Event{
			Type:       EventFrameApplied,
			State:      StateRunning,
			Frame:      frame,
			FrameIndex: index,
			FrameCount: len(frames),
		})

		if !sleepWithContext(ctx, sequencer.config.FrameDelay) {
			sequencer.finish(done, StateCancelled)
			return
		}
	}
	sequencer.finish(done, StateCompleted)
}

// finish records the terminal state, unless a newer run has already been
// installed.
func (sequencer *Sequencer) finish(done chan struct{}, state State) {
	sequencer.mu.Lock()
	if sequencer.done == done {
		sequencer.cancel = nil
		sequencer.done = nil
		sequencer.state = state
		sequencer.emitLocked(Event{Type: EventStateChange, State: state})
	}
	sequencer.mu.Unlock()
}

func (sequencer *Sequencer) emit(event Event) {
	sequencer.mu.Lock()
	sequencer.emitLocked(event)
	sequencer.mu.Unlock()
}

func (sequencer *Sequencer) emitLocked(event Event) {
	event.At = time.Now()
	events := append([]chan Event(nil), sequencer.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
