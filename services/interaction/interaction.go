// Package interaction makes boolean-toggle actions (likes, follows) feel
// instantaneous: the local state flips before the network call settles, the
// backend's authoritative reply reconciles it, and a failed call reverts it.
package interaction

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// State is the local view of a likeable or followable target: the flag plus
// its counter (likedByCurrentUser/likeCount, isFollowing/followersCount).
type State struct {
	Active bool `json:"active"`
	Count  int  `json:"count"`
}

// RemoteToggle performs the backend call for one toggle. desired is the flag
// value the user wants. A non-nil State is authoritative and overwrites the
// optimistic value; nil means the backend confirmed without a body and the
// optimistic value stands.
type RemoteToggle func(ctx context.Context, desired bool) (*State, error)

// Options configures an Engine. OnChange fires on every visible state change
// (optimistic apply, reconciliation, revert). OnError fires when a toggle
// fails, after the revert has been applied.
type Options struct {
	OnChange func(id string, s State)
	OnError  func(id string, err error)
	Logger   *zap.Logger
}

// Engine tracks interaction targets by id and serializes toggles per target:
// at most one call in flight per id, with taps during flight coalesced into
// the final desired state (Idle -> Pending -> Idle).
type Engine struct {
	mu       sync.Mutex
	targets  map[string]*target
	onChange func(id string, s State)
	onError  func(id string, err error)
	logger   *zap.Logger
}

type target struct {
	state    State // what the UI currently shows
	baseline State // last server-confirmed state, revert point
	inflight bool
	pending  bool // a tap arrived while a call was in flight
}

// NewEngine creates an Engine.
func NewEngine(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		targets:  make(map[string]*target),
		onChange: opts.OnChange,
		onError:  opts.OnError,
		logger:   logger,
	}
}

// Seed installs the server-reported state for a target, typically after a
// fetch renders it. Seeding an in-flight target is ignored so a stale list
// refresh cannot clobber a pending toggle.
func (e *Engine) Seed(id string, s State) {
	e.mu.Lock()
	defer e.mu.Unlock()
	t, ok := e.targets[id]
	if ok && t.inflight {
		return
	}
	e.targets[id] = &target{state: clamp(s), baseline: clamp(s)}
}

// Get returns the current local state for a target.
func (e *Engine) Get(id string) (State, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	t, ok := e.targets[id]
	if !ok {
		return State{}, false
	}
	return t.state, true
}

// InFlight reports whether a toggle is outstanding for the target.
func (e *Engine) InFlight(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	t, ok := e.targets[id]
	return ok && t.inflight
}

// Toggle flips the target's state immediately and settles it against the
// backend asynchronously. It never blocks on the network. A toggle on a
// target with a call already in flight is coalesced: the local state still
// flips at once, and when the in-flight call settles the engine issues at
// most one follow-up call to converge on the user's final desired state.
func (e *Engine) Toggle(ctx context.Context, id string, remote RemoteToggle) {
	e.mu.Lock()
	t, ok := e.targets[id]
	if !ok {
		t = &target{}
		e.targets[id] = t
	}
	t.state = flip(t.state)
	applied := t.state

	if t.inflight {
		t.pending = true
		e.mu.Unlock()
		e.notifyChange(id, applied)
		return
	}

	t.inflight = true
	t.baseline = clamp(t.baseline)
	desired := t.state.Active
	e.mu.Unlock()

	e.notifyChange(id, applied)
	go e.settle(ctx, id, remote, desired)
}

func (e *Engine) settle(ctx context.Context, id string, remote RemoteToggle, desired bool) {
	result, err := remote(ctx, desired)

	e.mu.Lock()
	t := e.targets[id]

	if err != nil {
		// Revert to the last server-confirmed state; coalesced taps are
		// discarded along with the failed toggle.
		t.state = t.baseline
		t.pending = false
		t.inflight = false
		reverted := t.state
		e.mu.Unlock()

		e.logger.Warn("toggle failed, reverted", zap.String("target", id), zap.Error(err))
		e.notifyChange(id, reverted)
		if e.onError != nil {
			e.onError(id, err)
		}
		return
	}

	confirmed := e.confirmedState(t, result, desired)
	t.baseline = confirmed

	if t.pending && t.state.Active != confirmed.Active {
		// The user tapped again mid-flight and now wants the opposite of
		// what the server has. Recompute the optimistic view off the
		// authoritative state and converge with one follow-up call.
		t.pending = false
		t.state = flip(confirmed)
		next := t.state
		e.mu.Unlock()

		e.notifyChange(id, next)
		go e.settle(ctx, id, remote, next.Active)
		return
	}

	t.pending = false
	t.inflight = false
	t.state = confirmed
	e.mu.Unlock()

	e.notifyChange(id, confirmed)
}

// confirmedState resolves what the server state is after a successful call.
func (e *Engine) confirmedState(t *target, result *State, desired bool) State {
	if result != nil {
		return clamp(*result)
	}
	// No authoritative body: the optimistic projection of the previous
	// baseline stands.
	if desired != t.baseline.Active {
		return flip(t.baseline)
	}
	return t.baseline
}

func (e *Engine) notifyChange(id string, s State) {
	if e.onChange != nil {
		e.onChange(id, s)
	}
}

func flip(s State) State {
	if s.Active {
		return clamp(State{Active: false, Count: s.Count - 1})
	}
	return State{Active: true, Count: s.Count + 1}
}

func clamp(s State) State {
	if s.Count < 0 {
		s.Count = 0
	}
	return s
}
