package server

import "sync/atomic"

type State int32

const (
	StateReady State = iota + 1
	StateInGracePeriod
	StateInCleanupPeriod
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateInGracePeriod:
		return "grace_period"
	case StateInCleanupPeriod:
		return "cleanup_period"
	default:
		return "starting"
	}
}

// Tracker holds the lifecycle state of the HTTP server. Reads and writes are safe across goroutines.
type Tracker struct {
	state atomic.Int32
}

func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) Set(state State) {
	t.state.Store(int32(state))
}

func (t *Tracker) Get() State {
	return State(t.state.Load())
}

// Accepting reports whether new requests should be served.
func (t *Tracker) Accepting() bool {
	return t.Get() == StateReady
}
