package mocks

import (
	"context"
	"organise/infras/otel"
	"sync"
)

// Recorder is an otel.Otel that keeps every scope it opens in memory.
type Recorder struct {
	mu     sync.Mutex
	scopes []*Scope
}

// NewOtel returns a Recorder. Tests that do not inspect spans use it as a no-op.
func NewOtel() otel.Otel {
	return NewRecorder()
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, otel.Scope) {
	scope := &Scope{
		ScopeName:  scopeName,
		SpanName:   spanName,
		Attributes: map[string]any{},
	}

	r.mu.Lock()
	r.scopes = append(r.scopes, scope)
	r.mu.Unlock()

	return ctx, scope
}

func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Scopes returns the scopes opened so far, oldest first.
func (r *Recorder) Scopes() []*Scope {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*Scope(nil), r.scopes...)
}

// Find returns the first scope with spanName, or nil.
func (r *Recorder) Find(spanName string) *Scope {
	for _, scope := range r.Scopes() {
		if scope.SpanName == spanName {
			return scope
		}
	}

	return nil
}
