package mocks

import "sync"

// Scope records what a span would have carried.
type Scope struct {
	ScopeName  string
	SpanName   string
	Attributes map[string]any
	Events     []string
	Errors     []error
	Ended      bool

	mu sync.Mutex
}

func (s *Scope) End() {
	s.mu.Lock()
	s.Ended = true
	s.mu.Unlock()
}

func (s *Scope) TraceError(err error) {
	s.mu.Lock()
	s.Errors = append(s.Errors, err)
	s.mu.Unlock()
}

func (s *Scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *Scope) AddEvent(name string) {
	s.mu.Lock()
	s.Events = append(s.Events, name)
	s.mu.Unlock()
}

func (s *Scope) SetAttribute(key string, value any) {
	s.mu.Lock()
	s.Attributes[key] = value
	s.mu.Unlock()
}

func (s *Scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}
