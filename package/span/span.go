package span

import (
	"sync"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Span struct {
	Name      *string        `json:"name,omitempty"`
	Path      []*string      `json:"path,omitempty"`
	Layer     *Layer         `json:"layer,omitempty"`
	Caller    *Caller        `json:"caller,omitempty"`
	Variables map[string]any `json:"variables,omitempty"`
	Started   *time.Time     `json:"started,omitempty"`
	Ended     *time.Time     `json:"ended,omitempty"`
	Children  []*Span        `json:"children,omitempty"`
	TraceSpan trace.Span     `json:"-"`
	mutex     sync.Mutex
}

type Wrapper struct {
	Span *Span `json:"span"`
}

func (r *Wrapper) Started() *time.Time {
	return r.Span.Started
}

func (r *Wrapper) Trace() trace.Span {
	return r.Span.TraceSpan
}

func (r *Wrapper) Variable(key string, value any) {
	r.Span.mutex.Lock()
	defer r.Span.mutex.Unlock()
	r.Span.Variables[key] = value
}

func (r *Wrapper) Error(message string, err error) error {
	if err != nil {
		r.Span.TraceSpan.RecordError(err)
	}
	r.Span.TraceSpan.SetStatus(codes.Error, message)
	return NewError(r.Span, message, err)
}

func (r *Wrapper) End() {
	end := time.Now()
	r.Span.Ended = &end
	r.Span.TraceSpan.End()
}
