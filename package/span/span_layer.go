package span

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.scnd.dev/open/forge"
)

type Layer struct {
	Forge  forge.Forge `json:"-"`
	Name   string      `json:"name,omitempty"`
	Type   string      `json:"type,omitempty"`
	Caller *Caller     `json:"caller,omitempty"`
}

func NewLayer(forge forge.Forge, name string, typ string) *Layer {
	caller := NewCaller()

	return &Layer{
		Forge:  forge,
		Name:   name,
		Type:   typ,
		Caller: caller,
	}
}

func (r *Layer) With(ctx context.Context) (forge.Span, context.Context) {
	parent, ok := ctx.Value(ContextKeySpan).(*Span)
	caller := NewCaller()
	name := caller.String()
	now := time.Now()

	var layer *Layer
	if r.Name != "" {
		layer = r
	}

	// * resolve instance from layer or context
	f := r.Forge
	if f == nil {
		f = FromContext(ctx)
	}

	// * start tracing span
	tracingSpan := trace.SpanFromContext(context.Background())
	if f != nil && f.Tracer() != nil {
		ctx, tracingSpan = f.Tracer().Start(ctx, name)
		tracingSpan.SetAttributes(attribute.String("span.layer", fmt.Sprintf("%s/%s", r.Type, r.Name)))
	}

	s := &Span{
		Name:      &name,
		Path:      []*string{},
		Layer:     layer,
		Caller:    caller,
		Variables: make(map[string]any),
		Started:   &now,
		Ended:     nil,
		Children:  []*Span{},
		TraceSpan: tracingSpan,
	}

	if ok {
		s.Path = append(append([]*string{}, parent.Path...), parent.Name)
		parent.mutex.Lock()
		parent.Children = append(parent.Children, s)
		parent.mutex.Unlock()
	}

	return &Wrapper{Span: s}, context.WithValue(ctx, ContextKeySpan, s)
}
