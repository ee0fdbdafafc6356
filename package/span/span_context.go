package span

import (
	"context"

	"go.scnd.dev/open/forge"
)

type ContextKey struct {
	Name string
}

var (
	ContextKeyForge = ContextKey{
		Name: "forge",
	}
	ContextKeySpan = ContextKey{
		Name: "forge.span",
	}
)

func NewContext(forge forge.Forge, ctx context.Context) context.Context {
	return context.WithValue(ctx, ContextKeyForge, forge)
}

func FromContext(ctx context.Context) forge.Forge {
	f, ok := ctx.Value(ContextKeyForge).(forge.Forge)
	if !ok {
		return nil
	}

	return f
}
