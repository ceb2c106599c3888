package components

import (
	"context"

	"github.com/VilnaCRM-Org/website-sub001/pkg/screen"
)

type screenKey struct{}

// WithScreen stores the viewport category components style themselves for.
func WithScreen(ctx context.Context, c screen.Category) context.Context {
	return context.WithValue(ctx, screenKey{}, c)
}

// ScreenFrom reports the viewport category stored in ctx, or screen.Default.
func ScreenFrom(ctx context.Context) screen.Category {
	if c, ok := ctx.Value(screenKey{}).(screen.Category); ok {
		return c
	}
	return screen.Default
}
