package ki18n

import (
	"context"
	"sync"

	"github.com/martinlehoux/kotoba/khooks"
	"github.com/martinlehoux/kotoba/ktrans"
)

type i18nContext struct{}

// NewContext returns a context carrying the snapshot for all descendants.
func NewContext(ctx context.Context, value *I18n) context.Context {
	return context.WithValue(ctx, i18nContext{}, value)
}

// FromContext resolves the nearest snapshot, falling back to the shared
// default outside any provider.
func FromContext(ctx context.Context) *I18n {
	if value, ok := ctx.Value(i18nContext{}).(*I18n); ok {
		return value
	}
	return Default()
}

var (
	defaultValue *I18n
	defaultHooks *khooks.Registry
	defaultOnce  sync.Once
)

// Default returns the shared fallback snapshot, built once on first use from
// the default engine and the default hooks registry. It lives for the
// process: filters registered on DefaultHooks after that first build are not
// reflected in it.
func Default() *I18n {
	defaultOnce.Do(buildDefault)
	return defaultValue
}

// DefaultHooks returns the registry backing the default snapshot.
func DefaultHooks() *khooks.Registry {
	defaultOnce.Do(buildDefault)
	return defaultHooks
}

func buildDefault() {
	defaultHooks = khooks.NewRegistry()
	defaultValue = Build(ktrans.Default(), defaultHooks)
}
