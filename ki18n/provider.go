package ki18n

import (
	"sync"

	"github.com/martinlehoux/kotoba/khooks"
	"github.com/martinlehoux/kotoba/ktrans"
)

const providerNamespace = "ki18n/provider"

// Provider owns one hooks registry for its whole lifetime and rebuilds its
// snapshot whenever a hook is added or removed on it, or the engine reports a
// locale data change. A change is observed by the first Current call after
// the triggering event; snapshots already handed out are never touched.
type Provider struct {
	mu          sync.Mutex
	engine      ktrans.Engine
	hooks       *khooks.Registry
	unsubscribe func()
	generation  int
	built       int
	value       *I18n
	closed      bool
}

// NewProvider subscribes to the engine's change notifications and to the
// registry's own add/remove events. A nil engine means ktrans.Default().
// Callers must Close the provider when done with it.
func NewProvider(engine ktrans.Engine) *Provider {
	if engine == nil {
		engine = ktrans.Default()
	}
	provider := &Provider{engine: engine, hooks: khooks.NewRegistry(), built: -1}
	provider.hooks.AddAction(khooks.HookAdded, providerNamespace, func(_ ...any) { provider.invalidate() })
	provider.hooks.AddAction(khooks.HookRemoved, providerNamespace, func(_ ...any) { provider.invalidate() })
	provider.unsubscribe = engine.Subscribe(provider.invalidate)
	return provider
}

func (p *Provider) invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.generation++
}

// Current returns the snapshot for the latest generation, rebuilding it only
// when the generation moved since the last build.
func (p *Provider) Current() *I18n {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.value == nil || p.built != p.generation {
		p.value = Build(p.engine, p.hooks)
		p.built = p.generation
	}
	return p.value
}

// SetEngine swaps the engine and moves the change subscription with it. The
// hooks registry is never replaced. Passing the current engine is a no-op.
func (p *Provider) SetEngine(engine ktrans.Engine) {
	if engine == nil {
		engine = ktrans.Default()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || engine == p.engine {
		return
	}
	p.unsubscribe()
	p.engine = engine
	p.unsubscribe = engine.Subscribe(p.invalidate)
	p.generation++
}

// Close removes the provider's two hook listeners and drops the engine
// subscription. Safe to call more than once.
func (p *Provider) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	unsubscribe := p.unsubscribe
	p.mu.Unlock()
	p.hooks.RemoveAction(khooks.HookAdded, providerNamespace)
	p.hooks.RemoveAction(khooks.HookRemoved, providerNamespace)
	unsubscribe()
}

// Hooks exposes the provider's registry for filter registration.
func (p *Provider) Hooks() *khooks.Registry {
	return p.hooks
}

func (p *Provider) Engine() ktrans.Engine {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.engine
}

// Generation counts invalidation events, and keys snapshot memoization.
func (p *Provider) Generation() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.generation
}
