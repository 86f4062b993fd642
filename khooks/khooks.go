// Package khooks provides named, namespaced lists of callbacks: actions are
// side-effecting notifications, filters thread a value through every handler
// registered under a hook name, in registration order.
package khooks

import (
	"sync"

	"github.com/martinlehoux/kotoba/kcore"
	"github.com/samber/lo"
)

// ActionFunc is a notification handler. Return values are discarded.
type ActionFunc func(args ...any)

// FilterFunc receives the current value and returns the transformed one.
type FilterFunc func(value any, args ...any) any

// Actions fired by the registry itself whenever a handler is added or
// removed, with (hookName, namespace) as arguments.
const (
	HookAdded   = "khooks.hook_added"
	HookRemoved = "khooks.hook_removed"
)

type hook[F any] struct {
	namespace string
	fn        F
}

// Registry holds independent action and filter lists. The zero value is not
// usable, use NewRegistry. Handlers are invoked outside the registry lock, so
// they may themselves add or remove hooks.
type Registry struct {
	mu      sync.Mutex
	actions map[string][]hook[ActionFunc]
	filters map[string][]hook[FilterFunc]
}

func NewRegistry() *Registry {
	return &Registry{
		actions: map[string][]hook[ActionFunc]{},
		filters: map[string][]hook[FilterFunc]{},
	}
}

func (r *Registry) AddAction(name string, namespace string, fn ActionFunc) {
	kcore.Assert(name != "", "hook name must not be empty")
	kcore.Assert(namespace != "", "hook namespace must not be empty")
	kcore.Assert(fn != nil, "hook handler must not be nil")
	r.mu.Lock()
	r.actions[name] = append(r.actions[name], hook[ActionFunc]{namespace, fn})
	r.mu.Unlock()
	r.DoAction(HookAdded, name, namespace)
}

func (r *Registry) RemoveAction(name string, namespace string) {
	r.mu.Lock()
	before := len(r.actions[name])
	r.actions[name] = lo.Reject(r.actions[name], func(h hook[ActionFunc], _ int) bool { return h.namespace == namespace })
	removed := before - len(r.actions[name])
	r.mu.Unlock()
	if removed > 0 {
		r.DoAction(HookRemoved, name, namespace)
	}
}

func (r *Registry) HasAction(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.actions[name]) > 0
}

// DoAction invokes every handler registered for name, in registration order.
func (r *Registry) DoAction(name string, args ...any) {
	r.mu.Lock()
	handlers := make([]hook[ActionFunc], len(r.actions[name]))
	copy(handlers, r.actions[name])
	r.mu.Unlock()
	for _, h := range handlers {
		h.fn(args...)
	}
}

func (r *Registry) AddFilter(name string, namespace string, fn FilterFunc) {
	kcore.Assert(name != "", "hook name must not be empty")
	kcore.Assert(namespace != "", "hook namespace must not be empty")
	kcore.Assert(fn != nil, "hook handler must not be nil")
	r.mu.Lock()
	r.filters[name] = append(r.filters[name], hook[FilterFunc]{namespace, fn})
	r.mu.Unlock()
	r.DoAction(HookAdded, name, namespace)
}

func (r *Registry) RemoveFilter(name string, namespace string) {
	r.mu.Lock()
	before := len(r.filters[name])
	r.filters[name] = lo.Reject(r.filters[name], func(h hook[FilterFunc], _ int) bool { return h.namespace == namespace })
	removed := before - len(r.filters[name])
	r.mu.Unlock()
	if removed > 0 {
		r.DoAction(HookRemoved, name, namespace)
	}
}

func (r *Registry) HasFilter(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.filters[name]) > 0
}

// ApplyFilters threads value through every handler registered for name, in
// registration order. args are passed unchanged to each handler. With no
// handlers registered, value is returned untouched.
func (r *Registry) ApplyFilters(name string, value any, args ...any) any {
	r.mu.Lock()
	handlers := make([]hook[FilterFunc], len(r.filters[name]))
	copy(handlers, r.filters[name])
	r.mu.Unlock()
	for _, h := range handlers {
		value = h.fn(value, args...)
	}
	return value
}
