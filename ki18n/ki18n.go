// Package ki18n makes a translation engine ambiently available through
// context propagation, and lets third parties reshape translation calls with
// pre and post filters registered on a hooks registry.
package ki18n

import (
	"context"

	"github.com/a-h/templ"
	"github.com/martinlehoux/kotoba/kcore"
	"github.com/martinlehoux/kotoba/khooks"
	"github.com/martinlehoux/kotoba/ktrans"
)

type (
	TranslateFunc   = func(text string, domain ...string) string
	TranslateNFunc  = func(single string, plural string, n int, domain ...string) string
	TranslateXFunc  = func(text string, context string, domain ...string) string
	TranslateNXFunc = func(single string, plural string, n int, context string, domain ...string) string
)

// Filter hooks applied around every translate call. The args filter receives
// the call's argument list as []any plus (functionName, registry); the result
// filter receives the translated string plus (filteredArgs, functionName,
// registry). Argument lists keep each function's own shape: T is
// [text, domain...], TN is [single, plural, n, domain...], TX is
// [text, context, domain...], TNX is [single, plural, n, context, domain...].
const (
	HookTranslationArgs = "ki18n.translation_args"
	HookTranslation     = "ki18n.translation"
)

// I18n is an immutable snapshot binding an engine's translate functions to
// the filters registered at build time. Later filter changes only show up in
// snapshots built afterwards.
type I18n struct {
	T              TranslateFunc
	TN             TranslateNFunc
	TX             TranslateXFunc
	TNX            TranslateNXFunc
	IsRTL          func() bool
	HasTranslation func(text string, domain ...string) bool
	AddFilter      func(name string, namespace string, fn khooks.FilterFunc)
	RemoveFilter   func(name string, namespace string)
}

// Build constructs a fresh snapshot. When neither translation filter is
// registered, the bound functions are the engine's own, with no wrapping.
func Build(engine ktrans.Engine, hooks *khooks.Registry) *I18n {
	kcore.Assert(engine != nil, "engine must not be nil")
	kcore.Assert(hooks != nil, "hooks registry must not be nil")
	value := &I18n{
		IsRTL:          engine.IsRTL,
		HasTranslation: engine.HasTranslation,
		AddFilter:      hooks.AddFilter,
		RemoveFilter:   hooks.RemoveFilter,
	}
	if !hooks.HasFilter(HookTranslationArgs) && !hooks.HasFilter(HookTranslation) {
		value.T = engine.T
		value.TN = engine.TN
		value.TX = engine.TX
		value.TNX = engine.TNX
		return value
	}
	value.T = func(text string, domain ...string) string {
		args := filterArgs(hooks, "T", packArgs([]any{text}, domain))
		result := engine.T(stringArg(args, 0), domainTail(args, 1)...)
		return filterResult(hooks, "T", result, args)
	}
	value.TN = func(single string, plural string, n int, domain ...string) string {
		args := filterArgs(hooks, "TN", packArgs([]any{single, plural, n}, domain))
		result := engine.TN(stringArg(args, 0), stringArg(args, 1), intArg(args, 2), domainTail(args, 3)...)
		return filterResult(hooks, "TN", result, args)
	}
	value.TX = func(text string, context string, domain ...string) string {
		args := filterArgs(hooks, "TX", packArgs([]any{text, context}, domain))
		result := engine.TX(stringArg(args, 0), stringArg(args, 1), domainTail(args, 2)...)
		return filterResult(hooks, "TX", result, args)
	}
	value.TNX = func(single string, plural string, n int, context string, domain ...string) string {
		args := filterArgs(hooks, "TNX", packArgs([]any{single, plural, n, context}, domain))
		result := engine.TNX(stringArg(args, 0), stringArg(args, 1), intArg(args, 2), stringArg(args, 3), domainTail(args, 4)...)
		return filterResult(hooks, "TNX", result, args)
	}
	return value
}

// Tr renders the ambient translation of text, trusted as raw HTML.
func Tr(ctx context.Context, text string, domain ...string) templ.Component {
	return templ.Raw(FromContext(ctx).T(text, domain...))
}

func filterArgs(hooks *khooks.Registry, functionName string, args []any) []any {
	filtered, ok := hooks.ApplyFilters(HookTranslationArgs, args, functionName, hooks).([]any)
	kcore.Assert(ok, "translation args filter must return the argument list")
	return filtered
}

func filterResult(hooks *khooks.Registry, functionName string, result string, args []any) string {
	filtered, ok := hooks.ApplyFilters(HookTranslation, result, args, functionName, hooks).(string)
	kcore.Assert(ok, "translation filter must return a string")
	return filtered
}

func packArgs(head []any, domain []string) []any {
	for _, d := range domain {
		head = append(head, d)
	}
	return head
}

func stringArg(args []any, index int) string {
	kcore.Assert(index < len(args), "translation args filter dropped a required argument")
	text, ok := args[index].(string)
	kcore.Assert(ok, "translation argument must be a string")
	return text
}

func intArg(args []any, index int) int {
	kcore.Assert(index < len(args), "translation args filter dropped a required argument")
	n, ok := args[index].(int)
	kcore.Assert(ok, "translation count must be an int")
	return n
}

func domainTail(args []any, from int) []string {
	if len(args) <= from {
		return nil
	}
	domain := make([]string, 0, len(args)-from)
	for _, arg := range args[from:] {
		text, ok := arg.(string)
		kcore.Assert(ok, "translation domain must be a string")
		domain = append(domain, text)
	}
	return domain
}
