// Package ktrans defines the translation engine contract and provides two
// implementations: MessageEngine backed by go-i18n message files, and
// CatalogEngine backed by kataras/i18n catalogs.
package ktrans

import (
	"sync"

	"github.com/martinlehoux/kotoba/kcore"
	"golang.org/x/text/language"
)

// Engine is the capability set a translation backend must satisfy. The four
// translate functions keep distinct argument shapes, and those shapes are
// preserved through any wrapping layer.
//
// T translates a message, TN selects and translates a plural form, TX and TNX
// are the context-disambiguated variants. All four fall back to the source
// text when no translation exists. The optional trailing domain selects a
// translation domain; messages without a domain live in the default one.
type Engine interface {
	T(text string, domain ...string) string
	TN(single string, plural string, n int, domain ...string) string
	TX(text string, context string, domain ...string) string
	TNX(single string, plural string, n int, context string, domain ...string) string
	IsRTL() bool
	HasTranslation(text string, domain ...string) bool

	// Subscribe registers fn to run after every locale data change. The
	// returned function removes the subscription and is safe to call more
	// than once.
	Subscribe(fn func()) func()
}

// subscribers implements Engine.Subscribe for the engines in this package.
type subscribers struct {
	mu  sync.Mutex
	fns map[kcore.ID]func()
}

func (s *subscribers) Subscribe(fn func()) func() {
	kcore.Assert(fn != nil, "subscriber must not be nil")
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fns == nil {
		s.fns = map[kcore.ID]func(){}
	}
	id := kcore.NewID()
	s.fns[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.fns, id)
	}
}

// notify runs on a copy of the subscriber set, so callbacks may unsubscribe.
func (s *subscribers) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.fns))
	for _, fn := range s.fns {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

var rtlLanguages = map[string]bool{
	"ar":  true,
	"ckb": true,
	"dv":  true,
	"fa":  true,
	"he":  true,
	"ps":  true,
	"sd":  true,
	"ug":  true,
	"ur":  true,
	"yi":  true,
}

func isRTL(locale string) bool {
	tag, err := language.Parse(locale)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	return rtlLanguages[base.String()]
}

// messageID builds the catalog key for a translate call. Context-qualified
// messages use "<context>|<text>", domain-qualified ones "<domain>:<key>".
func messageID(text string, context string, domain []string) string {
	id := text
	if context != "" {
		id = context + "|" + text
	}
	if len(domain) > 0 && domain[0] != "" {
		id = domain[0] + ":" + id
	}
	return id
}
