package ktrans

import (
	"sync"

	"github.com/kataras/i18n"
	"github.com/martinlehoux/kotoba/kcore"
)

var _ Engine = (*CatalogEngine)(nil)

// CatalogEngine adapts a kataras/i18n instance. kataras catalogs have no
// native plural or context support, so plural forms are selected before
// lookup and context-qualified keys use the same "<context>|<text>" scheme as
// MessageEngine.
type CatalogEngine struct {
	mu     sync.Mutex
	inst   *i18n.I18n
	locale string
	subscribers
}

func NewCatalogEngine(inst *i18n.I18n, locale string) *CatalogEngine {
	kcore.Assert(inst != nil, "i18n instance must not be nil")
	return &CatalogEngine{inst: inst, locale: locale}
}

func (e *CatalogEngine) SetLocale(locale string) {
	e.mu.Lock()
	e.locale = locale
	e.mu.Unlock()
	e.notify()
}

func (e *CatalogEngine) Locale() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.locale
}

func (e *CatalogEngine) T(text string, domain ...string) string {
	translated, _ := e.tr(messageID(text, "", domain), text)
	return translated
}

func (e *CatalogEngine) TN(single string, plural string, n int, domain ...string) string {
	chosen := pluralFallback(single, plural, n)
	translated, _ := e.tr(messageID(chosen, "", domain), chosen)
	return translated
}

func (e *CatalogEngine) TX(text string, context string, domain ...string) string {
	translated, _ := e.tr(messageID(text, context, domain), text)
	return translated
}

func (e *CatalogEngine) TNX(single string, plural string, n int, context string, domain ...string) string {
	chosen := pluralFallback(single, plural, n)
	translated, _ := e.tr(messageID(chosen, context, domain), chosen)
	return translated
}

func (e *CatalogEngine) IsRTL() bool {
	return isRTL(e.Locale())
}

func (e *CatalogEngine) HasTranslation(text string, domain ...string) bool {
	_, ok := e.tr(messageID(text, "", domain), text)
	return ok
}

// tr reports a miss when the catalog echoes the key or yields nothing, in
// which case fallback is returned instead.
func (e *CatalogEngine) tr(id string, fallback string) (string, bool) {
	translated := e.inst.Tr(e.Locale(), id)
	if translated == "" || translated == id {
		return fallback, false
	}
	return translated, true
}
