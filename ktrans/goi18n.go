package ktrans

import (
	"fmt"
	"io/fs"
	"sync"

	"github.com/martinlehoux/kotoba/kcore"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/slog"
	"golang.org/x/text/language"
)

var _ Engine = (*MessageEngine)(nil)

// MessageEngine is the default Engine, backed by a go-i18n bundle loaded from
// messages.<locale>.toml files. The first locale passed to NewMessageEngine is
// both the initial and the fallback locale.
type MessageEngine struct {
	mu        sync.Mutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	locale    string
	fallback  string
	subscribers
}

func NewMessageEngine(fsys fs.FS, dir string, locales ...string) (*MessageEngine, error) {
	kcore.Assert(len(locales) > 0, "at least one locale is required")
	fallbackTag, err := language.Parse(locales[0])
	if err != nil {
		return nil, kcore.Wrap(err, "error parsing fallback locale")
	}
	bundle := i18n.NewBundle(fallbackTag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, locale := range locales {
		path := fmt.Sprintf("messages.%s.toml", locale)
		if dir != "" {
			path = dir + "/" + path
		}
		if _, err := bundle.LoadMessageFileFS(fsys, path); err != nil {
			return nil, kcore.Wrap(err, "error loading message file")
		}
	}
	engine := &MessageEngine{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, locales[0]),
		locale:    locales[0],
		fallback:  locales[0],
	}
	return engine, nil
}

// SetLocale switches the active locale and notifies subscribers. Lookups fall
// back to the engine's initial locale.
func (e *MessageEngine) SetLocale(locale string) {
	e.mu.Lock()
	e.locale = locale
	e.localizer = i18n.NewLocalizer(e.bundle, locale, e.fallback)
	e.mu.Unlock()
	e.notify()
}

func (e *MessageEngine) Locale() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.locale
}

func (e *MessageEngine) Bundle() *i18n.Bundle {
	return e.bundle
}

func (e *MessageEngine) T(text string, domain ...string) string {
	return e.localize(&i18n.LocalizeConfig{MessageID: messageID(text, "", domain)}, text)
}

func (e *MessageEngine) TN(single string, plural string, n int, domain ...string) string {
	return e.localize(&i18n.LocalizeConfig{
		MessageID:    messageID(single, "", domain),
		PluralCount:  n,
		TemplateData: map[string]any{"Count": n},
	}, pluralFallback(single, plural, n))
}

func (e *MessageEngine) TX(text string, context string, domain ...string) string {
	return e.localize(&i18n.LocalizeConfig{MessageID: messageID(text, context, domain)}, text)
}

func (e *MessageEngine) TNX(single string, plural string, n int, context string, domain ...string) string {
	return e.localize(&i18n.LocalizeConfig{
		MessageID:    messageID(single, context, domain),
		PluralCount:  n,
		TemplateData: map[string]any{"Count": n},
	}, pluralFallback(single, plural, n))
}

func (e *MessageEngine) IsRTL() bool {
	return isRTL(e.Locale())
}

func (e *MessageEngine) HasTranslation(text string, domain ...string) bool {
	localizer, _ := e.currentLocalizer()
	translated, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID(text, "", domain)})
	return err == nil && translated != ""
}

func (e *MessageEngine) currentLocalizer() (*i18n.Localizer, string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.localizer, e.locale
}

func (e *MessageEngine) localize(config *i18n.LocalizeConfig, fallback string) string {
	localizer, locale := e.currentLocalizer()
	translated, err := localizer.Localize(config)
	if err != nil || translated == "" {
		if err != nil {
			slog.Debug("no translation found", "id", config.MessageID, "locale", locale)
		}
		return fallback
	}
	return translated
}

func pluralFallback(single string, plural string, n int) string {
	if n == 1 {
		return single
	}
	return plural
}

var (
	defaultEngine     *MessageEngine
	defaultEngineOnce sync.Once
)

// Default returns the process-wide engine, built once on first use. It holds
// no message files, so every translate call echoes its source text.
func Default() Engine {
	defaultEngineOnce.Do(func() {
		bundle := i18n.NewBundle(language.English)
		defaultEngine = &MessageEngine{
			bundle:    bundle,
			localizer: i18n.NewLocalizer(bundle, "en"),
			locale:    "en",
			fallback:  "en",
		}
	})
	return defaultEngine
}
