package ktrans

import (
	"testing"
	"testing/fstest"

	"github.com/kataras/i18n"
	"github.com/stretchr/testify/assert"
)

func newCatalogEngine(t *testing.T, translations string) *CatalogEngine {
	t.Helper()
	fsys := fstest.MapFS{
		"fr-FR/index.yml": &fstest.MapFile{Data: []byte(translations)},
	}
	loader, err := i18n.FS(fsys, "*/*.yml")
	assert.NoError(t, err)
	inst, err := i18n.New(loader, "fr-FR")
	assert.NoError(t, err)
	return NewCatalogEngine(inst, "fr-FR")
}

func TestCatalogEngineTranslate(t *testing.T) {
	engine := newCatalogEngine(t, `
"Hello you": "Bonjour toi"
`)

	assert.Equal(t, "Bonjour toi", engine.T("Hello you"))
	assert.Equal(t, "missing", engine.T("missing"))
}

func TestCatalogEngineContext(t *testing.T) {
	engine := newCatalogEngine(t, `
"menu|Open": "Ouvrir"
`)

	assert.Equal(t, "Ouvrir", engine.TX("Open", "menu"))
	assert.Equal(t, "Open", engine.TX("Open", "dialog"))
}

func TestCatalogEnginePluralSelectsFormBeforeLookup(t *testing.T) {
	engine := newCatalogEngine(t, `
"cat": "chat"
"cats": "chats"
`)

	assert.Equal(t, "chat", engine.TN("cat", "cats", 1))
	assert.Equal(t, "chats", engine.TN("cat", "cats", 5))
}

func TestCatalogEngineHasTranslation(t *testing.T) {
	engine := newCatalogEngine(t, `
"Hello you": "Bonjour toi"
`)

	assert.True(t, engine.HasTranslation("Hello you"))
	assert.False(t, engine.HasTranslation("missing"))
}

func TestCatalogEngineSetLocaleNotifies(t *testing.T) {
	engine := newCatalogEngine(t, `
"Hello you": "Bonjour toi"
`)
	notified := 0
	unsubscribe := engine.Subscribe(func() { notified++ })

	engine.SetLocale("ar")
	assert.Equal(t, 1, notified)
	assert.True(t, engine.IsRTL())

	unsubscribe()
	engine.SetLocale("fr-FR")
	assert.Equal(t, 1, notified)
}
