package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestExtractGoSource(t *testing.T) {
	source := []byte(`package demo

func render(value *ki18n.I18n, count int) {
	value.T("hello")
	value.T("greeting", "admin")
	value.TN("cat", "cats", count)
	value.TX("Open", "menu")
	value.TNX("mouse", "mice", count, "lab")
}
`)

	keys := extractGoSource("demo.go", source)

	assert.Len(t, keys, 5)
	assert.Equal(t, Message{ID: "hello"}, keys["hello"])
	assert.Equal(t, Message{ID: "admin:greeting"}, keys["admin:greeting"])
	assert.Equal(t, Message{ID: "cat", Plural: "cats"}, keys["cat"])
	assert.Equal(t, Message{ID: "menu|Open"}, keys["menu|Open"])
	assert.Equal(t, Message{ID: "lab|mouse", Plural: "mice"}, keys["lab|mouse"])
}

func TestExtractGoSourceIgnoresDynamicKeys(t *testing.T) {
	source := []byte(`package demo

func render(value *ki18n.I18n, key string) {
	value.T(key)
}
`)

	keys := extractGoSource("demo.go", source)

	assert.Empty(t, keys)
}

func TestExtractTemplSource(t *testing.T) {
	content := `<p>@ki18n.Tr(ctx, "Hello you")</p><span>{ value.T("hello", "admin") }</span>`

	keys := extractTemplSource(content)

	assert.Len(t, keys, 2)
	assert.Equal(t, Message{ID: "Hello you"}, keys["Hello you"])
	assert.Equal(t, Message{ID: "admin:hello"}, keys["admin:hello"])
}

func TestExtractTemplSourcePlural(t *testing.T) {
	content := `{ value.TN("cat", "cats", count) }`

	keys := extractTemplSource(content)

	assert.Len(t, keys, 1)
	assert.Equal(t, Message{ID: "cat", Plural: "cats"}, keys["cat"])
}

func TestMergeReconcilesCatalog(t *testing.T) {
	current := catalog{
		"hello": "bonjour",
		"stale": "vieux",
		"empty": "",
	}
	extracted := map[string]Message{
		"hello": {ID: "hello"},
		"empty": {ID: "empty"},
		"cat":   {ID: "cat", Plural: "cats"},
	}

	merged, translated := merge(current, extracted, slog.Default())

	assert.Equal(t, 1, translated)
	assert.Equal(t, catalog{
		"hello": "bonjour",
		"empty": "",
		"cat":   map[string]string{"one": "", "other": ""},
	}, merged)
}
