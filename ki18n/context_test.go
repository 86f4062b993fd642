package ki18n

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContextWithoutProviderReturnsDefault(t *testing.T) {
	value := FromContext(context.Background())

	assert.NotNil(t, value)
	assert.Same(t, Default(), value)
	assert.NotNil(t, value.T)
	assert.NotNil(t, value.TN)
	assert.NotNil(t, value.TX)
	assert.NotNil(t, value.TNX)
	assert.NotNil(t, value.IsRTL)
	assert.NotNil(t, value.HasTranslation)

	assert.Equal(t, "hello", value.T("hello"))
	assert.Equal(t, "cats", value.TN("cat", "cats", 2))
	assert.False(t, value.IsRTL())
}

func TestFromContextReturnsNearestSnapshot(t *testing.T) {
	provider := NewProvider(&fakeEngine{prefix: "fr:"})
	defer provider.Close()
	ctx := NewContext(context.Background(), provider.Current())

	assert.Equal(t, "fr:hello", FromContext(ctx).T("hello"))
}

func TestDefaultHooksBacksDefaultSnapshot(t *testing.T) {
	assert.NotNil(t, DefaultHooks())
	assert.Same(t, DefaultHooks(), DefaultHooks())
}

func TestTrRendersAmbientTranslation(t *testing.T) {
	provider := NewProvider(&fakeEngine{prefix: "fr:"})
	defer provider.Close()
	ctx := NewContext(context.Background(), provider.Current())

	w := &bytes.Buffer{}
	err := Tr(ctx, "hello").Render(ctx, w)

	assert.NoError(t, err)
	assert.Equal(t, "fr:hello", w.String())
}
