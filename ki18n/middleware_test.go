package ki18n

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMiddlewareInjectsCurrentSnapshot(t *testing.T) {
	provider := NewProvider(&fakeEngine{prefix: "fr:"})
	defer provider.Close()
	handler := provider.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, FromContext(r.Context()).T("hello"))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "fr:hello", rr.Body.String())
}

func TestMiddlewareReflectsFiltersPerRequest(t *testing.T) {
	provider := NewProvider(&fakeEngine{prefix: "fr:"})
	defer provider.Close()
	handler := provider.Middleware()(WithI18n(func(i18n *I18n, w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, i18n.T("hello"))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "fr:hello", rr.Body.String())

	provider.Hooks().AddFilter(HookTranslationArgs, "test", func(value any, args ...any) any {
		list := value.([]any)
		list[0] = strings.ToUpper(list[0].(string))
		return list
	})

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "fr:HELLO", rr.Body.String())
}

func TestWithI18nFallsBackToDefault(t *testing.T) {
	handler := WithI18n(func(i18n *I18n, w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, i18n.T("hello"))
	})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "hello", rr.Body.String())
}
