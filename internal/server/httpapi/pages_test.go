package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authstate "github.com/memoriam-app/memoriam/internal/server/auth"
	"github.com/stretchr/testify/require"
)

func doPage(t *testing.T, r http.Handler, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHomePage_AnonymousRedirectsToSignin(t *testing.T) {
	ts := newTestServer()
	r := NewRouter(ts.Server)

	w := doPage(t, r, "/", nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/signin?returnUrl=%2F", w.Header().Get("Location"))
}

func TestHomePage_WithSession(t *testing.T) {
	ts := newTestServer()
	r := NewRouter(ts.Server)

	w := doPage(t, r, "/", &http.Cookie{Name: sessionCookie, Value: "valid-token"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `data-page="home"`)
}

func TestHomePage_StaleSessionRedirects(t *testing.T) {
	ts := newTestServer()
	r := NewRouter(ts.Server)

	w := doPage(t, r, "/", &http.Cookie{Name: sessionCookie, Value: "expired-token"})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/signin?returnUrl=%2F", w.Header().Get("Location"))
}

func TestMemorialPage_PublicWithoutSession(t *testing.T) {
	ts := newTestServer()
	r := NewRouter(ts.Server)

	w := doPage(t, r, "/person/abc-123", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `data-page="person"`)

	w = doPage(t, r, "/person/abc-123/slideshow", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestUnknownPage_RedirectsHome(t *testing.T) {
	ts := newTestServer()
	r := NewRouter(ts.Server)

	w := doPage(t, r, "/admin", nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))
}

func TestPage_WaitsForInitialization(t *testing.T) {
	ts := newTestServer()
	ts.state = authstate.NewState() // never marked ready
	s := NewServer(ts.cfg, nopLogger{}, nil, ts.state, ts.auth, ts.people, ts.testimonials, ts.qr, ts.drafts)
	r := NewRouter(s)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	req := httptest.NewRequest(http.MethodGet, "/signin", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}
