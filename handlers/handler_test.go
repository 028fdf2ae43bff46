package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/corkboard/corkboard/internal/config"
	"github.com/corkboard/corkboard/internal/posts"
	"github.com/corkboard/corkboard/internal/sessions"
	"github.com/corkboard/corkboard/internal/users"
	"github.com/corkboard/corkboard/pkg/middleware"
)

// testApp wires the full router over in-memory repositories.
type testApp struct {
	router   *gin.Engine
	cfg      *config.Config
	users    *users.Service
	sessions *sessions.Service
	posts    *posts.Service
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Session.Secret = "handlers-test-secret"
	cfg.Session.TTL = time.Hour

	uSvc := users.NewService(users.NewMemoryRepository())
	sSvc := sessions.NewService(sessions.NewMemoryRepository())
	pSvc := posts.NewService(posts.NewMemoryRepository())

	r := NewRouter(Deps{Cfg: cfg, Users: uSvc, Sessions: sSvc, Posts: pSvc})
	return &testApp{router: r, cfg: cfg, users: uSvc, sessions: sSvc, posts: pSvc}
}

func (a *testApp) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// sessionCookie extracts the session cookie set by a signup or login
// response.
func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.SessionCookie && ck.Value != "" {
			return ck
		}
	}
	t.Fatal("expected a session cookie on the response")
	return nil
}
