package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestHealth(t *testing.T) {
	s, _, _, _ := newMockService()
	r := newTestRouter(s)

	w := do(r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var m map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["status"] != "ok" {
		t.Fatalf("body=%v", m)
	}
}

func TestHome_RedirectsToRegister(t *testing.T) {
	s, _, _, _ := newMockService()
	r := newTestRouter(s)

	w := do(r, http.MethodGet, "/", nil)
	if w.Code != http.StatusFound {
		t.Fatalf("status=%d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/register" {
		t.Fatalf("Location=%q", loc)
	}
	if c := sessionCookie(w); c != nil {
		t.Fatalf("anonymous visit should not set a cookie, got %+v", c)
	}
}

func TestUnknownRoute_Renders404(t *testing.T) {
	s, _, _, _ := newMockService()
	r := newTestRouter(s)

	w := do(r, http.MethodGet, "/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Page not found.") {
		t.Fatalf("body=%s", w.Body.String())
	}
}

func TestSessionCookie_Attributes(t *testing.T) {
	s, _, _, _ := newMockService()
	r := NewHandler(s, nil, Options{CookieName: "sid", Secure: true}).InitRoutes()

	w := do(r, http.MethodGet, "/secret", nil)
	var got *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "sid" {
			got = c
		}
	}
	if got == nil {
		t.Fatalf("expected session cookie carrying the flash")
	}
	if !got.HttpOnly || !got.Secure || got.SameSite != http.SameSiteLaxMode {
		t.Fatalf("cookie attributes: %+v", got)
	}
	if got.MaxAge != 3600 {
		t.Fatalf("MaxAge=%d, want 3600", got.MaxAge)
	}
}

func TestFlash_ShownOnceThenConsumed(t *testing.T) {
	s, _, _, _ := newMockService()
	r := newTestRouter(s)

	w := do(r, http.MethodGet, "/secret", nil)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Fatalf("status=%d Location=%q", w.Code, w.Header().Get("Location"))
	}
	cookie := sessionCookie(w)
	if cookie == nil {
		t.Fatalf("expected cookie")
	}

	w = do(r, http.MethodGet, "/login", nil, cookie)
	if !strings.Contains(w.Body.String(), msgLoginRequired) {
		t.Fatalf("flash missing: %s", w.Body.String())
	}

	w = do(r, http.MethodGet, "/login", nil, cookie)
	if strings.Contains(w.Body.String(), msgLoginRequired) {
		t.Fatalf("flash shown twice")
	}
}

func TestSwaggerDoc(t *testing.T) {
	s, _, _, _ := newMockService()
	r := newTestRouter(s)

	w := do(r, http.MethodGet, "/swagger/doc.json", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var doc struct {
		Paths map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, p := range []string{"/register", "/users/{username}", "/feedback/{id}/update"} {
		if _, ok := doc.Paths[p]; !ok {
			t.Fatalf("path %q missing from swagger doc", p)
		}
	}
}
