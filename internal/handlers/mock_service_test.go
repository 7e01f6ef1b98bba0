package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"feedback_app/internal/models"
	"feedback_app/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	users       map[string]*models.User
	registerErr error
	authErr     error
	getErr      error
	deleteErr   error

	registered []service.RegisterParams
	deleted    []string
}

func (m *mockAuth) Register(ctx context.Context, p service.RegisterParams) (*models.User, error) {
	m.registered = append(m.registered, p)
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	return &models.User{Username: p.Username, Email: p.Email, FirstName: p.FirstName, LastName: p.LastName}, nil
}

func (m *mockAuth) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	if m.authErr != nil {
		return nil, m.authErr
	}
	return &models.User{Username: username}, nil
}

func (m *mockAuth) GetUser(ctx context.Context, username string) (*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	u, ok := m.users[username]
	if !ok {
		return nil, service.ErrNotFound
	}
	return u, nil
}

func (m *mockAuth) DeleteUser(ctx context.Context, actor, username string) error {
	m.deleted = append(m.deleted, username)
	return m.deleteErr
}

type mockFeedback struct {
	items     map[int64]models.Feedback
	createErr error
	updateErr error

	created []models.Feedback
	updated []int64
	removed []int64
}

func (m *mockFeedback) Create(ctx context.Context, actor, username, title, content string) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	m.created = append(m.created, models.Feedback{Title: title, Content: content, Username: username})
	return int64(len(m.created)), nil
}

func (m *mockFeedback) Get(ctx context.Context, id int64) (*models.Feedback, error) {
	f, ok := m.items[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return &f, nil
}

func (m *mockFeedback) Update(ctx context.Context, actor string, id int64, title, content string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = append(m.updated, id)
	return nil
}

func (m *mockFeedback) Delete(ctx context.Context, actor string, id int64) error {
	m.removed = append(m.removed, id)
	return nil
}

func (m *mockFeedback) ListByUsername(ctx context.Context, username string) ([]models.Feedback, error) {
	out := []models.Feedback{}
	for _, f := range m.items {
		if f.Username == username {
			out = append(out, f)
		}
	}
	return out, nil
}

// mockSessions keeps sessions in a map and uses the session id as the cookie token.
type mockSessions struct {
	store map[string]models.Session
	next  int
}

func newMockSessions() *mockSessions {
	return &mockSessions{store: map[string]models.Session{}}
}

func (m *mockSessions) Load(ctx context.Context, token string) (*models.Session, error) {
	s, ok := m.store[token]
	if !ok {
		return &models.Session{}, nil
	}
	s.Flashes = append([]string(nil), s.Flashes...)
	return &s, nil
}

func (m *mockSessions) Start(ctx context.Context, sess *models.Session, username string) error {
	delete(m.store, sess.ID)
	sess.ID = ""
	sess.Username = username
	return nil
}

func (m *mockSessions) Save(ctx context.Context, sess *models.Session) (string, error) {
	if sess.IsNew() && sess.Username == "" && len(sess.Flashes) == 0 {
		return "", nil
	}
	if sess.IsNew() {
		m.next++
		sess.ID = fmt.Sprintf("sess-%d", m.next)
	}
	m.store[sess.ID] = *sess
	return sess.ID, nil
}

func (m *mockSessions) Destroy(ctx context.Context, sess *models.Session) error {
	delete(m.store, sess.ID)
	*sess = models.Session{}
	return nil
}

func (m *mockSessions) TTL() time.Duration { return time.Hour }

// loggedIn seeds a session for username and returns its cookie.
func (m *mockSessions) loggedIn(username string) *http.Cookie {
	id := "tok-" + username
	m.store[id] = models.Session{ID: id, Username: username}
	return &http.Cookie{Name: defaultCookieName, Value: id}
}

// ---- Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, Options{})
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func newMockService() (*service.Service, *mockAuth, *mockFeedback, *mockSessions) {
	auth := &mockAuth{users: map[string]*models.User{}}
	fb := &mockFeedback{items: map[int64]models.Feedback{}}
	sessions := newMockSessions()
	return &service.Service{Authorization: auth, Feedback: fb, Sessions: sessions}, auth, fb, sessions
}

func do(r http.Handler, method, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		if c != nil {
			req.AddCookie(c)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == defaultCookieName {
			return c
		}
	}
	return nil
}
