package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"healthmate/internal/advice"
	"healthmate/internal/auth"
	"healthmate/internal/classifier"
	"healthmate/internal/middleware"
	"healthmate/internal/models"
	"healthmate/internal/store"
)

type fakeUsers struct {
	users []*models.User
}

func (f *fakeUsers) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, user := range f.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) PhoneExists(ctx context.Context, phone string) (bool, error) {
	for _, user := range f.users {
		if user.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) Create(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, user)
	return user.ID, nil
}

func (f *fakeUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, store.ErrNotFound
}

type fakeSessions struct {
	records map[string]*models.Session
}

func (f *fakeSessions) Insert(ctx context.Context, session *models.Session) error {
	f.records[session.TokenID] = session
	return nil
}

func (f *fakeSessions) FindActive(ctx context.Context, tokenID string) (*models.Session, error) {
	session, ok := f.records[tokenID]
	if !ok || session.Revoked {
		return nil, store.ErrNotFound
	}
	return session, nil
}

func (f *fakeSessions) Revoke(ctx context.Context, tokenID string) error {
	session, ok := f.records[tokenID]
	if !ok || session.Revoked {
		return store.ErrNotFound
	}
	session.Revoked = true
	return nil
}

type stubClassifier struct {
	calls   int
	results []classifier.Classification
	err     error
}

func (s *stubClassifier) Classify(ctx context.Context, text string) ([]classifier.Classification, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

type testApp struct {
	router   *gin.Engine
	users    *fakeUsers
	auth     *auth.Service
	sessions *auth.SessionManager
}

// newTestApp wires the real handler stack over in-memory stores, mirroring
// the route table in main.
func newTestApp(t *testing.T, cls advice.TextClassifier) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &fakeUsers{}
	sessions := auth.NewSessionManager(&fakeSessions{records: map[string]*models.Session{}}, "test-secret", time.Hour)
	authSvc := auth.NewService(users, sessions)
	adviceSvc := advice.NewService(cls)

	r := gin.New()
	r.LoadHTMLGlob("../../templates/*.html")

	r.GET("/", IndexPage)
	r.GET("/register", RegisterPage)
	r.POST("/register", Register(authSvc))
	r.GET("/login", middleware.RedirectAuthenticated(sessions), LoginPage)
	r.POST("/login", Login(authSvc, time.Hour))

	protected := r.Group("/")
	protected.Use(middleware.RequireSession(sessions))
	{
		protected.GET("/symptoms", SymptomsPage(authSvc))
		protected.POST("/symptoms", AnalyzeSymptoms(authSvc, adviceSvc))
		protected.GET("/logout", Logout(authSvc))
	}

	return &testApp{router: r, users: users, auth: authSvc, sessions: sessions}
}

func (app *testApp) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func (app *testApp) postForm(path string, values url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

// seedUser registers an account directly through the service.
func (app *testApp) seedUser(t *testing.T, email, phone, password string) primitive.ObjectID {
	t.Helper()
	id, err := app.auth.Register(context.Background(), auth.RegisterInput{
		Name:     "Alice",
		Gender:   "Female",
		Province: "Kigali",
		District: "Gasabo",
		Sector:   "Remera",
		Email:    email,
		Phone:    phone,
		Password: password,
	})
	if err != nil {
		t.Fatalf("seed register failed: %v", err)
	}
	return id
}

// loginCookie logs in through the handler and returns the session cookie.
func (app *testApp) loginCookie(t *testing.T, email, password string) *http.Cookie {
	t.Helper()
	w := app.postForm("/login", url.Values{"email": {email}, "password": {password}})
	if w.Code != http.StatusFound {
		t.Fatalf("login returned status %d", w.Code)
	}
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == auth.SessionCookie && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("expected a session cookie")
	return nil
}

func registerValues() url.Values {
	return url.Values{
		"name":     {"Alice"},
		"gender":   {"Female"},
		"province": {"Kigali"},
		"district": {"Gasabo"},
		"sector":   {"Remera"},
		"email":    {"a@x.com"},
		"phone":    {"111"},
		"password": {"p1"},
	}
}

// flashOf decodes the flash cookie set on the response.
func flashOf(t *testing.T, w *httptest.ResponseRecorder) Flash {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name != flashCookie || cookie.Value == "" {
			continue
		}
		value, err := url.QueryUnescape(cookie.Value)
		if err != nil {
			t.Fatalf("unescape flash cookie: %v", err)
		}
		category, message, _ := strings.Cut(value, "|")
		return Flash{Category: category, Message: message}
	}
	t.Fatal("expected a flash cookie")
	return Flash{}
}

func location(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	if w.Code != http.StatusFound {
		t.Fatalf("expected a redirect, got status %d", w.Code)
	}
	return w.Header().Get("Location")
}
