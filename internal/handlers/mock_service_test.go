package handlers

import (
	"context"
	"net/http"

	"campus_match/internal/models"
	"campus_match/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	token     string
	authErr   error
	user      models.User
	userErr   error
	logoutErr error

	lastEmail     string
	lastPassword  string
	lastToken     string
	logoutCalls   int
	lastLogoutTok string
}

func (m *mockAuth) Authenticate(_ context.Context, email, password string) (string, error) {
	m.lastEmail = email
	m.lastPassword = password
	return m.token, m.authErr
}
func (m *mockAuth) ParseToken(token string) (service.Session, error) {
	m.lastToken = token
	if m.userErr != nil {
		return service.Session{}, m.userErr
	}
	return service.Session{UserID: m.user.ID, TokenID: "jti"}, nil
}
func (m *mockAuth) CurrentUser(_ context.Context, token string) (models.User, error) {
	m.lastToken = token
	return m.user, m.userErr
}
func (m *mockAuth) Logout(_ context.Context, token string) error {
	m.logoutCalls++
	m.lastLogoutTok = token
	return m.logoutErr
}

type mockRegistration struct {
	user models.User
	err  error

	calls     int
	lastInput service.RegistrationInput
	lastPic   []byte
	lastName  string
}

func (m *mockRegistration) Register(_ context.Context, in service.RegistrationInput, pic *service.Upload) (models.User, error) {
	m.calls++
	m.lastInput = in
	if pic != nil {
		m.lastName = pic.Filename
		buf := make([]byte, pic.Size)
		n, _ := pic.Content.Read(buf)
		m.lastPic = buf[:n]
	}
	return m.user, m.err
}

type mockMatching struct {
	res      models.MatchResult
	err      error
	lastUser models.User
}

func (m *mockMatching) Dashboard(_ context.Context, current models.User) (models.MatchResult, error) {
	m.lastUser = current
	return m.res, m.err
}

type mockCatalog struct {
	interests []models.Interest
	err       error
}

func (m *mockCatalog) Seed(context.Context, []string) (int, error) { return 0, nil }
func (m *mockCatalog) List(context.Context) ([]models.Interest, error) {
	return m.interests, m.err
}

type mockActivity struct {
	resp       []models.ActivityEvent
	err        error
	lastUserID int
	lastFilter service.ActivityFilter
}

func (m *mockActivity) Record(context.Context, models.ActivityEvent) {}
func (m *mockActivity) List(_ context.Context, userID int, f service.ActivityFilter) ([]models.ActivityEvent, error) {
	m.lastUserID = userID
	m.lastFilter = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	return newTestRouterWith(s, Config{})
}

func newTestRouterWith(s *service.Service, cfg Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, nil, cfg)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func withHeaders(req *http.Request, hdr http.Header) *http.Request {
	for k, vv := range hdr {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	return req
}
