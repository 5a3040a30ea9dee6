package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	httpadapter "taskmanager/internal/adapter/http"
	"taskmanager/internal/adapter/http/handlers"
	"taskmanager/internal/adapter/http/render"
	"taskmanager/internal/adapter/session"
	"taskmanager/internal/core/domain"
	"taskmanager/pkg/translator"
)

// knownUsers treats every session user as existing so that session checks do
// not consume expectations set on the user service mock.
type knownUsers struct{}

func (knownUsers) GetUser(ctx context.Context, id uint64) (domain.User, error) {
	return domain.User{ID: id}, nil
}

type fixture struct {
	users    *userServiceMock
	tasks    *taskServiceMock
	statuses *statusServiceMock
	labels   *labelServiceMock
	store    *session.CookieStore
	router   *gin.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		users:    new(userServiceMock),
		tasks:    new(taskServiceMock),
		statuses: new(statusServiceMock),
		labels:   new(labelServiceMock),
		store:    session.NewCookieStore("test-secret", time.Hour, false),
	}

	tmpl, err := render.LoadTemplates()
	require.NoError(t, err)

	f.router = gin.New()
	f.router.SetHTMLTemplate(tmpl)
	httpadapter.RegisterRoutes(f.router, f.store, knownUsers{}, f.tasks, httpadapter.Handlers{
		Health: handlers.NewHealthHandler(nil),
		Auth:   handlers.NewAuthHandler(f.users),
		User:   handlers.NewUserHandler(f.users),
		Status: handlers.NewStatusHandler(f.statuses),
		Label:  handlers.NewLabelHandler(f.labels),
		Task:   handlers.NewTaskHandler(f.tasks, f.statuses, f.users, f.labels),
	})

	t.Cleanup(func() {
		f.users.AssertExpectations(t)
		f.tasks.AssertExpectations(t)
		f.statuses.AssertExpectations(t)
		f.labels.AssertExpectations(t)
	})
	return f
}

// do sends a request as userID, anonymous when userID is 0. A non-nil form is
// posted url-encoded.
func (f *fixture) do(t *testing.T, method, target string, form url.Values, userID uint64) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Accept-Language", translator.LanguageEn)

	if userID != 0 {
		s := &domain.Session{}
		s.Login(userID)
		cookieRec := httptest.NewRecorder()
		require.NoError(t, f.store.Save(cookieRec, s))
		for _, cookie := range cookieRec.Result().Cookies() {
			req.AddCookie(cookie)
		}
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) doWithCookies(t *testing.T, method, target string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

// session decodes the session cookie written by a response.
func (f *fixture) session(t *testing.T, rec *httptest.ResponseRecorder) *domain.Session {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	s, err := f.store.Load(req)
	require.NoError(t, err)
	return s
}

func (f *fixture) flashMessages(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()

	var messages []string
	for _, flash := range f.session(t, rec).Flashes {
		messages = append(messages, flash.Message)
	}
	return messages
}
