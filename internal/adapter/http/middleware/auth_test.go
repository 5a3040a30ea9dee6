package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskmanager/internal/core/domain"
)

type stubStore struct {
	session *domain.Session
	saved   *domain.Session
}

func (s *stubStore) Load(r *http.Request) (*domain.Session, error) {
	if s.session == nil {
		return &domain.Session{}, errors.New("bad cookie")
	}
	return s.session, nil
}

func (s *stubStore) Save(w http.ResponseWriter, session *domain.Session) error {
	s.saved = session
	return nil
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type userLookupFunc func(ctx context.Context, id uint64) (domain.User, error)

func (f userLookupFunc) GetUser(ctx context.Context, id uint64) (domain.User, error) {
	return f(ctx, id)
}

var existingUsers = userLookupFunc(func(_ context.Context, id uint64) (domain.User, error) {
	return domain.User{ID: id}, nil
})

func loggedIn(userID uint64) *stubStore {
	return &stubStore{session: &domain.Session{UserID: userID}}
}

func serve(store *stubStore, path, target string, guards ...gin.HandlerFunc) *httptest.ResponseRecorder {
	return serveWithUsers(store, existingUsers, path, target, guards...)
}

func serveWithUsers(store *stubStore, users UserGetter, path, target string, guards ...gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(LanguageMiddleware(), SessionMiddleware(store, users))
	handlers := append(guards, func(c *gin.Context) { c.String(http.StatusOK, "reached") })
	r.GET(path, handlers...)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRequireLogin_Anonymous(t *testing.T) {
	store := &stubStore{session: &domain.Session{}}

	rec := serve(store, "/tasks/", "/tasks/?label=2", RequireLogin())

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login/?next=/tasks/%3Flabel%3D2", rec.Header().Get("Location"))
	require.NotNil(t, store.saved)
	require.Len(t, store.saved.Flashes, 1)
	require.Equal(t, domain.FlashError, store.saved.Flashes[0].Level)
}

func TestRequireLogin_InvalidCookieIsAnonymous(t *testing.T) {
	store := &stubStore{}

	rec := serve(store, "/tasks/", "/tasks/", RequireLogin())

	require.Equal(t, http.StatusFound, rec.Code)
	require.NotContains(t, rec.Body.String(), "reached")
}

func TestRequireLogin_Authenticated(t *testing.T) {
	rec := serve(loggedIn(1), "/tasks/", "/tasks/", RequireLogin())

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "reached", rec.Body.String())
}

func TestRequireLogin_DeletedUserIsLoggedOut(t *testing.T) {
	store := loggedIn(7)
	users := userLookupFunc(func(_ context.Context, id uint64) (domain.User, error) {
		return domain.User{}, domain.ErrUserNotFound
	})

	rec := serveWithUsers(store, users, "/tasks/create/", "/tasks/create/", RequireLogin())

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login/?next=/tasks/create/", rec.Header().Get("Location"))
	require.NotNil(t, store.saved)
	require.Zero(t, store.saved.UserID)
	require.NotContains(t, rec.Body.String(), "reached")
}

func TestRequireLogin_UserLookupErrorKeepsSession(t *testing.T) {
	store := loggedIn(7)
	users := userLookupFunc(func(_ context.Context, id uint64) (domain.User, error) {
		return domain.User{}, errors.New("database is gone")
	})

	rec := serveWithUsers(store, users, "/tasks/", "/tasks/", RequireLogin())

	require.Equal(t, http.StatusOK, rec.Code)
	require.Nil(t, store.saved)
}

func TestRequireSelf(t *testing.T) {
	rec := serve(loggedIn(1), "/users/:id/update/", "/users/1/update/", RequireSelf())
	require.Equal(t, http.StatusOK, rec.Code)

	store := loggedIn(1)
	rec = serve(store, "/users/:id/update/", "/users/2/update/", RequireSelf())
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, UsersPath, rec.Header().Get("Location"))
	require.Nil(t, store.saved)
}

func TestRequireTaskAuthor(t *testing.T) {
	tasks := new(taskServiceMock)
	tasks.On("GetTask", mock.Anything, uint64(5)).Return(domain.Task{ID: 5, Author: domain.User{ID: 1}}, nil)
	tasks.On("GetTask", mock.Anything, uint64(9)).Return(domain.Task{}, domain.ErrTaskNotFound)
	tasks.On("GetTask", mock.Anything, uint64(7)).Return(domain.Task{}, errors.New("db is down"))

	rec := serve(loggedIn(1), "/tasks/:id/delete/", "/tasks/5/delete/", RequireTaskAuthor(tasks))
	require.Equal(t, http.StatusOK, rec.Code)

	store := loggedIn(2)
	rec = serve(store, "/tasks/:id/delete/", "/tasks/5/delete/", RequireTaskAuthor(tasks))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, TasksPath, rec.Header().Get("Location"))
	require.Len(t, store.saved.Flashes, 1)

	rec = serve(loggedIn(2), "/tasks/:id/delete/", "/tasks/9/delete/", RequireTaskAuthor(tasks))
	require.Equal(t, "reached", rec.Body.String())

	rec = serve(loggedIn(2), "/tasks/:id/delete/", "/tasks/7/delete/", RequireTaskAuthor(tasks))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSafeNext(t *testing.T) {
	require.Equal(t, "/tasks/", SafeNext("/tasks/", "/"))
	require.Equal(t, "/", SafeNext("", "/"))
	require.Equal(t, "/", SafeNext("https://evil.example", "/"))
	require.Equal(t, "/", SafeNext("//evil.example", "/"))
	require.Equal(t, "/", SafeNext("/\\evil.example", "/"))
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, rec.Body.String())
	require.Equal(t, rec.Body.String(), rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, "abc", rec.Body.String())
}
