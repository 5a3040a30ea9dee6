package render

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"taskmanager/internal/adapter/http/middleware"
	"taskmanager/internal/core/domain"
	"taskmanager/pkg/apierrors"
	"taskmanager/pkg/translator"
)

const translationFolder = "../../../../pkg/translator/translation"

type anyUser struct{}

func (anyUser) GetUser(ctx context.Context, id uint64) (domain.User, error) {
	return domain.User{ID: id}, nil
}

type memoryStore struct {
	loaded *domain.Session
	saved  *domain.Session
}

func (s *memoryStore) Load(r *http.Request) (*domain.Session, error) {
	return s.loaded, nil
}

func (s *memoryStore) Save(w http.ResponseWriter, session *domain.Session) error {
	s.saved = session
	return nil
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
	os.Exit(m.Run())
}

func newEngine(t *testing.T, store *memoryStore, handler gin.HandlerFunc) *gin.Engine {
	t.Helper()

	tmpl, err := LoadTemplates()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(middleware.LanguageMiddleware(), middleware.SessionMiddleware(store, anyUser{}))
	r.GET("/", handler)
	return r
}

func serve(r *gin.Engine, lang string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", lang)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLoadTemplates(t *testing.T) {
	tmpl, err := LoadTemplates()

	require.NoError(t, err)
	for _, name := range []string{
		PageHome, PageLogin, PageError, PageDelete, "named/form",
		"users/index", "users/form", "statuses/index", "labels/index",
		"tasks/index", "tasks/detail", "tasks/form",
	} {
		require.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestPage_ConsumesFlashes(t *testing.T) {
	session := &domain.Session{UserID: 1, Flashes: []domain.Flash{{Level: domain.FlashSuccess, Message: "Saved"}}}
	store := &memoryStore{loaded: session}
	r := newEngine(t, store, func(c *gin.Context) {
		Page(c, http.StatusOK, PageHome, nil)
	})

	rec := serve(r, translator.LanguageEn)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "alert-success")
	require.Contains(t, rec.Body.String(), "Saved")
	require.Contains(t, rec.Body.String(), "/logout/")
	require.NotNil(t, store.saved)
	require.Empty(t, store.saved.Flashes)
}

func TestPage_Anonymous(t *testing.T) {
	store := &memoryStore{loaded: &domain.Session{}}
	r := newEngine(t, store, func(c *gin.Context) {
		Page(c, http.StatusOK, PageHome, nil)
	})

	rec := serve(r, translator.LanguageEn)

	require.Contains(t, rec.Body.String(), "/users/create/")
	require.NotContains(t, rec.Body.String(), "/logout/")
	require.Nil(t, store.saved)
}

func TestErrorPage_IsTranslated(t *testing.T) {
	store := &memoryStore{loaded: &domain.Session{}}
	r := newEngine(t, store, func(c *gin.Context) {
		NotFound(c, apierrors.MsgTaskNotFound)
	})

	rec := serve(r, translator.LanguageFr)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), translator.Localize(translator.LanguageFr, apierrors.MsgTaskNotFound, nil))
}
