package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	dbadapter "taskmanager/internal/adapter/db"
	"taskmanager/internal/adapter/session"
	"taskmanager/internal/app"
	"taskmanager/pkg/translator"
)

const translationFolder = "../../../../pkg/translator/translation"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
	os.Exit(m.Run())
}

// IntegrationSuiteBase serves the full application over a fresh in-memory
// SQLite database for every test.
type IntegrationSuiteBase struct {
	suite.Suite

	DB     *sqlx.DB
	router *gin.Engine
}

func (s *IntegrationSuiteBase) SetupTest() {
	db, err := dbadapter.ConnectSQLite(":memory:")
	s.Require().NoError(err)
	_, err = dbadapter.Migrate(context.Background(), db)
	s.Require().NoError(err)
	s.DB = db

	store := session.NewCookieStore("integration-secret", time.Hour, false)
	router, err := app.NewRouter(db, store)
	s.Require().NoError(err)
	s.router = router
}

func (s *IntegrationSuiteBase) TearDownTest() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}
}

// client is a browser stand-in that keeps the session cookie between requests.
type client struct {
	s       *IntegrationSuiteBase
	cookies map[string]*http.Cookie
}

func (s *IntegrationSuiteBase) newClient() *client {
	return &client{s: s, cookies: map[string]*http.Cookie{}}
}

func (c *client) get(target string) *httptest.ResponseRecorder {
	return c.do(http.MethodGet, target, nil)
}

func (c *client) post(target string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	return c.do(http.MethodPost, target, form)
}

func (c *client) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Accept-Language", translator.LanguageEn)
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	c.s.router.ServeHTTP(rec, req)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.MaxAge < 0 || cookie.Value == "" {
			delete(c.cookies, cookie.Name)
			continue
		}
		c.cookies[cookie.Name] = cookie
	}
	return rec
}

// follow fetches the redirect target of rec, which renders pending flashes.
func (c *client) follow(rec *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	c.s.Require().Equal(http.StatusFound, rec.Code)
	return c.get(rec.Header().Get("Location"))
}

type fakeUser struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
}

func newFakeUser() fakeUser {
	return fakeUser{
		Username:  usernameOf(gofakeit.FirstName()) + gofakeit.DigitN(4),
		Password:  gofakeit.Password(true, true, true, false, false, 12),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
	}
}

// usernameOf keeps the ASCII letters of name, lowercased.
func usernameOf(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return -1
		}
	}, name)
}

func (u fakeUser) form() url.Values {
	return url.Values{
		"first_name": {u.FirstName},
		"last_name":  {u.LastName},
		"username":   {u.Username},
		"password1":  {u.Password},
		"password2":  {u.Password},
	}
}

// register signs u up and logs in with c. It returns the new user id.
func (s *IntegrationSuiteBase) register(c *client, u fakeUser) uint64 {
	rec := c.post("/users/create/", u.form())
	s.Require().Equal(http.StatusFound, rec.Code)
	s.Require().Equal("/login/", rec.Header().Get("Location"))

	rec = c.post("/login/", url.Values{"username": {u.Username}, "password": {u.Password}})
	s.Require().Equal(http.StatusFound, rec.Code)

	var id uint64
	s.Require().NoError(s.DB.Get(&id, "SELECT id FROM users WHERE username = ?", u.Username))
	return id
}

func (s *IntegrationSuiteBase) count(query string, args ...any) int {
	var n int
	s.Require().NoError(s.DB.Get(&n, query, args...))
	return n
}
