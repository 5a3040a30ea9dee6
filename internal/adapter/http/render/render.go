// Package render draws the HTML pages from the embedded templates.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskmanager/internal/adapter/http/middleware"
	"taskmanager/pkg/apierrors"
	"taskmanager/pkg/translator"
)

const (
	PageError = "error"
	PageHome  = "home"
	PageLogin = "login"
	// PageDelete is the confirmation page shared by every resource.
	PageDelete = "delete"
)

//go:embed templates
var templatesFS embed.FS

// LoadTemplates parses every page, ready for gin's SetHTMLTemplate.
func LoadTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcMap()).ParseFS(
		templatesFS,
		"templates/*.html",
		"templates/*/*.html",
	)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		// t translates a message id; extra arguments are key/value template data.
		"t": func(lang, messageID string, pairs ...any) string {
			var data map[string]any
			if len(pairs) > 1 {
				data = make(map[string]any, len(pairs)/2)
				for i := 0; i+1 < len(pairs); i += 2 {
					data[fmt.Sprint(pairs[i])] = pairs[i+1]
				}
			}
			return translator.Localize(lang, messageID, data)
		},
		"idstr": func(id uint64) string {
			return strconv.FormatUint(id, 10)
		},
	}
}

// Page renders name with the layout data every page needs. Pending flashes
// are consumed and the session is written before the body.
func Page(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string][]string{}
	}

	session := middleware.GetSession(c)
	data["Lang"] = middleware.GetLang(c)
	data["Flashes"] = session.PopFlashes()
	data["Authenticated"] = session.Authenticated()
	data["CurrentUserID"] = session.UserID

	middleware.SaveSession(c)
	c.HTML(code, name, data)
}

// ErrorPage renders a translated error page with the given status code.
func ErrorPage(c *gin.Context, code int, msgKey string) {
	apiErr := apierrors.CreateError(code, msgKey, middleware.GetLang(c))
	Page(c, code, PageError, gin.H{"Error": apiErr.ErrDetails})
}

func NotFound(c *gin.Context, msgKey string) {
	ErrorPage(c, http.StatusNotFound, msgKey)
}

func InternalError(c *gin.Context, msgKey string) {
	ErrorPage(c, http.StatusInternalServerError, msgKey)
}
