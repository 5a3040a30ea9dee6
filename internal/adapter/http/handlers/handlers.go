package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmanager/internal/adapter/http/render"
	"taskmanager/internal/adapter/http/validation"
	"taskmanager/pkg/apierrors"
)

// Home renders the landing page.
func Home(c *gin.Context) {
	render.Page(c, http.StatusOK, render.PageHome, nil)
}

// NotFound answers unknown routes.
func NotFound(c *gin.Context) {
	render.NotFound(c, apierrors.MsgPageNotFound)
}

// idParam reads the :id path parameter. Non-numeric ids answer 404.
func idParam(c *gin.Context, notFoundKey string) (uint64, bool) {
	id, ok := validation.ParseID(c.Param("id"))
	if !ok {
		render.NotFound(c, notFoundKey)
	}
	return id, ok
}

func deletePage(c *gin.Context, title, name, action string) {
	render.Page(c, http.StatusOK, render.PageDelete, gin.H{
		"Title":  title,
		"Name":   name,
		"Action": action,
	})
}
