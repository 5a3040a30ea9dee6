package middleware

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

const (
	LoginPath     = "/login/"
	UsersPath     = "/users/"
	TasksPath     = "/tasks/"
	MsgNotLogged  = "notLoggedIn"
	MsgNotAuthor  = "notTaskAuthor"
	nextParameter = "next"
)

// RequireLogin sends anonymous visitors to the login page, remembering where they were going.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetSession(c).Authenticated() {
			c.Next()
			return
		}

		Flash(c, domain.FlashError, MsgNotLogged)
		Redirect(c, LoginURL(c.Request.URL.RequestURI()))
		c.Abort()
	}
}

// RequireSelf lets a user act only on their own :id. Others are sent back to
// the user list without a message.
func RequireSelf() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err == nil && id == GetSession(c).UserID {
			c.Next()
			return
		}

		Redirect(c, UsersPath)
		c.Abort()
	}
}

// RequireTaskAuthor lets only the author of task :id through. Unknown tasks
// are passed on so the handler answers 404.
func RequireTaskAuthor(tasks ports.TaskService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.Next()
			return
		}

		task, err := tasks.GetTask(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrTaskNotFound) {
				c.Next()
				return
			}
			zap.L().Error("failed to load task author", zap.Uint64("task_id", id), zap.Error(err))
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		if task.Author.ID != GetSession(c).UserID {
			Flash(c, domain.FlashError, MsgNotAuthor)
			Redirect(c, TasksPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoginURL builds /login/?next=<path> keeping slashes readable.
func LoginURL(next string) string {
	return LoginPath + "?" + nextParameter + "=" + strings.ReplaceAll(url.QueryEscape(next), "%2F", "/")
}

// SafeNext returns next when it is a local path, otherwise fallback.
func SafeNext(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return fallback
	}
	return next
}
