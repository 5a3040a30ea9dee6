package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/adapter/http/middleware"
	"taskmanager/internal/adapter/http/render"
	"taskmanager/internal/adapter/http/validation"
	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
	"taskmanager/pkg/apierrors"
)

type AuthHandler struct {
	userService ports.UserService
}

func NewAuthHandler(userService ports.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	loginPage(c, dto.LoginForm{}, nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if errs := validation.BindForm(c, &form); errs != nil {
		loginPage(c, form, errs)
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			loginPage(c, form, validation.NewFieldError(c, validation.FormField, validation.MsgInvalidLogin))
			return
		}

		zap.L().Error("failed to authenticate user", zap.String("username", form.Username), zap.Error(err))
		render.InternalError(c, apierrors.MsgInternalError)
		return
	}

	middleware.GetSession(c).Login(user.ID)
	middleware.Flash(c, domain.FlashSuccess, MsgLoggedIn)
	middleware.Redirect(c, middleware.SafeNext(c.Query("next"), homePath))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.GetSession(c).Logout()
	middleware.Flash(c, domain.FlashInfo, MsgLoggedOut)
	middleware.Redirect(c, homePath)
}

func loginPage(c *gin.Context, form dto.LoginForm, errs validation.FieldErrors) {
	action := middleware.LoginPath
	if next := c.Query("next"); next != "" {
		action = middleware.LoginURL(next)
	}

	form.Password = ""
	render.Page(c, http.StatusOK, render.PageLogin, gin.H{
		"Action": action,
		"Form":   form,
		"Errors": errs,
	})
}
