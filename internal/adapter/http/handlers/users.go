package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/adapter/http/mapper"
	"taskmanager/internal/adapter/http/middleware"
	"taskmanager/internal/adapter/http/render"
	"taskmanager/internal/adapter/http/validation"
	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
	"taskmanager/pkg/apierrors"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		render.InternalError(c, apierrors.MsgFailListUsers)
		return
	}

	render.Page(c, http.StatusOK, pageUserIndex, gin.H{"Users": mapper.ToUserRows(users)})
}

func (h *UserHandler) CreateForm(c *gin.Context) {
	userFormPage(c, titleCreateUser, buttonRegister, dto.UserForm{}, nil)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var form dto.UserForm
	if errs := validation.BindForm(c, &form); errs != nil {
		userFormPage(c, titleCreateUser, buttonRegister, form, errs)
		return
	}

	_, err := h.userService.RegisterUser(c.Request.Context(), mapper.ToRegisterUserInput(form))
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			userFormPage(c, titleCreateUser, buttonRegister, form,
				validation.NewFieldError(c, "username", validation.MsgUsernameTaken))
			return
		}

		zap.L().Error("failed to register user", zap.String("username", form.Username), zap.Error(err))
		render.InternalError(c, apierrors.MsgFailSaveUser)
		return
	}

	middleware.Flash(c, domain.FlashSuccess, MsgUserRegistered)
	middleware.Redirect(c, middleware.LoginPath)
}

func (h *UserHandler) UpdateForm(c *gin.Context) {
	userID, ok := idParam(c, apierrors.MsgUserNotFound)
	if !ok {
		return
	}

	user, ok := h.getUser(c, userID)
	if !ok {
		return
	}

	userFormPage(c, titleUpdateUser, buttonUpdate, mapper.ToUserForm(user), nil)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, ok := idParam(c, apierrors.MsgUserNotFound)
	if !ok {
		return
	}
	if _, ok := h.getUser(c, userID); !ok {
		return
	}

	var form dto.UserForm
	if errs := validation.BindForm(c, &form); errs != nil {
		userFormPage(c, titleUpdateUser, buttonUpdate, form, errs)
		return
	}

	_, err := h.userService.UpdateUser(c.Request.Context(), userID, mapper.ToUpdateUserInput(form))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			render.NotFound(c, apierrors.MsgUserNotFound)
		case errors.Is(err, domain.ErrUsernameTaken):
			userFormPage(c, titleUpdateUser, buttonUpdate, form,
				validation.NewFieldError(c, "username", validation.MsgUsernameTaken))
		default:
			zap.L().Error("failed to update user", zap.Uint64("user_id", userID), zap.Error(err))
			render.InternalError(c, apierrors.MsgFailSaveUser)
		}
		return
	}

	middleware.Flash(c, domain.FlashSuccess, MsgUserUpdated)
	middleware.Redirect(c, middleware.UsersPath)
}

func (h *UserHandler) DeleteForm(c *gin.Context) {
	userID, ok := idParam(c, apierrors.MsgUserNotFound)
	if !ok {
		return
	}

	user, ok := h.getUser(c, userID)
	if !ok {
		return
	}

	deletePage(c, titleDeleteUser, user.FullName(), fmt.Sprintf("/users/%d/delete/", user.ID))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, ok := idParam(c, apierrors.MsgUserNotFound)
	if !ok {
		return
	}

	err := h.userService.DeleteUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			render.NotFound(c, apierrors.MsgUserNotFound)
		case errors.Is(err, domain.ErrInUse):
			middleware.Flash(c, domain.FlashError, MsgUserInUse)
			middleware.Redirect(c, middleware.UsersPath)
		default:
			zap.L().Error("failed to delete user", zap.Uint64("user_id", userID), zap.Error(err))
			render.InternalError(c, apierrors.MsgFailSaveUser)
		}
		return
	}

	middleware.GetSession(c).Logout()
	middleware.Flash(c, domain.FlashSuccess, MsgUserDeleted)
	middleware.Redirect(c, middleware.UsersPath)
}

func (h *UserHandler) getUser(c *gin.Context, userID uint64) (domain.User, bool) {
	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			render.NotFound(c, apierrors.MsgUserNotFound)
			return domain.User{}, false
		}

		zap.L().Error("failed to get user", zap.Uint64("user_id", userID), zap.Error(err))
		render.InternalError(c, apierrors.MsgInternalError)
		return domain.User{}, false
	}
	return user, true
}

func userFormPage(c *gin.Context, title, submit string, form dto.UserForm, errs validation.FieldErrors) {
	form.Password1, form.Password2 = "", ""
	render.Page(c, http.StatusOK, pageUserForm, gin.H{
		"Title":  title,
		"Submit": submit,
		"Action": c.Request.URL.Path,
		"Form":   form,
		"Errors": errs,
	})
}
