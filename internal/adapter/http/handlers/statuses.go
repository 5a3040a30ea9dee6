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

type StatusHandler struct {
	statusService ports.StatusService
}

func NewStatusHandler(statusService ports.StatusService) *StatusHandler {
	return &StatusHandler{statusService: statusService}
}

func (h *StatusHandler) ListStatuses(c *gin.Context) {
	statuses, err := h.statusService.ListStatuses(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list statuses", zap.Error(err))
		render.InternalError(c, apierrors.MsgFailListStatuses)
		return
	}

	render.Page(c, http.StatusOK, pageStatusIndex, gin.H{"Rows": mapper.ToStatusRows(statuses)})
}

func (h *StatusHandler) CreateForm(c *gin.Context) {
	namedFormPage(c, titleCreateStatus, buttonCreate, "", nil)
}

func (h *StatusHandler) CreateStatus(c *gin.Context) {
	var form dto.StatusForm
	if errs := validation.BindForm(c, &form); errs != nil {
		namedFormPage(c, titleCreateStatus, buttonCreate, form.Name, errs)
		return
	}

	if _, err := h.statusService.CreateStatus(c.Request.Context(), form.Name); err != nil {
		zap.L().Error("failed to create status", zap.Error(err))
		render.InternalError(c, apierrors.MsgFailSaveStatus)
		return
	}

	middleware.Flash(c, domain.FlashSuccess, MsgStatusCreated)
	middleware.Redirect(c, statusesPath)
}

func (h *StatusHandler) UpdateForm(c *gin.Context) {
	status, ok := h.getStatus(c)
	if !ok {
		return
	}

	namedFormPage(c, titleUpdateStatus, buttonUpdate, status.Name, nil)
}

func (h *StatusHandler) UpdateStatus(c *gin.Context) {
	status, ok := h.getStatus(c)
	if !ok {
		return
	}
	statusID := status.ID

	var form dto.StatusForm
	if errs := validation.BindForm(c, &form); errs != nil {
		namedFormPage(c, titleUpdateStatus, buttonUpdate, form.Name, errs)
		return
	}

	if _, err := h.statusService.UpdateStatus(c.Request.Context(), statusID, form.Name); err != nil {
		if errors.Is(err, domain.ErrStatusNotFound) {
			render.NotFound(c, apierrors.MsgStatusNotFound)
			return
		}

		zap.L().Error("failed to update status", zap.Uint64("status_id", statusID), zap.Error(err))
		render.InternalError(c, apierrors.MsgFailSaveStatus)
		return
	}

	middleware.Flash(c, domain.FlashSuccess, MsgStatusUpdated)
	middleware.Redirect(c, statusesPath)
}

func (h *StatusHandler) DeleteForm(c *gin.Context) {
	status, ok := h.getStatus(c)
	if !ok {
		return
	}

	deletePage(c, titleDeleteStatus, status.Name, fmt.Sprintf("/statuses/%d/delete/", status.ID))
}

func (h *StatusHandler) DeleteStatus(c *gin.Context) {
	statusID, ok := idParam(c, apierrors.MsgStatusNotFound)
	if !ok {
		return
	}

	if err := h.statusService.DeleteStatus(c.Request.Context(), statusID); err != nil {
		switch {
		case errors.Is(err, domain.ErrStatusNotFound):
			render.NotFound(c, apierrors.MsgStatusNotFound)
		case errors.Is(err, domain.ErrInUse):
			middleware.Flash(c, domain.FlashError, MsgStatusInUse)
			middleware.Redirect(c, statusesPath)
		default:
			zap.L().Error("failed to delete status", zap.Uint64("status_id", statusID), zap.Error(err))
			render.InternalError(c, apierrors.MsgFailSaveStatus)
		}
		return
	}

	middleware.Flash(c, domain.FlashSuccess, MsgStatusDeleted)
	middleware.Redirect(c, statusesPath)
}

func (h *StatusHandler) getStatus(c *gin.Context) (domain.Status, bool) {
	statusID, ok := idParam(c, apierrors.MsgStatusNotFound)
	if !ok {
		return domain.Status{}, false
	}

	status, err := h.statusService.GetStatus(c.Request.Context(), statusID)
	if err != nil {
		if errors.Is(err, domain.ErrStatusNotFound) {
			render.NotFound(c, apierrors.MsgStatusNotFound)
			return domain.Status{}, false
		}

		zap.L().Error("failed to get status", zap.Uint64("status_id", statusID), zap.Error(err))
		render.InternalError(c, apierrors.MsgInternalError)
		return domain.Status{}, false
	}
	return status, true
}

// namedFormPage renders the single-field form used by statuses and labels.
func namedFormPage(c *gin.Context, title, submit, name string, errs validation.FieldErrors) {
	render.Page(c, http.StatusOK, pageNamedForm, gin.H{
		"Title":  title,
		"Submit": submit,
		"Action": c.Request.URL.Path,
		"Form":   gin.H{"Name": name},
		"Errors": errs,
	})
}
