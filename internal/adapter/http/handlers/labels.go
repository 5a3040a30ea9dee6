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

type LabelHandler struct {
	labelService ports.LabelService
}

func NewLabelHandler(labelService ports.LabelService) *LabelHandler {
	return &LabelHandler{labelService: labelService}
}

func (h *LabelHandler) ListLabels(c *gin.Context) {
	labels, err := h.labelService.ListLabels(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list labels", zap.Error(err))
		render.InternalError(c, apierrors.MsgFailListLabels)
		return
	}

	render.Page(c, http.StatusOK, pageLabelIndex, gin.H{"Rows": mapper.ToLabelRows(labels)})
}

func (h *LabelHandler) CreateForm(c *gin.Context) {
	namedFormPage(c, titleCreateLabel, buttonCreate, "", nil)
}

func (h *LabelHandler) CreateLabel(c *gin.Context) {
	var form dto.LabelForm
	if errs := validation.BindForm(c, &form); errs != nil {
		namedFormPage(c, titleCreateLabel, buttonCreate, form.Name, errs)
		return
	}

	if _, err := h.labelService.CreateLabel(c.Request.Context(), form.Name); err != nil {
		zap.L().Error("failed to create label", zap.Error(err))
		render.InternalError(c, apierrors.MsgFailSaveLabel)
		return
	}

	middleware.Flash(c, domain.FlashSuccess, MsgLabelCreated)
	middleware.Redirect(c, labelsPath)
}

func (h *LabelHandler) UpdateForm(c *gin.Context) {
	label, ok := h.getLabel(c)
	if !ok {
		return
	}

	namedFormPage(c, titleUpdateLabel, buttonUpdate, label.Name, nil)
}

func (h *LabelHandler) UpdateLabel(c *gin.Context) {
	label, ok := h.getLabel(c)
	if !ok {
		return
	}
	labelID := label.ID

	var form dto.LabelForm
	if errs := validation.BindForm(c, &form); errs != nil {
		namedFormPage(c, titleUpdateLabel, buttonUpdate, form.Name, errs)
		return
	}

	if _, err := h.labelService.UpdateLabel(c.Request.Context(), labelID, form.Name); err != nil {
		if errors.Is(err, domain.ErrLabelNotFound) {
			render.NotFound(c, apierrors.MsgLabelNotFound)
			return
		}

		zap.L().Error("failed to update label", zap.Uint64("label_id", labelID), zap.Error(err))
		render.InternalError(c, apierrors.MsgFailSaveLabel)
		return
	}

	middleware.Flash(c, domain.FlashSuccess, MsgLabelUpdated)
	middleware.Redirect(c, labelsPath)
}

func (h *LabelHandler) DeleteForm(c *gin.Context) {
	label, ok := h.getLabel(c)
	if !ok {
		return
	}

	deletePage(c, titleDeleteLabel, label.Name, fmt.Sprintf("/labels/%d/delete/", label.ID))
}

func (h *LabelHandler) DeleteLabel(c *gin.Context) {
	labelID, ok := idParam(c, apierrors.MsgLabelNotFound)
	if !ok {
		return
	}

	if err := h.labelService.DeleteLabel(c.Request.Context(), labelID); err != nil {
		if errors.Is(err, domain.ErrLabelNotFound) {
			render.NotFound(c, apierrors.MsgLabelNotFound)
			return
		}

		zap.L().Error("failed to delete label", zap.Uint64("label_id", labelID), zap.Error(err))
		render.InternalError(c, apierrors.MsgFailSaveLabel)
		return
	}

	middleware.Flash(c, domain.FlashSuccess, MsgLabelDeleted)
	middleware.Redirect(c, labelsPath)
}

func (h *LabelHandler) getLabel(c *gin.Context) (domain.Label, bool) {
	labelID, ok := idParam(c, apierrors.MsgLabelNotFound)
	if !ok {
		return domain.Label{}, false
	}

	label, err := h.labelService.GetLabel(c.Request.Context(), labelID)
	if err != nil {
		if errors.Is(err, domain.ErrLabelNotFound) {
			render.NotFound(c, apierrors.MsgLabelNotFound)
			return domain.Label{}, false
		}

		zap.L().Error("failed to get label", zap.Uint64("label_id", labelID), zap.Error(err))
		render.InternalError(c, apierrors.MsgInternalError)
		return domain.Label{}, false
	}
	return label, true
}
