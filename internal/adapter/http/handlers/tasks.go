package handlers

import (
	"context"
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

type TaskHandler struct {
	taskService   ports.TaskService
	statusService ports.StatusService
	userService   ports.UserService
	labelService  ports.LabelService
}

func NewTaskHandler(
	taskService ports.TaskService,
	statusService ports.StatusService,
	userService ports.UserService,
	labelService ports.LabelService,
) *TaskHandler {
	return &TaskHandler{
		taskService:   taskService,
		statusService: statusService,
		userService:   userService,
		labelService:  labelService,
	}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	var query dto.TaskFilterQuery
	// every filter field is a plain string, so binding cannot fail on bad ids
	_ = c.ShouldBindQuery(&query)
	filter := validation.BuildTaskFilter(query, middleware.GetSession(c).UserID)

	tasks, err := h.taskService.ListTasks(ctx, filter)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		render.InternalError(c, apierrors.MsgFailListTask)
		return
	}

	data, err := h.choices(ctx)
	if err != nil {
		zap.L().Error("failed to load task filter choices", zap.Error(err))
		render.InternalError(c, apierrors.MsgFailListTask)
		return
	}

	data["Tasks"] = mapper.ToTaskRows(tasks)
	data["Filter"] = query
	data["SelfTasks"] = filter.AuthorID != nil
	render.Page(c, http.StatusOK, pageTaskIndex, data)
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	task, ok := h.getTask(c)
	if !ok {
		return
	}

	render.Page(c, http.StatusOK, pageTaskDetail, gin.H{"Task": mapper.ToTaskDetail(task)})
}

func (h *TaskHandler) CreateForm(c *gin.Context) {
	h.formPage(c, titleCreateTask, buttonCreate, dto.TaskForm{}, nil)
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	form, input, errs := bindTaskForm(c)
	if errs != nil {
		h.formPage(c, titleCreateTask, buttonCreate, form, errs)
		return
	}

	_, err := h.taskService.CreateTask(c.Request.Context(), domain.CreateTaskInput{
		Name:        input.Name,
		Description: input.Description,
		AuthorID:    middleware.GetSession(c).UserID,
		ExecutorID:  input.ExecutorID,
		StatusID:    input.StatusID,
		LabelIDs:    input.LabelIDs,
	})
	if err != nil {
		if errs, ok := referenceErrors(c, err); ok {
			h.formPage(c, titleCreateTask, buttonCreate, form, errs)
			return
		}

		zap.L().Error("failed to create task", zap.Error(err))
		render.InternalError(c, apierrors.MsgFailSaveTask)
		return
	}

	middleware.Flash(c, domain.FlashSuccess, MsgTaskCreated)
	middleware.Redirect(c, middleware.TasksPath)
}

func (h *TaskHandler) UpdateForm(c *gin.Context) {
	task, ok := h.getTask(c)
	if !ok {
		return
	}

	h.formPage(c, titleUpdateTask, buttonUpdate, mapper.ToTaskForm(task), nil)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	task, ok := h.getTask(c)
	if !ok {
		return
	}
	taskID := task.ID

	form, input, errs := bindTaskForm(c)
	if errs != nil {
		h.formPage(c, titleUpdateTask, buttonUpdate, form, errs)
		return
	}

	_, err := h.taskService.UpdateTask(c.Request.Context(), taskID, input)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			render.NotFound(c, apierrors.MsgTaskNotFound)
			return
		}
		if errs, ok := referenceErrors(c, err); ok {
			h.formPage(c, titleUpdateTask, buttonUpdate, form, errs)
			return
		}

		zap.L().Error("failed to update task", zap.Uint64("task_id", taskID), zap.Error(err))
		render.InternalError(c, apierrors.MsgFailSaveTask)
		return
	}

	middleware.Flash(c, domain.FlashSuccess, MsgTaskUpdated)
	middleware.Redirect(c, middleware.TasksPath)
}

func (h *TaskHandler) DeleteForm(c *gin.Context) {
	task, ok := h.getTask(c)
	if !ok {
		return
	}

	deletePage(c, titleDeleteTask, task.Name, fmt.Sprintf("/tasks/%d/delete/", task.ID))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := idParam(c, apierrors.MsgTaskNotFound)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			render.NotFound(c, apierrors.MsgTaskNotFound)
			return
		}

		zap.L().Error("failed to delete task", zap.Uint64("task_id", taskID), zap.Error(err))
		render.InternalError(c, apierrors.MsgFailSaveTask)
		return
	}

	middleware.Flash(c, domain.FlashSuccess, MsgTaskDeleted)
	middleware.Redirect(c, middleware.TasksPath)
}

func (h *TaskHandler) getTask(c *gin.Context) (domain.Task, bool) {
	taskID, ok := idParam(c, apierrors.MsgTaskNotFound)
	if !ok {
		return domain.Task{}, false
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			render.NotFound(c, apierrors.MsgTaskNotFound)
			return domain.Task{}, false
		}

		zap.L().Error("failed to get task", zap.Uint64("task_id", taskID), zap.Error(err))
		render.InternalError(c, apierrors.MsgInternalError)
		return domain.Task{}, false
	}
	return task, true
}

func (h *TaskHandler) formPage(c *gin.Context, title, submit string, form dto.TaskForm, errs validation.FieldErrors) {
	data, err := h.choices(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to load task form choices", zap.Error(err))
		render.InternalError(c, apierrors.MsgInternalError)
		return
	}

	data["Title"] = title
	data["Submit"] = submit
	data["Action"] = c.Request.URL.Path
	data["Form"] = form
	data["Errors"] = errs
	render.Page(c, http.StatusOK, pageTaskForm, data)
}

// choices loads the select options shared by the task form and the filter.
func (h *TaskHandler) choices(ctx context.Context) (gin.H, error) {
	statuses, err := h.statusService.ListStatuses(ctx)
	if err != nil {
		return nil, err
	}
	users, err := h.userService.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	labels, err := h.labelService.ListLabels(ctx)
	if err != nil {
		return nil, err
	}

	return gin.H{
		"Statuses": mapper.ToStatusChoices(statuses),
		"Users":    mapper.ToUserChoices(users),
		"Labels":   mapper.ToLabelChoices(labels),
	}, nil
}

func bindTaskForm(c *gin.Context) (dto.TaskForm, domain.UpdateTaskInput, validation.FieldErrors) {
	var form dto.TaskForm
	if errs := validation.BindForm(c, &form); errs != nil {
		return form, domain.UpdateTaskInput{}, errs
	}

	input, ok := validation.BuildTaskInput(form)
	if !ok {
		return form, domain.UpdateTaskInput{}, validation.NewFieldError(c, validation.FormField, validation.MsgInvalidChoice)
	}
	return form, input, nil
}

// referenceErrors reports an unknown status, executor or label as a field error.
func referenceErrors(c *gin.Context, err error) (validation.FieldErrors, bool) {
	switch {
	case errors.Is(err, domain.ErrStatusNotFound):
		return validation.NewFieldError(c, "status", validation.MsgInvalidChoice), true
	case errors.Is(err, domain.ErrUserNotFound):
		return validation.NewFieldError(c, "executor", validation.MsgInvalidChoice), true
	case errors.Is(err, domain.ErrLabelNotFound):
		return validation.NewFieldError(c, "labels", validation.MsgInvalidChoice), true
	default:
		return nil, false
	}
}
