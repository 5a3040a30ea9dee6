// Package app assembles repositories, services and handlers into a router.
package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	dbadapter "taskmanager/internal/adapter/db"
	httpadapter "taskmanager/internal/adapter/http"
	"taskmanager/internal/adapter/http/handlers"
	"taskmanager/internal/adapter/http/render"
	"taskmanager/internal/adapter/http/validation"
	"taskmanager/internal/app/service"
	"taskmanager/internal/core/ports"
)

// NewRouter builds the engine. Middlewares run before the routing middlewares.
func NewRouter(db *sqlx.DB, store ports.SessionStore, middlewares ...gin.HandlerFunc) (*gin.Engine, error) {
	validation.RegisterValidators()

	tmpl, err := render.LoadTemplates()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	userRepository := dbadapter.NewUserRepository(db)
	statusRepository := dbadapter.NewStatusRepository(db)
	labelRepository := dbadapter.NewLabelRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)

	userService := service.NewUserService(userRepository)
	statusService := service.NewStatusService(statusRepository)
	labelService := service.NewLabelService(labelRepository)
	taskService := service.NewTaskService(taskRepository, statusRepository, userRepository, labelRepository)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(middlewares...)

	httpadapter.RegisterRoutes(r, store, userService, taskService, httpadapter.Handlers{
		Health: handlers.NewHealthHandler(db),
		Auth:   handlers.NewAuthHandler(userService),
		User:   handlers.NewUserHandler(userService),
		Status: handlers.NewStatusHandler(statusService),
		Label:  handlers.NewLabelHandler(labelService),
		Task:   handlers.NewTaskHandler(taskService, statusService, userService, labelService),
	})

	return r, nil
}
