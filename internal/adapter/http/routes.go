package http

import (
	"github.com/gin-gonic/gin"

	"taskmanager/internal/adapter/http/handlers"
	"taskmanager/internal/adapter/http/middleware"
	"taskmanager/internal/core/ports"
)

type Handlers struct {
	Health *handlers.HealthHandler
	Auth   *handlers.AuthHandler
	User   *handlers.UserHandler
	Status *handlers.StatusHandler
	Label  *handlers.LabelHandler
	Task   *handlers.TaskHandler
}

// RegisterRoutes wires every page. users resolves session owners and
// taskService backs the task author guard.
func RegisterRoutes(r *gin.Engine, store ports.SessionStore, users middleware.UserGetter, taskService ports.TaskService, h Handlers) {
	r.Use(
		middleware.RequestIDMiddleware(),
		middleware.LanguageMiddleware(),
		middleware.SessionMiddleware(store, users),
	)
	r.NoRoute(handlers.NotFound)

	r.GET("/health", h.Health.CheckHealth)
	r.GET("/health/report", h.Health.CheckHealthReport)

	r.GET("/", handlers.Home)
	r.GET("/login/", h.Auth.LoginForm)
	r.POST("/login/", h.Auth.Login)
	r.POST("/logout/", h.Auth.Logout)

	userRoutes := r.Group("/users")
	{
		userRoutes.GET("/", h.User.ListUsers)
		userRoutes.GET("/create/", h.User.CreateForm)
		userRoutes.POST("/create/", h.User.CreateUser)

		self := userRoutes.Group("/:id", middleware.RequireLogin(), middleware.RequireSelf())
		self.GET("/update/", h.User.UpdateForm)
		self.POST("/update/", h.User.UpdateUser)
		self.GET("/delete/", h.User.DeleteForm)
		self.POST("/delete/", h.User.DeleteUser)
	}

	statuses := r.Group("/statuses", middleware.RequireLogin())
	{
		statuses.GET("/", h.Status.ListStatuses)
		statuses.GET("/create/", h.Status.CreateForm)
		statuses.POST("/create/", h.Status.CreateStatus)
		statuses.GET("/:id/update/", h.Status.UpdateForm)
		statuses.POST("/:id/update/", h.Status.UpdateStatus)
		statuses.GET("/:id/delete/", h.Status.DeleteForm)
		statuses.POST("/:id/delete/", h.Status.DeleteStatus)
	}

	labels := r.Group("/labels", middleware.RequireLogin())
	{
		labels.GET("/", h.Label.ListLabels)
		labels.GET("/create/", h.Label.CreateForm)
		labels.POST("/create/", h.Label.CreateLabel)
		labels.GET("/:id/update/", h.Label.UpdateForm)
		labels.POST("/:id/update/", h.Label.UpdateLabel)
		labels.GET("/:id/delete/", h.Label.DeleteForm)
		labels.POST("/:id/delete/", h.Label.DeleteLabel)
	}

	tasks := r.Group("/tasks", middleware.RequireLogin())
	{
		tasks.GET("/", h.Task.ListTasks)
		tasks.GET("/create/", h.Task.CreateForm)
		tasks.POST("/create/", h.Task.CreateTask)
		tasks.GET("/:id/", h.Task.GetTask)
		tasks.GET("/:id/update/", h.Task.UpdateForm)
		tasks.POST("/:id/update/", h.Task.UpdateTask)

		authorOnly := middleware.RequireTaskAuthor(taskService)
		tasks.GET("/:id/delete/", authorOnly, h.Task.DeleteForm)
		tasks.POST("/:id/delete/", authorOnly, h.Task.DeleteTask)
	}
}
