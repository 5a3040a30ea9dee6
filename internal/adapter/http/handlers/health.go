package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"taskmanager/internal/adapter/http/middleware"
	"taskmanager/pkg/apierrors"
)

const (
	StatusOk        = "ok"
	StatusDown      = "down"
	healthDBTimeout = 2 * time.Second
)

type HealthBasic struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Message           string         `json:"message"`
	Error             *apierrors.Err `json:"error,omitempty"`
}

type HealthServices struct {
	Database string `json:"database"`
	Driver   string `json:"driver"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
	Error             *apierrors.Err `json:"error,omitempty"`
}

type HealthHandler struct {
	db *sqlx.DB
}

func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	health := HealthBasic{
		AppName:           getAppName(),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format(time.DateTime),
		Message:           StatusOk,
	}

	if !h.checkConnectionToDatabase(c.Request.Context()) {
		apiErr := apierrors.CreateError(http.StatusServiceUnavailable, apierrors.MsgDatabaseDown, middleware.GetLang(c))
		health.Message = StatusDown
		health.Error = &apiErr.ErrDetails
		c.JSON(apiErr.ErrDetails.Code, health)
		return
	}

	c.JSON(http.StatusOK, health)
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	lang := middleware.GetLang(c)

	report := HealthAdvanced{
		AppName:           getAppName(),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format(time.DateTime),
		Language:          lang,
		Status: HealthServices{
			Database: StatusOk,
		},
	}
	if h.db != nil {
		report.Status.Driver = h.db.DriverName()
	}

	if !h.checkConnectionToDatabase(c.Request.Context()) {
		report.Status.Database = StatusDown
		apiErr := apierrors.CreateError(http.StatusServiceUnavailable, apierrors.MsgDatabaseDown, lang)
		report.Error = &apiErr.ErrDetails
	}

	c.JSON(http.StatusOK, report)
}

func (h *HealthHandler) checkConnectionToDatabase(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	// Avoid hanging health checks if the database stalls.
	timeoutCtx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()
	return h.db.PingContext(timeoutCtx) == nil
}

func getAppName() string {
	name := os.Getenv("APP_NAME")
	if name == "" {
		return "taskmanager"
	}
	return name
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
