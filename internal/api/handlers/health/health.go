package health

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"meal-rotation/internal/infrastructure/config"
	"meal-rotation/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Checks    string                 `json:"checks_backend"`
	Runtime   map[string]interface{} `json:"runtime"`
}

// Checker 依賴檢查（例如資料庫、Redis）
type Checker func(ctx context.Context) error

// Handler 健康檢查處理程序
type Handler struct {
	config   *config.Config
	checkers map[string]Checker
	timeout  time.Duration
}

// NewHandler 創建健康檢查處理程序
func NewHandler(cfg *config.Config, checkers map[string]Checker) *Handler {
	return &Handler{
		config:   cfg,
		checkers: checkers,
		timeout:  2 * time.Second,
	}
}

// HealthCheck 健康檢查處理器
func (h *Handler) HealthCheck(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   h.config.App.Version,
		Checks:    h.config.Checks.Backend,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}

	common.LogDebug("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查處理器，逐一檢查依賴
func (h *Handler) ReadinessCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	failures := gin.H{}
	for name, check := range h.checkers {
		if err := check(ctx); err != nil {
			common.LogWarn("依賴檢查失敗",
				zap.String("dependency", name),
				zap.Error(err),
			)
			failures[name] = err.Error()
		}
	}

	if len(failures) > 0 {
		resp := common.ErrServiceUnavailable.Response(false)
		c.JSON(common.ErrServiceUnavailable.Status, gin.H{
			"status":   "not_ready",
			"code":     resp.Code,
			"message":  resp.Message,
			"failures": failures,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck 存活檢查處理器
func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
