package grocery

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"meal-rotation/internal/api/middleware"
	groceryService "meal-rotation/internal/core/grocery"
	"meal-rotation/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckRequest 勾選請求
type CheckRequest struct {
	ItemKey string `json:"itemKey"`
	Checked *bool  `json:"checked"`
}

// ClearResponse 清除勾選響應
type ClearResponse struct {
	Cleared bool `json:"cleared"`
}

// Handler 採買清單處理程序
type Handler struct {
	service *groceryService.Service
	debug   bool
}

// NewHandler 創建採買清單處理程序
func NewHandler(service *groceryService.Service, debug bool) *Handler {
	return &Handler{
		service: service,
		debug:   debug,
	}
}

// HandleGetGroceryList GET /grocery-list?weeks=1,2
func (h *Handler) HandleGetGroceryList(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		h.respondError(c, common.ErrUnauthorized)
		return
	}

	weeks := groceryService.ParseWeeks(c.Query("weeks"))
	list, err := h.service.GetGroceryList(c.Request.Context(), userID, weeks)
	if err != nil {
		common.LogError("取得採買清單失敗",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("request_id", requestid.Get(c)),
		)
		h.respondError(c, common.ErrGroceryListFailed.WithError(err))
		return
	}

	c.JSON(http.StatusOK, list)
}

// HandleSaveCheck POST /grocery-list/checks
func (h *Handler) HandleSaveCheck(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		h.respondError(c, common.ErrUnauthorized)
		return
	}

	var req CheckRequest
	if err := common.DecodeJSON(c.Request.Body, &req); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty request body")
		}
		common.LogWarn("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestid.Get(c)),
		)
		h.respondError(c, common.ErrInvalidRequest.WithError(err))
		return
	}
	if strings.TrimSpace(req.ItemKey) == "" {
		h.respondError(c, common.ErrInvalidRequest.WithError(errors.New("itemKey is required")))
		return
	}
	if req.Checked == nil {
		h.respondError(c, common.ErrInvalidRequest.WithError(errors.New("checked is required")))
		return
	}

	result, err := h.service.SetGroceryCheck(c.Request.Context(), userID, req.ItemKey, *req.Checked)
	if err != nil {
		if common.IsValidationError(err) {
			h.respondError(c, common.ErrInvalidRequest.WithError(err))
			return
		}
		common.LogError("更新勾選狀態失敗",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("request_id", requestid.Get(c)),
		)
		h.respondError(c, common.ErrGroceryCheck.WithError(err))
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleClearChecks DELETE /grocery-list/checks
func (h *Handler) HandleClearChecks(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		h.respondError(c, common.ErrUnauthorized)
		return
	}

	if err := h.service.ClearGroceryChecks(c.Request.Context(), userID); err != nil {
		common.LogError("清除勾選狀態失敗",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("request_id", requestid.Get(c)),
		)
		h.respondError(c, common.ErrGroceryCheck.WithError(err))
		return
	}

	c.JSON(http.StatusOK, ClearResponse{Cleared: true})
}

// respondError 寫入錯誤響應
func (h *Handler) respondError(c *gin.Context, err *common.CustomError) {
	if err.Err != nil {
		_ = c.Error(err.Err)
	}
	c.AbortWithStatusJSON(err.Status, err.Response(h.debug))
}
