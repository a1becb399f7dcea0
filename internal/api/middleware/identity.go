package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"meal-rotation/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// UserIDHeader 上游認證服務設定的使用者 ID
	UserIDHeader = "X-User-ID"

	userIDKey = "user_id"
)

// UserIdentity 從標頭取得已認證的使用者 ID
func UserIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(UserIDHeader))
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			common.LogWarn("使用者身分無效",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", requestid.Get(c)),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.ErrUnauthorized.Response(false))
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID 取得 UserIdentity 設定的使用者 ID
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
