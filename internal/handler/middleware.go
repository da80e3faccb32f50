package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hanif-mianjee/news-aggregator/internal/service"
)

// ContextUserKey 认证中间件写入的当前用户ID
const ContextUserKey = "userID"

// AuthRequired 校验Bearer token,把解析出的用户ID放进请求上下文
func AuthRequired(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
			return
		}

		userID, err := auth.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
			return
		}

		c.Set(ContextUserKey, userID)
		c.Next()
	}
}

// currentUserID 读取中间件写入的用户ID
func currentUserID(c *gin.Context) uint {
	return c.GetUint(ContextUserKey)
}
