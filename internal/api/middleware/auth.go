package middleware

import (
	"Pulseboard/internal/api/config"
	"Pulseboard/internal/pkg/consts"
	"Pulseboard/internal/pkg/redis"
	"Pulseboard/internal/pkg/response"
	"Pulseboard/internal/pkg/security"
	"Pulseboard/internal/service"
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 从会话 Cookie 解析当前用户并注入 Context。
// 缺失、格式错误、已吊销、过期以及 Redis 故障对调用方完全不可区分，一律视为未认证（fail closed）
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(consts.SessionCookieName)
		if err != nil || token == "" {
			reject(c)
			return
		}

		signature, err := security.ExtractSignature(token)
		if err != nil {
			reject(c)
			return
		}

		revoked, err := redis.GetValue(c.Request.Context(), consts.SessionRevokedKey+signature)
		if err != nil || revoked != "" {
			reject(c)
			return
		}

		claims, err := security.ValidateToken(token)
		if err != nil {
			reject(c)
			return
		}

		c.Set("user_id", claims.UserID)

		newCtx := context.WithValue(c.Request.Context(), "user_id", claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}

// reject 浏览器页面请求重定向到登录页，API 请求返回统一的 401
func reject(c *gin.Context) {
	if prefersHTML(c) {
		c.Redirect(http.StatusFound, loginURL())
		c.Abort()
		return
	}
	response.Error(c, service.ErrUnauthorized)
	c.Abort()
}

func prefersHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

func loginURL() string {
	if config.Cfg != nil && config.Cfg.Auth.SiteURL != "" {
		return config.Cfg.Auth.SiteURL + "/login"
	}
	return "/login"
}
