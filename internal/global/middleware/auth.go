package middleware

import (
	"strings"

	"pomelox-server/internal/global/jwt"
	"pomelox-server/internal/global/permission"
	"pomelox-server/internal/global/response"

	"github.com/gin-gonic/gin"
)

// Auth 校验 Bearer 令牌并检查最低角色要求，
// payload 写入 gin.Context 供 handler 读取
func Auth(minRole permission.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		payload, valid := jwt.ParseToken(token)
		if !valid {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}
		if payload.Role.Level() < minRole.Level() {
			response.Fail(c, response.ErrForbidden)
			c.Abort()
			return
		}
		c.Set("payload", payload)
		c.Next()
	}
}
