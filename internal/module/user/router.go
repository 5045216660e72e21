package user

import (
	"pomelox-server/internal/global/middleware"
	"pomelox-server/internal/global/permission"

	"github.com/gin-gonic/gin"
)

// InitRouter 挂载用户相关端点。登录与注册无需令牌，
// 其余端点至少需要 common 角色的有效令牌
func (u *ModuleUser) InitRouter(r *gin.RouterGroup) {
	app := r.Group("/app")
	app.POST("/login", Login)
	app.POST("/register", Register)

	authed := app.Group("/user", middleware.Auth(permission.RoleCommon))
	authed.GET("/info", Info)
	authed.GET("/searchByPhone", SearchByPhone)

	system := r.Group("/system/user", middleware.Auth(permission.RoleStaff))
	system.GET("/list", List)
}
