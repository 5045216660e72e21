package activity

import (
	"pomelox-server/internal/global/middleware"
	"pomelox-server/internal/global/permission"

	"github.com/gin-gonic/gin"
)

func (a *ModuleActivity) InitRouter(r *gin.RouterGroup) {
	group := r.Group("/app/activity", middleware.Auth(permission.RoleCommon))

	group.GET("/list", List)
	group.GET("/get/:id", Get)
	group.POST("/enroll", Enroll)
	group.POST("/signIn", SignIn)

	// 活动创建仅限管理端
	admin := r.Group("/app/activity", middleware.Auth(permission.RolePartManage))
	admin.POST("/create", Create)
}
