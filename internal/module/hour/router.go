package hour

import (
	"pomelox-server/internal/global/middleware"
	"pomelox-server/internal/global/permission"

	"github.com/gin-gonic/gin"
)

func (h *ModuleHour) InitRouter(r *gin.RouterGroup) {
	group := r.Group("/app/hour", middleware.Auth(permission.RoleStaff))

	group.POST("/signRecord", SignRecord)
	group.GET("/recordList", RecordList)
	group.GET("/lastRecordList", LastRecordList)
	group.GET("/hourList", HourList)
	group.GET("/userHour", UserHour)
	group.GET("/export", Export)

	admin := r.Group("/app/hour", middleware.Auth(permission.RoleManage))
	admin.POST("/autoCheckout", AutoCheckout)
}
