package module

import (
	"pomelox-server/internal/module/activity"
	"pomelox-server/internal/module/hour"
	"pomelox-server/internal/module/ping"
	"pomelox-server/internal/module/user"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&ping.ModulePing{},
		&user.ModuleUser{},
		&activity.ModuleActivity{},
		&hour.ModuleHour{},
	})
}
