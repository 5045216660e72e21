package user

import (
	"strconv"

	"pomelox-server/internal/global/database"
	"pomelox-server/internal/global/jwt"
	"pomelox-server/internal/global/permission"
	"pomelox-server/internal/global/response"
	"pomelox-server/internal/model"
	"pomelox-server/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// LoginRequest 手机号加密码登录
type LoginRequest struct {
	Phone    string `json:"phonenumber" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 处理用户登录请求
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定登录请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var user model.User
	err := database.DB.Where("phone = ?", req.Phone).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("用户不存在", "phone", req.Phone)
		// 不暴露账号是否存在
		response.Fail(c, response.ErrInvalidPassword)
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "phone", req.Phone)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !tools.PasswordCompare(req.Password, user.Password) {
		log.Warn("密码错误", "phone", req.Phone)
		response.Fail(c, response.ErrInvalidPassword)
		return
	}

	log.Info("用户登录成功", "user_id", user.ID, "role", user.Role)

	response.Success(c, gin.H{
		"token": jwt.CreateToken(jwt.Payload{
			UserID:    user.ID,
			DeptID:    user.DeptID,
			LegalName: user.LegalName,
			Role:      permission.Role(user.Role),
		}),
		"user": user,
	})
}

// RegisterRequest 注册请求，角色由后台另行分配，注册用户一律 common
type RegisterRequest struct {
	UserName  string `json:"userName" binding:"required"`
	LegalName string `json:"legalName" binding:"required"`
	NickName  string `json:"nickName"`
	Phone     string `json:"phonenumber" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	DeptID    uint   `json:"deptId" binding:"required"`
}

// Register 处理用户注册请求
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定注册请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var count int64
	if err := database.DB.Model(&model.User{}).Where("phone = ?", req.Phone).Count(&count).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if count > 0 {
		response.Fail(c, response.ErrAlreadyExists.WithTips("该手机号已注册"))
		return
	}

	user := model.User{
		UserName:  req.UserName,
		LegalName: req.LegalName,
		NickName:  req.NickName,
		Phone:     req.Phone,
		Password:  tools.PasswordEncrypt(req.Password),
		DeptID:    req.DeptID,
		Role:      string(permission.RoleCommon),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		log.Error("创建用户失败", "error", err, "phone", req.Phone)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("用户注册成功", "user_id", user.ID)
	response.Success(c, user)
}

// Info 查询用户信息。查本人直接放行，查他人需要权限范围覆盖目标
func Info(c *gin.Context) {
	payload, _ := jwt.GetUserPayload(c)

	userID := payload.UserID
	if raw := c.Query("userId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
			return
		}
		userID = uint(parsed)
	}

	var user model.User
	err := database.DB.First(&user, userID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
		return
	case err != nil:
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if userID != payload.UserID {
		target := permission.Actor{UserID: user.ID, DeptID: user.DeptID, Role: permission.Role(user.Role)}
		if !permission.CanOperate(payload.Actor(), target) {
			response.Fail(c, response.ErrForbidden)
			return
		}
	}

	response.Success(c, user)
}

// SearchByPhone 按手机号精确查询用户，用于管理端代签到前定位志愿者
func SearchByPhone(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("手机号不能为空"))
		return
	}

	var user model.User
	err := database.DB.Where("phone = ?", phone).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
		return
	case err != nil:
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, user)
}

// List 用户列表，按角色收敛可见范围：
// manage 全量，part_manage 本校，staff 仅本人
func List(c *gin.Context) {
	payload, _ := jwt.GetUserPayload(c)
	scope := permission.ScopeOf(payload.Actor())

	query := database.DB.Model(&model.User{})
	if scope.DeptID != nil {
		query = query.Where("dept_id = ?", *scope.DeptID)
	}
	if scope.UserID != nil {
		query = query.Where("id = ?", *scope.UserID)
	}

	var users []model.User
	if err := query.Order("id").Find(&users).Error; err != nil {
		log.Error("查询用户列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"rows":  users,
		"total": len(users),
	})
}
