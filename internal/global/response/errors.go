package response

// 通用错误码与业务错误码。HTTP 状态码始终为 200，前端依据 code 字段分流：
// 401 统一视为登录失效，403 统一视为权限不足
var (
	ErrInvalidRequest  = newError(400, "请求参数错误")
	ErrTokenInvalid    = newError(401, "登录已过期，请重新登录")
	ErrForbidden       = newError(403, "权限不足")
	ErrNotFound        = newError(404, "资源不存在")
	ErrAlreadyExists   = newError(409, "资源已存在")
	ErrDatabase        = newError(500, "服务器内部错误")
	ErrInvalidPassword = newError(1000, "账号或密码错误")

	// 志愿者签到/签退相关
	ErrAlreadySignedIn = newError(1101, "该志愿者已签到，请勿重复签到")
	ErrNoOpenRecord    = newError(1102, "该志愿者没有未签退的记录")
	ErrTimeOrder       = newError(1103, "本次工作时间记录失败，请联系管理员进行时间补充")

	// 活动报名相关
	ErrAlreadyEnrolled = newError(1201, "已报名该活动，请勿重复报名")
	ErrNotEnrolled     = newError(1202, "未报名该活动，无法签到")
	ErrEnrollClosed    = newError(1203, "不在活动报名时间范围内")
	ErrEnrollFull      = newError(1204, "活动报名人数已满")
)
