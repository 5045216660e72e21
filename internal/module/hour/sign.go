package hour

import (
	"fmt"
	"time"

	"pomelox-server/config"
	"pomelox-server/internal/global/database"
	"pomelox-server/internal/global/jwt"
	"pomelox-server/internal/global/notify"
	"pomelox-server/internal/global/permission"
	"pomelox-server/internal/global/response"
	"pomelox-server/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	signTypeCheckIn  = 1
	signTypeCheckOut = 2
)

// SignRecordRequest 签到/签退请求。历史客户端以表单提交，保持兼容。
// 操作人信息一律取自令牌，表单里的 operate 字段仅作冗余不做依据
type SignRecordRequest struct {
	UserID           uint   `form:"userId"`
	Type             int    `form:"type" binding:"required"`
	StartTime        string `form:"startTime"`
	EndTime          string `form:"endTime"`
	ID               uint   `form:"id"`
	OperateUserID    uint   `form:"operateUserId"`
	OperateLegalName string `form:"operateLegalName"`
	Remark           string `form:"remark"`
}

// SignRecord 志愿者签到/签退入口，type=1 签到，type=2 签退。
// 所有写入都经过这一个事务入口，"同一用户最多一条未签退记录"在这里保证
func SignRecord(c *gin.Context) {
	var req SignRecordRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	switch req.Type {
	case signTypeCheckIn:
		checkIn(c, &req)
	case signTypeCheckOut:
		checkOut(c, &req)
	default:
		response.Fail(c, response.ErrInvalidRequest.WithTips("type 必须为 1（签到）或 2（签退）"))
	}
}

func checkIn(c *gin.Context, req *SignRecordRequest) {
	payload, _ := jwt.GetUserPayload(c)

	if req.UserID == 0 {
		response.Fail(c, response.ErrInvalidRequest.WithTips("userId 不能为空"))
		return
	}

	startTime := time.Now()
	if req.StartTime != "" {
		parsed, err := time.ParseInLocation(model.TimeLayout, req.StartTime, time.Local)
		if err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithTips("startTime 格式错误"))
			return
		}
		startTime = parsed
	}

	target, loadErr := loadTarget(req.UserID)
	if loadErr != nil {
		response.Fail(c, loadErr)
		return
	}
	if !permission.CanOperate(payload.Actor(), target.actor()) {
		log.Warn("签到权限不足",
			"operator_id", payload.UserID, "operator_role", payload.Role,
			"target_id", target.user.ID, "target_role", target.user.Role)
		response.Fail(c, response.ErrForbidden)
		return
	}

	record := model.VolunteerRecord{
		UserID:           target.user.ID,
		DeptID:           target.user.DeptID,
		StartTime:        startTime,
		Type:             model.RecordTypeNormal,
		LegalName:        target.user.LegalName,
		OperateUserID:    payload.UserID,
		OperateLegalName: payload.LegalName,
		Remark:           req.Remark,
	}

	var bizErr *response.Error
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var open model.VolunteerRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND end_time IS NULL", target.user.ID).
			First(&open).Error
		if err == nil {
			bizErr = response.ErrAlreadySignedIn
			return errors.New("open record exists")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			bizErr = response.ErrDatabase.WithOrigin(err)
			return err
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		if bizErr == nil {
			bizErr = response.ErrDatabase.WithOrigin(err)
		}
		response.Fail(c, bizErr)
		return
	}

	log.Info("志愿者签到成功",
		"record_id", record.ID, "user_id", record.UserID, "operator_id", payload.UserID)

	// 通知是尽力而为的副作用，失败不影响签到结果
	notify.Publish(c.Request.Context(), notify.Event{
		Kind:      "signin",
		UserID:    record.UserID,
		LegalName: record.LegalName,
		DeptID:    record.DeptID,
		RecordID:  record.ID,
		Time:      model.FormatTime(record.StartTime),
	})

	response.Success(c, recordView(&record))
}

func checkOut(c *gin.Context, req *SignRecordRequest) {
	payload, _ := jwt.GetUserPayload(c)

	endTime := time.Now()
	if req.EndTime != "" {
		parsed, err := time.ParseInLocation(model.TimeLayout, req.EndTime, time.Local)
		if err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithTips("endTime 格式错误"))
			return
		}
		endTime = parsed
	}

	var (
		record model.VolunteerRecord
		kind   CheckoutKind
		bizErr *response.Error
	)
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		query := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("end_time IS NULL")
		if req.ID != 0 {
			query = query.Where("id = ?", req.ID)
		} else if req.UserID != 0 {
			query = query.Where("user_id = ?", req.UserID)
		} else {
			bizErr = response.ErrInvalidRequest.WithTips("id 与 userId 不能同时为空")
			return errors.New("missing record identifier")
		}

		err := query.First(&record).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			bizErr = response.ErrNoOpenRecord
			return err
		case err != nil:
			bizErr = response.ErrDatabase.WithOrigin(err)
			return err
		}

		target, loadErr := loadTarget(record.UserID)
		if loadErr != nil {
			bizErr = loadErr
			return loadErr
		}
		if !permission.CanOperate(payload.Actor(), target.actor()) {
			log.Warn("签退权限不足",
				"operator_id", payload.UserID, "operator_role", payload.Role,
				"target_id", target.user.ID, "target_role", target.user.Role)
			bizErr = response.ErrForbidden
			return errors.New("forbidden")
		}

		// 时间先后校验必须发生在任何落库之前
		kind = ClassifyCheckout(record.StartTime, endTime, maxWorkDuration())
		if kind == CheckoutInvalid {
			log.Warn("签退时间不晚于签到时间",
				"record_id", record.ID,
				"start_time", model.FormatTime(record.StartTime),
				"end_time", model.FormatTime(endTime))
			bizErr = response.ErrTimeOrder
			return errors.New("end time not after start time")
		}

		return tx.Model(&record).Updates(map[string]any{
			"end_time":           endTime,
			"operate_user_id":    payload.UserID,
			"operate_legal_name": payload.LegalName,
		}).Error
	})
	if err != nil {
		if bizErr == nil {
			bizErr = response.ErrDatabase.WithOrigin(err)
		}
		response.Fail(c, bizErr)
		return
	}
	record.EndTime = &endTime

	log.Info("志愿者签退成功",
		"record_id", record.ID, "user_id", record.UserID,
		"duration_minutes", DurationMinutes(&record), "overtime", kind == CheckoutOvertime)

	notify.Publish(c.Request.Context(), notify.Event{
		Kind:      "signout",
		UserID:    record.UserID,
		LegalName: record.LegalName,
		DeptID:    record.DeptID,
		RecordID:  record.ID,
		Time:      model.FormatTime(endTime),
	})

	if kind == CheckoutOvertime {
		hours := endTime.Sub(record.StartTime).Hours()
		msg := fmt.Sprintf("签退成功。工作时长%.1f小时已超过建议的%d小时限制，请注意休息。",
			hours, config.Get().Hour.MaxWorkHours)
		response.SuccessWithMsg(c, msg, recordView(&record))
		return
	}
	response.Success(c, recordView(&record))
}

// targetUser 被操作的志愿者
type targetUser struct {
	user model.User
}

func (t *targetUser) actor() permission.Actor {
	return permission.Actor{
		UserID: t.user.ID,
		DeptID: t.user.DeptID,
		Role:   permission.Role(t.user.Role),
	}
}

func loadTarget(userID uint) (*targetUser, *response.Error) {
	var user model.User
	err := database.DB.First(&user, userID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, response.ErrNotFound.WithTips("志愿者不存在")
	case err != nil:
		return nil, response.ErrDatabase.WithOrigin(err)
	}
	return &targetUser{user: user}, nil
}
