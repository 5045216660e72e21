package activity

import (
	"strconv"
	"time"

	"pomelox-server/internal/global/database"
	"pomelox-server/internal/global/jwt"
	"pomelox-server/internal/global/response"
	"pomelox-server/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateRequest 创建活动请求。时间字段沿用 "2006-01-02 15:04:05" 字符串格式
type CreateRequest struct {
	Name          string `json:"name" binding:"required"`
	Icon          string `json:"icon"`
	StartTime     string `json:"startTime" binding:"required"`
	EndTime       string `json:"endTime" binding:"required"`
	TimeZone      string `json:"timeZone"`
	Address       string `json:"address"`
	Enrollment    int    `json:"enrollment"`
	Detail        string `json:"detail"`
	SignStartTime string `json:"signStartTime"`
	SignEndTime   string `json:"signEndTime"`
	CategoryID    uint   `json:"categoryId"`
}

// Create 创建活动
func Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	payload, _ := jwt.GetUserPayload(c)

	activity := model.Activity{
		Name:          req.Name,
		Icon:          req.Icon,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		TimeZone:      req.TimeZone,
		Address:       req.Address,
		Enrollment:    req.Enrollment,
		Detail:        req.Detail,
		SignStartTime: req.SignStartTime,
		SignEndTime:   req.SignEndTime,
		Enabled:       1,
		CategoryID:    req.CategoryID,
		CreateUserID:  payload.UserID,
	}
	if err := database.DB.Create(&activity).Error; err != nil {
		log.Error("创建活动失败", "error", err, "name", req.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("活动创建成功", "activity_id", activity.ID, "create_user_id", payload.UserID)
	response.Success(c, activity)
}

// List 活动列表。每行携带观察者自己的报名状态和全局报名人数，
// 适配为视图后按紧急程度排序
func List(c *gin.Context) {
	payload, _ := jwt.GetUserPayload(c)
	language := c.DefaultQuery("language", "zh")

	viewerID := payload.UserID
	if raw := c.Query("userId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
			return
		}
		viewerID = uint(parsed)
	}

	var activities []model.Activity
	if err := database.DB.Where("enabled = ?", 1).Find(&activities).Error; err != nil {
		log.Error("查询活动列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	counts, err := registerCounts(database.DB)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	signStatuses, err := viewerSignStatuses(database.DB, viewerID)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	now := time.Now()
	views := make([]View, 0, len(activities))
	for i := range activities {
		a := &activities[i]
		views = append(views, Adapt(a, signStatuses[a.ID], counts[a.ID], language, now))
	}
	Sort(views, now)

	response.Success(c, gin.H{
		"rows":  views,
		"total": len(views),
	})
}

// Get 活动详情，同样带观察者报名状态
func Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	payload, _ := jwt.GetUserPayload(c)
	language := c.DefaultQuery("language", "zh")

	var activity model.Activity
	err = database.DB.First(&activity, id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("活动不存在"))
		return
	case err != nil:
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var count int64
	if err := database.DB.Model(&model.Enrollment{}).
		Where("activity_id = ?", activity.ID).Count(&count).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	signStatus := model.SignStatusNone
	var enrollment model.Enrollment
	err = database.DB.Where("activity_id = ? AND user_id = ?", activity.ID, payload.UserID).
		First(&enrollment).Error
	if err == nil {
		signStatus = enrollment.SignStatus
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, Adapt(&activity, signStatus, int(count), language, time.Now()))
}

// EnrollRequest 报名与活动签到共用的请求体
type EnrollRequest struct {
	ActivityID uint `json:"activityId" binding:"required"`
}

// Enroll 报名活动，事务内校验报名窗口、容量与重复报名
func Enroll(c *gin.Context) {
	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	payload, _ := jwt.GetUserPayload(c)

	var bizErr *response.Error
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var activity model.Activity
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&activity, req.ActivityID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			bizErr = response.ErrNotFound.WithTips("活动不存在")
			return err
		case err != nil:
			bizErr = response.ErrDatabase.WithOrigin(err)
			return err
		}

		if activity.Enabled != 1 {
			bizErr = response.ErrNotFound.WithTips("活动已下线")
			return errors.New("activity disabled")
		}
		if !canRegister(&activity, time.Now()) {
			bizErr = response.ErrEnrollClosed
			return errors.New("enroll window closed")
		}

		var existing model.Enrollment
		err = tx.Where("activity_id = ? AND user_id = ?", activity.ID, payload.UserID).
			First(&existing).Error
		if err == nil {
			bizErr = response.ErrAlreadyEnrolled
			return errors.New("already enrolled")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			bizErr = response.ErrDatabase.WithOrigin(err)
			return err
		}

		if activity.Enrollment > 0 {
			var count int64
			if err := tx.Model(&model.Enrollment{}).
				Where("activity_id = ?", activity.ID).Count(&count).Error; err != nil {
				bizErr = response.ErrDatabase.WithOrigin(err)
				return err
			}
			if count >= int64(activity.Enrollment) {
				bizErr = response.ErrEnrollFull
				return errors.New("enrollment full")
			}
		}

		return tx.Create(&model.Enrollment{
			ActivityID: activity.ID,
			UserID:     payload.UserID,
			SignStatus: model.SignStatusRegistered,
		}).Error
	})
	if err != nil {
		if bizErr == nil {
			bizErr = response.ErrDatabase.WithOrigin(err)
		}
		response.Fail(c, bizErr)
		return
	}

	log.Info("活动报名成功", "activity_id", req.ActivityID, "user_id", payload.UserID)
	response.Success(c)
}

// SignIn 活动现场签到，报名状态 -1 → 1
func SignIn(c *gin.Context) {
	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	payload, _ := jwt.GetUserPayload(c)

	var enrollment model.Enrollment
	err := database.DB.Where("activity_id = ? AND user_id = ?", req.ActivityID, payload.UserID).
		First(&enrollment).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotEnrolled)
		return
	case err != nil:
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if enrollment.SignStatus == model.SignStatusCheckedIn {
		response.Fail(c, response.ErrAlreadySignedIn.WithTips("已签到，请勿重复签到"))
		return
	}

	if err := database.DB.Model(&enrollment).
		Update("sign_status", model.SignStatusCheckedIn).Error; err != nil {
		log.Error("活动签到失败", "error", err, "activity_id", req.ActivityID, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("活动签到成功", "activity_id", req.ActivityID, "user_id", payload.UserID)
	response.Success(c)
}

// registerCounts 各活动的报名人数
func registerCounts(db *gorm.DB) (map[uint]int, error) {
	var rows []struct {
		ActivityID uint
		Count      int
	}
	err := db.Model(&model.Enrollment{}).
		Select("activity_id, COUNT(*) AS count").
		Group("activity_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int, len(rows))
	for _, row := range rows {
		counts[row.ActivityID] = row.Count
	}
	return counts, nil
}

// viewerSignStatuses 观察者在各活动上的报名状态，未报名的活动不在 map 中（取零值 0）
func viewerSignStatuses(db *gorm.DB, userID uint) (map[uint]int, error) {
	var enrollments []model.Enrollment
	if err := db.Where("user_id = ?", userID).Find(&enrollments).Error; err != nil {
		return nil, err
	}
	statuses := make(map[uint]int, len(enrollments))
	for _, e := range enrollments {
		statuses[e.ActivityID] = e.SignStatus
	}
	return statuses, nil
}
