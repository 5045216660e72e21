package hour

import (
	"fmt"
	"strconv"
	"time"

	"pomelox-server/internal/global/database"
	"pomelox-server/internal/global/jwt"
	"pomelox-server/internal/global/permission"
	"pomelox-server/internal/global/response"
	"pomelox-server/internal/model"
	"pomelox-server/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// RecordView 接口返回的记录视图，时间统一格式化为字符串
type RecordView struct {
	ID               uint   `json:"id"`
	UserID           uint   `json:"userId"`
	DeptID           uint   `json:"deptId"`
	LegalName        string `json:"legalName"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"` // 未签退时为空串
	Type             int    `json:"type"`
	OperateUserID    uint   `json:"operateUserId"`
	OperateLegalName string `json:"operateLegalName"`
	Remark           string `json:"remark"`
	DurationMinutes  int    `json:"durationMinutes"` // 未签退时为 0
}

func recordView(r *model.VolunteerRecord) RecordView {
	return RecordView{
		ID:               r.ID,
		UserID:           r.UserID,
		DeptID:           r.DeptID,
		LegalName:        r.LegalName,
		StartTime:        model.FormatTime(r.StartTime),
		EndTime:          model.FormatTimePtr(r.EndTime),
		Type:             r.Type,
		OperateUserID:    r.OperateUserID,
		OperateLegalName: r.OperateLegalName,
		Remark:           r.Remark,
		DurationMinutes:  DurationMinutes(r),
	}
}

// scopedQuery 按角色收敛查询范围并叠加请求过滤条件，
// 请求越出可见范围时返回 false
func scopedQuery(c *gin.Context, base *gorm.DB) (*gorm.DB, bool) {
	payload, _ := jwt.GetUserPayload(c)
	scope := permission.ScopeOf(payload.Actor())

	var deptID, userID *uint
	if raw := c.Query("deptId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, false
		}
		v := uint(parsed)
		deptID = &v
	}
	if raw := c.Query("userId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, false
		}
		v := uint(parsed)
		userID = &v
	}

	narrowed, ok := scope.Narrow(deptID, userID)
	if !ok {
		return nil, false
	}

	query := base
	if narrowed.DeptID != nil {
		query = query.Where("dept_id = ?", *narrowed.DeptID)
	}
	if narrowed.UserID != nil {
		query = query.Where("user_id = ?", *narrowed.UserID)
	}
	return query, true
}

// RecordList 签到记录列表，按角色范围过滤
func RecordList(c *gin.Context) {
	query, ok := scopedQuery(c, database.DB.Model(&model.VolunteerRecord{}))
	if !ok {
		response.Fail(c, response.ErrForbidden)
		return
	}

	var records []model.VolunteerRecord
	if err := query.Order("start_time DESC").Find(&records).Error; err != nil {
		log.Error("查询签到记录失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	rows := make([]RecordView, 0, len(records))
	for i := range records {
		rows = append(rows, recordView(&records[i]))
	}
	response.Success(c, gin.H{
		"rows":  rows,
		"total": len(rows),
	})
}

// LastRecordList 用户最近一条签到记录，客户端用它推导会话状态
func LastRecordList(c *gin.Context) {
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

	if userID != payload.UserID {
		target, loadErr := loadTarget(userID)
		if loadErr != nil {
			response.Fail(c, loadErr)
			return
		}
		if !permission.CanOperate(payload.Actor(), target.actor()) {
			response.Fail(c, response.ErrForbidden)
			return
		}
	}

	var record model.VolunteerRecord
	err := database.DB.Where("user_id = ?", userID).
		Order("start_time DESC").First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Success(c, gin.H{
				"record": nil,
				"state":  StateNotSignedIn,
			})
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"record": recordView(&record),
		"state":  StateOf(&record),
	})
}

// hourRow 工时汇总行，同时用于 Excel 导出
type hourRow struct {
	UserID       uint    `json:"userId" excel:"用户ID"`
	LegalName    string  `json:"legalName" excel:"姓名"`
	DeptID       uint    `json:"deptId" excel:"学校ID"`
	TotalMinutes int     `json:"totalMinutes" excel:"总时长(分钟)"`
	TotalHours   float64 `json:"totalHours" excel:"总时长(小时)"`
}

// sumHours 统计已签退记录的累计工时。未签退的记录不计入
func sumHours(query *gorm.DB) ([]hourRow, error) {
	var rows []hourRow
	err := query.
		Select("user_id, legal_name, dept_id, " +
			"SUM(TIMESTAMPDIFF(MINUTE, start_time, end_time)) AS total_minutes").
		Where("end_time IS NOT NULL").
		Group("user_id, legal_name, dept_id").
		Order("total_minutes DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].TotalHours = float64(rows[i].TotalMinutes) / 60
	}
	return rows, nil
}

// HourList 按用户汇总的工时列表
func HourList(c *gin.Context) {
	query, ok := scopedQuery(c, database.DB.Model(&model.VolunteerRecord{}))
	if !ok {
		response.Fail(c, response.ErrForbidden)
		return
	}

	rows, err := sumHours(query)
	if err != nil {
		log.Error("统计工时失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, gin.H{
		"rows":  rows,
		"total": len(rows),
	})
}

// UserHour 单个用户的累计工时
func UserHour(c *gin.Context) {
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

	if userID != payload.UserID {
		target, loadErr := loadTarget(userID)
		if loadErr != nil {
			response.Fail(c, loadErr)
			return
		}
		if !permission.CanOperate(payload.Actor(), target.actor()) {
			response.Fail(c, response.ErrForbidden)
			return
		}
	}

	rows, err := sumHours(database.DB.Model(&model.VolunteerRecord{}).
		Where("user_id = ?", userID))
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	result := hourRow{UserID: userID}
	if len(rows) > 0 {
		result = rows[0]
	}
	response.Success(c, result)
}

// Export 导出工时汇总 Excel，文件名带日期
func Export(c *gin.Context) {
	query, ok := scopedQuery(c, database.DB.Model(&model.VolunteerRecord{}))
	if !ok {
		response.Fail(c, response.ErrForbidden)
		return
	}

	rows, err := sumHours(query)
	if err != nil {
		log.Error("导出工时统计失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := tools.ExportToExcel(f, "志愿者工时", rows); err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	name := fmt.Sprintf("志愿者工时统计_%s.xlsx", time.Now().Format("20060102"))
	if err := tools.SendExcel(c, f, name); err != nil {
		log.Error("写出 Excel 失败", "error", err)
	}
}
