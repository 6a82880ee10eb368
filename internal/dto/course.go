package dto

// ── 课程模块 DTO ──

// SaveCourseRequest 新建/更新课程请求
//
// 更新是整条替换而不是字段合并，因此与新建共用同一请求结构，
// 所有必填约束在两种场景下一致。
type SaveCourseRequest struct {
	Name       string   `json:"name"       binding:"required,max=100"`
	Instructor string   `json:"instructor" binding:"required,max=100"`
	Location   string   `json:"location"   binding:"omitempty,max=200"`
	StartTime  string   `json:"start_time" binding:"required"`
	EndTime    string   `json:"end_time"   binding:"required"`
	Days       []string `json:"days"       binding:"required,min=1,dive,oneof=Mon Tue Wed Thu Fri Sat Sun"`
	Color      string   `json:"color"      binding:"omitempty,hexcolor"`
}

// CourseResponse 课程响应
type CourseResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Instructor   string   `json:"instructor"`
	Location     string   `json:"location"`
	StartTime    string   `json:"start_time"`    // 24 小时制 HH:MM
	EndTime      string   `json:"end_time"`      //
	StartDisplay string   `json:"start_display"` // 12 小时制 h:MM AM/PM
	EndDisplay   string   `json:"end_display"`   //
	Days         []string `json:"days"`
	Color        string   `json:"color"`
}

// CourseListResponse 全部课程视图响应
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
	Total   int              `json:"total"`
}
