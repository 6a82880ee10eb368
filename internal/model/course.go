package model

// Course 课程表 — 对应 courses
//
// start_time / end_time 以 "HH:MM" 文本持久化，解析与比较在查询引擎边界完成；
// days 为星期缩写集合（Mon..Sun），保存时已去重并按周一到周日规范排序。
// 同一 course_id 即同一实体；更新是整条字段替换，不做合并，无软删除、无版本号。
type Course struct {
	CourseID   string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"course_id"`
	UserID     string      `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Name       string      `gorm:"type:varchar(100);not null"                     json:"name"`
	Instructor string      `gorm:"type:varchar(100);not null"                     json:"instructor"`
	Location   string      `gorm:"type:varchar(200)"                              json:"location"`
	StartTime  string      `gorm:"type:varchar(5);not null"                       json:"start_time"` // HH:MM
	EndTime    string      `gorm:"type:varchar(5);not null"                       json:"end_time"`   // HH:MM
	Days       StringArray `gorm:"type:text[];not null"                           json:"days"`
	Color      string      `gorm:"type:varchar(7);not null;default:'#3B82F6'"     json:"color"`
	BaseModel
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }
