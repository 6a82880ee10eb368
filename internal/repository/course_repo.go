package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Eltons-gt/semester-schedule-manager-app/internal/model"
)

// CourseRepository 课程数据访问接口
//
// 两种实现：
//   - courseRepo:     PostgreSQL，按 user_id 隔离多用户数据
//   - fileCourseRepo: 本地 JSON 文件，单一隐式所有者（离线模式）
//
// 记录不存在或不属于指定用户时统一返回 gorm.ErrRecordNotFound，
// 上层据此映射为"未找到"，不区分"存在但无权访问"。
type CourseRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.Course, error)
	GetByOwner(ctx context.Context, id, userID string) (*model.Course, error)
	Create(ctx context.Context, course *model.Course) error
	// Update 整条替换（不做字段合并），按 course_id + user_id 定位
	Update(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, id, userID string) error
}

// courseRepo CourseRepository 的 GORM 实现
type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo 创建 CourseRepository 实例
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) ListByUser(ctx context.Context, userID string) ([]model.Course, error) {
	var courses []model.Course
	// 快照顺序以创建时间为准，查询引擎的稳定排序依赖确定的输入顺序
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, course_id ASC").
		Find(&courses).Error
	return courses, err
}

func (r *courseRepo) GetByOwner(ctx context.Context, id, userID string) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Where("course_id = ? AND user_id = ?", id, userID).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepo) Update(ctx context.Context, course *model.Course) error {
	result := r.db.WithContext(ctx).
		Model(&model.Course{}).
		Where("course_id = ? AND user_id = ?", course.CourseID, course.UserID).
		Updates(map[string]interface{}{
			"name":       course.Name,
			"instructor": course.Instructor,
			"location":   course.Location,
			"start_time": course.StartTime,
			"end_time":   course.EndTime,
			"days":       course.Days,
			"color":      course.Color,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *courseRepo) Delete(ctx context.Context, id, userID string) error {
	result := r.db.WithContext(ctx).
		Where("course_id = ? AND user_id = ?", id, userID).
		Delete(&model.Course{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
