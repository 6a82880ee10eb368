package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Eltons-gt/semester-schedule-manager-app/internal/dto"
	"github.com/Eltons-gt/semester-schedule-manager-app/internal/model"
	"github.com/Eltons-gt/semester-schedule-manager-app/internal/repository"
	"github.com/Eltons-gt/semester-schedule-manager-app/internal/schedule"
)

// ── 课程模块业务错误 ──

var (
	ErrCourseNameRequired       = errors.New("课程名称不能为空")
	ErrCourseInstructorRequired = errors.New("授课教师不能为空")
	ErrCourseDaysRequired       = errors.New("至少选择一个上课日")
	ErrCourseDayUnknown         = errors.New("上课日包含未知的星期缩写")
	ErrCourseTimeMalformed      = errors.New("上课时间格式无效，应为 24 小时制 HH:MM")
	ErrCourseTimeOrder          = errors.New("开始时间必须早于结束时间")
	ErrCourseNotFound           = errors.New("课程不存在")
)

// defaultCourseColor 未指定颜色时的默认值（与前端色板首项一致）
const defaultCourseColor = "#3B82F6"

// ── CourseService 接口 ──────────────────────────────────
//
// 设计说明：
//   - 校验在任何持久化调用之前完成，校验失败的保存整体拒绝。
//   - Create/Update 成功后按 ID 重新读取一次，响应始终来自存储层的
//     权威读取，而不是内存中的请求数据（变更后取新快照的两步协定）。
//   - 保存时对 days 去重并按周一到周日规范排序；强制 start < end。
// ─────────────────────────────────────────────────────────────

// CourseService 课程模块业务接口
type CourseService interface {
	Create(ctx context.Context, req *dto.SaveCourseRequest, userID string) (*dto.CourseResponse, error)
	Update(ctx context.Context, id string, req *dto.SaveCourseRequest, userID string) (*dto.CourseResponse, error)
	Delete(ctx context.Context, id, userID string) error
	List(ctx context.Context, userID string) (*dto.CourseListResponse, error)
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

func (s *courseService) Create(ctx context.Context, req *dto.SaveCourseRequest, userID string) (*dto.CourseResponse, error) {
	course, err := buildValidatedCourse(req)
	if err != nil {
		return nil, err
	}
	course.UserID = userID

	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("创建课程失败", zap.Error(err))
		return nil, err
	}

	// 权威读取：响应来自存储层分配过 ID 的新快照
	created, err := s.repo.Course.GetByOwner(ctx, course.CourseID, userID)
	if err != nil {
		s.logger.Error("回读新建课程失败", zap.Error(err), zap.String("courseID", course.CourseID))
		return nil, err
	}

	resp, err := toCourseResponse(*created)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *courseService) Update(ctx context.Context, id string, req *dto.SaveCourseRequest, userID string) (*dto.CourseResponse, error) {
	course, err := buildValidatedCourse(req)
	if err != nil {
		return nil, err
	}
	course.CourseID = id
	course.UserID = userID

	if err := s.repo.Course.Update(ctx, course); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("更新课程失败", zap.Error(err), zap.String("courseID", id))
		return nil, err
	}

	updated, err := s.repo.Course.GetByOwner(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	resp, err := toCourseResponse(*updated)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *courseService) Delete(ctx context.Context, id, userID string) error {
	if err := s.repo.Course.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		s.logger.Error("删除课程失败", zap.Error(err), zap.String("courseID", id))
		return err
	}
	return nil
}

func (s *courseService) List(ctx context.Context, userID string) (*dto.CourseListResponse, error) {
	courses, err := s.repo.Course.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询课程列表失败", zap.Error(err))
		return nil, err
	}

	items := make([]dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		resp, err := toCourseResponse(c)
		if err != nil {
			// 存储层出现无法解析的时刻（如被手工改动的数据文件），跳过并告警
			s.logger.Warn("课程记录时刻无法解析，已跳过", zap.String("courseID", c.CourseID), zap.Error(err))
			continue
		}
		items = append(items, resp)
	}

	return &dto.CourseListResponse{Courses: items, Total: len(items)}, nil
}

// ── 校验与转换 ──

// buildValidatedCourse 校验保存请求并构建待持久化的课程记录。
// 任何校验失败都发生在持久化之前，保存整体被拒绝。
func buildValidatedCourse(req *dto.SaveCourseRequest) (*model.Course, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrCourseNameRequired
	}
	instructor := strings.TrimSpace(req.Instructor)
	if instructor == "" {
		return nil, ErrCourseInstructorRequired
	}
	if len(req.Days) == 0 {
		return nil, ErrCourseDaysRequired
	}

	days := make([]schedule.Weekday, 0, len(req.Days))
	for _, d := range req.Days {
		day, err := schedule.ParseWeekday(d)
		if err != nil {
			return nil, ErrCourseDayUnknown
		}
		days = append(days, day)
	}
	// 去重并按周一到周日规范排序
	days = schedule.SortDays(days)

	start, err := schedule.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, ErrCourseTimeMalformed
	}
	end, err := schedule.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return nil, ErrCourseTimeMalformed
	}
	if start.Minutes() >= end.Minutes() {
		return nil, ErrCourseTimeOrder
	}

	color := req.Color
	if color == "" {
		color = defaultCourseColor
	}

	dayStrings := make(model.StringArray, 0, len(days))
	for _, d := range days {
		dayStrings = append(dayStrings, string(d))
	}

	return &model.Course{
		Name:       name,
		Instructor: instructor,
		Location:   strings.TrimSpace(req.Location),
		StartTime:  start.String(),
		EndTime:    end.String(),
		Days:       dayStrings,
		Color:      color,
	}, nil
}

// toScheduleCourse 将存储记录转换为查询引擎的值对象（解析边界）
func toScheduleCourse(c model.Course) (schedule.Course, error) {
	start, err := schedule.ParseTimeOfDay(c.StartTime)
	if err != nil {
		return schedule.Course{}, err
	}
	end, err := schedule.ParseTimeOfDay(c.EndTime)
	if err != nil {
		return schedule.Course{}, err
	}
	days := make([]schedule.Weekday, 0, len(c.Days))
	for _, d := range c.Days {
		day, err := schedule.ParseWeekday(d)
		if err != nil {
			return schedule.Course{}, err
		}
		days = append(days, day)
	}
	return schedule.Course{
		ID:         c.CourseID,
		Name:       c.Name,
		Instructor: c.Instructor,
		Location:   c.Location,
		Start:      start,
		End:        end,
		Days:       days,
		Color:      c.Color,
	}, nil
}

// toCourseResponse 构建课程响应（含 12 小时制展示文本）
func toCourseResponse(c model.Course) (dto.CourseResponse, error) {
	sc, err := toScheduleCourse(c)
	if err != nil {
		return dto.CourseResponse{}, err
	}
	return scheduleCourseResponse(sc), nil
}

func scheduleCourseResponse(c schedule.Course) dto.CourseResponse {
	days := make([]string, 0, len(c.Days))
	for _, d := range c.Days {
		days = append(days, string(d))
	}
	return dto.CourseResponse{
		ID:           c.ID,
		Name:         c.Name,
		Instructor:   c.Instructor,
		Location:     c.Location,
		StartTime:    c.Start.String(),
		EndTime:      c.End.String(),
		StartDisplay: c.Start.Display(),
		EndDisplay:   c.End.Display(),
		Days:         days,
		Color:        c.Color,
	}
}
