package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Eltons-gt/semester-schedule-manager-app/internal/dto"
	"github.com/Eltons-gt/semester-schedule-manager-app/internal/model"
	"github.com/Eltons-gt/semester-schedule-manager-app/internal/repository"
	"github.com/Eltons-gt/semester-schedule-manager-app/internal/schedule"
)

// ── TimetableService 接口 ──────────────────────────────────
//
// 设计说明：
//   - 视图是对一次 ListByUser 快照的纯投影，过滤、排序、状态分类
//     全部委托给 internal/schedule 的查询引擎。
//   - "现在" 由调用方传入，本服务在一次渲染中只折算一次分钟数，
//     状态不会在两次请求之间自行变化（无定时器驱动的重分类）。
// ─────────────────────────────────────────────────────────────

// TimetableService 时间表视图业务接口
type TimetableService interface {
	// GetToday 今日视图：当天课程按开始时刻升序，并标注进行状态
	GetToday(ctx context.Context, userID string, now time.Time) (*dto.TodayViewResponse, error)
	// GetWeek 周视图：周一到周日七列网格
	GetWeek(ctx context.Context, userID string) (*dto.WeekViewResponse, error)
}

type timetableService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTimetableService 创建 TimetableService 实例
func NewTimetableService(repo *repository.Repository, logger *zap.Logger) TimetableService {
	return &timetableService{repo: repo, logger: logger}
}

func (s *timetableService) GetToday(ctx context.Context, userID string, now time.Time) (*dto.TodayViewResponse, error) {
	snapshot, err := s.loadSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	day := schedule.WeekdayOf(now)
	nowMinutes := schedule.ClockMinutes(now) // 本次渲染只计算一次

	todays := schedule.CoursesOnDay(snapshot, day)
	items := make([]dto.TodayCourseItem, 0, len(todays))
	for _, c := range todays {
		items = append(items, dto.TodayCourseItem{
			CourseResponse: scheduleCourseResponse(c),
			Status:         string(schedule.Classify(c, nowMinutes)),
		})
	}

	return &dto.TodayViewResponse{
		Date:    now.Format("2006-01-02"),
		Day:     string(day),
		Courses: items,
	}, nil
}

func (s *timetableService) GetWeek(ctx context.Context, userID string) (*dto.WeekViewResponse, error) {
	snapshot, err := s.loadSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	week := schedule.ProjectWeek(snapshot)

	columns := make([]dto.WeekColumn, 0, len(schedule.Weekdays))
	for _, day := range schedule.Weekdays {
		col := dto.WeekColumn{Day: string(day), Courses: make([]dto.CourseResponse, 0, len(week[day]))}
		for _, c := range week[day] {
			col.Courses = append(col.Courses, scheduleCourseResponse(c))
		}
		columns = append(columns, col)
	}

	return &dto.WeekViewResponse{Days: columns}, nil
}

// loadSnapshot 读取一次权威快照并转换为查询引擎的值对象
func (s *timetableService) loadSnapshot(ctx context.Context, userID string) ([]schedule.Course, error) {
	records, err := s.repo.Course.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询课程快照失败", zap.Error(err))
		return nil, err
	}
	return s.convertRecords(records), nil
}

func (s *timetableService) convertRecords(records []model.Course) []schedule.Course {
	snapshot := make([]schedule.Course, 0, len(records))
	for _, rec := range records {
		c, err := toScheduleCourse(rec)
		if err != nil {
			s.logger.Warn("课程记录时刻无法解析，已跳过", zap.String("courseID", rec.CourseID), zap.Error(err))
			continue
		}
		snapshot = append(snapshot, c)
	}
	return snapshot
}
