package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Eltons-gt/semester-schedule-manager-app/internal/repository"
	"github.com/Eltons-gt/semester-schedule-manager-app/internal/schedule"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoCourses    = errors.New("暂无课程，无法导出")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - Excel 按周视图网格布局：周一到周日七列，每列自上而下按开始时刻排列
//   - iCalendar 每门课一个 VEVENT，按周循环（RRULE BYDAY 携带全部上课日）
//   - 内容以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
type ExportService interface {
	// ExportWeekExcel 导出周视图为 Excel
	ExportWeekExcel(ctx context.Context, userID string) (*bytes.Buffer, string, error)
	// ExportICS 导出课表为 iCalendar；now 用于确定各课程首次发生的日期
	ExportICS(ctx context.Context, userID string, now time.Time) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// weekdayTitles 列头展示名
var weekdayTitles = map[schedule.Weekday]string{
	schedule.Mon: "周一",
	schedule.Tue: "周二",
	schedule.Wed: "周三",
	schedule.Thu: "周四",
	schedule.Fri: "周五",
	schedule.Sat: "周六",
	schedule.Sun: "周日",
}

func (s *exportService) ExportWeekExcel(ctx context.Context, userID string) (*bytes.Buffer, string, error) {
	snapshot, err := s.loadSnapshot(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if len(snapshot) == 0 {
		return nil, "", ErrExportNoCourses
	}

	week := schedule.ProjectWeek(snapshot)

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "课程表"
	f.SetSheetName("Sheet1", sheet)

	// 列头：周一 ~ 周日
	for col, day := range schedule.Weekdays {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", ErrExportGenerateFail
		}
		if err := f.SetCellValue(sheet, cell, weekdayTitles[day]); err != nil {
			return nil, "", ErrExportGenerateFail
		}
	}
	_ = f.SetColWidth(sheet, "A", "G", 28)

	// 每列自上而下填入该日课程
	for col, day := range schedule.Weekdays {
		for row, c := range week[day] {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, "", ErrExportGenerateFail
			}
			text := fmt.Sprintf("%s\n%s - %s", c.Name, c.Start.Display(), c.End.Display())
			if c.Location != "" {
				text += "\n" + c.Location
			}
			if err := f.SetCellValue(sheet, cell, text); err != nil {
				return nil, "", ErrExportGenerateFail
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	return buf, "timetable.xlsx", nil
}

// icsByDay Weekday → RRULE BYDAY 缩写
var icsByDay = map[schedule.Weekday]string{
	schedule.Mon: "MO",
	schedule.Tue: "TU",
	schedule.Wed: "WE",
	schedule.Thu: "TH",
	schedule.Fri: "FR",
	schedule.Sat: "SA",
	schedule.Sun: "SU",
}

func (s *exportService) ExportICS(ctx context.Context, userID string, now time.Time) (*bytes.Buffer, string, error) {
	snapshot, err := s.loadSnapshot(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if len(snapshot) == 0 {
		return nil, "", ErrExportNoCourses
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//semester-schedule-manager//timetable//EN")

	for _, c := range snapshot {
		if len(c.Days) == 0 {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("course-%s@semester-schedule-manager", c.ID))
		event.SetDtStampTime(now)
		event.SetSummary(c.Name)
		if c.Location != "" {
			event.SetLocation(c.Location)
		}
		if c.Instructor != "" {
			event.SetDescription("授课教师: " + c.Instructor)
		}

		// DTSTART/DTEND 取自 now 起最近一次上课日
		first := nextOccurrence(now, c.Days)
		start := time.Date(first.Year(), first.Month(), first.Day(), c.Start.Hour, c.Start.Minute, 0, 0, now.Location())
		end := time.Date(first.Year(), first.Month(), first.Day(), c.End.Hour, c.End.Minute, 0, 0, now.Location())
		event.SetStartAt(start)
		event.SetEndAt(end)

		byDay := ""
		for i, d := range c.Days {
			if i > 0 {
				byDay += ","
			}
			byDay += icsByDay[d]
		}
		event.AddRrule("FREQ=WEEKLY;BYDAY=" + byDay)
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, "timetable.ics", nil
}

// nextOccurrence 从 now（含当天）起第一个命中日集合的日期
func nextOccurrence(now time.Time, days []schedule.Weekday) time.Time {
	for i := 0; i < 7; i++ {
		candidate := now.AddDate(0, 0, i)
		day := schedule.WeekdayOf(candidate)
		for _, d := range days {
			if d == day {
				return candidate
			}
		}
	}
	return now
}

// loadSnapshot 读取一次权威快照并转换为查询引擎的值对象
func (s *exportService) loadSnapshot(ctx context.Context, userID string) ([]schedule.Course, error) {
	records, err := s.repo.Course.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询课程快照失败", zap.Error(err))
		return nil, err
	}
	snapshot := make([]schedule.Course, 0, len(records))
	for _, rec := range records {
		c, err := toScheduleCourse(rec)
		if err != nil {
			s.logger.Warn("课程记录时刻无法解析，已跳过", zap.String("courseID", rec.CourseID), zap.Error(err))
			continue
		}
		snapshot = append(snapshot, c)
	}
	return snapshot, nil
}
