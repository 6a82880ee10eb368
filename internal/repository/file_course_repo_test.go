package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/Eltons-gt/semester-schedule-manager-app/internal/model"
)

func newTestFileRepo(t *testing.T) (CourseRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courses.json")
	repo, err := NewFileCourseRepo(path)
	if err != nil {
		t.Fatalf("NewFileCourseRepo 失败: %v", err)
	}
	return repo, path
}

func testCourse(name, start, end string, days ...string) *model.Course {
	return &model.Course{
		Name:       name,
		Instructor: "张老师",
		Location:   "主楼 101",
		StartTime:  start,
		EndTime:    end,
		Days:       model.StringArray(days),
		Color:      "#3B82F6",
	}
}

func TestFileCourseRepo_CreateAssignsID(t *testing.T) {
	repo, _ := newTestFileRepo(t)
	ctx := context.Background()

	c := testCourse("CS101", "09:00", "10:30", "Mon", "Wed")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create 失败: %v", err)
	}
	if c.CourseID == "" {
		t.Fatal("Create 应分配 CourseID")
	}

	c2 := testCourse("CS102", "11:00", "12:00", "Tue")
	if err := repo.Create(ctx, c2); err != nil {
		t.Fatalf("Create 失败: %v", err)
	}
	if c2.CourseID == c.CourseID {
		t.Error("两次 Create 分配的 ID 不应相同")
	}
}

func TestFileCourseRepo_RoundTrip(t *testing.T) {
	repo, _ := newTestFileRepo(t)
	ctx := context.Background()

	c := testCourse("CS101", "09:00", "10:30", "Mon", "Wed")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create 失败: %v", err)
	}

	// 保存后立即查询：除新分配的 ID 外全字段一致
	list, err := repo.ListByUser(ctx, "local")
	if err != nil {
		t.Fatalf("ListByUser 失败: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("期望 1 条记录, 实际 %d", len(list))
	}
	got := list[0]
	if got.CourseID != c.CourseID {
		t.Errorf("ID 期望 %s, 实际 %s", c.CourseID, got.CourseID)
	}
	if got.Name != "CS101" || got.Instructor != "张老师" || got.Location != "主楼 101" {
		t.Errorf("字段不一致: %+v", got)
	}
	if got.StartTime != "09:00" || got.EndTime != "10:30" {
		t.Errorf("时间字段不一致: %s-%s", got.StartTime, got.EndTime)
	}
	if len(got.Days) != 2 || got.Days[0] != "Mon" || got.Days[1] != "Wed" {
		t.Errorf("Days 不一致: %v", got.Days)
	}
}

func TestFileCourseRepo_UpdateReplacesAllFields(t *testing.T) {
	repo, _ := newTestFileRepo(t)
	ctx := context.Background()

	c := testCourse("CS101", "09:00", "10:30", "Mon")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create 失败: %v", err)
	}

	updated := testCourse("CS101 改", "10:00", "11:30", "Tue", "Thu")
	updated.CourseID = c.CourseID
	if err := repo.Update(ctx, updated); err != nil {
		t.Fatalf("Update 失败: %v", err)
	}

	got, err := repo.GetByOwner(ctx, c.CourseID, "local")
	if err != nil {
		t.Fatalf("GetByOwner 失败: %v", err)
	}
	if got.Name != "CS101 改" || got.StartTime != "10:00" {
		t.Errorf("更新未生效: %+v", got)
	}
	if len(got.Days) != 2 || got.Days[0] != "Tue" {
		t.Errorf("Days 更新未生效: %v", got.Days)
	}
}

func TestFileCourseRepo_NotFound(t *testing.T) {
	repo, _ := newTestFileRepo(t)
	ctx := context.Background()

	if _, err := repo.GetByOwner(ctx, "missing", "local"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("GetByOwner 期望 ErrRecordNotFound, 实际 %v", err)
	}

	ghost := testCourse("X", "08:00", "09:00", "Mon")
	ghost.CourseID = "missing"
	if err := repo.Update(ctx, ghost); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Update 期望 ErrRecordNotFound, 实际 %v", err)
	}
	if err := repo.Delete(ctx, "missing", "local"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Delete 期望 ErrRecordNotFound, 实际 %v", err)
	}
}

func TestFileCourseRepo_Delete(t *testing.T) {
	repo, _ := newTestFileRepo(t)
	ctx := context.Background()

	c := testCourse("CS101", "09:00", "10:30", "Mon")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create 失败: %v", err)
	}
	if err := repo.Delete(ctx, c.CourseID, "local"); err != nil {
		t.Fatalf("Delete 失败: %v", err)
	}

	list, _ := repo.ListByUser(ctx, "local")
	if len(list) != 0 {
		t.Errorf("删除后期望空列表, 实际 %d 条", len(list))
	}
}

func TestFileCourseRepo_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courses.json")
	ctx := context.Background()

	repo1, err := NewFileCourseRepo(path)
	if err != nil {
		t.Fatalf("NewFileCourseRepo 失败: %v", err)
	}
	c := testCourse("CS101", "09:00", "10:30", "Mon", "Wed")
	if err := repo1.Create(ctx, c); err != nil {
		t.Fatalf("Create 失败: %v", err)
	}

	// 重新打开同一文件，数据应还在
	repo2, err := NewFileCourseRepo(path)
	if err != nil {
		t.Fatalf("重新打开失败: %v", err)
	}
	list, err := repo2.ListByUser(ctx, "local")
	if err != nil {
		t.Fatalf("ListByUser 失败: %v", err)
	}
	if len(list) != 1 || list[0].CourseID != c.CourseID || list[0].Name != "CS101" {
		t.Errorf("重开后数据不一致: %+v", list)
	}
}
