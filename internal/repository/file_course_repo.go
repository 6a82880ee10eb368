package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Eltons-gt/semester-schedule-manager-app/internal/model"
)

// ── 本地文件实现 ──────────────────────────────────────────
//
// 离线单用户模式：全部课程作为一个 JSON 数据块整体序列化到磁盘，
// 没有用户隔离（单一隐式所有者），每次变更后全量重写文件。
// 写入先落临时文件再 rename，避免进程中断留下半截数据。
// ─────────────────────────────────────────────────────────────

// courseBlob 磁盘上的序列化结构
type courseBlob struct {
	Courses []model.Course `json:"courses"`
}

// fileCourseRepo CourseRepository 的本地 JSON 文件实现
type fileCourseRepo struct {
	path string

	mu      sync.Mutex
	courses []model.Course
}

// NewFileCourseRepo 打开（必要时新建）本地课程数据文件
func NewFileCourseRepo(path string) (CourseRepository, error) {
	r := &fileCourseRepo{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil // 首次启动，空数据
		}
		return nil, fmt.Errorf("读取课程数据文件失败: %w", err)
	}

	var blob courseBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		return nil, fmt.Errorf("课程数据文件损坏: %w", err)
	}
	r.courses = blob.Courses

	return r, nil
}

func (r *fileCourseRepo) ListByUser(_ context.Context, _ string) ([]model.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// 单一隐式所有者：忽略 userID，返回全量快照的副本
	out := make([]model.Course, len(r.courses))
	copy(out, r.courses)
	return out, nil
}

func (r *fileCourseRepo) GetByOwner(_ context.Context, id, _ string) (*model.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.courses {
		if r.courses[i].CourseID == id {
			c := r.courses[i]
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fileCourseRepo) Create(_ context.Context, course *model.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if course.CourseID == "" {
		course.CourseID = uuid.New().String()
	}
	now := time.Now()
	course.CreatedAt = now
	course.UpdatedAt = now

	r.courses = append(r.courses, *course)
	return r.persist()
}

func (r *fileCourseRepo) Update(_ context.Context, course *model.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.courses {
		if r.courses[i].CourseID == course.CourseID {
			course.CreatedAt = r.courses[i].CreatedAt
			course.UpdatedAt = time.Now()
			r.courses[i] = *course
			return r.persist()
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fileCourseRepo) Delete(_ context.Context, id, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.courses {
		if r.courses[i].CourseID == id {
			r.courses = append(r.courses[:i], r.courses[i+1:]...)
			return r.persist()
		}
	}
	return gorm.ErrRecordNotFound
}

// persist 全量重写数据文件，调用方必须持有锁
func (r *fileCourseRepo) persist() error {
	data, err := json.MarshalIndent(courseBlob{Courses: r.courses}, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化课程数据失败: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("创建数据目录失败: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("写入课程数据文件失败: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("替换课程数据文件失败: %w", err)
	}
	return nil
}
