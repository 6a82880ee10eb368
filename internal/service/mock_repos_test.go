package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Eltons-gt/semester-schedule-manager-app/internal/model"
	"github.com/Eltons-gt/semester-schedule-manager-app/internal/repository"
)

// ── Mock CourseRepository ──
//
// 以切片而非 map 保存，快照顺序即插入顺序——稳定排序的测试依赖确定的输入顺序。

type mockCourseRepo struct {
	courses []model.Course
	nextID  int

	listErr   error
	createErr error
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{}
}

func (m *mockCourseRepo) ListByUser(_ context.Context, userID string) ([]model.Course, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []model.Course
	for _, c := range m.courses {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *mockCourseRepo) GetByOwner(_ context.Context, id, userID string) (*model.Course, error) {
	for i := range m.courses {
		if m.courses[i].CourseID == id && m.courses[i].UserID == userID {
			c := m.courses[i]
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	if m.createErr != nil {
		return m.createErr
	}
	if course.CourseID == "" {
		m.nextID++
		course.CourseID = fmt.Sprintf("course-%d", m.nextID)
	}
	m.courses = append(m.courses, *course)
	return nil
}

func (m *mockCourseRepo) Update(_ context.Context, course *model.Course) error {
	for i := range m.courses {
		if m.courses[i].CourseID == course.CourseID && m.courses[i].UserID == course.UserID {
			m.courses[i] = *course
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) Delete(_ context.Context, id, userID string) error {
	for i := range m.courses {
		if m.courses[i].CourseID == id && m.courses[i].UserID == userID {
			m.courses = append(m.courses[:i], m.courses[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[string]*model.User
	nextID int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.nextID++
		user.UserID = fmt.Sprintf("user-%d", m.nextID)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

// newTestRepository 组装测试用 Repository 聚合
func newTestRepository(courses *mockCourseRepo, users *mockUserRepo) *repository.Repository {
	repo := &repository.Repository{}
	if courses != nil {
		repo.Course = courses
	}
	if users != nil {
		repo.User = users
	}
	return repo
}
