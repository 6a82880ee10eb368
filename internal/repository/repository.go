package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User   UserRepository
	Course CourseRepository
}

// NewRepository 创建基于 PostgreSQL 的 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:   NewUserRepo(db),
		Course: NewCourseRepo(db),
	}
}

// NewFileRepository 创建基于本地 JSON 文件的 Repository 聚合。
// 本地模式没有用户体系，User 为 nil。
func NewFileRepository(path string) (*Repository, error) {
	courses, err := NewFileCourseRepo(path)
	if err != nil {
		return nil, err
	}
	return &Repository{Course: courses}, nil
}
