package repositories

import (
	"student-enrollment/models"

	"gorm.io/gorm"
)

// CourseRepository interface defines Course-related database operations
type CourseRepository interface {
	FindAll() ([]models.Course, error)
	FindByCode(code string) (*models.Course, error)
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new CourseRepository instance
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) FindAll() ([]models.Course, error) {
	var courses []models.Course
	if err := r.db.Order("course_id").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// FindByCode returns nil when no course has the code
func (r *courseRepository) FindByCode(code string) (*models.Course, error) {
	var course models.Course
	result := r.db.Where("course_code = ?", code).Limit(1).Find(&course)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &course, nil
}
