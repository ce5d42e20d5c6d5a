package services

import (
	"fmt"

	"student-enrollment/models"
	"student-enrollment/repositories"
)

// The CourseService interface lists the courses offered on the forms
type CourseService interface {
	ListCourses() ([]models.Course, error)
}

type courseService struct {
	repo repositories.CourseRepository
}

// NewCourseService creates a new CourseService instance
func NewCourseService(repo repositories.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

func (s *courseService) ListCourses() ([]models.Course, error) {
	courses, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	return courses, nil
}
