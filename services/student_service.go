package services

import (
	"errors"
	"fmt"
	"io"

	"gorm.io/gorm"

	"student-enrollment/models"
	"student-enrollment/repositories"
)

// The StudentService interface defines the operations behind the student pages
type StudentService interface {
	ListStudents() ([]models.Student, error)
	GetStudent(id uint) (*models.Student, error)
	CreateStudent(input *CreateStudentInput) (*models.Student, error)
	UpdateStudent(id uint, input *UpdateStudentInput) (*models.Student, error)
	DeleteStudent(id uint) (bool, error)
	ExportRoster(w io.Writer) error
}

// --- Structs for Input ---
type CreateStudentInput struct {
	RollNumber  string
	FirstName   string
	LastName    string
	CourseCodes []string
}

type UpdateStudentInput struct {
	FirstName   string
	LastName    string
	CourseCodes []string
}

type studentService struct {
	students repositories.StudentRepository
	courses  repositories.CourseRepository
}

var _ StudentService = (*studentService)(nil)

// NewStudentService creates a new StudentService instance
func NewStudentService(students repositories.StudentRepository, courses repositories.CourseRepository) StudentService {
	return &studentService{students: students, courses: courses}
}

func (s *studentService) ListStudents() ([]models.Student, error) {
	students, err := s.students.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing students: %w", err)
	}
	return students, nil
}

// GetStudent returns nil without error when the id does not resolve.
func (s *studentService) GetStudent(id uint) (*models.Student, error) {
	student, err := s.students.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("loading student %d: %w", id, err)
	}
	return student, nil
}

// CreateStudent inserts a student enrolled in every known course among
// input.CourseCodes. Unknown codes are skipped.
func (s *studentService) CreateStudent(input *CreateStudentInput) (*models.Student, error) {
	existing, err := s.students.FindByRollNumber(input.RollNumber)
	if err != nil {
		return nil, fmt.Errorf("checking roll number: %w", err)
	}
	if existing != nil {
		return nil, ErrRollNumberExists
	}

	courseIDs, err := s.resolveCourses(input.CourseCodes)
	if err != nil {
		return nil, err
	}

	student := models.Student{
		RollNumber: input.RollNumber,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
	}
	if err := s.students.Create(&student, courseIDs); err != nil {
		// lost a race with a concurrent create of the same roll number
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRollNumberExists
		}
		return nil, fmt.Errorf("creating student: %w", err)
	}
	return &student, nil
}

// UpdateStudent replaces the name fields and the whole course set. It returns
// nil without error when the id does not resolve.
func (s *studentService) UpdateStudent(id uint, input *UpdateStudentInput) (*models.Student, error) {
	student, err := s.students.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("loading student %d: %w", id, err)
	}
	if student == nil {
		return nil, nil
	}

	courseIDs, err := s.resolveCourses(input.CourseCodes)
	if err != nil {
		return nil, err
	}

	student.FirstName = input.FirstName
	student.LastName = input.LastName
	found, err := s.students.Update(student, courseIDs)
	if err != nil {
		return nil, fmt.Errorf("updating student %d: %w", id, err)
	}
	if !found {
		// deleted after the lookup
		return nil, nil
	}
	return student, nil
}

// DeleteStudent reports whether a student was removed.
func (s *studentService) DeleteStudent(id uint) (bool, error) {
	deleted, err := s.students.Delete(id)
	if err != nil {
		return false, fmt.Errorf("deleting student %d: %w", id, err)
	}
	return deleted, nil
}

// resolveCourses maps codes to course ids, dropping unknown and repeated codes.
func (s *studentService) resolveCourses(codes []string) ([]uint, error) {
	seen := make(map[uint]bool, len(codes))
	ids := make([]uint, 0, len(codes))
	for _, code := range codes {
		course, err := s.courses.FindByCode(code)
		if err != nil {
			return nil, fmt.Errorf("resolving course %q: %w", code, err)
		}
		if course == nil || seen[course.ID] {
			continue
		}
		seen[course.ID] = true
		ids = append(ids, course.ID)
	}
	return ids, nil
}
