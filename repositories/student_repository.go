package repositories

import (
	"student-enrollment/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StudentRepository interface defines Student-related database operations.
// Finders return a nil Student without error when nothing matches.
type StudentRepository interface {
	FindAll() ([]models.Student, error)
	FindByID(id uint) (*models.Student, error)
	FindByRollNumber(rollNumber string) (*models.Student, error)
	Create(student *models.Student, courseIDs []uint) error
	Update(student *models.Student, courseIDs []uint) (bool, error)
	Delete(id uint) (bool, error)
}

// studentRepository implements the StudentRepository interface
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new StudentRepository instance
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

// FindAll returns every student with its courses, ordered by id
func (r *studentRepository) FindAll() ([]models.Student, error) {
	var students []models.Student
	result := r.withCourses().Order("student_id").Find(&students)
	if result.Error != nil {
		return nil, result.Error
	}
	return students, nil
}

// FindByID finds Student by ID
func (r *studentRepository) FindByID(id uint) (*models.Student, error) {
	return r.findOne(r.withCourses().Where("student_id = ?", id))
}

// FindByRollNumber finds Student by roll number
func (r *studentRepository) FindByRollNumber(rollNumber string) (*models.Student, error) {
	return r.findOne(r.withCourses().Where("roll_number = ?", rollNumber))
}

// Create inserts the student and one enrollment per course id in a single transaction
func (r *studentRepository) Create(student *models.Student, courseIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(student).Error; err != nil {
			return err
		}
		return insertEnrollments(tx, student.ID, courseIDs)
	})
}

// Update saves the name fields and replaces the course set: existing
// enrollments are cleared, then one is inserted per course id. It reports
// false, writing nothing, when no student has the given id.
func (r *studentRepository) Update(student *models.Student, courseIDs []uint) (bool, error) {
	var found bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Student{}).
			Where("student_id = ?", student.ID).
			Updates(map[string]interface{}{
				"first_name": student.FirstName,
				"last_name":  student.LastName,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// mysql reports unchanged rows as unaffected
			var n int64
			if err := tx.Model(&models.Student{}).Where("student_id = ?", student.ID).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return nil
			}
		}
		found = true
		if err := clearEnrollments(tx, student.ID); err != nil {
			return err
		}
		return insertEnrollments(tx, student.ID, courseIDs)
	})
	return found && err == nil, err
}

// Delete removes the student and its enrollments. It reports false when no
// student had the given id.
func (r *studentRepository) Delete(id uint) (bool, error) {
	var deleted bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := clearEnrollments(tx, id); err != nil {
			return err
		}
		result := tx.Where("student_id = ?", id).Delete(&models.Student{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}

func (r *studentRepository) withCourses() *gorm.DB {
	return r.db.Preload("Enrollments", func(db *gorm.DB) *gorm.DB {
		return db.Order("ecourse_id")
	}).Preload("Enrollments.Course")
}

func (r *studentRepository) findOne(query *gorm.DB) (*models.Student, error) {
	var student models.Student
	result := query.Limit(1).Find(&student)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &student, nil
}

func clearEnrollments(tx *gorm.DB, studentID uint) error {
	return tx.Where("estudent_id = ?", studentID).Delete(&models.Enrollment{}).Error
}

func insertEnrollments(tx *gorm.DB, studentID uint, courseIDs []uint) error {
	if len(courseIDs) == 0 {
		return nil
	}
	enrollments := make([]models.Enrollment, len(courseIDs))
	for i, courseID := range courseIDs {
		enrollments[i] = models.Enrollment{StudentID: studentID, CourseID: courseID}
	}
	return tx.Omit(clause.Associations).Create(&enrollments).Error
}
