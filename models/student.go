package models

// Student is a person identified by a unique roll number.
type Student struct {
	ID          uint         `gorm:"column:student_id;primaryKey;autoIncrement"`
	RollNumber  string       `gorm:"column:roll_number;uniqueIndex;not null"`
	FirstName   string       `gorm:"column:first_name;not null"`
	LastName    string       `gorm:"column:last_name"`
	Enrollments []Enrollment `gorm:"foreignKey:StudentID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Student) TableName() string { return "student" }

// Courses returns the courses reachable through the loaded enrollments.
// Enrollments must have been preloaded together with their Course.
func (s *Student) Courses() []Course {
	courses := make([]Course, 0, len(s.Enrollments))
	for _, e := range s.Enrollments {
		courses = append(courses, e.Course)
	}
	return courses
}

// HasCourse reports whether the student is enrolled in the course with the given code.
func (s *Student) HasCourse(code string) bool {
	for _, e := range s.Enrollments {
		if e.Course.Code == code {
			return true
		}
	}
	return false
}
