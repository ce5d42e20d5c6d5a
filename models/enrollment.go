package models

// Enrollment is the join row between a Student and a Course.
type Enrollment struct {
	ID        uint   `gorm:"column:enrollment_id;primaryKey;autoIncrement"`
	StudentID uint   `gorm:"column:estudent_id;not null;uniqueIndex:idx_enrollment_student_course"`
	CourseID  uint   `gorm:"column:ecourse_id;not null;uniqueIndex:idx_enrollment_student_course"`
	Course    Course `gorm:"foreignKey:CourseID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Enrollment) TableName() string { return "enrollments" }
