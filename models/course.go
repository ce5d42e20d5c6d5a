package models

// Course is an offering identified by a unique course code.
type Course struct {
	ID          uint   `gorm:"column:course_id;primaryKey;autoIncrement"`
	Code        string `gorm:"column:course_code;uniqueIndex;not null"`
	Name        string `gorm:"column:course_name;not null"`
	Description string `gorm:"column:course_description"`
}

func (Course) TableName() string { return "course" }
