package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"student-enrollment/models"
)

// SeedCourses lists the courses inserted into an empty course table.
var SeedCourses = []models.Course{
	{Code: "CSE01", Name: "MAD I", Description: "Modern Application Development - I"},
	{Code: "CSE02", Name: "DBMS", Description: "Database Management Systems"},
	{Code: "CSE03", Name: "PDSA", Description: "Programming, Data Structures and Algorithms using Python"},
	{Code: "BST13", Name: "BDM", Description: "Business Data Management"},
}

// SeedInitialData inserts SeedCourses when no course exists yet. Running it
// against a populated table is a no-op.
func SeedInitialData(db *gorm.DB, log *zap.Logger) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Course{}).Count(&count).Error; err != nil {
			return fmt.Errorf("counting courses: %w", err)
		}
		if count > 0 {
			log.Debug("Courses already present, skipping seed", zap.Int64("count", count))
			return nil
		}

		courses := make([]models.Course, len(SeedCourses))
		copy(courses, SeedCourses)
		if err := tx.Create(&courses).Error; err != nil {
			return fmt.Errorf("seeding courses: %w", err)
		}
		log.Info("Seeded courses", zap.Int("count", len(courses)))
		return nil
	})
}
