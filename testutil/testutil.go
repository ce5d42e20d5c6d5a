package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"student-enrollment/config"
	"student-enrollment/database"
	"student-enrollment/models"
)

// SetupTestDB opens a private in-memory sqlite database with the schema
// migrated and the seed courses inserted. The pool is capped at a single
// connection so every query sees the same in-memory database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{
		Driver:       "sqlite",
		DSN:          "file::memory:",
		LogLevel:     "silent",
		MaxOpenConns: 1,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	if err := database.SeedInitialData(db, zap.NewNop()); err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// CreateTestStudent inserts a student enrolled in the given seed course codes
func CreateTestStudent(t *testing.T, db *gorm.DB, rollNumber, firstName string, codes ...string) *models.Student {
	t.Helper()

	student := &models.Student{RollNumber: rollNumber, FirstName: firstName}
	if err := db.Create(student).Error; err != nil {
		t.Fatalf("Failed to create test student: %v", err)
	}
	for _, code := range codes {
		var course models.Course
		if err := db.Where("course_code = ?", code).First(&course).Error; err != nil {
			t.Fatalf("Failed to find course %s: %v", code, err)
		}
		if err := db.Create(&models.Enrollment{StudentID: student.ID, CourseID: course.ID}).Error; err != nil {
			t.Fatalf("Failed to enroll test student: %v", err)
		}
	}
	return student
}

// CountRows returns the number of rows in the model's table
func CountRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}

// StudentCourseCodes returns the codes of the courses a student is enrolled in
func StudentCourseCodes(t *testing.T, db *gorm.DB, studentID uint) []string {
	t.Helper()

	var codes []string
	err := db.Table("course").
		Select("course.course_code").
		Joins("JOIN enrollments ON enrollments.ecourse_id = course.course_id").
		Where("enrollments.estudent_id = ?", studentID).
		Order("course.course_code").
		Scan(&codes).Error
	if err != nil {
		t.Fatalf("Failed to query enrolled courses: %v", err)
	}
	return codes
}

// PostForm builds a form-encoded POST request
func PostForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a 302 pointing at location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	AssertStatus(t, w, http.StatusFound)
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}
