package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"student-enrollment/controllers"
	"student-enrollment/middleware"
	"student-enrollment/repositories"
	"student-enrollment/services"
	"student-enrollment/templates"
)

// New builds the engine serving every page against db.
func New(db *gorm.DB, logger *zap.Logger) (*gin.Engine, error) {
	tmpl, err := templates.Load()
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	studentRepo := repositories.NewStudentRepository(db)
	courseRepo := repositories.NewCourseRepository(db)
	studentController := controllers.NewStudentController(
		services.NewStudentService(studentRepo, courseRepo),
		services.NewCourseService(courseRepo),
		logger,
	)

	r := gin.New() // gin.New() keeps gin's default logger out of the chain
	r.SetHTMLTemplate(tmpl)
	r.Use(middleware.RequestLogger(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.ErrorHandler(logger))

	studentController.RegisterRoutes(r)
	return r, nil
}
