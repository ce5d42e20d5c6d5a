package controllers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"student-enrollment/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type StudentController struct {
	students services.StudentService
	courses  services.CourseService
	logger   *zap.Logger
}

// NewStudentController wires the page handlers to their services
func NewStudentController(students services.StudentService, courses services.CourseService, logger *zap.Logger) *StudentController {
	return &StudentController{students: students, courses: courses, logger: logger}
}

// StudentForm is the body posted by the add and update pages.
// Roll is ignored on update.
type StudentForm struct {
	Roll      string   `form:"roll"`
	FirstName string   `form:"f_name"`
	LastName  string   `form:"l_name"`
	Courses   []string `form:"courses"`
}

type studentURI struct {
	ID uint `uri:"id"`
}

// RegisterRoutes sets up the student pages on the engine.
func (ctl *StudentController) RegisterRoutes(r gin.IRouter) {
	r.GET("/", ctl.list)

	student := r.Group("/student")
	{
		student.GET("/create", ctl.createForm)
		student.POST("/create", ctl.create)
		student.GET("/:id/", ctl.view)
		student.GET("/:id/delete", ctl.delete)
		student.GET("/:id/update", ctl.updateForm)
		student.POST("/:id/update", ctl.update)
	}

	r.GET("/students/export", ctl.export)
}

// list (Handles GET /)
func (ctl *StudentController) list(c *gin.Context) {
	students, err := ctl.students.ListStudents()
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"Students": students})
}

// createForm (Handles GET /student/create)
func (ctl *StudentController) createForm(c *gin.Context) {
	courses, err := ctl.courses.ListCourses()
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.HTML(http.StatusOK, "add.html", gin.H{"Courses": courses})
}

// create (Handles POST /student/create)
func (ctl *StudentController) create(c *gin.Context) {
	var form StudentForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"Message": "Invalid form submission."})
		return
	}

	student, err := ctl.students.CreateStudent(&services.CreateStudentInput{
		RollNumber:  form.Roll,
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		CourseCodes: form.Courses,
	})
	if errors.Is(err, services.ErrRollNumberExists) {
		ctl.logger.Info("Roll number already exists", zap.String("roll_number", form.Roll))
		c.HTML(http.StatusConflict, "exist.html", gin.H{"RollNumber": form.Roll})
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	ctl.logger.Info("Student created", zap.Uint("student_id", student.ID), zap.String("roll_number", student.RollNumber))
	c.Redirect(http.StatusFound, "/")
}

// delete (Handles GET /student/{id}/delete)
func (ctl *StudentController) delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	deleted, err := ctl.students.DeleteStudent(id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if deleted {
		ctl.logger.Info("Student deleted", zap.Uint("student_id", id))
	}
	c.Redirect(http.StatusFound, "/")
}

// view (Handles GET /student/{id}/)
func (ctl *StudentController) view(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	student, err := ctl.students.GetStudent(id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if student == nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "view.html", gin.H{"Student": student})
}

// updateForm (Handles GET /student/{id}/update)
func (ctl *StudentController) updateForm(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	student, err := ctl.students.GetStudent(id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if student == nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	courses, err := ctl.courses.ListCourses()
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.HTML(http.StatusOK, "update.html", gin.H{"Student": student, "Courses": courses})
}

// update (Handles POST /student/{id}/update)
func (ctl *StudentController) update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var form StudentForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"Message": "Invalid form submission."})
		return
	}

	updated, err := ctl.students.UpdateStudent(id, &services.UpdateStudentInput{
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		CourseCodes: form.Courses,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	if updated != nil {
		ctl.logger.Info("Student updated", zap.Uint("student_id", id))
	}
	c.Redirect(http.StatusFound, "/")
}

// export (Handles GET /students/export)
func (ctl *StudentController) export(c *gin.Context) {
	var buf bytes.Buffer
	if err := ctl.students.ExportRoster(&buf); err != nil {
		_ = c.Error(err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="students.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// bindID reads the {id} path segment. Ids that are not unsigned integers
// answer 404, the same as an unmatched route.
func bindID(c *gin.Context) (uint, bool) {
	var uri studentURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return 0, false
	}
	return uri.ID, true
}
