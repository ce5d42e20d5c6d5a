package templates

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-enrollment/models"
)

func render(t *testing.T, name string, data map[string]interface{}) string {
	t.Helper()
	tmpl, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, name, data))
	return buf.String()
}

var testCourses = []models.Course{
	{ID: 1, Code: "CSE01", Name: "MAD I"},
	{ID: 2, Code: "CSE02", Name: "DBMS"},
}

func TestLoadDefinesEveryPage(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)
	for _, page := range []string{"index.html", "add.html", "exist.html", "view.html", "update.html", "error.html"} {
		assert.NotNil(t, tmpl.Lookup(page), page)
	}
}

func TestIndexEmpty(t *testing.T) {
	out := render(t, "index.html", map[string]interface{}{"Students": []models.Student{}})
	assert.Contains(t, out, "No students found.")
}

func TestIndexListsStudents(t *testing.T) {
	out := render(t, "index.html", map[string]interface{}{
		"Students": []models.Student{{ID: 3, RollNumber: "S1", FirstName: "Ada"}},
	})
	assert.Contains(t, out, `href="/student/3/"`)
	assert.Contains(t, out, `href="/student/3/delete"`)
	assert.Contains(t, out, "Ada")
}

func TestAddFormHasNoCheckedCourses(t *testing.T) {
	out := render(t, "add.html", map[string]interface{}{"Courses": testCourses})
	assert.Contains(t, out, `value="CSE01"`)
	assert.Contains(t, out, `value="CSE02"`)
	assert.NotContains(t, out, "checked")
}

func TestUpdateFormChecksEnrolledCourses(t *testing.T) {
	student := &models.Student{
		ID: 9, RollNumber: "S1", FirstName: "Ada",
		Enrollments: []models.Enrollment{{CourseID: 2, Course: testCourses[1]}},
	}
	out := render(t, "update.html", map[string]interface{}{"Student": student, "Courses": testCourses})
	assert.Contains(t, out, `action="/student/9/update"`)
	assert.Contains(t, out, `value="CSE02" checked`)
	assert.NotContains(t, out, `value="CSE01" checked`)
}

func TestViewEscapesNames(t *testing.T) {
	student := &models.Student{RollNumber: "S1", FirstName: "<script>"}
	out := render(t, "view.html", map[string]interface{}{"Student": student})
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "Not enrolled in any course.")
}
