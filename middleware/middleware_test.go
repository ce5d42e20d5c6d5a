package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"student-enrollment/templates"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(t *testing.T, logger *zap.Logger) *gin.Engine {
	t.Helper()
	tmpl, err := templates.Load()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(RequestLogger(logger), ErrorHandler(logger))
	return r
}

func TestErrorHandlerRendersErrorPage(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := newEngine(t, zap.New(core))
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("database is locked"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something Went Wrong")
	assert.NotContains(t, w.Body.String(), "database is locked")

	failed := logs.FilterMessage("Request failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "database is locked", failed[0].ContextMap()["error"])

	requests := logs.FilterMessage("Request").All()
	require.Len(t, requests, 1)
	assert.Equal(t, zapcore.ErrorLevel, requests[0].Level)
	assert.Equal(t, int64(http.StatusInternalServerError), requests[0].ContextMap()["status_code"])
}

func TestErrorHandlerKeepsWrittenResponse(t *testing.T) {
	r := newEngine(t, zap.NewNop())
	r.GET("/partial", func(c *gin.Context) {
		c.String(http.StatusTeapot, "short and stout")
		_ = c.Error(errors.New("late failure"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/partial", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "short and stout", w.Body.String())
}

func TestRequestLoggerRecordsRequest(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := newEngine(t, zap.New(core))
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "fine") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	entries := logs.FilterMessage("Request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/ok", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status_code"])
	assert.NotContains(t, fields, "errors")
}
