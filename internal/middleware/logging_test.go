package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/rdevrajsinh/totalenc/internal/logger"
	"github.com/rdevrajsinh/totalenc/internal/middleware"
)

func TestAccessLog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger.SetLogger(logger.New(&buf))

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.AccessLog())
	router.GET("/api/blogs", func(c *gin.Context) {
		c.JSON(http.StatusOK, []string{})
	})
	router.GET("/api/blogs/:id", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/blogs", nil)
	req.Header.Set(middleware.RequestIDHeader, "log-req-1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"path":"/api/blogs"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"request_id":"log-req-1"`)
	assert.Contains(t, out, `"level":"INFO"`)

	buf.Reset()
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/blogs/99", nil))
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"status":404`)
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger.SetLogger(logger.New(&buf))

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Recovery())
	router.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, w.Body.String())
	assert.Contains(t, buf.String(), "kaboom")
}
