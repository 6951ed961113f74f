//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	stdhttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"sport-rental/internal/handler/httperr"
	"sport-rental/internal/handler/middleware"
	"sport-rental/internal/pkg/config"
	"sport-rental/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.Use(middleware.ErrorHandler())
	return router
}

func TestErrorHandler(t *testing.T) {
	router := newErrorRouter()
	router.GET("/public", func(c *gin.Context) {
		_ = c.Error(&gin.Error{
			Err:  errors.New("gone"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.NewResponse(http.StatusNotFound, "Reservation not found", nil),
		})
	})
	router.GET("/private", func(c *gin.Context) {
		_ = c.Error(errors.New("connection reset"))
	})
	router.GET("/aborted", func(c *gin.Context) {
		httperr.AbortWithCode(c, http.StatusConflict, errors.New("dup"), "Customer already exists", "duplicate_customer")
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	t.Run("writes a public error left unwritten", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/public", nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Reservation not found")
	})

	t.Run("hides private errors behind a 500", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/private", nil)
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("keeps a body written by the handler", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/aborted", nil)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "duplicate_customer")
	})

	t.Run("recovers from a panic", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil)
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})
}

func TestCORSMiddleware_ExposesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins:  []string{"http://localhost:3000"},
		AllowMethods:  []string{"GET"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        time.Hour,
	}))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := stdhttptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := stdhttptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers")), "x-request-id")
}
