package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAuthRouter(manager *Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	authed := router.Group("/authed", manager.Authenticate())
	authed.GET("", func(c *gin.Context) {
		claims, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})

	staff := router.Group("/staff", manager.Authenticate(), RequireStaff())
	staff.GET("", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAuthenticate_MissingToken(t *testing.T) {
	router := newAuthRouter(NewManager("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/authed", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	router := newAuthRouter(manager)

	token, err := manager.Issue(5, false)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/authed", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"user_id":5`)
}

func TestRequireStaff(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	router := newAuthRouter(manager)

	regular, err := manager.Issue(5, false)
	assert.NoError(t, err)
	staff, err := manager.Issue(6, true)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/staff", nil)
	req.Header.Set("Authorization", "Bearer "+regular)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	req = httptest.NewRequest(http.MethodGet, "/staff", nil)
	req.Header.Set("Authorization", "Bearer "+staff)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
