package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRoleRouter(role interface{}, hasRole bool, allowed ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected",
		func(c *gin.Context) {
			if hasRole {
				c.Set("role", role)
			}
			c.Next()
		},
		RequireRoles(allowed...),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "ok"})
		})
	return r
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name       string
		role       interface{}
		hasRole    bool
		allowed    []string
		wantStatus int
	}{
		{"dung vai tro", "admin", true, []string{"admin"}, http.StatusOK},
		{"mot trong nhieu vai tro", "instructor", true, []string{"instructor", "admin"}, http.StatusOK},
		{"sai vai tro", "student", true, []string{"instructor", "admin"}, http.StatusForbidden},
		{"thieu vai tro", nil, false, []string{"admin"}, http.StatusUnauthorized},
		{"vai tro khong phai chuoi", 7, true, []string{"admin"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRoleRouter(tt.role, tt.hasRole, tt.allowed...)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
