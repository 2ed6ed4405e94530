package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Đăng ký route không đụng DB nên truyền nil là an toàn
func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := SetupRouter(gin.New(), nil)

	out := make(map[string]bool)
	for _, route := range r.Routes() {
		out[route.Method+" "+route.Path] = true
	}
	return out
}

func TestSetupRouter_PerCourseRoutes(t *testing.T) {
	routes := registeredRoutes(t)

	tests := []string{
		"GET /student-lessons/students/me/courses/:courseId",
		"GET /student-lessons/students/id/:studentId/courses/:courseId",
		"GET /student-assignments/users/me/courses/:courseId",
	}

	for _, want := range tests {
		t.Run(want, func(t *testing.T) {
			assert.True(t, routes[want], "thiếu route %s", want)
		})
	}
}

func TestSetupRouter_CoreRoutes(t *testing.T) {
	routes := registeredRoutes(t)

	tests := []string{
		"POST /auth/register",
		"POST /auth/login",
		"GET /health",
		"POST /student-lessons",
		"GET /student-lessons/students/me",
		"GET /student-assignments/users/me",
		"GET /ws/notifications",
	}

	for _, want := range tests {
		t.Run(want, func(t *testing.T) {
			assert.True(t, routes[want], "thiếu route %s", want)
		})
	}
}
