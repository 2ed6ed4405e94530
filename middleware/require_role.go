package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alielsalek1/learning-management-system-LMS/utils"
)

// RequireRoles cho phép chỉ định nhiều vai trò được quyền truy cập.
// Bảng phân quyền tĩnh theo URL nằm ở routes/routes.go, mỗi route gắn
// đúng tập vai trò của nó.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, "Không xác định được vai trò người dùng")
			c.Abort()
			return
		}

		role, ok := roleValue.(string)
		if !ok {
			utils.RespondError(c, http.StatusInternalServerError, "Lỗi xử lý vai trò người dùng")
			c.Abort()
			return
		}

		// Kiểm tra role hợp lệ
		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		// Nếu không khớp role nào
		utils.RespondError(c, http.StatusForbidden, "Bạn không có quyền truy cập tài nguyên này")
		c.Abort()
	}
}
