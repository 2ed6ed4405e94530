package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Alielsalek1/learning-management-system-LMS/models"
	"github.com/Alielsalek1/learning-management-system-LMS/utils"
)

func getDB(c *gin.Context) *gorm.DB {
	return c.MustGet("db").(*gorm.DB)
}

// currentUser load user đang đăng nhập từ claims trong context.
// Trả ok=false nếu đã respond lỗi.
func currentUser(c *gin.Context) (models.User, bool) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "user_id không hợp lệ")
		return models.User{}, false
	}

	var user models.User
	if err := getDB(c).First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Không tìm thấy người dùng")
		return models.User{}, false
	}
	return user, true
}

// parseIDParam đọc một path param dạng uuid
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, name+" không hợp lệ")
		return uuid.Nil, false
	}
	return id, true
}
