package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Alielsalek1/learning-management-system-LMS/models"
	"github.com/Alielsalek1/learning-management-system-LMS/utils"
)

// GetNotifications trả thông báo của người dùng theo cờ all|read|unread
func GetNotifications(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	flag := c.Param("flag")
	query := getDB(c).Where("user_id = ?", user.ID).Order("created_at DESC")
	switch flag {
	case "all":
	case "read":
		query = query.Where("is_read = ?", true)
	case "unread":
		query = query.Where("is_read = ?", false)
	default:
		utils.RespondError(c, http.StatusBadRequest, "Cờ không hợp lệ, chỉ nhận all, read hoặc unread")
		return
	}

	var notifications []models.Notification
	if err := query.Find(&notifications).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tải thông báo")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", notifications)
}

// GetNotificationDetail tách nhánh cho /notifications/id/{id} và /notifications/unread/count
// vì gin không cho đăng ký segment tĩnh cạnh wildcard :flag
func GetNotificationDetail(c *gin.Context) {
	switch c.Param("flag") {
	case "id":
		GetNotificationByID(c)
	case "unread":
		if c.Param("id") == "count" {
			GetUnreadCount(c)
			return
		}
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy đường dẫn")
	default:
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy đường dẫn")
	}
}

// GetNotificationByID xem một thông báo và đánh dấu đã đọc
func GetNotificationByID(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := getDB(c)

	var notification models.Notification
	if err := db.First(&notification, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy thông báo")
		return
	}
	if notification.UserID != user.ID {
		utils.RespondError(c, http.StatusForbidden, "Bạn không phải chủ thông báo này")
		return
	}

	if !notification.IsRead {
		now := time.Now()
		notification.IsRead = true
		notification.ReadAt = &now
		if err := db.Save(&notification).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi cập nhật thông báo")
			return
		}
	}

	utils.RespondSuccess(c, http.StatusOK, "OK", notification)
}

// GetUnreadCount trả số thông báo chưa đọc cho badge
func GetUnreadCount(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var count int64
	if err := getDB(c).Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", user.ID, false).
		Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi đếm thông báo")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", gin.H{"unread_count": count})
}
