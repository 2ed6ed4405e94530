package services

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Alielsalek1/learning-management-system-LMS/models"
	"github.com/Alielsalek1/learning-management-system-LMS/ws"
)

// NotifyUser ghi một notification cho user và đẩy badge chưa đọc qua
// websocket. Ghi log thay vì trả lỗi: thông báo là side effect, không
// được làm hỏng thao tác chính.
func NotifyUser(db *gorm.DB, userID uuid.UUID, message string) {
	notification := models.Notification{
		UserID:  userID,
		Message: message,
	}
	if err := db.Create(&notification).Error; err != nil {
		log.Printf("Lỗi khi tạo notification cho user %s: %v", userID, err)
		return
	}

	PushUnreadCount(db, userID)
}

// PushUnreadCount đếm lại số chưa đọc và gửi cập nhật badge realtime
func PushUnreadCount(db *gorm.DB, userID uuid.UUID) {
	var count int64
	db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Count(&count)
	ws.SendBadgeUpdate(userID.String(), count)
}
