package models

import (
	"time"

	"github.com/google/uuid"
)

// EnrolledCourse nối sinh viên với khóa học. Mỗi cặp (student, course) chỉ
// có một bản ghi, kiểm tra ở tầng ứng dụng trước khi insert.
type EnrolledCourse struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null" json:"student_id"`
	Student   User      `gorm:"foreignKey:StudentID;references:ID;constraint:OnDelete:CASCADE;" json:"student,omitempty"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null" json:"course_id"`
	Course    Course    `gorm:"foreignKey:CourseID;references:ID;constraint:OnDelete:CASCADE;" json:"course,omitempty"`

	IsConfirmed bool `gorm:"default:false" json:"is_confirmed"`
	IsCompleted bool `gorm:"default:false" json:"is_completed"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
