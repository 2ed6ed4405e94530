package models

import (
	"time"

	"github.com/google/uuid"
)

type Lesson struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CourseID uuid.UUID `gorm:"type:uuid;not null" json:"course_id"`
	Course   Course    `gorm:"constraint:OnDelete:CASCADE;" json:"course,omitempty"`

	// Mã điểm danh: sinh viên gửi đúng OTP thì được tính có mặt
	Otp string `gorm:"size:100;not null" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// StudentLesson: sự tồn tại của bản ghi = sinh viên đã điểm danh buổi học
type StudentLesson struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null" json:"student_id"`
	Student   User      `gorm:"foreignKey:StudentID;references:ID;constraint:OnDelete:CASCADE;" json:"student,omitempty"`
	LessonID  uuid.UUID `gorm:"type:uuid;not null" json:"lesson_id"`
	Lesson    Lesson    `gorm:"foreignKey:LessonID;references:ID;constraint:OnDelete:CASCADE;" json:"lesson,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
