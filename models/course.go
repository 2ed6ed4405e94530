package models

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	InstructorID uuid.UUID `gorm:"type:uuid;not null" json:"instructor_id"`
	Instructor   User      `gorm:"foreignKey:InstructorID;references:ID;constraint:OnDelete:CASCADE;" json:"instructor,omitempty"`

	Title       string `gorm:"size:255;not null" json:"title"`
	Duration    string `gorm:"size:100;not null" json:"duration"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Tên file tài liệu đã upload cho khóa học
	Materials []CourseMaterial `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;" json:"materials,omitempty"`
}

type CourseMaterial struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CourseID uuid.UUID `gorm:"type:uuid;not null" json:"course_id"`
	FileName string    `gorm:"size:500;not null" json:"file_name"`
}
