package models

import (
	"time"

	"github.com/google/uuid"
)

// Quiz giữ tập câu hỏi được chọn ngẫu nhiên tại thời điểm sinh đề.
// Quan hệ many2many lưu theo tham chiếu: sửa Question sau khi sinh đề sẽ
// phản ánh vào quiz đã có (hành vi giữ nguyên, có ghi lại trong DESIGN.md).
type Quiz struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CourseID uuid.UUID `gorm:"type:uuid;not null" json:"course_id"`
	Course   Course    `gorm:"constraint:OnDelete:CASCADE;" json:"course,omitempty"`

	Questions []Question `gorm:"many2many:quiz_questions;" json:"questions,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// StudentQuiz: một bản ghi cho mỗi (sinh viên, quiz); chặn nộp lại
type StudentQuiz struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	QuizID    uuid.UUID `gorm:"type:uuid;not null" json:"quiz_id"`
	Quiz      Quiz      `gorm:"foreignKey:QuizID;references:ID;constraint:OnDelete:CASCADE;" json:"quiz,omitempty"`
	StudentID uuid.UUID `gorm:"type:uuid;not null" json:"student_id"`
	Student   User      `gorm:"foreignKey:StudentID;references:ID;constraint:OnDelete:CASCADE;" json:"student,omitempty"`

	Grade float64 `gorm:"type:numeric(5,2)" json:"grade"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
