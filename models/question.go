package models

import (
	"time"

	"github.com/google/uuid"
)

type QuestionType string

const (
	QuestionMCQ         QuestionType = "mcq"
	QuestionShortAnswer QuestionType = "short_answer"
	QuestionTrueFalse   QuestionType = "true_false"
)

type Question struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CourseID uuid.UUID `gorm:"type:uuid;not null" json:"course_id"`
	Course   Course    `gorm:"constraint:OnDelete:CASCADE;" json:"course,omitempty"`

	Content string       `gorm:"type:text;not null" json:"content"`
	Answer  string       `gorm:"type:text;not null" json:"-"`
	Type    QuestionType `gorm:"type:varchar(20);not null" json:"type"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
