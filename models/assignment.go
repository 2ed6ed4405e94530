package models

import (
	"time"

	"github.com/google/uuid"
)

type Assignment struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CourseID uuid.UUID `gorm:"type:uuid;not null" json:"course_id"`
	Course   Course    `gorm:"constraint:OnDelete:CASCADE;" json:"course,omitempty"`

	Instructions string `gorm:"type:text;not null" json:"instructions"`
	MaxGrade     int    `gorm:"not null" json:"max_grade"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// StudentAssignment: bản ghi nộp bài của một sinh viên cho một assignment
type StudentAssignment struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AssignmentID uuid.UUID  `gorm:"type:uuid;not null" json:"assignment_id"`
	Assignment   Assignment `gorm:"foreignKey:AssignmentID;references:ID;constraint:OnDelete:CASCADE;" json:"assignment,omitempty"`
	StudentID    uuid.UUID  `gorm:"type:uuid;not null" json:"student_id"`
	Student      User       `gorm:"foreignKey:StudentID;references:ID;constraint:OnDelete:CASCADE;" json:"student,omitempty"`
	CourseID     uuid.UUID  `gorm:"type:uuid;not null" json:"course_id"`
	Course       Course     `gorm:"foreignKey:CourseID;references:ID;constraint:OnDelete:CASCADE;" json:"course,omitempty"`

	Grade    int64  `gorm:"default:0" json:"grade"`
	Feedback string `gorm:"type:text" json:"feedback"`

	Files []SubmissionFile `gorm:"foreignKey:StudentAssignmentID;constraint:OnDelete:CASCADE;" json:"files,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type SubmissionFile struct {
	ID                  uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentAssignmentID uuid.UUID `gorm:"type:uuid;not null" json:"student_assignment_id"`
	FileName            string    `gorm:"size:500;not null" json:"file_name"`
}
