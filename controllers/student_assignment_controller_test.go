package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alielsalek1/learning-management-system-LMS/models"
)

func TestToStudentAssignmentResponse(t *testing.T) {
	tests := []struct {
		name     string
		grade    int64
		maxGrade int
		want     float64
	}{
		{"diem tron ven", 10, 10, 100},
		{"nua diem", 5, 10, 50},
		{"chua cham", 0, 10, 0},
		{"thang diem le", 7, 8, 87.5},
		{"max grade bang 0", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := models.StudentAssignment{Grade: tt.grade}
			resp := toStudentAssignmentResponse(record, tt.maxGrade)
			assert.Equal(t, tt.want, resp.Score)
			assert.Equal(t, tt.grade, resp.Grade)
		})
	}
}

func TestToStudentAssignmentResponses(t *testing.T) {
	records := []models.StudentAssignment{
		{Grade: 8, Assignment: models.Assignment{MaxGrade: 10}},
		{Grade: 3, Assignment: models.Assignment{MaxGrade: 4}},
		{Grade: 0, Assignment: models.Assignment{MaxGrade: 20}},
	}

	out := toStudentAssignmentResponses(records)

	assert.Len(t, out, 3)
	assert.Equal(t, 80.0, out[0].Score)
	assert.Equal(t, 75.0, out[1].Score)
	assert.Equal(t, 0.0, out[2].Score)
}

func TestToStudentAssignmentResponses_Empty(t *testing.T) {
	out := toStudentAssignmentResponses(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
