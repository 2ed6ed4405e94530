package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alielsalek1/learning-management-system-LMS/models"
)

func TestToQuizGradeResponse(t *testing.T) {
	sq := models.StudentQuiz{Grade: 7}
	resp := toQuizGradeResponse(sq, 10)

	assert.Equal(t, 7.0, resp.Grade)
	assert.Equal(t, 10, resp.MaxGrade)
}

func TestToQuizGradeResponses(t *testing.T) {
	records := []models.StudentQuiz{
		{
			Grade: 3,
			Quiz: models.Quiz{Questions: []models.Question{
				{Content: "a"}, {Content: "b"}, {Content: "c"}, {Content: "d"},
			}},
		},
		{
			Grade: 0,
			Quiz:  models.Quiz{},
		},
	}

	out := toQuizGradeResponses(records)

	assert.Len(t, out, 2)
	assert.Equal(t, 4, out[0].MaxGrade)
	assert.Equal(t, 3.0, out[0].Grade)
	assert.Equal(t, 0, out[1].MaxGrade)
}
