package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Alielsalek1/learning-management-system-LMS/models"
	"github.com/Alielsalek1/learning-management-system-LMS/utils"
)

func TestSampleQuestions(t *testing.T) {
	bank := makeQuestions(10)

	selected, err := SampleQuestions(bank, 4)
	assert.NoError(t, err)
	assert.Len(t, selected, 4)

	// Không lặp và đều thuộc ngân hàng
	inBank := make(map[uuid.UUID]bool, len(bank))
	for _, q := range bank {
		inBank[q.ID] = true
	}
	seen := make(map[uuid.UUID]bool)
	for _, q := range selected {
		assert.True(t, inBank[q.ID])
		assert.False(t, seen[q.ID])
		seen[q.ID] = true
	}
}

func TestSampleQuestions_Errors(t *testing.T) {
	bank := makeQuestions(3)

	tests := []struct {
		name  string
		count int
	}{
		{"ngan hang khong du cau", 5},
		{"count bang 0", 0},
		{"count am", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleQuestions(bank, tt.count)
			assert.True(t, errors.Is(err, utils.ErrValidation))
		})
	}
}

func TestScoreQuiz(t *testing.T) {
	q1 := models.Question{ID: uuid.New(), Answer: "42"}
	q2 := models.Question{ID: uuid.New(), Answer: "true"}
	q3 := models.Question{ID: uuid.New(), Answer: "Paris"}
	questions := []models.Question{q1, q2, q3}

	tests := []struct {
		name    string
		answers []QuestionAnswer
		want    int
	}{
		{
			"tat ca dung",
			[]QuestionAnswer{
				{QuestionID: q1.ID, Answer: "42"},
				{QuestionID: q2.ID, Answer: "true"},
				{QuestionID: q3.ID, Answer: "Paris"},
			},
			3,
		},
		{
			"so sanh chuoi chinh xac, khong chuan hoa",
			[]QuestionAnswer{
				{QuestionID: q1.ID, Answer: " 42"},
				{QuestionID: q2.ID, Answer: "TRUE"},
				{QuestionID: q3.ID, Answer: "Paris"},
			},
			1,
		},
		{"khong tra loi cau nao", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := ScoreQuiz(questions, tt.answers)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, score)
		})
	}
}

func TestScoreQuiz_UnknownQuestion(t *testing.T) {
	questions := makeQuestions(2)
	answers := []QuestionAnswer{{QuestionID: uuid.New(), Answer: "x"}}

	_, err := ScoreQuiz(questions, answers)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}
