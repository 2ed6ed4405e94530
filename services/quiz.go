package services

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/Alielsalek1/learning-management-system-LMS/models"
	"github.com/Alielsalek1/learning-management-system-LMS/utils"
)

type QuestionAnswer struct {
	QuestionID uuid.UUID `json:"question_id" binding:"required"`
	Answer     string    `json:"answer"`
}

// SampleQuestions chọn ngẫu nhiên count câu hỏi không lặp từ ngân hàng câu
// hỏi. Trả lỗi validation nếu ngân hàng không đủ câu.
func SampleQuestions(questions []models.Question, count int) ([]models.Question, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: số câu hỏi phải lớn hơn 0", utils.ErrValidation)
	}
	if len(questions) < count {
		return nil, fmt.Errorf("%w: ngân hàng câu hỏi không đủ câu", utils.ErrValidation)
	}

	shuffled := make([]models.Question, len(questions))
	copy(shuffled, questions)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:count], nil
}

// ScoreQuiz chấm bài: so sánh chuỗi đáp án chính xác, mỗi câu đúng 1 điểm.
// Điểm là số câu đúng, không quy đổi thang. Đáp án trỏ đến câu hỏi không
// thuộc quiz thì trả lỗi not-found.
func ScoreQuiz(questions []models.Question, answers []QuestionAnswer) (int, error) {
	byID := make(map[uuid.UUID]models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	score := 0
	for _, answer := range answers {
		question, ok := byID[answer.QuestionID]
		if !ok {
			return 0, fmt.Errorf("%w: câu hỏi không thuộc quiz này", utils.ErrNotFound)
		}
		if question.Answer == answer.Answer {
			score++
		}
	}
	return score, nil
}
