package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Alielsalek1/learning-management-system-LMS/models"
)

func makeQuestions(n int) []models.Question {
	questions := make([]models.Question, n)
	for i := range questions {
		questions[i] = models.Question{ID: uuid.New()}
	}
	return questions
}

func TestComputeCoursePerformance_QuizAverage(t *testing.T) {
	student := models.User{ID: uuid.New(), Name: "alice"}
	quizTaken := models.Quiz{ID: uuid.New(), Questions: makeQuestions(2)}
	quizSkipped := models.Quiz{ID: uuid.New(), Questions: makeQuestions(4)}

	// Làm 1 trong 2 quiz, đúng 1/2 câu: (50 + 0) / 2 = 25
	in := PerformanceInput{
		Students: []models.User{student},
		Quizzes:  []models.Quiz{quizTaken, quizSkipped},
		QuizGrades: map[uuid.UUID]map[uuid.UUID]float64{
			student.ID: {quizTaken.ID: 1},
		},
	}

	out := ComputeCoursePerformance(in)
	assert.Len(t, out, 1)
	assert.Equal(t, 25.0, out[0].QuizAverage)
}

func TestComputeCoursePerformance_NoActivitiesIsZeroNotNaN(t *testing.T) {
	student := models.User{ID: uuid.New(), Name: "bob"}

	in := PerformanceInput{
		Students: []models.User{student},
	}

	out := ComputeCoursePerformance(in)
	assert.Len(t, out, 1)
	assert.Equal(t, 0.0, out[0].QuizAverage)
	assert.Equal(t, 0.0, out[0].AssignmentAverage)
	assert.Equal(t, 0.0, out[0].AttendancePercentage)
	assert.False(t, out[0].IsCourseCompleted)
}

func TestComputeCoursePerformance_AttendancePercentage(t *testing.T) {
	student := models.User{ID: uuid.New(), Name: "carol"}

	tests := []struct {
		name        string
		lessonCount int
		attended    int
		want        float64
	}{
		{"du het", 4, 4, 100},
		{"mot nua", 4, 2, 50},
		{"ba phan tam", 8, 3, 37.5},
		{"khong co buoi hoc", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := PerformanceInput{
				Students:        []models.User{student},
				LessonCount:     tt.lessonCount,
				LessonsAttended: map[uuid.UUID]int{student.ID: tt.attended},
			}
			out := ComputeCoursePerformance(in)
			assert.Equal(t, tt.want, out[0].AttendancePercentage)
		})
	}
}

func TestComputeCoursePerformance_AssignmentAverage(t *testing.T) {
	student := models.User{ID: uuid.New(), Name: "dave"}
	graded := models.Assignment{ID: uuid.New(), MaxGrade: 10}
	missing := models.Assignment{ID: uuid.New(), MaxGrade: 20}

	in := PerformanceInput{
		Students:    []models.User{student},
		Assignments: []models.Assignment{graded, missing},
		AssignmentGrades: map[uuid.UUID]map[uuid.UUID]int64{
			student.ID: {graded.ID: 8},
		},
	}

	// (80 + 0) / 2 = 40
	out := ComputeCoursePerformance(in)
	assert.Equal(t, 40.0, out[0].AssignmentAverage)
}

func TestComputeCoursePerformance_Completion(t *testing.T) {
	done := models.User{ID: uuid.New(), Name: "erin"}
	notDone := models.User{ID: uuid.New(), Name: "frank"}

	in := PerformanceInput{
		Students:   []models.User{done, notDone},
		Completion: map[uuid.UUID]bool{done.ID: true},
	}

	out := ComputeCoursePerformance(in)
	assert.True(t, out[0].IsCourseCompleted)
	assert.False(t, out[1].IsCourseCompleted)
}
