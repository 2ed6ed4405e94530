package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alielsalek1/learning-management-system-LMS/models"
)

func TestBuildPerformanceReport(t *testing.T) {
	alice := models.User{ID: uuid.New(), Name: "alice"}
	bob := models.User{ID: uuid.New(), Name: "bob"}
	quiz := models.Quiz{ID: uuid.New(), Questions: makeQuestions(2)}
	assignment := models.Assignment{ID: uuid.New(), MaxGrade: 10}
	lesson := models.Lesson{ID: uuid.New()}

	in := ReportInput{
		Students:    []models.User{alice, bob},
		Quizzes:     []models.Quiz{quiz},
		Assignments: []models.Assignment{assignment},
		Lessons:     []models.Lesson{lesson},
		QuizGrades: map[uuid.UUID]map[uuid.UUID]float64{
			alice.ID: {quiz.ID: 2},
		},
		AssignmentGrades: map[uuid.UUID]map[uuid.UUID]int64{
			alice.ID: {assignment.ID: 7},
		},
		Attended: map[uuid.UUID]map[uuid.UUID]bool{
			alice.ID: {lesson.ID: true},
		},
	}

	f, err := BuildPerformanceReport(in)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Quizzes", "Assignments", "Attendance"}, f.GetSheetList())

	// Sheet Quizzes: tích chéo 2 sinh viên x 1 quiz
	name, err := f.GetCellValue("Quizzes", "B2")
	require.NoError(t, err)
	assert.Equal(t, "alice", name)
	grade, err := f.GetCellValue("Quizzes", "D2")
	require.NoError(t, err)
	assert.Equal(t, "2", grade)

	// Sinh viên chưa làm ghi 0
	grade, err = f.GetCellValue("Quizzes", "D3")
	require.NoError(t, err)
	assert.Equal(t, "0", grade)

	// Sheet Assignments kèm điểm tối đa
	grade, err = f.GetCellValue("Assignments", "D2")
	require.NoError(t, err)
	assert.Equal(t, "7", grade)
	maxGrade, err := f.GetCellValue("Assignments", "E2")
	require.NoError(t, err)
	assert.Equal(t, "10", maxGrade)

	// Sheet Attendance: Present cho alice, Absent cho bob
	status, err := f.GetCellValue("Attendance", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Present", status)
	status, err = f.GetCellValue("Attendance", "D3")
	require.NoError(t, err)
	assert.Equal(t, "Absent", status)
}

func TestBuildPerformanceReport_EmptyCourse(t *testing.T) {
	f, err := BuildPerformanceReport(ReportInput{})
	require.NoError(t, err)
	defer f.Close()

	// Ba sheet vẫn tồn tại, chỉ có dòng header
	for _, sheet := range []string{"Quizzes", "Assignments", "Attendance"} {
		rows, err := f.GetRows(sheet)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	}
}
