package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/Alielsalek1/learning-management-system-LMS/models"
	"github.com/Alielsalek1/learning-management-system-LMS/utils"
)

// ReportInput: dữ liệu đã load sẵn cho file báo cáo, ba sheet độc lập
type ReportInput struct {
	Students    []models.User
	Quizzes     []models.Quiz
	Assignments []models.Assignment
	Lessons     []models.Lesson

	QuizGrades       map[uuid.UUID]map[uuid.UUID]float64
	AssignmentGrades map[uuid.UUID]map[uuid.UUID]int64
	Attended         map[uuid.UUID]map[uuid.UUID]bool // studentID -> lessonID -> có mặt
}

// BuildPerformanceReport tạo workbook ba sheet (Quizzes, Assignments,
// Attendance), mỗi sheet là tích chéo sinh viên × hoạt động. Điểm của
// hoạt động chưa làm ghi 0; điểm danh ghi "Present"/"Absent".
func BuildPerformanceReport(in ReportInput) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", "Quizzes"); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet("Assignments"); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet("Attendance"); err != nil {
		return nil, err
	}

	writeHeader := func(sheet string, cols []string) {
		for i, col := range cols {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, col)
		}
		end, _ := excelize.ColumnNumberToName(len(cols))
		f.SetColWidth(sheet, "A", end, 20)
	}

	writeHeader("Quizzes", []string{"Student ID", "Student Name", "Quiz ID", "Grade", "Max Grade"})
	row := 2
	for _, student := range in.Students {
		for _, quiz := range in.Quizzes {
			f.SetCellValue("Quizzes", fmt.Sprintf("A%d", row), student.ID.String())
			f.SetCellValue("Quizzes", fmt.Sprintf("B%d", row), student.Name)
			f.SetCellValue("Quizzes", fmt.Sprintf("C%d", row), quiz.ID.String())
			f.SetCellValue("Quizzes", fmt.Sprintf("D%d", row), in.QuizGrades[student.ID][quiz.ID])
			f.SetCellValue("Quizzes", fmt.Sprintf("E%d", row), len(quiz.Questions))
			row++
		}
	}

	writeHeader("Assignments", []string{"Student ID", "Student Name", "Assignment ID", "Grade", "Max Grade"})
	row = 2
	for _, student := range in.Students {
		for _, assignment := range in.Assignments {
			f.SetCellValue("Assignments", fmt.Sprintf("A%d", row), student.ID.String())
			f.SetCellValue("Assignments", fmt.Sprintf("B%d", row), student.Name)
			f.SetCellValue("Assignments", fmt.Sprintf("C%d", row), assignment.ID.String())
			f.SetCellValue("Assignments", fmt.Sprintf("D%d", row), in.AssignmentGrades[student.ID][assignment.ID])
			f.SetCellValue("Assignments", fmt.Sprintf("E%d", row), assignment.MaxGrade)
			row++
		}
	}

	writeHeader("Attendance", []string{"Student ID", "Student Name", "Lesson ID", "Status"})
	row = 2
	for _, student := range in.Students {
		for _, lesson := range in.Lessons {
			status := "Absent"
			if in.Attended[student.ID][lesson.ID] {
				status = "Present"
			}
			f.SetCellValue("Attendance", fmt.Sprintf("A%d", row), student.ID.String())
			f.SetCellValue("Attendance", fmt.Sprintf("B%d", row), student.Name)
			f.SetCellValue("Attendance", fmt.Sprintf("C%d", row), lesson.ID.String())
			f.SetCellValue("Attendance", fmt.Sprintf("D%d", row), status)
			row++
		}
	}

	return f, nil
}

// PerformanceReport: quyền như analytics (admin hoặc giảng viên của khóa học).
// Thuần đọc, tạo lại bao nhiêu lần cũng được.
func PerformanceReport(db *gorm.DB, courseID uuid.UUID, caller models.User) (*excelize.File, error) {
	course, err := findCourse(db, courseID)
	if err != nil {
		return nil, err
	}
	if !CanManageCourse(caller, *course) {
		return nil, fmt.Errorf("%w: bạn không có quyền tạo báo cáo này", utils.ErrForbidden)
	}

	perf, err := loadPerformanceInput(db, course)
	if err != nil {
		return nil, err
	}

	in := ReportInput{
		Students:         perf.Students,
		Quizzes:          perf.Quizzes,
		Assignments:      perf.Assignments,
		QuizGrades:       perf.QuizGrades,
		AssignmentGrades: perf.AssignmentGrades,
		Attended:         make(map[uuid.UUID]map[uuid.UUID]bool),
	}

	if err := db.Where("course_id = ?", course.ID).Find(&in.Lessons).Error; err != nil {
		return nil, err
	}

	var studentLessons []models.StudentLesson
	if err := db.Joins("JOIN lessons ON lessons.id = student_lessons.lesson_id").
		Where("lessons.course_id = ?", course.ID).
		Find(&studentLessons).Error; err != nil {
		return nil, err
	}
	for _, sl := range studentLessons {
		if in.Attended[sl.StudentID] == nil {
			in.Attended[sl.StudentID] = make(map[uuid.UUID]bool)
		}
		in.Attended[sl.StudentID][sl.LessonID] = true
	}

	return BuildPerformanceReport(in)
}
