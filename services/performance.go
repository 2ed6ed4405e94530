package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Alielsalek1/learning-management-system-LMS/models"
	"github.com/Alielsalek1/learning-management-system-LMS/utils"
)

// StudentPerformance: một bản ghi cho mỗi sinh viên ghi danh trong khóa học.
// Các tỉ lệ là float64, không làm tròn trước khi trả về.
type StudentPerformance struct {
	StudentID            uuid.UUID `json:"student_id"`
	StudentName          string    `json:"student_name"`
	QuizAverage          float64   `json:"quiz_average"`
	AssignmentAverage    float64   `json:"assignment_average"`
	AttendancePercentage float64   `json:"attendance_percentage"`
	IsCourseCompleted    bool      `json:"is_course_completed"`
}

// PerformanceInput gom dữ liệu đã load sẵn để phần tính toán thuần túy
// không phụ thuộc DB (test được bằng dữ liệu in-memory).
type PerformanceInput struct {
	Students    []models.User
	Completion  map[uuid.UUID]bool // studentID -> isCompleted
	Quizzes     []models.Quiz      // cần preload Questions để biết điểm tối đa
	Assignments []models.Assignment
	LessonCount int

	QuizGrades       map[uuid.UUID]map[uuid.UUID]float64 // studentID -> quizID -> điểm
	AssignmentGrades map[uuid.UUID]map[uuid.UUID]int64   // studentID -> assignmentID -> điểm
	LessonsAttended  map[uuid.UUID]int                   // studentID -> số buổi có mặt
}

// ComputeCoursePerformance tính ba tỉ lệ % cho từng sinh viên.
// Quiz/assignment chưa làm tính điểm 0; khóa học không có hoạt động nào
// của một loại thì trung bình loại đó là 0, không bao giờ NaN.
func ComputeCoursePerformance(in PerformanceInput) []StudentPerformance {
	out := make([]StudentPerformance, 0, len(in.Students))

	for _, student := range in.Students {
		perf := StudentPerformance{
			StudentID:         student.ID,
			StudentName:       student.Name,
			IsCourseCompleted: in.Completion[student.ID],
		}

		if len(in.Quizzes) > 0 {
			total := 0.0
			for _, quiz := range in.Quizzes {
				grade := in.QuizGrades[student.ID][quiz.ID]
				maxGrade := float64(len(quiz.Questions))
				if maxGrade > 0 {
					total += grade / maxGrade * 100.0
				}
			}
			perf.QuizAverage = total / float64(len(in.Quizzes))
		}

		if len(in.Assignments) > 0 {
			total := 0.0
			for _, assignment := range in.Assignments {
				grade := float64(in.AssignmentGrades[student.ID][assignment.ID])
				if assignment.MaxGrade > 0 {
					total += grade / float64(assignment.MaxGrade) * 100.0
				}
			}
			perf.AssignmentAverage = total / float64(len(in.Assignments))
		}

		if in.LessonCount > 0 {
			perf.AttendancePercentage = float64(in.LessonsAttended[student.ID]) * 100.0 / float64(in.LessonCount)
		}

		out = append(out, perf)
	}

	return out
}

// CourseAnalytics load toàn bộ dữ liệu của khóa học rồi tính performance.
// Chỉ admin hoặc giảng viên của khóa học được xem.
func CourseAnalytics(db *gorm.DB, courseID uuid.UUID, caller models.User) ([]StudentPerformance, error) {
	course, err := findCourse(db, courseID)
	if err != nil {
		return nil, err
	}
	if !CanManageCourse(caller, *course) {
		return nil, fmt.Errorf("%w: bạn không có quyền xem dữ liệu analytics này", utils.ErrForbidden)
	}

	in, err := loadPerformanceInput(db, course)
	if err != nil {
		return nil, err
	}
	return ComputeCoursePerformance(*in), nil
}

func findCourse(db *gorm.DB, courseID uuid.UUID) (*models.Course, error) {
	var course models.Course
	if err := db.First(&course, "id = ?", courseID).Error; err != nil {
		return nil, fmt.Errorf("%w: không tìm thấy khóa học", utils.ErrNotFound)
	}
	return &course, nil
}

func loadPerformanceInput(db *gorm.DB, course *models.Course) (*PerformanceInput, error) {
	var enrollments []models.EnrolledCourse
	if err := db.Preload("Student").Where("course_id = ?", course.ID).Find(&enrollments).Error; err != nil {
		return nil, err
	}

	in := PerformanceInput{
		Completion:       make(map[uuid.UUID]bool),
		QuizGrades:       make(map[uuid.UUID]map[uuid.UUID]float64),
		AssignmentGrades: make(map[uuid.UUID]map[uuid.UUID]int64),
		LessonsAttended:  make(map[uuid.UUID]int),
	}
	for _, enrollment := range enrollments {
		in.Students = append(in.Students, enrollment.Student)
		in.Completion[enrollment.StudentID] = enrollment.IsCompleted
	}

	if err := db.Preload("Questions").Where("course_id = ?", course.ID).Find(&in.Quizzes).Error; err != nil {
		return nil, err
	}
	if err := db.Where("course_id = ?", course.ID).Find(&in.Assignments).Error; err != nil {
		return nil, err
	}

	var lessonCount int64
	if err := db.Model(&models.Lesson{}).Where("course_id = ?", course.ID).Count(&lessonCount).Error; err != nil {
		return nil, err
	}
	in.LessonCount = int(lessonCount)

	var studentQuizzes []models.StudentQuiz
	if err := db.Joins("JOIN quizzes ON quizzes.id = student_quizzes.quiz_id").
		Where("quizzes.course_id = ?", course.ID).
		Find(&studentQuizzes).Error; err != nil {
		return nil, err
	}
	for _, sq := range studentQuizzes {
		if in.QuizGrades[sq.StudentID] == nil {
			in.QuizGrades[sq.StudentID] = make(map[uuid.UUID]float64)
		}
		in.QuizGrades[sq.StudentID][sq.QuizID] = sq.Grade
	}

	var studentAssignments []models.StudentAssignment
	if err := db.Where("course_id = ?", course.ID).Find(&studentAssignments).Error; err != nil {
		return nil, err
	}
	for _, sa := range studentAssignments {
		if in.AssignmentGrades[sa.StudentID] == nil {
			in.AssignmentGrades[sa.StudentID] = make(map[uuid.UUID]int64)
		}
		in.AssignmentGrades[sa.StudentID][sa.AssignmentID] = sa.Grade
	}

	var studentLessons []models.StudentLesson
	if err := db.Joins("JOIN lessons ON lessons.id = student_lessons.lesson_id").
		Where("lessons.course_id = ?", course.ID).
		Find(&studentLessons).Error; err != nil {
		return nil, err
	}
	for _, sl := range studentLessons {
		in.LessonsAttended[sl.StudentID]++
	}

	return &in, nil
}
