package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Alielsalek1/learning-management-system-LMS/models"
	"github.com/Alielsalek1/learning-management-system-LMS/services"
	"github.com/Alielsalek1/learning-management-system-LMS/utils"
)

type GenerateQuizInput struct {
	CourseID      uuid.UUID `json:"course_id" binding:"required"`
	QuestionCount int       `json:"question_count" binding:"required,gt=0"`
}

type SubmitQuizInput struct {
	Answers []services.QuestionAnswer `json:"answers" binding:"required"`
}

// QuizGradeResponse kèm điểm tối đa (số câu hỏi) để đọc được điểm thô
type QuizGradeResponse struct {
	models.StudentQuiz
	MaxGrade int `json:"max_grade"`
}

func toQuizGradeResponse(sq models.StudentQuiz, maxGrade int) QuizGradeResponse {
	return QuizGradeResponse{StudentQuiz: sq, MaxGrade: maxGrade}
}

// toQuizGradeResponses map danh sách điểm đã preload Quiz.Questions
func toQuizGradeResponses(records []models.StudentQuiz) []QuizGradeResponse {
	out := make([]QuizGradeResponse, 0, len(records))
	for _, record := range records {
		out = append(out, toQuizGradeResponse(record, len(record.Quiz.Questions)))
	}
	return out
}

// GenerateQuiz tạo đề bằng cách lấy ngẫu nhiên câu hỏi từ ngân hàng khóa học
func GenerateQuiz(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input GenerateQuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	db := getDB(c)

	var course models.Course
	if err := db.First(&course, "id = ?", input.CourseID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy khóa học")
		return
	}
	allowed, err := services.CanAccessCourse(db, user, course)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi kiểm tra quyền")
		return
	}
	if !allowed {
		utils.RespondError(c, http.StatusForbidden, "Bạn chưa ghi danh khóa học này")
		return
	}

	var bank []models.Question
	if err := db.Where("course_id = ?", course.ID).Find(&bank).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tải ngân hàng câu hỏi")
		return
	}

	selected, err := services.SampleQuestions(bank, input.QuestionCount)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	quiz := models.Quiz{CourseID: course.ID, Questions: selected}
	if err := db.Create(&quiz).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tạo bài kiểm tra")
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, "Tạo bài kiểm tra thành công", quiz)
}

func GetQuizByID(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	quizID, ok := parseIDParam(c, "quizId")
	if !ok {
		return
	}

	db := getDB(c)

	var quiz models.Quiz
	if err := db.Preload("Questions").First(&quiz, "id = ?", quizID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy bài kiểm tra")
		return
	}

	var course models.Course
	if err := db.First(&course, "id = ?", quiz.CourseID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy khóa học")
		return
	}
	allowed, err := services.CanAccessCourse(db, user, course)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi kiểm tra quyền")
		return
	}
	if !allowed {
		utils.RespondError(c, http.StatusForbidden, "Bạn chưa ghi danh khóa học này")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "OK", quiz)
}

func GetQuizzesByCourse(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	courseID, ok := parseIDParam(c, "courseId")
	if !ok {
		return
	}

	db := getDB(c)

	var course models.Course
	if err := db.First(&course, "id = ?", courseID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy khóa học")
		return
	}
	allowed, err := services.CanAccessCourse(db, user, course)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi kiểm tra quyền")
		return
	}
	if !allowed {
		utils.RespondError(c, http.StatusForbidden, "Bạn chưa ghi danh khóa học này")
		return
	}

	var quizzes []models.Quiz
	if err := db.Preload("Questions").Where("course_id = ?", course.ID).Find(&quizzes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tải bài kiểm tra")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", quizzes)
}

// SubmitQuiz chấm bài, mỗi sinh viên chỉ nộp một lần cho mỗi bài kiểm tra
func SubmitQuiz(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	quizID, ok := parseIDParam(c, "quizId")
	if !ok {
		return
	}

	var input SubmitQuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	db := getDB(c)

	var quiz models.Quiz
	if err := db.Preload("Questions").First(&quiz, "id = ?", quizID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy bài kiểm tra")
		return
	}

	enrolled, err := services.IsEnrolled(db, user.ID, quiz.CourseID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi kiểm tra ghi danh")
		return
	}
	if !enrolled {
		utils.RespondError(c, http.StatusForbidden, "Bạn chưa ghi danh khóa học này")
		return
	}

	var count int64
	if err := db.Model(&models.StudentQuiz{}).
		Where("quiz_id = ? AND student_id = ?", quiz.ID, user.ID).
		Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi kiểm tra bài nộp")
		return
	}
	if count > 0 {
		utils.RespondError(c, http.StatusConflict, "Bạn đã nộp bài kiểm tra này rồi")
		return
	}

	score, err := services.ScoreQuiz(quiz.Questions, input.Answers)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	record := models.StudentQuiz{
		QuizID:    quiz.ID,
		StudentID: user.ID,
		Grade:     float64(score),
	}
	if err := db.Create(&record).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi lưu kết quả")
		return
	}

	services.NotifyUser(db, user.ID, "Bài kiểm tra của bạn đã được chấm")

	utils.RespondSuccess(c, http.StatusCreated, "Nộp bài thành công", record)
}

// GetQuizGrades trả điểm của tất cả sinh viên đã nộp một bài kiểm tra
func GetQuizGrades(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	quizID, ok := parseIDParam(c, "quizId")
	if !ok {
		return
	}

	db := getDB(c)

	var quiz models.Quiz
	if err := db.Preload("Questions").First(&quiz, "id = ?", quizID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy bài kiểm tra")
		return
	}

	var course models.Course
	if err := db.First(&course, "id = ?", quiz.CourseID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy khóa học")
		return
	}
	if !services.CanManageCourse(user, course) {
		utils.RespondError(c, http.StatusForbidden, "Bạn không phải giảng viên của khóa học này")
		return
	}

	var grades []models.StudentQuiz
	if err := db.Where("quiz_id = ?", quiz.ID).Find(&grades).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tải điểm")
		return
	}

	out := make([]QuizGradeResponse, 0, len(grades))
	for _, grade := range grades {
		out = append(out, toQuizGradeResponse(grade, len(quiz.Questions)))
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", out)
}

// GetMyQuizGrades trả toàn bộ điểm kiểm tra của sinh viên hiện tại
func GetMyQuizGrades(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var grades []models.StudentQuiz
	if err := getDB(c).Preload("Quiz.Questions").Where("student_id = ?", user.ID).Find(&grades).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tải điểm")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", toQuizGradeResponses(grades))
}

func GetQuizGradesByStudent(c *gin.Context) {
	studentID, ok := parseIDParam(c, "studentId")
	if !ok {
		return
	}

	var grades []models.StudentQuiz
	if err := getDB(c).Preload("Quiz.Questions").Where("student_id = ?", studentID).Find(&grades).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tải điểm")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", toQuizGradeResponses(grades))
}
