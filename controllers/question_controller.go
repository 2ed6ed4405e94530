package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Alielsalek1/learning-management-system-LMS/models"
	"github.com/Alielsalek1/learning-management-system-LMS/services"
	"github.com/Alielsalek1/learning-management-system-LMS/utils"
)

type CreateQuestionInput struct {
	CourseID uuid.UUID           `json:"course_id" binding:"required"`
	Content  string              `json:"content" binding:"required"`
	Answer   string              `json:"answer" binding:"required"`
	Type     models.QuestionType `json:"type" binding:"required,oneof=mcq short_answer true_false"`
}

// CreateQuestion thêm câu hỏi vào ngân hàng câu hỏi của khóa học
func CreateQuestion(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input CreateQuestionInput
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
	if !services.CanManageCourse(user, course) {
		utils.RespondError(c, http.StatusForbidden, "Bạn không phải giảng viên của khóa học này")
		return
	}

	question := models.Question{
		CourseID: course.ID,
		Content:  input.Content,
		Answer:   input.Answer,
		Type:     input.Type,
	}
	if err := db.Create(&question).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tạo câu hỏi")
		return
	}

	services.NotifyUser(db, course.InstructorID,
		fmt.Sprintf("Câu hỏi mới đã được thêm vào khóa học %s", course.Title))

	utils.RespondSuccess(c, http.StatusCreated, "Tạo câu hỏi thành công", question)
}

func GetQuestionByID(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := getDB(c)

	var question models.Question
	if err := db.First(&question, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy câu hỏi")
		return
	}

	var course models.Course
	if err := db.First(&course, "id = ?", question.CourseID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy khóa học")
		return
	}
	if !services.CanManageCourse(user, course) {
		utils.RespondError(c, http.StatusForbidden, "Bạn không phải giảng viên của khóa học này")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "OK", question)
}

// GetQuestionsByCourse trả ngân hàng câu hỏi, lọc theo ?type= nếu có
func GetQuestionsByCourse(c *gin.Context) {
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
	if !services.CanManageCourse(user, course) {
		utils.RespondError(c, http.StatusForbidden, "Bạn không phải giảng viên của khóa học này")
		return
	}

	query := db.Where("course_id = ?", course.ID)
	if questionType := c.Query("type"); questionType != "" {
		query = query.Where("type = ?", questionType)
	}

	var questions []models.Question
	if err := query.Find(&questions).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tải câu hỏi")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", questions)
}

func DeleteQuestion(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := getDB(c)

	var question models.Question
	if err := db.First(&question, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy câu hỏi")
		return
	}

	var course models.Course
	if err := db.First(&course, "id = ?", question.CourseID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy khóa học")
		return
	}
	if !services.CanManageCourse(user, course) {
		utils.RespondError(c, http.StatusForbidden, "Bạn không phải giảng viên của khóa học này")
		return
	}

	if err := db.Delete(&question).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi xóa câu hỏi")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Xóa câu hỏi thành công", nil)
}
