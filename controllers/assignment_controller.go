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

type CreateAssignmentInput struct {
	CourseID     uuid.UUID `json:"course_id" binding:"required"`
	Instructions string    `json:"instructions" binding:"required"`
	MaxGrade     int       `json:"max_grade" binding:"required,gt=0"`
}

type UpdateAssignmentInput struct {
	Instructions *string `json:"instructions"`
	MaxGrade     *int    `json:"max_grade"`
}

// notifyCourseStudents gửi thông báo cho mọi sinh viên đã ghi danh khóa học
func notifyCourseStudents(c *gin.Context, courseID uuid.UUID, message string) {
	db := getDB(c)
	var enrollments []models.EnrolledCourse
	if err := db.Where("course_id = ? AND is_confirmed = ?", courseID, true).Find(&enrollments).Error; err != nil {
		return
	}
	for _, enrollment := range enrollments {
		services.NotifyUser(db, enrollment.StudentID, message)
	}
}

// CreateAssignment tạo bài tập và thông báo cho giảng viên cùng sinh viên
func CreateAssignment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input CreateAssignmentInput
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

	assignment := models.Assignment{
		CourseID:     course.ID,
		Instructions: input.Instructions,
		MaxGrade:     input.MaxGrade,
	}
	if err := db.Create(&assignment).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tạo bài tập")
		return
	}

	services.NotifyUser(db, course.InstructorID,
		fmt.Sprintf("Bài tập mới đã được tạo trong khóa học %s", course.Title))
	notifyCourseStudents(c, course.ID,
		fmt.Sprintf("Khóa học %s có bài tập mới", course.Title))

	utils.RespondSuccess(c, http.StatusCreated, "Tạo bài tập thành công", assignment)
}

func GetAssignmentByID(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := getDB(c)

	var assignment models.Assignment
	if err := db.First(&assignment, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy bài tập")
		return
	}

	var course models.Course
	if err := db.First(&course, "id = ?", assignment.CourseID).Error; err != nil {
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

	utils.RespondSuccess(c, http.StatusOK, "OK", assignment)
}

func GetAssignmentsByCourse(c *gin.Context) {
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

	var assignments []models.Assignment
	if err := db.Where("course_id = ?", course.ID).Find(&assignments).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tải bài tập")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", assignments)
}

// UpdateAssignment cập nhật bài tập và thông báo cho sinh viên
func UpdateAssignment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := getDB(c)

	var assignment models.Assignment
	if err := db.First(&assignment, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy bài tập")
		return
	}

	var course models.Course
	if err := db.First(&course, "id = ?", assignment.CourseID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy khóa học")
		return
	}
	if !services.CanManageCourse(user, course) {
		utils.RespondError(c, http.StatusForbidden, "Bạn không phải giảng viên của khóa học này")
		return
	}

	var input UpdateAssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if input.Instructions != nil {
		assignment.Instructions = *input.Instructions
	}
	if input.MaxGrade != nil {
		if *input.MaxGrade <= 0 {
			utils.RespondError(c, http.StatusBadRequest, "Điểm tối đa phải lớn hơn 0")
			return
		}
		assignment.MaxGrade = *input.MaxGrade
	}

	if err := db.Save(&assignment).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi cập nhật bài tập")
		return
	}

	notifyCourseStudents(c, course.ID,
		fmt.Sprintf("Bài tập trong khóa học %s đã được cập nhật", course.Title))

	utils.RespondSuccess(c, http.StatusOK, "Cập nhật bài tập thành công", assignment)
}

func DeleteAssignment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := getDB(c)

	var assignment models.Assignment
	if err := db.First(&assignment, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy bài tập")
		return
	}

	var course models.Course
	if err := db.First(&course, "id = ?", assignment.CourseID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy khóa học")
		return
	}
	if !services.CanManageCourse(user, course) {
		utils.RespondError(c, http.StatusForbidden, "Bạn không phải giảng viên của khóa học này")
		return
	}

	if err := db.Delete(&assignment).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi xóa bài tập")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Xóa bài tập thành công", nil)
}
