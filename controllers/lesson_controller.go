package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Alielsalek1/learning-management-system-LMS/models"
	"github.com/Alielsalek1/learning-management-system-LMS/services"
	"github.com/Alielsalek1/learning-management-system-LMS/utils"
)

type CreateLessonInput struct {
	CourseID uuid.UUID `json:"course_id" binding:"required"`
	Otp      string    `json:"otp" binding:"required"`
}

type UpdateLessonOtpInput struct {
	Otp string `json:"otp" binding:"required"`
}

// CreateLesson tạo buổi học mới cho khóa học kèm mã OTP điểm danh
func CreateLesson(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input CreateLessonInput
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

	lesson := models.Lesson{CourseID: course.ID, Otp: input.Otp}
	if err := db.Create(&lesson).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tạo buổi học")
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, "Tạo buổi học thành công", lesson)
}

func GetLessonsByCourse(c *gin.Context) {
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

	var lessons []models.Lesson
	if err := db.Where("course_id = ?", course.ID).Find(&lessons).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tải danh sách buổi học")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", lessons)
}

func GetLessonByID(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := getDB(c)

	var lesson models.Lesson
	if err := db.Preload("Course").First(&lesson, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy buổi học")
		return
	}
	allowed, err := services.CanAccessCourse(db, user, lesson.Course)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi kiểm tra quyền")
		return
	}
	if !allowed {
		utils.RespondError(c, http.StatusForbidden, "Bạn chưa ghi danh khóa học này")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", lesson)
}

// UpdateLessonOtp đổi mã OTP của buổi học
func UpdateLessonOtp(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := getDB(c)

	var lesson models.Lesson
	if err := db.Preload("Course").First(&lesson, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy buổi học")
		return
	}
	if !services.CanManageCourse(user, lesson.Course) {
		utils.RespondError(c, http.StatusForbidden, "Bạn không phải giảng viên của khóa học này")
		return
	}

	var input UpdateLessonOtpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	lesson.Otp = input.Otp
	if err := db.Save(&lesson).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi cập nhật OTP")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Cập nhật OTP thành công", nil)
}

func DeleteLesson(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := getDB(c)

	var lesson models.Lesson
	if err := db.Preload("Course").First(&lesson, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy buổi học")
		return
	}
	if !services.CanManageCourse(user, lesson.Course) {
		utils.RespondError(c, http.StatusForbidden, "Bạn không phải giảng viên của khóa học này")
		return
	}

	if err := db.Delete(&lesson).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi xóa buổi học")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Xóa buổi học thành công", nil)
}
