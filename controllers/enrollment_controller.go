package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alielsalek1/learning-management-system-LMS/models"
	"github.com/Alielsalek1/learning-management-system-LMS/services"
	"github.com/Alielsalek1/learning-management-system-LMS/utils"
)

type UpdateEnrollmentInput struct {
	IsCompleted *bool `json:"is_completed" binding:"required"`
}

// canTouchEnrollment cho phép sinh viên của bản ghi, giảng viên khóa học hoặc admin
func canTouchEnrollment(user models.User, enrollment models.EnrolledCourse, course models.Course) bool {
	if user.Role == models.RoleAdmin {
		return true
	}
	if enrollment.StudentID == user.ID {
		return true
	}
	return course.InstructorID == user.ID
}

// EnrollInCourse sinh viên tự ghi danh vào khóa học
func EnrollInCourse(c *gin.Context) {
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

	if user.Role != models.RoleStudent {
		utils.RespondError(c, http.StatusBadRequest, "Chỉ sinh viên mới được ghi danh khóa học")
		return
	}

	var count int64
	if err := db.Model(&models.EnrolledCourse{}).
		Where("student_id = ? AND course_id = ?", user.ID, course.ID).
		Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi kiểm tra ghi danh")
		return
	}
	if count > 0 {
		utils.RespondError(c, http.StatusConflict, "Bạn đã ghi danh khóa học này rồi")
		return
	}

	enrollment := models.EnrolledCourse{
		StudentID:   user.ID,
		CourseID:    course.ID,
		IsConfirmed: true,
	}
	if err := db.Create(&enrollment).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi ghi danh")
		return
	}

	services.NotifyUser(db, user.ID,
		fmt.Sprintf("Bạn đã ghi danh khóa học %s", course.Title))
	services.NotifyUser(db, course.InstructorID,
		fmt.Sprintf("%s đã ghi danh khóa học %s", user.Name, course.Title))

	utils.RespondSuccess(c, http.StatusCreated, "Ghi danh thành công", enrollment)
}

func GetEnrollments(c *gin.Context) {
	var enrollments []models.EnrolledCourse
	if err := getDB(c).Preload("Student").Preload("Course").Find(&enrollments).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tải danh sách ghi danh")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", enrollments)
}

func GetEnrollmentByID(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := getDB(c)

	var enrollment models.EnrolledCourse
	if err := db.Preload("Student").Preload("Course").First(&enrollment, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy bản ghi danh")
		return
	}
	if !canTouchEnrollment(user, enrollment, enrollment.Course) {
		utils.RespondError(c, http.StatusForbidden, "Bạn không có quyền xem bản ghi danh này")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", enrollment)
}

func GetEnrollmentsByStudent(c *gin.Context) {
	studentID, ok := parseIDParam(c, "studentId")
	if !ok {
		return
	}

	var enrollments []models.EnrolledCourse
	if err := getDB(c).Preload("Course").Where("student_id = ?", studentID).Find(&enrollments).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tải danh sách ghi danh")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", enrollments)
}

func GetEnrollmentsByCourse(c *gin.Context) {
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

	var enrollments []models.EnrolledCourse
	if err := db.Preload("Student").Where("course_id = ?", course.ID).Find(&enrollments).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tải danh sách ghi danh")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", enrollments)
}

// GetEnrollmentByPair tra bản ghi danh theo cặp sinh viên và khóa học
func GetEnrollmentByPair(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	studentID, ok := parseIDParam(c, "studentId")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(c, "courseId")
	if !ok {
		return
	}

	db := getDB(c)

	var enrollment models.EnrolledCourse
	if err := db.Preload("Course").
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		First(&enrollment).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy bản ghi danh")
		return
	}
	if !canTouchEnrollment(user, enrollment, enrollment.Course) {
		utils.RespondError(c, http.StatusForbidden, "Bạn không có quyền xem bản ghi danh này")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", enrollment)
}

// UpdateEnrollment chỉ cho đổi trạng thái hoàn thành khóa học
func UpdateEnrollment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := getDB(c)

	var enrollment models.EnrolledCourse
	if err := db.Preload("Course").First(&enrollment, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy bản ghi danh")
		return
	}
	if !canTouchEnrollment(user, enrollment, enrollment.Course) {
		utils.RespondError(c, http.StatusForbidden, "Bạn không có quyền sửa bản ghi danh này")
		return
	}

	var input UpdateEnrollmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	enrollment.IsCompleted = *input.IsCompleted
	if err := db.Save(&enrollment).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi cập nhật ghi danh")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Cập nhật ghi danh thành công", enrollment)
}

// DeleteEnrollment hủy ghi danh và thông báo cho cả hai phía
func DeleteEnrollment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := getDB(c)

	var enrollment models.EnrolledCourse
	if err := db.Preload("Course").Preload("Student").First(&enrollment, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy bản ghi danh")
		return
	}
	if !canTouchEnrollment(user, enrollment, enrollment.Course) {
		utils.RespondError(c, http.StatusForbidden, "Bạn không có quyền hủy bản ghi danh này")
		return
	}

	if err := db.Delete(&enrollment).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi hủy ghi danh")
		return
	}

	services.NotifyUser(db, enrollment.StudentID,
		fmt.Sprintf("Bạn đã hủy ghi danh khóa học %s", enrollment.Course.Title))
	services.NotifyUser(db, enrollment.Course.InstructorID,
		fmt.Sprintf("%s đã hủy ghi danh khóa học %s", enrollment.Student.Name, enrollment.Course.Title))

	utils.RespondSuccess(c, http.StatusOK, "Hủy ghi danh thành công", nil)
}
