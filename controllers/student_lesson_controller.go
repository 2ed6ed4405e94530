package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Alielsalek1/learning-management-system-LMS/models"
	"github.com/Alielsalek1/learning-management-system-LMS/services"
	"github.com/Alielsalek1/learning-management-system-LMS/utils"
)

type AttendLessonInput struct {
	LessonID uuid.UUID `json:"lesson_id" binding:"required"`
	Otp      string    `json:"otp" binding:"required"`
}

// AttendLesson điểm danh bằng OTP, mỗi sinh viên một lần cho mỗi buổi học
func AttendLesson(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input AttendLessonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	db := getDB(c)

	var lesson models.Lesson
	if err := db.Preload("Course").First(&lesson, "id = ?", input.LessonID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy buổi học")
		return
	}

	enrolled, err := services.IsEnrolled(db, user.ID, lesson.CourseID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi kiểm tra ghi danh")
		return
	}
	if !enrolled {
		utils.RespondError(c, http.StatusForbidden, "Bạn chưa ghi danh khóa học này")
		return
	}

	if lesson.Otp != input.Otp {
		utils.RespondError(c, http.StatusBadRequest, "Mã OTP không đúng")
		return
	}

	var count int64
	if err := db.Model(&models.StudentLesson{}).
		Where("student_id = ? AND lesson_id = ?", user.ID, lesson.ID).
		Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi kiểm tra điểm danh")
		return
	}
	if count > 0 {
		utils.RespondError(c, http.StatusConflict, "Bạn đã điểm danh buổi học này rồi")
		return
	}

	record := models.StudentLesson{StudentID: user.ID, LessonID: lesson.ID}
	if err := db.Create(&record).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi lưu điểm danh")
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, "Điểm danh thành công", record)
}

// GetMyAttendance trả danh sách buổi học sinh viên hiện tại đã tham dự
func GetMyAttendance(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var records []models.StudentLesson
	if err := getDB(c).Preload("Lesson").Where("student_id = ?", user.ID).Find(&records).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tải điểm danh")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", records)
}

// attendanceByStudentAndCourse lọc điểm danh của một sinh viên trong một khóa học
func attendanceByStudentAndCourse(db *gorm.DB, studentID, courseID uuid.UUID) ([]models.StudentLesson, error) {
	var records []models.StudentLesson
	err := db.Preload("Lesson").
		Joins("JOIN lessons ON lessons.id = student_lessons.lesson_id").
		Where("student_lessons.student_id = ? AND lessons.course_id = ?", studentID, courseID).
		Find(&records).Error
	return records, err
}

// GetMyAttendanceByCourse trả điểm danh của sinh viên hiện tại trong một khóa học
func GetMyAttendanceByCourse(c *gin.Context) {
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

	records, err := attendanceByStudentAndCourse(db, user.ID, course.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tải điểm danh")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", records)
}

// GetAttendanceByStudentAndCourse: bản dành cho giảng viên và admin
func GetAttendanceByStudentAndCourse(c *gin.Context) {
	studentID, ok := parseIDParam(c, "studentId")
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

	records, err := attendanceByStudentAndCourse(db, studentID, course.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tải điểm danh")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", records)
}

func GetAttendanceByStudent(c *gin.Context) {
	studentID, ok := parseIDParam(c, "studentId")
	if !ok {
		return
	}

	var records []models.StudentLesson
	if err := getDB(c).Preload("Lesson").Where("student_id = ?", studentID).Find(&records).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tải điểm danh")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", records)
}

// GetAttendanceByLesson liệt kê sinh viên đã điểm danh một buổi học
func GetAttendanceByLesson(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	lessonID, ok := parseIDParam(c, "lessonId")
	if !ok {
		return
	}

	db := getDB(c)

	var lesson models.Lesson
	if err := db.Preload("Course").First(&lesson, "id = ?", lessonID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy buổi học")
		return
	}
	if !services.CanManageCourse(user, lesson.Course) {
		utils.RespondError(c, http.StatusForbidden, "Bạn không phải giảng viên của khóa học này")
		return
	}

	var records []models.StudentLesson
	if err := db.Preload("Student").Where("lesson_id = ?", lesson.ID).Find(&records).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tải điểm danh")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", records)
}
