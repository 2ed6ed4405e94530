package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Alielsalek1/learning-management-system-LMS/models"
)

// Gom các kiểm tra quyền lặp lại về một chỗ. Quy ước chung cho mọi
// controller: kiểm tra tồn tại (404) trước, kiểm tra quyền (403) sau.

// CanManageCourse: admin hoặc giảng viên sở hữu khóa học
func CanManageCourse(user models.User, course models.Course) bool {
	return user.Role == models.RoleAdmin || course.InstructorID == user.ID
}

// IsEnrolled kiểm tra sinh viên có bản ghi ghi danh trong khóa học không
func IsEnrolled(db *gorm.DB, studentID, courseID uuid.UUID) (bool, error) {
	var enrollment models.EnrolledCourse
	err := db.Where("student_id = ? AND course_id = ?", studentID, courseID).
		First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CanAccessCourse: admin, giảng viên của khóa học, hoặc sinh viên đã ghi danh
func CanAccessCourse(db *gorm.DB, user models.User, course models.Course) (bool, error) {
	if CanManageCourse(user, course) {
		return true, nil
	}
	return IsEnrolled(db, user.ID, course.ID)
}
