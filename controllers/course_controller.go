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

type CreateCourseInput struct {
	Title       string `json:"title" binding:"required"`
	Duration    string `json:"duration" binding:"required"`
	Description string `json:"description"`
	// Admin có thể chỉ định giảng viên; bỏ trống thì lấy người gọi
	InstructorID *uuid.UUID `json:"instructor_id"`
}

type UpdateCourseInput struct {
	Title       *string `json:"title"`
	Duration    *string `json:"duration"`
	Description *string `json:"description"`
}

func CreateCourse(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input CreateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	db := getDB(c)

	instructorID := user.ID
	if input.InstructorID != nil {
		instructorID = *input.InstructorID
	}

	var instructor models.User
	if err := db.First(&instructor, "id = ?", instructorID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy giảng viên")
		return
	}
	if instructor.Role != models.RoleInstructor {
		utils.RespondError(c, http.StatusBadRequest, "Chỉ giảng viên mới được gán làm chủ khóa học")
		return
	}

	course := models.Course{
		InstructorID: instructor.ID,
		Title:        input.Title,
		Duration:     input.Duration,
		Description:  input.Description,
	}
	if err := db.Create(&course).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tạo khóa học")
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, "Tạo khóa học thành công", course)
}

func GetCourses(c *gin.Context) {
	var courses []models.Course
	if err := getDB(c).Preload("Instructor").Find(&courses).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tải danh sách khóa học")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", courses)
}

func GetCourseByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var course models.Course
	if err := getDB(c).Preload("Instructor").Preload("Materials").First(&course, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy khóa học")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", course)
}

func UpdateCourse(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := getDB(c)

	var course models.Course
	if err := db.First(&course, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy khóa học")
		return
	}
	if !services.CanManageCourse(user, course) {
		utils.RespondError(c, http.StatusForbidden, "Bạn không phải giảng viên của khóa học này")
		return
	}

	var input UpdateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if input.Title != nil {
		course.Title = *input.Title
	}
	if input.Duration != nil {
		course.Duration = *input.Duration
	}
	if input.Description != nil {
		course.Description = *input.Description
	}

	if err := db.Save(&course).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi cập nhật khóa học")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Cập nhật thành công", course)
}

func DeleteCourse(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := getDB(c)

	var course models.Course
	if err := db.First(&course, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy khóa học")
		return
	}
	if !services.CanManageCourse(user, course) {
		utils.RespondError(c, http.StatusForbidden, "Bạn không phải giảng viên của khóa học này")
		return
	}

	if err := db.Delete(&course).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi xóa khóa học")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Xóa khóa học thành công", nil)
}

// UploadCourseMaterials nhận multipart và lưu file vào uploads/courses-materials/
func UploadCourseMaterials(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := getDB(c)

	var course models.Course
	if err := db.First(&course, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy khóa học")
		return
	}
	if !services.CanManageCourse(user, course) {
		utils.RespondError(c, http.StatusForbidden, "Bạn không phải giảng viên của khóa học này")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Không đọc được multipart form")
		return
	}
	files := form.File["materials"]
	if len(files) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Thiếu file tài liệu")
		return
	}

	for _, file := range files {
		fileName, err := utils.SaveUploadedFile(c, file, "courses-materials", course.ID.String(), course.Title)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err.Error())
			return
		}
		material := models.CourseMaterial{CourseID: course.ID, FileName: fileName}
		if err := db.Create(&material).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi lưu tài liệu")
			return
		}
	}

	if err := db.Preload("Materials").First(&course, "id = ?", course.ID).Error; err == nil {
		utils.RespondSuccess(c, http.StatusOK, "Upload tài liệu thành công", course)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Upload tài liệu thành công", nil)
}

// DownloadCourseMaterials trả zip toàn bộ tài liệu của khóa học
func DownloadCourseMaterials(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := getDB(c)

	var course models.Course
	if err := db.Preload("Materials").First(&course, "id = ?", id).Error; err != nil {
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

	paths := make([]string, 0, len(course.Materials))
	for _, material := range course.Materials {
		paths = append(paths, utils.UploadPath("courses-materials", material.FileName))
	}

	fileName := fmt.Sprintf("materials_%s.zip", course.ID)
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Header("Content-Type", "application/octet-stream")
	if err := utils.ZipFiles(c.Writer, paths); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Không tạo được file zip")
		return
	}
}
