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

type CreateStudentAssignmentInput struct {
	AssignmentID uuid.UUID `json:"assignment_id" binding:"required"`
}

type GradeAssignmentInput struct {
	Grade    int64  `json:"grade" binding:"min=0"`
	Feedback string `json:"feedback"`
}

// StudentAssignmentResponse kèm điểm phần trăm so với điểm tối đa
type StudentAssignmentResponse struct {
	models.StudentAssignment
	Score float64 `json:"score"`
}

func toStudentAssignmentResponse(sa models.StudentAssignment, maxGrade int) StudentAssignmentResponse {
	var score float64
	if maxGrade > 0 {
		score = float64(sa.Grade) / float64(maxGrade) * 100
	}
	return StudentAssignmentResponse{StudentAssignment: sa, Score: score}
}

// toStudentAssignmentResponses map danh sách bài nộp đã preload Assignment
func toStudentAssignmentResponses(records []models.StudentAssignment) []StudentAssignmentResponse {
	out := make([]StudentAssignmentResponse, 0, len(records))
	for _, record := range records {
		out = append(out, toStudentAssignmentResponse(record, record.Assignment.MaxGrade))
	}
	return out
}

// CreateStudentAssignment đăng ký nộp bài, mỗi sinh viên một bản cho mỗi bài tập
func CreateStudentAssignment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input CreateStudentAssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	db := getDB(c)

	var assignment models.Assignment
	if err := db.First(&assignment, "id = ?", input.AssignmentID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy bài tập")
		return
	}

	enrolled, err := services.IsEnrolled(db, user.ID, assignment.CourseID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi kiểm tra ghi danh")
		return
	}
	if !enrolled {
		utils.RespondError(c, http.StatusForbidden, "Bạn chưa ghi danh khóa học này")
		return
	}

	var count int64
	if err := db.Model(&models.StudentAssignment{}).
		Where("assignment_id = ? AND student_id = ?", assignment.ID, user.ID).
		Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi kiểm tra bài nộp")
		return
	}
	if count > 0 {
		utils.RespondError(c, http.StatusConflict, "Bạn đã nộp bài tập này rồi")
		return
	}

	record := models.StudentAssignment{
		AssignmentID: assignment.ID,
		StudentID:    user.ID,
		CourseID:     assignment.CourseID,
	}
	if err := db.Create(&record).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi lưu bài nộp")
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, "Nộp bài thành công",
		toStudentAssignmentResponse(record, assignment.MaxGrade))
}

// UploadSubmissionFiles nhận file bài làm qua multipart
func UploadSubmissionFiles(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := getDB(c)

	var record models.StudentAssignment
	if err := db.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy bài nộp")
		return
	}
	if record.StudentID != user.ID {
		utils.RespondError(c, http.StatusForbidden, "Bạn không phải chủ bài nộp này")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Không đọc được multipart form")
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Thiếu file bài làm")
		return
	}

	for _, file := range files {
		fileName, err := utils.SaveUploadedFile(c, file, "assignments-submissions", record.ID.String(), user.Name)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err.Error())
			return
		}
		submission := models.SubmissionFile{StudentAssignmentID: record.ID, FileName: fileName}
		if err := db.Create(&submission).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi lưu file bài làm")
			return
		}
	}

	if err := db.Preload("Files").Preload("Assignment").First(&record, "id = ?", record.ID).Error; err == nil {
		utils.RespondSuccess(c, http.StatusOK, "Upload bài làm thành công",
			toStudentAssignmentResponse(record, record.Assignment.MaxGrade))
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Upload bài làm thành công", nil)
}

// DownloadSubmissionFiles trả zip các file bài làm của một bài nộp
func DownloadSubmissionFiles(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := getDB(c)

	var record models.StudentAssignment
	if err := db.Preload("Files").First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy bài nộp")
		return
	}

	var course models.Course
	if err := db.First(&course, "id = ?", record.CourseID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy khóa học")
		return
	}
	if record.StudentID != user.ID && !services.CanManageCourse(user, course) {
		utils.RespondError(c, http.StatusForbidden, "Bạn không có quyền tải bài nộp này")
		return
	}

	paths := make([]string, 0, len(record.Files))
	for _, file := range record.Files {
		paths = append(paths, utils.UploadPath("assignments-submissions", file.FileName))
	}

	fileName := fmt.Sprintf("submission_%s.zip", record.ID)
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Header("Content-Type", "application/octet-stream")
	if err := utils.ZipFiles(c.Writer, paths); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Không tạo được file zip")
		return
	}
}

func GetStudentAssignmentByID(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := getDB(c)

	var record models.StudentAssignment
	if err := db.Preload("Files").First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy bài nộp")
		return
	}

	var assignment models.Assignment
	if err := db.First(&assignment, "id = ?", record.AssignmentID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy bài tập")
		return
	}

	var course models.Course
	if err := db.First(&course, "id = ?", record.CourseID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy khóa học")
		return
	}
	if record.StudentID != user.ID && !services.CanManageCourse(user, course) {
		utils.RespondError(c, http.StatusForbidden, "Bạn không có quyền xem bài nộp này")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "OK", toStudentAssignmentResponse(record, assignment.MaxGrade))
}

// GetStudentAssignmentsByCourse liệt kê bài nộp của một khóa học cho giảng viên
func GetStudentAssignmentsByCourse(c *gin.Context) {
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

	var records []models.StudentAssignment
	if err := db.Preload("Assignment").Preload("Files").Where("course_id = ?", course.ID).Find(&records).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tải bài nộp")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", toStudentAssignmentResponses(records))
}

// GetMyStudentAssignments trả các bài nộp của sinh viên hiện tại
func GetMyStudentAssignments(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var records []models.StudentAssignment
	if err := getDB(c).Preload("Assignment").Preload("Files").Where("student_id = ?", user.ID).Find(&records).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tải bài nộp")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", toStudentAssignmentResponses(records))
}

// GetMyStudentAssignmentsByCourse lọc bài nộp của sinh viên hiện tại theo khóa học
func GetMyStudentAssignmentsByCourse(c *gin.Context) {
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

	var records []models.StudentAssignment
	if err := db.Preload("Assignment").Preload("Files").
		Where("student_id = ? AND course_id = ?", user.ID, course.ID).
		Find(&records).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tải bài nộp")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", toStudentAssignmentResponses(records))
}

func GetStudentAssignmentsByStudent(c *gin.Context) {
	studentID, ok := parseIDParam(c, "studentId")
	if !ok {
		return
	}

	var records []models.StudentAssignment
	if err := getDB(c).Preload("Assignment").Preload("Files").Where("student_id = ?", studentID).Find(&records).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi tải bài nộp")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", toStudentAssignmentResponses(records))
}

// GradeStudentAssignment chấm điểm và ghi nhận xét, không cho vượt điểm tối đa
func GradeStudentAssignment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := getDB(c)

	var record models.StudentAssignment
	if err := db.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy bài nộp")
		return
	}

	var assignment models.Assignment
	if err := db.First(&assignment, "id = ?", record.AssignmentID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy bài tập")
		return
	}

	var course models.Course
	if err := db.First(&course, "id = ?", record.CourseID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Không tìm thấy khóa học")
		return
	}
	if !services.CanManageCourse(user, course) {
		utils.RespondError(c, http.StatusForbidden, "Bạn không phải giảng viên của khóa học này")
		return
	}

	var input GradeAssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if input.Grade > int64(assignment.MaxGrade) {
		utils.RespondError(c, http.StatusBadRequest, "Điểm không được vượt quá điểm tối đa của bài tập")
		return
	}

	record.Grade = input.Grade
	record.Feedback = input.Feedback
	if err := db.Save(&record).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Lỗi khi lưu điểm")
		return
	}

	services.NotifyUser(db, record.StudentID,
		fmt.Sprintf("Bài tập của bạn trong khóa học %s đã được chấm điểm", course.Title))

	utils.RespondSuccess(c, http.StatusOK, "Chấm điểm thành công", toStudentAssignmentResponse(record, assignment.MaxGrade))
}
