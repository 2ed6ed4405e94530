package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alielsalek1/learning-management-system-LMS/services"
	"github.com/Alielsalek1/learning-management-system-LMS/utils"
)

// GetCourseAnalytics trả thống kê điểm và chuyên cần của từng sinh viên
func GetCourseAnalytics(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	courseID, ok := parseIDParam(c, "courseId")
	if !ok {
		return
	}

	performance, err := services.CourseAnalytics(getDB(c), courseID, user)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "OK", performance)
}

// DownloadPerformanceReport xuất báo cáo Excel ba sheet và stream về client
func DownloadPerformanceReport(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	courseID, ok := parseIDParam(c, "courseId")
	if !ok {
		return
	}

	workbook, err := services.PerformanceReport(getDB(c), courseID, user)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	defer workbook.Close()

	fileName := fmt.Sprintf("performance_report_%s.xlsx", courseID)
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(c.Writer); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Không ghi được file báo cáo")
		return
	}
}

// DownloadPerformanceCharts vẽ biểu đồ PNG và trả về dưới dạng zip
func DownloadPerformanceCharts(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	courseID, ok := parseIDParam(c, "courseId")
	if !ok {
		return
	}

	zipPath, cleanup, err := services.ChartsArchive(getDB(c), courseID, user)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	defer cleanup()

	c.Header("Content-Disposition", `attachment; filename="charts_archive.zip"`)
	c.Header("Content-Type", "application/zip")
	c.File(zipPath)
}
