package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/wcharczuk/go-chart/v2"
	"gorm.io/gorm"

	"github.com/Alielsalek1/learning-management-system-LMS/models"
	"github.com/Alielsalek1/learning-management-system-LMS/utils"
)

// Tên file cố định bên trong archive; file nào không render được thì bỏ qua
var chartFileNames = []string{
	"quiz_averages.png",
	"assignment_averages.png",
	"attendance_percentages.png",
	"course_completion.png",
}

func renderBarChart(title string, values []chart.Value, maxValue float64, path string) error {
	if len(values) == 0 {
		// go-chart không render được chart rỗng; archive sẽ bỏ qua file thiếu
		return nil
	}

	bc := chart.BarChart{
		Title:    title,
		Width:    800,
		Height:   600,
		BarWidth: 40,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue},
		},
		Bars: values,
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return bc.Render(chart.PNG, f)
}

// RenderPerformanceCharts vẽ bốn biểu đồ cột vào dir, trả danh sách đường dẫn
// theo đúng thứ tự chartFileNames.
func RenderPerformanceCharts(perf []StudentPerformance, dir string) ([]string, error) {
	quizValues := make([]chart.Value, 0, len(perf))
	assignmentValues := make([]chart.Value, 0, len(perf))
	attendanceValues := make([]chart.Value, 0, len(perf))
	completionValues := make([]chart.Value, 0, len(perf))

	for _, p := range perf {
		quizValues = append(quizValues, chart.Value{Label: p.StudentName, Value: p.QuizAverage})
		assignmentValues = append(assignmentValues, chart.Value{Label: p.StudentName, Value: p.AssignmentAverage})
		attendanceValues = append(attendanceValues, chart.Value{Label: p.StudentName, Value: p.AttendancePercentage})
		completed := 0.0
		if p.IsCourseCompleted {
			completed = 1.0
		}
		completionValues = append(completionValues, chart.Value{Label: p.StudentName, Value: completed})
	}

	charts := []struct {
		title  string
		values []chart.Value
		max    float64
	}{
		{"Quiz Averages (%)", quizValues, 100},
		{"Assignment Averages (%)", assignmentValues, 100},
		{"Attendance Percentages (%)", attendanceValues, 100},
		{"Course Completion Status", completionValues, 1},
	}

	paths := make([]string, 0, len(charts))
	for i, cfg := range charts {
		path := filepath.Join(dir, chartFileNames[i])
		if err := renderBarChart(cfg.title, cfg.values, cfg.max, path); err != nil {
			return nil, fmt.Errorf("không render được chart %s: %v", chartFileNames[i], err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// ChartsArchive render biểu đồ performance của khóa học rồi nén thành zip.
// Mỗi request dùng một thư mục tạm riêng (os.MkdirTemp) nên các request
// đồng thời không tranh file nhau; cleanup xóa cả thư mục khi gửi xong.
func ChartsArchive(db *gorm.DB, courseID uuid.UUID, caller models.User) (zipPath string, cleanup func(), err error) {
	perf, err := CourseAnalytics(db, courseID, caller)
	if err != nil {
		return "", nil, err
	}

	dir, err := os.MkdirTemp(utils.ExportRoot(), "charts-*")
	if err != nil {
		return "", nil, fmt.Errorf("không tạo được thư mục tạm: %v", err)
	}
	cleanup = func() { os.RemoveAll(dir) }

	paths, err := RenderPerformanceCharts(perf, dir)
	if err != nil {
		cleanup()
		return "", nil, err
	}

	zipPath = filepath.Join(dir, "charts_archive.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		cleanup()
		return "", nil, err
	}
	defer zipFile.Close()

	if err := utils.ZipFiles(zipFile, paths); err != nil {
		cleanup()
		return "", nil, err
	}
	return zipPath, cleanup, nil
}
