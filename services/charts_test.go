package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPerformanceCharts(t *testing.T) {
	dir := t.TempDir()
	perf := []StudentPerformance{
		{StudentID: uuid.New(), StudentName: "alice", QuizAverage: 75, AssignmentAverage: 50, AttendancePercentage: 100, IsCourseCompleted: true},
		{StudentID: uuid.New(), StudentName: "bob", QuizAverage: 25, AssignmentAverage: 0, AttendancePercentage: 50},
	}

	paths, err := RenderPerformanceCharts(perf, dir)
	require.NoError(t, err)
	require.Len(t, paths, len(chartFileNames))

	for i, path := range paths {
		assert.Equal(t, filepath.Join(dir, chartFileNames[i]), path)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestRenderPerformanceCharts_NoStudents(t *testing.T) {
	dir := t.TempDir()

	// Không có sinh viên thì không render file nào, nhưng không lỗi
	paths, err := RenderPerformanceCharts(nil, dir)
	require.NoError(t, err)
	require.Len(t, paths, len(chartFileNames))

	for _, path := range paths {
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	}
}
