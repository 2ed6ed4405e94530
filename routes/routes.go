package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Alielsalek1/learning-management-system-LMS/controllers"
	"github.com/Alielsalek1/learning-management-system-LMS/middleware"
	"github.com/Alielsalek1/learning-management-system-LMS/ws"
)

func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	auth := r.Group("/auth")
	{
		auth.Use(middleware.DBMiddleware(db))
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/change-password", middleware.AuthMiddleware(), controllers.ChangePassword)
	}

	user := r.Group("/user")
	{
		user.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db))
		user.GET("/me", controllers.GetMe)
		user.PUT("/me", controllers.UpdateMe)
	}

	users := r.Group("/users")
	{
		users.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db), middleware.RequireRoles("admin"))
		users.POST("", controllers.AdminCreateUser)
		users.GET("/:id", controllers.GetUserByID)
		users.PUT("/:id", controllers.UpdateUserByID)
	}

	courses := r.Group("/courses")
	{
		courses.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db))
		courses.POST("", middleware.RequireRoles("instructor", "admin"), controllers.CreateCourse)
		courses.GET("", controllers.GetCourses)
		courses.GET("/:id", controllers.GetCourseByID)
		courses.PUT("/:id", middleware.RequireRoles("instructor", "admin"), controllers.UpdateCourse)
		courses.DELETE("/:id", middleware.RequireRoles("instructor", "admin"), controllers.DeleteCourse)
		courses.POST("/:id/material", middleware.RequireRoles("instructor", "admin"), controllers.UploadCourseMaterials)
		courses.GET("/:id/material", controllers.DownloadCourseMaterials)
	}

	lessons := r.Group("/lessons")
	{
		lessons.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db))
		lessons.POST("", middleware.RequireRoles("instructor", "admin"), controllers.CreateLesson)
		lessons.GET("/id/:id", controllers.GetLessonByID)
		lessons.PUT("/id/:id", middleware.RequireRoles("instructor", "admin"), controllers.UpdateLessonOtp)
		lessons.DELETE("/id/:id", middleware.RequireRoles("instructor", "admin"), controllers.DeleteLesson)
		lessons.GET("/courses/:courseId", controllers.GetLessonsByCourse)
	}

	studentLessons := r.Group("/student-lessons")
	{
		studentLessons.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db))
		studentLessons.POST("", middleware.RequireRoles("student"), controllers.AttendLesson)
		studentLessons.GET("/students/me", middleware.RequireRoles("student"), controllers.GetMyAttendance)
		studentLessons.GET("/students/me/courses/:courseId", middleware.RequireRoles("student"), controllers.GetMyAttendanceByCourse)
		studentLessons.GET("/students/id/:studentId", middleware.RequireRoles("instructor", "admin"), controllers.GetAttendanceByStudent)
		studentLessons.GET("/students/id/:studentId/courses/:courseId", middleware.RequireRoles("instructor", "admin"), controllers.GetAttendanceByStudentAndCourse)
		studentLessons.GET("/lessons/:lessonId", middleware.RequireRoles("instructor", "admin"), controllers.GetAttendanceByLesson)
	}

	questions := r.Group("/questions")
	{
		questions.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db), middleware.RequireRoles("instructor", "admin"))
		questions.POST("", controllers.CreateQuestion)
		questions.GET("/id/:id", controllers.GetQuestionByID)
		questions.DELETE("/id/:id", controllers.DeleteQuestion)
		questions.GET("/course/:courseId", controllers.GetQuestionsByCourse)

		// Thống kê và báo cáo của khóa học
		questions.GET("/courses/:courseId", controllers.GetCourseAnalytics)
		questions.GET("/courses/:courseId/performance-report", controllers.DownloadPerformanceReport)
		questions.POST("/courses/:courseId/charts", controllers.DownloadPerformanceCharts)
	}

	quizzes := r.Group("/quizzes")
	{
		quizzes.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db))
		quizzes.POST("", middleware.RequireRoles("instructor", "admin"), controllers.GenerateQuiz)
		quizzes.GET("/id/:quizId", controllers.GetQuizByID)
		quizzes.POST("/id/:quizId/submit", middleware.RequireRoles("student", "admin"), controllers.SubmitQuiz)
		quizzes.GET("/id/:quizId/grades", middleware.RequireRoles("instructor", "admin"), controllers.GetQuizGrades)
		quizzes.GET("/courses/:courseId", controllers.GetQuizzesByCourse)
	}

	students := r.Group("/students")
	{
		students.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db))
		students.GET("/me/quiz-grades", middleware.RequireRoles("student"), controllers.GetMyQuizGrades)
		students.GET("/id/:studentId/quiz-grades", middleware.RequireRoles("instructor", "admin"), controllers.GetQuizGradesByStudent)
	}

	assignments := r.Group("/assignments")
	{
		assignments.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db))
		assignments.POST("", middleware.RequireRoles("instructor", "admin"), controllers.CreateAssignment)
		assignments.GET("/id/:id", controllers.GetAssignmentByID)
		assignments.PUT("/id/:id", middleware.RequireRoles("instructor", "admin"), controllers.UpdateAssignment)
		assignments.DELETE("/id/:id", middleware.RequireRoles("instructor", "admin"), controllers.DeleteAssignment)
		assignments.GET("/courses/:courseId", controllers.GetAssignmentsByCourse)
	}

	studentAssignments := r.Group("/student-assignments")
	{
		studentAssignments.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db))
		studentAssignments.POST("", middleware.RequireRoles("student"), controllers.CreateStudentAssignment)
		studentAssignments.POST("/submissions/:id", middleware.RequireRoles("student"), controllers.UploadSubmissionFiles)
		studentAssignments.GET("/submissions/:id", controllers.DownloadSubmissionFiles)
		studentAssignments.GET("/id/:id", controllers.GetStudentAssignmentByID)
		studentAssignments.GET("/courses/:courseId", controllers.GetStudentAssignmentsByCourse)
		studentAssignments.GET("/users/me", controllers.GetMyStudentAssignments)
		studentAssignments.GET("/users/me/courses/:courseId", controllers.GetMyStudentAssignmentsByCourse)
		studentAssignments.GET("/users/id/:studentId", middleware.RequireRoles("instructor", "admin"), controllers.GetStudentAssignmentsByStudent)
		studentAssignments.PUT("/grade/:id", middleware.RequireRoles("instructor", "admin"), controllers.GradeStudentAssignment)
	}

	enrollments := r.Group("/enrollments")
	{
		enrollments.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db))
		enrollments.POST("/courses/:courseId", middleware.RequireRoles("student"), controllers.EnrollInCourse)
		enrollments.GET("", middleware.RequireRoles("admin"), controllers.GetEnrollments)
		enrollments.GET("/courses/:courseId", middleware.RequireRoles("instructor", "admin"), controllers.GetEnrollmentsByCourse)
		enrollments.GET("/id/:id", controllers.GetEnrollmentByID)
		enrollments.PUT("/id/:id", controllers.UpdateEnrollment)
		enrollments.DELETE("/id/:id", controllers.DeleteEnrollment)
		enrollments.GET("/students/:studentId", controllers.GetEnrollmentsByStudent)
		enrollments.GET("/students/:studentId/courses/:courseId", controllers.GetEnrollmentByPair)
	}

	notifications := r.Group("/notifications")
	{
		notifications.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db))
		notifications.GET("/:flag", controllers.GetNotifications)
		notifications.GET("/:flag/:id", controllers.GetNotificationDetail)
	}

	r.GET("/ws/notifications", ws.HandleUserWebSocket)
	r.GET("/ws/status", ws.HandleGlobalWebSocket)

	return r
}
