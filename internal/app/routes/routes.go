package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/campora/internal/app/controllers"
	"github.com/kaan/campora/internal/metrics"
	"github.com/kaan/campora/internal/middleware"
)

// Controllers bundles every controller the router mounts.
type Controllers struct {
	Auth        *controllers.AuthController
	Institution *controllers.InstitutionController
	Faculty     *controllers.FacultyController
	Department  *controllers.DepartmentController
	Program     *controllers.ProgramController
	Course      *controllers.CourseController
	Assignment  *controllers.AssignmentController
	Student     *controllers.StudentController
	User        *controllers.UserController
	Picker      *controllers.PickerController
	Class       *controllers.ClassController
	Attendance  *controllers.AttendanceController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctls Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", ctls.Auth.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.Auth())

	authenticated.POST("/auth/logout", ctls.Auth.Logout)
	authenticated.GET("/auth/me", ctls.Auth.Me)

	// Hierarchy reads are open to any authenticated user; mutations need
	// the entity-admin capability.
	entityAdmin := authenticated.Group("")
	entityAdmin.Use(authMiddleware.RequireEntityAdmin())

	institutions := authenticated.Group("/institutions")
	{
		institutions.GET("", ctls.Institution.List)
		institutions.GET("/:id/faculties", ctls.Faculty.ListByInstitution)
	}
	institutionsAdmin := entityAdmin.Group("/institutions")
	{
		institutionsAdmin.POST("", ctls.Institution.Create)
		institutionsAdmin.PUT("/:id", ctls.Institution.Update)
		institutionsAdmin.DELETE("/:id", ctls.Institution.Delete)
		institutionsAdmin.POST("/:id/faculties", ctls.Faculty.Create)
	}

	faculties := authenticated.Group("/faculties")
	{
		faculties.GET("", ctls.Faculty.List)
		faculties.GET("/:id/departments", ctls.Department.ListByFaculty)
	}
	facultiesAdmin := entityAdmin.Group("/faculties")
	{
		facultiesAdmin.PUT("/:id", ctls.Faculty.Update)
		facultiesAdmin.DELETE("/:id", ctls.Faculty.Delete)
		facultiesAdmin.POST("/:id/departments", ctls.Department.Create)
	}

	departments := authenticated.Group("/departments")
	{
		departments.GET("", ctls.Department.List)
		departments.GET("/:id/programs", ctls.Program.ListByDepartment)
	}
	departmentsAdmin := entityAdmin.Group("/departments")
	{
		departmentsAdmin.PUT("/:id", ctls.Department.Update)
		departmentsAdmin.DELETE("/:id", ctls.Department.Delete)
		departmentsAdmin.POST("/:id/programs", ctls.Program.Create)
	}

	programs := authenticated.Group("/programs")
	{
		programs.GET("", ctls.Program.List)
	}
	programsAdmin := entityAdmin.Group("/programs")
	{
		programsAdmin.PUT("/:id", ctls.Program.Update)
		programsAdmin.DELETE("/:id", ctls.Program.Delete)

		// Program-course dual-pane assignment
		programsAdmin.POST("/:id/assignment", ctls.Assignment.Select)
		programsAdmin.GET("/:id/assignment", ctls.Assignment.Panes)
		programsAdmin.POST("/:id/assignment/courses", ctls.Assignment.Add)
		programsAdmin.DELETE("/:id/assignment/courses/:courseId", ctls.Assignment.Remove)
	}

	courses := authenticated.Group("/courses")
	{
		courses.GET("", ctls.Course.List)
	}
	coursesAdmin := entityAdmin.Group("/courses")
	{
		coursesAdmin.POST("", ctls.Course.Create)
		coursesAdmin.PUT("/:id", ctls.Course.Update)
		coursesAdmin.DELETE("/:id", ctls.Course.Delete)
	}

	students := authenticated.Group("/students")
	{
		students.GET("", ctls.Student.List)
	}
	studentsAdmin := entityAdmin.Group("/students")
	{
		studentsAdmin.POST("", ctls.Student.Create)
		studentsAdmin.PUT("/:id", ctls.Student.Update)
		studentsAdmin.DELETE("/:id", ctls.Student.Delete)
	}

	// Cascading hierarchy picker backing the student and program forms
	pickers := authenticated.Group("/picker")
	{
		pickers.POST("/load", ctls.Picker.Load)
		pickers.POST("/query", ctls.Picker.Query)
		pickers.POST("/select", ctls.Picker.Select)
		pickers.GET("/:level", ctls.Picker.Options)
		pickers.DELETE("/:level", ctls.Picker.Clear)
	}

	// Account and role management is super-admin only.
	usersAdmin := authenticated.Group("/users")
	usersAdmin.Use(authMiddleware.RequireUserAdmin())
	{
		usersAdmin.GET("", ctls.User.List)
		usersAdmin.POST("", ctls.User.Create)
		usersAdmin.PUT("/:id", ctls.User.Update)
		usersAdmin.DELETE("/:id", ctls.User.Delete)
		usersAdmin.GET("/:id/roles", ctls.User.ListRoles)
		usersAdmin.POST("/:id/roles", ctls.User.AssignRole)
		usersAdmin.DELETE("/:id/roles/:roleId", ctls.User.RevokeRole)
	}

	// Class scheduling and the attendance workflow
	classes := authenticated.Group("/classes")
	classes.Use(authMiddleware.RequireAttendance())
	{
		classes.GET("/teacher-courses", ctls.Class.TeacherCourses)
		classes.POST("", ctls.Class.Create)
		classes.POST("/preview", ctls.Class.Preview)
		classes.GET("/:id", ctls.Class.Get)
		classes.PUT("/:id", ctls.Class.Update)
		classes.DELETE("/:id", ctls.Class.Delete)

		classes.POST("/:id/attendance/load", ctls.Attendance.Load)
		classes.GET("/:id/attendance", ctls.Attendance.State)
		classes.POST("/:id/attendance/mark", ctls.Attendance.Mark)
		classes.POST("/:id/attendance/mark-all", ctls.Attendance.MarkAll)
		classes.POST("/:id/attendance/submit", ctls.Attendance.Submit)
		classes.GET("/:id/attendance/sheet", ctls.Attendance.Sheet)
	}
}
