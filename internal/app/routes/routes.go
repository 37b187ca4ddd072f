package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fakhrin/unicampus/internal/app/controllers"
	"github.com/fakhrin/unicampus/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	semesterController *controllers.SemesterController,
	courseController *controllers.CourseController,
	userEventController *controllers.UserEventController,
	scheduleController *controllers.ScheduleController,
	siakadController *controllers.SiakadController,
	directoryController *controllers.DirectoryController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// --- Public routes ---
	siakad := v1.Group("/siakad")
	{
		siakad.POST("/login", siakadController.Login)
	}

	// The directory is public reference data.
	directory := v1.Group("/directory")
	{
		directory.GET("/campuses", directoryController.GetCampuses)
		directory.GET("/campuses/:id/buildings", directoryController.GetBuildings)
		directory.GET("/buildings/:id/rooms", directoryController.GetRooms)
		directory.GET("/faculties", directoryController.GetFaculties)
		directory.GET("/faculties/:id", directoryController.GetFacultyByID)
		directory.GET("/faculties/:id/programs", directoryController.GetPrograms)
		directory.GET("/programs/:id/lecturers", directoryController.GetLecturers)
		directory.GET("/news", directoryController.GetNews)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/siakad/sync", siakadController.Sync)

		semesters := authenticated.Group("/semesters")
		{
			semesters.GET("", semesterController.GetSemesters)
			semesters.POST("", semesterController.CreateSemester)
			semesters.PUT("/selection", semesterController.SelectSemester)
			semesters.GET("/:id", semesterController.GetSemesterByID)
			semesters.PUT("/:id", semesterController.UpdateSemester)
			semesters.DELETE("/:id", semesterController.DeleteSemester)
			semesters.GET("/:id/courses", courseController.GetCoursesBySemester)
			semesters.GET("/:id/events", userEventController.GetUserEventsBySemester)
		}

		courses := authenticated.Group("/courses")
		{
			courses.POST("", courseController.CreateCourse)
			courses.GET("/:id", courseController.GetCourseByID)
			courses.PUT("/:id", courseController.UpdateCourse)
			courses.PUT("/:id/color", courseController.SetCourseColor)
			courses.DELETE("/:id", courseController.DeleteCourse)
		}

		events := authenticated.Group("/events")
		{
			events.POST("", userEventController.CreateUserEvent)
			events.GET("/:id", userEventController.GetUserEventByID)
			events.PUT("/:id", userEventController.UpdateUserEvent)
			events.PUT("/:id/completion", userEventController.SetCompletion)
			events.DELETE("/:id", userEventController.DeleteUserEvent)
		}

		schedule := authenticated.Group("/schedule")
		{
			schedule.GET("", scheduleController.GetSchedule)
			schedule.GET("/layout", scheduleController.GetDayLayout)
			schedule.GET("/ics", scheduleController.ExportICS)
		}
	}
}
