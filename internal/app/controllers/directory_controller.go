package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fakhrin/unicampus/internal/app/models/dto"
	"github.com/fakhrin/unicampus/internal/app/services"
	"github.com/fakhrin/unicampus/internal/middleware"
)

// DirectoryController serves the static university directory
type DirectoryController struct {
	directoryService *services.DirectoryService
}

// NewDirectoryController creates a new DirectoryController
func NewDirectoryController(directoryService *services.DirectoryService) *DirectoryController {
	return &DirectoryController{directoryService: directoryService}
}

// GetCampuses handles GET /directory/campuses
func (c *DirectoryController) GetCampuses(ctx *gin.Context) {
	campuses, err := c.directoryService.GetCampuses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CampusListResponse{Campuses: campuses})
}

// GetBuildings handles GET /directory/campuses/:id/buildings
func (c *DirectoryController) GetBuildings(ctx *gin.Context) {
	buildings, err := c.directoryService.GetBuildingsByCampus(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.BuildingListResponse{Buildings: buildings})
}

// GetRooms handles GET /directory/buildings/:id/rooms
func (c *DirectoryController) GetRooms(ctx *gin.Context) {
	rooms, err := c.directoryService.GetRoomsByBuilding(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.RoomListResponse{Rooms: rooms})
}

// GetFaculties handles GET /directory/faculties
func (c *DirectoryController) GetFaculties(ctx *gin.Context) {
	faculties, err := c.directoryService.GetFaculties(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FacultyListResponse{Faculties: faculties})
}

// GetFacultyByID handles GET /directory/faculties/:id
func (c *DirectoryController) GetFacultyByID(ctx *gin.Context) {
	faculty, err := c.directoryService.GetFacultyByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, faculty)
}

// GetPrograms handles GET /directory/faculties/:id/programs
func (c *DirectoryController) GetPrograms(ctx *gin.Context) {
	programs, err := c.directoryService.GetProgramsByFaculty(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ProgramListResponse{Programs: programs})
}

// GetLecturers handles GET /directory/programs/:id/lecturers
func (c *DirectoryController) GetLecturers(ctx *gin.Context) {
	lecturers, err := c.directoryService.GetLecturersByProgram(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.LecturerListResponse{Lecturers: lecturers})
}

// GetNews handles GET /directory/news
func (c *DirectoryController) GetNews(ctx *gin.Context) {
	news, err := c.directoryService.GetNews(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewsListResponse{News: news})
}
