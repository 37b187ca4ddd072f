package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fakhrin/unicampus/internal/app/models"
	"github.com/fakhrin/unicampus/internal/app/models/dto"
	"github.com/fakhrin/unicampus/internal/app/services"
	"github.com/fakhrin/unicampus/internal/middleware"
)

// SemesterController handles semester CRUD and active-semester selection
type SemesterController struct {
	semesterService *services.SemesterService
}

// NewSemesterController creates a new SemesterController
func NewSemesterController(semesterService *services.SemesterService) *SemesterController {
	return &SemesterController{semesterService: semesterService}
}

func bindError(ctx *gin.Context, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data").WithDetails(err.Error())
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}

func semesterFromRequest(name, startDate, endDate string) (*models.Semester, error) {
	start, err := models.ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := models.ParseDate(endDate)
	if err != nil {
		return nil, err
	}
	return &models.Semester{Name: name, StartDate: start, EndDate: end}, nil
}

// CreateSemester handles POST /semesters
func (c *SemesterController) CreateSemester(ctx *gin.Context) {
	var req dto.CreateSemesterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	semester, err := semesterFromRequest(req.Name, req.StartDate, req.EndDate)
	if err != nil {
		bindError(ctx, err)
		return
	}

	if err := c.semesterService.CreateSemester(ctx, semester); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToSemesterResponse(semester))
}

// GetSemesters handles GET /semesters
func (c *SemesterController) GetSemesters(ctx *gin.Context) {
	semesters, err := c.semesterService.GetAllSemesters(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSemesterListResponse(semesters))
}

// GetSemesterByID handles GET /semesters/:id
func (c *SemesterController) GetSemesterByID(ctx *gin.Context) {
	semester, err := c.semesterService.GetSemesterByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSemesterResponse(semester))
}

// UpdateSemester handles PUT /semesters/:id
func (c *SemesterController) UpdateSemester(ctx *gin.Context) {
	var req dto.UpdateSemesterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	semester, err := semesterFromRequest(req.Name, req.StartDate, req.EndDate)
	if err != nil {
		bindError(ctx, err)
		return
	}
	semester.ID = ctx.Param("id")

	if err := c.semesterService.UpdateSemester(ctx, semester); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSemesterResponse(semester))
}

// DeleteSemester handles DELETE /semesters/:id
func (c *SemesterController) DeleteSemester(ctx *gin.Context) {
	if err := c.semesterService.DeleteSemester(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Semester deleted"})
}

// SelectSemester handles PUT /semesters/selection
func (c *SemesterController) SelectSemester(ctx *gin.Context) {
	var req dto.SelectSemesterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	id := ""
	if req.SemesterID != nil {
		id = *req.SemesterID
	}
	if err := c.semesterService.SelectSemester(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Semester selected"})
}
