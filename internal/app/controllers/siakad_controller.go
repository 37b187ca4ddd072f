package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fakhrin/unicampus/internal/app/models/dto"
	"github.com/fakhrin/unicampus/internal/app/services"
	"github.com/fakhrin/unicampus/internal/middleware"
)

// SiakadController handles SIAKAD login and schedule synchronization
type SiakadController struct {
	siakadService *services.SiakadService
}

// NewSiakadController creates a new SiakadController
func NewSiakadController(siakadService *services.SiakadService) *SiakadController {
	return &SiakadController{siakadService: siakadService}
}

// Login handles POST /siakad/login
func (c *SiakadController) Login(ctx *gin.Context) {
	var req dto.SiakadLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	result, err := c.siakadService.Login(ctx, req.NIM, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SiakadLoginResponse{
		NIM:         result.NIM,
		Name:        result.Name,
		Token:       result.AppToken,
		SiakadToken: result.SiakadToken,
		ExpiresIn:   result.ExpiresIn,
	})
}

// Sync handles POST /siakad/sync
func (c *SiakadController) Sync(ctx *gin.Context) {
	var req dto.SiakadSyncRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	result, err := c.siakadService.Sync(ctx, req.SiakadToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SiakadSyncResponse{
		SemesterID:   result.SemesterID,
		SemesterName: result.SemesterName,
		CourseCount:  result.CourseCount,
	})
}
