package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/student360/internal/app/controllers"
	"github.com/yigit/student360/internal/app/models/dto"
	"github.com/yigit/student360/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, reportController *controllers.ReportController) {
	router.NoRoute(middleware.NotFoundHandler)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Success:   true,
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})

	// API version group
	v1 := router.Group("/api/v1")

	terms := v1.Group("/terms")
	{
		terms.GET("", reportController.GetTerms)
		terms.GET("/:termId/kpis", reportController.GetTermKPIs)
		terms.GET("/:termId/students", reportController.GetStudents)
		terms.GET("/:termId/sections", reportController.GetSections)
		terms.GET("/:termId/at-risk", reportController.GetAtRisk)
	}
}
