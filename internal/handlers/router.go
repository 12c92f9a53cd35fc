package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/report-service/internal/services"
	"github.com/SAP-F-2025/report-service/internal/utils"
	"github.com/SAP-F-2025/report-service/internal/validator"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	reportHandler *ReportHandler
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	validator *validator.Validator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		reportHandler: NewReportHandler(serviceManager.Report(), validator, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	{
		students := v1.Group("/students/:student_id")
		{
			students.GET("/reports", hm.reportHandler.ListStudentReports)
			students.GET("/reports/monthly", hm.reportHandler.GenerateMonthlyReport)
			students.GET("/reports/range", hm.reportHandler.GenerateRangeReport)
			students.GET("/attendance-stats", hm.reportHandler.GetAttendanceStats)
		}

		reports := v1.Group("/reports")
		{
			reports.POST("", hm.reportHandler.SaveReport)
			reports.GET("/:id", hm.reportHandler.GetReport)
			reports.GET("/:id/export", hm.reportHandler.ExportReport)
		}
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "report-service",
	})
}
