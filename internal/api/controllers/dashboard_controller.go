package controllers

import (
	"github.com/gin-gonic/gin"

	"earnhub/internal/services"
	"earnhub/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

func (d *DashboardController) Overview(c *gin.Context) {
	result, err := d.dashboardService.Overview(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Fetched dashboard overview successfully")
}
