package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"earnhub/internal/models/request_models"
	"earnhub/internal/services"
	"earnhub/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

// Purchase godoc
// @Summary Purchase a plan
// @Description Create a pending subscription and clone the plan's tasks for the user
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param userId path string true "User id"
// @Param request body request_models.PurchasePlanRequest true "Purchase payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plan/purchase/{userId} [post]
func (s *SubscriptionController) Purchase(c *gin.Context) {
	var req request_models.PurchasePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := s.subscriptionService.Purchase(c.Request.Context(), c.Param("userId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result, "Plan purchased and tasks created successfully")
}

func (s *SubscriptionController) GetUserPlans(c *gin.Context) {
	result, err := s.subscriptionService.GetUserPlans(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Fetched user plans successfully")
}

func (s *SubscriptionController) GetUserPlansWithTasks(c *gin.Context) {
	result, err := s.subscriptionService.GetActivePlansWithTasks(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"userPlans": result}, "Active plans fetched successfully")
}

func (s *SubscriptionController) GetTotalDeposit(c *gin.Context) {
	result, err := s.subscriptionService.GetTotalDeposit(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Total deposit fetched successfully")
}

func (s *SubscriptionController) UpdateState(c *gin.Context) {
	var req request_models.UpdatePlanStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := s.subscriptionService.UpdateState(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Plan state updated successfully")
}

func (s *SubscriptionController) GetAllPurchased(c *gin.Context) {
	result, err := s.subscriptionService.GetAllPurchased(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"plans": result}, "Fetched all purchased plans successfully")
}
