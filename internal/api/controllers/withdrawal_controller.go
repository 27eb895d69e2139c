package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"earnhub/internal/models/request_models"
	"earnhub/internal/services"
	"earnhub/pkg/utils"
)

type WithdrawalController struct {
	withdrawalService services.WithdrawalServiceInterface
}

func NewWithdrawalController(withdrawalService services.WithdrawalServiceInterface) *WithdrawalController {
	return &WithdrawalController{
		withdrawalService: withdrawalService,
	}
}

func (w *WithdrawalController) Request(c *gin.Context) {
	var req request_models.CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := w.withdrawalService.Request(c.Request.Context(), c.Param("userId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result, "Withdrawal requested successfully")
}

func (w *WithdrawalController) ListMine(c *gin.Context) {
	result, err := w.withdrawalService.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Fetched withdrawals successfully")
}

func (w *WithdrawalController) ListAll(c *gin.Context) {
	result, err := w.withdrawalService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Fetched withdrawals successfully")
}

func (w *WithdrawalController) UpdateState(c *gin.Context) {
	var req request_models.UpdateWithdrawalStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := w.withdrawalService.UpdateState(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Withdrawal state updated successfully")
}
