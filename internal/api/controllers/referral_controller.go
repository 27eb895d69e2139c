package controllers

import (
	"github.com/gin-gonic/gin"

	"earnhub/internal/services"
	"earnhub/pkg/utils"
)

type ReferralController struct {
	referralService services.ReferralServiceInterface
}

func NewReferralController(referralService services.ReferralServiceInterface) *ReferralController {
	return &ReferralController{
		referralService: referralService,
	}
}

func (r *ReferralController) GetReferralDetails(c *gin.Context) {
	result, err := r.referralService.GetReferralDetails(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Fetched referral details successfully")
}
