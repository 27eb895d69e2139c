package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service-layer errors onto the response envelope.
// Unknown and database failures are logged and reported generically.
func HandleServiceError(c *gin.Context, err error) {
	var cooldown *CooldownError
	if errors.As(err, &cooldown) {
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Task already completed recently",
			TraceID: traceID(c),
			Data:    gin.H{"nextAvailable": cooldown.NextAvailable},
		})
		return
	}

	switch {
	case errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrTaskNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrSubscriptionNotFound),
		errors.Is(err, ErrWithdrawalNotFound),
		errors.Is(err, ErrNoActivePlans),
		errors.Is(err, ErrNoPurchasedPlans),
		errors.Is(err, ErrInvalidReferralCode):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrDuplicateTaxID),
		errors.Is(err, ErrNoTasksForPlan),
		errors.Is(err, ErrIncorrectAnswer),
		errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrUsernameTaken),
		errors.Is(err, ErrInsufficientBalance):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.L().Error("unknown error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
