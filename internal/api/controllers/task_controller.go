package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"earnhub/internal/models/request_models"
	"earnhub/internal/services"
	"earnhub/pkg/utils"
)

type TaskController struct {
	taskService services.TaskServiceInterface
}

func NewTaskController(taskService services.TaskServiceInterface) *TaskController {
	return &TaskController{
		taskService: taskService,
	}
}

// GetTaskForUser returns the cooldown state for a (task, user) pair, or
// the task content plus a fresh math challenge when the task is available.
func (t *TaskController) GetTaskForUser(c *gin.Context) {
	result, err := t.taskService.FetchForUser(c.Request.Context(), c.Param("taskId"), c.Param("userId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Task available"
	if result.IsCompleted {
		message = "Task already completed recently"
	}
	utils.RespondSuccess(c, result, message)
}

func (t *TaskController) GetStatuses(c *gin.Context) {
	result, err := t.taskService.Statuses(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Fetched task statuses successfully")
}

// Submit godoc
// @Summary Submit a task answer
// @Description Verify the challenge answer and credit the task payout
// @Tags Tasks
// @Accept json
// @Produce json
// @Param taskId path string true "Task id"
// @Param userId path string true "User id"
// @Param request body request_models.SubmitTaskAnswerRequest true "Answer payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /task/{taskId}/user/{userId}/submit [post]
func (t *TaskController) Submit(c *gin.Context) {
	var req request_models.SubmitTaskAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := t.taskService.Submit(c.Request.Context(), c.Param("taskId"), c.Param("userId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Task completed successfully!")
}
