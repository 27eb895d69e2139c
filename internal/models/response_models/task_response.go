package response_models

import (
	"github.com/google/uuid"

	"earnhub/pkg/utils"
)

// TaskFetchResponse is returned by the fetch-for-user endpoint. While the
// task is on cooldown only IsCompleted and NextAvailable are populated.
type TaskFetchResponse struct {
	IsCompleted   bool                `json:"isCompleted"`
	NextAvailable int64               `json:"nextAvailable,omitempty"`
	TaskID        uuid.UUID           `json:"taskId,omitempty"`
	TaskURL       string              `json:"taskUrl,omitempty"`
	TaskPrice     int64               `json:"taskPrice,omitempty"`
	PlanID        uuid.UUID           `json:"planId,omitempty"`
	PlanName      string              `json:"planName,omitempty"`
	MathQuestion  *utils.MathChallenge `json:"mathQuestion,omitempty"`
}

type TaskStatusEntry struct {
	TaskID        uuid.UUID `json:"taskId"`
	Status        string    `json:"status"`
	CompletedAt   int64     `json:"completedAt,omitempty"`
	NextAvailable int64     `json:"nextAvailable,omitempty"`
}

type SubmitTaskResponse struct {
	Earned     int64 `json:"earnings"`
	NewBalance int64 `json:"newBalance"`
}
