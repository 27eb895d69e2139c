package request_models

type SubmitTaskAnswerRequest struct {
	Answer        int   `json:"answer"`
	CorrectAnswer int   `json:"correctAnswer"`
	TaskPrice     int64 `json:"taskPrice"`
}
