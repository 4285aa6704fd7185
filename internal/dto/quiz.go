package dto

// GenerateFromDocResponse carries the formatted question/answer block
// generated from a fetched document
// @Description Generated questions for a document URL
type GenerateFromDocResponse struct {
	GeneratedQuestions string `json:"generated_questions"`
}

// GenerateQuestionResponse carries a single question generated from the
// built-in document snippet
type GenerateQuestionResponse struct {
	Question string `json:"question"`
}

// EvaluateAnswerRequest represents a student's answer in the API request
// @Description Request body for evaluating an answer
type EvaluateAnswerRequest struct {
	Question   string `json:"question"`
	UserAnswer string `json:"user_answer"`
}

// EvaluateAnswerResponse represents the evaluation verdict in the API response
type EvaluateAnswerResponse struct {
	IsCorrect     bool   `json:"is_correct"`
	Justification string `json:"justification"`
}

// RootResponse is the liveness/identity response
type RootResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
