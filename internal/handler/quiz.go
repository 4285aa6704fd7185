package handler

import (
	"github.com/Karan28272827/testurself-backend/internal/dto"
	"github.com/Karan28272827/testurself-backend/internal/logger"
	"github.com/Karan28272827/testurself-backend/internal/service"
	"github.com/Karan28272827/testurself-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles question generation and answer evaluation requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validator,
	}
}

// GenerateFromDoc godoc
// @Summary Generate quiz questions from a document URL
// @Description Fetches a published document and generates 5 objective and 5 subjective questions with answers
// @Tags quiz
// @Accept json
// @Produce json
// @Param doc_url query string true "Published-to-web document URL"
// @Success 200 {object} dto.GenerateFromDocResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /generate-from-doc [get]
func (h *QuizHandler) GenerateFromDoc(c *fiber.Ctx) error {
	docURL := c.Query("doc_url")
	if errs := h.validator.ValidateGenerateFromDocRequest(docURL); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.GenerateFromDocument(c.Context(), docURL)
	if err != nil {
		logger.Get().Error("Failed to generate questions from document",
			zap.Error(err),
			zap.String("doc_url", docURL),
		)
		return err
	}

	return c.JSON(resp)
}

// GenerateQuestion godoc
// @Summary Generate a single question
// @Description Generates one question from the built-in document snippet
// @Tags quiz
// @Accept json
// @Produce json
// @Success 200 {object} dto.GenerateQuestionResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /generate-question [post]
func (h *QuizHandler) GenerateQuestion(c *fiber.Ctx) error {
	resp, err := h.service.GenerateQuestion(c.Context())
	if err != nil {
		logger.Get().Error("Failed to generate question", zap.Error(err))
		return err
	}

	return c.JSON(resp)
}

// EvaluateAnswer godoc
// @Summary Evaluate a student's answer
// @Description Judges a free-text answer against the reference text and returns a verdict with justification
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.EvaluateAnswerRequest true "Answer details"
// @Success 200 {object} dto.EvaluateAnswerResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /evaluate-answer [post]
func (h *QuizHandler) EvaluateAnswer(c *fiber.Ctx) error {
	var req dto.EvaluateAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "INVALID_REQUEST",
		})
	}

	if errs := h.validator.ValidateEvaluateAnswerRequest(req.Question, req.UserAnswer); len(errs) > 0 {
		return errs
	}

	result, err := h.service.EvaluateAnswer(c.Context(), &req)
	if err != nil {
		logger.Get().Error("Failed to evaluate answer", zap.Error(err))
		return err
	}

	return c.JSON(result)
}

// Root godoc
// @Summary Liveness and identity
// @Description Returns the service identity message
// @Tags meta
// @Produce json
// @Success 200 {object} dto.RootResponse
// @Router / [get]
func (h *QuizHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.RootResponse{Message: "DeepSeek Learning Bot API"})
}
