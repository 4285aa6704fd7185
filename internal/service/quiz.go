package service

import (
	"context"
	"strings"

	"github.com/Karan28272827/testurself-backend/internal/domain"
	"github.com/Karan28272827/testurself-backend/internal/dto"
	"github.com/Karan28272827/testurself-backend/internal/logger"

	"go.uber.org/zap"
)

// QuizService defines the interface for question generation and answer
// evaluation operations
type QuizService interface {
	GenerateFromDocument(ctx context.Context, docURL string) (*dto.GenerateFromDocResponse, error)
	GenerateQuestion(ctx context.Context) (*dto.GenerateQuestionResponse, error)
	EvaluateAnswer(ctx context.Context, req *dto.EvaluateAnswerRequest) (*dto.EvaluateAnswerResponse, error)
}

// quizService implements QuizService
type quizService struct {
	fetcher  domain.DocumentFetcher
	llm      domain.CompletionClient
	docCache *DocumentCache
}

// NewQuizService creates a new instance of quizService
func NewQuizService(fetcher domain.DocumentFetcher, llm domain.CompletionClient, docCache *DocumentCache) QuizService {
	return &quizService{
		fetcher:  fetcher,
		llm:      llm,
		docCache: docCache,
	}
}

// GenerateFromDocument returns the question set for the document at docURL,
// serving the cached set while it is fresh. On a miss the document is
// fetched, a new set is generated, and the whole cache slot is replaced.
// Overlapping misses are not deduplicated; the later write wins.
func (s *quizService) GenerateFromDocument(ctx context.Context, docURL string) (*dto.GenerateFromDocResponse, error) {
	if questionSet, ok := s.docCache.Lookup(docURL); ok {
		logger.Get().Info("Serving cached document questions", zap.String("doc_url", docURL))
		return &dto.GenerateFromDocResponse{GeneratedQuestions: questionSet}, nil
	}

	docText, err := s.fetcher.Fetch(ctx, docURL)
	if err != nil {
		return nil, err
	}

	questionSet, err := s.llm.Complete(ctx, buildQuestionSetPrompt(docText), questionSetTemperature)
	if err != nil {
		return nil, err
	}
	questionSet = strings.TrimSpace(questionSet)

	s.docCache.Store(docURL, docText, questionSet)
	logger.Get().Info("Generated and cached document questions", zap.String("doc_url", docURL))

	return &dto.GenerateFromDocResponse{GeneratedQuestions: questionSet}, nil
}

// GenerateQuestion produces one question from the built-in document snippet.
func (s *quizService) GenerateQuestion(ctx context.Context) (*dto.GenerateQuestionResponse, error) {
	question, err := s.llm.Complete(ctx, buildSingleQuestionPrompt(defaultDocument), singleQuestionTemperature)
	if err != nil {
		return nil, err
	}
	return &dto.GenerateQuestionResponse{Question: strings.TrimSpace(question)}, nil
}

// EvaluateAnswer judges a student's free-text answer against the reference
// text carried in the request's question field.
func (s *quizService) EvaluateAnswer(ctx context.Context, req *dto.EvaluateAnswerRequest) (*dto.EvaluateAnswerResponse, error) {
	reply, err := s.llm.Complete(ctx, buildEvaluationPrompt(req.Question, req.UserAnswer), evaluationTemperature)
	if err != nil {
		return nil, err
	}

	result := parseEvaluation(reply)
	logger.Get().Debug("Parsed evaluation verdict",
		zap.Bool("is_correct", result.IsCorrect),
	)

	return &dto.EvaluateAnswerResponse{
		IsCorrect:     result.IsCorrect,
		Justification: result.Justification,
	}, nil
}
