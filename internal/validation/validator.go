package validation

import (
	"net/url"
	"strings"

	"github.com/Karan28272827/testurself-backend/internal/domain"
)

const maxUserAnswerLen = 2000

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateFromDocRequest validates the doc_url query parameter
func (v *Validator) ValidateGenerateFromDocRequest(docURL string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(docURL) == "" {
		errors = append(errors, domain.NewMissingFieldError("doc_url"))
	} else if !isValidDocURL(docURL) {
		errors = append(errors, domain.NewInvalidFormatError("doc_url", docURL))
	}

	return errors
}

// ValidateEvaluateAnswerRequest validates the evaluate-answer request body
func (v *Validator) ValidateEvaluateAnswerRequest(question, userAnswer string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(question) == "" {
		errors = append(errors, domain.NewMissingFieldError("question"))
	}

	if strings.TrimSpace(userAnswer) == "" {
		errors = append(errors, domain.NewMissingFieldError("user_answer"))
	} else if len(userAnswer) > maxUserAnswerLen {
		errors = append(errors, domain.NewOutOfRangeError("user_answer", len(userAnswer), 1, maxUserAnswerLen))
	}

	return errors
}

// isValidDocURL checks that the value parses as an absolute http(s) URL.
// Anything beyond that is left to the transport, per the fetcher contract.
func isValidDocURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
