package validation

import (
	"strings"
	"testing"

	"github.com/Karan28272827/testurself-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestValidateGenerateFromDocRequest(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		docURL   string
		wantCode domain.ErrorCode
	}{
		{name: "valid https url", docURL: "https://docs.google.com/document/d/e/abc/pub?output=txt"},
		{name: "valid http url", docURL: "http://example.com/doc"},
		{name: "empty", docURL: "", wantCode: domain.CodeMissingField},
		{name: "whitespace only", docURL: "   ", wantCode: domain.CodeMissingField},
		{name: "no scheme", docURL: "example.com/doc", wantCode: domain.CodeInvalidFormat},
		{name: "unsupported scheme", docURL: "ftp://example.com/doc", wantCode: domain.CodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateGenerateFromDocRequest(tt.docURL)
			if tt.wantCode == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Len(t, errs, 1)
			assert.Equal(t, tt.wantCode, errs[0].Code)
		})
	}
}

func TestValidateEvaluateAnswerRequest(t *testing.T) {
	v := NewValidator()

	t.Run("valid request", func(t *testing.T) {
		errs := v.ValidateEvaluateAnswerRequest("Water boils at 100C.", "boils at 100 degrees celsius")
		assert.Empty(t, errs)
	})

	t.Run("missing both fields", func(t *testing.T) {
		errs := v.ValidateEvaluateAnswerRequest("", "")
		assert.Len(t, errs, 2)
	})

	t.Run("answer too long", func(t *testing.T) {
		errs := v.ValidateEvaluateAnswerRequest("q", strings.Repeat("a", 2001))
		assert.Len(t, errs, 1)
		assert.Equal(t, domain.CodeOutOfRange, errs[0].Code)
	})
}
