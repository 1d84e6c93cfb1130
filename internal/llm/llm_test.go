package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestResult(t *testing.T) {
	ok := Ok("hello")
	assert.True(t, ok.Ok())
	assert.Equal(t, "hello", ok.Text())
	assert.NoError(t, ok.Err())

	cause := errors.New("connection refused")
	failed := Failed(cause)
	assert.False(t, failed.Ok())
	assert.Equal(t, cause, failed.Err())
}

func TestFallback(t *testing.T) {
	assert.Equal(t, "hello", Fallback("gemini-2.5-flash", Ok("hello")))
	assert.Equal(t, "[no reply from gemini-2.5-flash]", Fallback("gemini-2.5-flash", Failed(ErrNoReply)))
	assert.Equal(t,
		"[error calling gemini-2.5-flash: connection refused]",
		Fallback("gemini-2.5-flash", Failed(errors.New("connection refused"))))
}

func TestExtractText(t *testing.T) {
	assert.Equal(t, "", extractText(nil))
	assert.Equal(t, "", extractText(&genai.GenerateContentResponse{}))

	withText := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: "hi there"}}},
		}},
	}
	assert.Equal(t, "hi there", extractText(withText))

	emptyContent := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: nil}},
	}
	assert.Equal(t, "", extractText(emptyContent))

	noText := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{InlineData: &genai.Blob{MIMEType: "image/png"}}}},
		}},
	}
	assert.Equal(t, "", extractText(noText))
}
