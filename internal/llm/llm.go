package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNoReply marks a model call that succeeded on the wire but produced no
// usable text.
var ErrNoReply = errors.New("model returned no usable text")

const callTimeout = 30 * time.Second

// Generator is the language-model port. Failures travel inside the Result;
// Generate itself never returns an error.
type Generator interface {
	Generate(ctx context.Context, prompt string) Result
	Model() string
}

// Result distinguishes a usable reply from a failed call.
type Result struct {
	text string
	err  error
}

func Ok(text string) Result { return Result{text: text} }

func Failed(err error) Result { return Result{err: err} }

func (r Result) Ok() bool { return r.err == nil }

func (r Result) Text() string { return r.text }

func (r Result) Err() error { return r.err }

// Fallback converts a Result into the reply text to persist: the model text
// on success, a placeholder otherwise. Model failures end here; they are
// never surfaced to the turn's caller.
func Fallback(model string, r Result) string {
	switch {
	case r.Ok():
		return r.text
	case errors.Is(r.err, ErrNoReply):
		return fmt.Sprintf("[no reply from %s]", model)
	default:
		return fmt.Sprintf("[error calling %s: %v]", model, r.err)
	}
}
