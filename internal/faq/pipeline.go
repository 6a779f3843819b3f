package faq

import (
	"context"
	"errors"
	"strings"

	"github.com/faqforge/faqforge/pkg/model"
	"go.uber.org/zap"
)

// Completer is the outbound completion service: one system message, one user
// message, the first text content block of the response back.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Generation couples a validated request with its validated result.
type Generation struct {
	Request model.GenerationRequest
	Result  model.GenerationResult
}

// Pipeline runs one generation end to end: validate, prompt, complete,
// validate output. Stateless and safe for concurrent use.
type Pipeline struct {
	Completer Completer
	Logger    *zap.Logger
}

func NewPipeline(completer Completer, logger *zap.Logger) *Pipeline {
	return &Pipeline{Completer: completer, Logger: logger}
}

// Generate makes exactly one completion call per invocation. Any stage failure
// short-circuits the rest; nothing is retried and no partial result escapes.
func (p *Pipeline) Generate(ctx context.Context, in model.GenerationInput) (*Generation, error) {
	req, err := ValidateRequest(in)
	if err != nil {
		return nil, err
	}

	system, user := BuildPrompts(req)

	text, err := p.Completer.Complete(ctx, system, user)
	if err != nil {
		return nil, &UpstreamError{Msg: "completion call failed", Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return nil, &UpstreamError{Msg: "empty response from model"}
	}

	res, err := ValidateOutput(text)
	if err != nil {
		var malformed *MalformedOutputError
		if p.Logger != nil && errors.As(err, &malformed) {
			p.Logger.Sugar().Warnw("model output rejected", "topic", req.Topic, "err", err)
		}
		return nil, err
	}

	return &Generation{Request: req, Result: *res}, nil
}
