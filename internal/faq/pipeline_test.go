package faq

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/faqforge/faqforge/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubCompleter records how often it was called and replays a fixed answer.
type stubCompleter struct {
	calls int
	text  string
	err   error

	lastSystem string
	lastUser   string
}

func (s *stubCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	s.calls++
	s.lastSystem = system
	s.lastUser = user
	return s.text, s.err
}

func TestPipelineValidationFailureSkipsUpstream(t *testing.T) {
	stub := &stubCompleter{text: mustJSON(t, validResult(5))}
	p := NewPipeline(stub, zap.NewNop())

	_, err := p.Generate(context.Background(), model.GenerationInput{Topic: "ab", Product: "Acme Edge"})
	require.Error(t, err)

	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))
	assert.Equal(t, 0, stub.calls)
}

func TestPipelineSuccess(t *testing.T) {
	want := validResult(5)
	stub := &stubCompleter{text: mustJSON(t, want)}
	p := NewPipeline(stub, zap.NewNop())

	gen, err := p.Generate(context.Background(), model.GenerationInput{
		Topic:        "Edge functions",
		Product:      "Acme Edge",
		NumQuestions: intPtr(5),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, want, gen.Result)
	assert.Equal(t, 5, gen.Request.NumQuestions)
	assert.Contains(t, stub.lastUser, "Questions: 5")
	assert.Contains(t, stub.lastSystem, "FAQPage")
}

func TestPipelineCompletionFailure(t *testing.T) {
	stub := &stubCompleter{err: fmt.Errorf("quota exceeded")}
	p := NewPipeline(stub, zap.NewNop())

	_, err := p.Generate(context.Background(), model.GenerationInput{Topic: "Edge functions", Product: "Acme Edge"})
	require.Error(t, err)

	var uErr *UpstreamError
	require.True(t, errors.As(err, &uErr))
	assert.Contains(t, uErr.Error(), "quota exceeded")
	assert.Equal(t, 1, stub.calls)
}

func TestPipelineEmptyResponse(t *testing.T) {
	stub := &stubCompleter{text: "   "}
	p := NewPipeline(stub, zap.NewNop())

	_, err := p.Generate(context.Background(), model.GenerationInput{Topic: "Edge functions", Product: "Acme Edge"})
	require.Error(t, err)

	var uErr *UpstreamError
	require.True(t, errors.As(err, &uErr))
	assert.Equal(t, "empty response from model", uErr.Error())
}

func TestPipelineMalformedOutputKeepsRaw(t *testing.T) {
	stub := &stubCompleter{text: "Sorry, I can't help"}
	p := NewPipeline(stub, zap.NewNop())

	_, err := p.Generate(context.Background(), model.GenerationInput{Topic: "Edge functions", Product: "Acme Edge"})
	require.Error(t, err)

	var mErr *MalformedOutputError
	require.True(t, errors.As(err, &mErr))
	assert.Equal(t, "Sorry, I can't help", mErr.Raw)
}

func TestPipelineSchemaViolationIsTerminal(t *testing.T) {
	doc := validResult(3)
	doc.Title = "ab"
	stub := &stubCompleter{text: mustJSON(t, doc)}
	p := NewPipeline(stub, zap.NewNop())

	_, err := p.Generate(context.Background(), model.GenerationInput{Topic: "Edge functions", Product: "Acme Edge"})
	require.Error(t, err)

	var sErr *SchemaViolationError
	require.True(t, errors.As(err, &sErr))
	assert.Equal(t, "title", sErr.Field)
	// no retry
	assert.Equal(t, 1, stub.calls)
}
