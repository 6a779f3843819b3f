package faq

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/faqforge/faqforge/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validResult(n int) model.GenerationResult {
	faqs := make([]model.FAQItem, 0, n)
	for i := 0; i < n; i++ {
		faqs = append(faqs, model.FAQItem{
			Question: fmt.Sprintf("How does Acme Edge handle cold starts (case %d)?", i),
			Answer:   fmt.Sprintf("Acme Edge typically keeps instances warm near users, which in many setups reduces cold start latency noticeably (case %d).", i),
		})
	}
	return model.GenerationResult{
		Faqs:            faqs,
		JSONLD:          `{"@context":"https://schema.org","@type":"FAQPage"}`,
		Title:           "Acme Edge FAQ: Edge Functions Explained",
		MetaDescription: "Answers to common questions about running edge functions on Acme Edge, from cold starts to pricing.",
		Notes:           []string{"hedged uncertain claims"},
	}
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestValidateOutputPassthrough(t *testing.T) {
	want := validResult(5)
	got, err := ValidateOutput(mustJSON(t, want))
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestValidateOutputMalformed(t *testing.T) {
	raw := "Sorry, I can't help"
	_, err := ValidateOutput(raw)
	require.Error(t, err)

	var mErr *MalformedOutputError
	require.True(t, errors.As(err, &mErr))
	assert.Equal(t, raw, mErr.Raw)
}

func TestValidateOutputSchemaViolations(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*model.GenerationResult)
		wantField string
	}{
		{
			name:      "missing faqs",
			mutate:    func(r *model.GenerationResult) { r.Faqs = nil },
			wantField: "faqs",
		},
		{
			name: "short answer",
			mutate: func(r *model.GenerationResult) {
				r.Faqs[1].Answer = strings.Repeat("a", 39)
			},
			wantField: "faqs[1].answer",
		},
		{
			name: "short question",
			mutate: func(r *model.GenerationResult) {
				r.Faqs[0].Question = "Why?"
			},
			wantField: "faqs[0].question",
		},
		{
			name: "title too long",
			mutate: func(r *model.GenerationResult) {
				r.Title = strings.Repeat("t", 91)
			},
			wantField: "title",
		},
		{
			name: "meta description too short",
			mutate: func(r *model.GenerationResult) {
				r.MetaDescription = strings.Repeat("m", 25)
			},
			wantField: "meta_description",
		},
		{
			name: "jsonld too short",
			mutate: func(r *model.GenerationResult) {
				r.JSONLD = "{}"
			},
			wantField: "jsonld",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validResult(3)
			tt.mutate(&doc)

			_, err := ValidateOutput(mustJSON(t, doc))
			require.Error(t, err)

			var sErr *SchemaViolationError
			require.True(t, errors.As(err, &sErr))
			assert.Equal(t, tt.wantField, sErr.Field)
		})
	}
}

func TestValidateOutputWrongType(t *testing.T) {
	_, err := ValidateOutput(`{"faqs":"not an array"}`)
	require.Error(t, err)

	var sErr *SchemaViolationError
	assert.True(t, errors.As(err, &sErr))
}

func TestValidateOutputDefaultsNotes(t *testing.T) {
	doc := validResult(3)
	raw := mustJSON(t, doc)
	// strip the notes field entirely
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	delete(m, "notes")
	raw = mustJSON(t, m)

	got, err := ValidateOutput(raw)
	require.NoError(t, err)
	assert.NotNil(t, got.Notes)
	assert.Empty(t, got.Notes)
}
