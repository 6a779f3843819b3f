package faq

import (
	"testing"

	"github.com/faqforge/faqforge/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPromptsDeterministic(t *testing.T) {
	req, err := ValidateRequest(model.GenerationInput{
		Topic:        "Edge functions",
		Product:      "Acme Edge",
		NumQuestions: intPtr(5),
	})
	require.NoError(t, err)

	sys1, user1 := BuildPrompts(req)
	sys2, user2 := BuildPrompts(req)

	assert.Equal(t, sys1, sys2)
	assert.Equal(t, user1, user2)
}

func TestBuildPromptsContent(t *testing.T) {
	req, err := ValidateRequest(model.GenerationInput{
		Topic:        "Edge functions",
		Product:      "Acme Edge",
		NumQuestions: intPtr(5),
	})
	require.NoError(t, err)

	sys, user := BuildPrompts(req)

	assert.Contains(t, sys, "FAQPage")
	assert.Contains(t, sys, "meta_description")
	assert.Contains(t, sys, "medical/legal/financial")

	assert.Contains(t, user, "Topic: Edge functions")
	assert.Contains(t, user, "Product: Acme Edge")
	assert.Contains(t, user, "Audience: Developers")
	assert.Contains(t, user, "Questions: 5")
	assert.Contains(t, user, "Create 5 PAA-style FAQs")
	assert.Contains(t, user, "how/why/what/when/compare/troubleshoot/security/cost/perf")
}
