package faq

import (
	"fmt"

	"github.com/faqforge/faqforge/pkg/model"
)

const (
	defaultAudience     = "Developers"
	defaultNumQuestions = 10
	defaultTone         = "clear and helpful"
	defaultLanguage     = "en"

	minQuestions = 3
	maxQuestions = 20
)

// ValidateRequest applies defaults and checks the request bounds. The returned
// request has every field set; validation stops at the first violation.
func ValidateRequest(in model.GenerationInput) (model.GenerationRequest, error) {
	req := model.GenerationRequest{
		Topic:        in.Topic,
		Product:      in.Product,
		Audience:     defaultAudience,
		NumQuestions: defaultNumQuestions,
		Tone:         defaultTone,
		Language:     defaultLanguage,
	}
	if in.Audience != nil {
		req.Audience = *in.Audience
	}
	if in.NumQuestions != nil {
		req.NumQuestions = *in.NumQuestions
	}
	if in.Tone != nil {
		req.Tone = *in.Tone
	}
	if in.Language != nil {
		req.Language = *in.Language
	}

	values := map[string]string{
		"topic":   req.Topic,
		"product": req.Product,
	}
	for _, b := range requestBounds {
		if constraint, ok := b.check(values[b.field]); !ok {
			return model.GenerationRequest{}, &ValidationError{Field: b.field, Constraint: constraint, Value: values[b.field]}
		}
	}

	if req.NumQuestions < minQuestions || req.NumQuestions > maxQuestions {
		return model.GenerationRequest{}, &ValidationError{
			Field:      "num_questions",
			Constraint: fmt.Sprintf("must be between %d and %d", minQuestions, maxQuestions),
			Value:      req.NumQuestions,
		}
	}

	return req, nil
}
