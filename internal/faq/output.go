package faq

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/faqforge/faqforge/pkg/model"
)

// ValidateOutput parses raw model output as strict JSON and checks it against
// the result bounds. On success the result comes back content-unchanged except
// that a missing notes field becomes an empty list.
func ValidateOutput(raw string) (*model.GenerationResult, error) {
	var res model.GenerationResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field := typeErr.Field
			if field == "" {
				field = "(root)"
			}
			return nil, &SchemaViolationError{Field: field, Constraint: "has unexpected type " + typeErr.Value}
		}
		return nil, &MalformedOutputError{Raw: raw, Err: err}
	}

	if res.Faqs == nil {
		return nil, &SchemaViolationError{Field: "faqs", Constraint: "is required"}
	}
	for i, item := range res.Faqs {
		if constraint, ok := faqItemBounds.question.check(item.Question); !ok {
			return nil, &SchemaViolationError{Field: fmt.Sprintf("faqs[%d].question", i), Constraint: constraint}
		}
		if constraint, ok := faqItemBounds.answer.check(item.Answer); !ok {
			return nil, &SchemaViolationError{Field: fmt.Sprintf("faqs[%d].answer", i), Constraint: constraint}
		}
	}
	for _, b := range resultBounds {
		if constraint, ok := b.check(b.get(&res)); !ok {
			return nil, &SchemaViolationError{Field: b.field, Constraint: constraint}
		}
	}

	if res.Notes == nil {
		res.Notes = []string{}
	}
	return &res, nil
}
