package faq

import (
	"fmt"

	"github.com/faqforge/faqforge/pkg/model"
)

// lengthBound is one declarative length constraint on a text field. The same
// table shape drives request and result validation so both sides report
// violations identically.
type lengthBound struct {
	field string
	min   int
	max   int // 0 means unbounded
}

func (b lengthBound) check(value string) (constraint string, ok bool) {
	if len(value) < b.min {
		return fmt.Sprintf("must be at least %d characters", b.min), false
	}
	if b.max > 0 && len(value) > b.max {
		return fmt.Sprintf("must be at most %d characters", b.max), false
	}
	return "", true
}

var requestBounds = []lengthBound{
	{field: "topic", min: 3},
	{field: "product", min: 2},
}

var resultBounds = []struct {
	lengthBound
	get func(*model.GenerationResult) string
}{
	{lengthBound{field: "jsonld", min: 10}, func(r *model.GenerationResult) string { return r.JSONLD }},
	{lengthBound{field: "title", min: 3, max: 90}, func(r *model.GenerationResult) string { return r.Title }},
	{lengthBound{field: "meta_description", min: 30, max: 200}, func(r *model.GenerationResult) string { return r.MetaDescription }},
}

var faqItemBounds = struct {
	question lengthBound
	answer   lengthBound
}{
	question: lengthBound{field: "question", min: 5},
	answer:   lengthBound{field: "answer", min: 40},
}
