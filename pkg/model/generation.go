package model

import (
	"time"

	"github.com/google/uuid"
)

// FAQItem is one question/answer pair. Slice order is presentation order.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GenerationInput is the raw POST body before defaults are applied. Optional
// fields are pointers so absent and zero stay distinct.
type GenerationInput struct {
	Topic        string  `json:"topic"`
	Product      string  `json:"product"`
	Audience     *string `json:"audience"`
	NumQuestions *int    `json:"num_questions"`
	Tone         *string `json:"tone"`
	Language     *string `json:"language"`
}

// GenerationRequest is a validated input with every default filled in. Nothing
// downstream of validation ever sees an unset field.
type GenerationRequest struct {
	Topic        string `json:"topic"`
	Product      string `json:"product"`
	Audience     string `json:"audience"`
	NumQuestions int    `json:"num_questions"`
	Tone         string `json:"tone"`
	Language     string `json:"language"`
}

// GenerationResult is the model's JSON output, returned to the caller
// unchanged once it passes the output bounds.
type GenerationResult struct {
	Faqs            []FAQItem `json:"faqs"`
	JSONLD          string    `json:"jsonld"`
	Title           string    `json:"title"`
	MetaDescription string    `json:"meta_description"`
	Notes           []string  `json:"notes"`
}

// StoredGeneration is a persisted result plus the request that produced it.
type StoredGeneration struct {
	ID              uuid.UUID `json:"id" db:"id"`
	UserID          uuid.UUID `json:"user_id" db:"user_id"`
	Topic           string    `json:"topic" db:"topic"`
	Product         string    `json:"product" db:"product"`
	Audience        string    `json:"audience" db:"audience"`
	NumQuestions    int       `json:"num_questions" db:"num_questions"`
	Tone            string    `json:"tone" db:"tone"`
	Language        string    `json:"language" db:"language"`
	Faqs            []FAQItem `json:"faqs" db:"faqs"`
	JSONLD          string    `json:"jsonld" db:"jsonld"`
	Title           string    `json:"title" db:"title"`
	MetaDescription string    `json:"meta_description" db:"meta_description"`
	Notes           []string  `json:"notes" db:"notes"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
