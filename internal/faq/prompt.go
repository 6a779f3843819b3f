package faq

import (
	"fmt"
	"strings"

	"github.com/faqforge/faqforge/pkg/model"
)

const outputShape = `Return ONLY minified JSON matching this shape:
{
  "faqs": [{"question": string, "answer": string}],
  "jsonld": string,
  "title": string,
  "meta_description": string,
  "notes": [string]
}
Where "jsonld" is a valid JSON-LD object string for a schema.org FAQPage,
"title" is an SEO title for the FAQ page (<= 60 chars if possible),
"meta_description" is 140-160 chars and "notes" are short bullet notes about
important constraints you applied.`

const systemPrompt = `You are an SEO assistant for developer-tool companies.
Goal: Generate high-quality FAQ content that can win "People Also Ask" and rich results.

Hard rules:
- Answers must be factual, non-harmful, and avoid medical/legal/financial claims.
- Tone should match the audience and be technically accurate.
- Each answer 60-160 words, skimmable, with 0-1 code snippets if truly needed.
- Do NOT invent product capabilities.
- Include JSON-LD (schema.org FAQPage) with the same Q&A.
- Output must be STRICTLY the requested JSON (no markdown, no prose, no comments).

` + outputShape

// BuildPrompts returns the system and user prompts for a validated request.
// Pure and deterministic: identical requests yield byte-identical prompts.
func BuildPrompts(req model.GenerationRequest) (system, user string) {
	lines := []string{
		"Topic: " + req.Topic,
		"Product: " + req.Product,
		"Audience: " + req.Audience,
		fmt.Sprintf("Questions: %d", req.NumQuestions),
		"Tone: " + req.Tone,
		"Language: " + req.Language,
		"",
		"Instructions:",
		fmt.Sprintf("1) Create %d PAA-style FAQs specific to the topic and audience.", req.NumQuestions),
		"2) Prioritize intent diversity: how/why/what/when/compare/troubleshoot/security/cost/perf.",
		`3) Avoid brand hype. If uncertain, hedge with "typically", "in many setups".`,
		"4) Generate JSON-LD (FAQPage) with the SAME Q&A.",
		"5) Return ONLY minified JSON matching the requested shape.",
	}
	return systemPrompt, strings.Join(lines, "\n")
}
