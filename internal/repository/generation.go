package repository

import (
	"context"
	"fmt"

	"github.com/faqforge/faqforge/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GenerationRepository is the concrete implementation for saved generations.
// Reads always filter by owner in the query itself, so a row owned by someone
// else is indistinguishable from a missing one.
type GenerationRepository struct {
	db *pgxpool.Pool
}

// Create persists a finished generation for its owner and returns the new id.
func (r *GenerationRepository) Create(ctx context.Context, g *model.StoredGeneration) (uuid.UUID, error) {
	id := uuid.New()
	const q = `
INSERT INTO faq_generations (
	id, user_id, topic, product, audience, num_questions, tone, language,
	faqs, jsonld, title, meta_description, notes, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now())
`
	_, err := r.db.Exec(ctx, q,
		id, g.UserID, g.Topic, g.Product, g.Audience, g.NumQuestions, g.Tone, g.Language,
		g.Faqs, g.JSONLD, g.Title, g.MetaDescription, g.Notes,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert generation: %w", err)
	}
	return id, nil
}

// GetByID returns one generation owned by userID. Callers distinguish
// not-found via pgx.ErrNoRows.
func (r *GenerationRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*model.StoredGeneration, error) {
	const q = `
SELECT id, user_id, topic, product, audience, num_questions, tone, language,
	faqs, jsonld, title, meta_description, notes, created_at
FROM faq_generations
WHERE id = $1 AND user_id = $2
`
	var g model.StoredGeneration
	row := r.db.QueryRow(ctx, q, id, userID)
	err := row.Scan(
		&g.ID, &g.UserID, &g.Topic, &g.Product, &g.Audience, &g.NumQuestions, &g.Tone, &g.Language,
		&g.Faqs, &g.JSONLD, &g.Title, &g.MetaDescription, &g.Notes, &g.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// ListByUser returns the caller's 10 most recent generations, newest first.
func (r *GenerationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.StoredGeneration, error) {
	const q = `
SELECT id, user_id, topic, product, audience, num_questions, tone, language,
	faqs, jsonld, title, meta_description, notes, created_at
FROM faq_generations
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT 10
`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("query generations: %w", err)
	}
	defer rows.Close()

	out := make([]model.StoredGeneration, 0, 10)
	for rows.Next() {
		var g model.StoredGeneration
		if err := rows.Scan(
			&g.ID, &g.UserID, &g.Topic, &g.Product, &g.Audience, &g.NumQuestions, &g.Tone, &g.Language,
			&g.Faqs, &g.JSONLD, &g.Title, &g.MetaDescription, &g.Notes, &g.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan generation row: %w", err)
		}
		out = append(out, g)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}
