package handler

import (
	"context"
	"time"

	"github.com/faqforge/faqforge/internal/auth"
	"github.com/faqforge/faqforge/internal/cache"
	"github.com/faqforge/faqforge/internal/faq"
	"github.com/faqforge/faqforge/pkg/model"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserStore is the durable-store surface the user handlers need.
type UserStore interface {
	Create(ctx context.Context, email, name, passwordHash string) (uuid.UUID, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (model.User, error)
}

// GenerationStore is the durable-store surface the FAQ handlers need. Reads
// carry the ownership filter.
type GenerationStore interface {
	Create(ctx context.Context, g *model.StoredGeneration) (uuid.UUID, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*model.StoredGeneration, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.StoredGeneration, error)
}

// SessionStore holds refresh sessions.
type SessionStore interface {
	Create(ctx context.Context, sess cache.Session) error
	Get(ctx context.Context, sessionID string) (*cache.Session, error)
	Revoke(ctx context.Context, sessionID string) error
}

type Handler struct {
	Logger      *zap.Logger
	Users       UserStore
	Generations GenerationStore
	Sessions    SessionStore
	TokenMaker  *auth.JWTMaker
	AccessTTL   time.Duration
	RefreshTTL  time.Duration
	Pipeline    *faq.Pipeline
}

// GetClaimsFromContext retrieves the verified claims set by the auth middleware.
func (h *Handler) GetClaimsFromContext(c *gin.Context) *auth.UserClaims {
	v, exists := c.Get("claims")
	if !exists {
		return nil
	}
	claims, ok := v.(*auth.UserClaims)
	if !ok {
		return nil
	}
	return claims
}
