package handler

import (
	"errors"
	"net/http"

	"github.com/faqforge/faqforge/internal/faq"
	"github.com/faqforge/faqforge/pkg/model"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Generate runs the FAQ pipeline for the signed-in user and persists the
// result. The response body is the validated GenerationResult, unchanged.
func (h *Handler) Generate(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var in model.GenerationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gen, err := h.Pipeline.Generate(c.Request.Context(), in)
	if err != nil {
		h.renderPipelineError(c, err)
		return
	}

	// Best-effort save: the caller still gets the result if the insert fails.
	stored := &model.StoredGeneration{
		UserID:          claims.UserID,
		Topic:           gen.Request.Topic,
		Product:         gen.Request.Product,
		Audience:        gen.Request.Audience,
		NumQuestions:    gen.Request.NumQuestions,
		Tone:            gen.Request.Tone,
		Language:        gen.Request.Language,
		Faqs:            gen.Result.Faqs,
		JSONLD:          gen.Result.JSONLD,
		Title:           gen.Result.Title,
		MetaDescription: gen.Result.MetaDescription,
		Notes:           gen.Result.Notes,
	}
	if _, err := h.Generations.Create(c.Request.Context(), stored); err != nil {
		h.Logger.Sugar().Errorw("failed to save generation", "user_id", claims.UserID, "err", err)
	}

	c.JSON(http.StatusOK, gen.Result)
}

func (h *Handler) renderPipelineError(c *gin.Context, err error) {
	var vErr *faq.ValidationError
	var mErr *faq.MalformedOutputError
	var sErr *faq.SchemaViolationError
	var uErr *faq.UpstreamError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.As(err, &mErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": mErr.Error(), "raw": mErr.Raw})
	case errors.As(err, &sErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": sErr.Error()})
	case errors.As(err, &uErr):
		h.Logger.Sugar().Warnw("completion call failed", "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": uErr.Error()})
	default:
		h.Logger.Sugar().Errorw("generation failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// GetGeneration returns one saved generation owned by the caller. A row owned
// by someone else reads as not found.
func (h *Handler) GetGeneration(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return
	}

	gen, err := h.Generations.GetByID(c.Request.Context(), id, claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "FAQ generation not found"})
			return
		}
		h.Logger.Sugar().Errorw("failed to get generation", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gen)
}

// ListGenerations returns the caller's 10 most recent generations, newest first.
func (h *Handler) ListGenerations(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	gens, err := h.Generations.ListByUser(c.Request.Context(), claims.UserID)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to list generations", "user_id", claims.UserID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gens)
}
