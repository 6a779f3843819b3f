package handler

import (
	"errors"
	"net/http"

	"github.com/faqforge/faqforge/internal/cache"
	"github.com/faqforge/faqforge/internal/repository"
	"github.com/faqforge/faqforge/pkg"
	"github.com/faqforge/faqforge/pkg/model"
	"github.com/gin-gonic/gin"
)

// SignUp creates a new user
func (h *Handler) SignUp(c *gin.Context) {
	var req model.SignUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("signup bad request", "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	pwHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to hash password", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	userID, err := h.Users.Create(ctx, req.Email, req.Name, pwHash)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		h.Logger.Sugar().Errorw("user create failed", "email", req.Email, "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user created successfully", "user_id": userID})
}

// Login verifies credentials, starts a refresh session and returns JWTs
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("login bad request", "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	user, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		h.Logger.Sugar().Warnw("login user not found", "email", req.Email, "err", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err := pkg.ComparePassword(user.PasswordHash, req.Password); err != nil {
		h.Logger.Sugar().Warnw("login password mismatch", "email", req.Email, "err", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	refreshToken, refreshClaims, err := h.TokenMaker.GenerateToken(user.UserID, user.Email, h.RefreshTTL, "")
	if err != nil {
		h.Logger.Sugar().Errorw("error creating token", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	accessToken, accessClaims, err := h.TokenMaker.GenerateToken(user.UserID, user.Email, h.AccessTTL, refreshClaims.SessionID)
	if err != nil {
		h.Logger.Sugar().Errorw("error creating token", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	err = h.Sessions.Create(ctx, cache.Session{
		SessionID:    refreshClaims.SessionID,
		UserID:       user.UserID,
		RefreshToken: refreshToken,
		ExpiresAt:    refreshClaims.ExpiresAt.Time,
	})
	if err != nil {
		h.Logger.Sugar().Errorw("error creating session", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}

	res := model.LoginUserRes{
		SessionID:             refreshClaims.SessionID,
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		AccessTokenExpiresAt:  accessClaims.ExpiresAt.Time,
		RefreshTokenExpiresAt: refreshClaims.ExpiresAt.Time,
		User:                  model.UserRes{UserID: user.UserID, Email: user.Email, Name: user.Name},
	}

	c.JSON(http.StatusOK, gin.H{"data": res})
}

// RenewAccessToken exchanges a live refresh token for a new access token
func (h *Handler) RenewAccessToken(c *gin.Context) {
	var req model.RenewAccessTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	refreshClaims, err := h.TokenMaker.VerifyToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}

	sess, err := h.Sessions.Get(c.Request.Context(), refreshClaims.SessionID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired or revoked"})
		return
	}
	if sess.RefreshToken != req.RefreshToken {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session token mismatch"})
		return
	}

	accessToken, accessClaims, err := h.TokenMaker.GenerateToken(refreshClaims.UserID, refreshClaims.Email, h.AccessTTL, refreshClaims.SessionID)
	if err != nil {
		h.Logger.Sugar().Errorw("error creating token", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, model.RenewAccessTokenRes{
		AccessToken:          accessToken,
		AccessTokenExpiresAt: accessClaims.ExpiresAt.Time,
	})
}

// Me returns the current user profile
func (h *Handler) Me(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.Users.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, model.UserRes{UserID: user.UserID, Email: user.Email, Name: user.Name})
}

// Logout revokes the caller's refresh session
func (h *Handler) Logout(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.Sessions.Revoke(c.Request.Context(), claims.SessionID); err != nil {
		h.Logger.Sugar().Errorw("error revoking session", "session_id", claims.SessionID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not revoke session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}
