package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizopshq/ledger_engine/internal/apperrors"
	"github.com/bizopshq/ledger_engine/internal/middleware"
)

// respondError maps the service error taxonomy to HTTP status codes.
// Validation problems are the caller's fault, state and posting conflicts are
// 409, and lock contention is 503 so clients know to retry.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrInvalidState),
		errors.Is(err, apperrors.ErrAlreadyPosted),
		errors.Is(err, apperrors.ErrProtectedResource):
		logger.Warn("Conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrContention):
		logger.Warn("Lock contention", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "resource busy, please retry"})
	default:
		logger.Error("Internal error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// requireActor fetches the acting user stamped by the actor middleware.
func requireActor(c *gin.Context) (string, bool) {
	actor, ok := middleware.GetActorFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "acting user not identified"})
		return "", false
	}
	return actor, true
}
