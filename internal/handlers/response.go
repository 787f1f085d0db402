package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ArowuTest/adspendwise-backend/internal/services"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"
)

// respondError writes an error body. "detail" mirrors "error" for clients of
// the previous API.
func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg, "detail": msg})
}

// respondServiceError maps service errors onto HTTP statuses
func respondServiceError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrCampaignNotFound):
		respondError(c, http.StatusNotFound, "Campaign not found")
	case errors.As(err, &verr):
		respondError(c, http.StatusBadRequest, verr.Error())
	default:
		slog.Error("Request failed", "error", err, "path", c.FullPath())
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// queryLimit reads the limit query parameter, falling back to def and
// capping at def
func queryLimit(c *gin.Context, def int) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(def)))
	if err != nil || limit <= 0 || limit > def {
		return def
	}
	return limit
}
