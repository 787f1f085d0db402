package handlers

import (
	"fmt"
	"net/http"

	"github.com/ArowuTest/adspendwise-backend/internal/services"
	"github.com/gin-gonic/gin"
)

const analysisListLimit = 100

// AnalysisHandler handles AI analysis HTTP requests
type AnalysisHandler struct {
	analysisService services.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler
func NewAnalysisHandler(analysisService services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// AnalyzeCampaign handles POST /campaigns/:id/analyze
func (h *AnalysisHandler) AnalyzeCampaign(c *gin.Context) {
	analysis, err := h.analysisService.Analyze(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// GetCampaignAnalyses handles GET /campaigns/:id/analysis
func (h *AnalysisHandler) GetCampaignAnalyses(c *gin.Context) {
	analyses, err := h.analysisService.ListForCampaign(c.Request.Context(), c.Param("id"), queryLimit(c, analysisListLimit))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, analyses)
}

// BulkAnalyze handles POST /campaigns/bulk-analyze
func (h *AnalysisHandler) BulkAnalyze(c *gin.Context) {
	analyses, err := h.analysisService.BulkAnalyze(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  fmt.Sprintf("Created %d new analyses", len(analyses)),
		"analyses": analyses,
	})
}
