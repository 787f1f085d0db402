package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ArowuTest/adspendwise-backend/internal/models"
	"github.com/ArowuTest/adspendwise-backend/internal/services"
	"github.com/ArowuTest/adspendwise-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

const campaignListLimit = 1000

// CampaignHandler handles campaign-related HTTP requests
type CampaignHandler struct {
	campaignService services.CampaignService
}

// NewCampaignHandler creates a new CampaignHandler
func NewCampaignHandler(campaignService services.CampaignService) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

// CreateCampaign handles POST /campaigns
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var in models.CampaignInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	campaign, err := h.campaignService.Create(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// GetCampaigns handles GET /campaigns
func (h *CampaignHandler) GetCampaigns(c *gin.Context) {
	campaigns, err := h.campaignService.List(c.Request.Context(), queryLimit(c, campaignListLimit))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaigns)
}

// GetCampaignByID handles GET /campaigns/:id
func (h *CampaignHandler) GetCampaignByID(c *gin.Context) {
	campaign, err := h.campaignService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// BulkUpload handles POST /campaigns/bulk-upload
func (h *CampaignHandler) BulkUpload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "File is required")
		return
	}
	if !strings.HasSuffix(header.Filename, ".csv") {
		respondError(c, http.StatusBadRequest, "File must be a CSV")
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Error processing file: "+err.Error())
		return
	}
	defer file.Close()

	campaigns, err := h.campaignService.Import(c.Request.Context(), file)
	if err != nil {
		var missing *utils.MissingColumnsError
		if errors.As(err, &missing) {
			respondError(c, http.StatusBadRequest, missing.Error())
			return
		}
		msg := "Error processing file: " + err.Error()
		body := gin.H{"error": msg, "detail": msg}
		// Rows stored before a storage failure stay stored
		if len(campaigns) > 0 {
			body["campaigns"] = campaigns
		}
		c.JSON(http.StatusBadRequest, body)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   fmt.Sprintf("Successfully uploaded %d campaigns", len(campaigns)),
		"campaigns": campaigns,
	})
}
