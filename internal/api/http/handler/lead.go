package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/coinvest-server/internal/logger"
	"github.com/dtroode/coinvest-server/internal/model"
	"github.com/dtroode/coinvest-server/internal/service"
)

// LeadService defines lead capture and the admin lead views.
type LeadService interface {
	Submit(ctx context.Context, params service.LeadParams) (model.Lead, error)
	List(ctx context.Context, limit int) ([]model.Lead, error)
	Stats(ctx context.Context) (service.Stats, error)
	Export(ctx context.Context) (string, error)
}

type Lead struct {
	leadService LeadService
	logger      *logger.Logger
}

func NewLead(leadService LeadService, logger *logger.Logger) *Lead {
	return &Lead{
		leadService: leadService,
		logger:      logger,
	}
}

func (h *Lead) Create(c *gin.Context) {
	var req leadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	_, err := h.leadService.Submit(c.Request.Context(), service.LeadParams{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		InvestmentRange: req.InvestmentRange,
		Message:         req.Message,
		CaptchaToken:    req.RecaptchaToken,
		RemoteIP:        c.ClientIP(),
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Lead created"})
}

func (h *Lead) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
			return
		}
		limit = n
	}

	leads, err := h.leadService.List(c.Request.Context(), limit)
	if err != nil {
		handleError(c, err)
		return
	}

	out := make([]leadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, newLeadResponse(l))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Lead) Stats(c *gin.Context) {
	stats, err := h.leadService.Stats(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, statsResponse{
		TotalLeads:     stats.TotalLeads,
		ConvertedLeads: stats.ConvertedLeads,
		TotalUsers:     stats.TotalUsers,
		ConversionRate: stats.ConversionRate,
	})
}

func (h *Lead) Export(c *gin.Context) {
	key, err := h.leadService.Export(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"key": key})
}
