package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/coinvest-server/internal/model"
	"github.com/dtroode/coinvest-server/internal/service"
)

type PlanService interface {
	List(ctx context.Context, fundType model.FundType) ([]model.InvestmentPlan, error)
}

type Calculator interface {
	Project(amount float64, months int) (service.Projection, error)
}

type PriceService interface {
	BTC(ctx context.Context) float64
}

// Catalog serves the public read-only endpoints.
type Catalog struct {
	plans      PlanService
	calculator Calculator
	price      PriceService
}

func NewCatalog(plans PlanService, calculator Calculator, price PriceService) *Catalog {
	return &Catalog{
		plans:      plans,
		calculator: calculator,
		price:      price,
	}
}

func (h *Catalog) Plans(c *gin.Context) {
	plans, err := h.plans.List(c.Request.Context(), model.FundType(c.Query("fundType")))
	if err != nil {
		handleError(c, err)
		return
	}

	out := make([]planResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, newPlanResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Catalog) Calculate(c *gin.Context) {
	var q calculatorQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalidInput(c, err)
		return
	}

	projection, err := h.calculator.Project(*q.Amount, q.Months)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProjectionResponse(projection))
}

func (h *Catalog) BTCPrice(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"price": h.price.BTC(c.Request.Context())})
}
