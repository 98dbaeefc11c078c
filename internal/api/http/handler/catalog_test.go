package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	hmocks "github.com/dtroode/coinvest-server/internal/api/http/handler/mocks"
	"github.com/dtroode/coinvest-server/internal/model"
	"github.com/dtroode/coinvest-server/internal/service"
)

type fixedPrice float64

func (p fixedPrice) BTC(context.Context) float64 { return float64(p) }

func newCatalogRouter(plans PlanService) *gin.Engine {
	h := NewCatalog(plans, service.NewCalculator(), fixedPrice(95432.10))

	r := gin.New()
	r.GET("/api/investment-plans", h.Plans)
	r.GET("/api/calculator", h.Calculate)
	r.GET("/api/btc-price", h.BTCPrice)
	return r
}

func TestCatalog_Plans(t *testing.T) {
	plans := hmocks.NewPlanService(t)
	plans.On("List", mock.Anything, model.FundType("")).Return(service.SamplePlans(), nil)
	plans.On("List", mock.Anything, model.FundCrypto).Return(service.SamplePlans()[:3], nil)
	plans.On("List", mock.Anything, model.FundType("stocks")).Return(nil, model.ErrInvalidInput)
	plans.On("List", mock.Anything, model.FundRealEstate).Return(nil, errors.New("boom"))

	r := newCatalogRouter(plans)

	w := doJSON(t, r, http.MethodGet, "/api/investment-plans", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Bitcoin Starter"`)
	assert.Contains(t, w.Body.String(), `"fundType":"emerging-tech"`)
	assert.NotContains(t, w.Body.String(), "createdAt")

	w = doJSON(t, r, http.MethodGet, "/api/investment-plans?fundType=crypto", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "real-estate")

	w = doJSON(t, r, http.MethodGet, "/api/investment-plans?fundType=stocks", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/investment-plans?fundType=real-estate", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCatalog_Calculate(t *testing.T) {
	r := newCatalogRouter(hmocks.NewPlanService(t))

	w := doJSON(t, r, http.MethodGet, "/api/calculator?amount=2500&months=6", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"tierName":"Prata"`)
	assert.Contains(t, w.Body.String(), `"months":6`)
	assert.Contains(t, w.Body.String(), `"isValid":true`)

	w = doJSON(t, r, http.MethodGet, "/api/calculator?amount=100", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isValid":false`)
	assert.Contains(t, w.Body.String(), `"months":12`)

	for _, q := range []string{"", "?amount=abc", "?amount=1000&months=500", "?amount=-5"} {
		w = doJSON(t, r, http.MethodGet, "/api/calculator"+q, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestCatalog_BTCPrice(t *testing.T) {
	w := doJSON(t, newCatalogRouter(hmocks.NewPlanService(t)), http.MethodGet, "/api/btc-price", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"price":95432.1}`, w.Body.String())
}
