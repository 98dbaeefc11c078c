package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/coinvest-server/internal/model"
	"github.com/dtroode/coinvest-server/internal/service"
)

type registerRequest struct {
	Username string `json:"username" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=1024"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type leadRequest struct {
	Name            string  `json:"name" binding:"required,max=255"`
	Email           string  `json:"email" binding:"required,email,max=255"`
	Phone           *string `json:"phone" binding:"omitempty,max=50"`
	InvestmentRange *string `json:"investmentRange" binding:"omitempty,max=100"`
	Message         *string `json:"message" binding:"omitempty,max=5000"`
	RecaptchaToken  string  `json:"recaptchaToken"`
}

type calculatorQuery struct {
	Amount *float64 `form:"amount" binding:"required"`
	Months int      `form:"months"`
}

type userResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email,omitempty"`
}

func newUserResponse(u model.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}

type planResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	MinimumInvestment float64   `json:"minimumInvestment"`
	MonthlyReturnRate float64   `json:"monthlyReturnRate"`
	DurationMonths    int       `json:"durationMonths"`
	RiskLevel         string    `json:"riskLevel"`
	FundType          string    `json:"fundType"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt,omitzero"`
	UpdatedAt         time.Time `json:"updatedAt,omitzero"`
}

func newPlanResponse(p model.InvestmentPlan) planResponse {
	return planResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		MinimumInvestment: p.MinimumInvestment,
		MonthlyReturnRate: p.MonthlyReturnRate,
		DurationMonths:    p.DurationMonths,
		RiskLevel:         string(p.RiskLevel),
		FundType:          string(p.FundType),
		IsActive:          p.IsActive,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

type leadResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           *string   `json:"phone"`
	InvestmentRange *string   `json:"investmentRange"`
	Message         *string   `json:"message"`
	ConvertedToUser bool      `json:"convertedToUser"`
	CreatedAt       time.Time `json:"createdAt"`
}

func newLeadResponse(l model.Lead) leadResponse {
	return leadResponse{
		ID:              l.ID,
		Name:            l.Name,
		Email:           l.Email,
		Phone:           l.Phone,
		InvestmentRange: l.InvestmentRange,
		Message:         l.Message,
		ConvertedToUser: l.ConvertedToUser,
		CreatedAt:       l.CreatedAt,
	}
}

type statsResponse struct {
	TotalLeads     int64   `json:"totalLeads"`
	ConvertedLeads int64   `json:"convertedLeads"`
	TotalUsers     int64   `json:"totalUsers"`
	ConversionRate float64 `json:"conversionRate"`
}

type projectionResponse struct {
	Amount         float64 `json:"amount"`
	Months         int     `json:"months"`
	TierName       string  `json:"tierName"`
	MonthlyRate    float64 `json:"monthlyRate"`
	MonthlyProfit  float64 `json:"monthlyProfit"`
	TotalProfit    float64 `json:"totalProfit"`
	TotalReturn    float64 `json:"totalReturn"`
	CompoundReturn float64 `json:"compoundReturn"`
	IsValid        bool    `json:"isValid"`
}

func newProjectionResponse(p service.Projection) projectionResponse {
	return projectionResponse{
		Amount:         p.Amount,
		Months:         p.Months,
		TierName:       p.Tier,
		MonthlyRate:    p.MonthlyRate,
		MonthlyProfit:  p.MonthlyProfit,
		TotalProfit:    p.TotalProfit,
		TotalReturn:    p.TotalReturn,
		CompoundReturn: p.CompoundReturn,
		IsValid:        p.Valid,
	}
}
