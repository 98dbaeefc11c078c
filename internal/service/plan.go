package service

import (
	"context"

	"github.com/dtroode/coinvest-server/internal/logger"
	"github.com/dtroode/coinvest-server/internal/model"
)

type Plan struct {
	planStore model.PlanStore
	logger    *logger.Logger
}

func NewPlan(planStore model.PlanStore, logger *logger.Logger) *Plan {
	return &Plan{
		planStore: planStore,
		logger:    logger,
	}
}

// List returns active plans, optionally narrowed to fundType. When the store
// fails or is empty the built-in sample catalogue is served instead.
func (s *Plan) List(ctx context.Context, fundType model.FundType) ([]model.InvestmentPlan, error) {
	if fundType != "" && !fundType.Valid() {
		return nil, model.ErrInvalidInput
	}

	plans, err := s.planStore.ListActive(ctx)
	if err != nil {
		s.logger.Warn("Plan service: failed to load plans, serving sample catalogue",
			"error", err.Error())
		plans = SamplePlans()
	} else if len(plans) == 0 {
		s.logger.Debug("Plan service: no plans stored, serving sample catalogue")
		plans = SamplePlans()
	}

	if fundType == "" {
		return plans, nil
	}

	filtered := make([]model.InvestmentPlan, 0, len(plans))
	for _, p := range plans {
		if p.FundType == fundType {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// SamplePlans returns a fresh copy of the demonstration catalogue.
func SamplePlans() []model.InvestmentPlan {
	plans := make([]model.InvestmentPlan, len(samplePlans))
	copy(plans, samplePlans)
	return plans
}

var samplePlans = []model.InvestmentPlan{
	{
		ID:                1,
		Name:              "Bitcoin Starter",
		Description:       "Ideal para iniciantes. Exposição segura ao Bitcoin com gestão profissional de risco.",
		MinimumInvestment: 1000,
		MonthlyReturnRate: 4.17,
		DurationMonths:    12,
		RiskLevel:         model.RiskLow,
		FundType:          model.FundCrypto,
		IsActive:          true,
	},
	{
		ID:                2,
		Name:              "Crypto Growth",
		Description:       "Carteira diversificada de top 10 criptomoedas para crescimento acelerado.",
		MinimumInvestment: 5000,
		MonthlyReturnRate: 6.25,
		DurationMonths:    12,
		RiskLevel:         model.RiskMedium,
		FundType:          model.FundCrypto,
		IsActive:          true,
	},
	{
		ID:                3,
		Name:              "DeFi High Yield",
		Description:       "Estratégias avançadas em Finanças Descentralizadas para retornos máximos.",
		MinimumInvestment: 10000,
		MonthlyReturnRate: 8.33,
		DurationMonths:    12,
		RiskLevel:         model.RiskHigh,
		FundType:          model.FundCrypto,
		IsActive:          true,
	},
	{
		ID:                4,
		Name:              "Imóvel Residencial",
		Description:       "Investimento em propriedades residenciais com retorno estável através de aluguel e valorização.",
		MinimumInvestment: 25000,
		MonthlyReturnRate: 0.80,
		DurationMonths:    6,
		RiskLevel:         model.RiskLow,
		FundType:          model.FundRealEstate,
		IsActive:          true,
	},
	{
		ID:                5,
		Name:              "Imóvel Comercial",
		Description:       "Portfolio diversificado de propriedades comerciais em localizações premium.",
		MinimumInvestment: 50000,
		MonthlyReturnRate: 1.10,
		DurationMonths:    9,
		RiskLevel:         model.RiskMedium,
		FundType:          model.FundRealEstate,
		IsActive:          true,
	},
	{
		ID:                6,
		Name:              "Desenvolvimento Imobiliário",
		Description:       "Investimento em projetos de desenvolvimento imobiliário com alto potencial de retorno.",
		MinimumInvestment: 100000,
		MonthlyReturnRate: 1.50,
		DurationMonths:    12,
		RiskLevel:         model.RiskHigh,
		FundType:          model.FundRealEstate,
		IsActive:          true,
	},
	{
		ID:                7,
		Name:              "Inteligência Artificial",
		Description:       "Investimento em empresas de IA e machine learning com potencial disruptivo.",
		MinimumInvestment: 15000,
		MonthlyReturnRate: 2.20,
		DurationMonths:    3,
		RiskLevel:         model.RiskHigh,
		FundType:          model.FundEmergingTech,
		IsActive:          true,
	},
	{
		ID:                8,
		Name:              "Blockchain & Web3",
		Description:       "Portfolio diversificado em tecnologias blockchain e aplicações descentralizadas.",
		MinimumInvestment: 20000,
		MonthlyReturnRate: 2.80,
		DurationMonths:    6,
		RiskLevel:         model.RiskHigh,
		FundType:          model.FundEmergingTech,
		IsActive:          true,
	},
	{
		ID:                9,
		Name:              "IoT e Smart Cities",
		Description:       "Investimento em tecnologias de Internet das Coisas e cidades inteligentes.",
		MinimumInvestment: 30000,
		MonthlyReturnRate: 1.90,
		DurationMonths:    9,
		RiskLevel:         model.RiskMedium,
		FundType:          model.FundEmergingTech,
		IsActive:          true,
	},
}
