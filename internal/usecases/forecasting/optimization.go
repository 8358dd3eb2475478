package forecasting

import (
	"github.com/vfg2006/performance-forecast-api/internal/domain"
	"github.com/vfg2006/performance-forecast-api/pkg/utils"
)

// Eficácia base da otimização por dimensão
const (
	targetingEffectiveness = 1.42
	creativeEffectiveness  = 1.35
	biddingEffectiveness   = 1.28

	maxAdvantageMultiplier = 1.8
	deliveryEfficiency     = 0.95
	maxOverallImprovement  = 85
)

// Optimize aplica os fatores de segmentação, criativo e lance sobre o alcance padrão.
// Apenas a melhoria geral é limitada a 85; as dimensões são reportadas sem limite.
// Orçamento e argumentos de venda fazem parte do contrato mas não entram no modelo.
func Optimize(standard domain.StandardReach, _ float64, competitiveAdvantages []string, _, businessType string) domain.OptimizationData {
	businessMultiplier, ok := utils.LookupFold(businessMultipliers, businessType)
	if !ok {
		businessMultiplier = defaultBusinessMultiplier
	}

	totalTargeting := targetingEffectiveness * businessMultiplier
	totalCreative := creativeEffectiveness * AdvantageMultiplier(competitiveAdvantages)
	totalBidding := biddingEffectiveness

	overall := utils.RoundToInt((totalTargeting*totalCreative*totalBidding - 1) * 100)
	if overall > maxOverallImprovement {
		overall = maxOverallImprovement
	}

	return domain.OptimizationData{
		Daily:  utils.RoundToInt(float64(standard.Daily) * totalTargeting * deliveryEfficiency),
		Weekly: utils.RoundToInt(float64(standard.Weekly) * totalTargeting * deliveryEfficiency),
		CPM:    utils.RoundWithTwoDecimalPlace(standard.CPM / totalBidding),
		CTR:    utils.RoundWithThreeDecimalPlace(standard.CTR * totalCreative),
		Improvements: domain.Improvements{
			Targeting: improvementPercent(totalTargeting),
			Creative:  improvementPercent(totalCreative),
			Bidding:   improvementPercent(totalBidding),
			Overall:   overall,
		},
	}
}

// AdvantageMultiplier acumula o peso de cada diferencial, limitado a 1.8
func AdvantageMultiplier(advantages []string) float64 {
	multiplier := 1.0
	for _, advantage := range advantages {
		factor, ok := utils.LookupFold(advantageFactors, advantage)
		if !ok {
			factor = defaultAdvantageFactor
		}
		multiplier *= factor
	}

	if multiplier > maxAdvantageMultiplier {
		return maxAdvantageMultiplier
	}
	return multiplier
}

func improvementPercent(factor float64) int {
	return utils.RoundToInt((factor - 1) * 100)
}
