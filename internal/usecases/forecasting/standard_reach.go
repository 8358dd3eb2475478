package forecasting

import (
	"math"

	"github.com/vfg2006/performance-forecast-api/internal/domain"
	"github.com/vfg2006/performance-forecast-api/pkg/utils"
)

const (
	fallbackDailyReach = 50000

	minCompetitionFactor  = 0.4
	saturationWeight      = 0.35
	maxAudienceSizeFactor = 1.3
	audienceSizeReference = 10000000.0
	audienceSizeWeight    = 0.2
	maxBudgetEfficiency   = 1.2
	budgetReference       = 50.0
	budgetWeight          = 0.1
	minEfficiencyBudget   = 0.01

	// desconto de frequência aplicado ao alcance semanal
	weeklyFrequencyCap = 0.83
)

// CalculateStandard combina estimativa, público e concorrência no alcance sem otimização.
// Orçamentos abaixo de 50 reduzem o alcance pelo termo logarítmico.
func CalculateStandard(estimate domain.ReachEstimate, audience domain.AudienceInsights, benchmarks domain.CompetitiveBenchmarks, budget float64) domain.StandardReach {
	baseDailyReach := float64(estimate.UsersUpperBound)
	if baseDailyReach <= 0 {
		baseDailyReach = fallbackDailyReach
	}

	competitionFactor := math.Max(minCompetitionFactor, 1-benchmarks.MarketSaturation*saturationWeight)
	audienceSizeFactor := math.Min(maxAudienceSizeFactor, 1+(float64(audience.AudienceSize)/audienceSizeReference)*audienceSizeWeight)
	budgetEfficiencyFactor := math.Min(maxBudgetEfficiency, 1+math.Log(math.Max(budget, minEfficiencyBudget)/budgetReference)*budgetWeight)

	daily := utils.RoundToInt(baseDailyReach * competitionFactor * audienceSizeFactor * budgetEfficiencyFactor)
	if daily < 0 {
		daily = 0
	}

	cpm := estimate.CPM
	if cpm == 0 {
		cpm = benchmarks.AverageCPM
	}
	ctr := estimate.CTR
	if ctr == 0 {
		ctr = benchmarks.AverageCTR
	}

	return domain.StandardReach{
		Daily:  daily,
		Weekly: WeeklyReach(daily),
		CPM:    cpm,
		CTR:    ctr,
	}
}

func WeeklyReach(daily int) int {
	return utils.RoundToInt(float64(daily) * 7 * weeklyFrequencyCap)
}
