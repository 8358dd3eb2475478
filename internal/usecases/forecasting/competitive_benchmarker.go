package forecasting

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/performance-forecast-api/internal/domain"
	"github.com/vfg2006/performance-forecast-api/pkg/utils"
)

const (
	baseCompetitorSpendMultiplier = 2.8
	highCompetitorSpendMultiplier = 4.2
	lowCompetitorSpendMultiplier  = 1.8
)

// BenchmarkCompetition devolve as referências do segmento e o gasto estimado da concorrência
func BenchmarkCompetition(businessType string, competitorAnalysis map[string]any, budget float64) domain.CompetitiveBenchmarks {
	benchmark, ok := utils.LookupFold(competitionBenchmarks, businessType)
	if !ok {
		benchmark = competitionBenchmarks[defaultBenchmarkSegment]
	}

	analysis := analysisText(competitorAnalysis)

	multiplier := baseCompetitorSpendMultiplier
	if utils.ContainsAny(analysis, "high competition", "many competitors") {
		multiplier = highCompetitorSpendMultiplier
	} else if utils.ContainsAny(analysis, "low competition", "few competitors") {
		multiplier = lowCompetitorSpendMultiplier
	}

	return domain.CompetitiveBenchmarks{
		AverageCPM:       benchmark.AverageCPM,
		AverageCTR:       benchmark.AverageCTR,
		MarketSaturation: benchmark.MarketSaturation,
		CompetitorSpend:  float64(utils.RoundToInt(budget * multiplier)),
	}
}

// analysisText serializa a análise livre para a busca por termos
func analysisText(analysis map[string]any) string {
	if len(analysis) == 0 {
		return ""
	}

	raw, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(analysis)
	if err != nil {
		return fmt.Sprint(analysis)
	}
	return string(raw)
}
