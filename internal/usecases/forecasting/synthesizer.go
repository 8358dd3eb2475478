package forecasting

import (
	"math"
	"time"

	"github.com/vfg2006/performance-forecast-api/internal/domain"
	"github.com/vfg2006/performance-forecast-api/pkg/utils"
)

const (
	forecastDays = 7

	dailyVariance    = 0.08
	confidenceBand   = 0.12
	minCostPerResult = 0.01
	budgetPerAdSet   = 10.0
	minAdSets        = 3
	chartDateLayout  = "Jan 2"
	learningPhaseEnd = 1
	optimizePhaseEnd = 4
)

// Synthesizer projeta o alcance padrão e otimizado ao longo de 7 dias
type Synthesizer struct {
	clock  Clock
	random RandomSource
}

func NewSynthesizer(clock Clock, random RandomSource) *Synthesizer {
	if clock == nil {
		clock = SystemClock{}
	}
	if random == nil {
		random = NewRandomSource(0)
	}

	return &Synthesizer{
		clock:  clock,
		random: random,
	}
}

func (s *Synthesizer) Synthesize(meta domain.MetaData, ai domain.OptimizationData, budget float64) domain.ForecastResult {
	today := s.clock.Now()

	chart := make([]domain.ChartDataPoint, 0, forecastDays)
	standardTotal, optimizedTotal := 0, 0

	for day := 0; day < forecastDays; day++ {
		// o mesmo sorteio é aplicado às duas séries do dia
		variance := 1 + (s.random.Float64()*2*dailyVariance - dailyVariance)

		standard := max(0, utils.RoundToInt(float64(meta.StandardReach.Daily)*standardGrowthCurve[day]*variance))
		optimized := max(0, utils.RoundToInt(float64(ai.Daily)*optimizedGrowthCurve[day]*variance))

		chart = append(chart, domain.ChartDataPoint{
			Date:               today.AddDate(0, 0, day).Format(chartDateLayout),
			StandardReach:      standard,
			OptimizedReach:     optimized,
			Phase:              phaseFor(day),
			ImprovementPercent: dailyImprovement(standard, optimized),
		})

		standardTotal += standard
		optimizedTotal += optimized
	}

	return domain.ForecastResult{
		ChartData: chart,
		EstimatedReach: domain.EstimatedReach{
			Standard:  confidenceRange(standardTotal),
			Optimized: confidenceRange(optimizedTotal),
		},
		Metrics: domain.ForecastMetrics{
			Improvement:           ai.Improvements.Overall,
			CTRBoost:              ctrBoost(ai.CTR, meta.StandardReach.CTR),
			CostPerResult:         costPerResult(budget, optimizedTotal),
			TotalAdSets:           max(utils.RoundToInt(budget/budgetPerAdSet), minAdSets),
			OptimizationGoal:      domain.OptimizationGoalLeadGeneration,
			StandardCPM:           utils.RoundWithTwoDecimalPlace(meta.StandardReach.CPM),
			OptimizedCPM:          ai.CPM,
			AudienceInsights:      meta.AudienceInsights,
			CompetitiveBenchmarks: meta.CompetitiveBenchmarks,
		},
	}
}

func phaseFor(day int) string {
	switch {
	case day <= learningPhaseEnd:
		return domain.PhaseLearning
	case day <= optimizePhaseEnd:
		return domain.PhaseOptimization
	default:
		return domain.PhaseScaling
	}
}

// dailyImprovement é zero quando não há alcance padrão no dia
func dailyImprovement(standard, optimized int) int {
	if standard <= 0 {
		return 0
	}
	return max(0, utils.RoundToInt(float64(optimized-standard)/float64(standard)*100))
}

func confidenceRange(total int) domain.ReachRange {
	return domain.ReachRange{
		Min: utils.RoundToInt(float64(total) * (1 - confidenceBand)),
		Max: utils.RoundToInt(float64(total) * (1 + confidenceBand)),
	}
}

// ctrBoost é zero quando o CTR padrão é zero
func ctrBoost(optimizedCTR, standardCTR float64) float64 {
	if standardCTR == 0 {
		return 0
	}
	return utils.RoundWithOneDecimalPlace(optimizedCTR / standardCTR)
}

// costPerResult usa o orçamento inteiro quando nenhum alcance otimizado é previsto
func costPerResult(budget float64, optimizedTotal int) float64 {
	if optimizedTotal <= 0 {
		return math.Max(utils.RoundWithTwoDecimalPlace(budget), minCostPerResult)
	}
	return math.Max(utils.RoundWithTwoDecimalPlace(budget/(float64(optimizedTotal)/1000)), minCostPerResult)
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
