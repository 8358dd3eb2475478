package forecasting

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/performance-forecast-api/internal/domain"
	"github.com/vfg2006/performance-forecast-api/pkg/log"
	"github.com/vfg2006/performance-forecast-api/pkg/metrics"
	"github.com/vfg2006/performance-forecast-api/pkg/utils"
)

const (
	defaultReachTimeout = 10 * time.Second

	reachRatio         = 0.68
	seasonalAdjustment = 1.18
	maxLocationFactor  = 2.5
	lowerBoundFactor   = 0.82
	upperBoundFactor   = 1.18
)

// ReachEstimator obtém a estimativa de alcance, preferindo a plataforma e caindo na heurística
type ReachEstimator struct {
	client   ReachEstimateClient
	timeout  time.Duration
	recorder metrics.Recorder
}

func NewReachEstimator(client ReachEstimateClient, timeout time.Duration, recorder metrics.Recorder) *ReachEstimator {
	if timeout <= 0 {
		timeout = defaultReachTimeout
	}
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}

	return &ReachEstimator{
		client:   client,
		timeout:  timeout,
		recorder: recorder,
	}
}

// Estimate nunca falha: qualquer erro na consulta ao vivo resulta na estimativa heurística
func (e *ReachEstimator) Estimate(ctx context.Context, budget float64, cities []domain.City, businessType, adGoal string) (domain.ReachEstimate, string) {
	logger := log.ForContext(ctx)

	estimate, err := e.fetchLive(ctx, budget, cities, businessType, adGoal)
	if err == nil {
		e.recorder.IncrementReachSource(domain.ReachSourceMeta)
		logger.WithFields(log.Fields{
			"users_lower_bound": estimate.UsersLowerBound,
			"users_upper_bound": estimate.UsersUpperBound,
		}).Debug("forecast: reach estimate obtained from ad platform")
		return *estimate, domain.ReachSourceMeta
	}

	reason := domain.UpstreamTransport
	var failure *domain.UpstreamFailure
	if errors.As(err, &failure) {
		reason = failure.Reason
	}
	e.recorder.IncrementUpstreamFailure(reason)
	e.recorder.IncrementReachSource(domain.ReachSourceHeuristic)

	entry := logger.WithField("reason", reason)
	if reason == domain.UpstreamMissingCredentials {
		entry.Debug("forecast: ad platform not configured, using heuristic reach estimate")
	} else {
		entry.WithError(err).Warn("forecast: reach estimate request failed, using heuristic reach estimate")
	}

	return HeuristicReachEstimate(budget, cities, businessType), domain.ReachSourceHeuristic
}

func (e *ReachEstimator) fetchLive(ctx context.Context, budget float64, cities []domain.City, businessType, adGoal string) (*domain.ReachEstimate, error) {
	if e.client == nil {
		return nil, domain.NewUpstreamFailure(domain.UpstreamMissingCredentials, nil)
	}

	req := domain.ReachEstimateRequest{
		Cities:             cities,
		BusinessType:       businessType,
		OptimizationGoal:   OptimizationGoalFor(adGoal),
		DailyBudgetInCents: int64(utils.RoundToInt(budget * 100)),
	}

	results, err := e.client.FetchReachEstimate(ctx, req, e.timeout)
	if err != nil {
		return nil, classifyUpstreamError(err)
	}

	if len(results) == 0 {
		return nil, domain.NewUpstreamFailure(domain.UpstreamEmptyResult, nil)
	}

	first := results[0]
	if first.UsersLowerBound < 0 || first.UsersUpperBound < first.UsersLowerBound {
		return nil, domain.NewUpstreamFailure(domain.UpstreamMalformedResponse,
			errors.Errorf("invalid bounds [%d, %d]", first.UsersLowerBound, first.UsersUpperBound))
	}

	return &first, nil
}

// classifyUpstreamError garante que todo erro da consulta vire um UpstreamFailure
func classifyUpstreamError(err error) error {
	var failure *domain.UpstreamFailure
	if errors.As(err, &failure) {
		return err
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return domain.NewUpstreamFailure(domain.UpstreamTimeout, err)
	case errors.Is(err, context.Canceled):
		return domain.NewUpstreamFailure(domain.UpstreamCanceled, err)
	default:
		return domain.NewUpstreamFailure(domain.UpstreamTransport, err)
	}
}

// OptimizationGoalFor mapeia o objetivo da campanha para o objetivo de otimização da plataforma
func OptimizationGoalFor(adGoal string) string {
	if strings.EqualFold(strings.TrimSpace(adGoal), domain.AdGoalLeads) {
		return "LEAD_GENERATION"
	}
	return "LINK_CLICKS"
}

// HeuristicReachEstimate calcula a estimativa determinística por segmento e mercados
func HeuristicReachEstimate(budget float64, cities []domain.City, businessType string) domain.ReachEstimate {
	benchmark, ok := utils.LookupFold(industryBenchmarks, businessType)
	if !ok {
		benchmark = industryBenchmarks[defaultIndustry]
	}

	dailyImpressions := budget / benchmark.CPM * 1000
	adjustedCPM := benchmark.CPM * seasonalAdjustment

	dailyReach := utils.RoundToInt(dailyImpressions * reachRatio * LocationMultiplier(cities))

	return domain.ReachEstimate{
		UsersLowerBound: utils.RoundToInt(float64(dailyReach) * lowerBoundFactor),
		UsersUpperBound: utils.RoundToInt(float64(dailyReach) * upperBoundFactor),
		Ready:           true,
		CPM:             adjustedCPM,
		CTR:             benchmark.CTR,
	}
}

// LocationMultiplier multiplica o coeficiente de cada cidade, limitado a 2.5
func LocationMultiplier(cities []domain.City) float64 {
	multiplier := 1.0
	for _, city := range cities {
		multiplier *= marketCoefficient(city.Description)
	}

	if multiplier > maxLocationFactor {
		return maxLocationFactor
	}
	return multiplier
}

func marketCoefficient(description string) float64 {
	for _, tier := range marketTiers {
		if utils.ContainsAny(description, tier.Markets...) {
			return tier.Coefficient
		}
	}
	return defaultMarketCoefficient
}
