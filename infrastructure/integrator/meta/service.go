package meta

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/performance-forecast-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/performance-forecast-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/performance-forecast-api/internal/config"
	"github.com/vfg2006/performance-forecast-api/internal/domain"
	"github.com/vfg2006/performance-forecast-api/pkg/log"
)

const (
	cityRadiusMiles  = 25
	cityDistanceUnit = "mile"
	targetAgeMin     = 25
	targetAgeMax     = 65
)

// ReachIntegrator consulta a estimativa de alcance na Meta
type ReachIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *ReachIntegrator {
	return &ReachIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchReachEstimate devolve as estimativas da plataforma; toda falha é um *domain.UpstreamFailure
func (s *ReachIntegrator) FetchReachEstimate(ctx context.Context, req domain.ReachEstimateRequest, timeout time.Duration) ([]domain.ReachEstimate, error) {
	if s.Client == nil || s.cfg.Meta.AdAccountID == "" || !s.Client.HasToken() {
		return nil, domain.NewUpstreamFailure(domain.UpstreamMissingCredentials, nil)
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	params := metaclient.ReachEstimateParams{
		AdAccountID:        s.cfg.Meta.AdAccountID,
		TargetingSpec:      BuildTargetingSpec(req.Cities),
		OptimizationGoal:   req.OptimizationGoal,
		DailyBudgetInCents: req.DailyBudgetInCents,
		Currency:           "USD",
	}

	resp, err := s.Client.GetReachEstimate(ctx, params)
	if err != nil {
		failure := ClassifyError(err)
		log.ForContext(ctx).WithFields(log.Fields{
			"ad_account_id": s.cfg.Meta.AdAccountID,
			"reason":        failure.Reason,
		}).Debug("meta: reach estimate request failed")
		return nil, failure
	}

	estimates := make([]domain.ReachEstimate, 0, len(resp))
	for _, item := range resp {
		estimates = append(estimates, domain.ReachEstimate{
			UsersLowerBound: int(item.UsersLowerBound),
			UsersUpperBound: int(item.UsersUpperBound),
			Ready:           item.EstimateReady,
		})
	}

	return estimates, nil
}

// BuildTargetingSpec monta o targeting com raio fixo por cidade e faixa etária 25-65
func BuildTargetingSpec(cities []domain.City) metadomain.TargetingSpec {
	targets := make([]metadomain.CityTarget, 0, len(cities))
	for _, city := range cities {
		name := strings.TrimSpace(city.Description)
		if name == "" {
			continue
		}
		targets = append(targets, metadomain.CityTarget{
			Name:         name,
			Radius:       cityRadiusMiles,
			DistanceUnit: cityDistanceUnit,
		})
	}

	return metadomain.TargetingSpec{
		GeoLocations: metadomain.GeoLocations{Cities: targets},
		AgeMin:       targetAgeMin,
		AgeMax:       targetAgeMax,
	}
}

// ClassifyError converte erros do cliente no motivo de falha correspondente
func ClassifyError(err error) *domain.UpstreamFailure {
	var failure *domain.UpstreamFailure
	if errors.As(err, &failure) {
		return failure
	}

	var respErr *metaclient.ResponseError
	switch {
	case errors.Is(err, metaclient.ErrMissingToken):
		return domain.NewUpstreamFailure(domain.UpstreamMissingCredentials, err)
	case errors.Is(err, context.DeadlineExceeded):
		return domain.NewUpstreamFailure(domain.UpstreamTimeout, err)
	case errors.Is(err, context.Canceled):
		return domain.NewUpstreamFailure(domain.UpstreamCanceled, err)
	case errors.Is(err, metaclient.ErrMalformedResponse):
		return domain.NewUpstreamFailure(domain.UpstreamMalformedResponse, err)
	case errors.As(err, &respErr):
		if respErr.Meta != nil {
			return domain.NewUpstreamFailure(domain.UpstreamAPIError, err)
		}
		return domain.NewUpstreamFailure(domain.UpstreamStatus, err)
	default:
		return domain.NewUpstreamFailure(domain.UpstreamTransport, err)
	}
}
