package forecasting

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/performance-forecast-api/internal/config"
	"github.com/vfg2006/performance-forecast-api/internal/domain"
	"github.com/vfg2006/performance-forecast-api/pkg/log"
	"github.com/vfg2006/performance-forecast-api/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// Status registrados nas métricas de previsão
const (
	statusOK         = "ok"
	statusBadRequest = "bad_request"
	statusError      = "error"
)

// Service orquestra o pipeline de previsão de performance
type Service struct {
	resolver    *Resolver
	estimator   *ReachEstimator
	synthesizer *Synthesizer
	recorder    metrics.Recorder
}

// Option personaliza as dependências do serviço
type Option func(*Service)

func WithSynthesizer(s *Synthesizer) Option {
	return func(svc *Service) {
		svc.synthesizer = s
	}
}

func WithRecorder(r metrics.Recorder) Option {
	return func(svc *Service) {
		svc.recorder = r
	}
}

// NewService cria o serviço; client e store podem ser nil
func NewService(cfg *config.Config, client ReachEstimateClient, store CampaignStore, opts ...Option) Forecaster {
	svc := &Service{
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(svc)
	}

	svc.resolver = NewResolver(store, cfg.Forecast.DefaultBudget)
	svc.estimator = NewReachEstimator(client, cfg.Forecast.ReachTimeout, svc.recorder)
	if svc.synthesizer == nil {
		svc.synthesizer = NewSynthesizer(SystemClock{}, NewRandomSource(cfg.Forecast.Seed))
	}

	return svc
}

func (s *Service) Industries() []domain.Industry {
	return Industries()
}

func (s *Service) Forecast(ctx context.Context, req *domain.ForecastRequest) (*domain.ForecastResult, error) {
	start := time.Now()
	defer func() {
		s.recorder.ObserveForecastDuration(time.Since(start))
	}()

	logger := log.ForContext(ctx)

	profile, err := s.resolver.Resolve(ctx, req)
	if err != nil {
		if IsInputError(err) {
			s.recorder.IncrementForecast(statusBadRequest)
		} else {
			s.recorder.IncrementForecast(statusError)
		}
		return nil, err
	}

	logger.WithFields(log.Fields{
		"budget":        profile.Budget,
		"business_type": profile.BusinessType,
		"cities":        len(profile.SelectedCities),
	}).Info("forecast: generating performance forecast")

	result, err := s.run(ctx, profile)
	if err != nil {
		s.recorder.IncrementForecast(statusError)
		logger.WithError(err).Error("forecast: pipeline failed")
		return nil, internalError(err)
	}

	s.recorder.IncrementForecast(statusOK)
	return result, nil
}

// run executa o pipeline; um panic em qualquer etapa vira erro
func (s *Service) run(ctx context.Context, profile domain.CampaignProfile) (result *domain.ForecastResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic: %v", r)
			log.ForContext(ctx).WithField("stack_trace", string(debug.Stack())).Error("forecast: recovered from panic")
		}
	}()

	var (
		estimate   domain.ReachEstimate
		source     string
		audience   domain.AudienceInsights
		benchmarks domain.CompetitiveBenchmarks
	)

	// as três coletas são independentes e só a estimativa de alcance faz I/O
	g, gctx := errgroup.WithContext(ctx)
	g.Go(safe(func() {
		estimate, source = s.estimator.Estimate(gctx, profile.Budget, profile.SelectedCities, profile.BusinessType, profile.AdGoal)
	}))
	g.Go(safe(func() {
		audience = ProfileAudience(profile.BusinessType, profile.TargetAudience, profile.SelectedCities)
	}))
	g.Go(safe(func() {
		benchmarks = BenchmarkCompetition(profile.BusinessType, profile.CompetitorAnalysis, profile.Budget)
	}))
	if err := g.Wait(); err != nil {
		return nil, err
	}

	standard := CalculateStandard(estimate, audience, benchmarks, profile.Budget)
	optimized := Optimize(standard, profile.Budget, profile.CompetitiveAdvantages, profile.SellingPoints, profile.BusinessType)

	log.ForContext(ctx).WithFields(log.Fields{
		"reach_source":    source,
		"standard_daily":  standard.Daily,
		"optimized_daily": optimized.Daily,
	}).Debug("forecast: reach models computed")

	forecast := s.synthesizer.Synthesize(domain.MetaData{
		StandardReach:         standard,
		AudienceInsights:      audience,
		CompetitiveBenchmarks: benchmarks,
		ReachEstimate:         estimate,
	}, optimized, profile.Budget)

	return &forecast, nil
}

// safe converte um panic dentro da goroutine em erro do errgroup
func safe(fn func()) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = errors.Errorf("panic: %v", r)
			}
		}()
		fn()
		return nil
	}
}
