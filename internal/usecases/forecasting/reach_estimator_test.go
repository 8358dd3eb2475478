package forecasting

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/performance-forecast-api/internal/domain"
	"github.com/vfg2006/performance-forecast-api/internal/usecases/forecasting/mocks"
	"go.uber.org/mock/gomock"
)

func TestHeuristicReachEstimate(t *testing.T) {
	tests := []struct {
		name         string
		budget       float64
		cities       []domain.City
		businessType string
		wantLower    int
		wantUpper    int
		wantCPM      float64
		wantCTR      float64
	}{
		{
			name:         "tecnologia em mercado secundário",
			budget:       50,
			cities:       []domain.City{{Description: "Downtown Austin"}},
			businessType: "Technology",
			wantLower:    3396,
			wantUpper:    4888,
			wantCPM:      11.623,
			wantCTR:      1.02,
		},
		{
			name:         "segmento desconhecido usa serviços profissionais",
			budget:       50,
			cities:       []domain.City{{Description: "Boise"}},
			businessType: "Unknown Vertical",
			// 50/10.15*1000*0.68*1.2 = 4019.70 -> 4020
			wantLower: 3296,
			wantUpper: 4744,
			wantCPM:   10.15 * 1.18,
			wantCTR:   0.90,
		},
		{
			name:         "busca de segmento ignora caixa",
			budget:       50,
			cities:       []domain.City{{Description: "Downtown Austin"}},
			businessType: "technology",
			wantLower:    3396,
			wantUpper:    4888,
			wantCPM:      11.623,
			wantCTR:      1.02,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			estimate := HeuristicReachEstimate(tt.budget, tt.cities, tt.businessType)

			assert.Equal(t, tt.wantLower, estimate.UsersLowerBound)
			assert.Equal(t, tt.wantUpper, estimate.UsersUpperBound)
			assert.InDelta(t, tt.wantCPM, estimate.CPM, 1e-9)
			assert.InDelta(t, tt.wantCTR, estimate.CTR, 1e-9)
			assert.True(t, estimate.Ready)
			assert.LessOrEqual(t, estimate.UsersLowerBound, estimate.UsersUpperBound)
		})
	}
}

func TestHeuristicReachEstimate_BoundsHoldForLargeBudgets(t *testing.T) {
	cities := []domain.City{{Description: "Downtown Austin"}}

	for _, budget := range []float64{maxBudget, 1e17, 1e300} {
		estimate := HeuristicReachEstimate(budget, cities, "Technology")

		assert.GreaterOrEqual(t, estimate.UsersLowerBound, 0, "budget %g", budget)
		assert.GreaterOrEqual(t, estimate.UsersUpperBound, estimate.UsersLowerBound, "budget %g", budget)
	}

	// 1e6/9.85*1000*0.68*1.2 = 82842640 -> [67930965, 97754315]
	estimate := HeuristicReachEstimate(maxBudget, cities, "Technology")
	assert.Equal(t, 67930965, estimate.UsersLowerBound)
	assert.Equal(t, 97754315, estimate.UsersUpperBound)
}

func TestLocationMultiplier(t *testing.T) {
	tests := []struct {
		name   string
		cities []domain.City
		want   float64
	}{
		{name: "sem cidades", cities: nil, want: 1.0},
		{name: "mercado secundário", cities: []domain.City{{Description: "Downtown Austin"}}, want: 1.2},
		{name: "primeira faixa", cities: []domain.City{{Description: "Brooklyn, New York"}}, want: 1.8},
		{name: "faixa intermediária", cities: []domain.City{{Description: "miami beach"}}, want: 1.7},
		{name: "produto de faixas", cities: []domain.City{{Description: "Denver"}, {Description: "Austin"}}, want: 1.5 * 1.2},
		{name: "limite de 2.5", cities: []domain.City{{Description: "Chicago"}, {Description: "Boston"}}, want: 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, LocationMultiplier(tt.cities), 1e-9)
		})
	}
}

func TestOptimizationGoalFor(t *testing.T) {
	assert.Equal(t, "LEAD_GENERATION", OptimizationGoalFor("leads"))
	assert.Equal(t, "LEAD_GENERATION", OptimizationGoalFor(" Leads "))
	assert.Equal(t, "LINK_CLICKS", OptimizationGoalFor("link_clicks"))
	assert.Equal(t, "LINK_CLICKS", OptimizationGoalFor(""))
}

func TestReachEstimator_Estimate(t *testing.T) {
	cities := []domain.City{{Description: "Downtown Austin"}}
	heuristic := HeuristicReachEstimate(50, cities, "Technology")

	tests := []struct {
		name        string
		setup       func(m *mocks.MockReachEstimateClient)
		want        domain.ReachEstimate
		wantSource  string
		wantFailure string
	}{
		{
			name: "estimativa da plataforma",
			setup: func(m *mocks.MockReachEstimateClient) {
				m.EXPECT().
					FetchReachEstimate(gomock.Any(), domain.ReachEstimateRequest{
						Cities:             cities,
						BusinessType:       "Technology",
						OptimizationGoal:   "LEAD_GENERATION",
						DailyBudgetInCents: 5000,
					}, 3*time.Second).
					Return([]domain.ReachEstimate{{UsersLowerBound: 1000, UsersUpperBound: 2000, Ready: true}}, nil)
			},
			want:       domain.ReachEstimate{UsersLowerBound: 1000, UsersUpperBound: 2000, Ready: true},
			wantSource: domain.ReachSourceMeta,
		},
		{
			name: "timeout usa heurística",
			setup: func(m *mocks.MockReachEstimateClient) {
				m.EXPECT().FetchReachEstimate(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.Wrap(context.DeadlineExceeded, "get reach estimate"))
			},
			want:        heuristic,
			wantSource:  domain.ReachSourceHeuristic,
			wantFailure: domain.UpstreamTimeout,
		},
		{
			name: "falha classificada é preservada",
			setup: func(m *mocks.MockReachEstimateClient) {
				m.EXPECT().FetchReachEstimate(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, domain.NewUpstreamFailure(domain.UpstreamAPIError, errors.New("code 100")))
			},
			want:        heuristic,
			wantSource:  domain.ReachSourceHeuristic,
			wantFailure: domain.UpstreamAPIError,
		},
		{
			name: "erro genérico vira transporte",
			setup: func(m *mocks.MockReachEstimateClient) {
				m.EXPECT().FetchReachEstimate(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			want:        heuristic,
			wantSource:  domain.ReachSourceHeuristic,
			wantFailure: domain.UpstreamTransport,
		},
		{
			name: "lista vazia",
			setup: func(m *mocks.MockReachEstimateClient) {
				m.EXPECT().FetchReachEstimate(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]domain.ReachEstimate{}, nil)
			},
			want:        heuristic,
			wantSource:  domain.ReachSourceHeuristic,
			wantFailure: domain.UpstreamEmptyResult,
		},
		{
			name: "limites invertidos",
			setup: func(m *mocks.MockReachEstimateClient) {
				m.EXPECT().FetchReachEstimate(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]domain.ReachEstimate{{UsersLowerBound: 500, UsersUpperBound: 100}}, nil)
			},
			want:        heuristic,
			wantSource:  domain.ReachSourceHeuristic,
			wantFailure: domain.UpstreamMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockReachEstimateClient(ctrl)
			tt.setup(client)
			recorder := &recordedMetrics{}

			estimator := NewReachEstimator(client, 3*time.Second, recorder)
			estimate, source := estimator.Estimate(context.Background(), 50, cities, "Technology", "leads")

			assert.Equal(t, tt.want, estimate)
			assert.Equal(t, tt.wantSource, source)
			assert.Equal(t, []string{tt.wantSource}, recorder.sources)
			if tt.wantFailure != "" {
				assert.Equal(t, []string{tt.wantFailure}, recorder.failures)
			} else {
				assert.Empty(t, recorder.failures)
			}
		})
	}
}

func TestReachEstimator_WithoutClient(t *testing.T) {
	recorder := &recordedMetrics{}
	estimator := NewReachEstimator(nil, 0, recorder)

	cities := []domain.City{{Description: "Downtown Austin"}}
	estimate, source := estimator.Estimate(context.Background(), 50, cities, "Technology", "leads")

	assert.Equal(t, domain.ReachSourceHeuristic, source)
	assert.Equal(t, 4888, estimate.UsersUpperBound)
	assert.Equal(t, []string{domain.UpstreamMissingCredentials}, recorder.failures)
	assert.Equal(t, defaultReachTimeout, estimator.timeout)
}
