package forecasting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/performance-forecast-api/internal/domain"
)

func TestCalculateStandard(t *testing.T) {
	neutral := domain.CompetitiveBenchmarks{AverageCPM: 10, AverageCTR: 1}

	tests := []struct {
		name       string
		estimate   domain.ReachEstimate
		audience   domain.AudienceInsights
		benchmarks domain.CompetitiveBenchmarks
		budget     float64
		want       domain.StandardReach
	}{
		{
			name:       "estimativa heurística de tecnologia",
			estimate:   domain.ReachEstimate{UsersLowerBound: 3396, UsersUpperBound: 4888, CPM: 11.623, CTR: 1.02},
			audience:   domain.AudienceInsights{AudienceSize: 2000000},
			benchmarks: domain.CompetitiveBenchmarks{AverageCPM: 10.40, AverageCTR: 1.05, MarketSaturation: 0.72},
			budget:     50,
			want:       domain.StandardReach{Daily: 3802, Weekly: 22090, CPM: 11.623, CTR: 1.02},
		},
		{
			name:       "sem limite superior usa alcance base e referências",
			estimate:   domain.ReachEstimate{},
			benchmarks: domain.CompetitiveBenchmarks{AverageCPM: 10.40, AverageCTR: 1.05, MarketSaturation: 0.72},
			budget:     50,
			want:       domain.StandardReach{Daily: 37400, Weekly: 217294, CPM: 10.40, CTR: 1.05},
		},
		{
			name:       "eficiência de orçamento limitada a 1.2",
			estimate:   domain.ReachEstimate{UsersUpperBound: 1000},
			benchmarks: neutral,
			budget:     500,
			want:       domain.StandardReach{Daily: 1200, Weekly: 6972, CPM: 10, CTR: 1},
		},
		{
			name:       "orçamento baixo reduz alcance",
			estimate:   domain.ReachEstimate{UsersUpperBound: 1000},
			benchmarks: neutral,
			budget:     20,
			want:       domain.StandardReach{Daily: 908, Weekly: 5275, CPM: 10, CTR: 1},
		},
		{
			name:       "fator de concorrência mínimo",
			estimate:   domain.ReachEstimate{UsersUpperBound: 1000},
			benchmarks: domain.CompetitiveBenchmarks{AverageCPM: 10, AverageCTR: 1, MarketSaturation: 2},
			budget:     50,
			want:       domain.StandardReach{Daily: 400, Weekly: 2324, CPM: 10, CTR: 1},
		},
		{
			name:       "fator de público limitado a 1.3",
			estimate:   domain.ReachEstimate{UsersUpperBound: 1000},
			audience:   domain.AudienceInsights{AudienceSize: 20000000},
			benchmarks: neutral,
			budget:     50,
			want:       domain.StandardReach{Daily: 1300, Weekly: 7553, CPM: 10, CTR: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateStandard(tt.estimate, tt.audience, tt.benchmarks, tt.budget)
			assert.Equal(t, tt.want.Daily, got.Daily)
			assert.Equal(t, tt.want.Weekly, got.Weekly)
			assert.InDelta(t, tt.want.CPM, got.CPM, 1e-9)
			assert.InDelta(t, tt.want.CTR, got.CTR, 1e-9)
		})
	}
}

func TestCalculateStandard_ZeroBudgetStaysNonNegative(t *testing.T) {
	got := CalculateStandard(domain.ReachEstimate{UsersUpperBound: 1000}, domain.AudienceInsights{}, domain.CompetitiveBenchmarks{}, 0)
	assert.GreaterOrEqual(t, got.Daily, 0)
	assert.Less(t, got.Daily, 1000)
}

func TestWeeklyReach(t *testing.T) {
	assert.Equal(t, 0, WeeklyReach(0))
	assert.Equal(t, 5810, WeeklyReach(1000))
	assert.Equal(t, 22090, WeeklyReach(3802))
}
