package forecasting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/performance-forecast-api/internal/domain"
)

func TestBenchmarkCompetition(t *testing.T) {
	tests := []struct {
		name         string
		businessType string
		analysis     map[string]any
		budget       float64
		want         domain.CompetitiveBenchmarks
	}{
		{
			name:         "sem análise",
			businessType: "Technology",
			budget:       50,
			want:         domain.CompetitiveBenchmarks{AverageCPM: 10.40, AverageCTR: 1.05, MarketSaturation: 0.72, CompetitorSpend: 140},
		},
		{
			name:         "alta concorrência",
			businessType: "Real Estate",
			analysis:     map[string]any{"summary": "High competition in the downtown area"},
			budget:       50,
			want:         domain.CompetitiveBenchmarks{AverageCPM: 11.85, AverageCTR: 0.95, MarketSaturation: 0.68, CompetitorSpend: 210},
		},
		{
			name:         "poucos concorrentes em campo aninhado",
			businessType: "finance",
			analysis:     map[string]any{"market": map[string]any{"notes": []any{"few competitors nearby"}}},
			budget:       100,
			want:         domain.CompetitiveBenchmarks{AverageCPM: 14.10, AverageCTR: 0.60, MarketSaturation: 0.76, CompetitorSpend: 180},
		},
		{
			name:         "segmento desconhecido usa tecnologia",
			businessType: "Bakery",
			analysis:     map[string]any{"competitors": 3},
			budget:       20,
			want:         domain.CompetitiveBenchmarks{AverageCPM: 10.40, AverageCTR: 1.05, MarketSaturation: 0.72, CompetitorSpend: 56},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BenchmarkCompetition(tt.businessType, tt.analysis, tt.budget))
		})
	}
}
