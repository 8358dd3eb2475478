package forecasting

import (
	"sync"
	"time"

	"github.com/vfg2006/performance-forecast-api/internal/domain"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// constantRandom devolve sempre o mesmo valor; 0.5 anula a variância diária
type constantRandom float64

func (r constantRandom) Float64() float64 { return float64(r) }

type panicRandom struct{}

func (panicRandom) Float64() float64 { panic("random source exhausted") }

type recordedMetrics struct {
	mu       sync.Mutex
	statuses []string
	sources  []string
	failures []string
}

func (r *recordedMetrics) IncrementForecast(status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, status)
}

func (r *recordedMetrics) ObserveForecastDuration(time.Duration) {}

func (r *recordedMetrics) IncrementReachSource(source string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources = append(r.sources, source)
}

func (r *recordedMetrics) IncrementUpstreamFailure(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, reason)
}

var testDay = time.Date(2025, time.January, 30, 9, 0, 0, 0, time.UTC)

func austinCampaign() *domain.CampaignProfile {
	return &domain.CampaignProfile{
		BusinessType:   "Technology",
		SelectedCities: []domain.City{{Description: "Downtown Austin"}},
		AdGoal:         "link_clicks",
	}
}

func float64Ptr(v float64) *float64 { return &v }
