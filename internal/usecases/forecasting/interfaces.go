package forecasting

import (
	"context"
	"time"

	"github.com/vfg2006/performance-forecast-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// ReachEstimateClient consulta a estimativa de alcance na plataforma de anúncios
type ReachEstimateClient interface {
	FetchReachEstimate(ctx context.Context, req domain.ReachEstimateRequest, timeout time.Duration) ([]domain.ReachEstimate, error)
}

// CampaignStore resolve perfis de campanha salvos pela aplicação
type CampaignStore interface {
	GetCampaignByID(ctx context.Context, id string) (*domain.CampaignProfile, error)
	GetLatestCampaign(ctx context.Context) (*domain.CampaignProfile, error)
}

// Forecaster é a porta de entrada do motor de previsão
type Forecaster interface {
	// Forecast resolve o perfil da campanha e gera a previsão de 7 dias
	Forecast(ctx context.Context, req *domain.ForecastRequest) (*domain.ForecastResult, error)

	// Industries lista as categorias de negócio conhecidas por cada tabela
	Industries() []domain.Industry
}

type Clock interface {
	Now() time.Time
}

// RandomSource devolve valores uniformes em [0, 1)
type RandomSource interface {
	Float64() float64
}
