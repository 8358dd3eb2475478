package forecasting

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/performance-forecast-api/internal/domain"
	"github.com/vfg2006/performance-forecast-api/pkg/apiErrors"
)

const (
	fallbackDefaultBudget = 50.0

	// teto do orçamento diário aceito
	maxBudget = 1000000.0
)

// Resolver extrai o perfil normalizado da campanha do payload ou do repositório
type Resolver struct {
	store         CampaignStore
	defaultBudget float64
}

func NewResolver(store CampaignStore, defaultBudget float64) *Resolver {
	if defaultBudget <= 0 {
		defaultBudget = fallbackDefaultBudget
	}

	return &Resolver{
		store:         store,
		defaultBudget: defaultBudget,
	}
}

func (r *Resolver) Resolve(ctx context.Context, req *domain.ForecastRequest) (domain.CampaignProfile, error) {
	if req == nil {
		return domain.CampaignProfile{}, inputError(ErrCampaignDataRequired, "request body is empty")
	}

	budget := r.defaultBudget
	if req.Budget != nil {
		budget = *req.Budget
	}
	if budget <= 0 {
		return domain.CampaignProfile{}, NewForecastError(ErrInvalidBudget, apiErrors.ErrInvalidRequest, "")
	}
	if budget > maxBudget {
		return domain.CampaignProfile{}, NewForecastError(ErrInvalidBudget, apiErrors.ErrInvalidRequest,
			fmt.Sprintf("budget must not exceed %.0f", maxBudget))
	}

	profile, err := r.lookup(ctx, req)
	if err != nil {
		return domain.CampaignProfile{}, err
	}

	normalized := profile.Normalize()
	normalized.Budget = budget

	if len(normalized.SelectedCities) == 0 {
		return domain.CampaignProfile{}, inputError(ErrNoCitiesSelected, "selectedCities must contain at least one city")
	}

	return normalized, nil
}

func (r *Resolver) lookup(ctx context.Context, req *domain.ForecastRequest) (*domain.CampaignProfile, error) {
	if req.CampaignData != nil {
		return req.CampaignData, nil
	}

	if r.store == nil {
		return nil, inputError(ErrCampaignDataRequired, "campaignData is missing and no campaign store is configured")
	}

	var (
		profile *domain.CampaignProfile
		err     error
	)
	if req.CampaignID != "" {
		profile, err = r.store.GetCampaignByID(ctx, req.CampaignID)
	} else {
		profile, err = r.store.GetLatestCampaign(ctx)
	}
	if err != nil {
		return nil, internalError(errors.Wrap(err, ErrCampaignLookup.Error()))
	}

	if profile == nil {
		return nil, inputError(ErrCampaignDataRequired, "no campaign found")
	}

	return profile, nil
}
