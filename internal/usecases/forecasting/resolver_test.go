package forecasting

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/performance-forecast-api/internal/domain"
	"github.com/vfg2006/performance-forecast-api/internal/usecases/forecasting/mocks"
	"github.com/vfg2006/performance-forecast-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestResolver_Resolve(t *testing.T) {
	stored := &domain.CampaignProfile{
		ID:             "cmp_1",
		Budget:         999,
		BusinessType:   " Real Estate ",
		SelectedCities: []domain.City{{Description: " Miami "}, {Description: "  "}},
		AdGoal:         "LEADS",
	}

	tests := []struct {
		name       string
		req        *domain.ForecastRequest
		setup      func(m *mocks.MockCampaignStore)
		wantBudget float64
		wantCities []domain.City
		wantType   string
		wantErr    error
		wantInput  bool
	}{
		{
			name:       "dados da campanha no payload com orçamento padrão",
			req:        &domain.ForecastRequest{CampaignData: austinCampaign()},
			wantBudget: 50,
			wantCities: []domain.City{{Description: "Downtown Austin"}},
			wantType:   "Technology",
		},
		{
			name:       "orçamento do payload prevalece sobre o da campanha",
			req:        &domain.ForecastRequest{Budget: float64Ptr(120), CampaignData: stored},
			wantBudget: 120,
			wantCities: []domain.City{{Description: "Miami"}},
			wantType:   "Real Estate",
		},
		{
			name: "campanha salva por id",
			req:  &domain.ForecastRequest{CampaignID: "cmp_1"},
			setup: func(m *mocks.MockCampaignStore) {
				m.EXPECT().GetCampaignByID(gomock.Any(), "cmp_1").Return(stored, nil)
			},
			wantBudget: 50,
			wantCities: []domain.City{{Description: "Miami"}},
			wantType:   "Real Estate",
		},
		{
			name: "campanha mais recente",
			req:  &domain.ForecastRequest{Budget: float64Ptr(75)},
			setup: func(m *mocks.MockCampaignStore) {
				m.EXPECT().GetLatestCampaign(gomock.Any()).Return(austinCampaign(), nil)
			},
			wantBudget: 75,
			wantCities: []domain.City{{Description: "Downtown Austin"}},
			wantType:   "Technology",
		},
		{
			name:      "requisição ausente",
			req:       nil,
			wantErr:   ErrCampaignDataRequired,
			wantInput: true,
		},
		{
			name:      "orçamento zero",
			req:       &domain.ForecastRequest{Budget: float64Ptr(0), CampaignData: austinCampaign()},
			wantErr:   ErrInvalidBudget,
			wantInput: true,
		},
		{
			name:      "orçamento negativo",
			req:       &domain.ForecastRequest{Budget: float64Ptr(-10), CampaignData: austinCampaign()},
			wantErr:   ErrInvalidBudget,
			wantInput: true,
		},
		{
			name:       "orçamento no limite diário",
			req:        &domain.ForecastRequest{Budget: float64Ptr(maxBudget), CampaignData: austinCampaign()},
			wantBudget: maxBudget,
			wantCities: []domain.City{{Description: "Downtown Austin"}},
			wantType:   "Technology",
		},
		{
			name:      "orçamento acima do limite diário",
			req:       &domain.ForecastRequest{Budget: float64Ptr(1e17), CampaignData: austinCampaign()},
			wantErr:   ErrInvalidBudget,
			wantInput: true,
		},
		{
			name:      "sem cidades válidas",
			req:       &domain.ForecastRequest{CampaignData: &domain.CampaignProfile{BusinessType: "Technology", SelectedCities: []domain.City{{Description: " "}}}},
			wantErr:   ErrNoCitiesSelected,
			wantInput: true,
		},
		{
			name: "campanha não encontrada",
			req:  &domain.ForecastRequest{CampaignID: "missing"},
			setup: func(m *mocks.MockCampaignStore) {
				m.EXPECT().GetCampaignByID(gomock.Any(), "missing").Return(nil, nil)
			},
			wantErr:   ErrCampaignDataRequired,
			wantInput: true,
		},
		{
			name: "falha no repositório",
			req:  &domain.ForecastRequest{},
			setup: func(m *mocks.MockCampaignStore) {
				m.EXPECT().GetLatestCampaign(gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			wantErr:   ErrForecastFailed,
			wantInput: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockCampaignStore(ctrl)
			if tt.setup != nil {
				tt.setup(store)
			}

			profile, err := NewResolver(store, 50).Resolve(context.Background(), tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantInput, IsInputError(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantBudget, profile.Budget)
			assert.Equal(t, tt.wantCities, profile.SelectedCities)
			assert.Equal(t, tt.wantType, profile.BusinessType)
		})
	}
}

func TestResolver_WithoutStore(t *testing.T) {
	_, err := NewResolver(nil, 50).Resolve(context.Background(), &domain.ForecastRequest{CampaignID: "cmp_1"})

	assert.ErrorIs(t, err, ErrCampaignDataRequired)
	assert.True(t, IsInputError(err))
}

func TestResolver_InvalidBudgetCode(t *testing.T) {
	_, err := NewResolver(nil, 50).Resolve(context.Background(), &domain.ForecastRequest{Budget: float64Ptr(-1), CampaignData: austinCampaign()})

	var fe *ForecastError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, apiErrors.ErrInvalidRequest, fe.Code)

	_, err = NewResolver(nil, 50).Resolve(context.Background(), &domain.ForecastRequest{Budget: float64Ptr(1e300), CampaignData: austinCampaign()})
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, apiErrors.ErrInvalidRequest, fe.Code)
	assert.Equal(t, "budget must not exceed 1000000", fe.Details)
}

func TestNewResolver_DefaultBudget(t *testing.T) {
	assert.Equal(t, fallbackDefaultBudget, NewResolver(nil, 0).defaultBudget)
	assert.Equal(t, 80.0, NewResolver(nil, 80).defaultBudget)
}
