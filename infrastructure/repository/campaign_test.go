package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/performance-forecast-api/internal/domain"
)

const selectCampaigns = "SELECT c.id, c.budget, c.business_summary, c.target_audience, c.competitor_analysis, " +
	"c.selected_cities, c.ad_goal, c.business_type, c.key_products, c.competitive_advantages, c.selling_points " +
	"FROM campaigns c"

func campaignRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "budget", "business_summary", "target_audience", "competitor_analysis", "selected_cities",
		"ad_goal", "business_type", "key_products", "competitive_advantages", "selling_points",
	})
}

func TestGetCampaignByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectCampaigns + " WHERE c.id = $1")).
		WithArgs("cmp-1").
		WillReturnRows(campaignRows().AddRow(
			"cmp-1", 75.0, "Luxury condos", "young professionals",
			[]byte(`{"summary":"high competition downtown"}`),
			[]byte(`[{"description":"Miami, FL"}]`),
			"leads", "Real Estate",
			[]byte(`["Condos"]`),
			[]byte(`["Virtual Tours","Local Expertise"]`),
			"Ocean views",
		))

	campaign, err := NewCampaignRepository(db).GetCampaignByID(context.Background(), "cmp-1")
	require.NoError(t, err)
	require.NotNil(t, campaign)

	assert.Equal(t, "cmp-1", campaign.ID)
	assert.Equal(t, 75.0, campaign.Budget)
	assert.Equal(t, []domain.City{{Description: "Miami, FL"}}, campaign.SelectedCities)
	assert.Equal(t, []string{"Virtual Tours", "Local Expertise"}, campaign.CompetitiveAdvantages)
	assert.Equal(t, "high competition downtown", campaign.CompetitorAnalysis["summary"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCampaignByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectCampaigns + " WHERE c.id = $1")).
		WithArgs("missing").
		WillReturnRows(campaignRows())

	campaign, err := NewCampaignRepository(db).GetCampaignByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, campaign)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatestCampaign_NullColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectCampaigns + " ORDER BY c.created_at DESC LIMIT 1")).
		WillReturnRows(campaignRows().AddRow(
			"cmp-2", nil, nil, nil, nil, []byte(`[{"description":"Denver"}]`), nil, nil, nil, nil, nil,
		))

	campaign, err := NewCampaignRepository(db).GetLatestCampaign(context.Background())
	require.NoError(t, err)
	require.NotNil(t, campaign)

	assert.Zero(t, campaign.Budget)
	assert.Empty(t, campaign.BusinessType)
	assert.Nil(t, campaign.CompetitorAnalysis)
	assert.Len(t, campaign.SelectedCities, 1)
}

func TestGetLatestCampaign_Errors(t *testing.T) {
	t.Run("erro de consulta", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		boom := errors.New("connection reset")
		mock.ExpectQuery(regexp.QuoteMeta(selectCampaigns)).WillReturnError(boom)

		_, err = NewCampaignRepository(db).GetLatestCampaign(context.Background())
		assert.ErrorIs(t, err, boom)
	})

	t.Run("jsonb inválido", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(selectCampaigns)).
			WillReturnRows(campaignRows().AddRow(
				"cmp-3", 50.0, "", "", nil, []byte(`{"broken"`), "", "", nil, nil, "",
			))

		_, err = NewCampaignRepository(db).GetLatestCampaign(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "selected_cities")
	})
}
