package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/performance-forecast-api/infrastructure/database/postgres"
	"github.com/vfg2006/performance-forecast-api/internal/domain"
)

const campaignsTable = "campaigns c"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var campaignColumns = []string{
	"c.id",
	"c.budget",
	"c.business_summary",
	"c.target_audience",
	"c.competitor_analysis",
	"c.selected_cities",
	"c.ad_goal",
	"c.business_type",
	"c.key_products",
	"c.competitive_advantages",
	"c.selling_points",
}

type CampaignRepository interface {
	GetCampaignByID(ctx context.Context, id string) (*domain.CampaignProfile, error)
	GetLatestCampaign(ctx context.Context) (*domain.CampaignProfile, error)
}

type campaignRepository struct {
	conn postgres.Queryer
}

func NewCampaignRepository(conn postgres.Queryer) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) GetCampaignByID(ctx context.Context, id string) (*domain.CampaignProfile, error) {
	query := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"c.id": id})

	return r.getCampaign(ctx, query)
}

func (r *campaignRepository) GetLatestCampaign(ctx context.Context) (*domain.CampaignProfile, error) {
	query := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		OrderBy("c.created_at DESC").
		Limit(1)

	return r.getCampaign(ctx, query)
}

func (r *campaignRepository) getCampaign(ctx context.Context, query squirrel.SelectBuilder) (*domain.CampaignProfile, error) {
	campaignSQL, args, err := query.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRowContext(ctx, campaignSQL, args...)

	campaign, err := r.deserializeCampaign(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return campaign, nil
}

func (r *campaignRepository) deserializeCampaign(row *sql.Row) (*domain.CampaignProfile, error) {
	var (
		campaign              domain.CampaignProfile
		budget                sql.NullFloat64
		summary               sql.NullString
		targetAudience        sql.NullString
		adGoal                sql.NullString
		businessType          sql.NullString
		competitorAnalysis    []byte
		selectedCities        []byte
		keyProducts           []byte
		competitiveAdvantages []byte
		sellingPoints         []byte
	)

	if err := row.Scan(
		&campaign.ID,
		&budget,
		&summary,
		&targetAudience,
		&competitorAnalysis,
		&selectedCities,
		&adGoal,
		&businessType,
		&keyProducts,
		&competitiveAdvantages,
		&sellingPoints,
	); err != nil {
		return nil, err
	}

	campaign.Budget = budget.Float64
	campaign.BusinessSummary = summary.String
	campaign.TargetAudience = targetAudience.String
	campaign.AdGoal = adGoal.String
	campaign.BusinessType = businessType.String

	jsonColumns := []struct {
		name string
		raw  []byte
		dest interface{}
	}{
		{"competitor_analysis", competitorAnalysis, &campaign.CompetitorAnalysis},
		{"selected_cities", selectedCities, &campaign.SelectedCities},
		{"key_products", keyProducts, &campaign.KeyProducts},
		{"competitive_advantages", competitiveAdvantages, &campaign.CompetitiveAdvantages},
		{"selling_points", sellingPoints, &campaign.SellingPoints},
	}

	for _, column := range jsonColumns {
		if len(column.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(column.raw, column.dest); err != nil {
			return nil, errors.Wrapf(err, "erro ao decodificar coluna %s", column.name)
		}
	}

	return &campaign, nil
}
