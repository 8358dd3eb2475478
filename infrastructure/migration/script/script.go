package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	_ "github.com/lib/pq"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	"github.com/vfg2006/performance-forecast-api/infrastructure/database/postgres"
	"github.com/vfg2006/performance-forecast-api/internal/config"
	"github.com/vfg2006/performance-forecast-api/internal/domain"
	"github.com/vfg2006/performance-forecast-api/pkg/log"
)

const (
	idPrefix   = "cmp_"
	idLength   = 10
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const createCampaignsTable = `
CREATE TABLE IF NOT EXISTS campaigns (
	id                     VARCHAR(32) PRIMARY KEY,
	budget                 NUMERIC(12, 2),
	business_summary       TEXT,
	target_audience        TEXT,
	competitor_analysis    JSONB,
	selected_cities        JSONB,
	ad_goal                VARCHAR(32),
	business_type          VARCHAR(64),
	key_products           JSONB,
	competitive_advantages JSONB,
	selling_points         TEXT,
	created_at             TIMESTAMP NOT NULL DEFAULT NOW()
)`

const createCampaignsIndex = `CREATE INDEX IF NOT EXISTS idx_campaigns_created_at ON campaigns (created_at DESC)`

const insertCampaign = `
INSERT INTO campaigns (
	id, budget, business_summary, target_audience, competitor_analysis, selected_cities,
	ad_goal, business_type, key_products, competitive_advantages, selling_points
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

func generateID() (string, error) {
	id, err := gonanoid.Generate(characters, idLength)
	if err != nil {
		return "", err
	}
	return idPrefix + id, nil
}

func createSchema(ctx context.Context, db postgres.Queryer) error {
	for _, stmt := range []string{createCampaignsTable, createCampaignsIndex} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "error creating campaigns schema")
		}
	}
	return nil
}

func encodeJSONB(value any) ([]byte, error) {
	if value == nil {
		return nil, nil
	}
	return json.Marshal(value)
}

func insertCampaigns(ctx context.Context, tx *sql.Tx, campaigns []domain.CampaignProfile) ([]string, error) {
	log.L.Infof("seed: inserting %d campaigns", len(campaigns))
	startTime := time.Now()

	ids := make([]string, 0, len(campaigns))
	for i, c := range campaigns {
		id, err := generateID()
		if err != nil {
			return nil, errors.Wrap(err, "error generating campaign id")
		}

		jsonColumns := make([][]byte, 0, 4)
		for _, v := range []any{c.CompetitorAnalysis, c.SelectedCities, c.KeyProducts, c.CompetitiveAdvantages} {
			raw, err := encodeJSONB(v)
			if err != nil {
				return nil, errors.Wrapf(err, "error encoding campaign %d", i+1)
			}
			jsonColumns = append(jsonColumns, raw)
		}

		_, err = tx.ExecContext(ctx, insertCampaign,
			id, c.Budget, c.BusinessSummary, c.TargetAudience, jsonColumns[0], jsonColumns[1],
			c.AdGoal, c.BusinessType, jsonColumns[2], jsonColumns[3], c.SellingPoints)
		if err != nil {
			return nil, errors.Wrapf(err, "error inserting campaign [%d/%d] %s", i+1, len(campaigns), c.BusinessType)
		}
		ids = append(ids, id)
	}

	log.L.Infof("seed: campaigns inserted in %v", time.Since(startTime))
	return ids, nil
}

func sampleCampaigns() []domain.CampaignProfile {
	return []domain.CampaignProfile{
		{
			Budget:                75,
			BusinessSummary:       "Boutique brokerage focused on waterfront condos",
			TargetAudience:        "Young professionals relocating to the coast",
			CompetitorAnalysis:    map[string]any{"summary": "High competition from national franchises"},
			SelectedCities:        []domain.City{{Description: "Miami, FL"}, {Description: "Fort Lauderdale, FL"}},
			AdGoal:                domain.AdGoalLeads,
			BusinessType:          "Real Estate",
			KeyProducts:           []string{"Condos", "Rental management"},
			CompetitiveAdvantages: []string{"Virtual Tours", "Local Expertise"},
			SellingPoints:         "Same-day showings",
		},
		{
			Budget:                50,
			BusinessSummary:       "Residential agency serving first-time buyers",
			TargetAudience:        "Families looking for affordable homes",
			SelectedCities:        []domain.City{{Description: "Downtown Austin"}},
			AdGoal:                domain.AdGoalLinkClicks,
			BusinessType:          "Real Estate",
			KeyProducts:           []string{"Single-family homes"},
			CompetitiveAdvantages: []string{"Free Consultation"},
		},
	}
}

func main() {
	ctx := context.Background()
	log.L.Info("seed: starting campaigns migration")

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.WithError(err).Fatal("seed: error loading configuration")
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.L.WithError(err).Fatal("seed: error connecting to database")
	}
	defer conn.Close()

	if err := createSchema(ctx, conn); err != nil {
		log.L.WithError(err).Fatal("seed: migration failed")
	}

	if len(os.Args) > 1 && os.Args[1] == "--schema-only" {
		log.L.Info("seed: schema ready, skipping sample campaigns")
		return
	}

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		ids, err := insertCampaigns(ctx, tx, sampleCampaigns())
		if err != nil {
			return err
		}
		log.L.WithField("forecast_campaign_ids", ids).Info("seed: sample campaigns created")
		return nil
	})
	if err != nil {
		log.L.WithError(err).Error("seed: rolling back sample campaigns")
		os.Exit(1)
	}
}
