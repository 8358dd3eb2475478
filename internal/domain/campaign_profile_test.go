package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCampaignProfile_Normalize(t *testing.T) {
	profile := CampaignProfile{
		BusinessSummary:       "  Waterfront condos ",
		TargetAudience:        " young buyers ",
		AdGoal:                " LEADS ",
		BusinessType:          " Real Estate",
		SellingPoints:         "Same-day showings  ",
		SelectedCities:        []City{{Description: " Miami "}, {Description: ""}, {Description: "   "}, {Description: "Tampa"}},
		KeyProducts:           []string{" Condos", ""},
		CompetitiveAdvantages: []string{"Virtual Tours ", " "},
	}

	got := profile.Normalize()

	assert.Equal(t, "Waterfront condos", got.BusinessSummary)
	assert.Equal(t, "young buyers", got.TargetAudience)
	assert.Equal(t, AdGoalLeads, got.AdGoal)
	assert.Equal(t, "Real Estate", got.BusinessType)
	assert.Equal(t, "Same-day showings", got.SellingPoints)
	assert.Equal(t, []City{{Description: "Miami"}, {Description: "Tampa"}}, got.SelectedCities)
	assert.Equal(t, []string{"Condos"}, got.KeyProducts)
	assert.Equal(t, []string{"Virtual Tours"}, got.CompetitiveAdvantages)

	// a cópia não altera o original
	assert.Equal(t, " Miami ", profile.SelectedCities[0].Description)
}

func TestCampaignProfile_NormalizeEmpty(t *testing.T) {
	got := CampaignProfile{}.Normalize()

	assert.Empty(t, got.SelectedCities)
	assert.NotNil(t, got.SelectedCities)
	assert.Empty(t, got.KeyProducts)
}

func TestUpstreamFailure_Error(t *testing.T) {
	assert.Equal(t, "upstream failure: empty_result", NewUpstreamFailure(UpstreamEmptyResult, nil).Error())

	err := NewUpstreamFailure(UpstreamStatus, assert.AnError)
	assert.Contains(t, err.Error(), "upstream failure: status: ")
	assert.ErrorIs(t, err, assert.AnError)
}
