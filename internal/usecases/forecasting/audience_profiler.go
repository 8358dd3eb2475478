package forecasting

import (
	"math"

	"github.com/vfg2006/performance-forecast-api/internal/domain"
	"github.com/vfg2006/performance-forecast-api/pkg/utils"
)

const (
	cityAudienceFactor    = 0.8
	maxCityAudienceFactor = 2.0

	premiumAudienceFactor = 0.6
	budgetAudienceFactor  = 1.4
)

// ProfileAudience deriva interesses, comportamentos e tamanho de público para o segmento
func ProfileAudience(businessType, targetAudience string, cities []domain.City) domain.AudienceInsights {
	profile, ok := utils.LookupFold(audienceProfiles, businessType)
	if !ok {
		profile = audienceProfiles[defaultAudienceCategory]
	}

	baseSize, ok := utils.LookupFold(audienceBaseSizes, businessType)
	if !ok {
		baseSize = defaultAudienceBaseSize
	}

	cityFactor := math.Min(float64(len(cities))*cityAudienceFactor, maxCityAudienceFactor)
	audienceSize := utils.RoundToInt(float64(baseSize) * cityFactor)

	demographics := profile.Demographics

	// idade e renda são ajustes independentes; dentro de cada um vale o primeiro termo encontrado
	if utils.ContainsAny(targetAudience, "young", "millennial") {
		demographics.AgeRange = "25-40"
	} else if utils.ContainsAny(targetAudience, "senior", "older") {
		demographics.AgeRange = "45-65"
	}

	if utils.ContainsAny(targetAudience, "luxury", "premium") {
		demographics.Income = "Top 20%"
		audienceSize = utils.RoundToInt(float64(audienceSize) * premiumAudienceFactor)
	} else if utils.ContainsAny(targetAudience, "budget", "affordable") {
		demographics.Income = "Top 60%"
		audienceSize = utils.RoundToInt(float64(audienceSize) * budgetAudienceFactor)
	}

	return domain.AudienceInsights{
		Interests:    append([]string(nil), profile.Interests...),
		Behaviors:    append([]string(nil), profile.Behaviors...),
		Demographics: demographics,
		AudienceSize: audienceSize,
	}
}
