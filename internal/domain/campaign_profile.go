package domain

import "strings"

// City representa uma cidade alvo da campanha
type City struct {
	Description string `json:"description"`
}

// CampaignProfile é o perfil normalizado da campanha consumido pelo motor de previsão
type CampaignProfile struct {
	ID                    string         `json:"id,omitempty"`
	Budget                float64        `json:"budget"`
	BusinessSummary       string         `json:"businessSummary"`
	TargetAudience        string         `json:"targetAudience"`
	CompetitorAnalysis    map[string]any `json:"competitorAnalysis"`
	SelectedCities        []City         `json:"selectedCities"`
	AdGoal                string         `json:"adGoal"`
	BusinessType          string         `json:"businessType"`
	KeyProducts           []string       `json:"keyProducts"`
	CompetitiveAdvantages []string       `json:"competitiveAdvantages"`
	SellingPoints         string         `json:"sellingPoints"`
}

const (
	AdGoalLeads      = "leads"
	AdGoalLinkClicks = "link_clicks"
)

// Normalize devolve uma cópia com textos aparados e cidades vazias removidas
func (p CampaignProfile) Normalize() CampaignProfile {
	out := p
	out.BusinessSummary = strings.TrimSpace(p.BusinessSummary)
	out.TargetAudience = strings.TrimSpace(p.TargetAudience)
	out.AdGoal = strings.ToLower(strings.TrimSpace(p.AdGoal))
	out.BusinessType = strings.TrimSpace(p.BusinessType)
	out.SellingPoints = strings.TrimSpace(p.SellingPoints)

	out.SelectedCities = make([]City, 0, len(p.SelectedCities))
	for _, c := range p.SelectedCities {
		desc := strings.TrimSpace(c.Description)
		if desc == "" {
			continue
		}
		out.SelectedCities = append(out.SelectedCities, City{Description: desc})
	}

	out.KeyProducts = trimAll(p.KeyProducts)
	out.CompetitiveAdvantages = trimAll(p.CompetitiveAdvantages)

	return out
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// ForecastRequest é o payload recebido pelo endpoint de performance
type ForecastRequest struct {
	Budget       *float64         `json:"budget,omitempty"`
	CampaignData *CampaignProfile `json:"campaignData,omitempty"`
	CampaignID   string           `json:"campaignId,omitempty"`
}
