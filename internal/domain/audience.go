package domain

type Demographics struct {
	AgeRange string `json:"ageRange"`
	Income   string `json:"income"`
}

// AudienceInsights descreve o público estimado para o tipo de negócio
type AudienceInsights struct {
	Interests    []string     `json:"interests"`
	Behaviors    []string     `json:"behaviors"`
	Demographics Demographics `json:"demographics"`
	AudienceSize int          `json:"audienceSize"`
}

// CompetitiveBenchmarks são as referências de mercado do segmento
type CompetitiveBenchmarks struct {
	AverageCPM       float64 `json:"averageCpm"`
	AverageCTR       float64 `json:"averageCtr"`
	MarketSaturation float64 `json:"marketSaturation"`
	CompetitorSpend  float64 `json:"competitorSpend"`
}
