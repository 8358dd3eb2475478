package forecasting

import (
	"sort"

	"github.com/vfg2006/performance-forecast-api/internal/domain"
)

// Categorias padrão quando o tipo de negócio não está nas tabelas
const (
	defaultIndustry         = "Professional Services"
	defaultAudienceCategory = "Technology"
	defaultBenchmarkSegment = "Technology"
)

type industryBenchmark struct {
	CPM            float64
	CTR            float64
	ConversionRate float64
}

// Referências de mercado usadas pela estimativa heurística de alcance
var industryBenchmarks = map[string]industryBenchmark{
	"Technology":            {CPM: 9.85, CTR: 1.02, ConversionRate: 2.8},
	"Real Estate":           {CPM: 11.20, CTR: 0.99, ConversionRate: 2.1},
	"E-commerce":            {CPM: 8.45, CTR: 1.24, ConversionRate: 2.9},
	"Healthcare":            {CPM: 10.60, CTR: 0.83, ConversionRate: 3.3},
	"Finance":               {CPM: 13.40, CTR: 0.56, ConversionRate: 5.1},
	"Education":             {CPM: 7.90, CTR: 0.73, ConversionRate: 4.6},
	"Professional Services": {CPM: 10.15, CTR: 0.90, ConversionRate: 4.1},
	"Retail":                {CPM: 7.35, CTR: 1.18, ConversionRate: 3.0},
}

type marketTier struct {
	Coefficient float64
	Markets     []string
}

// Ordenado do maior para o menor; a primeira faixa encontrada vence
var marketTiers = []marketTier{
	{Coefficient: 1.8, Markets: []string{"New York", "Los Angeles", "Chicago", "San Francisco"}},
	{Coefficient: 1.7, Markets: []string{"Miami", "Boston", "Seattle", "Washington"}},
	{Coefficient: 1.6, Markets: []string{"Houston", "Dallas", "Atlanta", "Philadelphia"}},
	{Coefficient: 1.5, Markets: []string{"Phoenix", "Denver", "San Diego", "Las Vegas"}},
}

const defaultMarketCoefficient = 1.2

type audienceProfile struct {
	Interests    []string
	Behaviors    []string
	Demographics domain.Demographics
}

var audienceProfiles = map[string]audienceProfile{
	"Technology": {
		Interests:    []string{"Technology", "Software", "Gadgets", "Startups", "Cloud computing"},
		Behaviors:    []string{"Early technology adopters", "Small business owners", "Engaged shoppers"},
		Demographics: domain.Demographics{AgeRange: "22-45", Income: "Top 40%"},
	},
	"Real Estate": {
		Interests:    []string{"Real estate", "Home improvement", "Interior design", "Mortgage loans", "Property investment"},
		Behaviors:    []string{"Likely to move", "First-time home buyers", "Recently moved"},
		Demographics: domain.Demographics{AgeRange: "28-55", Income: "Top 30%"},
	},
	"E-commerce": {
		Interests:    []string{"Online shopping", "Fashion", "Deals and coupons", "Consumer electronics"},
		Behaviors:    []string{"Engaged shoppers", "Online buyers", "Mobile shoppers"},
		Demographics: domain.Demographics{AgeRange: "18-44", Income: "Top 50%"},
	},
	"Healthcare": {
		Interests:    []string{"Health and wellness", "Fitness", "Nutrition", "Medical care"},
		Behaviors:    []string{"Health-conscious consumers", "Caregivers", "Parents"},
		Demographics: domain.Demographics{AgeRange: "30-65", Income: "Top 50%"},
	},
	"Finance": {
		Interests:    []string{"Personal finance", "Investing", "Banking", "Insurance", "Retirement planning"},
		Behaviors:    []string{"Investors", "High-value goods shoppers", "Small business owners"},
		Demographics: domain.Demographics{AgeRange: "30-60", Income: "Top 25%"},
	},
}

var audienceBaseSizes = map[string]int{
	"Technology":  2500000,
	"Real Estate": 1800000,
	"E-commerce":  3200000,
	"Healthcare":  2100000,
	"Finance":     1500000,
}

const defaultAudienceBaseSize = 1000000

type competitionBenchmark struct {
	AverageCPM       float64
	AverageCTR       float64
	MarketSaturation float64
}

var competitionBenchmarks = map[string]competitionBenchmark{
	"Technology":  {AverageCPM: 10.40, AverageCTR: 1.05, MarketSaturation: 0.72},
	"Real Estate": {AverageCPM: 11.85, AverageCTR: 0.95, MarketSaturation: 0.68},
	"E-commerce":  {AverageCPM: 8.90, AverageCTR: 1.21, MarketSaturation: 0.81},
	"Healthcare":  {AverageCPM: 10.95, AverageCTR: 0.86, MarketSaturation: 0.58},
	"Finance":     {AverageCPM: 14.10, AverageCTR: 0.60, MarketSaturation: 0.76},
}

// Peso de cada diferencial competitivo no fator criativo
var advantageFactors = map[string]float64{
	"Virtual Tours":        1.35,
	"Proven Results":       1.30,
	"Exclusive Listings":   1.32,
	"Award Winning":        1.28,
	"Local Expertise":      1.25,
	"Money-Back Guarantee": 1.25,
	"Years of Experience":  1.22,
	"Free Consultation":    1.20,
	"Fast Response":        1.18,
	"24/7 Support":         1.15,
}

const defaultAdvantageFactor = 1.08

var businessMultipliers = map[string]float64{
	"Real Estate": 1.25,
	"E-commerce":  1.22,
	"Finance":     1.20,
	"Technology":  1.18,
	"Healthcare":  1.12,
}

const defaultBusinessMultiplier = 1.15

// Curvas de crescimento diário dos 7 dias de previsão
var (
	standardGrowthCurve  = [forecastDays]float64{0.65, 0.72, 0.80, 0.87, 0.94, 1.01, 1.08}
	optimizedGrowthCurve = [forecastDays]float64{0.85, 0.98, 1.12, 1.25, 1.36, 1.47, 1.58}
)

// Industries lista as categorias de cada tabela de referência
func Industries() []domain.Industry {
	return []domain.Industry{
		{Table: "reach", Default: defaultIndustry, Categories: sortedKeys(industryBenchmarks)},
		{Table: "audience", Default: defaultAudienceCategory, Categories: sortedKeys(audienceProfiles)},
		{Table: "competition", Default: defaultBenchmarkSegment, Categories: sortedKeys(competitionBenchmarks)},
		{Table: "optimization", Default: "", Categories: sortedKeys(businessMultipliers)},
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
