package domain

// Fases da campanha no gráfico de previsão
const (
	PhaseLearning     = "learning"
	PhaseOptimization = "optimization"
	PhaseScaling      = "scaling"
)

const OptimizationGoalLeadGeneration = "LEAD_GENERATION"

type ChartDataPoint struct {
	Date               string `json:"date"`
	StandardReach      int    `json:"standardReach"`
	OptimizedReach     int    `json:"optimizedReach"`
	Phase              string `json:"phase"`
	ImprovementPercent int    `json:"improvementPercent"`
}

type ReachRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type EstimatedReach struct {
	Standard  ReachRange `json:"standard"`
	Optimized ReachRange `json:"optimized"`
}

type ForecastMetrics struct {
	Improvement           int                   `json:"improvement"`
	CTRBoost              float64               `json:"ctrBoost"`
	CostPerResult         float64               `json:"costPerResult"`
	TotalAdSets           int                   `json:"totalAdSets"`
	OptimizationGoal      string                `json:"optimizationGoal"`
	StandardCPM           float64               `json:"standardCpm"`
	OptimizedCPM          float64               `json:"optimizedCpm"`
	AudienceInsights      AudienceInsights      `json:"audienceInsights"`
	CompetitiveBenchmarks CompetitiveBenchmarks `json:"competitiveBenchmarks"`
}

// ForecastResult é a resposta completa da previsão de 7 dias
type ForecastResult struct {
	ChartData      []ChartDataPoint `json:"chartData"`
	EstimatedReach EstimatedReach   `json:"estimatedReach"`
	Metrics        ForecastMetrics  `json:"metrics"`
}

// MetaData agrupa os dados coletados antes da otimização
type MetaData struct {
	StandardReach         StandardReach
	AudienceInsights      AudienceInsights
	CompetitiveBenchmarks CompetitiveBenchmarks
	ReachEstimate         ReachEstimate
}

// Industry lista as categorias conhecidas por uma tabela de referência
type Industry struct {
	Table      string   `json:"table"`
	Default    string   `json:"default"`
	Categories []string `json:"categories"`
}
