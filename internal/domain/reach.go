package domain

// ReachEstimate é a estimativa bruta de alcance diário
type ReachEstimate struct {
	UsersLowerBound int     `json:"users_lower_bound"`
	UsersUpperBound int     `json:"users_upper_bound"`
	Ready           bool    `json:"estimate_ready"`
	CPM             float64 `json:"cpm,omitempty"`
	CTR             float64 `json:"ctr,omitempty"`
}

// Origens possíveis de uma estimativa de alcance
const (
	ReachSourceMeta      = "meta"
	ReachSourceHeuristic = "heuristic"
)

// ReachEstimateRequest carrega os parâmetros da consulta de alcance na plataforma de anúncios
type ReachEstimateRequest struct {
	Cities             []City
	BusinessType       string
	OptimizationGoal   string
	DailyBudgetInCents int64
}

// StandardReach é o alcance base, sem otimização
type StandardReach struct {
	Daily  int     `json:"daily"`
	Weekly int     `json:"weekly"`
	CPM    float64 `json:"cpm"`
	CTR    float64 `json:"ctr"`
}

// Improvements guarda os ganhos percentuais por dimensão
type Improvements struct {
	Targeting int `json:"targeting"`
	Creative  int `json:"creative"`
	Bidding   int `json:"bidding"`
	Overall   int `json:"overall"`
}

// OptimizationData é o alcance após os fatores de otimização
type OptimizationData struct {
	Daily        int          `json:"daily"`
	Weekly       int          `json:"weekly"`
	CPM          float64      `json:"cpm"`
	CTR          float64      `json:"ctr"`
	Improvements Improvements `json:"improvements"`
}
