package metadomain

// CityTarget é uma cidade do targeting com raio em milhas
type CityTarget struct {
	Name         string `json:"name"`
	Radius       int    `json:"radius"`
	DistanceUnit string `json:"distance_unit"`
}

type GeoLocations struct {
	Cities []CityTarget `json:"cities"`
}

// TargetingSpec é serializado em JSON no parâmetro targeting_spec
type TargetingSpec struct {
	GeoLocations GeoLocations `json:"geo_locations"`
	AgeMin       int          `json:"age_min"`
	AgeMax       int          `json:"age_max"`
}

type ReachEstimate struct {
	UsersLowerBound int64 `json:"users_lower_bound"`
	UsersUpperBound int64 `json:"users_upper_bound"`
	EstimateReady   bool  `json:"estimate_ready"`
}
