package domain

type MapViewRequest struct {
	Types      []string `json:"types"`
	Severities []int    `json:"severities"`
}

type LocationUpdateRequest struct {
	Lat float64 `json:"lat" validate:"required,lat"`
	Lng float64 `json:"lng" validate:"required,lng"`
}

type NotificationSettingsRequest struct {
	Enabled bool `json:"enabled"`
}

type RegenerateRequest struct {
	Count int `json:"count" validate:"omitempty,min=1,max=500"`
}

type CatalogsResponse struct {
	CrimeTypes     []CrimeType     `json:"crime_types"`
	SeverityLevels []SeverityLevel `json:"severity_levels"`
	Zonas          []string        `json:"zonas"`
}
