package domain

// Marker is one alert placed on the map, styled by its severity color and
// crime icon.
type Marker struct {
	AlertID   string  `json:"alert_id"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Color     string  `json:"color"`
	Icon      string  `json:"icon"`
	TimeBadge string  `json:"time_badge"`
	PopupHTML string  `json:"popup_html"`
}

// HeatPoint weights an alert position by severity/5, normalized 0..1.
type HeatPoint struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Intensity float64 `json:"intensity"`
}

type HeatOptions struct {
	Radius   int               `json:"radius"`
	Blur     int               `json:"blur"`
	MaxZoom  int               `json:"max_zoom"`
	Gradient map[string]string `json:"gradient"`
}

type MapView struct {
	Markers      []Marker    `json:"markers"`
	HeatPoints   []HeatPoint `json:"heat_points"`
	HeatOptions  HeatOptions `json:"heat_options"`
	VisibleCount int         `json:"visible_count"`
}
