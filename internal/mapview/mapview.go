package mapview

import (
	"fmt"
	"log/slog"
	"time"

	"innacri/internal/domain"
	"innacri/internal/filter"
	"innacri/internal/render"
)

const popupFragment = `<div class="alert-popup">` +
	`<h3>{{.Icon}} {{.TypeName}}</h3>` +
	`<p class="zona">{{.Zona}}</p>` +
	`<span class="severity-badge" style="background: {{.SeverityColor}}">{{.SeverityName}}</span>` +
	`<p>{{.Description}}</p>` +
	`<span>📊 {{.Reports}} reportes</span> <span>⏰ Hace {{.Age}}</span>` +
	`{{if .Verified}}<div class="verified">✓ Verificado</div>{{end}}` +
	`</div>`

type popupData struct {
	Icon          string
	TypeName      string
	Zona          string
	SeverityColor string
	SeverityName  string
	Description   string
	Reports       int
	Age           string
	Verified      bool
}

// Renderer reconciles the alert collection and a filter state into the map
// view model. Every call is a full rebuild: previous markers and heat data
// are discarded, never diffed. At tens of markers a rebuild is cheap and
// only happens on user-triggered changes.
type Renderer struct {
	fragments *render.Renderer
	logger    *slog.Logger
	now       func() time.Time
}

func NewRenderer(logger *slog.Logger) (*Renderer, error) {
	fragments, err := render.NewRenderer(map[string]string{
		"popup": popupFragment,
	})
	if err != nil {
		return nil, err
	}
	return &Renderer{
		fragments: fragments,
		logger:    logger,
		now:       time.Now,
	}, nil
}

func (r *Renderer) Render(alerts []domain.Alert, state *filter.State) domain.MapView {
	now := r.now()

	view := domain.MapView{
		Markers:    make([]domain.Marker, 0, len(alerts)),
		HeatPoints: make([]domain.HeatPoint, 0, len(alerts)),
		HeatOptions: domain.HeatOptions{
			Radius:  30,
			Blur:    25,
			MaxZoom: 17,
			Gradient: map[string]string{
				"0.0":  "#10b981",
				"0.25": "#f59e0b",
				"0.5":  "#ef4444",
				"1.0":  "#991b1b",
			},
		},
	}

	for _, a := range alerts {
		if !state.Matches(a) {
			continue
		}

		crime, _ := domain.CrimeTypeByID(a.Type)
		severity, _ := domain.SeverityByID(a.Severity)
		age := FormatAge(now.Sub(a.Timestamp))

		popup, err := r.fragments.Render("popup", popupData{
			Icon:          crime.Icon,
			TypeName:      crime.Name,
			Zona:          a.Zona,
			SeverityColor: severity.Color,
			SeverityName:  severity.Name,
			Description:   a.Description,
			Reports:       a.Reports,
			Age:           age,
			Verified:      a.Verified,
		})
		if err != nil {
			r.logger.Error("popup render failed",
				slog.String("alert_id", a.ID.String()),
				slog.Any("error", err),
			)
		}

		view.Markers = append(view.Markers, domain.Marker{
			AlertID:   a.ID.String(),
			Lat:       a.Lat,
			Lng:       a.Lng,
			Color:     severity.Color,
			Icon:      crime.Icon,
			TimeBadge: age,
			PopupHTML: popup,
		})

		view.HeatPoints = append(view.HeatPoints, domain.HeatPoint{
			Lat:       a.Lat,
			Lng:       a.Lng,
			Intensity: float64(a.Severity) / 5.0,
		})
	}

	view.VisibleCount = len(view.Markers)
	return view
}

// FormatAge renders a relative-age badge: minutes under an hour, hours
// under a day, whole days otherwise.
func FormatAge(d time.Duration) string {
	minutes := int(d.Minutes())
	hours := int(d.Hours())
	days := int(d.Hours() / 24)

	switch {
	case minutes < 60:
		return fmt.Sprintf("%dmin", minutes)
	case hours < 24:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dd", days)
	}
}
