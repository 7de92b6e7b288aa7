package store

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"innacri/internal/domain"

	"github.com/google/uuid"
)

// Sample data is jittered around the city center.
const (
	CenterLat = 14.6349
	CenterLng = -90.5069
	jitterDeg = 0.15
)

// GenerateSample replaces the collection with n synthetic alerts and
// persists the result. Status weights keep the majority of the sample
// immediately visible: 20% pending, 10% rejected, 70% approved.
func (s *Store) GenerateSample(ctx context.Context, n int) error {
	now := time.Now().UTC()
	alerts := make([]domain.Alert, 0, n)

	for i := 0; i < n; i++ {
		crime := domain.CrimeTypes[rand.IntN(len(domain.CrimeTypes))]
		severity := rand.IntN(5) + 1
		hoursAgo := rand.Float64() * 24

		status := domain.AlertApproved
		switch r := rand.Float64(); {
		case r < 0.2:
			status = domain.AlertPending
		case r < 0.3:
			status = domain.AlertRejected
		}

		situation := "Situación bajo control."
		if rand.Float64() > 0.5 {
			situation = "Requiere atención inmediata."
		}

		alerts = append(alerts, domain.Alert{
			ID:          uuid.New(),
			Type:        crime.ID,
			Severity:    severity,
			Zona:        domain.Zonas[rand.IntN(len(domain.Zonas))],
			Description: fmt.Sprintf("Reporte de %s en la zona. %s", strings.ToLower(crime.Name), situation),
			Lat:         CenterLat + (rand.Float64()-0.5)*jitterDeg,
			Lng:         CenterLng + (rand.Float64()-0.5)*jitterDeg,
			Timestamp:   now.Add(-time.Duration(hoursAgo * float64(time.Hour))),
			Verified:    rand.Float64() > 0.3,
			Reports:     rand.IntN(10) + 1,
			Status:      status,
			ReportedBy:  fmt.Sprintf("Usuario%d", rand.IntN(1000)),
		})
	}

	s.mu.Lock()
	s.alerts = alerts
	s.mu.Unlock()

	return s.Save(ctx)
}
