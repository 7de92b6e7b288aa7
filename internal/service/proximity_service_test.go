package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"innacri/internal/domain"
	"innacri/internal/monitor"
	"innacri/internal/notify"
	"innacri/internal/service"
	"innacri/internal/storage/memory"
	"innacri/internal/store"
	"innacri/pkg/e"

	"github.com/google/uuid"
)

func newProximityService(t *testing.T) (service.ProximityService, *monitor.Monitor) {
	t.Helper()

	logger := newTestLogger()
	st := store.NewStore(memory.NewBlob(), logger)
	presenter := notify.NewPresenter(logger, nil, 0.5)
	mon := monitor.NewMonitor(st, presenter, 0.5, 10*time.Second, logger)
	sim := monitor.NewSimulator(st, presenter, time.Hour, logger)

	svc := service.NewProximityService(context.Background(), mon, sim, presenter, logger)
	return svc, mon
}

func TestProximityService_UpdateLocation_OK(t *testing.T) {
	t.Parallel()

	svc, mon := newProximityService(t)

	err := svc.UpdateLocation(context.Background(), domain.LocationUpdateRequest{Lat: 14.61, Lng: -90.52})
	if err != nil {
		t.Fatalf("UpdateLocation: %v", err)
	}

	lat, lng := mon.Location()
	if lat != 14.61 || lng != -90.52 {
		t.Fatalf("monitor location = (%v, %v), want (14.61, -90.52)", lat, lng)
	}
}

func TestProximityService_UpdateLocation_RejectsBadCoordinates(t *testing.T) {
	t.Parallel()

	svc, mon := newProximityService(t)

	bad := []domain.LocationUpdateRequest{
		{Lat: 91, Lng: 0},
		{Lat: -91, Lng: 0},
		{Lat: 0, Lng: 181},
		{Lat: 0, Lng: -181},
	}

	for _, req := range bad {
		if err := svc.UpdateLocation(context.Background(), req); !errors.Is(err, e.ErrInvalidCoordinates) {
			t.Fatalf("expected ErrInvalidCoordinates for %+v, got %v", req, err)
		}
	}

	// Monitor keeps its default location after rejected updates.
	lat, lng := mon.Location()
	if lat != 14.6349 || lng != -90.5069 {
		t.Fatalf("monitor location changed after invalid update: (%v, %v)", lat, lng)
	}
}

func TestProximityService_SetNotifications(t *testing.T) {
	t.Parallel()

	svc, mon := newProximityService(t)

	svc.SetNotifications(true)
	if !mon.Enabled() {
		t.Fatal("monitor must be enabled")
	}
	svc.SetNotifications(false)
	if mon.Enabled() {
		t.Fatal("monitor must be disabled")
	}
}

func TestProximityService_Demo(t *testing.T) {
	t.Parallel()

	svc, _ := newProximityService(t)

	n := svc.Demo(context.Background())
	if n.TypeName != "Robo" || n.Zona != "Zona 5 - Centro Cívico" {
		t.Fatalf("unexpected demo notification: %+v", n)
	}
	if n.Distance != "menos de 0.5km" {
		t.Fatalf("demo distance = %q", n.Distance)
	}

	active := svc.Notifications()
	if len(active) != 1 || active[0].ID != n.ID {
		t.Fatalf("demo notification missing from feed: %+v", active)
	}
}

func TestProximityService_Dismiss(t *testing.T) {
	t.Parallel()

	svc, _ := newProximityService(t)

	n := svc.Demo(context.Background())
	if err := svc.Dismiss(n.ID); err != nil {
		t.Fatalf("Dismiss: %v", err)
	}
	if err := svc.Dismiss(uuid.New()); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestProximityService_ToggleSimulation(t *testing.T) {
	t.Parallel()

	svc, _ := newProximityService(t)

	if !svc.ToggleSimulation() {
		t.Fatal("first toggle must start the simulation")
	}
	if svc.ToggleSimulation() {
		t.Fatal("second toggle must stop the simulation")
	}
}
