//go:build integration

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"innacri/internal/domain"
	"innacri/pkg/e"
)

var (
	testClient *goredis.Client
	tc         testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("6379/tcp"),
			wait.ForLog("Ready to accept connections"),
		).WithDeadline(60 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "6379/tcp")

	testClient = goredis.NewClient(&goredis.Options{
		Addr: fmt.Sprintf("%s:%s", host, mappedPort.Port()),
	})

	if err := testClient.Ping(ctx).Err(); err != nil {
		fmt.Println("redis ping:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	_ = testClient.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func flushDB(t *testing.T, ctx context.Context) {
	t.Helper()
	if err := testClient.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("flushdb: %v", err)
	}
}

func TestAlertBlob_GetMissing(t *testing.T) {
	ctx := context.Background()
	flushDB(t, ctx)

	blob := NewAlertBlob(&Redis{Client: testClient})

	alerts, ok, err := blob.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected ok=false for missing key")
	}
	if alerts != nil {
		t.Fatalf("expected nil alerts, got %+v", alerts)
	}
}

func TestAlertBlob_SetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	flushDB(t, ctx)

	blob := NewAlertBlob(&Redis{Client: testClient})

	want := []domain.Alert{
		{
			Type:        "robo",
			Severity:    3,
			Zona:        "Zona 1",
			Description: "Robo de celular",
			Lat:         14.63,
			Lng:         -90.51,
			Timestamp:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			Reports:     2,
			Status:      domain.AlertApproved,
			ReportedBy:  "Usuario1",
		},
		{
			Type:      "asalto",
			Severity:  5,
			Zona:      "Zona 18",
			Lat:       14.70,
			Lng:       -90.49,
			Timestamp: time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC),
			Status:    domain.AlertPending,
		},
	}

	if err := blob.Set(ctx, want); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := blob.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatalf("expected ok=true after set")
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\ngot=%+v\nwant=%+v", got, want)
	}
}

func TestAlertBlob_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	flushDB(t, ctx)

	blob := NewAlertBlob(&Redis{Client: testClient})

	first := []domain.Alert{{Type: "robo", Status: domain.AlertApproved}}
	second := []domain.Alert{{Type: "estafa", Status: domain.AlertPending}}

	if err := blob.Set(ctx, first); err != nil {
		t.Fatalf("set first: %v", err)
	}
	if err := blob.Set(ctx, second); err != nil {
		t.Fatalf("set second: %v", err)
	}

	got, ok, err := blob.Get(ctx)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0].Type != "estafa" {
		t.Fatalf("expected overwritten blob, got %+v", got)
	}
}

func TestAlertBlob_CorruptPayload(t *testing.T) {
	ctx := context.Background()
	flushDB(t, ctx)

	if err := testClient.Set(ctx, AlertsKey, "{not json", 0).Err(); err != nil {
		t.Fatalf("seed corrupt payload: %v", err)
	}

	blob := NewAlertBlob(&Redis{Client: testClient})

	_, _, err := blob.Get(ctx)
	if err == nil {
		t.Fatalf("expected error for corrupt payload")
	}
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("unexpected error type: %v", err)
	}
}

func TestFlags_TutorialSeen(t *testing.T) {
	ctx := context.Background()
	flushDB(t, ctx)

	flags := NewFlags(&Redis{Client: testClient})

	seen, err := flags.TutorialSeen(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen {
		t.Fatalf("expected seen=false initially")
	}

	if err := flags.SetTutorialSeen(ctx); err != nil {
		t.Fatalf("set: %v", err)
	}

	seen, err = flags.TutorialSeen(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !seen {
		t.Fatalf("expected seen=true after set")
	}
}

func TestWebhookQueue_FIFO(t *testing.T) {
	ctx := context.Background()
	flushDB(t, ctx)

	q := NewWebhookQueue(testClient, WebhookQueueKey)

	payloads := []domain.WebhookPayload{
		{Type: "robo", Zona: "Zona 1", Severity: 3},
		{Type: "asalto", Zona: "Zona 5", Severity: 4},
	}
	for _, p := range payloads {
		if err := q.Enqueue(ctx, p); err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}

	for i, want := range payloads {
		got, err := q.BRPop(ctx, time.Second)
		if err != nil {
			t.Fatalf("brpop %d: %v", i, err)
		}
		if got.Type != want.Type || got.Zona != want.Zona {
			t.Fatalf("order mismatch at %d: got=%+v want=%+v", i, got, want)
		}
	}
}

func TestWebhookQueue_EmptyTimeout(t *testing.T) {
	ctx := context.Background()
	flushDB(t, ctx)

	q := NewWebhookQueue(testClient, WebhookQueueKey)

	_, err := q.BRPop(ctx, 100*time.Millisecond)
	if !errors.Is(err, e.ErrWebHookEmpty) {
		t.Fatalf("expected ErrWebHookEmpty, got %v", err)
	}
}
