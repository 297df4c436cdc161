package orchestrator_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"fleet/internal/adapters/out/orchestrator"
	"fleet/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	body   []byte
	apiKey string
}

// startWebhookServer records every request the notifier delivers.
func startWebhookServer(t *testing.T, status int) (*httptest.Server, func() []capturedRequest) {
	t.Helper()

	var mu sync.Mutex
	var captured []capturedRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		mu.Lock()
		captured = append(captured, capturedRequest{
			body:   body,
			apiKey: r.Header.Get("X-Api-Key"),
		})
		mu.Unlock()

		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)

	return server, func() []capturedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]capturedRequest(nil), captured...)
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotifier_Notify_DeliversChangeSet(t *testing.T) {
	// Arrange
	server, requests := startWebhookServer(t, http.StatusOK)
	notifier := orchestrator.NewNotifier(server.URL, "secret-key", testLogger())
	changes := ports.ChangeSet{
		VehicleIDs:     []int64{7},
		MaintenanceIDs: []int64{3},
		PartOrderIDs:   []int64{11, 12},
	}

	// Act
	notifier.Notify(t.Context(), changes)
	notifier.Wait()

	// Assert
	delivered := requests()
	require.Len(t, delivered, 1)
	assert.Equal(t, "secret-key", delivered[0].apiKey)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(delivered[0].body, &payload))
	assert.NotEmpty(t, payload["notificationId"])
	assert.Equal(t, []any{float64(7)}, payload["vehicleIds"])
	assert.Equal(t, []any{float64(3)}, payload["maintenanceIds"])
	assert.Equal(t, []any{float64(11), float64(12)}, payload["partOrderIds"])
}

func TestNotifier_Notify_OmitsEmptyIDGroups(t *testing.T) {
	// Arrange
	server, requests := startWebhookServer(t, http.StatusOK)
	notifier := orchestrator.NewNotifier(server.URL, "", testLogger())

	// Act
	notifier.Notify(t.Context(), ports.ChangeSet{VehicleIDs: []int64{7}})
	notifier.Wait()

	// Assert
	delivered := requests()
	require.Len(t, delivered, 1)
	assert.Empty(t, delivered[0].apiKey, "No auth header without an api key")

	var payload map[string]any
	require.NoError(t, json.Unmarshal(delivered[0].body, &payload))
	assert.Contains(t, payload, "vehicleIds")
	assert.NotContains(t, payload, "maintenanceIds")
	assert.NotContains(t, payload, "partOrderIds")
}

func TestNotifier_Notify_SkipsEmptyChangeSet(t *testing.T) {
	// Arrange
	server, requests := startWebhookServer(t, http.StatusOK)
	notifier := orchestrator.NewNotifier(server.URL, "", testLogger())

	// Act
	notifier.Notify(t.Context(), ports.ChangeSet{})
	notifier.Wait()

	// Assert
	assert.Empty(t, requests())
}

func TestNotifier_Notify_SwallowsDeliveryFailure(t *testing.T) {
	// Arrange
	server, requests := startWebhookServer(t, http.StatusInternalServerError)
	notifier := orchestrator.NewNotifier(server.URL, "", testLogger())

	// Act: a failing endpoint must not surface to the caller
	notifier.Notify(t.Context(), ports.ChangeSet{VehicleIDs: []int64{7}})
	notifier.Wait()

	// Assert: the request was attempted, the failure was dropped
	assert.Len(t, requests(), 1)
}

func TestNotifier_Notify_UnreachableEndpoint(t *testing.T) {
	// Arrange
	notifier := orchestrator.NewNotifier("http://127.0.0.1:1/webhook", "", testLogger())

	// Act & Assert: no panic, Wait returns
	notifier.Notify(t.Context(), ports.ChangeSet{MaintenanceIDs: []int64{3}})
	notifier.Wait()
}

func TestNotifier_Notify_EachDeliveryGetsOwnNotificationID(t *testing.T) {
	// Arrange
	server, requests := startWebhookServer(t, http.StatusOK)
	notifier := orchestrator.NewNotifier(server.URL, "", testLogger())

	// Act
	notifier.Notify(t.Context(), ports.ChangeSet{VehicleIDs: []int64{1}})
	notifier.Notify(t.Context(), ports.ChangeSet{VehicleIDs: []int64{2}})
	notifier.Wait()

	// Assert
	delivered := requests()
	require.Len(t, delivered, 2)

	ids := make(map[string]struct{}, 2)
	for _, r := range delivered {
		var payload map[string]any
		require.NoError(t, json.Unmarshal(r.body, &payload))
		id, ok := payload["notificationId"].(string)
		require.True(t, ok)
		ids[id] = struct{}{}
	}
	assert.Len(t, ids, 2)
}
