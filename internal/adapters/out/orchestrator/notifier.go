// Package orchestrator implements the outbound webhook adapter that tells the
// fleet orchestrator which records a committed mutation touched. Delivery is
// fire-and-forget: the orchestrator reconciles any missed notification by
// polling the sync endpoints.
package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"fleet/internal/core/ports"

	"github.com/google/uuid"
)

const (
	requestTimeout = 3 * time.Second
	apiKeyHeader   = "X-Api-Key"
)

// notification is the webhook payload. Empty id groups are omitted so the
// orchestrator only sees the entity types a mutation actually touched.
type notification struct {
	NotificationID string  `json:"notificationId"`
	VehicleIDs     []int64 `json:"vehicleIds,omitempty"`
	MaintenanceIDs []int64 `json:"maintenanceIds,omitempty"`
	PartOrderIDs   []int64 `json:"partOrderIds,omitempty"`
}

// Notifier posts change notifications to the orchestrator webhook endpoint.
// Notify returns immediately: delivery happens on a background goroutine with
// its own timeout, and failures are logged and dropped.
type Notifier struct {
	url    string
	apiKey string
	client *http.Client
	logger *slog.Logger
	wg     sync.WaitGroup
}

// NewNotifier creates a webhook notifier targeting the given endpoint.
// The api key may be empty, in which case no auth header is sent.
func NewNotifier(url, apiKey string, logger *slog.Logger) *Notifier {
	return &Notifier{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: requestTimeout},
		logger: logger,
	}
}

// Notify sends the change set to the orchestrator without blocking the caller.
// Empty change sets are skipped entirely.
func (n *Notifier) Notify(ctx context.Context, changes ports.ChangeSet) {
	if changes.IsEmpty() {
		return
	}

	payload := notification{
		NotificationID: uuid.NewString(),
		VehicleIDs:     changes.VehicleIDs,
		MaintenanceIDs: changes.MaintenanceIDs,
		PartOrderIDs:   changes.PartOrderIDs,
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		// Detached from the request context so an already-finished HTTP
		// request does not cancel the delivery.
		deliveryCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), requestTimeout)
		defer cancel()

		if err := n.deliver(deliveryCtx, payload); err != nil {
			n.logger.Warn("orchestrator notification dropped",
				slog.String("notificationId", payload.NotificationID),
				slog.Any("error", err))
			return
		}

		n.logger.Debug("orchestrator notified",
			slog.String("notificationId", payload.NotificationID),
			slog.Int("vehicles", len(payload.VehicleIDs)),
			slog.Int("maintenances", len(payload.MaintenanceIDs)),
			slog.Int("partOrders", len(payload.PartOrderIDs)))
	}()
}

// Wait blocks until all in-flight deliveries finish. Called on shutdown and
// by tests.
func (n *Notifier) Wait() {
	n.wg.Wait()
}

func (n *Notifier) deliver(ctx context.Context, payload notification) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if n.apiKey != "" {
		req.Header.Set(apiKeyHeader, n.apiKey)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("orchestrator returned status %d", resp.StatusCode)
	}

	return nil
}

// NoopNotifier discards all change sets. Used when no orchestrator endpoint is
// configured.
type NoopNotifier struct{}

// NewNoopNotifier creates a notifier that drops everything.
func NewNoopNotifier() NoopNotifier {
	return NoopNotifier{}
}

// Notify does nothing.
func (NoopNotifier) Notify(context.Context, ports.ChangeSet) {}
