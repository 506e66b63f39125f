package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_locator/internal/config"
	"github.com/shenikar/emergency_locator/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestWorker создает воркер без Redis: в тестах проверяется только доставка
func newTestWorker(cfg *config.Config) *EventWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	w := NewEventWorker(nil, logger, cfg)
	w.sleep = func(context.Context, time.Duration) {}
	w.requeue = func(string) error { return nil }
	return w
}

func testEventPayload(t *testing.T) (ServiceEvent, string) {
	event := ServiceEvent{
		Action:      ActionCreated,
		ServiceID:   uuid.New(),
		ServiceType: models.ServiceTypeHospital,
		Name:        "St. James's Hospital",
		Timestamp:   time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return event, string(payload)
}

func TestProcessEvent_DeliversSignedPayload(t *testing.T) {
	event, payload := testEventPayload(t)
	var gotBody, gotSignature string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get(signatureHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     "top-secret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
	})

	w.processEvent(context.Background(), event, payload)

	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "top-secret"), gotSignature)
}

func TestProcessEvent_RetriesOnServerError(t *testing.T) {
	event, payload := testEventPayload(t)
	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 5,
		WebhookBaseDelay:  time.Millisecond,
	})

	w.processEvent(context.Background(), event, payload)

	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestProcessEvent_GivesUpAfterMaxRetries(t *testing.T) {
	event, payload := testEventPayload(t)
	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
	})

	w.processEvent(context.Background(), event, payload)

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestProcessEvent_RequeuesOnShutdown(t *testing.T) {
	event, payload := testEventPayload(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cancel() // Сигнал остановки приходит во время доставки
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
	})
	var requeued []string
	w.requeue = func(p string) error {
		requeued = append(requeued, p)
		return nil
	}

	w.processEvent(ctx, event, payload)

	assert.Equal(t, []string{payload}, requeued)
}

func TestProcessEvent_NoRequeueAfterFailedRetries(t *testing.T) {
	event, payload := testEventPayload(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
	})
	requeued := 0
	w.requeue = func(string) error {
		requeued++
		return nil
	}

	w.processEvent(context.Background(), event, payload)

	assert.Zero(t, requeued)
}

func TestProcessEvent_SkipsWithoutURL(t *testing.T) {
	event, payload := testEventPayload(t)
	w := newTestWorker(&config.Config{WebhookTimeout: time.Second})

	// Без URL запрос не отправляется и паники нет
	w.processEvent(context.Background(), event, payload)
}

func TestGenerateHMACSHA256(t *testing.T) {
	// Контрольное значение HMAC-SHA256("key", "The quick brown fox jumps over the lazy dog")
	got := generateHMACSHA256("The quick brown fox jumps over the lazy dog", "key")
	assert.Equal(t, "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8", got)
}
