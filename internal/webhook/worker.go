package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_locator/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	signatureHeader = "X-Webhook-Signature"
	popTimeout      = 5 * time.Second
	requeueTimeout  = 2 * time.Second
)

// EventWorker - забирает события из очереди Redis и доставляет их на вебхук
type EventWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	sleep       func(ctx context.Context, d time.Duration)
	requeue     func(payload string) error
}

// NewEventWorker создает новый EventWorker
func NewEventWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *EventWorker {
	w := &EventWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		sleep: sleepCtx,
	}
	w.requeue = w.pushBack
	return w
}

// Start запускает горутину обработки очереди. Возвращаемый канал закрывается после остановки.
func (w *EventWorker) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	w.logger.Info("Starting service event worker...")
	go func() {
		defer close(done)
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping service event worker.")
				return
			}

			// Конечный таймаут, чтобы периодически проверять отмену контекста
			result, err := w.redisClient.BRPop(ctx, popTimeout, eventQueueKey).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop service event from Redis")
				w.sleep(ctx, w.cfg.WebhookTimeout)
				continue
			}

			// result[0] - ключ, result[1] - значение
			payload := result[1]
			var event ServiceEvent
			if err := json.Unmarshal([]byte(payload), &event); err != nil {
				w.logger.WithError(err).Error("Failed to unmarshal service event from Redis")
				continue
			}

			w.processEvent(ctx, event, payload)
		}
	}()
	return done
}

func (w *EventWorker) processEvent(ctx context.Context, event ServiceEvent, rawPayload string) {
	log := w.logger.WithField("service_id", event.ServiceID).WithField("action", event.Action)
	log.Debug("Processing service event...")

	if w.cfg.WebhookURL == "" {
		log.Debug("Webhook URL is not configured. Skipping delivery.")
		return
	}

	maxRetries := w.cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		err := w.deliver(ctx, rawPayload)
		if err == nil {
			log.Info("Webhook delivered successfully.")
			return
		}
		if ctx.Err() != nil {
			log.WithError(err).Warn("Webhook delivery interrupted by shutdown, returning event to queue")
			if err := w.requeue(rawPayload); err != nil {
				log.WithError(err).Error("Failed to return service event to Redis, event is lost")
			}
			return
		}

		log.WithError(err).Warnf("Webhook delivery failed. Retrying in %v. Retries left: %d", delay, maxRetries-1-i)
		if i < maxRetries-1 {
			w.sleep(ctx, delay)
			delay *= 2 // Экспоненциальная задержка
		}
	}

	log.Errorf("Failed to deliver webhook for event after %d attempts.", maxRetries)
}

// pushBack возвращает событие в хвост очереди, откуда его снова заберет BRPOP.
// Контекст воркера к этому моменту уже отменен, поэтому используется отдельный таймаут.
func (w *EventWorker) pushBack(payload string) error {
	ctx, cancel := context.WithTimeout(context.Background(), requeueTimeout)
	defer cancel()
	return w.redisClient.RPush(ctx, eventQueueKey, payload).Err()
}

// deliver выполняет одну попытку POST-запроса на вебхук
func (w *EventWorker) deliver(ctx context.Context, rawPayload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(signatureHeader, generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}
	return nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
