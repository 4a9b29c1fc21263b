package dispatch

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/resqnet/sos_coordination_system/internal/config"
	"github.com/sirupsen/logrus"
)

// AlertWorker drains the alert queue and delivers each alert to the push
// transport endpoint. Delivery is best-effort with bounded retries; the queue
// only decouples dispatch from transport, it is not a durability guarantee.
// Volunteers always have the pull path as fallback.
type AlertWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewAlertWorker creates a new AlertWorker.
func NewAlertWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *AlertWorker {
	return &AlertWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.AlertTimeout,
		},
	}
}

// Start launches the queue-draining goroutine. It stops when ctx is cancelled.
func (w *AlertWorker) Start(ctx context.Context) {
	w.logger.Info("Starting alert delivery worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping alert delivery worker.")
				return
			default:
				// BRPop with timeout 0 blocks until an alert arrives.
				result, err := w.redisClient.BRPop(ctx, 0, alertQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop alert from Redis")
					time.Sleep(w.cfg.AlertTimeout)
					continue
				}

				// result[0] is the key, result[1] the payload.
				payload := result[1]
				var alert Alert
				if err := json.Unmarshal([]byte(payload), &alert); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal alert from Redis")
					continue
				}

				w.deliverAlert(ctx, alert, payload)
			}
		}
	}()
}

func (w *AlertWorker) deliverAlert(ctx context.Context, alert Alert, rawPayload string) {
	log := w.logger.WithFields(logrus.Fields{
		"volunteer_id": alert.VolunteerID,
		"event_id":     alert.EventID,
		"category":     alert.Category,
	})
	log.Debug("Delivering volunteer alert...")

	if w.cfg.AlertWebhookURL == "" {
		log.Warn("Alert webhook URL is not configured. Volunteers rely on polling.")
		return
	}

	maxRetries := w.cfg.AlertMaxRetries
	delay := w.cfg.AlertBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, "POST", w.cfg.AlertWebhookURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create alert request. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")

		if w.cfg.AlertWebhookSecret != "" {
			signature := generateHMACSHA256(rawPayload, w.cfg.AlertWebhookSecret)
			req.Header.Set("X-Alert-Signature", signature)
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send alert. Retrying in %v. Retries left: %d", delay, maxRetries-1-i)
			time.Sleep(delay)
			delay *= 2
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Alert delivered successfully.")
			return
		}
		log.Warnf("Alert delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, delay, maxRetries-1-i)
		time.Sleep(delay)
		delay *= 2
	}

	// Undelivered alerts are dropped; the volunteer still sees the event on
	// the next poll of active events.
	log.Errorf("Failed to deliver alert after %d retries.", maxRetries)
}

// generateHMACSHA256 generates an HMAC-SHA256 signature for the payload.
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
