package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueNotifications = "jobs:notifications"

	// MaxDeliveryAttempts before a job lands in the DLQ.
	MaxDeliveryAttempts = 3
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// NotificationPayload references a stored notification to deliver.
type NotificationPayload struct {
	NotificationID uuid.UUID `json:"notification_id"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueNotification pushes a delivery job to Redis.
func (d *Dispatcher) EnqueueNotification(ctx context.Context, notificationID uuid.UUID) error {
	return d.enqueue(ctx, QueueNotifications, "notification", NotificationPayload{NotificationID: notificationID}, 0)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload any, attempts int) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(Job{Type: jobType, Payload: data, Attempts: attempts})
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// StartWorkerPool launches numWorkers goroutines consuming the notification
// queue. Each goroutine blocks on BRPOP, zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, numWorkers int, nw *NotificationWorker) {
	d := NewDispatcher(rdb)
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, d, nw, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, d *Dispatcher, nw *NotificationWorker, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop, waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueNotifications).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, d, nw, result[0], result[1])
		}
	}
}

func processJob(ctx context.Context, rdb *redis.Client, d *Dispatcher, nw *NotificationWorker, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	var perr error
	switch job.Type {
	case "notification":
		perr = nw.Process(ctx, job.Payload)
	default:
		log.Warn().Str("type", job.Type).Msg("unknown job type, dropping")
		return
	}

	if perr == nil {
		return
	}

	job.Attempts++
	if job.Attempts >= MaxDeliveryAttempts {
		SendToDLQ(ctx, rdb, queue, job.Type, job.Payload, perr.Error(), job.Attempts)
		return
	}

	log.Warn().
		Str("type", job.Type).
		Int("attempt", job.Attempts).
		Err(perr).
		Msg("job failed, re-enqueueing")
	if err := d.enqueue(ctx, queue, job.Type, json.RawMessage(job.Payload), job.Attempts); err != nil {
		log.Error().Err(err).Msg("failed to re-enqueue job")
	}
}
