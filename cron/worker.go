package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"camerastore/config"
	"camerastore/services/notification"
	"camerastore/services/tasks"
	"camerastore/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ImageDeleter removes a hosted image by its public ID.
type ImageDeleter interface {
	DeleteImage(ctx context.Context, publicID string) error
}

// StartWorker runs the background task server and returns it so the caller can shut it down.
func StartWorker(pub notification.EventPublisher, images ImageDeleter) *asynq.Server {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingEvent, HandleBookingEvent(pub))
	mux.HandleFunc(tasks.TypeImageDestroy, HandleImageDestroy(images))

	go func() {
		logger.Info("starting task worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Error("task worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("task worker gave up; background events will queue until restart")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()

	return srv
}

// HandleBookingEvent forwards a queued booking event to the publisher, keyed by event name.
func HandleBookingEvent(pub notification.EventPublisher) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.BookingEventPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("invalid booking event payload", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		if p.Event == "" || p.BookingID == "" {
			return fmt.Errorf("booking event missing event or bookingId: %w", asynq.SkipRetry)
		}

		if err := pub.Publish(ctx, p.Event, p); err != nil {
			utils.GetLogger().Warn("failed to publish booking event",
				zap.String("event", p.Event), zap.String("bookingId", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}

// HandleImageDestroy deletes an orphaned upload.
func HandleImageDestroy(images ImageDeleter) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ImageDestroyPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("invalid image destroy payload", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		if p.PublicID == "" {
			return fmt.Errorf("image destroy missing publicId: %w", asynq.SkipRetry)
		}

		if err := images.DeleteImage(ctx, p.PublicID); err != nil {
			utils.GetLogger().Warn("failed to delete orphaned image", zap.String("publicId", p.PublicID), zap.Error(err))
			return err
		}
		utils.GetLogger().Info("orphaned image deleted", zap.String("publicId", p.PublicID))
		return nil
	}
}
