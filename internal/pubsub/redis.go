// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package pubsub

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/wisdom-forms/forms-service/internal/logging"
	"github.com/wisdom-forms/forms-service/internal/monitoring"
	"github.com/wisdom-forms/forms-service/internal/tracing"
)

const profileChannelPrefix = "profile-changed:"

var _ BusInterface = (*Bus)(nil)

type Config struct {
	Addr     string
	Password string
	DB       int
}

// Bus fans out profile-change notifications over redis pub/sub so every
// running instance sees writes made by any other.
type Bus struct {
	client *redis.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewBus(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Bus, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Bus{
		client:  client,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}, nil
}

func (b *Bus) PublishProfileChanged(ctx context.Context, userID string) error {
	ctx, span := b.tracer.Start(ctx, "pubsub.Bus.PublishProfileChanged")
	defer span.End()

	if err := b.client.Publish(ctx, profileChannelPrefix+userID, "updated").Err(); err != nil {
		return fmt.Errorf("failed to publish profile change: %w", err)
	}
	return nil
}

// SubscribeProfile registers fn to run on every change to the given profile.
// The returned func tears the subscription down and is safe to call more
// than once.
func (b *Bus) SubscribeProfile(ctx context.Context, userID string, fn func()) (func(), error) {
	_, span := b.tracer.Start(ctx, "pubsub.Bus.SubscribeProfile")
	defer span.End()

	// The pubsub connection outlives the subscribing request's context.
	ps := b.client.Subscribe(context.Background(), profileChannelPrefix+userID)
	if _, err := ps.Receive(context.Background()); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("failed to subscribe to profile channel: %w", err)
	}

	done := make(chan struct{})
	go func() {
		ch := ps.Channel()
		for {
			select {
			case <-done:
				return
			case _, ok := <-ch:
				if !ok {
					return
				}
				fn()
			}
		}
	}()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			close(done)
			if err := ps.Close(); err != nil {
				b.logger.Errorf("failed to close profile subscription: %v", err)
			}
		})
	}

	return unsubscribe, nil
}

func (b *Bus) Close() {
	if err := b.client.Close(); err != nil {
		b.logger.Errorf("failed to close redis client: %v", err)
	}
}
