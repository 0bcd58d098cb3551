// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package pubsub

import "context"

// BusInterface is the profile live-subscription mechanism. Subscribers get a
// callback on every remote change to the watched profile until the returned
// unsubscribe func is called.
type BusInterface interface {
	PublishProfileChanged(ctx context.Context, userID string) error
	SubscribeProfile(ctx context.Context, userID string, fn func()) (func(), error)
}
