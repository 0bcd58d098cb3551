// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"context"

	"github.com/wisdom-forms/forms-service/internal/types"
)

// ProfileLoaderInterface is the subset of the storage layer the guard
// middleware needs to resolve a profile for the request.
type ProfileLoaderInterface interface {
	GetProfile(ctx context.Context, userID string) (*types.UserProfile, error)
}
