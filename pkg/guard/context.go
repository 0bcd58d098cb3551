// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"context"

	"github.com/wisdom-forms/forms-service/internal/types"
)

type contextKey struct{}

var profileContextKey = contextKey{}

// WithProfile returns a new context carrying the resolved profile.
func WithProfile(ctx context.Context, profile *types.UserProfile) context.Context {
	return context.WithValue(ctx, profileContextKey, profile)
}

// ProfileFromContext retrieves the resolved profile from the context.
// Returns nil and false if no profile was resolved for this request.
func ProfileFromContext(ctx context.Context) (*types.UserProfile, bool) {
	profile, ok := ctx.Value(profileContextKey).(*types.UserProfile)
	return profile, ok
}
