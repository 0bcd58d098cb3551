// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/wisdom-forms/forms-service/internal/types"
)

// MembershipInterface defines the reconciliation operations required by the
// webhooks package. It is a subset of the membership service.
type MembershipInterface interface {
	Reconcile(ctx context.Context, identity *types.Identity) (*types.UserProfile, error)
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleSignIn(ctx context.Context, identityID, email, displayName string) error
}
