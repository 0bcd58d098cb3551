// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"

	"github.com/wisdom-forms/forms-service/internal/types"
)

// StorageInterface defines the storage operations required by the organizations package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	ListOrganizations(ctx context.Context) ([]*types.Organization, error)
	ListOrganizationsByIDs(ctx context.Context, ids []string) ([]*types.Organization, error)
	UpdateOrganization(ctx context.Context, o *types.Organization, paths []string) (*types.Organization, error)
	MergeProfileMemberships(ctx context.Context, id string, orgs map[string]string, hasOrgAdmin bool) error
}

// BusInterface defines the profile change notifications emitted when creating
// an organization changes the creator's memberships.
type BusInterface interface {
	PublishProfileChanged(ctx context.Context, userID string) error
}

// ServiceInterface defines the organization directory operations.
type ServiceInterface interface {
	ListVisible(ctx context.Context, profile *types.UserProfile) ([]*types.Organization, error)
	Create(ctx context.Context, creator *types.UserProfile, name, slug string) (*types.Organization, error)
	Get(ctx context.Context, profile *types.UserProfile, orgID string) (*types.Organization, error)
	UpdateSettings(ctx context.Context, profile *types.UserProfile, orgID string, name, imgbbAPIKey *string) (*types.Organization, error)
}
