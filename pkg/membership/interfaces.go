// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"context"

	"github.com/wisdom-forms/forms-service/internal/types"
)

// StorageInterface defines the storage operations required by the membership package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	GetProfile(ctx context.Context, id string) (*types.UserProfile, error)
	CreateProfile(ctx context.Context, p *types.UserProfile) (*types.UserProfile, error)
	MergeProfileMemberships(ctx context.Context, id string, orgs map[string]string, hasOrgAdmin bool) error
	RewriteLegacyProfile(ctx context.Context, id string, orgs map[string]string, hasOrgAdmin bool) error
	ListLegacyProfiles(ctx context.Context) ([]*types.UserProfile, error)
	CreateMember(ctx context.Context, m *types.OrgMember) (*types.OrgMember, error)
	ListMembersByOrgID(ctx context.Context, orgID string) ([]*types.OrgMember, error)
	ListPendingMembersByEmail(ctx context.Context, email string) ([]*types.OrgMember, error)
	ActivateMembers(ctx context.Context, ids []string, userID string) error
}

// IdentityProviderInterface defines the Kratos admin operations required to
// resolve identities and onboard invited users.
type IdentityProviderInterface interface {
	GetIdentity(ctx context.Context, id string) (*types.Identity, error)
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateIdentity(ctx context.Context, email string) (string, error)
	CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error)
}

// BusInterface defines the profile change notifications the membership
// package emits and serves.
type BusInterface interface {
	PublishProfileChanged(ctx context.Context, userID string) error
	SubscribeProfile(ctx context.Context, userID string, fn func()) (func(), error)
}

// ServiceInterface defines the membership service operations.
type ServiceInterface interface {
	EnsureProfile(ctx context.Context, identity *types.Identity) (*types.UserProfile, error)
	Reconcile(ctx context.Context, identity *types.Identity) (*types.UserProfile, error)
	ResolveSession(ctx context.Context, userID string) (*types.UserProfile, error)
	GetProfile(ctx context.Context, userID string) (*types.UserProfile, error)
	Invite(ctx context.Context, inviter *types.UserProfile, orgID, email, role string) (*types.OrgMember, string, error)
	ListMembers(ctx context.Context, orgID string) ([]*types.OrgMember, error)
	MigrateLegacyProfiles(ctx context.Context, caller *types.UserProfile) (*MigrationReport, error)
}
