// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/wisdom-forms/forms-service/internal/types"
)

type StorageInterface interface {
	// Profiles
	GetProfile(ctx context.Context, id string) (*types.UserProfile, error)
	CreateProfile(ctx context.Context, p *types.UserProfile) (*types.UserProfile, error)
	// MergeProfileMemberships folds the given org->role entries into the
	// profile's organizations map and raises has_org_admin_role when asked.
	// The flag is never lowered. One write per call.
	MergeProfileMemberships(ctx context.Context, id string, orgs map[string]string, hasOrgAdmin bool) error
	// RewriteLegacyProfile performs the same merge and additionally empties
	// the legacy organization_ids column, all in one write.
	RewriteLegacyProfile(ctx context.Context, id string, orgs map[string]string, hasOrgAdmin bool) error
	ListLegacyProfiles(ctx context.Context) ([]*types.UserProfile, error)

	// Organizations
	CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	ListOrganizations(ctx context.Context) ([]*types.Organization, error)
	ListOrganizationsByIDs(ctx context.Context, ids []string) ([]*types.Organization, error)
	UpdateOrganization(ctx context.Context, o *types.Organization, paths []string) (*types.Organization, error)

	// Membership ledger
	CreateMember(ctx context.Context, m *types.OrgMember) (*types.OrgMember, error)
	ListMembersByOrgID(ctx context.Context, orgID string) ([]*types.OrgMember, error)
	ListPendingMembersByEmail(ctx context.Context, email string) ([]*types.OrgMember, error)
	ActivateMembers(ctx context.Context, ids []string, userID string) error

	// Forms and responses
	CreateForm(ctx context.Context, f *types.Form) (*types.Form, error)
	GetFormByID(ctx context.Context, id string) (*types.Form, error)
	GetActiveFormBySlugs(ctx context.Context, orgSlug, formSlug string) (*types.Form, error)
	ListFormsByOrgID(ctx context.Context, orgID string) ([]*types.Form, error)
	ListActiveForms(ctx context.Context) ([]*types.Form, error)
	CountFormsBySlug(ctx context.Context, orgID, slug string) (int, error)
	CreateResponse(ctx context.Context, r *types.FormResponse) (*types.FormResponse, error)
	ListResponsesByFormID(ctx context.Context, formID string) ([]*types.FormResponse, error)
}
