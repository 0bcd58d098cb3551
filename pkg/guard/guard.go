// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

// Package guard implements the access decision for administrative views.
// The decision function is pure so that route protection, post-login
// redirection and the pending-approval screen all derive the same answer
// from the same profile state.
package guard

import (
	"github.com/wisdom-forms/forms-service/internal/types"
)

type Decision int

const (
	// Wait means the profile is still being resolved, render nothing conclusive.
	Wait Decision = iota
	// DenyHome means there is no signed-in profile, send the caller to the home view.
	DenyHome
	// DenyPending means the profile exists but has no organization to go to yet.
	DenyPending
	// Allow grants access to the protected view.
	Allow
)

func (d Decision) String() string {
	switch d {
	case Wait:
		return "wait"
	case DenyHome:
		return "deny_home"
	case DenyPending:
		return "deny_pending"
	case Allow:
		return "allow"
	default:
		return "unknown"
	}
}

// Decide gates a protected view based on the resolved profile.
func Decide(profile *types.UserProfile, loading bool) Decision {
	if loading {
		return Wait
	}

	if profile == nil {
		return DenyHome
	}

	if !HasOrgMembership(profile) {
		return DenyPending
	}

	return Allow
}

// HasOrgMembership reports whether the profile has anywhere to go.
// Profiles written before the membership migration carry organization IDs
// in a plain list, those still count as membership.
func HasOrgMembership(profile *types.UserProfile) bool {
	if profile == nil {
		return false
	}

	if profile.Role == types.RoleSuperadmin {
		return true
	}

	if len(profile.Organizations) > 0 {
		return true
	}

	return len(profile.LegacyOrgIDs) > 0
}

// CanManageOrganizations reports whether the profile may create organizations
// or administer members.
func CanManageOrganizations(profile *types.UserProfile) bool {
	if profile == nil {
		return false
	}

	if profile.Role == types.RoleAdmin || profile.Role == types.RoleSuperadmin {
		return true
	}

	return profile.HasOrgAdminRole
}

// IsOrgAdmin reports whether the profile administers the given organization.
func IsOrgAdmin(profile *types.UserProfile, orgID string) bool {
	if profile == nil {
		return false
	}

	if profile.Role == types.RoleSuperadmin {
		return true
	}

	return profile.Organizations[orgID] == types.OrgRoleAdmin
}

// IsOrgMember reports whether the profile belongs to the given organization
// at any privilege.
func IsOrgMember(profile *types.UserProfile, orgID string) bool {
	if profile == nil {
		return false
	}

	if profile.Role == types.RoleSuperadmin {
		return true
	}

	if _, ok := profile.Organizations[orgID]; ok {
		return true
	}

	for _, id := range profile.LegacyOrgIDs {
		if id == orgID {
			return true
		}
	}

	return false
}
