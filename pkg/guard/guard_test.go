// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"testing"

	"github.com/wisdom-forms/forms-service/internal/types"
)

func TestDecide(t *testing.T) {
	testCases := []struct {
		name     string
		profile  *types.UserProfile
		loading  bool
		expected Decision
	}{
		{
			name:     "loading wins over everything",
			profile:  &types.UserProfile{ID: "user-1", Role: types.RoleSuperadmin},
			loading:  true,
			expected: Wait,
		},
		{
			name:     "no profile",
			profile:  nil,
			loading:  false,
			expected: DenyHome,
		},
		{
			name:     "profile without memberships",
			profile:  &types.UserProfile{ID: "user-1", Role: types.RoleNone},
			loading:  false,
			expected: DenyPending,
		},
		{
			name: "profile with membership",
			profile: &types.UserProfile{
				ID:            "user-1",
				Role:          types.RoleNone,
				Organizations: map[string]string{"org-1": types.OrgRoleUser},
			},
			loading:  false,
			expected: Allow,
		},
		{
			name:     "superadmin without memberships",
			profile:  &types.UserProfile{ID: "user-1", Role: types.RoleSuperadmin},
			loading:  false,
			expected: Allow,
		},
		{
			name: "legacy profile with direct organization ids",
			profile: &types.UserProfile{
				ID:           "user-1",
				Role:         types.RoleNone,
				LegacyOrgIDs: []string{"org-1"},
			},
			loading:  false,
			expected: Allow,
		},
		{
			name: "global admin role alone grants nothing",
			profile: &types.UserProfile{
				ID:   "user-1",
				Role: types.RoleAdmin,
			},
			loading:  false,
			expected: DenyPending,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Decide(tc.profile, tc.loading); got != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestCanManageOrganizations(t *testing.T) {
	testCases := []struct {
		name     string
		profile  *types.UserProfile
		expected bool
	}{
		{"nil profile", nil, false},
		{"plain user", &types.UserProfile{Role: types.RoleNone}, false},
		{"global admin", &types.UserProfile{Role: types.RoleAdmin}, true},
		{"superadmin", &types.UserProfile{Role: types.RoleSuperadmin}, true},
		{"org admin flag", &types.UserProfile{Role: types.RoleNone, HasOrgAdminRole: true}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanManageOrganizations(tc.profile); got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestIsOrgAdmin(t *testing.T) {
	profile := &types.UserProfile{
		ID:   "user-1",
		Role: types.RoleNone,
		Organizations: map[string]string{
			"org-1": types.OrgRoleAdmin,
			"org-2": types.OrgRoleUser,
		},
	}

	if !IsOrgAdmin(profile, "org-1") {
		t.Error("expected admin access to org-1")
	}
	if IsOrgAdmin(profile, "org-2") {
		t.Error("expected no admin access to org-2")
	}
	if IsOrgAdmin(profile, "org-3") {
		t.Error("expected no admin access to unknown organization")
	}
	if !IsOrgAdmin(&types.UserProfile{Role: types.RoleSuperadmin}, "org-3") {
		t.Error("expected superadmin to administer any organization")
	}
	if IsOrgAdmin(nil, "org-1") {
		t.Error("expected nil profile to administer nothing")
	}
}

func TestIsOrgMember(t *testing.T) {
	profile := &types.UserProfile{
		ID:            "user-1",
		Role:          types.RoleNone,
		Organizations: map[string]string{"org-1": types.OrgRoleUser},
		LegacyOrgIDs:  []string{"org-legacy"},
	}

	if !IsOrgMember(profile, "org-1") {
		t.Error("expected membership in org-1")
	}
	if !IsOrgMember(profile, "org-legacy") {
		t.Error("expected membership through legacy organization ids")
	}
	if IsOrgMember(profile, "org-2") {
		t.Error("expected no membership in org-2")
	}
}
