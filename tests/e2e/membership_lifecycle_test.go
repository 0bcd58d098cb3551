// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package e2e

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
)

type organization struct {
	ID   string
	Name string
	Slug string
}

type profile struct {
	ID              string
	Email           string
	Role            string
	Organizations   map[string]string
	HasOrgAdminRole bool
}

type member struct {
	ID     string
	OrgID  string
	Email  string
	Role   string
	Status string
	UserID *string
}

func TestMembershipLifecycle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	adminID := fmt.Sprintf("e2e-admin-%s", uuid.NewString())
	if err := seedProfile(adminID, adminID+"@example.com", "superadmin"); err != nil {
		t.Fatalf("failed to seed superadmin: %v", err)
	}

	orgName := fmt.Sprintf("E2E Org %d", time.Now().UnixNano())
	var org organization

	t.Run("Create Organization", func(t *testing.T) {
		status, err := apiRequest(ctx, http.MethodPost, "/api/v0/organizations", adminID,
			map[string]string{"name": orgName}, &org)
		if err != nil {
			t.Fatalf("failed to create organization: %v", err)
		}
		if status != http.StatusCreated {
			t.Fatalf("expected status 201, got %d", status)
		}
		if org.ID == "" || org.Slug == "" {
			t.Fatalf("expected organization with ID and slug, got %+v", org)
		}
	})

	t.Run("List Organizations", func(t *testing.T) {
		var orgs []organization
		status, err := apiRequest(ctx, http.MethodGet, "/api/v0/organizations", adminID, nil, &orgs)
		if err != nil {
			t.Fatalf("failed to list organizations: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("expected status 200, got %d", status)
		}

		found := false
		for _, o := range orgs {
			if o.ID == org.ID {
				found = true
				if o.Name != orgName {
					t.Errorf("expected organization name %q, got %q", orgName, o.Name)
				}
			}
		}
		if !found {
			t.Errorf("created organization %s not found in list", org.ID)
		}
	})

	t.Run("Access Denied Without Identity", func(t *testing.T) {
		status, err := apiRequest(ctx, http.MethodGet, "/api/v0/organizations", "", nil, nil)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if status != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", status)
		}
	})

	t.Run("Access Denied Without Membership", func(t *testing.T) {
		outsider := fmt.Sprintf("e2e-outsider-%s", uuid.NewString())
		if err := seedProfile(outsider, outsider+"@example.com", "none"); err != nil {
			t.Fatalf("failed to seed outsider: %v", err)
		}

		status, err := apiRequest(ctx, http.MethodGet, "/api/v0/organizations", outsider, nil, nil)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if status != http.StatusForbidden {
			t.Errorf("expected status 403, got %d", status)
		}
	})

	inviteeID := fmt.Sprintf("e2e-invitee-%s", uuid.NewString())
	inviteeEmail := fmt.Sprintf("invitee-%s@example.com", uuid.NewString())

	t.Run("Invite Member", func(t *testing.T) {
		var out struct {
			Member member `json:"member"`
		}
		status, err := apiRequest(ctx, http.MethodPost,
			fmt.Sprintf("/api/v0/organizations/%s/members", org.ID), adminID,
			map[string]string{"email": inviteeEmail, "role": "user"}, &out)
		if err != nil {
			t.Fatalf("failed to invite member: %v", err)
		}
		if status != http.StatusCreated {
			t.Fatalf("expected status 201, got %d", status)
		}
		if out.Member.Status != "pending" {
			t.Errorf("expected pending invitation, got %q", out.Member.Status)
		}

		// A second invite for the same address must be rejected
		status, err = apiRequest(ctx, http.MethodPost,
			fmt.Sprintf("/api/v0/organizations/%s/members", org.ID), adminID,
			map[string]string{"email": inviteeEmail, "role": "user"}, nil)
		if err != nil {
			t.Fatalf("repeat invite request failed: %v", err)
		}
		if status != http.StatusConflict {
			t.Errorf("expected status 409 on repeat invite, got %d", status)
		}
	})

	t.Run("Sign In Claims Invitation", func(t *testing.T) {
		payload := map[string]any{
			"id": inviteeID,
			"traits": map[string]string{
				"email": inviteeEmail,
				"name":  "Invited User",
			},
		}
		status, err := apiRequest(ctx, http.MethodPost, "/webhooks/login", "", payload, nil)
		if err != nil {
			t.Fatalf("webhook request failed: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("expected status 200, got %d", status)
		}

		var p profile
		status, err = apiRequest(ctx, http.MethodGet, "/api/v0/profile", inviteeID, nil, &p)
		if err != nil {
			t.Fatalf("failed to fetch invitee profile: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("expected status 200, got %d", status)
		}
		if role := p.Organizations[org.ID]; role != "user" {
			t.Errorf("expected membership role user for %s, got %q", org.ID, role)
		}
	})

	t.Run("List Members", func(t *testing.T) {
		var members []member
		status, err := apiRequest(ctx, http.MethodGet,
			fmt.Sprintf("/api/v0/organizations/%s/members", org.ID), adminID, nil, &members)
		if err != nil {
			t.Fatalf("failed to list members: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("expected status 200, got %d", status)
		}

		found := false
		for _, m := range members {
			if m.Email == inviteeEmail {
				found = true
				if m.Status != "active" {
					t.Errorf("expected active membership, got %q", m.Status)
				}
				if m.UserID == nil || *m.UserID != inviteeID {
					t.Errorf("expected membership bound to %s, got %v", inviteeID, m.UserID)
				}
			}
		}
		if !found {
			t.Errorf("invited member %s not found in list", inviteeEmail)
		}
	})

	t.Run("Invitee Sees Organization", func(t *testing.T) {
		var orgs []organization
		status, err := apiRequest(ctx, http.MethodGet, "/api/v0/organizations", inviteeID, nil, &orgs)
		if err != nil {
			t.Fatalf("failed to list organizations as invitee: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("expected status 200, got %d", status)
		}
		if len(orgs) != 1 || orgs[0].ID != org.ID {
			t.Errorf("expected exactly the joined organization, got %+v", orgs)
		}
	})

	t.Run("Update Organization Settings", func(t *testing.T) {
		updatedName := orgName + " Updated"
		var updated organization
		status, err := apiRequest(ctx, http.MethodPatch,
			fmt.Sprintf("/api/v0/organizations/%s", org.ID), adminID,
			map[string]string{"name": updatedName}, &updated)
		if err != nil {
			t.Fatalf("failed to update organization: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("expected status 200, got %d", status)
		}
		if updated.Name != updatedName {
			t.Errorf("expected updated name %q, got %q", updatedName, updated.Name)
		}
	})
}
