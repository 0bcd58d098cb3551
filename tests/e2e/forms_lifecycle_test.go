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

type form struct {
	ID      string
	OrgID   string
	OrgSlug string
	Title   string
	Slug    string
	Status  string
}

type formResponse struct {
	ID     string
	FormID string
	OrgID  string
}

func TestFormsLifecycle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	adminID := fmt.Sprintf("e2e-forms-admin-%s", uuid.NewString())
	if err := seedProfile(adminID, adminID+"@example.com", "superadmin"); err != nil {
		t.Fatalf("failed to seed superadmin: %v", err)
	}

	var org organization
	status, err := apiRequest(ctx, http.MethodPost, "/api/v0/organizations", adminID,
		map[string]string{"name": fmt.Sprintf("Forms Org %d", time.Now().UnixNano())}, &org)
	if err != nil || status != http.StatusCreated {
		t.Fatalf("failed to create organization (status %d): %v", status, err)
	}

	title := fmt.Sprintf("Survey %d", time.Now().UnixNano())
	var created form

	t.Run("Create Form", func(t *testing.T) {
		payload := map[string]any{
			"title":  title,
			"status": "active",
			"fields": []map[string]any{
				{"type": "text", "label": "Your name"},
			},
		}
		status, err := apiRequest(ctx, http.MethodPost,
			fmt.Sprintf("/api/v0/organizations/%s/forms", org.ID), adminID, payload, &created)
		if err != nil {
			t.Fatalf("failed to create form: %v", err)
		}
		if status != http.StatusCreated {
			t.Fatalf("expected status 201, got %d", status)
		}
		if created.Slug == "" || created.OrgSlug != org.Slug {
			t.Fatalf("expected form with slug under %s, got %+v", org.Slug, created)
		}
	})

	t.Run("Public Catalog", func(t *testing.T) {
		var catalog []form
		status, err := apiRequest(ctx, http.MethodGet, "/api/v0/catalog", "", nil, &catalog)
		if err != nil {
			t.Fatalf("failed to fetch catalog: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("expected status 200, got %d", status)
		}

		found := false
		for _, f := range catalog {
			if f.ID == created.ID {
				found = true
			}
		}
		if !found {
			t.Errorf("active form %s not listed in public catalog", created.ID)
		}
	})

	t.Run("Submit Response Anonymously", func(t *testing.T) {
		var submitted formResponse
		status, err := apiRequest(ctx, http.MethodPost,
			fmt.Sprintf("/api/v0/catalog/%s/%s/responses", org.Slug, created.Slug), "",
			map[string]any{"answers": map[string]any{"Your name": "Ada"}}, &submitted)
		if err != nil {
			t.Fatalf("failed to submit response: %v", err)
		}
		if status != http.StatusCreated {
			t.Fatalf("expected status 201, got %d", status)
		}
		if submitted.FormID != created.ID {
			t.Errorf("expected response for form %s, got %s", created.ID, submitted.FormID)
		}
	})

	t.Run("List Responses", func(t *testing.T) {
		var responses []formResponse
		status, err := apiRequest(ctx, http.MethodGet,
			fmt.Sprintf("/api/v0/forms/%s/responses", created.ID), adminID, nil, &responses)
		if err != nil {
			t.Fatalf("failed to list responses: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("expected status 200, got %d", status)
		}
		if len(responses) != 1 {
			t.Fatalf("expected one response, got %d", len(responses))
		}
	})

	t.Run("Unknown Public Form", func(t *testing.T) {
		status, err := apiRequest(ctx, http.MethodGet,
			fmt.Sprintf("/api/v0/catalog/%s/no-such-form", org.Slug), "", nil, nil)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if status != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", status)
		}
	})
}
