// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Role values for the global profile role. Organization-level roles are
// tracked separately in UserProfile.Organizations.
const (
	RoleNone       = "none"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// Organization-membership roles.
const (
	OrgRoleAdmin = "admin"
	OrgRoleUser  = "user"
)

// Membership record statuses.
const (
	MemberStatusPending = "pending"
	MemberStatusActive  = "active"
)

// Form statuses.
const (
	FormStatusDraft  = "draft"
	FormStatusActive = "active"
)

// Identity is the authenticated principal as resolved from the external
// auth provider. Not owned by this service.
type Identity struct {
	ID          string
	Email       string
	DisplayName string
}

// UserProfile is the per-identity profile document, keyed by the identity ID.
// Organizations maps organization ID to the membership role and is the
// authoritative record of access; entries are merged in, never removed.
// LegacyOrgIDs carries the pre-migration representation and is only read
// as a fallback by the authorization guard.
type UserProfile struct {
	ID              string            `db:"id"`
	Email           string            `db:"email"`
	DisplayName     string            `db:"display_name"`
	Role            string            `db:"role"`
	Organizations   map[string]string `db:"organizations"`
	LegacyOrgIDs    []string          `db:"organization_ids"`
	HasOrgAdminRole bool              `db:"has_org_admin_role"`
	CreatedAt       time.Time         `db:"created_at"`
}

type Organization struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Slug        string    `db:"slug"`
	CreatedBy   string    `db:"created_by"`
	ImgbbAPIKey string    `db:"imgbb_api_key"`
	CreatedAt   time.Time `db:"created_at"`
}

// OrgMember is one invitation/membership ledger row. The row is created
// pending with a nil user ID and transitions to active exactly once, when
// an identity with a matching email signs in.
type OrgMember struct {
	ID        string    `db:"id"`
	OrgID     string    `db:"org_id"`
	Email     string    `db:"email"`
	Role      string    `db:"role"`
	Status    string    `db:"status"`
	UserID    *string   `db:"user_id"`
	InvitedBy string    `db:"invited_by"`
	CreatedAt time.Time `db:"created_at"`
}

type Form struct {
	ID          string                   `db:"id"`
	OrgID       string                   `db:"org_id"`
	OrgSlug     string                   `db:"org_slug"`
	Title       string                   `db:"title"`
	Description string                   `db:"description"`
	Slug        string                   `db:"slug"`
	Fields      []map[string]interface{} `db:"fields"`
	Status      string                   `db:"status"`
	CreatedBy   string                   `db:"created_by"`
	CreatedAt   time.Time                `db:"created_at"`
}

type FormResponse struct {
	ID          string                 `db:"id"`
	FormID      string                 `db:"form_id"`
	OrgID       string                 `db:"org_id"`
	Answers     map[string]interface{} `db:"answers"`
	SubmittedAt time.Time              `db:"submitted_at"`
}
