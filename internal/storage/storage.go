// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wisdom-forms/forms-service/internal/db"
	"github.com/wisdom-forms/forms-service/internal/logging"
	"github.com/wisdom-forms/forms-service/internal/monitoring"
	"github.com/wisdom-forms/forms-service/internal/tracing"
	"github.com/wisdom-forms/forms-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) GetProfile(ctx context.Context, id string) (*types.UserProfile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProfile")
	defer span.End()

	var p types.UserProfile
	var orgs, legacyIDs []byte

	err := s.db.Statement(ctx).
		Select("id", "email", "display_name", "role", "organizations", "organization_ids", "has_org_admin_role", "created_at").
		From("users").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&p.ID, &p.Email, &p.DisplayName, &p.Role, &orgs, &legacyIDs, &p.HasOrgAdminRole, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if err := decodeProfileColumns(&p, orgs, legacyIDs); err != nil {
		return nil, err
	}

	return &p, nil
}

func decodeProfileColumns(p *types.UserProfile, orgs, legacyIDs []byte) error {
	if err := json.Unmarshal(orgs, &p.Organizations); err != nil {
		return fmt.Errorf("failed to decode organizations map: %w", err)
	}
	if len(legacyIDs) > 0 {
		if err := json.Unmarshal(legacyIDs, &p.LegacyOrgIDs); err != nil {
			return fmt.Errorf("failed to decode legacy organization ids: %w", err)
		}
	}
	return nil
}

func (s *Storage) CreateProfile(ctx context.Context, p *types.UserProfile) (*types.UserProfile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProfile")
	defer span.End()

	if p.Role == "" {
		p.Role = types.RoleNone
	}
	if p.Organizations == nil {
		p.Organizations = map[string]string{}
	}

	orgs, err := json.Marshal(p.Organizations)
	if err != nil {
		return nil, fmt.Errorf("failed to encode organizations map: %w", err)
	}

	var created types.UserProfile
	var createdOrgs []byte
	err = s.db.Statement(ctx).
		Insert("users").
		Columns("id", "email", "display_name", "role", "organizations", "has_org_admin_role").
		Values(p.ID, p.Email, p.DisplayName, p.Role, orgs, p.HasOrgAdminRole).
		Suffix("RETURNING id, email, display_name, role, organizations, has_org_admin_role, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Email, &created.DisplayName, &created.Role, &createdOrgs, &created.HasOrgAdminRole, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert profile: %w", err)
	}

	if err := json.Unmarshal(createdOrgs, &created.Organizations); err != nil {
		return nil, fmt.Errorf("failed to decode organizations map: %w", err)
	}

	return &created, nil
}

func (s *Storage) MergeProfileMemberships(ctx context.Context, id string, orgs map[string]string, hasOrgAdmin bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.MergeProfileMemberships")
	defer span.End()

	if len(orgs) == 0 && !hasOrgAdmin {
		return nil
	}

	merged, err := json.Marshal(orgs)
	if err != nil {
		return fmt.Errorf("failed to encode organizations map: %w", err)
	}

	// jsonb || merges by key, last write wins; the OR keeps the admin flag monotonic.
	res, err := s.db.Statement(ctx).
		Update("users").
		Set("organizations", sq.Expr("organizations || ?::jsonb", merged)).
		Set("has_org_admin_role", sq.Expr("has_org_admin_role OR ?", hasOrgAdmin)).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to merge profile memberships: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) RewriteLegacyProfile(ctx context.Context, id string, orgs map[string]string, hasOrgAdmin bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.RewriteLegacyProfile")
	defer span.End()

	merged, err := json.Marshal(orgs)
	if err != nil {
		return fmt.Errorf("failed to encode organizations map: %w", err)
	}

	// Same merge as MergeProfileMemberships, plus emptying the legacy column
	// so ListLegacyProfiles stops returning the row.
	res, err := s.db.Statement(ctx).
		Update("users").
		Set("organizations", sq.Expr("organizations || ?::jsonb", merged)).
		Set("has_org_admin_role", sq.Expr("has_org_admin_role OR ?", hasOrgAdmin)).
		Set("organization_ids", sq.Expr("'[]'::jsonb")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to rewrite legacy profile: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) ListLegacyProfiles(ctx context.Context) ([]*types.UserProfile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLegacyProfiles")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "email", "display_name", "role", "organizations", "organization_ids", "has_org_admin_role", "created_at").
		From("users").
		Where("jsonb_array_length(organization_ids) > 0").
		Where("organizations = '{}'::jsonb")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list legacy profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*types.UserProfile
	for rows.Next() {
		var p types.UserProfile
		var orgs, legacyIDs []byte
		if err := rows.Scan(&p.ID, &p.Email, &p.DisplayName, &p.Role, &orgs, &legacyIDs, &p.HasOrgAdminRole, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		if err := decodeProfileColumns(&p, orgs, legacyIDs); err != nil {
			return nil, err
		}
		profiles = append(profiles, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return profiles, nil
}

func (s *Storage) CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrganization")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate organization ID: %w", err)
	}

	var created types.Organization
	err = s.db.Statement(ctx).
		Insert("organizations").
		Columns("id", "name", "slug", "created_by").
		Values(id.String(), o.Name, o.Slug, o.CreatedBy).
		Suffix("RETURNING id, name, slug, created_by, coalesce(imgbb_api_key, ''), created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.Slug, &created.CreatedBy, &created.ImgbbAPIKey, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert organization: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganizationByID")
	defer span.End()

	var o types.Organization
	err := s.db.Statement(ctx).
		Select("id", "name", "slug", "created_by", "coalesce(imgbb_api_key, '')", "created_at").
		From("organizations").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&o.ID, &o.Name, &o.Slug, &o.CreatedBy, &o.ImgbbAPIKey, &o.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &o, nil
}

func (s *Storage) ListOrganizations(ctx context.Context) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrganizations")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "name", "slug", "created_by", "coalesce(imgbb_api_key, '')", "created_at").
		From("organizations")

	return s.scanOrganizations(ctx, query)
}

func (s *Storage) ListOrganizationsByIDs(ctx context.Context, ids []string) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrganizationsByIDs")
	defer span.End()

	if len(ids) == 0 {
		return nil, nil
	}

	query := s.db.Statement(ctx).
		Select("id", "name", "slug", "created_by", "coalesce(imgbb_api_key, '')", "created_at").
		From("organizations").
		Where(sq.Eq{"id": ids})

	return s.scanOrganizations(ctx, query)
}

func (s *Storage) scanOrganizations(ctx context.Context, query sq.SelectBuilder) ([]*types.Organization, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	var orgs []*types.Organization
	for rows.Next() {
		var o types.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.Slug, &o.CreatedBy, &o.ImgbbAPIKey, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		orgs = append(orgs, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return orgs, nil
}

// UpdateOrganization updates the fields named in paths, PATCH style, and
// returns the resulting row.
func (s *Storage) UpdateOrganization(ctx context.Context, o *types.Organization, paths []string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateOrganization")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = o.Name
		case "imgbb_api_key":
			updateMap["imgbb_api_key"] = o.ImgbbAPIKey
		}
	}

	if len(updateMap) == 0 {
		return s.GetOrganizationByID(ctx, o.ID)
	}

	var updated types.Organization
	err := s.db.Statement(ctx).
		Update("organizations").
		SetMap(updateMap).
		Where(sq.Eq{"id": o.ID}).
		Suffix("RETURNING id, name, slug, created_by, coalesce(imgbb_api_key, ''), created_at").
		QueryRowContext(ctx).
		Scan(&updated.ID, &updated.Name, &updated.Slug, &updated.CreatedBy, &updated.ImgbbAPIKey, &updated.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return &updated, nil
}

func (s *Storage) CreateMember(ctx context.Context, m *types.OrgMember) (*types.OrgMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMember")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate member ID: %w", err)
	}

	var created types.OrgMember
	err = s.db.Statement(ctx).
		Insert("org_members").
		Columns("id", "org_id", "email", "role", "status", "user_id", "invited_by").
		Values(id.String(), m.OrgID, m.Email, m.Role, m.Status, m.UserID, m.InvitedBy).
		Suffix("RETURNING id, org_id, email, role, status, user_id, invited_by, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.OrgID, &created.Email, &created.Role, &created.Status, &created.UserID, &created.InvitedBy, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert member: %w", err)
	}

	return &created, nil
}

func (s *Storage) ListMembersByOrgID(ctx context.Context, orgID string) ([]*types.OrgMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByOrgID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "org_id", "email", "role", "status", "user_id", "invited_by", "created_at").
		From("org_members").
		Where(sq.Eq{"org_id": orgID}).
		OrderBy("created_at")

	return s.scanMembers(ctx, query)
}

func (s *Storage) ListPendingMembersByEmail(ctx context.Context, email string) ([]*types.OrgMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPendingMembersByEmail")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "org_id", "email", "role", "status", "user_id", "invited_by", "created_at").
		From("org_members").
		Where(sq.Eq{
			"email":  email,
			"status": types.MemberStatusPending,
		}).
		OrderBy("created_at")

	return s.scanMembers(ctx, query)
}

func (s *Storage) scanMembers(ctx context.Context, query sq.SelectBuilder) ([]*types.OrgMember, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.OrgMember
	for rows.Next() {
		var m types.OrgMember
		if err := rows.Scan(&m.ID, &m.OrgID, &m.Email, &m.Role, &m.Status, &m.UserID, &m.InvitedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// ActivateMembers flips the given pending rows to active and binds them to
// the user ID in a single statement.
func (s *Storage) ActivateMembers(ctx context.Context, ids []string, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ActivateMembers")
	defer span.End()

	if len(ids) == 0 {
		return nil
	}

	_, err := s.db.Statement(ctx).
		Update("org_members").
		Set("status", types.MemberStatusActive).
		Set("user_id", userID).
		Where(sq.Eq{
			"id":     ids,
			"status": types.MemberStatusPending,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to activate members: %w", err)
	}

	return nil
}
