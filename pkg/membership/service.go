// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

// Package membership resolves invitations into active memberships and keeps
// user profiles consistent with the invitation ledger.
package membership

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/wisdom-forms/forms-service/internal/logging"
	"github.com/wisdom-forms/forms-service/internal/monitoring"
	"github.com/wisdom-forms/forms-service/internal/storage"
	"github.com/wisdom-forms/forms-service/internal/tracing"
	"github.com/wisdom-forms/forms-service/internal/types"
)

type Service struct {
	storage  StorageInterface
	kratos   IdentityProviderInterface
	bus      BusInterface
	validate *validator.Validate

	inviteLifetime time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	kratos IdentityProviderInterface,
	bus BusInterface,
	inviteLifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:        storage,
		kratos:         kratos,
		bus:            bus,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		inviteLifetime: inviteLifetime,
		tracer:         tracer,
		monitor:        monitor,
		logger:         logger,
	}
}

// EnsureProfile returns the profile for the given identity, creating an
// empty one on first sign-in.
func (s *Service) EnsureProfile(ctx context.Context, identity *types.Identity) (*types.UserProfile, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.EnsureProfile")
	defer span.End()

	if identity == nil || identity.ID == "" {
		return nil, fmt.Errorf("identity is empty")
	}

	profile, err := s.storage.GetProfile(ctx, identity.ID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	profile, err = s.storage.CreateProfile(ctx, &types.UserProfile{
		ID:            identity.ID,
		Email:         strings.ToLower(identity.Email),
		DisplayName:   identity.DisplayName,
		Role:          types.RoleNone,
		Organizations: map[string]string{},
	})
	if err != nil {
		// Two sign-ins can race on first profile creation, the loser
		// reads the winner's row.
		if errors.Is(err, storage.ErrDuplicateKey) {
			return s.storage.GetProfile(ctx, identity.ID)
		}
		return nil, err
	}

	s.logger.Infof("created profile for user %s", identity.ID)
	return profile, nil
}

// Reconcile converts all pending invitations addressed to the identity's
// email into active memberships and folds them into the profile.
// Running it twice with no intervening invitations is a no-op the second time.
func (s *Service) Reconcile(ctx context.Context, identity *types.Identity) (*types.UserProfile, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.Reconcile")
	defer span.End()

	if identity == nil || identity.ID == "" || identity.Email == "" {
		return nil, fmt.Errorf("identity is missing an ID or email")
	}

	profile, err := s.EnsureProfile(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure profile: %w", err)
	}

	email := strings.ToLower(identity.Email)
	pending, err := s.storage.ListPendingMembersByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending invitations: %w", err)
	}

	if len(pending) == 0 {
		return profile, nil
	}

	ids := make([]string, 0, len(pending))
	merged := make(map[string]string, len(pending))
	hasAdmin := false
	for _, m := range pending {
		ids = append(ids, m.ID)
		merged[m.OrgID] = m.Role
		if m.Role == types.OrgRoleAdmin {
			hasAdmin = true
		}
	}

	if err := s.storage.ActivateMembers(ctx, ids, identity.ID); err != nil {
		return nil, fmt.Errorf("failed to activate memberships: %w", err)
	}

	if err := s.storage.MergeProfileMemberships(ctx, identity.ID, merged, hasAdmin); err != nil {
		return nil, fmt.Errorf("failed to merge memberships into profile: %w", err)
	}

	if err := s.bus.PublishProfileChanged(ctx, identity.ID); err != nil {
		s.logger.Warnf("failed to publish profile change for %s: %v", identity.ID, err)
	}

	s.logger.Infof("resolved %d invitation(s) for user %s", len(pending), identity.ID)

	return s.storage.GetProfile(ctx, identity.ID)
}

// ResolveSession looks up the signed-in identity and reconciles its pending
// invitations. This is the interactive login path, failures surface to the
// caller instead of being swallowed.
func (s *Service) ResolveSession(ctx context.Context, userID string) (*types.UserProfile, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.ResolveSession")
	defer span.End()

	identity, err := s.kratos.GetIdentity(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve identity %s: %w", userID, err)
	}

	return s.Reconcile(ctx, identity)
}

// GetProfile returns the stored profile for a user ID.
func (s *Service) GetProfile(ctx context.Context, userID string) (*types.UserProfile, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.GetProfile")
	defer span.End()

	return s.storage.GetProfile(ctx, userID)
}

// Invite records a pending membership for an email address. The inviter must
// administer the organization. Returns the created row and, when the email has
// no identity yet, a recovery link the invitee can use to set up an account.
func (s *Service) Invite(ctx context.Context, inviter *types.UserProfile, orgID, email, role string) (*types.OrgMember, string, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.Invite")
	defer span.End()

	if inviter == nil || (inviter.Role != types.RoleSuperadmin && inviter.Organizations[orgID] != types.OrgRoleAdmin) {
		subject := ""
		if inviter != nil {
			subject = inviter.ID
		}
		s.logger.Security().AuthzFailure(subject, "invite member to organization "+orgID)
		return nil, "", ErrUnauthorized
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, "", ErrInvalidEmail
	}

	if role != types.OrgRoleAdmin && role != types.OrgRoleUser {
		return nil, "", ErrInvalidRole
	}

	member, err := s.storage.CreateMember(ctx, &types.OrgMember{
		OrgID:     orgID,
		Email:     email,
		Role:      role,
		Status:    types.MemberStatusPending,
		InvitedBy: inviter.ID,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, "", ErrAlreadyInvited
		}
		return nil, "", fmt.Errorf("failed to create invitation: %w", err)
	}

	link := s.onboardInvitee(ctx, email)

	s.logger.Infof("user %s invited %s to organization %s as %s", inviter.ID, email, orgID, role)
	return member, link, nil
}

// onboardInvitee provisions an identity and recovery link for emails that are
// not known to the identity provider yet. Best effort, the invitation row is
// already committed and resolves on whichever sign-in eventually happens.
func (s *Service) onboardInvitee(ctx context.Context, email string) string {
	_, err := s.kratos.GetIdentityIDByEmail(ctx, email)
	if err == nil {
		return ""
	}

	identityID, err := s.kratos.CreateIdentity(ctx, email)
	if err != nil {
		s.logger.Warnf("failed to create identity for invitee %s: %v", email, err)
		return ""
	}

	link, _, err := s.kratos.CreateRecoveryLink(ctx, identityID, s.inviteLifetime.String())
	if err != nil {
		s.logger.Warnf("failed to create recovery link for invitee %s: %v", email, err)
		return ""
	}

	return link
}

// ListMembers returns every membership row of an organization.
func (s *Service) ListMembers(ctx context.Context, orgID string) ([]*types.OrgMember, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.ListMembers")
	defer span.End()

	return s.storage.ListMembersByOrgID(ctx, orgID)
}

// MigrationReport summarizes a legacy profile migration run.
type MigrationReport struct {
	Migrated int `json:"migrated"`
	Failed   int `json:"failed"`
}

// MigrateLegacyProfiles rewrites profiles that still carry the old direct
// organization ID list into the organizations map plus active membership rows.
// Safe to run repeatedly, already-migrated profiles are not selected again.
func (s *Service) MigrateLegacyProfiles(ctx context.Context, caller *types.UserProfile) (*MigrationReport, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.MigrateLegacyProfiles")
	defer span.End()

	if caller == nil || caller.Role != types.RoleSuperadmin {
		subject := ""
		if caller != nil {
			subject = caller.ID
		}
		s.logger.Security().AuthzFailure(subject, "run legacy profile migration")
		return nil, ErrUnauthorized
	}

	profiles, err := s.storage.ListLegacyProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list legacy profiles: %w", err)
	}

	report := &MigrationReport{}
	for _, p := range profiles {
		if err := s.migrateProfile(ctx, p); err != nil {
			s.logger.Errorf("failed to migrate profile %s: %v", p.ID, err)
			report.Failed++
			continue
		}
		report.Migrated++
	}

	s.logger.Infof("legacy migration finished, %d migrated, %d failed", report.Migrated, report.Failed)
	return report, nil
}

func (s *Service) migrateProfile(ctx context.Context, p *types.UserProfile) error {
	// Elevated global roles carry over as org admin on every legacy entry.
	role := types.OrgRoleUser
	if p.Role == types.RoleAdmin || p.Role == types.RoleSuperadmin {
		role = types.OrgRoleAdmin
	}

	orgs := make(map[string]string, len(p.LegacyOrgIDs))
	for _, orgID := range p.LegacyOrgIDs {
		orgs[orgID] = role

		userID := p.ID
		if _, err := s.storage.CreateMember(ctx, &types.OrgMember{
			OrgID:     orgID,
			Email:     p.Email,
			Role:      role,
			Status:    types.MemberStatusActive,
			UserID:    &userID,
			InvitedBy: p.ID,
		}); err != nil && !errors.Is(err, storage.ErrDuplicateKey) {
			return fmt.Errorf("failed to create membership row for org %s: %w", orgID, err)
		}
	}

	// One write per profile, and it must also drop the legacy org list so a
	// rerun does not pick the row up again.
	return s.storage.RewriteLegacyProfile(ctx, p.ID, orgs, role == types.OrgRoleAdmin)
}
