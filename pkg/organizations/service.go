// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

// Package organizations implements the organization directory, the set of
// organizations a profile can see and act on.
package organizations

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/wisdom-forms/forms-service/internal/logging"
	"github.com/wisdom-forms/forms-service/internal/monitoring"
	"github.com/wisdom-forms/forms-service/internal/storage"
	"github.com/wisdom-forms/forms-service/internal/tracing"
	"github.com/wisdom-forms/forms-service/internal/types"
	"github.com/wisdom-forms/forms-service/pkg/guard"
)

// directoryBatchSize caps how many organization IDs a single lookup query
// may carry. Longer membership lists are split and the results concatenated.
const directoryBatchSize = 10

var (
	// ErrUnauthorized means the caller lacks the role required for the operation.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidName means the organization name produces an empty slug.
	ErrInvalidName = errors.New("organization name is invalid")
	// ErrSlugTaken means another organization already owns the slug.
	ErrSlugTaken = errors.New("organization slug is already taken")
)

var slugRunRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a name and collapses non-alphanumeric runs to hyphens.
func Slugify(name string) string {
	slug := slugRunRegex.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

type Service struct {
	storage StorageInterface
	bus     BusInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	bus BusInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		bus:     bus,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// ListVisible returns the organizations the profile belongs to, or every
// organization for a superadmin. Order across lookup batches is not
// guaranteed.
func (s *Service) ListVisible(ctx context.Context, profile *types.UserProfile) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.ListVisible")
	defer span.End()

	if profile == nil {
		return nil, ErrUnauthorized
	}

	if profile.Role == types.RoleSuperadmin {
		return s.storage.ListOrganizations(ctx)
	}

	ids := make([]string, 0, len(profile.Organizations))
	for id := range profile.Organizations {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		// Profiles written before the membership migration carry a plain
		// ID list instead of the organizations map.
		ids = append(ids, profile.LegacyOrgIDs...)
	}
	if len(ids) == 0 {
		return []*types.Organization{}, nil
	}

	orgs := make([]*types.Organization, 0, len(ids))
	for start := 0; start < len(ids); start += directoryBatchSize {
		end := start + directoryBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		batch, err := s.storage.ListOrganizationsByIDs(ctx, ids[start:end])
		if err != nil {
			return nil, fmt.Errorf("failed to list organizations: %w", err)
		}
		orgs = append(orgs, batch...)
	}

	return orgs, nil
}

// Create inserts a new organization. Unless the creator is a superadmin, the
// creator automatically becomes the organization's admin.
func (s *Service) Create(ctx context.Context, creator *types.UserProfile, name, slug string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.Create")
	defer span.End()

	if !guard.CanManageOrganizations(creator) {
		subject := ""
		if creator != nil {
			subject = creator.ID
		}
		s.logger.Security().AuthzFailure(subject, "create organization")
		return nil, ErrUnauthorized
	}

	if slug == "" {
		slug = name
	}
	slug = Slugify(slug)
	if slug == "" {
		return nil, ErrInvalidName
	}

	org, err := s.storage.CreateOrganization(ctx, &types.Organization{
		Name:      name,
		Slug:      slug,
		CreatedBy: creator.ID,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	if creator.Role != types.RoleSuperadmin {
		merge := map[string]string{org.ID: types.OrgRoleAdmin}
		if err := s.storage.MergeProfileMemberships(ctx, creator.ID, merge, true); err != nil {
			return nil, fmt.Errorf("failed to grant creator admin membership: %w", err)
		}
		if err := s.bus.PublishProfileChanged(ctx, creator.ID); err != nil {
			s.logger.Warnf("failed to publish profile change for %s: %v", creator.ID, err)
		}
	}

	s.logger.Infof("user %s created organization %s (%s)", creator.ID, org.ID, org.Slug)
	return org, nil
}

// Get returns a single organization the profile is a member of.
func (s *Service) Get(ctx context.Context, profile *types.UserProfile, orgID string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.Get")
	defer span.End()

	if !guard.IsOrgMember(profile, orgID) {
		return nil, ErrUnauthorized
	}

	return s.storage.GetOrganizationByID(ctx, orgID)
}

// UpdateSettings applies a partial update to an organization's settings.
// Nil fields are left untouched.
func (s *Service) UpdateSettings(ctx context.Context, profile *types.UserProfile, orgID string, name, imgbbAPIKey *string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.UpdateSettings")
	defer span.End()

	if !guard.IsOrgAdmin(profile, orgID) {
		subject := ""
		if profile != nil {
			subject = profile.ID
		}
		s.logger.Security().AuthzFailure(subject, "update settings of organization "+orgID)
		return nil, ErrUnauthorized
	}

	org := &types.Organization{ID: orgID}
	paths := []string{}
	if name != nil {
		org.Name = *name
		paths = append(paths, "name")
	}
	if imgbbAPIKey != nil {
		org.ImgbbAPIKey = *imgbbAPIKey
		paths = append(paths, "imgbb_api_key")
	}
	if len(paths) == 0 {
		return s.storage.GetOrganizationByID(ctx, orgID)
	}

	return s.storage.UpdateOrganization(ctx, org, paths)
}
