// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

// Package forms implements form building, the public catalog and response
// collection.
package forms

import (
	"context"
	"errors"
	"fmt"

	"github.com/wisdom-forms/forms-service/internal/logging"
	"github.com/wisdom-forms/forms-service/internal/monitoring"
	"github.com/wisdom-forms/forms-service/internal/tracing"
	"github.com/wisdom-forms/forms-service/internal/types"
	"github.com/wisdom-forms/forms-service/pkg/guard"
	"github.com/wisdom-forms/forms-service/pkg/organizations"
)

var (
	// ErrUnauthorized means the caller is not a member of the form's organization.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidTitle means the form title produces an empty slug.
	ErrInvalidTitle = errors.New("form title is invalid")
	// ErrSlugTaken means the organization already has a form with this slug.
	ErrSlugTaken = errors.New("a form with this title already exists in the organization")
	// ErrInvalidStatus means the form status is not a known value.
	ErrInvalidStatus = errors.New("invalid form status")
	// ErrNoUploadKey means the organization has no image upload credential.
	ErrNoUploadKey = errors.New("organization has no image upload key configured")
)

type Service struct {
	storage  StorageInterface
	uploader UploaderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	uploader UploaderInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		uploader: uploader,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// CreateForm stores a new form for an organization the creator belongs to.
// The slug is derived from the title and must be unique within the
// organization.
func (s *Service) CreateForm(ctx context.Context, creator *types.UserProfile, f *types.Form) (*types.Form, error) {
	ctx, span := s.tracer.Start(ctx, "forms.Service.CreateForm")
	defer span.End()

	if !guard.IsOrgMember(creator, f.OrgID) {
		return nil, ErrUnauthorized
	}

	if f.Status == "" {
		f.Status = types.FormStatusDraft
	}
	if f.Status != types.FormStatusDraft && f.Status != types.FormStatusActive {
		return nil, ErrInvalidStatus
	}

	slug := organizations.Slugify(f.Title)
	if slug == "" {
		return nil, ErrInvalidTitle
	}

	count, err := s.storage.CountFormsBySlug(ctx, f.OrgID, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check form slug: %w", err)
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}

	org, err := s.storage.GetOrganizationByID(ctx, f.OrgID)
	if err != nil {
		return nil, fmt.Errorf("failed to load organization: %w", err)
	}

	f.Slug = slug
	f.OrgSlug = org.Slug
	f.CreatedBy = creator.ID

	form, err := s.storage.CreateForm(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to create form: %w", err)
	}

	s.logger.Infof("user %s created form %s in organization %s", creator.ID, form.ID, f.OrgID)
	return form, nil
}

// ListForms returns every form of an organization the profile belongs to.
func (s *Service) ListForms(ctx context.Context, profile *types.UserProfile, orgID string) ([]*types.Form, error) {
	ctx, span := s.tracer.Start(ctx, "forms.Service.ListForms")
	defer span.End()

	if !guard.IsOrgMember(profile, orgID) {
		return nil, ErrUnauthorized
	}

	return s.storage.ListFormsByOrgID(ctx, orgID)
}

// GetPublicForm returns an active form by its public address. No
// authentication required.
func (s *Service) GetPublicForm(ctx context.Context, orgSlug, formSlug string) (*types.Form, error) {
	ctx, span := s.tracer.Start(ctx, "forms.Service.GetPublicForm")
	defer span.End()

	return s.storage.GetActiveFormBySlugs(ctx, orgSlug, formSlug)
}

// SubmitResponse records an anonymous submission against an active form.
func (s *Service) SubmitResponse(ctx context.Context, orgSlug, formSlug string, answers map[string]interface{}) (*types.FormResponse, error) {
	ctx, span := s.tracer.Start(ctx, "forms.Service.SubmitResponse")
	defer span.End()

	form, err := s.storage.GetActiveFormBySlugs(ctx, orgSlug, formSlug)
	if err != nil {
		return nil, err
	}

	return s.storage.CreateResponse(ctx, &types.FormResponse{
		FormID:  form.ID,
		OrgID:   form.OrgID,
		Answers: answers,
	})
}

// ListResponses returns the submissions of a form, visible to members of the
// form's organization only.
func (s *Service) ListResponses(ctx context.Context, profile *types.UserProfile, formID string) ([]*types.FormResponse, error) {
	ctx, span := s.tracer.Start(ctx, "forms.Service.ListResponses")
	defer span.End()

	form, err := s.storage.GetFormByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	if !guard.IsOrgMember(profile, form.OrgID) {
		return nil, ErrUnauthorized
	}

	return s.storage.ListResponsesByFormID(ctx, formID)
}

// ListPublicCatalog returns every active form across all organizations.
func (s *Service) ListPublicCatalog(ctx context.Context) ([]*types.Form, error) {
	ctx, span := s.tracer.Start(ctx, "forms.Service.ListPublicCatalog")
	defer span.End()

	return s.storage.ListActiveForms(ctx)
}

// UploadImage pushes a base64-encoded image to the organization's configured
// image host and returns the public URL.
func (s *Service) UploadImage(ctx context.Context, profile *types.UserProfile, orgID, imageBase64 string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "forms.Service.UploadImage")
	defer span.End()

	if !guard.IsOrgMember(profile, orgID) {
		return "", ErrUnauthorized
	}

	org, err := s.storage.GetOrganizationByID(ctx, orgID)
	if err != nil {
		return "", fmt.Errorf("failed to load organization: %w", err)
	}
	if org.ImgbbAPIKey == "" {
		return "", ErrNoUploadKey
	}

	url, err := s.uploader.Upload(ctx, org.ImgbbAPIKey, imageBase64)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return url, nil
}
