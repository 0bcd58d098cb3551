// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package forms

import (
	"context"

	"github.com/wisdom-forms/forms-service/internal/types"
)

// StorageInterface defines the storage operations required by the forms package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	CreateForm(ctx context.Context, f *types.Form) (*types.Form, error)
	GetFormByID(ctx context.Context, id string) (*types.Form, error)
	GetActiveFormBySlugs(ctx context.Context, orgSlug, formSlug string) (*types.Form, error)
	ListFormsByOrgID(ctx context.Context, orgID string) ([]*types.Form, error)
	ListActiveForms(ctx context.Context) ([]*types.Form, error)
	CountFormsBySlug(ctx context.Context, orgID, slug string) (int, error)
	CreateResponse(ctx context.Context, r *types.FormResponse) (*types.FormResponse, error)
	ListResponsesByFormID(ctx context.Context, formID string) ([]*types.FormResponse, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
}

// UploaderInterface defines the third-party image upload operation used by
// the form builder.
type UploaderInterface interface {
	Upload(ctx context.Context, apiKey, imageBase64 string) (string, error)
}

// ServiceInterface defines the forms service operations.
type ServiceInterface interface {
	CreateForm(ctx context.Context, creator *types.UserProfile, f *types.Form) (*types.Form, error)
	ListForms(ctx context.Context, profile *types.UserProfile, orgID string) ([]*types.Form, error)
	GetPublicForm(ctx context.Context, orgSlug, formSlug string) (*types.Form, error)
	SubmitResponse(ctx context.Context, orgSlug, formSlug string, answers map[string]interface{}) (*types.FormResponse, error)
	ListResponses(ctx context.Context, profile *types.UserProfile, formID string) ([]*types.FormResponse, error)
	ListPublicCatalog(ctx context.Context) ([]*types.Form, error)
	UploadImage(ctx context.Context, profile *types.UserProfile, orgID, imageBase64 string) (string, error)
}
