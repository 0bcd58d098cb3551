// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package forms

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/wisdom-forms/forms-service/internal/storage"
	"github.com/wisdom-forms/forms-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package forms -destination ./mock_forms.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package forms -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package forms -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockUploaderInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockUploader := NewMockUploaderInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()

	s := NewService(mockStorage, mockUploader, mockTracer, nil, mockLogger)
	return s, mockStorage, mockUploader
}

func TestService_CreateForm(t *testing.T) {
	member := &types.UserProfile{
		ID:            "user-1",
		Role:          types.RoleNone,
		Organizations: map[string]string{"org-1": types.OrgRoleUser},
	}
	org := &types.Organization{ID: "org-1", Slug: "acme"}

	testCases := []struct {
		name        string
		creator     *types.UserProfile
		form        *types.Form
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:    "success - slug derived from title and org slug denormalized",
			creator: member,
			form:    &types.Form{OrgID: "org-1", Title: "Customer Survey 2026"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CountFormsBySlug(gomock.Any(), "org-1", "customer-survey-2026").Return(0, nil)
				mockStorage.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").Return(org, nil)
				mockStorage.EXPECT().CreateForm(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, f *types.Form) (*types.Form, error) {
						if f.Slug != "customer-survey-2026" {
							return nil, errors.New("wrong form slug")
						}
						if f.OrgSlug != "acme" {
							return nil, errors.New("org slug not denormalized")
						}
						if f.Status != types.FormStatusDraft {
							return nil, errors.New("new forms must default to draft")
						}
						if f.CreatedBy != "user-1" {
							return nil, errors.New("wrong creator")
						}
						return f, nil
					})
			},
		},
		{
			name:        "error - non-member cannot create",
			creator:     &types.UserProfile{ID: "user-2", Role: types.RoleNone},
			form:        &types.Form{OrgID: "org-1", Title: "Survey"},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrUnauthorized,
		},
		{
			name:    "error - duplicate slug in organization",
			creator: member,
			form:    &types.Form{OrgID: "org-1", Title: "Customer Survey 2026"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CountFormsBySlug(gomock.Any(), "org-1", "customer-survey-2026").Return(1, nil)
			},
			expectedErr: ErrSlugTaken,
		},
		{
			name:        "error - unknown status",
			creator:     member,
			form:        &types.Form{OrgID: "org-1", Title: "Survey", Status: "archived"},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrInvalidStatus,
		},
		{
			name:        "error - title collapses to an empty slug",
			creator:     member,
			form:        &types.Form{OrgID: "org-1", Title: "???"},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrInvalidTitle,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, _ := newTestService(t)
			tc.setupMocks(mockStorage)

			_, err := s.CreateForm(context.Background(), tc.creator, tc.form)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_SubmitResponse(t *testing.T) {
	t.Run("records the submission against the resolved form", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		form := &types.Form{ID: "form-1", OrgID: "org-1", Status: types.FormStatusActive}
		answers := map[string]interface{}{"q1": "yes"}

		mockStorage.EXPECT().GetActiveFormBySlugs(gomock.Any(), "acme", "survey").Return(form, nil)
		mockStorage.EXPECT().CreateResponse(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r *types.FormResponse) (*types.FormResponse, error) {
				if r.FormID != "form-1" || r.OrgID != "org-1" {
					return nil, errors.New("response not linked to form")
				}
				return r, nil
			})

		if _, err := s.SubmitResponse(context.Background(), "acme", "survey", answers); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("error - unknown or inactive form", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetActiveFormBySlugs(gomock.Any(), "acme", "gone").Return(nil, storage.ErrNotFound)

		if _, err := s.SubmitResponse(context.Background(), "acme", "gone", nil); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected %v, got %v", storage.ErrNotFound, err)
		}
	})
}

func TestService_ListResponses(t *testing.T) {
	member := &types.UserProfile{
		ID:            "user-1",
		Role:          types.RoleNone,
		Organizations: map[string]string{"org-1": types.OrgRoleUser},
	}
	form := &types.Form{ID: "form-1", OrgID: "org-1"}

	t.Run("member of the form's organization sees responses", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetFormByID(gomock.Any(), "form-1").Return(form, nil)
		mockStorage.EXPECT().ListResponsesByFormID(gomock.Any(), "form-1").
			Return([]*types.FormResponse{{ID: "r-1"}}, nil)

		responses, err := s.ListResponses(context.Background(), member, "form-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(responses) != 1 {
			t.Errorf("expected 1 response, got %d", len(responses))
		}
	})

	t.Run("error - outsider is rejected", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetFormByID(gomock.Any(), "form-1").Return(form, nil)

		outsider := &types.UserProfile{ID: "user-2", Role: types.RoleNone}
		if _, err := s.ListResponses(context.Background(), outsider, "form-1"); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("expected %v, got %v", ErrUnauthorized, err)
		}
	})
}

func TestService_UploadImage(t *testing.T) {
	member := &types.UserProfile{
		ID:            "user-1",
		Role:          types.RoleNone,
		Organizations: map[string]string{"org-1": types.OrgRoleUser},
	}

	testCases := []struct {
		name        string
		profile     *types.UserProfile
		setupMocks  func(*MockStorageInterface, *MockUploaderInterface)
		expectedURL string
		expectedErr error
	}{
		{
			name:    "uploads with the organization's key",
			profile: member,
			setupMocks: func(mockStorage *MockStorageInterface, mockUploader *MockUploaderInterface) {
				mockStorage.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").
					Return(&types.Organization{ID: "org-1", ImgbbAPIKey: "key-1"}, nil)
				mockUploader.EXPECT().Upload(gomock.Any(), "key-1", "aGVsbG8=").
					Return("https://i.ibb.co/abc/image.png", nil)
			},
			expectedURL: "https://i.ibb.co/abc/image.png",
		},
		{
			name:    "error - organization has no key",
			profile: member,
			setupMocks: func(mockStorage *MockStorageInterface, mockUploader *MockUploaderInterface) {
				mockStorage.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").
					Return(&types.Organization{ID: "org-1"}, nil)
			},
			expectedErr: ErrNoUploadKey,
		},
		{
			name:        "error - outsider cannot upload",
			profile:     &types.UserProfile{ID: "user-2", Role: types.RoleNone},
			setupMocks:  func(*MockStorageInterface, *MockUploaderInterface) {},
			expectedErr: ErrUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockUploader := newTestService(t)
			tc.setupMocks(mockStorage, mockUploader)

			url, err := s.UploadImage(context.Background(), tc.profile, "org-1", "aGVsbG8=")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if url != tc.expectedURL {
				t.Errorf("expected %q, got %q", tc.expectedURL, url)
			}
		})
	}
}
