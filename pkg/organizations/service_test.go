// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/wisdom-forms/forms-service/internal/storage"
	"github.com/wisdom-forms/forms-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package organizations -destination ./mock_organizations.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package organizations -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package organizations -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockBusInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockBus := NewMockBusInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockSecurity := NewMockSecurityLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()

	s := NewService(mockStorage, mockBus, mockTracer, nil, mockLogger)
	return s, mockStorage, mockBus, mockLogger, mockSecurity
}

func TestService_ListVisible(t *testing.T) {
	t.Run("superadmin sees every organization", func(t *testing.T) {
		s, mockStorage, _, _, _ := newTestService(t)

		all := []*types.Organization{{ID: "org-1"}, {ID: "org-2"}}
		mockStorage.EXPECT().ListOrganizations(gomock.Any()).Return(all, nil)

		orgs, err := s.ListVisible(context.Background(), &types.UserProfile{ID: "root", Role: types.RoleSuperadmin})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orgs) != 2 {
			t.Errorf("expected 2 organizations, got %d", len(orgs))
		}
	})

	t.Run("member sees only member organizations", func(t *testing.T) {
		s, mockStorage, _, _, _ := newTestService(t)

		profile := &types.UserProfile{
			ID:            "user-1",
			Role:          types.RoleNone,
			Organizations: map[string]string{"org-1": types.OrgRoleUser, "org-2": types.OrgRoleAdmin},
		}
		mockStorage.EXPECT().ListOrganizationsByIDs(gomock.Any(), gomock.Len(2)).
			Return([]*types.Organization{{ID: "org-1"}, {ID: "org-2"}}, nil)

		orgs, err := s.ListVisible(context.Background(), profile)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orgs) != 2 {
			t.Errorf("expected 2 organizations, got %d", len(orgs))
		}
	})

	t.Run("no memberships means an empty directory and no queries", func(t *testing.T) {
		s, _, _, _, _ := newTestService(t)

		orgs, err := s.ListVisible(context.Background(), &types.UserProfile{ID: "user-1", Role: types.RoleNone})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orgs) != 0 {
			t.Errorf("expected no organizations, got %d", len(orgs))
		}
	})

	t.Run("falls back to legacy organization ids", func(t *testing.T) {
		s, mockStorage, _, _, _ := newTestService(t)

		profile := &types.UserProfile{ID: "user-1", Role: types.RoleNone, LegacyOrgIDs: []string{"org-1"}}
		mockStorage.EXPECT().ListOrganizationsByIDs(gomock.Any(), []string{"org-1"}).
			Return([]*types.Organization{{ID: "org-1"}}, nil)

		orgs, err := s.ListVisible(context.Background(), profile)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orgs) != 1 {
			t.Errorf("expected 1 organization, got %d", len(orgs))
		}
	})

	t.Run("membership lists longer than the batch size are chunked", func(t *testing.T) {
		s, mockStorage, _, _, _ := newTestService(t)

		memberships := make(map[string]string, 23)
		for i := 0; i < 23; i++ {
			memberships[fmt.Sprintf("org-%d", i)] = types.OrgRoleUser
		}
		profile := &types.UserProfile{ID: "user-1", Role: types.RoleNone, Organizations: memberships}

		var queried int
		mockStorage.EXPECT().ListOrganizationsByIDs(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ids []string) ([]*types.Organization, error) {
				if len(ids) > directoryBatchSize {
					return nil, fmt.Errorf("batch of %d exceeds the limit", len(ids))
				}
				queried += len(ids)
				orgs := make([]*types.Organization, 0, len(ids))
				for _, id := range ids {
					orgs = append(orgs, &types.Organization{ID: id})
				}
				return orgs, nil
			}).Times(3)

		orgs, err := s.ListVisible(context.Background(), profile)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if queried != 23 || len(orgs) != 23 {
			t.Errorf("expected all 23 organizations across 3 batches, queried %d, got %d", queried, len(orgs))
		}
	})

	t.Run("error - nil profile", func(t *testing.T) {
		s, _, _, _, _ := newTestService(t)

		if _, err := s.ListVisible(context.Background(), nil); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("expected %v, got %v", ErrUnauthorized, err)
		}
	})
}

func TestService_Create(t *testing.T) {
	created := &types.Organization{ID: "org-1", Name: "My Great Org!", Slug: "my-great-org"}

	testCases := []struct {
		name        string
		creator     *types.UserProfile
		orgName     string
		slug        string
		setupMocks  func(*MockStorageInterface, *MockBusInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedErr error
	}{
		{
			name:    "org admin creates and becomes admin of the new organization",
			creator: &types.UserProfile{ID: "user-1", Role: types.RoleNone, HasOrgAdminRole: true},
			orgName: "My Great Org!",
			setupMocks: func(mockStorage *MockStorageInterface, mockBus *MockBusInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().CreateOrganization(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, o *types.Organization) (*types.Organization, error) {
						if o.Slug != "my-great-org" {
							return nil, fmt.Errorf("wrong slug %q", o.Slug)
						}
						if o.CreatedBy != "user-1" {
							return nil, errors.New("wrong creator")
						}
						return created, nil
					})
				mockStorage.EXPECT().MergeProfileMemberships(gomock.Any(), "user-1",
					map[string]string{"org-1": types.OrgRoleAdmin}, true).Return(nil)
				mockBus.EXPECT().PublishProfileChanged(gomock.Any(), "user-1").Return(nil)
			},
		},
		{
			name:    "superadmin creates without self-membership",
			creator: &types.UserProfile{ID: "root", Role: types.RoleSuperadmin},
			orgName: "Acme",
			setupMocks: func(mockStorage *MockStorageInterface, mockBus *MockBusInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().CreateOrganization(gomock.Any(), gomock.Any()).Return(created, nil)
			},
		},
		{
			name:    "error - plain user cannot create",
			creator: &types.UserProfile{ID: "user-1", Role: types.RoleNone},
			orgName: "Acme",
			setupMocks: func(mockStorage *MockStorageInterface, mockBus *MockBusInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure("user-1", gomock.Any())
			},
			expectedErr: ErrUnauthorized,
		},
		{
			name:        "error - name collapses to an empty slug",
			creator:     &types.UserProfile{ID: "root", Role: types.RoleSuperadmin},
			orgName:     "!!!",
			setupMocks:  func(*MockStorageInterface, *MockBusInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedErr: ErrInvalidName,
		},
		{
			name:    "error - slug already taken",
			creator: &types.UserProfile{ID: "root", Role: types.RoleSuperadmin},
			orgName: "Acme",
			setupMocks: func(mockStorage *MockStorageInterface, mockBus *MockBusInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().CreateOrganization(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: ErrSlugTaken,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockBus, mockLogger, mockSecurity := newTestService(t)
			tc.setupMocks(mockStorage, mockBus, mockLogger, mockSecurity)

			_, err := s.Create(context.Background(), tc.creator, tc.orgName, tc.slug)

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

func TestService_UpdateSettings(t *testing.T) {
	admin := &types.UserProfile{
		ID:            "admin-1",
		Role:          types.RoleNone,
		Organizations: map[string]string{"org-1": types.OrgRoleAdmin},
	}

	t.Run("updates only the provided fields", func(t *testing.T) {
		s, mockStorage, _, _, _ := newTestService(t)

		key := "imgbb-key"
		mockStorage.EXPECT().UpdateOrganization(gomock.Any(), gomock.Any(), []string{"imgbb_api_key"}).
			Return(&types.Organization{ID: "org-1", ImgbbAPIKey: key}, nil)

		org, err := s.UpdateSettings(context.Background(), admin, "org-1", nil, &key)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if org.ImgbbAPIKey != key {
			t.Error("expected the key to be stored")
		}
	})

	t.Run("no fields means a plain read", func(t *testing.T) {
		s, mockStorage, _, _, _ := newTestService(t)

		mockStorage.EXPECT().GetOrganizationByID(gomock.Any(), "org-1").
			Return(&types.Organization{ID: "org-1"}, nil)

		if _, err := s.UpdateSettings(context.Background(), admin, "org-1", nil, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("error - plain member cannot update settings", func(t *testing.T) {
		s, _, _, mockLogger, mockSecurity := newTestService(t)
		mockLogger.EXPECT().Security().Return(mockSecurity)
		mockSecurity.EXPECT().AuthzFailure("user-1", gomock.Any())

		member := &types.UserProfile{ID: "user-1", Organizations: map[string]string{"org-1": types.OrgRoleUser}}
		if _, err := s.UpdateSettings(context.Background(), member, "org-1", nil, nil); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("expected %v, got %v", ErrUnauthorized, err)
		}
	})
}

func TestSlugify(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"My Great Org!", "my-great-org"},
		{"  Acme   Corp  ", "acme-corp"},
		{"already-a-slug", "already-a-slug"},
		{"Ünicode Org", "nicode-org"},
		{"!!!", ""},
	}

	for _, tc := range testCases {
		if got := Slugify(tc.in); got != tc.expected {
			t.Errorf("Slugify(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
