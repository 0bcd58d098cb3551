// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/wisdom-forms/forms-service/internal/storage"
	"github.com/wisdom-forms/forms-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package membership -destination ./mock_membership.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package membership -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package membership -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockIdentityProviderInterface, *MockBusInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockKratos := NewMockIdentityProviderInterface(ctrl)
	mockBus := NewMockBusInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockSecurity := NewMockSecurityLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	s := NewService(mockStorage, mockKratos, mockBus, 24*time.Hour, mockTracer, nil, mockLogger)
	return s, mockStorage, mockKratos, mockBus, mockLogger, mockSecurity
}

func TestService_Reconcile(t *testing.T) {
	identity := &types.Identity{ID: "user-1", Email: "Invitee@Example.com"}
	profile := &types.UserProfile{
		ID:            "user-1",
		Email:         "invitee@example.com",
		Role:          types.RoleNone,
		Organizations: map[string]string{},
	}

	testCases := []struct {
		name        string
		identity    *types.Identity
		setupMocks  func(*MockStorageInterface, *MockBusInterface)
		expectedErr bool
	}{
		{
			name:     "no pending invitations is a no-op",
			identity: identity,
			setupMocks: func(mockStorage *MockStorageInterface, mockBus *MockBusInterface) {
				mockStorage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(profile, nil)
				mockStorage.EXPECT().ListPendingMembersByEmail(gomock.Any(), "invitee@example.com").
					Return(nil, nil)
			},
		},
		{
			name:     "resolves pending invitations with a single profile write",
			identity: identity,
			setupMocks: func(mockStorage *MockStorageInterface, mockBus *MockBusInterface) {
				mockStorage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(profile, nil)
				mockStorage.EXPECT().ListPendingMembersByEmail(gomock.Any(), "invitee@example.com").
					Return([]*types.OrgMember{
						{ID: "m-1", OrgID: "org-1", Role: types.OrgRoleUser, Status: types.MemberStatusPending},
						{ID: "m-2", OrgID: "org-2", Role: types.OrgRoleAdmin, Status: types.MemberStatusPending},
					}, nil)
				mockStorage.EXPECT().ActivateMembers(gomock.Any(), []string{"m-1", "m-2"}, "user-1").Return(nil)
				mockStorage.EXPECT().MergeProfileMemberships(gomock.Any(), "user-1",
					map[string]string{"org-1": types.OrgRoleUser, "org-2": types.OrgRoleAdmin}, true).Return(nil)
				mockBus.EXPECT().PublishProfileChanged(gomock.Any(), "user-1").Return(nil)
				mockStorage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(profile, nil)
			},
		},
		{
			name:     "admin flag stays down for user-only invitations",
			identity: identity,
			setupMocks: func(mockStorage *MockStorageInterface, mockBus *MockBusInterface) {
				mockStorage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(profile, nil)
				mockStorage.EXPECT().ListPendingMembersByEmail(gomock.Any(), "invitee@example.com").
					Return([]*types.OrgMember{
						{ID: "m-1", OrgID: "org-1", Role: types.OrgRoleUser, Status: types.MemberStatusPending},
					}, nil)
				mockStorage.EXPECT().ActivateMembers(gomock.Any(), []string{"m-1"}, "user-1").Return(nil)
				mockStorage.EXPECT().MergeProfileMemberships(gomock.Any(), "user-1",
					map[string]string{"org-1": types.OrgRoleUser}, false).Return(nil)
				mockBus.EXPECT().PublishProfileChanged(gomock.Any(), "user-1").Return(nil)
				mockStorage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(profile, nil)
			},
		},
		{
			name:     "publish failure does not fail reconciliation",
			identity: identity,
			setupMocks: func(mockStorage *MockStorageInterface, mockBus *MockBusInterface) {
				mockStorage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(profile, nil)
				mockStorage.EXPECT().ListPendingMembersByEmail(gomock.Any(), "invitee@example.com").
					Return([]*types.OrgMember{
						{ID: "m-1", OrgID: "org-1", Role: types.OrgRoleUser, Status: types.MemberStatusPending},
					}, nil)
				mockStorage.EXPECT().ActivateMembers(gomock.Any(), []string{"m-1"}, "user-1").Return(nil)
				mockStorage.EXPECT().MergeProfileMemberships(gomock.Any(), "user-1", gomock.Any(), false).Return(nil)
				mockBus.EXPECT().PublishProfileChanged(gomock.Any(), "user-1").Return(errors.New("redis down"))
				mockStorage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(profile, nil)
			},
		},
		{
			name:        "identity without email",
			identity:    &types.Identity{ID: "user-1"},
			setupMocks:  func(*MockStorageInterface, *MockBusInterface) {},
			expectedErr: true,
		},
		{
			name:     "error - listing invitations fails",
			identity: identity,
			setupMocks: func(mockStorage *MockStorageInterface, mockBus *MockBusInterface) {
				mockStorage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(profile, nil)
				mockStorage.EXPECT().ListPendingMembersByEmail(gomock.Any(), "invitee@example.com").
					Return(nil, errors.New("storage error"))
			},
			expectedErr: true,
		},
		{
			name:     "error - activation fails",
			identity: identity,
			setupMocks: func(mockStorage *MockStorageInterface, mockBus *MockBusInterface) {
				mockStorage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(profile, nil)
				mockStorage.EXPECT().ListPendingMembersByEmail(gomock.Any(), "invitee@example.com").
					Return([]*types.OrgMember{
						{ID: "m-1", OrgID: "org-1", Role: types.OrgRoleUser, Status: types.MemberStatusPending},
					}, nil)
				mockStorage.EXPECT().ActivateMembers(gomock.Any(), []string{"m-1"}, "user-1").
					Return(errors.New("storage error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, _, mockBus, _, _ := newTestService(t)
			tc.setupMocks(mockStorage, mockBus)

			_, err := s.Reconcile(context.Background(), tc.identity)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// Running reconciliation twice with no intervening invitations must leave
// the profile untouched the second time.
func TestService_ReconcileIsIdempotent(t *testing.T) {
	identity := &types.Identity{ID: "user-1", Email: "invitee@example.com"}
	profile := &types.UserProfile{ID: "user-1", Organizations: map[string]string{}}

	s, mockStorage, _, mockBus, _, _ := newTestService(t)

	first := mockStorage.EXPECT().ListPendingMembersByEmail(gomock.Any(), "invitee@example.com").
		Return([]*types.OrgMember{
			{ID: "m-1", OrgID: "org-1", Role: types.OrgRoleAdmin, Status: types.MemberStatusPending},
		}, nil)
	// The second pass sees nothing pending and performs no writes.
	mockStorage.EXPECT().ListPendingMembersByEmail(gomock.Any(), "invitee@example.com").
		Return(nil, nil).After(first)

	mockStorage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(profile, nil).Times(3)
	mockStorage.EXPECT().ActivateMembers(gomock.Any(), []string{"m-1"}, "user-1").Return(nil).Times(1)
	mockStorage.EXPECT().MergeProfileMemberships(gomock.Any(), "user-1",
		map[string]string{"org-1": types.OrgRoleAdmin}, true).Return(nil).Times(1)
	mockBus.EXPECT().PublishProfileChanged(gomock.Any(), "user-1").Return(nil).Times(1)

	if _, err := s.Reconcile(context.Background(), identity); err != nil {
		t.Fatalf("first reconcile: %v", err)
	}
	if _, err := s.Reconcile(context.Background(), identity); err != nil {
		t.Fatalf("second reconcile: %v", err)
	}
}

func TestService_EnsureProfile(t *testing.T) {
	identity := &types.Identity{ID: "user-1", Email: "New@Example.com", DisplayName: "New User"}
	existing := &types.UserProfile{ID: "user-1", Email: "new@example.com"}

	testCases := []struct {
		name        string
		identity    *types.Identity
		setupMocks  func(*MockStorageInterface)
		expectedErr bool
	}{
		{
			name:     "returns existing profile",
			identity: identity,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(existing, nil)
			},
		},
		{
			name:     "creates profile on first sign-in with lowercased email",
			identity: identity,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *types.UserProfile) (*types.UserProfile, error) {
						if p.Email != "new@example.com" {
							return nil, errors.New("email not lowercased")
						}
						if p.Role != types.RoleNone {
							return nil, errors.New("fresh profile must have no role")
						}
						if len(p.Organizations) != 0 {
							return nil, errors.New("fresh profile must have no memberships")
						}
						return p, nil
					})
			},
		},
		{
			name:     "loses creation race and reads the winner's row",
			identity: identity,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
				mockStorage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(existing, nil)
			},
		},
		{
			name:        "error - empty identity",
			identity:    nil,
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, _, _, _, _ := newTestService(t)
			tc.setupMocks(mockStorage)

			_, err := s.EnsureProfile(context.Background(), tc.identity)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_Invite(t *testing.T) {
	admin := &types.UserProfile{
		ID:            "admin-1",
		Role:          types.RoleNone,
		Organizations: map[string]string{"org-1": types.OrgRoleAdmin},
	}
	member := &types.OrgMember{ID: "m-1", OrgID: "org-1", Email: "new@example.com"}

	testCases := []struct {
		name        string
		inviter     *types.UserProfile
		email       string
		role        string
		setupMocks  func(*MockStorageInterface, *MockIdentityProviderInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedErr error
	}{
		{
			name:    "success - email normalized to lowercase",
			inviter: admin,
			email:   "  New@Example.COM ",
			role:    types.OrgRoleUser,
			setupMocks: func(mockStorage *MockStorageInterface, mockKratos *MockIdentityProviderInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().CreateMember(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, m *types.OrgMember) (*types.OrgMember, error) {
						if m.Email != "new@example.com" {
							return nil, errors.New("email not normalized")
						}
						if m.Status != types.MemberStatusPending {
							return nil, errors.New("invitation must start pending")
						}
						if m.UserID != nil {
							return nil, errors.New("invitation must start unresolved")
						}
						return member, nil
					})
				mockKratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "new@example.com").Return("id-1", nil)
			},
		},
		{
			name:    "success - unknown email gets a recovery link",
			inviter: admin,
			email:   "new@example.com",
			role:    types.OrgRoleAdmin,
			setupMocks: func(mockStorage *MockStorageInterface, mockKratos *MockIdentityProviderInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().CreateMember(gomock.Any(), gomock.Any()).Return(member, nil)
				mockKratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "new@example.com").
					Return("", errors.New("not found"))
				mockKratos.EXPECT().CreateIdentity(gomock.Any(), "new@example.com").Return("id-new", nil)
				mockKratos.EXPECT().CreateRecoveryLink(gomock.Any(), "id-new", "24h0m0s").
					Return("https://auth.example.com/recover", "", nil)
			},
		},
		{
			name:    "error - plain member cannot invite",
			inviter: &types.UserProfile{ID: "user-1", Organizations: map[string]string{"org-1": types.OrgRoleUser}},
			email:   "new@example.com",
			role:    types.OrgRoleUser,
			setupMocks: func(mockStorage *MockStorageInterface, mockKratos *MockIdentityProviderInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure("user-1", gomock.Any())
			},
			expectedErr: ErrUnauthorized,
		},
		{
			name:        "error - malformed email rejected before any write",
			inviter:     admin,
			email:       "not-an-email",
			role:        types.OrgRoleUser,
			setupMocks:  func(*MockStorageInterface, *MockIdentityProviderInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedErr: ErrInvalidEmail,
		},
		{
			name:        "error - unknown role rejected before any write",
			inviter:     admin,
			email:       "new@example.com",
			role:        "owner",
			setupMocks:  func(*MockStorageInterface, *MockIdentityProviderInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedErr: ErrInvalidRole,
		},
		{
			name:    "error - duplicate live invitation",
			inviter: admin,
			email:   "new@example.com",
			role:    types.OrgRoleUser,
			setupMocks: func(mockStorage *MockStorageInterface, mockKratos *MockIdentityProviderInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().CreateMember(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: ErrAlreadyInvited,
		},
		{
			name:    "identity onboarding failure does not fail the invitation",
			inviter: admin,
			email:   "new@example.com",
			role:    types.OrgRoleUser,
			setupMocks: func(mockStorage *MockStorageInterface, mockKratos *MockIdentityProviderInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().CreateMember(gomock.Any(), gomock.Any()).Return(member, nil)
				mockKratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "new@example.com").
					Return("", errors.New("not found"))
				mockKratos.EXPECT().CreateIdentity(gomock.Any(), "new@example.com").
					Return("", errors.New("kratos down"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockKratos, _, mockLogger, mockSecurity := newTestService(t)
			tc.setupMocks(mockStorage, mockKratos, mockLogger, mockSecurity)

			_, _, err := s.Invite(context.Background(), tc.inviter, "org-1", tc.email, tc.role)

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

func TestService_MigrateLegacyProfiles(t *testing.T) {
	superadmin := &types.UserProfile{ID: "root", Role: types.RoleSuperadmin}

	t.Run("error - non-superadmin rejected", func(t *testing.T) {
		s, _, _, _, mockLogger, mockSecurity := newTestService(t)
		mockLogger.EXPECT().Security().Return(mockSecurity)
		mockSecurity.EXPECT().AuthzFailure("user-1", gomock.Any())

		_, err := s.MigrateLegacyProfiles(context.Background(), &types.UserProfile{ID: "user-1", Role: types.RoleAdmin})
		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("expected %v, got %v", ErrUnauthorized, err)
		}
	})

	t.Run("migrates legacy profiles with role carry-over", func(t *testing.T) {
		s, mockStorage, _, _, _, _ := newTestService(t)

		mockStorage.EXPECT().ListLegacyProfiles(gomock.Any()).Return([]*types.UserProfile{
			{ID: "user-1", Email: "a@example.com", Role: types.RoleNone, LegacyOrgIDs: []string{"org-1"}},
			{ID: "user-2", Email: "b@example.com", Role: types.RoleAdmin, LegacyOrgIDs: []string{"org-1", "org-2"}},
		}, nil)

		mockStorage.EXPECT().CreateMember(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m *types.OrgMember) (*types.OrgMember, error) {
				if m.Status != types.MemberStatusActive {
					return nil, errors.New("migrated rows must be active")
				}
				if m.UserID == nil {
					return nil, errors.New("migrated rows must carry the user ID")
				}
				expectedRole := types.OrgRoleUser
				if *m.UserID == "user-2" {
					expectedRole = types.OrgRoleAdmin
				}
				if m.Role != expectedRole {
					return nil, errors.New("wrong role carried over")
				}
				return m, nil
			}).Times(3)

		mockStorage.EXPECT().RewriteLegacyProfile(gomock.Any(), "user-1",
			map[string]string{"org-1": types.OrgRoleUser}, false).Return(nil)
		mockStorage.EXPECT().RewriteLegacyProfile(gomock.Any(), "user-2",
			map[string]string{"org-1": types.OrgRoleAdmin, "org-2": types.OrgRoleAdmin}, true).Return(nil)

		report, err := s.MigrateLegacyProfiles(context.Background(), superadmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Migrated != 2 || report.Failed != 0 {
			t.Errorf("expected 2 migrated and 0 failed, got %+v", report)
		}
	})

	t.Run("failures are counted and do not abort the run", func(t *testing.T) {
		s, mockStorage, _, _, _, _ := newTestService(t)

		mockStorage.EXPECT().ListLegacyProfiles(gomock.Any()).Return([]*types.UserProfile{
			{ID: "user-1", Email: "a@example.com", LegacyOrgIDs: []string{"org-1"}},
			{ID: "user-2", Email: "b@example.com", LegacyOrgIDs: []string{"org-2"}},
		}, nil)

		mockStorage.EXPECT().CreateMember(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m *types.OrgMember) (*types.OrgMember, error) {
				if m.OrgID == "org-1" {
					return nil, errors.New("storage error")
				}
				return m, nil
			}).Times(2)
		mockStorage.EXPECT().RewriteLegacyProfile(gomock.Any(), "user-2", gomock.Any(), false).Return(nil)

		report, err := s.MigrateLegacyProfiles(context.Background(), superadmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Migrated != 1 || report.Failed != 1 {
			t.Errorf("expected 1 migrated and 1 failed, got %+v", report)
		}
	})
}

func TestService_ResolveSession(t *testing.T) {
	t.Run("resolves identity and reconciles", func(t *testing.T) {
		s, mockStorage, mockKratos, _, _, _ := newTestService(t)

		identity := &types.Identity{ID: "user-1", Email: "a@example.com"}
		profile := &types.UserProfile{ID: "user-1", Organizations: map[string]string{}}

		mockKratos.EXPECT().GetIdentity(gomock.Any(), "user-1").Return(identity, nil)
		mockStorage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(profile, nil)
		mockStorage.EXPECT().ListPendingMembersByEmail(gomock.Any(), "a@example.com").Return(nil, nil)

		got, err := s.ResolveSession(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != profile {
			t.Error("expected the stored profile back")
		}
	})

	t.Run("error - identity lookup fails and surfaces", func(t *testing.T) {
		s, _, mockKratos, _, _, _ := newTestService(t)

		mockKratos.EXPECT().GetIdentity(gomock.Any(), "user-1").Return(nil, errors.New("kratos down"))

		if _, err := s.ResolveSession(context.Background(), "user-1"); err == nil {
			t.Error("expected error but got none")
		}
	})
}
