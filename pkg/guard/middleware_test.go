// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/wisdom-forms/forms-service/internal/storage"
	"github.com/wisdom-forms/forms-service/internal/types"
	"github.com/wisdom-forms/forms-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package guard -destination ./mock_guard.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package guard -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package guard -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestMiddleware_Protect(t *testing.T) {
	member := &types.UserProfile{
		ID:            "user-1",
		Role:          types.RoleNone,
		Organizations: map[string]string{"org-1": types.OrgRoleUser},
	}

	testCases := []struct {
		name           string
		userID         string
		setupMocks     func(*MockProfileLoaderInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedStatus int
	}{
		{
			name:   "member passes through",
			userID: "user-1",
			setupMocks: func(mockProfiles *MockProfileLoaderInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockProfiles.EXPECT().GetProfile(gomock.Any(), "user-1").Return(member, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "anonymous request",
			userID: "",
			setupMocks: func(mockProfiles *MockProfileLoaderInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "signed in but no profile yet",
			userID: "user-2",
			setupMocks: func(mockProfiles *MockProfileLoaderInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockProfiles.EXPECT().GetProfile(gomock.Any(), "user-2").Return(nil, storage.ErrNotFound)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure("user-2", gomock.Any())
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "profile without memberships",
			userID: "user-3",
			setupMocks: func(mockProfiles *MockProfileLoaderInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockProfiles.EXPECT().GetProfile(gomock.Any(), "user-3").
					Return(&types.UserProfile{ID: "user-3", Role: types.RoleNone}, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure("user-3", gomock.Any())
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "storage failure",
			userID: "user-4",
			setupMocks: func(mockProfiles *MockProfileLoaderInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockProfiles.EXPECT().GetProfile(gomock.Any(), "user-4").Return(nil, errors.New("connection reset"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProfiles := NewMockProfileLoaderInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "guard.Middleware.Protect").
				DoAndReturn(func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				})
			tc.setupMocks(mockProfiles, mockLogger, mockSecurity)

			middleware := NewMiddleware(mockProfiles, mockTracer, nil, mockLogger)

			var sawProfile *types.UserProfile
			handler := middleware.Protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				sawProfile, _ = ProfileFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v0/organizations", nil)
			if tc.userID != "" {
				req = req.WithContext(authentication.WithUserID(req.Context(), tc.userID))
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}
			if tc.expectedStatus == http.StatusOK && sawProfile == nil {
				t.Error("expected profile in downstream request context")
			}
		})
	}
}

func TestMiddleware_RequireOrgAdmin(t *testing.T) {
	admin := &types.UserProfile{
		ID:            "admin-1",
		Role:          types.RoleNone,
		Organizations: map[string]string{"org-1": types.OrgRoleAdmin},
	}
	user := &types.UserProfile{
		ID:            "user-1",
		Role:          types.RoleNone,
		Organizations: map[string]string{"org-1": types.OrgRoleUser},
	}

	testCases := []struct {
		name           string
		profile        *types.UserProfile
		expectedStatus int
		expectAuthzLog bool
	}{
		{"org admin allowed", admin, http.StatusOK, false},
		{"plain member rejected", user, http.StatusForbidden, true},
		{"superadmin allowed", &types.UserProfile{ID: "root", Role: types.RoleSuperadmin}, http.StatusOK, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "guard.Middleware.RequireOrgAdmin").
				DoAndReturn(func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				})
			if tc.expectAuthzLog {
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure(tc.profile.ID, gomock.Any())
			}

			middleware := NewMiddleware(nil, mockTracer, nil, mockLogger)
			handler := middleware.RequireOrgAdmin(func(*http.Request) string { return "org-1" })(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
				}),
			)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/organizations/org-1/members", nil)
			req = req.WithContext(WithProfile(req.Context(), tc.profile))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}
		})
	}
}
