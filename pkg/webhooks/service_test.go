// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/wisdom-forms/forms-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_HandleSignIn(t *testing.T) {
	testCases := []struct {
		name        string
		identityID  string
		email       string
		setupMocks  func(*MockMembershipInterface, *MockLoggerInterface)
		expectedErr bool
	}{
		{
			name:       "success",
			identityID: "user-1",
			email:      "user@example.com",
			setupMocks: func(mockMembership *MockMembershipInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockMembership.EXPECT().Reconcile(gomock.Any(), &types.Identity{
					ID:          "user-1",
					Email:       "user@example.com",
					DisplayName: "User One",
				}).Return(&types.UserProfile{ID: "user-1"}, nil)
			},
		},
		{
			name:       "reconciliation failure is swallowed",
			identityID: "user-1",
			email:      "user@example.com",
			setupMocks: func(mockMembership *MockMembershipInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockMembership.EXPECT().Reconcile(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("storage error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:        "error - empty identity id",
			identityID:  "",
			email:       "user@example.com",
			setupMocks:  func(*MockMembershipInterface, *MockLoggerInterface) {},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMembership := NewMockMembershipInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "webhooks.Service.HandleSignIn").
				DoAndReturn(func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				})
			tc.setupMocks(mockMembership, mockLogger)

			s := NewService(mockMembership, mockTracer, nil, mockLogger)

			err := s.HandleSignIn(context.Background(), tc.identityID, tc.email, "User One")

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
