// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

// Package webhooks receives Kratos after-registration and after-login hooks
// and triggers best-effort invitation reconciliation for the signed-in
// identity.
package webhooks

import (
	"context"
	"fmt"

	"github.com/wisdom-forms/forms-service/internal/logging"
	"github.com/wisdom-forms/forms-service/internal/monitoring"
	"github.com/wisdom-forms/forms-service/internal/tracing"
	"github.com/wisdom-forms/forms-service/internal/types"
)

type Service struct {
	membership MembershipInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	membership MembershipInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		membership: membership,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

// HandleSignIn reconciles pending invitations for the identity. This is the
// background path, reconciliation failures are logged and swallowed so the
// sign-in flow is never blocked. The next sign-in or the interactive session
// endpoint picks up whatever was missed.
func (s *Service) HandleSignIn(ctx context.Context, identityID, email, displayName string) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleSignIn")
	defer span.End()

	if identityID == "" {
		return fmt.Errorf("identity ID is empty")
	}

	s.logger.Debugf("handling sign-in hook for identity %s", identityID)

	_, err := s.membership.Reconcile(ctx, &types.Identity{
		ID:          identityID,
		Email:       email,
		DisplayName: displayName,
	})
	if err != nil {
		s.logger.Errorf("background reconciliation failed for %s: %v", identityID, err)
		return nil
	}

	return nil
}
