// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wisdom-forms/forms-service/internal/logging"
	"github.com/wisdom-forms/forms-service/internal/monitoring"
	"github.com/wisdom-forms/forms-service/internal/storage"
	"github.com/wisdom-forms/forms-service/internal/tracing"
	"github.com/wisdom-forms/forms-service/internal/types"
	"github.com/wisdom-forms/forms-service/pkg/authentication"
)

type Middleware struct {
	profiles ProfileLoaderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(profiles ProfileLoaderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		profiles: profiles,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Protect resolves the caller's profile, applies the access decision and
// stores the profile in the request context for downstream handlers.
func (m *Middleware) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "guard.Middleware.Protect")
		defer span.End()

		var profile *types.UserProfile

		userID, ok := authentication.GetUserID(ctx)
		if ok {
			p, err := m.profiles.GetProfile(ctx, userID)
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				m.logger.Errorf("failed to load profile for %s: %v", userID, err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			profile = p
		}

		switch Decide(profile, false) {
		case DenyHome:
			m.logger.Security().AuthzFailure(userID, "access protected view")
			writeDecision(w, http.StatusUnauthorized, "signed_out", "sign in to continue")
			return
		case DenyPending:
			m.logger.Security().AuthzFailure(userID, "access protected view")
			writeDecision(w, http.StatusForbidden, "pending_approval", "your account is waiting for an invitation to resolve")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithProfile(ctx, profile)))
	})
}

// RequireOrgAdmin gates handlers that administer a single organization.
// The organization ID is read with orgID from the already-protected request.
func (m *Middleware) RequireOrgAdmin(orgID func(r *http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "guard.Middleware.RequireOrgAdmin")
			defer span.End()

			profile, ok := ProfileFromContext(ctx)
			if !ok {
				writeDecision(w, http.StatusUnauthorized, "signed_out", "sign in to continue")
				return
			}

			id := orgID(r)
			if !IsOrgAdmin(profile, id) {
				m.logger.Security().AuthzFailure(profile.ID, "administer organization "+id)
				writeDecision(w, http.StatusForbidden, "forbidden", "organization admin role required")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeDecision(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"code":    code,
		"message": message,
	})
}
