// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"

	"github.com/wisdom-forms/forms-service/internal/logging"
	"github.com/wisdom-forms/forms-service/internal/monitoring"
	"github.com/wisdom-forms/forms-service/internal/tracing"
	"github.com/wisdom-forms/forms-service/pkg/authentication"
)

// HeaderName is the header used to pass the authenticated identity ID.
// It is set by the Kratos session proxy in front of the service, never
// by end clients.
const HeaderName = "X-Kratos-Authenticated-Identity-Id"

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HTTPMiddleware copies the proxied identity ID into the request context.
// Requests without the header pass through anonymously, downstream access
// checks decide whether that is acceptable.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		if userID := r.Header.Get(HeaderName); userID != "" {
			ctx = authentication.WithUserID(ctx, userID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
