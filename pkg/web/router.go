// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/wisdom-forms/forms-service/internal/db"
	"github.com/wisdom-forms/forms-service/internal/identity"
	"github.com/wisdom-forms/forms-service/internal/imgbb"
	"github.com/wisdom-forms/forms-service/internal/kratos"
	"github.com/wisdom-forms/forms-service/internal/logging"
	"github.com/wisdom-forms/forms-service/internal/monitoring"
	"github.com/wisdom-forms/forms-service/internal/pubsub"
	"github.com/wisdom-forms/forms-service/internal/storage"
	"github.com/wisdom-forms/forms-service/internal/tracing"
	"github.com/wisdom-forms/forms-service/pkg/authentication"
	"github.com/wisdom-forms/forms-service/pkg/forms"
	"github.com/wisdom-forms/forms-service/pkg/guard"
	"github.com/wisdom-forms/forms-service/pkg/membership"
	"github.com/wisdom-forms/forms-service/pkg/metrics"
	"github.com/wisdom-forms/forms-service/pkg/organizations"
	"github.com/wisdom-forms/forms-service/pkg/status"
	"github.com/wisdom-forms/forms-service/pkg/webhooks"
)

func NewRouter(
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	bus pubsub.BusInterface,
	kratosClient kratos.ClientInterface,
	uploader imgbb.ClientInterface,
	authnMiddleware *authentication.Middleware,
	inviteLifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
		identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware,
	)
	if authnMiddleware != nil {
		middlewares = append(middlewares, middlewareBearer(authnMiddleware))
	}
	middlewares = append(middlewares, db.TransactionMiddleware(dbClient, logger))

	router.Use(middlewares...)

	guardMiddleware := guard.NewMiddleware(s, tracer, monitor, logger)

	membershipService := membership.NewService(s, kratosClient, bus, inviteLifetime, tracer, monitor, logger)
	organizationsService := organizations.NewService(s, bus, tracer, monitor, logger)
	formsService := forms.NewService(s, uploader, tracer, monitor, logger)
	webhooksService := webhooks.NewService(membershipService, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	membership.NewAPI(membershipService, bus, guardMiddleware, logger).RegisterEndpoints(router)
	organizations.NewAPI(organizationsService, guardMiddleware, logger).RegisterEndpoints(router)
	forms.NewAPI(formsService, guardMiddleware, logger).RegisterEndpoints(router)
	webhooks.NewAPI(webhooksService).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

// middlewareBearer verifies bearer tokens when present. Requests without an
// Authorization header come from the session proxy or the public surface and
// pass through, the access decision runs downstream either way.
func middlewareBearer(authn *authentication.Middleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		verified := authn.Authenticate()(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				next.ServeHTTP(w, r)
				return
			}
			verified.ServeHTTP(w, r)
		})
	}
}
