// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wisdom-forms/forms-service/internal/logging"
	"github.com/wisdom-forms/forms-service/internal/storage"
	"github.com/wisdom-forms/forms-service/pkg/authentication"
	"github.com/wisdom-forms/forms-service/pkg/guard"
)

type API struct {
	service ServiceInterface
	bus     BusInterface
	guard   *guard.Middleware
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, bus BusInterface, guardMiddleware *guard.Middleware, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		bus:     bus,
		guard:   guardMiddleware,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	// Session and profile routes run before the access decision, a caller
	// with no memberships still needs to see its own pending state.
	mux.Post("/api/v0/session", a.resolveSession)
	mux.Get("/api/v0/profile", a.getProfile)
	mux.Get("/api/v0/profile/watch", a.watchProfile)
	mux.Post("/api/v0/migrate", a.migrate)

	mux.Route("/api/v0/organizations/{id}/members", func(r chi.Router) {
		r.Use(a.guard.Protect)
		r.Use(a.guard.RequireOrgAdmin(func(r *http.Request) string {
			return chi.URLParam(r, "id")
		}))
		r.Get("/", a.listMembers)
		r.Post("/", a.invite)
	})
}

// resolveSession is the interactive login entrypoint. It reconciles pending
// invitations and returns the resulting profile, surfacing any failure.
func (a *API) resolveSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := a.service.ResolveSession(r.Context(), userID)
	if err != nil {
		a.logger.Errorf("session resolution failed for %s: %v", userID, err)
		http.Error(w, "failed to resolve session", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (a *API) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := a.service.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// watchProfile streams a server-sent event every time the caller's profile
// changes. The subscription is torn down when the client disconnects.
func (a *API) watchProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	// The connection inherits the server-wide write deadline, which would
	// sever the stream. Clear it for the lifetime of the subscription.
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
		a.logger.Debugf("could not clear write deadline for %s: %v", userID, err)
	}

	events := make(chan struct{}, 1)
	unsubscribe, err := a.bus.SubscribeProfile(r.Context(), userID, func() {
		select {
		case events <- struct{}{}:
		default:
		}
	})
	if err != nil {
		a.logger.Errorf("failed to subscribe to profile changes for %s: %v", userID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	fmt.Fprint(w, "event: ready\ndata: {}\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-events:
			fmt.Fprint(w, "event: change\ndata: {}\n\n")
			flusher.Flush()
		}
	}
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "id")

	members, err := a.service.ListMembers(r.Context(), orgID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, members)
}

type inviteRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type inviteResponse struct {
	Member       any    `json:"member"`
	RecoveryLink string `json:"recovery_link,omitempty"`
}

func (a *API) invite(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "id")

	var req inviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	profile, _ := guard.ProfileFromContext(r.Context())
	member, link, err := a.service.Invite(r.Context(), profile, orgID, req.Email, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "forbidden", http.StatusForbidden)
		case errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrInvalidRole):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrAlreadyInvited):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, inviteResponse{Member: member, RecoveryLink: link})
}

func (a *API) migrate(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := a.service.GetProfile(r.Context(), userID)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	report, err := a.service.MigrateLegacyProfiles(r.Context(), profile)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
