// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wisdom-forms/forms-service/internal/logging"
	"github.com/wisdom-forms/forms-service/internal/storage"
	"github.com/wisdom-forms/forms-service/pkg/guard"
)

type API struct {
	service ServiceInterface
	guard   *guard.Middleware
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, guardMiddleware *guard.Middleware, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		guard:   guardMiddleware,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Route("/api/v0/organizations", func(r chi.Router) {
		r.Use(a.guard.Protect)
		r.Get("/", a.list)
		r.Post("/", a.create)
		r.Get("/{id}", a.get)
		r.Patch("/{id}", a.updateSettings)
	})
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	profile, _ := guard.ProfileFromContext(r.Context())

	orgs, err := a.service.ListVisible(r.Context(), profile)
	if err != nil {
		a.logger.Errorf("failed to list organizations: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, orgs)
}

type createRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	profile, _ := guard.ProfileFromContext(r.Context())
	org, err := a.service.Create(r.Context(), profile, req.Name, req.Slug)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "forbidden", http.StatusForbidden)
		case errors.Is(err, ErrInvalidName):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrSlugTaken):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, org)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	profile, _ := guard.ProfileFromContext(r.Context())

	org, err := a.service.Get(r.Context(), profile, chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "forbidden", http.StatusForbidden)
		case errors.Is(err, storage.ErrNotFound):
			http.Error(w, "organization not found", http.StatusNotFound)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, org)
}

type updateSettingsRequest struct {
	Name        *string `json:"name"`
	ImgbbAPIKey *string `json:"imgbb_api_key"`
}

func (a *API) updateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	profile, _ := guard.ProfileFromContext(r.Context())
	org, err := a.service.UpdateSettings(r.Context(), profile, chi.URLParam(r, "id"), req.Name, req.ImgbbAPIKey)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "forbidden", http.StatusForbidden)
		case errors.Is(err, storage.ErrNotFound):
			http.Error(w, "organization not found", http.StatusNotFound)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, org)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
