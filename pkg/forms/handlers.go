// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package forms

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wisdom-forms/forms-service/internal/logging"
	"github.com/wisdom-forms/forms-service/internal/storage"
	"github.com/wisdom-forms/forms-service/internal/types"
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
	// Public surface, no authentication.
	mux.Get("/api/v0/catalog", a.publicCatalog)
	mux.Get("/api/v0/catalog/{orgSlug}/{formSlug}", a.publicForm)
	mux.Post("/api/v0/catalog/{orgSlug}/{formSlug}/responses", a.submitResponse)

	mux.Route("/api/v0/organizations/{id}/forms", func(r chi.Router) {
		r.Use(a.guard.Protect)
		r.Get("/", a.listForms)
		r.Post("/", a.createForm)
	})
	mux.Route("/api/v0/organizations/{id}/images", func(r chi.Router) {
		r.Use(a.guard.Protect)
		r.Post("/", a.uploadImage)
	})
	mux.Route("/api/v0/forms/{id}/responses", func(r chi.Router) {
		r.Use(a.guard.Protect)
		r.Get("/", a.listResponses)
	})
}

func (a *API) publicCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := a.service.ListPublicCatalog(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, catalog)
}

func (a *API) publicForm(w http.ResponseWriter, r *http.Request) {
	form, err := a.service.GetPublicForm(r.Context(), chi.URLParam(r, "orgSlug"), chi.URLParam(r, "formSlug"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "form not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, form)
}

type submitRequest struct {
	Answers map[string]interface{} `json:"answers"`
}

func (a *API) submitResponse(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := a.service.SubmitResponse(r.Context(), chi.URLParam(r, "orgSlug"), chi.URLParam(r, "formSlug"), req.Answers)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "form not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

func (a *API) listForms(w http.ResponseWriter, r *http.Request) {
	profile, _ := guard.ProfileFromContext(r.Context())

	list, err := a.service.ListForms(r.Context(), profile, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

type createFormRequest struct {
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Fields      []map[string]interface{} `json:"fields"`
	Status      string                   `json:"status"`
}

func (a *API) createForm(w http.ResponseWriter, r *http.Request) {
	var req createFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	profile, _ := guard.ProfileFromContext(r.Context())
	form, err := a.service.CreateForm(r.Context(), profile, &types.Form{
		OrgID:       chi.URLParam(r, "id"),
		Title:       req.Title,
		Description: req.Description,
		Fields:      req.Fields,
		Status:      req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "forbidden", http.StatusForbidden)
		case errors.Is(err, ErrInvalidTitle), errors.Is(err, ErrInvalidStatus):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrSlugTaken):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, form)
}

func (a *API) listResponses(w http.ResponseWriter, r *http.Request) {
	profile, _ := guard.ProfileFromContext(r.Context())

	responses, err := a.service.ListResponses(r.Context(), profile, chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "forbidden", http.StatusForbidden)
		case errors.Is(err, storage.ErrNotFound):
			http.Error(w, "form not found", http.StatusNotFound)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, responses)
}

type uploadImageRequest struct {
	Image string `json:"image"`
}

type uploadImageResponse struct {
	URL string `json:"url"`
}

func (a *API) uploadImage(w http.ResponseWriter, r *http.Request) {
	var req uploadImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	profile, _ := guard.ProfileFromContext(r.Context())
	url, err := a.service.UploadImage(r.Context(), profile, chi.URLParam(r, "id"), req.Image)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "forbidden", http.StatusForbidden)
		case errors.Is(err, ErrNoUploadKey):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			a.logger.Errorf("image upload failed: %v", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, uploadImageResponse{URL: url})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
