// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wisdom-forms/forms-service/internal/types"
)

const formColumns = "id, org_id, org_slug, title, description, slug, fields, status, created_by, created_at"

func (s *Storage) CreateForm(ctx context.Context, f *types.Form) (*types.Form, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateForm")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate form ID: %w", err)
	}

	fields, err := json.Marshal(f.Fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode form fields: %w", err)
	}

	var created types.Form
	var createdFields []byte
	err = s.db.Statement(ctx).
		Insert("forms").
		Columns("id", "org_id", "org_slug", "title", "description", "slug", "fields", "status", "created_by").
		Values(id.String(), f.OrgID, f.OrgSlug, f.Title, f.Description, f.Slug, fields, f.Status, f.CreatedBy).
		Suffix("RETURNING " + formColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.OrgID, &created.OrgSlug, &created.Title, &created.Description, &created.Slug, &createdFields, &created.Status, &created.CreatedBy, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert form: %w", err)
	}

	if err := json.Unmarshal(createdFields, &created.Fields); err != nil {
		return nil, fmt.Errorf("failed to decode form fields: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetFormByID(ctx context.Context, id string) (*types.Form, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetFormByID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(formColumns).
		From("forms").
		Where(sq.Eq{"id": id})

	return s.scanForm(ctx, query)
}

func (s *Storage) GetActiveFormBySlugs(ctx context.Context, orgSlug, formSlug string) (*types.Form, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetActiveFormBySlugs")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(formColumns).
		From("forms").
		Where(sq.Eq{
			"org_slug": orgSlug,
			"slug":     formSlug,
			"status":   types.FormStatusActive,
		})

	return s.scanForm(ctx, query)
}

func (s *Storage) scanForm(ctx context.Context, query sq.SelectBuilder) (*types.Form, error) {
	var f types.Form
	var fields []byte

	err := query.QueryRowContext(ctx).
		Scan(&f.ID, &f.OrgID, &f.OrgSlug, &f.Title, &f.Description, &f.Slug, &fields, &f.Status, &f.CreatedBy, &f.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get form: %w", err)
	}

	if err := json.Unmarshal(fields, &f.Fields); err != nil {
		return nil, fmt.Errorf("failed to decode form fields: %w", err)
	}

	return &f, nil
}

func (s *Storage) ListFormsByOrgID(ctx context.Context, orgID string) ([]*types.Form, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListFormsByOrgID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(formColumns).
		From("forms").
		Where(sq.Eq{"org_id": orgID}).
		OrderBy("created_at DESC")

	return s.scanForms(ctx, query)
}

func (s *Storage) ListActiveForms(ctx context.Context) ([]*types.Form, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActiveForms")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(formColumns).
		From("forms").
		Where(sq.Eq{"status": types.FormStatusActive}).
		OrderBy("created_at DESC")

	return s.scanForms(ctx, query)
}

func (s *Storage) scanForms(ctx context.Context, query sq.SelectBuilder) ([]*types.Form, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list forms: %w", err)
	}
	defer rows.Close()

	var forms []*types.Form
	for rows.Next() {
		var f types.Form
		var fields []byte
		if err := rows.Scan(&f.ID, &f.OrgID, &f.OrgSlug, &f.Title, &f.Description, &f.Slug, &fields, &f.Status, &f.CreatedBy, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan form: %w", err)
		}
		if err := json.Unmarshal(fields, &f.Fields); err != nil {
			return nil, fmt.Errorf("failed to decode form fields: %w", err)
		}
		forms = append(forms, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return forms, nil
}

func (s *Storage) CountFormsBySlug(ctx context.Context, orgID, slug string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountFormsBySlug")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("count(*)").
		From("forms").
		Where(sq.Eq{"org_id": orgID, "slug": slug}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count forms: %w", err)
	}

	return count, nil
}

func (s *Storage) CreateResponse(ctx context.Context, r *types.FormResponse) (*types.FormResponse, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateResponse")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate response ID: %w", err)
	}

	answers, err := json.Marshal(r.Answers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode answers: %w", err)
	}

	var created types.FormResponse
	var createdAnswers []byte
	err = s.db.Statement(ctx).
		Insert("responses").
		Columns("id", "form_id", "org_id", "answers").
		Values(id.String(), r.FormID, r.OrgID, answers).
		Suffix("RETURNING id, form_id, org_id, answers, submitted_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.FormID, &created.OrgID, &createdAnswers, &created.SubmittedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert response: %w", err)
	}

	if err := json.Unmarshal(createdAnswers, &created.Answers); err != nil {
		return nil, fmt.Errorf("failed to decode answers: %w", err)
	}

	return &created, nil
}

func (s *Storage) ListResponsesByFormID(ctx context.Context, formID string) ([]*types.FormResponse, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListResponsesByFormID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "form_id", "org_id", "answers", "submitted_at").
		From("responses").
		Where(sq.Eq{"form_id": formID}).
		OrderBy("submitted_at DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	defer rows.Close()

	var responses []*types.FormResponse
	for rows.Next() {
		var r types.FormResponse
		var answers []byte
		if err := rows.Scan(&r.ID, &r.FormID, &r.OrgID, &answers, &r.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		if err := json.Unmarshal(answers, &r.Answers); err != nil {
			return nil, fmt.Errorf("failed to decode answers: %w", err)
		}
		responses = append(responses, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return responses, nil
}
