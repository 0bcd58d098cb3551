// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package membership

import "errors"

var (
	// ErrUnauthorized means the caller lacks the role required for the operation.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidEmail means the invitation email fails validation.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrInvalidRole means the invitation role is not a known membership role.
	ErrInvalidRole = errors.New("invalid membership role")
	// ErrAlreadyInvited means a live invitation already exists for the pair.
	ErrAlreadyInvited = errors.New("a live invitation already exists for this email")
)
