// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/sec"
	"github.com/taibuivan/inkwell/internal/platform/validate"
	"github.com/taibuivan/inkwell/pkg/pointer"
)

// # Service Layer

// Service manages the reader's own mirror row.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

/*
Me returns the caller's mirror row, creating it from the claims on first use.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (verified identity)

Returns:
  - *User: the stored row
  - error: storage failures
*/
func (service *Service) Me(context context.Context, claims *sec.AuthClaims) (*User, error) {
	user, err := service.repository.FindByID(context, claims.UserID)
	if apperr.HasCode(err, apperr.CodeNotFound) {
		return service.repository.Ensure(context, FromClaims(claims))
	}
	return user, err
}

/*
UpdateMe applies a partial profile update to the caller's mirror row.

Description: Fields are trimmed before validation; a nickname that is blank
after trimming is rejected.
*/
func (service *Service) UpdateMe(context context.Context, claims *sec.AuthClaims, input ProfileUpdate) (*User, error) {
	if input.NickName != nil {
		input.NickName = pointer.To(strings.TrimSpace(*input.NickName))
	}
	if input.UserPhoto != nil {
		input.UserPhoto = pointer.To(strings.TrimSpace(*input.UserPhoto))
	}

	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	user, err := service.Me(context, claims)
	if err != nil {
		return nil, err
	}

	user.NickName = pointer.Fallback(input.NickName, user.NickName)
	user.UserPhoto = pointer.Fallback(input.UserPhoto, user.UserPhoto)

	if err := service.repository.Update(context, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_profile_updated", slog.String("user_id", user.ID))
	return user, nil
}
