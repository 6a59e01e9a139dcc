// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/validate"
)

// # Service Layer

// Service registers authors and answers "which profile does this user own".
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Status reports whether userID has registered, with the profile when it has.
func (service *Service) Status(context context.Context, userID string) (*Status, error) {
	profile, err := service.repo.FindByUserID(context, userID)
	if apperr.HasCode(err, apperr.CodeNotFound) {
		return &Status{Registered: false}, nil
	}
	if err != nil {
		return nil, err
	}

	return &Status{Registered: true, Profile: profile}, nil
}

/*
Register creates the caller's author profile.

Returns:
  - *Profile: the stored profile
  - error: VALIDATION_ERROR for bad input, CONFLICT when already registered
*/
func (service *Service) Register(context context.Context, userID string, input Registration) (*Profile, error) {
	input.PenName = strings.TrimSpace(input.PenName)
	input.Email = strings.TrimSpace(input.Email)

	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	profile := &Profile{
		UserID:        userID,
		PenName:       input.PenName,
		TelPhone:      input.TelPhone,
		ChatAccount:   input.ChatAccount,
		Email:         input.Email,
		WorkDirection: input.WorkDirection,
		Status:        StatusActive,
	}

	if err := service.repo.Create(context, profile); err != nil {
		return nil, err
	}

	service.logger.Info("author_registered",
		slog.Int64("author_id", profile.ID),
		slog.String("user_id", userID),
	)
	return profile, nil
}

// ByUser returns the active profile of userID. Users without one, or with a
// disabled one, get FORBIDDEN: every caller of ByUser is about to act as an author.
func (service *Service) ByUser(context context.Context, userID string) (*Profile, error) {
	profile, err := service.repo.FindByUserID(context, userID)
	if apperr.HasCode(err, apperr.CodeNotFound) {
		return nil, apperr.Forbidden("Author profile required")
	}
	if err != nil {
		return nil, err
	}

	if !profile.Active() {
		return nil, apperr.Forbidden("Author profile is disabled")
	}

	return profile, nil
}
