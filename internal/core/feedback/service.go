// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/ctxutil"
	"github.com/taibuivan/inkwell/internal/platform/validate"
	"github.com/taibuivan/inkwell/pkg/pagination"
)

// Guard admits one submission per user per window.
type Guard interface {
	Allow(context context.Context, key string) (bool, error)
	Release(context context.Context, key string) error
	RetryAfter() int
}

// Service accepts and lists feedback.
type Service struct {
	repo   Repository
	guard  Guard
	logger *slog.Logger
}

// NewService constructs a new [Service]. guard may be nil to disable the cooldown.
func NewService(repo Repository, guard Guard, logger *slog.Logger) *Service {
	return &Service{repo: repo, guard: guard, logger: logger}
}

// Submit stores a message from userID, at most one per cooldown window.
func (service *Service) Submit(context context.Context, userID string, submission Submission) (*Feedback, error) {
	submission.Content = strings.TrimSpace(submission.Content)
	if err := validate.Struct(submission); err != nil {
		return nil, err
	}

	admitted := false
	if service.guard != nil {
		allowed, err := service.guard.Allow(context, userID)
		switch {
		case err != nil:
			ctxutil.GetLogger(context).WarnContext(context, "feedback_guard_unavailable", slog.Any("error", err))
		case !allowed:
			return nil, apperr.RateLimited(service.guard.RetryAfter())
		default:
			admitted = true
		}
	}

	feedback := &Feedback{UserID: userID, Content: submission.Content}
	if err := service.repo.Create(context, feedback); err != nil {
		if admitted {
			if releaseErr := service.guard.Release(context, userID); releaseErr != nil {
				ctxutil.GetLogger(context).WarnContext(context, "feedback_guard_release_failed", slog.Any("error", releaseErr))
			}
		}
		return nil, err
	}

	service.logger.Info("feedback_submitted",
		slog.Int64("feedback_id", feedback.ID),
		slog.String("user_id", userID),
	)
	return feedback, nil
}

// List pages through all feedback, newest first.
func (service *Service) List(context context.Context, page pagination.Params) (pagination.Page[*Feedback], error) {
	items, total, err := service.repo.List(context, page.Limit(), page.Offset())
	if err != nil {
		return pagination.Page[*Feedback]{}, err
	}
	return pagination.NewPage(items, total, page), nil
}
