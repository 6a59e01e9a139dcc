// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/ctxutil"
	"github.com/taibuivan/inkwell/internal/platform/sec"
	"github.com/taibuivan/inkwell/internal/platform/validate"
	"github.com/taibuivan/inkwell/internal/users/account"
	"github.com/taibuivan/inkwell/pkg/pagination"
)

// Guard admits one action per key per window.
type Guard interface {
	Allow(context context.Context, key string) (bool, error)
	Release(context context.Context, key string) error
	RetryAfter() int
}

// # Service Layer

// Service orchestrates reading and writing comments.
type Service struct {
	repo   Repository
	guard  Guard
	logger *slog.Logger
}

// NewService constructs a new [Service]. guard may be nil to disable the cooldown.
func NewService(repo Repository, guard Guard, logger *slog.Logger) *Service {
	return &Service{repo: repo, guard: guard, logger: logger}
}

// # Reads

// Newest returns the latest comments of a book with the book's comment total.
func (service *Service) Newest(context context.Context, bookID int64) (*Newest, error) {
	if bookID <= 0 {
		return nil, validate.RequiredError("bookId", "This field is required")
	}

	comments, total, err := service.repo.ListByBook(context, bookID, NewestLimit, 0)
	if err != nil {
		return nil, err
	}
	return &Newest{CommentTotal: total, Comments: comments}, nil
}

// List pages through the comments of a book, newest first.
func (service *Service) List(context context.Context, bookID int64, page pagination.Params) (pagination.Page[*Comment], error) {
	if bookID <= 0 {
		return pagination.Page[*Comment]{}, validate.RequiredError("bookId", "This field is required")
	}

	comments, total, err := service.repo.ListByBook(context, bookID, page.Limit(), page.Offset())
	if err != nil {
		return pagination.Page[*Comment]{}, err
	}
	return pagination.NewPage(comments, total, page), nil
}

// ListByUser pages through the caller's own comments, newest first.
func (service *Service) ListByUser(context context.Context, userID string, page pagination.Params) (pagination.Page[*Comment], error) {
	comments, total, err := service.repo.ListByUser(context, userID, page.Limit(), page.Offset())
	if err != nil {
		return pagination.Page[*Comment]{}, err
	}
	return pagination.NewPage(comments, total, page), nil
}

// # Writes

/*
Create posts a comment for the caller.

Description: The cooldown guard is consulted first. A refused caller gets
RATE_LIMITED with the window length as retry hint. When the guard store is
unreachable the comment is accepted. A write that fails after admission
releases the guard key so the retry is not penalized.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (verified identity, mirrored into user_info)
  - draft: Draft

Returns:
  - *Comment: the stored comment
  - error: VALIDATION_ERROR, RATE_LIMITED, NOT_FOUND (book)
*/
func (service *Service) Create(context context.Context, claims *sec.AuthClaims, draft Draft) (*Comment, error) {
	draft.CommentContent = strings.TrimSpace(draft.CommentContent)
	if err := validate.Struct(draft); err != nil {
		return nil, err
	}

	admitted, err := service.admit(context, claims.UserID)
	if err != nil {
		return nil, err
	}

	author := account.FromClaims(claims)
	comment := &Comment{
		BookID:         draft.BookID,
		CommentContent: draft.CommentContent,
	}

	if err := service.repo.Create(context, author, comment); err != nil {
		if admitted {
			service.release(context, claims.UserID)
		}
		return nil, err
	}

	service.logger.Info("comment_created",
		slog.Int64("comment_id", comment.ID),
		slog.Int64("book_id", comment.BookID),
		slog.String("user_id", claims.UserID),
	)
	return comment, nil
}

// Update rewrites the caller's own comment.
func (service *Service) Update(context context.Context, userID string, id int64, edit Edit) (*Comment, error) {
	edit.CommentContent = strings.TrimSpace(edit.CommentContent)
	if err := validate.Struct(edit); err != nil {
		return nil, err
	}

	comment, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	if comment.CommentUserID != userID {
		return nil, apperr.Forbidden("You can only edit your own comments")
	}

	comment.CommentContent = edit.CommentContent
	if err := service.repo.Update(context, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes a comment. Its author and administrators may delete it.
func (service *Service) Delete(context context.Context, claims *sec.AuthClaims, id int64) error {
	comment, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}

	owner := comment.CommentUserID == claims.UserID
	if !owner && !claims.IsAdmin() {
		return apperr.Forbidden("You can only delete your own comments")
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("comment_deleted",
		slog.Int64("comment_id", id),
		slog.Int64("book_id", comment.BookID),
		slog.Bool("by_admin", !owner),
	)
	return nil
}

// admit consults the cooldown guard. It reports whether a key was taken.
func (service *Service) admit(context context.Context, userID string) (bool, error) {
	if service.guard == nil {
		return false, nil
	}

	admitted, err := service.guard.Allow(context, userID)
	if err != nil {
		ctxutil.GetLogger(context).WarnContext(context, "comment_guard_unavailable", slog.Any("error", err))
		return false, nil
	}
	if !admitted {
		return false, apperr.RateLimited(service.guard.RetryAfter())
	}
	return true, nil
}

func (service *Service) release(context context.Context, userID string) {
	if err := service.guard.Release(context, userID); err != nil {
		ctxutil.GetLogger(context).WarnContext(context, "comment_guard_release_failed", slog.Any("error", err))
	}
}
