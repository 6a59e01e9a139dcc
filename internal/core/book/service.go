// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/inkwell/internal/core/author"
	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/ctxutil"
	"github.com/taibuivan/inkwell/internal/platform/validate"
	"github.com/taibuivan/inkwell/pkg/pagination"
)

// Authors resolves the author profile a user acts as.
type Authors interface {
	ByUser(context context.Context, userID string) (*author.Profile, error)
}

// Guard admits an action at most once per key per window.
type Guard interface {
	Allow(context context.Context, key string) (bool, error)
	Release(context context.Context, key string) error
}

// # Service Layer

// Service orchestrates catalogue reads and author-side book management.
type Service struct {
	repo       Repository
	authors    Authors
	visitGuard Guard
	logger     *slog.Logger
}

// NewService constructs a new [Service]. visitGuard may be nil, in which case
// every visit is counted.
func NewService(repo Repository, authors Authors, visitGuard Guard, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		authors:    authors,
		visitGuard: visitGuard,
		logger:     logger,
	}
}

// # Catalogue Reads

// Categories lists the categories of one work direction in display order.
func (service *Service) Categories(context context.Context, workDirection int) ([]*Category, error) {
	if workDirection != DirectionMale && workDirection != DirectionFemale {
		return nil, validate.RequiredError("workDirection", "Must be 0 or 1")
	}
	return service.repo.ListCategories(context, workDirection)
}

/*
Search runs a filtered, paginated catalogue search.

Parameters:
  - context: context.Context
  - request: SearchRequest (filter fields plus pageNum/pageSize)

Returns:
  - pagination.Page[*Book]: the page and the size of the whole filtered set
  - error: VALIDATION_ERROR for a malformed filter
*/
func (service *Service) Search(context context.Context, request SearchRequest) (pagination.Page[*Book], error) {
	if err := validate.Struct(request); err != nil {
		return pagination.Page[*Book]{}, err
	}

	page := request.Page()
	query := BuildSearch(request.Filter, page)

	books, total, err := service.repo.Search(context, query)
	if err != nil {
		return pagination.Page[*Book]{}, err
	}

	return pagination.NewPage(books, total, page), nil
}

// Rank returns one of the fixed leaderboards for a work direction.
func (service *Service) Rank(context context.Context, rank RankType, workDirection int) ([]*Book, error) {
	if !rank.Valid() {
		return nil, apperr.ValidationError(fmt.Sprintf("Unknown rank type %q", rank))
	}
	if workDirection != DirectionMale && workDirection != DirectionFemale {
		return nil, validate.RequiredError("workDirection", "Must be 0 or 1")
	}
	return service.repo.Rank(context, rank, workDirection, RankLimit)
}

// HomeBooks returns the curated home page slots ordered by slot type and position.
func (service *Service) HomeBooks(context context.Context) ([]*HomeBook, error) {
	return service.repo.ListHomeBooks(context)
}

// Detail returns a single book.
func (service *Service) Detail(context context.Context, id int64) (*Book, error) {
	return service.repo.FindByID(context, id)
}

// Recommend returns books from the same category, most visited first.
func (service *Service) Recommend(context context.Context, bookID int64) ([]*Book, error) {
	book, err := service.repo.FindByID(context, bookID)
	if err != nil {
		return nil, err
	}
	return service.repo.ListRecommended(context, book, RecommendLimit)
}

/*
AddVisit counts a read of bookID by the client at clientIP.

Description: A client is counted at most once per book per visit window. When
the guard store is unreachable the visit is counted anyway; an inflated count
is preferable to a failed page view. A count that fails after admission
releases the key so the next visit is counted.

Returns:
  - bool: whether the visit was counted
*/
func (service *Service) AddVisit(context context.Context, bookID int64, clientIP string) (bool, error) {
	if bookID <= 0 {
		return false, validate.RequiredError("bookId", "This field is required")
	}

	key := fmt.Sprintf("%d:%s", bookID, clientIP)
	admitted := false
	if service.visitGuard != nil {
		var err error
		admitted, err = service.visitGuard.Allow(context, key)
		if err != nil {
			ctxutil.GetLogger(context).WarnContext(context, "visit_guard_unavailable", slog.Any("error", err))
		} else if !admitted {
			return false, nil
		}
	}

	if err := service.repo.IncrementVisit(context, bookID); err != nil {
		if admitted {
			service.releaseVisit(context, key)
		}
		return false, err
	}
	return true, nil
}

func (service *Service) releaseVisit(context context.Context, key string) {
	if err := service.visitGuard.Release(context, key); err != nil {
		ctxutil.GetLogger(context).WarnContext(context, "visit_guard_release_failed", slog.Any("error", err))
	}
}

// # Author Management

// AuthorBooks pages through the caller's own books.
func (service *Service) AuthorBooks(context context.Context, userID string, page pagination.Params) (pagination.Page[*Book], error) {
	profile, err := service.authors.ByUser(context, userID)
	if err != nil {
		return pagination.Page[*Book]{}, err
	}

	books, total, err := service.repo.ListByAuthor(context, profile.ID, page.Limit(), page.Offset())
	if err != nil {
		return pagination.Page[*Book]{}, err
	}

	return pagination.NewPage(books, total, page), nil
}

// Publish creates a book owned by the caller's author profile.
func (service *Service) Publish(context context.Context, userID string, draft Draft) (*Book, error) {
	profile, category, err := service.prepare(context, userID, draft)
	if err != nil {
		return nil, err
	}

	book := &Book{AuthorID: profile.ID, AuthorName: profile.PenName}
	applyDraft(book, draft, category)

	if err := service.repo.Create(context, book); err != nil {
		return nil, err
	}

	service.logger.Info("book_created",
		slog.Int64("book_id", book.ID),
		slog.Int64("author_id", profile.ID),
	)
	return book, nil
}

// Update rewrites a book the caller owns.
func (service *Service) Update(context context.Context, userID string, id int64, draft Draft) (*Book, error) {
	profile, category, err := service.prepare(context, userID, draft)
	if err != nil {
		return nil, err
	}

	book := &Book{ID: id, AuthorID: profile.ID}
	applyDraft(book, draft, category)

	if err := service.repo.Update(context, book); err != nil {
		return nil, err
	}

	service.logger.Info("book_updated", slog.Int64("book_id", id))
	return book, nil
}

// Delete removes a book the caller owns, with its chapters and comments.
func (service *Service) Delete(context context.Context, userID string, id int64) error {
	profile, err := service.authors.ByUser(context, userID)
	if err != nil {
		return err
	}

	if err := service.repo.Delete(context, id, profile.ID); err != nil {
		return err
	}

	service.logger.Warn("book_deleted",
		slog.Int64("book_id", id),
		slog.Int64("author_id", profile.ID),
	)
	return nil
}

// prepare validates a draft and resolves the caller's profile and the category.
func (service *Service) prepare(context context.Context, userID string, draft Draft) (*author.Profile, *Category, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, nil, err
	}

	profile, err := service.authors.ByUser(context, userID)
	if err != nil {
		return nil, nil, err
	}

	category, err := service.repo.FindCategory(context, draft.CategoryID)
	if apperr.HasCode(err, apperr.CodeNotFound) {
		return nil, nil, validate.RequiredError("categoryId", "Unknown category")
	}
	if err != nil {
		return nil, nil, err
	}

	if category.WorkDirection != draft.WorkDirection {
		return nil, nil, validate.RequiredError("categoryId", "Category belongs to the other work direction")
	}

	return profile, category, nil
}

func applyDraft(book *Book, draft Draft, category *Category) {
	book.WorkDirection = draft.WorkDirection
	book.CategoryID = category.ID
	book.CategoryName = category.Name
	book.PicURL = draft.PicURL
	book.BookName = draft.BookName
	book.BookDesc = draft.BookDesc
	book.BookStatus = draft.BookStatus
	book.IsVip = draft.IsVip
	book.UpdateTime = time.Now()
}
