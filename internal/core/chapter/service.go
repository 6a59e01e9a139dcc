// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/inkwell/internal/core/author"
	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/ctxutil"
	"github.com/taibuivan/inkwell/internal/platform/validate"
	"github.com/taibuivan/inkwell/pkg/pagination"
	"github.com/taibuivan/inkwell/pkg/textutil"
)

// FieldBookID is the query parameter and validation field naming a book.
const FieldBookID = "bookId"

// Authors resolves the author profile a user acts as.
type Authors interface {
	ByUser(context context.Context, userID string) (*author.Profile, error)
}

// # Service Layer

// Service orchestrates chapter reads and author-side chapter management.
type Service struct {
	repo    Repository
	authors Authors
	logger  *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, authors Authors, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		authors: authors,
		logger:  logger,
	}
}

// # Reader Operations

/*
List pages through a book's chapters in reading order.

Parameters:
  - context: context.Context
  - bookID: int64
  - page: pagination.Params

Returns:
  - pagination.Page[*Chapter]: the page and the book's chapter total
  - error: VALIDATION_ERROR when bookID is missing
*/
func (service *Service) List(context context.Context, bookID int64, page pagination.Params) (pagination.Page[*Chapter], error) {
	if bookID <= 0 {
		return pagination.Page[*Chapter]{}, validate.RequiredError(FieldBookID, "This field is required")
	}

	chapters, total, err := service.repo.List(context, bookID, page.Limit(), page.Offset())
	if err != nil {
		return pagination.Page[*Chapter]{}, err
	}

	return pagination.NewPage(chapters, total, page), nil
}

// Catalog returns every chapter of a book in reading order.
func (service *Service) Catalog(context context.Context, bookID int64) ([]*Chapter, error) {
	if bookID <= 0 {
		return nil, validate.RequiredError(FieldBookID, "This field is required")
	}
	return service.repo.Catalog(context, bookID)
}

// About returns the latest-chapters panel of a book.
func (service *Service) About(context context.Context, bookID int64) (*About, error) {
	if bookID <= 0 {
		return nil, validate.RequiredError(FieldBookID, "This field is required")
	}
	return service.repo.About(context, bookID)
}

/*
Read returns a chapter with its text and book header.

Description: A chapter row without content is a data-integrity fault. It is
logged as an error and reported to the client as NOT_FOUND, like a chapter
that does not exist.
*/
func (service *Service) Read(context context.Context, chapterID int64) (*Reading, error) {
	reading, err := service.repo.Reading(context, chapterID)
	if errors.Is(err, ErrContentMissing) {
		ctxutil.GetLogger(context).ErrorContext(context, "chapter_content_missing",
			slog.Int64("chapter_id", chapterID),
		)
	}
	return reading, err
}

// Previous returns the id of the chapter before chapterID, or nil for the first chapter.
func (service *Service) Previous(context context.Context, chapterID int64) (*int64, error) {
	neighbours, err := service.repo.Neighbours(context, chapterID)
	if err != nil {
		return nil, err
	}
	return neighbours.Prev, nil
}

// Next returns the id of the chapter after chapterID, or nil for the last chapter.
func (service *Service) Next(context context.Context, chapterID int64) (*int64, error) {
	neighbours, err := service.repo.Neighbours(context, chapterID)
	if err != nil {
		return nil, err
	}
	return neighbours.Next, nil
}

// # Author Operations

// AuthorChapters pages through the chapters of a book the caller owns.
func (service *Service) AuthorChapters(context context.Context, userID string, bookID int64, page pagination.Params) (pagination.Page[*Chapter], error) {
	profile, err := service.authors.ByUser(context, userID)
	if err != nil {
		return pagination.Page[*Chapter]{}, err
	}

	ownerID, err := service.repo.BookAuthorID(context, bookID)
	if err != nil {
		return pagination.Page[*Chapter]{}, err
	}
	if ownerID != profile.ID {
		return pagination.Page[*Chapter]{}, apperr.Forbidden("You are not the author of this book")
	}

	return service.List(context, bookID, page)
}

// Get returns a chapter of the caller's book with its content, for editing.
func (service *Service) Get(context context.Context, userID string, chapterID int64) (*Edit, error) {
	profile, err := service.authors.ByUser(context, userID)
	if err != nil {
		return nil, err
	}

	ownerID, err := service.repo.ChapterAuthorID(context, chapterID)
	if err != nil {
		return nil, err
	}
	if ownerID != profile.ID {
		return nil, apperr.Forbidden("You are not the author of this book")
	}

	return service.repo.Get(context, chapterID)
}

/*
Create appends a chapter to a book the caller owns.

Parameters:
  - context: context.Context
  - userID: string (identity subject)
  - bookID: int64
  - draft: Draft

Returns:
  - *Chapter: the stored chapter with its assigned number
  - error: VALIDATION_ERROR, FORBIDDEN, NOT_FOUND or CONFLICT
*/
func (service *Service) Create(context context.Context, userID string, bookID int64, draft Draft) (*Chapter, error) {
	draft, profile, err := service.prepare(context, userID, draft)
	if err != nil {
		return nil, err
	}

	chapter := &Chapter{
		BookID:           bookID,
		ChapterName:      draft.ChapterName,
		ChapterWordCount: textutil.CountWords(draft.Content),
		IsVip:            draft.IsVip,
	}

	if err := service.repo.Create(context, profile.ID, chapter, draft.Content); err != nil {
		return nil, err
	}

	service.logger.Info("chapter_created",
		slog.Int64("book_id", bookID),
		slog.Int64("chapter_id", chapter.ID),
		slog.Int("chapter_num", chapter.ChapterNum),
	)
	return chapter, nil
}

// Update rewrites a chapter of a book the caller owns.
func (service *Service) Update(context context.Context, userID string, chapterID int64, draft Draft) (*Chapter, error) {
	draft, profile, err := service.prepare(context, userID, draft)
	if err != nil {
		return nil, err
	}

	chapter := &Chapter{
		ID:               chapterID,
		ChapterName:      draft.ChapterName,
		ChapterWordCount: textutil.CountWords(draft.Content),
		IsVip:            draft.IsVip,
	}

	if err := service.repo.Update(context, profile.ID, chapter, draft.Content); err != nil {
		return nil, err
	}

	service.logger.Info("chapter_updated", slog.Int64("chapter_id", chapterID))
	return chapter, nil
}

// Delete removes a chapter of a book the caller owns.
func (service *Service) Delete(context context.Context, userID string, chapterID int64) error {
	profile, err := service.authors.ByUser(context, userID)
	if err != nil {
		return err
	}

	if err := service.repo.Delete(context, profile.ID, chapterID); err != nil {
		return err
	}

	service.logger.Warn("chapter_deleted",
		slog.Int64("chapter_id", chapterID),
		slog.Int64("author_id", profile.ID),
	)
	return nil
}

func (service *Service) prepare(context context.Context, userID string, draft Draft) (Draft, *author.Profile, error) {
	draft = draft.Normalize()
	if err := validate.Struct(draft); err != nil {
		return draft, nil, err
	}

	profile, err := service.authors.ByUser(context, userID)
	if err != nil {
		return draft, nil, err
	}
	return draft, profile, nil
}
