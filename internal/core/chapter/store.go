// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

import "context"

// LatestLimit is the number of chapters in the about panel.
const LatestLimit = 5

// # Chapter Data Access

// Repository defines the data access contract for chapters and their content.
type Repository interface {

	/*
		List pages through a book's chapters in chapter order.

		Returns:
		  - []*Chapter: the page
		  - int64: number of chapters in the book
	*/
	List(context context.Context, bookID int64, limit, offset int) ([]*Chapter, int64, error)

	// Catalog returns every chapter of a book in chapter order.
	Catalog(context context.Context, bookID int64) ([]*Chapter, error)

	// About returns the book head, the newest chapters and a summary of the last one.
	About(context context.Context, bookID int64) (*About, error)

	/*
		Reading joins a chapter with its book and content.

		Returns:
		  - error: NOT_FOUND when the chapter does not exist; NOT_FOUND wrapping
		    [ErrContentMissing] when the chapter exists without content
	*/
	Reading(context context.Context, chapterID int64) (*Reading, error)

	// Neighbours resolves the previous and next chapter ids in the same book.
	Neighbours(context context.Context, chapterID int64) (*Neighbours, error)

	// Get returns a chapter with its content for editing.
	Get(context context.Context, chapterID int64) (*Edit, error)

	// BookAuthorID returns the owner of a book.
	BookAuthorID(context context.Context, bookID int64) (int64, error)

	// ChapterAuthorID returns the owner of the book a chapter belongs to.
	ChapterAuthorID(context context.Context, chapterID int64) (int64, error)

	/*
		Create appends a chapter to chapter.BookID on behalf of authorID.

		Description: Fills ID, ChapterNum and the timestamps of chapter.
	*/
	Create(context context.Context, authorID int64, chapter *Chapter, content string) error

	// Update rewrites chapter.ID and its content on behalf of authorID.
	Update(context context.Context, authorID int64, chapter *Chapter, content string) error

	// Delete removes a chapter and its content on behalf of authorID.
	Delete(context context.Context, authorID, chapterID int64) error
}
