// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import "context"

// Repository is the catalogue's data access contract.
type Repository interface {

	// Reads
	ListCategories(context context.Context, workDirection int) ([]*Category, error)
	FindCategory(context context.Context, id int64) (*Category, error)
	Search(context context.Context, query SearchQuery) ([]*Book, int64, error)
	Rank(context context.Context, rank RankType, workDirection int, limit int) ([]*Book, error)
	ListHomeBooks(context context.Context) ([]*HomeBook, error)
	FindByID(context context.Context, id int64) (*Book, error)
	ListRecommended(context context.Context, book *Book, limit int) ([]*Book, error)
	ListByAuthor(context context.Context, authorID int64, limit, offset int) ([]*Book, int64, error)

	// Writes
	IncrementVisit(context context.Context, id int64) error
	Create(context context.Context, book *Book) error
	Update(context context.Context, book *Book) error
	Delete(context context.Context, id, authorID int64) error
}
