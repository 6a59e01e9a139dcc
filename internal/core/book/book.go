// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package book owns the catalogue: categories, search, ranks, the home page
// slots, book detail and the author-side book management.
package book

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/taibuivan/inkwell/pkg/pagination"
)

// Work directions split the catalogue into two audiences.
const (
	DirectionMale   = 0
	DirectionFemale = 1
)

// Book statuses.
const (
	StatusSerializing = 0
	StatusCompleted   = 1
)

// Book is a row of book_info with its denormalized author, category and
// last-chapter fields.
type Book struct {
	ID                    int64      `json:"id"`
	WorkDirection         int        `json:"workDirection"`
	CategoryID            int64      `json:"categoryId"`
	CategoryName          string     `json:"categoryName"`
	PicURL                string     `json:"picUrl"`
	BookName              string     `json:"bookName"`
	AuthorID              int64      `json:"authorId"`
	AuthorName            string     `json:"authorName"`
	BookDesc              string     `json:"bookDesc"`
	Score                 int        `json:"score"`
	BookStatus            int        `json:"bookStatus"`
	VisitCount            int64      `json:"visitCount"`
	WordCount             int        `json:"wordCount"`
	CommentCount          int        `json:"commentCount"`
	LastChapterID         *int64     `json:"lastChapterId"`
	LastChapterName       *string    `json:"lastChapterName"`
	LastChapterUpdateTime *time.Time `json:"lastChapterUpdateTime"`
	IsVip                 int        `json:"isVip"`
	CreateTime            time.Time  `json:"createTime"`
	UpdateTime            time.Time  `json:"updateTime"`
}

// Category groups books within one work direction.
type Category struct {
	ID            int64  `json:"id"`
	WorkDirection int    `json:"workDirection"`
	Name          string `json:"name"`
	Sort          int    `json:"sort"`
}

// HomeSlot is where a curated book appears on the home page.
type HomeSlot int

const (
	SlotCarousel HomeSlot = iota
	SlotTopList
	SlotWeekly
	SlotHot
	SlotFeatured
)

// HomeBook is a curated book with its slot type.
type HomeBook struct {
	Type HomeSlot `json:"type"`
	Book
}

// # Ranks

// RankType names one of the fixed leaderboards.
type RankType string

const (
	RankVisit  RankType = "visit_rank"
	RankNewest RankType = "newest_rank"
	RankUpdate RankType = "update_rank"
)

// RankLimit is the length of every leaderboard.
const RankLimit = 20

// RecommendLimit bounds the "readers also liked" list.
const RecommendLimit = 4

// Valid reports whether r is a known leaderboard.
func (r RankType) Valid() bool {
	switch r {
	case RankVisit, RankNewest, RankUpdate:
		return true
	}
	return false
}

// # Search

// Sort keys accepted by [Filter].
const (
	SortCreateTime = "create_time"
	SortVisitCount = "visit_count"
	SortUpdateTime = "update_time"
	SortWordCount  = "word_count"
)

// Filter is the optional predicate set of a catalogue search. A nil pointer
// or empty string means "no constraint".
type Filter struct {
	WorkDirection *int       `json:"workDirection"`
	CategoryID    *int64     `json:"categoryId"`
	BookStatus    *int       `json:"bookStatus"`
	WordCountMin  *int       `json:"wordCountMin"`
	WordCountMax  *int       `json:"wordCountMax"`
	Keyword       string     `json:"keyword"`
	UpdatedSince  *time.Time `json:"updateTimeMin"`
	Sort          string     `json:"sort"`
}

// Validate implements validation.Validatable.
func (f Filter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.WorkDirection, validation.In(DirectionMale, DirectionFemale)),
		validation.Field(&f.CategoryID, validation.Min(int64(1))),
		validation.Field(&f.BookStatus, validation.In(StatusSerializing, StatusCompleted)),
		validation.Field(&f.WordCountMin, validation.Min(0)),
		validation.Field(&f.WordCountMax, validation.Min(0), validation.By(f.checkWordCountRange)),
		validation.Field(&f.Keyword, validation.RuneLength(0, 50)),
		validation.Field(&f.Sort, validation.In(SortCreateTime, SortVisitCount, SortUpdateTime, SortWordCount)),
	)
}

func (f Filter) checkWordCountRange(any) error {
	if f.WordCountMin != nil && f.WordCountMax != nil && *f.WordCountMin > *f.WordCountMax {
		return validation.NewError("validation_word_count_range", "must be no less than wordCountMin")
	}
	return nil
}

// SearchRequest is the body of POST /books.
type SearchRequest struct {
	Filter
	PageNum  int `json:"pageNum"`
	PageSize int `json:"pageSize"`
}

// Validate implements validation.Validatable.
func (r SearchRequest) Validate() error {
	if err := r.Filter.Validate(); err != nil {
		return err
	}

	return validation.ValidateStruct(&r,
		validation.Field(&r.PageNum, validation.Min(0)),
		validation.Field(&r.PageSize, validation.Min(0), validation.Max(pagination.MaxPageSize)),
	)
}

// Page returns the clamped pagination of the request.
func (r SearchRequest) Page() pagination.Params {
	return pagination.New(r.PageNum, r.PageSize)
}

// # Author writes

// Draft is the body of POST /author/book and PUT /author/book/{id}.
type Draft struct {
	WorkDirection int    `json:"workDirection"`
	CategoryID    int64  `json:"categoryId"`
	PicURL        string `json:"picUrl"`
	BookName      string `json:"bookName"`
	BookDesc      string `json:"bookDesc"`
	BookStatus    int    `json:"bookStatus"`
	IsVip         int    `json:"isVip"`
}

// Validate implements validation.Validatable.
func (d Draft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.WorkDirection, validation.In(DirectionMale, DirectionFemale)),
		validation.Field(&d.CategoryID, validation.Required),
		validation.Field(&d.PicURL, validation.RuneLength(0, 200)),
		validation.Field(&d.BookName, validation.Required, validation.RuneLength(1, 50)),
		validation.Field(&d.BookDesc, validation.RuneLength(0, 2000)),
		validation.Field(&d.BookStatus, validation.In(StatusSerializing, StatusCompleted)),
		validation.Field(&d.IsVip, validation.In(0, 1)),
	)
}

// VisitRequest is the body of POST /front/book/visit.
type VisitRequest struct {
	BookID int64 `json:"bookId"`
}
