// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package chapter owns the chapters of a book and their text.

# Reading

Readers page through a book's chapters, open the catalog, read a chapter with
its book header, and step to the previous or next chapter by chapter number.

# Writing

Authors create, edit and delete chapters of the books they own. Every write is
one transaction that keeps the book's denormalized fields (last chapter
pointer, word count) in step with its chapters.
*/
package chapter

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Chapter is a row of book_chapter.
type Chapter struct {
	ID                int64     `json:"id"`
	BookID            int64     `json:"bookId"`
	ChapterNum        int       `json:"chapterNum"`
	ChapterName       string    `json:"chapterName"`
	ChapterWordCount  int       `json:"chapterWordCount"`
	IsVip             int       `json:"isVip"`
	CreateTime        time.Time `json:"createTime"`
	ChapterUpdateTime time.Time `json:"chapterUpdateTime"`
}

// BookHead is the book summary shown above a chapter list.
type BookHead struct {
	ID                    int64      `json:"id"`
	BookName              string     `json:"bookName"`
	LastChapterID         *int64     `json:"lastChapterId"`
	LastChapterName       *string    `json:"lastChapterName"`
	LastChapterUpdateTime *time.Time `json:"lastChapterUpdateTime"`
	WordCount             int        `json:"wordCount"`
	BookStatus            int        `json:"bookStatus"`
	ChapterTotal          int64      `json:"chapterTotal"`
}

// About is the "latest chapters" panel of a book page.
type About struct {
	BookInfo       BookHead   `json:"bookInfo"`
	LatestChapters []*Chapter `json:"latestChapters"`
	ContentSummary string     `json:"contentSummary"`
}

// BookInfo is the slice of the parent book shown while reading.
type BookInfo struct {
	ID           int64  `json:"id"`
	BookName     string `json:"bookName"`
	CategoryName string `json:"categoryName"`
	AuthorName   string `json:"authorName"`
}

// Reading is a chapter with its text and book header.
type Reading struct {
	ChapterInfo Chapter  `json:"chapterInfo"`
	BookInfo    BookInfo `json:"bookInfo"`
	BookContent string   `json:"bookContent"`
}

// Neighbours are the chapters either side of one chapter; nil at the ends.
type Neighbours struct {
	Prev *int64 `json:"prev"`
	Next *int64 `json:"next"`
}

// Edit is the author's view of a chapter, content included.
type Edit struct {
	Chapter
	Content string `json:"content"`
}

// ErrContentMissing marks a chapter row that has no content row.
var ErrContentMissing = errors.New("chapter: content row missing")

// # Author writes

// Content length bounds, in characters.
const (
	MinContentLength = 50
	MaxContentLength = 100000
	MaxNameLength    = 100
)

// Draft is the body of chapter create and update.
type Draft struct {
	ChapterName string `json:"chapterName"`
	Content     string `json:"content"`
	IsVip       int    `json:"isVip"`
}

// Normalize trims the chapter name and the ends of the content.
func (d Draft) Normalize() Draft {
	d.ChapterName = strings.TrimSpace(d.ChapterName)
	d.Content = strings.TrimSpace(d.Content)
	return d
}

// Validate implements validation.Validatable.
func (d Draft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.ChapterName, validation.Required, validation.RuneLength(1, MaxNameLength)),
		validation.Field(&d.Content, validation.Required, validation.RuneLength(MinContentLength, MaxContentLength)),
		validation.Field(&d.IsVip, validation.In(0, 1)),
	)
}
