// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package comment holds reader comments on books.
//
// Posting a comment mirrors the reader into user_info, inserts the comment and
// bumps the book's comment_count in one transaction. Each reader may post at
// most once per cooldown window.
package comment

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/taibuivan/inkwell/internal/users/account"
)

// NewestLimit is the length of the newest-comments strip on a book page.
const NewestLimit = 5

// MaxContentLength bounds a comment, in characters.
const MaxContentLength = 512

// Comment is a row of book_comment joined with its author's mirror row.
type Comment struct {
	ID               int64     `json:"id"`
	BookID           int64     `json:"bookId"`
	CommentUserID    string    `json:"commentUserId"`
	CommentUser      string    `json:"commentUser"`
	CommentUserPhoto string    `json:"commentUserPhoto"`
	CommentContent   string    `json:"commentContent"`
	ReplyCount       int       `json:"replyCount"`
	AuditStatus      int       `json:"auditStatus"`
	CommentTime      time.Time `json:"commentTime"`
	UpdateTime       time.Time `json:"updateTime"`
}

// Newest is the newest-comments strip with the book's comment total.
type Newest struct {
	CommentTotal int64      `json:"commentTotal"`
	Comments     []*Comment `json:"comments"`
}

// Draft is the body of POST /front/user/comment.
type Draft struct {
	BookID         int64  `json:"bookId"`
	CommentContent string `json:"commentContent"`
}

// Validate implements validation.Validatable.
func (d Draft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.BookID, validation.Required, validation.Min(int64(1))),
		validation.Field(&d.CommentContent, validation.Required, validation.RuneLength(1, MaxContentLength)),
	)
}

// Edit is the body of PUT /front/user/comment/{id}.
type Edit struct {
	CommentContent string `json:"commentContent"`
}

// Validate implements validation.Validatable.
func (e Edit) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.CommentContent, validation.Required, validation.RuneLength(1, MaxContentLength)),
	)
}

// # Repository Contracts

// Repository is the comment store.
type Repository interface {
	ListByBook(context context.Context, bookID int64, limit, offset int) ([]*Comment, int64, error)
	ListByUser(context context.Context, userID string, limit, offset int) ([]*Comment, int64, error)
	FindByID(context context.Context, id int64) (*Comment, error)

	// Create mirrors author, inserts comment and bumps the book's comment_count.
	Create(context context.Context, author account.User, comment *Comment) error
	Update(context context.Context, comment *Comment) error

	// Delete removes the comment and decrements the book's comment_count.
	Delete(context context.Context, id int64) error
}
