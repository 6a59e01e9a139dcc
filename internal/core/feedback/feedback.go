// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package feedback collects free-text reader feedback for the operators.
package feedback

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MaxContentLength bounds a feedback message, in runes.
const MaxContentLength = 1000

// Feedback is one submitted message.
type Feedback struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"userId"`
	Content    string    `json:"content"`
	CreateTime time.Time `json:"createTime"`
}

// Submission is the body of POST /front/user/feedback.
type Submission struct {
	Content string `json:"content"`
}

// Validate implements validation.Validatable.
func (s Submission) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Content, validation.Required, validation.RuneLength(1, MaxContentLength)),
	)
}

// Repository is the feedback store.
type Repository interface {
	Create(context context.Context, feedback *Feedback) error

	// List returns one page, newest first, and the total row count.
	List(context context.Context, limit, offset int) ([]*Feedback, int64, error)
}
