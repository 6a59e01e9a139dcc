// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account mirrors signed-in readers into user_info.

Identity lives with the external provider. The first time a reader needs a
local row (their profile page, their first comment) one is created from the
verified token claims; afterwards the reader edits nickname and photo here and
the claims no longer overwrite them.

# Architecture

  - Entities: User (the mirror row), ProfileUpdate (DTO).
  - Storage: [EnsureUser] runs on a pool or inside another package's transaction.
*/
package account

import (
	"context"
	"time"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/taibuivan/inkwell/internal/platform/sec"
)

// # Domain Entities

// Column limits of user_info.
const (
	MaxNickNameLength  = 50
	MaxUserPhotoLength = 255
)

// User is the local mirror of an identity.
type User struct {
	ID         string    `json:"id"`
	NickName   string    `json:"nickName"`
	UserPhoto  string    `json:"userPhoto"`
	CreateTime time.Time `json:"createTime"`
	UpdateTime time.Time `json:"updateTime"`
}

// FromClaims builds the initial mirror row for a verified identity.
func FromClaims(claims *sec.AuthClaims) User {
	return User{
		ID:        claims.UserID,
		NickName:  truncate(claims.Nickname, MaxNickNameLength),
		UserPhoto: truncate(claims.Picture, MaxUserPhotoLength),
	}
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// ProfileUpdate is the body of PUT /front/user. Nil fields are left unchanged.
type ProfileUpdate struct {
	NickName  *string `json:"nickName"`
	UserPhoto *string `json:"userPhoto"`
}

// Validate implements validation.Validatable.
func (u ProfileUpdate) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.NickName, validation.NilOrNotEmpty, validation.RuneLength(1, MaxNickNameLength)),
		validation.Field(&u.UserPhoto, validation.RuneLength(0, MaxUserPhotoLength)),
	)
}

// # Repository Contracts

// Repository defines the persistence contract for the user mirror.
type Repository interface {

	// FindByID returns the mirror row or NOT_FOUND.
	FindByID(context context.Context, id string) (*User, error)

	// Ensure inserts user unless a row with its id exists, then returns the stored row.
	Ensure(context context.Context, user User) (*User, error)

	// Update writes nickname and photo.
	Update(context context.Context, user *User) error
}
