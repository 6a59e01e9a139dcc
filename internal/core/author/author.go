// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package author manages author profiles.
//
// A signed-in reader becomes an author by registering a pen name once. Books
// and chapters are owned by the profile, not by the identity subject, so the
// book and chapter services resolve the caller's profile through [Service.ByUser].
package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Profile status values.
const (
	StatusActive   = 0
	StatusDisabled = 1
)

// Profile is an author's public identity and contact details.
type Profile struct {
	ID            int64     `json:"id"`
	UserID        string    `json:"userId"`
	PenName       string    `json:"penName"`
	TelPhone      string    `json:"telPhone"`
	ChatAccount   string    `json:"chatAccount"`
	Email         string    `json:"email"`
	WorkDirection int       `json:"workDirection"`
	Status        int       `json:"status"`
	CreateTime    time.Time `json:"createTime"`
}

// Active reports whether the profile may publish.
func (p *Profile) Active() bool {
	return p != nil && p.Status == StatusActive
}

// Registration is the body of POST /author/register.
type Registration struct {
	PenName       string `json:"penName"`
	TelPhone      string `json:"telPhone"`
	ChatAccount   string `json:"chatAccount"`
	Email         string `json:"email"`
	WorkDirection int    `json:"workDirection"`
}

// Validate implements validation.Validatable. Column widths bound the lengths.
func (r Registration) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PenName, validation.Required, validation.RuneLength(1, 20)),
		validation.Field(&r.TelPhone, validation.RuneLength(0, 20)),
		validation.Field(&r.ChatAccount, validation.RuneLength(0, 50)),
		validation.Field(&r.Email, is.EmailFormat, validation.RuneLength(0, 50)),
		validation.Field(&r.WorkDirection, validation.Min(0), validation.Max(1)),
	)
}

// Status is the body of GET /author/status. Profile is nil until the user registers.
type Status struct {
	Registered bool     `json:"registered"`
	Profile    *Profile `json:"profile"`
}

// Global field names for validation
const (
	FieldPenName       = "penName"
	FieldTelPhone      = "telPhone"
	FieldChatAccount   = "chatAccount"
	FieldEmail         = "email"
	FieldWorkDirection = "workDirection"
)
