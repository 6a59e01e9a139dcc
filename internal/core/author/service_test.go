// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/core/author"
	"github.com/taibuivan/inkwell/internal/platform/apperr"
)

type fakeRepository struct {
	profiles map[string]*author.Profile
	nextID   int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{profiles: map[string]*author.Profile{}}
}

func (repo *fakeRepository) FindByUserID(_ context.Context, userID string) (*author.Profile, error) {
	profile, ok := repo.profiles[userID]
	if !ok {
		return nil, apperr.NotFound("Author profile")
	}
	return profile, nil
}

func (repo *fakeRepository) Create(_ context.Context, profile *author.Profile) error {
	if _, exists := repo.profiles[profile.UserID]; exists {
		return apperr.Conflict("Author profile or pen name already exists")
	}
	repo.nextID++
	profile.ID = repo.nextID
	repo.profiles[profile.UserID] = profile
	return nil
}

func newService(repo author.Repository) *author.Service {
	return author.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestRegister_OncePerUser stores the first registration and rejects the second.
*/
func TestRegister_OncePerUser(t *testing.T) {
	service := newService(newFakeRepository())
	ctx := context.Background()

	profile, err := service.Register(ctx, "user_1", author.Registration{PenName: "  Ink Fox ", Email: "fox@inkwell.app"})
	require.NoError(t, err)
	assert.Equal(t, "Ink Fox", profile.PenName)
	assert.Equal(t, int64(1), profile.ID)

	_, err = service.Register(ctx, "user_1", author.Registration{PenName: "Other"})
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
}

/*
TestRegister_Validation rejects bad input before touching storage.
*/
func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input author.Registration
		field string
	}{
		{"missing_pen_name", author.Registration{PenName: "  "}, author.FieldPenName},
		{"long_pen_name", author.Registration{PenName: "abcdefghijklmnopqrstuvwxyz"}, author.FieldPenName},
		{"bad_email", author.Registration{PenName: "Fox", Email: "fox"}, author.FieldEmail},
		{"display_name_email", author.Registration{PenName: "Fox", Email: "Fox <fox@example.com>"}, author.FieldEmail},
		{"long_email", author.Registration{PenName: "Fox", Email: strings.Repeat("f", 40) + "@example.com"}, author.FieldEmail},
		{"long_chat_account", author.Registration{PenName: "Fox", ChatAccount: strings.Repeat("c", 51)}, author.FieldChatAccount},
		{"bad_direction", author.Registration{PenName: "Fox", WorkDirection: 2}, author.FieldWorkDirection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			_, err := newService(repo).Register(context.Background(), "user_1", tt.input)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
			assert.Equal(t, tt.field, ae.Details[0].Field)
			assert.Empty(t, repo.profiles)
		})
	}
}

/*
TestStatus_And_ByUser covers unregistered, active and disabled users.
*/
func TestStatus_And_ByUser(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)
	ctx := context.Background()

	status, err := service.Status(ctx, "user_1")
	require.NoError(t, err)
	assert.False(t, status.Registered)
	assert.Nil(t, status.Profile)

	_, err = service.ByUser(ctx, "user_1")
	assert.True(t, apperr.HasCode(err, apperr.CodeForbidden))

	_, err = service.Register(ctx, "user_1", author.Registration{PenName: "Fox"})
	require.NoError(t, err)

	status, err = service.Status(ctx, "user_1")
	require.NoError(t, err)
	assert.True(t, status.Registered)

	profile, err := service.ByUser(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, "Fox", profile.PenName)

	repo.profiles["user_1"].Status = author.StatusDisabled
	_, err = service.ByUser(ctx, "user_1")
	assert.True(t, apperr.HasCode(err, apperr.CodeForbidden))
}
