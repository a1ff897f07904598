package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-blog/internal/mock"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService().Wrap(inner)
	ctx := context.Background()

	// invalid forms never reach the inner service
	_, err := svc.Register(ctx, models.RegisterRequest{Username: "a"})
	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrInvalidInput)

	_, err = svc.VerifyCredentials(ctx, models.LoginRequest{})
	assert.ErrorIs(t, err, validators.ErrInvalidInput)

	err = svc.ChangePassword(ctx, 1, models.PasswordRequest{Password: "x", ConfirmPassword: "x"})
	assert.Equal(t, map[string]string{validators.FieldCurrentPassword: validators.ErrRequired.Error()}, validators.Fields(err))

	form := models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "p", ConfirmPassword: "p"}
	inner.EXPECT().Register(ctx, form).Return(models.User{ID: 1}, nil)
	user, err := svc.Register(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)

	inner.EXPECT().FindByEmail(ctx, "alice@example.com").Return(models.User{ID: 1}, nil)
	_, err = svc.FindByEmail(ctx, "alice@example.com")
	assert.NoError(t, err)
}

func TestPostValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockPostService(ctrl)
	svc := NewPostValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.Create(ctx, alice, models.PostRequest{Title: "", Content: "x"})
	assert.Equal(t, map[string]string{validators.FieldTitle: validators.ErrRequired.Error()}, validators.Fields(err))

	_, err = svc.Update(ctx, 1, alice, models.PostRequest{Title: "x"})
	assert.ErrorIs(t, err, validators.ErrRequired)

	form := models.PostRequest{Title: "Hello", Content: "World"}
	inner.EXPECT().Create(ctx, alice, form).Return(models.Post{ID: 3}, nil)
	post, err := svc.Create(ctx, alice, form)
	require.NoError(t, err)
	assert.Equal(t, int64(3), post.ID)

	inner.EXPECT().Delete(ctx, int64(3), alice).Return(ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, 3, alice), ErrForbidden)
}

func TestPasswordResetValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockPasswordResetService(ctrl)
	svc := NewPasswordResetValidationService().Wrap(inner)
	ctx := context.Background()

	assert.ErrorIs(t, svc.RequestReset(ctx, models.ResetRequest{Email: "nope"}), validators.ErrInvalidEmail)
	assert.ErrorIs(t, svc.ResetPassword(ctx, "t", models.PasswordRequest{Password: "a", ConfirmPassword: "b"}), validators.ErrPasswordMatch)

	inner.EXPECT().ResetPassword(ctx, "t", gomock.Any()).Return(nil)
	assert.NoError(t, svc.ResetPassword(ctx, "t", models.PasswordRequest{Password: "a", ConfirmPassword: "a"}))
}

func TestAccountValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAccountService(ctrl)
	svc := NewAccountValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, models.ProfileUpdate{
		UserID:   1,
		Username: "alice",
		Email:    "alice@example.com",
		Picture:  &models.Upload{Filename: "virus.exe"},
	})
	assert.ErrorIs(t, err, validators.ErrPictureType)

	inner.EXPECT().Account(ctx, alice).Return(models.Account{User: alice})
	assert.Equal(t, alice, svc.Account(ctx, alice).User)
}
