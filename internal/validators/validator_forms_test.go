package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormValidator_Register(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	valid := models.RegisterRequest{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "pw1",
		ConfirmPassword: "pw1",
	}

	tests := []struct {
		name       string
		mutate     func(r *models.RegisterRequest)
		wantFields map[string]string
	}{
		{
			name:   "valid form",
			mutate: func(r *models.RegisterRequest) {},
		},
		{
			name:       "username too short",
			mutate:     func(r *models.RegisterRequest) { r.Username = "a" },
			wantFields: map[string]string{FieldUsername: ErrUsernameLength.Error()},
		},
		{
			name:       "username too long",
			mutate:     func(r *models.RegisterRequest) { r.Username = strings.Repeat("a", 21) },
			wantFields: map[string]string{FieldUsername: ErrUsernameLength.Error()},
		},
		{
			name:       "username at upper bound",
			mutate:     func(r *models.RegisterRequest) { r.Username = strings.Repeat("a", 20) },
			wantFields: nil,
		},
		{
			name:       "bad email",
			mutate:     func(r *models.RegisterRequest) { r.Email = "not-an-email" },
			wantFields: map[string]string{FieldEmail: ErrInvalidEmail.Error()},
		},
		{
			name: "password at byte limit",
			mutate: func(r *models.RegisterRequest) {
				r.Password = strings.Repeat("a", PasswordMaxLength)
				r.ConfirmPassword = r.Password
			},
			wantFields: nil,
		},
		{
			name: "password over byte limit",
			mutate: func(r *models.RegisterRequest) {
				r.Password = strings.Repeat("a", PasswordMaxLength+1)
				r.ConfirmPassword = r.Password
			},
			wantFields: map[string]string{FieldPassword: ErrPasswordTooLong.Error()},
		},
		{
			name: "multibyte password over byte limit",
			mutate: func(r *models.RegisterRequest) {
				r.Password = strings.Repeat("ж", 37)
				r.ConfirmPassword = r.Password
			},
			wantFields: map[string]string{FieldPassword: ErrPasswordTooLong.Error()},
		},
		{
			name:       "confirm mismatch",
			mutate:     func(r *models.RegisterRequest) { r.ConfirmPassword = "other" },
			wantFields: map[string]string{FieldConfirmPassword: ErrPasswordMatch.Error()},
		},
		{
			name: "everything empty",
			mutate: func(r *models.RegisterRequest) {
				*r = models.RegisterRequest{}
			},
			wantFields: map[string]string{
				FieldUsername:        ErrRequired.Error(),
				FieldEmail:           ErrRequired.Error(),
				FieldPassword:        ErrRequired.Error(),
				FieldConfirmPassword: ErrRequired.Error(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)

			err := v.Validate(ctx, form)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, tt.wantFields, Fields(err))
		})
	}
}

func TestFormValidator_Login(t *testing.T) {
	v := NewFormValidator()

	err := v.Validate(context.Background(), &models.LoginRequest{Email: "bob@example.com", Password: "x"})
	assert.NoError(t, err)

	err = v.Validate(context.Background(), models.LoginRequest{Email: "Bob <bob@example.com>"})
	require.Error(t, err)
	assert.Equal(t, map[string]string{
		FieldEmail:    ErrInvalidEmail.Error(),
		FieldPassword: ErrRequired.Error(),
	}, Fields(err))
}

func TestFormValidator_Post(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.PostRequest{Title: "Hello", Content: "World"}))

	err := v.Validate(ctx, models.PostRequest{Title: strings.Repeat("t", TitleMaxLength+1), Content: " "})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTitleTooLong)
	assert.ErrorIs(t, err, ErrRequired)
	assert.Equal(t, map[string]string{
		FieldTitle:   ErrTitleTooLong.Error(),
		FieldContent: ErrRequired.Error(),
	}, Fields(err))

	// only the requested field is checked
	assert.NoError(t, v.Validate(ctx, models.PostRequest{Title: "ok"}, FieldTitle))
}

func TestFormValidator_Password(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	form := models.PasswordRequest{Password: "new", ConfirmPassword: "new"}
	assert.NoError(t, v.Validate(ctx, form))

	err := v.Validate(ctx, form, FieldCurrentPassword, FieldPassword, FieldConfirmPassword)
	require.Error(t, err)
	assert.Equal(t, map[string]string{FieldCurrentPassword: ErrRequired.Error()}, Fields(err))

	form.ConfirmPassword = "typo"
	err = v.Validate(ctx, form)
	assert.ErrorIs(t, err, ErrPasswordMatch)

	form.Password = strings.Repeat("p", PasswordMaxLength+1)
	form.ConfirmPassword = form.Password
	err = v.Validate(ctx, form)
	require.Error(t, err)
	assert.Equal(t, map[string]string{FieldPassword: ErrPasswordTooLong.Error()}, Fields(err))

	// login passwords are only compared, never hashed
	assert.NoError(t, v.Validate(ctx, models.LoginRequest{Email: "bob@example.com", Password: form.Password}))
}

func TestFormValidator_ResetRequest(t *testing.T) {
	v := NewFormValidator()

	assert.NoError(t, v.Validate(context.Background(), models.ResetRequest{Email: "a@b.io"}))

	long := strings.Repeat("a", EmailMaxLength) + "@example.com"
	err := v.Validate(context.Background(), models.ResetRequest{Email: long})
	assert.ErrorIs(t, err, ErrEmailTooLong)
}

func TestFormValidator_Profile(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	form := models.ProfileUpdate{UserID: 1, Username: "alice", Email: "alice@example.com"}
	assert.NoError(t, v.Validate(ctx, form))

	form.Picture = &models.Upload{Filename: "me.PNG"}
	assert.NoError(t, v.Validate(ctx, &form))

	form.Picture = &models.Upload{Filename: "me.gif"}
	err := v.Validate(ctx, form)
	require.Error(t, err)
	assert.Equal(t, map[string]string{FieldPicture: ErrPictureType.Error()}, Fields(err))
}

func TestFormValidator_Unsupported(t *testing.T) {
	v := NewFormValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.LoginRequest{}, "nope"), ErrUnknownField)
}

func TestFields(t *testing.T) {
	assert.Nil(t, Fields(nil))
	assert.Nil(t, Fields(errors.New("plain")))

	err := errors.Join(
		NewFieldError("a", ErrRequired),
		NewFieldError("a", ErrInvalidEmail),
		NewFieldError("b", ErrPasswordMatch),
	)
	assert.Equal(t, map[string]string{
		"a": ErrRequired.Error(),
		"b": ErrPasswordMatch.Error(),
	}, Fields(err))
}

func TestIsAllowedPicture(t *testing.T) {
	assert.True(t, IsAllowedPicture("x.jpg"))
	assert.True(t, IsAllowedPicture("x.JPEG"))
	assert.True(t, IsAllowedPicture("dir/x.png"))
	assert.False(t, IsAllowedPicture("x"))
	assert.False(t, IsAllowedPicture("x.png.exe"))
}
