package service

import (
	"context"

	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// AuthValidationService checks submitted forms before they reach the
// wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{validator: validators.NewFormValidator()}
}

func (v *AuthValidationService) Register(ctx context.Context, form models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.User{}, err
	}
	return v.inner.Register(ctx, form)
}

func (v *AuthValidationService) VerifyCredentials(ctx context.Context, form models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.User{}, err
	}
	return v.inner.VerifyCredentials(ctx, form)
}

func (v *AuthValidationService) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return v.inner.FindByEmail(ctx, email)
}

func (v *AuthValidationService) UpdatePassword(ctx context.Context, userID int64, password string) error {
	return v.inner.UpdatePassword(ctx, userID, password)
}

func (v *AuthValidationService) ChangePassword(ctx context.Context, userID int64, form models.PasswordRequest) error {
	err := v.validator.Validate(ctx, form,
		validators.FieldCurrentPassword, validators.FieldPassword, validators.FieldConfirmPassword)
	if err != nil {
		return err
	}
	return v.inner.ChangePassword(ctx, userID, form)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// PostValidationService checks post forms.
type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService() PostServiceWrapper {
	return &PostValidationService{validator: validators.NewFormValidator()}
}

func (v *PostValidationService) Create(ctx context.Context, author models.User, form models.PostRequest) (models.Post, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.Post{}, err
	}
	return v.inner.Create(ctx, author, form)
}

func (v *PostValidationService) Get(ctx context.Context, postID int64) (models.Post, error) {
	return v.inner.Get(ctx, postID)
}

func (v *PostValidationService) GetForEdit(ctx context.Context, postID int64, actor models.User) (models.Post, error) {
	return v.inner.GetForEdit(ctx, postID, actor)
}

func (v *PostValidationService) Update(ctx context.Context, postID int64, actor models.User, form models.PostRequest) (models.Post, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.Post{}, err
	}
	return v.inner.Update(ctx, postID, actor, form)
}

func (v *PostValidationService) Delete(ctx context.Context, postID int64, actor models.User) error {
	return v.inner.Delete(ctx, postID, actor)
}

func (v *PostValidationService) ListAll(ctx context.Context, page int) (models.PostPage, error) {
	return v.inner.ListAll(ctx, page)
}

func (v *PostValidationService) ListByAuthor(ctx context.Context, username string, page int) (models.UserPostsResponse, error) {
	return v.inner.ListByAuthor(ctx, username, page)
}

func (v *PostValidationService) Wrap(inner PostService) PostService {
	v.inner = inner
	return v
}

// PasswordResetValidationService checks reset forms.
type PasswordResetValidationService struct {
	inner     PasswordResetService
	validator validators.Validator
}

func NewPasswordResetValidationService() PasswordResetServiceWrapper {
	return &PasswordResetValidationService{validator: validators.NewFormValidator()}
}

func (v *PasswordResetValidationService) RequestReset(ctx context.Context, form models.ResetRequest) error {
	if err := v.validator.Validate(ctx, form); err != nil {
		return err
	}
	return v.inner.RequestReset(ctx, form)
}

func (v *PasswordResetValidationService) ResetPassword(ctx context.Context, token string, form models.PasswordRequest) error {
	if err := v.validator.Validate(ctx, form); err != nil {
		return err
	}
	return v.inner.ResetPassword(ctx, token, form)
}

func (v *PasswordResetValidationService) Wrap(inner PasswordResetService) PasswordResetService {
	v.inner = inner
	return v
}

// AccountValidationService checks profile updates.
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &AccountValidationService{validator: validators.NewFormValidator()}
}

func (v *AccountValidationService) Account(ctx context.Context, user models.User) models.Account {
	return v.inner.Account(ctx, user)
}

func (v *AccountValidationService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Account, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Account{}, err
	}
	return v.inner.UpdateProfile(ctx, update)
}

func (v *AccountValidationService) Wrap(inner AccountService) AccountService {
	v.inner = inner
	return v
}
