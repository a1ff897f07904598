package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"mime"
	"path/filepath"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/disintegration/imaging"
)

// Avatars are shrunk to fit this box. Smaller pictures keep their size.
const (
	AvatarMaxWidth  = 125
	AvatarMaxHeight = 125
)

type accountService struct {
	userRepository store.UserRepository
	avatars        store.AvatarStorage

	logger *logger.Logger
}

func NewAccountService(userRepository store.UserRepository, avatars store.AvatarStorage, logger *logger.Logger) AccountService {
	return &accountService{
		userRepository: userRepository,
		avatars:        avatars,
		logger:         logger,
	}
}

func (s *accountService) Account(ctx context.Context, user models.User) models.Account {
	return models.Account{
		User:     user,
		ImageURL: s.avatars.URL(user.ImageFile),
	}
}

// UpdateProfile applies new username, email and, when given, a new picture.
// Uniqueness is only re-checked for values that actually change.
func (s *accountService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Account, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, update.UserID)
	if err != nil {
		return models.Account{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if update.Username != user.Username {
		if err = checkUsernameFree(ctx, s.userRepository, update.Username); err != nil {
			return models.Account{}, err
		}
	}
	if update.Email != user.Email {
		if err = checkEmailFree(ctx, s.userRepository, update.Email); err != nil {
			return models.Account{}, err
		}
	}

	if update.Picture != nil {
		imageFile, err := s.savePicture(ctx, *update.Picture)
		if err != nil {
			log.Err(err).Int64("id", user.ID).Msg("picture was not saved")
			return models.Account{}, err
		}
		user.ImageFile = imageFile
	}

	user.Username = update.Username
	user.Email = update.Email

	if err = s.userRepository.UpdateProfile(ctx, user); err != nil {
		log.Err(err).Int64("id", user.ID).Msg("profile update failed")
		return models.Account{}, fmt.Errorf("profile update failed: %w", err)
	}

	log.Info().Int64("id", user.ID).Msg("profile updated")
	return s.Account(ctx, user), nil
}

// savePicture thumbnails upload and stores it under a fresh random name.
func (s *accountService) savePicture(ctx context.Context, upload models.Upload) (string, error) {
	name, err := utils.RandomFileName(upload.Filename)
	if err != nil {
		return "", err
	}

	data, err := thumbnail(upload.Content, name)
	if err != nil {
		return "", err
	}

	if err = s.avatars.Save(ctx, name, data, mime.TypeByExtension(filepath.Ext(name))); err != nil {
		return "", err
	}
	return name, nil
}

// thumbnail decodes content and re-encodes it, scaled down to the avatar
// box, in the format implied by name.
func thumbnail(content []byte, name string) ([]byte, error) {
	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProcessingPicture, err)
	}

	img, err := imaging.Decode(bytes.NewReader(content), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProcessingPicture, err)
	}

	var thumb image.Image = img
	if b := img.Bounds(); b.Dx() > AvatarMaxWidth || b.Dy() > AvatarMaxHeight {
		thumb = imaging.Fit(img, AvatarMaxWidth, AvatarMaxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, thumb, format); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProcessingPicture, err)
	}
	return buf.Bytes(), nil
}
