package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-blog/internal/logger"
)

// fileAvatarStorage keeps avatars in a local directory that is served
// under urlPrefix.
type fileAvatarStorage struct {
	dir       string
	urlPrefix string
	logger    *logger.Logger
}

// NewFileAvatarStorage constructs an [AvatarStorage] writing into dir.
func NewFileAvatarStorage(dir, urlPrefix string, logger *logger.Logger) AvatarStorage {
	logger.Debug().Str("dir", dir).Msg("creating file avatar storage")
	return &fileAvatarStorage{
		dir:       dir,
		urlPrefix: urlPrefix,
		logger:    logger,
	}
}

// Save writes data to dir/name, creating dir when missing. name must be a
// bare file name.
func (s *fileAvatarStorage) Save(ctx context.Context, name string, data []byte, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateAvatarName(name); err != nil {
		return err
	}

	log := logger.FromContext(ctx)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		log.Err(err).Str("func", "*fileAvatarStorage.Save").Msg("error creating avatar directory")
		return fmt.Errorf("%w: %w", ErrAvatarNotSaved, err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		log.Err(err).Str("func", "*fileAvatarStorage.Save").Msg("error writing avatar")
		return fmt.Errorf("%w: %w", ErrAvatarNotSaved, err)
	}

	return nil
}

func (s *fileAvatarStorage) URL(name string) string {
	return joinAvatarURL(s.urlPrefix, name)
}

func validateAvatarName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: invalid file name %q", ErrAvatarNotSaved, name)
	}
	return nil
}

func joinAvatarURL(prefix, name string) string {
	return strings.TrimRight(prefix, "/") + "/" + name
}
