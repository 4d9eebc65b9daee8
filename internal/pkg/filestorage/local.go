package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/clubeativo/backend/internal/pkg/apperrors"
	"github.com/clubeativo/backend/internal/pkg/logger"
)

// allowedImageExtensions is the allow-list for profile image uploads.
var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// LocalStorage saves uploaded files to the local filesystem.
type LocalStorage struct {
	basePath string // root directory where files are stored
	baseURL  string // base URL to access stored files, optional
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// ValidateImageExtension checks an uploaded filename against the image
// allow-list. Empty filenames and disallowed extensions are rejected.
func ValidateImageExtension(filename string) error {
	if strings.TrimSpace(filename) == "" {
		return apperrors.NewValidationError("filename cannot be empty")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExtensions[ext] {
		return apperrors.ErrInvalidFileExtension
	}
	return nil
}

// SaveProfileImage validates and stores an uploaded profile image. The stored
// name is prefixed with the owner's student ID and made collision-resistant
// with a random UUID. Returns the stored filename.
func (ls *LocalStorage) SaveProfileImage(fileHeader *multipart.FileHeader, studentID string) (string, error) {
	if fileHeader == nil {
		return "", apperrors.NewValidationError("no file uploaded")
	}

	if err := ValidateImageExtension(fileHeader.Filename); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	storedName := studentID + "_" + uuid.New().String() + ext
	dstPath := filepath.Join(ls.basePath, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", storedName).Msg("Profile image saved")
	return storedName, nil
}

// FileURL returns the public URL for a stored filename.
func (ls *LocalStorage) FileURL(storedName string) string {
	if ls.baseURL == "" {
		return filepath.Join("uploads", storedName)
	}
	return strings.TrimRight(ls.baseURL, "/") + "/" + storedName
}

// BasePath returns the storage root directory.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}
