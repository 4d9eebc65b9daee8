package filestorage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubeativo/backend/internal/pkg/apperrors"
)

// makeFileHeader builds a real multipart.FileHeader from in-memory content.
func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("picture", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	headers := form.File["picture"]
	require.Len(t, headers, 1)
	return headers[0]
}

func TestValidateImageExtension(t *testing.T) {
	t.Run("allowed extensions", func(t *testing.T) {
		for _, name := range []string{"foto.png", "foto.jpg", "foto.jpeg", "foto.gif", "FOTO.PNG"} {
			assert.NoError(t, ValidateImageExtension(name), name)
		}
	})

	t.Run("disallowed extensions", func(t *testing.T) {
		for _, name := range []string{"photo.exe", "script.sh", "doc.pdf", "noextension"} {
			assert.ErrorIs(t, ValidateImageExtension(name), apperrors.ErrInvalidFileExtension, name)
		}
	})

	t.Run("empty filename", func(t *testing.T) {
		err := ValidateImageExtension("  ")
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestSaveProfileImage(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)

	t.Run("stores file under student prefix", func(t *testing.T) {
		header := makeFileHeader(t, "minha_foto.PNG", []byte("fake image bytes"))

		storedName, err := storage.SaveProfileImage(header, "202300112233")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(storedName, "202300112233_"))
		assert.True(t, strings.HasSuffix(storedName, ".png"))

		content, err := os.ReadFile(filepath.Join(dir, storedName))
		require.NoError(t, err)
		assert.Equal(t, []byte("fake image bytes"), content)
	})

	t.Run("unique names for repeated uploads", func(t *testing.T) {
		first, err := storage.SaveProfileImage(makeFileHeader(t, "foto.jpg", []byte("a")), "202300112233")
		require.NoError(t, err)
		second, err := storage.SaveProfileImage(makeFileHeader(t, "foto.jpg", []byte("b")), "202300112233")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("rejects disallowed extension", func(t *testing.T) {
		header := makeFileHeader(t, "malware.exe", []byte("nope"))
		_, err := storage.SaveProfileImage(header, "202300112233")
		assert.ErrorIs(t, err, apperrors.ErrInvalidFileExtension)
	})

	t.Run("rejects nil header", func(t *testing.T) {
		_, err := storage.SaveProfileImage(nil, "202300112233")
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestFileURL(t *testing.T) {
	t.Run("with base url", func(t *testing.T) {
		storage := &LocalStorage{basePath: "uploads", baseURL: "http://localhost:8080/uploads/"}
		assert.Equal(t, "http://localhost:8080/uploads/a.png", storage.FileURL("a.png"))
	})

	t.Run("without base url", func(t *testing.T) {
		storage := &LocalStorage{basePath: "uploads"}
		assert.Equal(t, filepath.Join("uploads", "a.png"), storage.FileURL("a.png"))
	})
}
