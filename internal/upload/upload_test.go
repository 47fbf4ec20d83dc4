package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real multipart.FileHeader by round-tripping a form
// through the stdlib parser, matching what handlers receive.
func fileHeader(t *testing.T, field, filename, contentType, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition",
		`form-data; name="`+field+`"; filename="`+filename+`"`)
	partHeader.Set("Content-Type", contentType)

	part, err := writer.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	_, header, err := req.FormFile(field)
	require.NoError(t, err)

	return header
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	saver, err := NewSaver(dir)
	require.NoError(t, err)

	header := fileHeader(t, "resume", "cv.pdf", "application/pdf", "%PDF-1.4 fake")

	stored, err := saver.Save("resume", header)
	require.NoError(t, err)

	assert.Equal(t, "cv.pdf", stored.OriginalName)
	assert.True(t, strings.HasPrefix(filepath.Base(stored.Path), "resume-"))
	assert.Equal(t, ".pdf", filepath.Ext(stored.Path))

	data, err := os.ReadFile(stored.Path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(data))
}

func TestSaveUniqueNames(t *testing.T) {
	saver, err := NewSaver(t.TempDir())
	require.NoError(t, err)

	header := fileHeader(t, "resume", "cv.pdf", "application/pdf", "first")

	first, err := saver.Save("resume", header)
	require.NoError(t, err)
	second, err := saver.Save("resume", header)
	require.NoError(t, err)

	assert.NotEqual(t, first.Path, second.Path)
}

func TestSaveUnsupportedType(t *testing.T) {
	saver, err := NewSaver(t.TempDir())
	require.NoError(t, err)

	header := fileHeader(t, "resume", "cv.gif", "image/gif", "GIF89a")

	_, err = saver.Save("resume", header)
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestNewSaverCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewSaver(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
