package uploads

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func header(name, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{
		Filename: name,
		Header:   h,
		Size:     size,
	}
}

func TestValidateAcceptsSupportedTypes(t *testing.T) {
	for _, contentType := range []string{
		"image/png", "image/jpeg", "image/jpg", "image/svg+xml", "image/webp", "application/pdf",
	} {
		assert.NoError(t, validate(header("logo", contentType, 1024)), contentType)
	}
}

func TestValidateRejectsOversizedFile(t *testing.T) {
	err := validate(header("big.png", "image/png", MaxFileSize+1))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "5MB")
}

func TestValidateRejectsUnsupportedType(t *testing.T) {
	err := validate(header("movie.mp4", "video/mp4", 1024))
	assert.Error(t, err)

	err = validate(header("script.sh", "application/x-sh", 10))
	assert.Error(t, err)
}

func TestValidateAcceptsExactLimit(t *testing.T) {
	assert.NoError(t, validate(header("edge.pdf", "application/pdf", MaxFileSize)))
}
