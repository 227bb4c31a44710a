package validation

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	domainerrors "vidtube/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(contentType string) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{Filename: "upload.bin", Header: h}
}

func assertValidationError(t *testing.T, err error, contains ...string) {
	t.Helper()
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	for _, substr := range contains {
		assert.Contains(t, appErr.Details(), substr)
	}
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "hello", NormalizeText("  hello\n"))
	assert.Equal(t, "", NormalizeText("   \t "))
}

func TestRegisterInput(t *testing.T) {
	assert.NoError(t, RegisterInput("Jane Doe", "jane@example.com", "janedoe", "secret123"))

	// Whitespace-only fields count as absent.
	assertValidationError(t, RegisterInput("   ", "jane@example.com", "janedoe", "secret123"),
		"fullname is required")

	assertValidationError(t, RegisterInput("Jane Doe", "not-an-email", "janedoe", "secret123"),
		"email must contain @")

	assertValidationError(t, RegisterInput("Jane Doe", "jane@example.com", "jd", "secret123"),
		"username must be at least 3 characters")

	assertValidationError(t, RegisterInput("Jane Doe", "jane@example.com", "janedoe", "12345"),
		"password must be at least 6 characters")

	// All violations are reported at once, joined.
	assertValidationError(t, RegisterInput("", "", "", ""),
		"fullname is required", "email is required", "username is required", "password is required")
}

func TestLoginInput(t *testing.T) {
	assert.NoError(t, LoginInput("janedoe", "", "secret123"))
	assert.NoError(t, LoginInput("", "jane@example.com", "secret123"))

	assertValidationError(t, LoginInput("", "", "secret123"), "username or email is required")
	assertValidationError(t, LoginInput("janedoe", "", ""), "password is required")
}

func TestChangePasswordInput(t *testing.T) {
	assert.NoError(t, ChangePasswordInput("oldsecret", "newsecret"))

	assertValidationError(t, ChangePasswordInput("", "newsecret"), "old password is required")
	assertValidationError(t, ChangePasswordInput("oldsecret", "short"),
		"new password must be at least 6 characters")
}

func TestUpdateProfileInput(t *testing.T) {
	assert.NoError(t, UpdateProfileInput("Jane Doe", ""))
	assert.NoError(t, UpdateProfileInput("", "jane@example.com"))
	assert.NoError(t, UpdateProfileInput("Jane Doe", "jane@example.com"))

	assertValidationError(t, UpdateProfileInput("", ""), "fullname or email is required")
	assertValidationError(t, UpdateProfileInput("JD", ""), "fullname must be at least 3 characters")
	assertValidationError(t, UpdateProfileInput("", "nope"), "email must contain @")
}

func TestPublishVideoInput(t *testing.T) {
	assert.NoError(t, PublishVideoInput("My Video", "Something worth watching"))

	assertValidationError(t, PublishVideoInput("", "desc here"), "title is required")
	assertValidationError(t, PublishVideoInput("ok", "desc here"),
		"title must be at least 3 characters")
	assertValidationError(t, PublishVideoInput("My Video", "  "), "description is required")
}

func TestIsImageFile(t *testing.T) {
	assert.True(t, IsImageFile(fileHeader("image/png")))
	assert.True(t, IsImageFile(fileHeader("image/jpeg")))
	assert.False(t, IsImageFile(fileHeader("video/mp4")))
	assert.False(t, IsImageFile(fileHeader("")))
	assert.False(t, IsImageFile(nil))
}

func TestIsVideoFile(t *testing.T) {
	assert.True(t, IsVideoFile(fileHeader("video/mp4")))
	assert.True(t, IsVideoFile(fileHeader("video/webm")))
	assert.False(t, IsVideoFile(fileHeader("image/png")))
	assert.False(t, IsVideoFile(nil))
}
