// Package validation holds the pure request checks: field predicates with no
// I/O, plus uploaded-file inspection. Schema validators collect every
// violation and report them joined, so a response can name all bad fields at
// once.
package validation

import (
	"mime/multipart"
	"strings"

	domainerrors "vidtube/internal/domain/errors"
)

const (
	minPasswordLength = 6
	minTextLength     = 3
)

// NormalizeText trims surrounding whitespace. A field that is only
// whitespace is treated as absent.
func NormalizeText(s string) string {
	return strings.TrimSpace(s)
}

func present(s string) bool {
	return NormalizeText(s) != ""
}

// RegisterInput checks the account-creation fields.
func RegisterInput(fullName, email, username, password string) error {
	var violations []string

	if !present(fullName) {
		violations = append(violations, "fullname is required")
	} else if len(NormalizeText(fullName)) < minTextLength {
		violations = append(violations, "fullname must be at least 3 characters")
	}

	violations = append(violations, emailViolations(email)...)

	if !present(username) {
		violations = append(violations, "username is required")
	} else if len(NormalizeText(username)) < minTextLength {
		violations = append(violations, "username must be at least 3 characters")
	}

	violations = append(violations, passwordViolations(password, "password")...)

	return asValidationError(violations)
}

// LoginInput checks the login identifier pair. Either username or email may
// carry the identifier.
func LoginInput(username, email, password string) error {
	var violations []string

	if !present(username) && !present(email) {
		violations = append(violations, "username or email is required")
	}
	if !present(password) {
		violations = append(violations, "password is required")
	}

	return asValidationError(violations)
}

// ChangePasswordInput checks an old/new password pair.
func ChangePasswordInput(oldPassword, newPassword string) error {
	var violations []string

	if !present(oldPassword) {
		violations = append(violations, "old password is required")
	}
	violations = append(violations, passwordViolations(newPassword, "new password")...)

	return asValidationError(violations)
}

// UpdateProfileInput checks a profile update. At least one field must be
// supplied; supplied fields must satisfy the registration rules.
func UpdateProfileInput(fullName, email string) error {
	var violations []string

	if !present(fullName) && !present(email) {
		return asValidationError([]string{"fullname or email is required"})
	}

	if present(fullName) && len(NormalizeText(fullName)) < minTextLength {
		violations = append(violations, "fullname must be at least 3 characters")
	}
	if present(email) {
		violations = append(violations, emailViolations(email)...)
	}

	return asValidationError(violations)
}

// PublishVideoInput checks the metadata of a new video.
func PublishVideoInput(title, description string) error {
	return videoTextViolations(title, description)
}

// UpdateVideoInput checks the metadata of a video update.
func UpdateVideoInput(title, description string) error {
	return videoTextViolations(title, description)
}

func videoTextViolations(title, description string) error {
	var violations []string

	if !present(title) {
		violations = append(violations, "title is required")
	} else if len(NormalizeText(title)) < minTextLength {
		violations = append(violations, "title must be at least 3 characters")
	}

	if !present(description) {
		violations = append(violations, "description is required")
	} else if len(NormalizeText(description)) < minTextLength {
		violations = append(violations, "description must be at least 3 characters")
	}

	return asValidationError(violations)
}

func emailViolations(email string) []string {
	if !present(email) {
		return []string{"email is required"}
	}
	if !strings.Contains(email, "@") {
		return []string{"email must contain @"}
	}

	return nil
}

func passwordViolations(password, field string) []string {
	// Passwords are never trimmed; leading/trailing spaces are significant.
	if password == "" {
		return []string{field + " is required"}
	}
	if len(password) < minPasswordLength {
		return []string{field + " must be at least 6 characters"}
	}

	return nil
}

func asValidationError(violations []string) error {
	if len(violations) == 0 {
		return nil
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(violations, ", "))
}

// IsImageFile reports whether the uploaded part declares an image MIME type.
// A nil header is not an image.
func IsImageFile(fh *multipart.FileHeader) bool {
	return hasMIMEPrefix(fh, "image/")
}

// IsVideoFile reports whether the uploaded part declares a video MIME type.
func IsVideoFile(fh *multipart.FileHeader) bool {
	return hasMIMEPrefix(fh, "video/")
}

func hasMIMEPrefix(fh *multipart.FileHeader, prefix string) bool {
	if fh == nil {
		return false
	}
	contentType := fh.Header.Get("Content-Type")

	return strings.HasPrefix(contentType, prefix)
}
