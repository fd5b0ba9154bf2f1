// Package errors defines the error taxonomy shared across the gofile client.
// Every failure kind is a sentinel that callers can match with errors.Is;
// context is added by wrapping with %w so the kind survives the chain.
package errors

import "fmt"

// Common error types.
var (
	// Token errors.
	ErrTokenMissing = fmt.Errorf("account token is not set")
	ErrTokenInvalid = fmt.Errorf("account token is not valid text")

	// Content identifier errors.
	ErrInvalidURL         = fmt.Errorf("invalid URL")
	ErrInvalidContentURL  = fmt.Errorf("invalid content URL")
	ErrInvalidDownloadURL = fmt.Errorf("invalid download URL")

	// Content traversal errors.
	ErrNotBrowsable = fmt.Errorf("not a browsable container")
	ErrNoContent    = fmt.Errorf("no content")
	ErrNestedFolder = fmt.Errorf("nested folders not implemented")

	// Transfer errors.
	ErrDownloadFailed   = fmt.Errorf("download failed")
	ErrFileCreate       = fmt.Errorf("file could not be created")
	ErrFileWrite        = fmt.Errorf("file could not be written")
	ErrChecksumMismatch = fmt.Errorf("checksum mismatch")

	// Remote service errors.
	ErrAPIFailure = fmt.Errorf("gofile api error")

	// Upload errors.
	ErrMetadataUnreadable = fmt.Errorf("could not read file metadata")
	ErrNotAFile           = fmt.Errorf("not a regular file")

	// Config errors.
	ErrEmptyConfigPath   = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath = fmt.Errorf("invalid config file path")
	ErrConfigParse       = fmt.Errorf("failed to parse config")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
