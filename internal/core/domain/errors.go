package domain

import "go.trai.ch/zerr"

var (
	// ErrArchiveOpenFailed is returned when the input archive cannot be opened.
	ErrArchiveOpenFailed = zerr.New("failed to open archive")

	// ErrArchiveWriteFailed is returned when the output archive cannot be written.
	ErrArchiveWriteFailed = zerr.New("failed to write archive")

	// ErrSettingsNotFound is returned when the archive has no settings document.
	ErrSettingsNotFound = zerr.New("settings document not found in archive")

	// ErrSettingsDecodeFailed is returned when the settings document is not
	// well-formed structured data.
	ErrSettingsDecodeFailed = zerr.New("failed to decode settings document")

	// ErrSettingsEncodeFailed is returned when the settings document cannot
	// be re-encoded.
	ErrSettingsEncodeFailed = zerr.New("failed to encode settings document")

	// ErrMaskNotFound is returned when a mask referenced by the settings
	// document is absent from the archive's image store.
	ErrMaskNotFound = zerr.New("mask not found")

	// ErrMaskDecodeFailed is returned when a mask file cannot be decoded.
	ErrMaskDecodeFailed = zerr.New("failed to decode mask")

	// ErrMaskEncodeFailed is returned when a composite mask cannot be encoded.
	ErrMaskEncodeFailed = zerr.New("failed to encode mask")

	// ErrCanvasMismatch is returned when a mask's dimensions differ from the
	// configured canvas.
	ErrCanvasMismatch = zerr.New("mask dimensions do not match canvas")

	// ErrInvalidExposure is returned when a setting carries a missing,
	// non-integer, or negative exposure duration.
	ErrInvalidExposure = zerr.New("invalid exposure duration")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the config file holds invalid values.
	ErrInvalidConfig = zerr.New("invalid config value")
)
