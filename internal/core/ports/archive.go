// Package ports defines the core interfaces for the application.
package ports

import "io"

// ArchiveReader reads a print-job archive: one settings document at the
// archive root and zero or more mask files under the image store.
//
//go:generate mockgen -source=archive.go -destination=mocks/mock_archive.go -package=mocks
type ArchiveReader interface {
	// Settings returns the raw settings document bytes.
	// A missing document is domain.ErrSettingsNotFound.
	Settings() ([]byte, error)

	// MaskNames lists the image-store entries. An absent image store is
	// not an error; it yields an empty list.
	MaskNames() ([]string, error)

	// OpenMask opens the named image-store entry for reading.
	// An absent entry is domain.ErrMaskNotFound.
	OpenMask(name string) (io.ReadCloser, error)

	// Close releases the underlying archive.
	Close() error
}

// ArchiveWriter writes a new print-job archive. Content only becomes
// visible at the final path after a successful Close; Abort discards
// everything written so far.
type ArchiveWriter interface {
	// PutSettings writes the settings document at the archive root.
	PutSettings(data []byte) error

	// PutMask writes one image-store entry.
	PutMask(name string, r io.Reader) error

	// Close finalizes the archive and publishes it at its target path.
	Close() error

	// Abort discards the partially written archive. Safe after Close.
	Abort() error
}

// ArchiveOpener opens existing archives for reading.
type ArchiveOpener interface {
	Open(path string) (ArchiveReader, error)
}

// ArchiveCreator creates new archives for writing.
type ArchiveCreator interface {
	Create(path string) (ArchiveWriter, error)
}
